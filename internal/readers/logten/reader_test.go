package logten

import (
	"strings"
	"testing"
)

func TestReader_Sniff(t *testing.T) {
	r := &Reader{}

	if !r.Sniff([]byte("flight_flightDate\tflight_from\tflight_to")) {
		t.Error("Sniff should accept a LogTen header line")
	}
	if r.Sniff([]byte("Date,From,To")) {
		t.Error("Sniff should reject a generic CSV header")
	}
}

func TestRejoinRows(t *testing.T) {
	data := []byte("flight_flightDate\tflight_remarks\n" +
		"2024-03-15\tpattern work\n" +
		"2024-03-16\tlong remark line one\n" +
		"that wrapped onto a second line\n" +
		"and a third\n" +
		"2024-03-17\tshort\n")

	got := string(rejoinRows(data))
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), got)
	}
	want := "2024-03-16\tlong remark line one that wrapped onto a second line and a third"
	if lines[2] != want {
		t.Errorf("rejoined row = %q, want %q", lines[2], want)
	}
}

func TestReader_Read(t *testing.T) {
	data := []byte(
		"flight_flightDate\tflight_from\tflight_to\taircraft_aircraftID\taircraftType_type\tflight_totalTime\tflight_pic\tflight_remarks\n" +
			"2024-03-15\tKFPR\tKVRB\tN12345\tC172\t1.5\t1.5\tpattern work\n" +
			"2024-03-16\tKVRB\tKFPR\tN12345\tC172\t1.2\t1.2\twrapped remark\ncontinued here\n")

	r := &Reader{}
	table, err := r.Read(data)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	if len(table.Headers) != len(outHeaders) {
		t.Fatalf("headers = %d, want %d", len(table.Headers), len(outHeaders))
	}
	if table.Headers[0] != "Date" || table.Headers[3] != "Aircraft Reg." {
		t.Errorf("headers = %v, want display names", table.Headers[:4])
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}

	idx := func(name string) int {
		for i, h := range outHeaders {
			if h == name {
				return i
			}
		}
		t.Fatalf("no header %q", name)
		return -1
	}

	row := table.Rows[0]
	if row[idx("Date")] != "2024-03-15" {
		t.Errorf("Date = %q, want %q", row[idx("Date")], "2024-03-15")
	}
	if row[idx("Aircraft Reg.")] != "N12345" {
		t.Errorf("Aircraft Reg. = %q, want %q", row[idx("Aircraft Reg.")], "N12345")
	}
	if row[idx("Total Time")] != "1.5" {
		t.Errorf("Total Time = %q, want %q", row[idx("Total Time")], "1.5")
	}

	remark := table.Rows[1][idx("Remarks")]
	if remark != "wrapped remark continued here" {
		t.Errorf("Remarks = %q, want rejoined remark", remark)
	}
}

func TestReader_IgnoresUnknownColumns(t *testing.T) {
	data := []byte("flight_flightDate\tflight_from\tflight_someFutureField\tflight_totalTime\n" +
		"2024-03-15\tKFPR\textra\t1.0\n")

	r := &Reader{}
	table, err := r.Read(data)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "2024-03-15" {
		t.Errorf("rows = %v, want one row", table.Rows)
	}
}
