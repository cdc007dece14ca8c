package normalize

import (
	"errors"
	"testing"

	"caai_logbook/internal/columns"
	"caai_logbook/internal/logbook"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"1.5", 1.5, false},
		{"0", 0, false},
		{"2", 2, false},
		{"1:30", 1.5, false},
		{"0:45", 0.75, false},
		{"10:06", 10.1, false},
		{"1:5", 1 + 5.0/60, false},
		{"1,5", 1.5, false},
		{" 1.2 ", 1.2, false},
		{"1:75", 0, true},
		{"-1.0", 0, true},
		{"-1,5", 0, true},
		{"abc", 0, true},
		{"1:30:00", 0, true},
		{"1,2,3", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !approx(got, tt.want) {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string // re-rendered as ISO
		wantErr bool
	}{
		{"2024-03-15", "2024-03-15", false},
		{"15/03/2024", "2024-03-15", false},
		{"15-03-2024", "2024-03-15", false},
		{"15.03.2024", "2024-03-15", false},
		{"2024/03/15", "2024-03-15", false},
		{"15 Mar 2024", "2024-03-15", false},
		{"Mar 15, 2024", "2024-03-15", false},
		{"2024-03-15 10:30:00", "2024-03-15", false},
		{"", "", true},
		{"yesterday", "", true},
		{"2024-13-45", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr {
			if iso := got.Format("2006-01-02"); iso != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.in, iso, tt.want)
			}
		}
	}
}

func TestParseDate_DayFirstWins(t *testing.T) {
	// 03/04/2024 is ambiguous; day-first layouts take precedence.
	got, err := ParseDate("03/04/2024")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if iso := got.Format("2006-01-02"); iso != "2024-04-03" {
		t.Errorf("ParseDate(\"03/04/2024\") = %s, want 2024-04-03", iso)
	}
}

// testMapping resolves the fixed column layout used by the row tests.
func testMapping() columns.Mapping {
	return columns.Mapping{
		logbook.FieldDate:         0,
		logbook.FieldFrom:         1,
		logbook.FieldTo:           2,
		logbook.FieldRegistration: 3,
		logbook.FieldAircraftType: 4,
		logbook.FieldTotalTime:    5,
		logbook.FieldPIC:          6,
		logbook.FieldNight:        7,
		logbook.FieldDistance:     8,
	}
}

func TestNormalize_ValidRow(t *testing.T) {
	n := New(testMapping(), nil)

	rec, err := n.Normalize(2, []string{
		"2024-03-15", "KFPR", "KVRB", "N12345", "C172R", "1:30", "1.5", "0,5", "24.0",
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	if rec.Date.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("Date = %s, want 2024-03-15", rec.Date.Format("2006-01-02"))
	}
	if !approx(rec.TotalTime, 1.5) {
		t.Errorf("TotalTime = %v, want 1.5", rec.TotalTime)
	}
	if !approx(rec.PIC, 1.5) {
		t.Errorf("PIC = %v, want 1.5", rec.PIC)
	}
	if !approx(rec.Night, 0.5) {
		t.Errorf("Night = %v, want 0.5", rec.Night)
	}
	if !rec.DistanceKnown || !approx(rec.Distance, 24.0) {
		t.Errorf("Distance = %v (known=%v), want 24.0 known", rec.Distance, rec.DistanceKnown)
	}
}

func TestNormalize_Rejections(t *testing.T) {
	n := New(testMapping(), nil)

	tests := []struct {
		name      string
		row       []string
		wantField logbook.CanonicalField
	}{
		{
			"bad date",
			[]string{"not-a-date", "KFPR", "KVRB", "N12345", "C172", "1.5", "", "", ""},
			logbook.FieldDate,
		},
		{
			"missing origin",
			[]string{"2024-03-15", "", "KVRB", "N12345", "C172", "1.5", "", "", ""},
			logbook.FieldFrom,
		},
		{
			"missing registration",
			[]string{"2024-03-15", "KFPR", "KVRB", "", "C172", "1.5", "", "", ""},
			logbook.FieldRegistration,
		},
		{
			"missing total time",
			[]string{"2024-03-15", "KFPR", "KVRB", "N12345", "C172", "", "", "", ""},
			logbook.FieldTotalTime,
		},
		{
			"garbage duration",
			[]string{"2024-03-15", "KFPR", "KVRB", "N12345", "C172", "1.5", "junk", "", ""},
			logbook.FieldPIC,
		},
		{
			"negative duration",
			[]string{"2024-03-15", "KFPR", "KVRB", "N12345", "C172", "1.5", "-0.5", "", ""},
			logbook.FieldPIC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := n.Normalize(5, tt.row)
			if rec != nil {
				t.Fatal("expected rejection, got a record")
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected *RowError, got %T", err)
			}
			if rowErr.Row != 5 {
				t.Errorf("Row = %d, want 5", rowErr.Row)
			}
			if rowErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", rowErr.Field, tt.wantField)
			}
		})
	}
}

func TestNormalize_DistanceProvider(t *testing.T) {
	dist := func(from, to string) (float64, bool) {
		if from == "KFPR" && to == "KVRB" {
			return 10.4, true
		}
		return 0, false
	}
	n := New(testMapping(), dist)

	// No distance cell: provider fills it.
	rec, err := n.Normalize(2, []string{
		"2024-03-15", "KFPR", "KVRB", "N12345", "C172", "1.5", "", "", "",
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if !rec.DistanceKnown || !approx(rec.Distance, 10.4) {
		t.Errorf("Distance = %v (known=%v), want 10.4 known", rec.Distance, rec.DistanceKnown)
	}

	// Unknown pair stays unknown; never coerced to zero.
	rec, err = n.Normalize(3, []string{
		"2024-03-15", "LLHA", "LLER", "4X-CAA", "C172", "1.5", "", "", "",
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if rec.DistanceKnown {
		t.Error("DistanceKnown = true for unknown airport pair, want false")
	}

	// Same-airport pattern work is known distance zero.
	rec, err = n.Normalize(4, []string{
		"2024-03-15", "KFPR", "KFPR", "N12345", "C172", "1.5", "", "", "",
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if !rec.DistanceKnown || rec.Distance != 0 {
		t.Errorf("pattern work Distance = %v (known=%v), want 0 known", rec.Distance, rec.DistanceKnown)
	}
}

func TestNormalize_CountsDegradeToZero(t *testing.T) {
	m := testMapping()
	m[logbook.FieldDayLandings] = 9

	n := New(m, nil)
	rec, err := n.Normalize(2, []string{
		"2024-03-15", "KFPR", "KVRB", "N12345", "C172", "1.5", "", "", "", "n/a",
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if rec.DayLandings != 0 {
		t.Errorf("DayLandings = %d, want 0", rec.DayLandings)
	}
}
