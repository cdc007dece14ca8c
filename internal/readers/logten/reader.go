// Package logten reads LogTen Pro tab-delimited exports. The export uses
// internal field names like flight_flightDate as headers and may break
// long remarks across physical lines; this reader rejoins those before
// decoding.
package logten

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/jszwec/csvutil"

	"caai_logbook/internal/readers"
)

// Reader parses LogTen Pro exports.
type Reader struct{}

func init() {
	readers.Register(&Reader{})
}

func (r *Reader) Name() string         { return "logten" }
func (r *Reader) Extensions() []string { return []string{".txt"} }
func (r *Reader) Priority() int        { return 10 } // Specific format, checked before delimited.

// Sniff looks for LogTen's internal header names.
func (r *Reader) Sniff(head []byte) bool {
	return bytes.Contains(head, []byte("flight_flightDate"))
}

// flightRow mirrors the LogTen Pro export fields this tool consumes.
// Columns not listed here are ignored by the decoder.
type flightRow struct {
	Date         string `csv:"flight_flightDate"`
	From         string `csv:"flight_from"`
	To           string `csv:"flight_to"`
	Registration string `csv:"aircraft_aircraftID"`
	Type         string `csv:"aircraftType_type"`
	EngineType   string `csv:"aircraftType_selectedEngineType"`
	Class        string `csv:"aircraftType_selectedAircraftClass"`
	TotalTime    string `csv:"flight_totalTime"`
	PIC          string `csv:"flight_pic"`
	SIC          string `csv:"flight_sic"`
	Night        string `csv:"flight_night"`
	CrossCountry string `csv:"flight_crossCountry"`
	ActualInst   string `csv:"flight_actualInstrument"`
	SimInst      string `csv:"flight_simulatedInstrument"`
	DualReceived string `csv:"flight_dualReceived"`
	DualGiven    string `csv:"flight_dualGiven"`
	Solo         string `csv:"flight_solo"`
	Simulator    string `csv:"flight_simulator"`
	MultiPilot   string `csv:"flight_multiPilot"`
	DayLandings  string `csv:"flight_dayLandings"`
	NightLdgs    string `csv:"flight_nightLandings"`
	Instructor   string `csv:"flight_selectedCrewInstructor"`
	Observer     string `csv:"flight_selectedCrewObserver"`
	Distance     string `csv:"flight_distance"`
	Remarks      string `csv:"flight_remarks"`
}

// outHeaders are the column names emitted for the resolver; they match the
// standard logbook header vocabulary.
var outHeaders = []string{
	"Date", "From", "To", "Aircraft Reg.", "Aircraft Type", "Engine Type",
	"Class", "Total Time", "PIC", "SIC", "Night", "Cross Country",
	"Actual Inst.", "Sim. Inst.", "Dual Received", "Dual Given", "Solo",
	"Simulator", "Multi-Pilot", "Day LDG", "Night LDG", "Instructor",
	"Observer/Safety Pilot", "Distance (NM)", "Remarks",
}

var dateLine = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\t`)

// rejoinRows merges continuation lines (remarks containing newlines) back
// into their data row. A data row starts with an ISO date and a tab.
func rejoinRows(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	var out [][]byte
	for i, line := range lines {
		line = bytes.TrimRight(line, "\r")
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if i == 0 || dateLine.Match(line) {
			out = append(out, line)
			continue
		}
		if len(out) > 0 {
			out[len(out)-1] = append(append(out[len(out)-1], ' '), line...)
		}
	}
	return bytes.Join(out, []byte("\n"))
}

func (r *Reader) Read(data []byte) (*readers.Table, error) {
	cr := csv.NewReader(bytes.NewReader(rejoinRows(data)))
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	table := &readers.Table{Headers: outHeaders}
	for {
		var row flightRow
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding row: %w", err)
		}
		table.Rows = append(table.Rows, []string{
			row.Date, row.From, row.To, row.Registration, row.Type,
			row.EngineType, row.Class, row.TotalTime, row.PIC, row.SIC,
			row.Night, row.CrossCountry, row.ActualInst, row.SimInst,
			row.DualReceived, row.DualGiven, row.Solo, row.Simulator,
			row.MultiPilot, row.DayLandings, row.NightLdgs, row.Instructor,
			row.Observer, row.Distance, row.Remarks,
		})
	}
	return table, nil
}
