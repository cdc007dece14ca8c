// Package normalize converts one raw source row into a canonical
// FlightRecord: duration and date grammar parsing, string trimming and
// required-field validation. Rows that violate a grammar are rejected with
// a RowError; the batch continues without them.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"caai_logbook/internal/columns"
	"caai_logbook/internal/logbook"
)

// RowError reports a single rejected row: which field failed and the
// offending raw value.
type RowError struct {
	Row   int
	Field logbook.CanonicalField
	Value string
	Msg   string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %s (value %q)", e.Row, e.Field, e.Msg, e.Value)
}

// DistanceFunc supplies a leg distance in nautical miles for an airport
// pair. The second return is false when the distance is unknown.
type DistanceFunc func(from, to string) (float64, bool)

// Normalizer converts raw rows under a resolved column mapping.
type Normalizer struct {
	mapping  columns.Mapping
	distance DistanceFunc // optional
}

// New creates a Normalizer for the given mapping. distance may be nil.
func New(mapping columns.Mapping, distance DistanceFunc) *Normalizer {
	return &Normalizer{mapping: mapping, distance: distance}
}

// hoursMinutes matches the H:MM duration grammar.
var hoursMinutes = regexp.MustCompile(`^(\d+):(\d{1,2})$`)

// ParseDuration parses a duration cell under the three accepted grammars,
// tried in order: plain decimal ("1.5"), hours:minutes ("1:30"), and
// comma-decimal ("1,5"). Empty input is zero, not an error; a value
// matching no grammar, or a negative one, is an error.
func ParseDuration(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("negative duration")
		}
		return v, nil
	}

	if m := hoursMinutes.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if min >= 60 {
			return 0, fmt.Errorf("minutes out of range")
		}
		return float64(h) + float64(min)/60, nil
	}

	if strings.Count(s, ",") == 1 {
		if v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
			if v < 0 {
				return 0, fmt.Errorf("negative duration")
			}
			return v, nil
		}
	}

	return 0, fmt.Errorf("not a valid duration")
}

// dateLayouts are the accepted date grammars. Day-first layouts come before
// month-first: sources here are predominantly Israeli/European.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"01/02/2006",
	"2006/01/02",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
}

// ParseDate parses a date cell under the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not a valid date")
}

// parseCount coerces a landing-count cell to a non-negative integer.
// Unlike durations, a garbage count degrades to zero rather than rejecting
// the row; counts are advisory detail, not classification input.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
		return int(v)
	}
	return 0
}

// parseDistance parses a distance cell, tolerating thousands separators
// ("1,234"). Returns ok=false when the cell is empty or unusable.
func parseDistance(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Normalize converts one raw row into a FlightRecord. rowNum is the
// 1-based source row for error reporting. A nil record with a *RowError
// means the row was rejected; the caller should record it and continue.
func (n *Normalizer) Normalize(rowNum int, row []string) (*logbook.FlightRecord, error) {
	cell := func(field logbook.CanonicalField) (string, bool) {
		idx, ok := n.mapping[field]
		if !ok || idx < 0 || idx >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[idx]), true
	}

	rec := &logbook.FlightRecord{}

	// Date first: rows without a parsable date are not flight records.
	rawDate, _ := cell(logbook.FieldDate)
	date, err := ParseDate(rawDate)
	if err != nil {
		return nil, &RowError{Row: rowNum, Field: logbook.FieldDate, Value: rawDate, Msg: err.Error()}
	}
	rec.Date = date

	// Required string fields must be non-empty.
	for _, sf := range []struct {
		field logbook.CanonicalField
		dst   *string
	}{
		{logbook.FieldFrom, &rec.From},
		{logbook.FieldTo, &rec.To},
		{logbook.FieldRegistration, &rec.Registration},
		{logbook.FieldAircraftType, &rec.AircraftType},
	} {
		v, _ := cell(sf.field)
		if v == "" {
			return nil, &RowError{Row: rowNum, Field: sf.field, Value: v, Msg: "required field empty"}
		}
		*sf.dst = v
	}

	if raw, _ := cell(logbook.FieldTotalTime); raw == "" {
		return nil, &RowError{Row: rowNum, Field: logbook.FieldTotalTime, Value: raw, Msg: "required field empty"}
	}

	// Optional string fields.
	rec.EngineType, _ = cell(logbook.FieldEngineType)
	rec.Class, _ = cell(logbook.FieldClass)
	rec.Instructor, _ = cell(logbook.FieldInstructor)
	rec.Remarks, _ = cell(logbook.FieldRemarks)

	// Durations: unmapped fields default to zero; mapped-but-invalid
	// values reject the row.
	for _, df := range []struct {
		field logbook.CanonicalField
		dst   *float64
	}{
		{logbook.FieldTotalTime, &rec.TotalTime},
		{logbook.FieldPIC, &rec.PIC},
		{logbook.FieldSIC, &rec.SIC},
		{logbook.FieldNight, &rec.Night},
		{logbook.FieldCrossCountry, &rec.CrossCountry},
		{logbook.FieldActualInstrument, &rec.ActualInstrument},
		{logbook.FieldSimulatedInstrument, &rec.SimulatedInstrument},
		{logbook.FieldDualReceived, &rec.DualReceived},
		{logbook.FieldDualGiven, &rec.DualGiven},
		{logbook.FieldSolo, &rec.Solo},
		{logbook.FieldMultiPilot, &rec.MultiPilot},
		{logbook.FieldSimulator, &rec.Simulator},
	} {
		raw, mapped := cell(df.field)
		if !mapped {
			continue
		}
		v, err := ParseDuration(raw)
		if err != nil {
			return nil, &RowError{Row: rowNum, Field: df.field, Value: raw, Msg: err.Error()}
		}
		*df.dst = v
	}

	if raw, ok := cell(logbook.FieldDayLandings); ok {
		rec.DayLandings = parseCount(raw)
	}
	if raw, ok := cell(logbook.FieldNightLandings); ok {
		rec.NightLandings = parseCount(raw)
	}

	if raw, ok := cell(logbook.FieldDistance); ok {
		if v, known := parseDistance(raw); known && v > 0 {
			rec.Distance = v
			rec.DistanceKnown = true
		}
	}

	// Fill distance from the provider when the source had none. Same-airport
	// legs are pattern work: distance zero, known.
	if !rec.DistanceKnown {
		if rec.From == rec.To {
			rec.DistanceKnown = true
		} else if n.distance != nil {
			if d, ok := n.distance(rec.From, rec.To); ok {
				rec.Distance = d
				rec.DistanceKnown = true
			}
		}
	}

	return rec, nil
}
