// Package pipeline drives a full conversion run: column resolution,
// normalization, classification and aggregation over one input table.
package pipeline

import (
	"errors"
	"fmt"
	"log"

	"caai_logbook/internal/aggregate"
	"caai_logbook/internal/aircraft"
	"caai_logbook/internal/classify"
	"caai_logbook/internal/columns"
	"caai_logbook/internal/logbook"
	"caai_logbook/internal/normalize"
	"caai_logbook/internal/readers"
	"caai_logbook/internal/report"
)

// ErrUnresolvedColumns is returned when not a single required logbook
// field could be mapped to an input column. The report names them.
var ErrUnresolvedColumns = errors.New("required columns unresolved")

// Options configures a run.
type Options struct {
	// Explicit pins canonical fields to input columns, overriding alias
	// detection.
	Explicit columns.ExplicitMapping

	// Distance resolves airport-pair distances for rows that carry none.
	// May be nil.
	Distance normalize.DistanceFunc

	// UnknownAirports, if set, is called after the run to collect codes
	// the distance provider could not place.
	UnknownAirports func() []string

	// Verbose logs per-row rejections as they happen.
	Verbose bool
}

// Result is the outcome of a run.
type Result struct {
	Report  *report.RunReport
	Values  *aggregate.FormValues
	Flights []*classify.Flight
}

// Run processes one input table end to end. A partial column mapping is
// not fatal: the unresolved fields are surfaced on the report and rows
// missing them are rejected one by one. Only a table where no required
// field maps at all returns ErrUnresolvedColumns; the returned Result
// still carries the report, so callers can show which fields failed.
func Run(table *readers.Table, opts Options) (*Result, error) {
	rep := report.New(table.Source, table.Format)
	res := &Result{Report: rep}

	mapping, unresolved := columns.Resolve(table.Headers, opts.Explicit)
	if len(unresolved) > 0 {
		rep.SetUnresolved(unresolved)
		if len(unresolved) == len(logbook.RequiredFields) {
			return res, fmt.Errorf("%w: %v", ErrUnresolvedColumns, rep.UnresolvedRequired)
		}
		log.Printf("warning: unresolved required columns %v, continuing with a partial mapping", rep.UnresolvedRequired)
	}
	rep.SetMissingRecommended(columns.MissingRecommended(mapping))

	norm := normalize.New(mapping, opts.Distance)
	acc := aggregate.New()

	for i, row := range table.Rows {
		rowNum := i + 2 // 1-based, after the header row
		rep.RowsRead++

		rec, err := norm.Normalize(rowNum, row)
		if err != nil {
			var rowErr *normalize.RowError
			if errors.As(err, &rowErr) {
				rep.AddRowError(*rowErr)
				if opts.Verbose {
					log.Printf("row %d rejected: %v", rowNum, rowErr)
				}
				continue
			}
			return res, fmt.Errorf("row %d: %w", rowNum, err)
		}
		rep.RowsAccepted++

		f := classify.Classify(rec, aircraft.GroupFor)
		rep.AddAdvisories(rowNum, f.Advisories)

		acc.Fold(f)
		res.Flights = append(res.Flights, f)
	}

	res.Values = acc.Finalize()
	rep.UnresolvedTypes = res.Values.UnresolvedTypes
	if opts.UnknownAirports != nil {
		rep.UnknownAirports = opts.UnknownAirports()
	}
	return res, nil
}
