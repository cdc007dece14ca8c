// Package report collects everything a run surfaces besides the form
// values: mapping deficiencies, rejected rows, classification advisories
// and unresolved aircraft types.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"caai_logbook/internal/logbook"
	"caai_logbook/internal/normalize"
)

// Advisory is a non-fatal note attached to a specific row, such as a
// clamped credit.
type Advisory struct {
	Row  int    `json:"row"`
	Note string `json:"note"`
}

// RunReport describes one conversion run end to end.
type RunReport struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Format    string    `json:"format"`
	StartedAt time.Time `json:"started_at"`

	RowsRead     int `json:"rows_read"`
	RowsAccepted int `json:"rows_accepted"`
	RowsRejected int `json:"rows_rejected"`

	// UnresolvedRequired lists required logbook fields no input column
	// mapped to. Non-empty means the run could not proceed.
	UnresolvedRequired []string `json:"unresolved_required,omitempty"`

	// MissingRecommended lists optional fields that did not map; affected
	// figures read as zero.
	MissingRecommended []string `json:"missing_recommended,omitempty"`

	RowErrors  []normalize.RowError `json:"row_errors,omitempty"`
	Advisories []Advisory           `json:"advisories,omitempty"`

	// UnresolvedTypes maps aircraft type codes that fit no group to their
	// accumulated hours.
	UnresolvedTypes map[string]float64 `json:"unresolved_types,omitempty"`

	// UnknownAirports lists codes the distance provider could not place.
	UnknownAirports []string `json:"unknown_airports,omitempty"`
}

// New returns a report with a fresh run ID.
func New(source, format string) *RunReport {
	return &RunReport{
		ID:        uuid.NewString(),
		Source:    source,
		Format:    format,
		StartedAt: time.Now().UTC(),
	}
}

// SetUnresolved records the resolver's missing required fields.
func (r *RunReport) SetUnresolved(fields []logbook.CanonicalField) {
	for _, f := range fields {
		r.UnresolvedRequired = append(r.UnresolvedRequired, f.String())
	}
}

// SetMissingRecommended records optional fields that did not resolve.
func (r *RunReport) SetMissingRecommended(fields []logbook.CanonicalField) {
	for _, f := range fields {
		r.MissingRecommended = append(r.MissingRecommended, f.String())
	}
}

// AddRowError records a rejected row.
func (r *RunReport) AddRowError(err normalize.RowError) {
	r.RowsRejected++
	r.RowErrors = append(r.RowErrors, err)
}

// AddAdvisories records classification notes for a row.
func (r *RunReport) AddAdvisories(row int, notes []string) {
	for _, n := range notes {
		r.Advisories = append(r.Advisories, Advisory{Row: row, Note: n})
	}
}

// Summary renders a short human-readable digest for the CLI.
func (r *RunReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d rows read, %d accepted, %d rejected\n",
		r.ID, r.RowsRead, r.RowsAccepted, r.RowsRejected)

	if len(r.UnresolvedRequired) > 0 {
		fmt.Fprintf(&b, "unresolved required columns: %s\n", strings.Join(r.UnresolvedRequired, ", "))
	}
	if len(r.MissingRecommended) > 0 {
		fmt.Fprintf(&b, "missing recommended columns: %s\n", strings.Join(r.MissingRecommended, ", "))
	}
	for _, e := range r.RowErrors {
		fmt.Fprintf(&b, "  row %d: %s\n", e.Row, e.Error())
	}
	for _, a := range r.Advisories {
		fmt.Fprintf(&b, "  row %d: %s\n", a.Row, a.Note)
	}
	if len(r.UnresolvedTypes) > 0 {
		types := make([]string, 0, len(r.UnresolvedTypes))
		for t := range r.UnresolvedTypes {
			types = append(types, t)
		}
		sort.Strings(types)
		b.WriteString("unresolved aircraft types (hours not bucketed):\n")
		for _, t := range types {
			fmt.Fprintf(&b, "  %-12s %.1f hrs\n", t, r.UnresolvedTypes[t])
		}
	}
	if len(r.UnknownAirports) > 0 {
		fmt.Fprintf(&b, "airports without coordinates: %s\n", strings.Join(r.UnknownAirports, ", "))
	}
	return b.String()
}
