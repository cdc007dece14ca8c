// Package aggregate folds classified flights into the summary-form cell
// structure. Fold is associative and commutative over the flight sequence:
// buckets are plain sums and the solo cross-country tracker is a running
// maximum, so processing order never changes the finalized values.
package aggregate

import (
	"sort"
	"time"

	"caai_logbook/internal/aircraft"
	"caai_logbook/internal/classify"
)

// maxFormRows is how many aircraft-type rows the regulator's Table 1 holds.
const maxFormRows = 10

// maxListRows caps the CPL sheet's per-flight evidence lists.
const maxListRows = 20

// RoleBuckets holds the day/night hour cells of one form row.
type RoleBuckets struct {
	DayPIC       float64 `json:"day_pic,omitempty"`
	DayPICXC     float64 `json:"day_pic_xc,omitempty"`
	DaySIC       float64 `json:"day_sic,omitempty"`
	DayStudent   float64 `json:"day_student,omitempty"`
	NightPIC     float64 `json:"night_pic,omitempty"`
	NightPICXC   float64 `json:"night_pic_xc,omitempty"`
	NightSIC     float64 `json:"night_sic,omitempty"`
	NightStudent float64 `json:"night_student,omitempty"`

	// FormTotal is PIC + SIC + Student hours for the row; safety-pilot and
	// device hours are excluded by construction.
	FormTotal float64 `json:"form_total"`
}

// add apportions each credited role's hours across the day and night cells
// by the flight's night fraction. The role cells of a row therefore sum to
// its FormTotal even when the credited hours are less than the flight time,
// and a flight carrying both PIC and SIC credit lands in both columns.
func (b *RoleBuckets) add(f *classify.Flight) {
	nightFrac := 0.0
	if f.Record.TotalTime > 0 {
		nightFrac = f.NightHours / f.Record.TotalTime
	}

	if f.Student > 0 {
		night := f.Student * nightFrac
		b.DayStudent += f.Student - night
		b.NightStudent += night
	}
	if f.SIC > 0 {
		night := f.SIC * nightFrac
		b.DaySIC += f.SIC - night
		b.NightSIC += night
	}
	if f.PIC > 0 {
		night := f.PIC * nightFrac
		b.DayPIC += f.PIC - night
		b.NightPIC += night
		if f.PICXC > 0 {
			nightXC := f.PICXC * nightFrac
			b.DayPICXC += f.PICXC - nightXC
			b.NightPICXC += nightXC
		}
	}
	b.FormTotal += f.RoleSum()
}

// TypeRow is one aircraft-type row of Table 1 / Table 2.
type TypeRow struct {
	TypeCode string         `json:"type_code"`
	Group    aircraft.Group `json:"-"`
	GroupID  string         `json:"group"`
	Flights  int            `json:"flights"`

	// TotalTime includes excluded hours; FormTotal does not.
	TotalTime float64 `json:"total_time"`
	RoleBuckets

	InstrumentActual    float64 `json:"instrument_actual,omitempty"`
	InstrumentSimulated float64 `json:"instrument_simulated,omitempty"`
	DeviceHours         float64 `json:"device_hours,omitempty"`
	SafetyExcluded      float64 `json:"safety_excluded,omitempty"`
	NightLandings       int     `json:"night_landings,omitempty"`
}

// FlightRef is one entry in a CPL evidence list.
type FlightRef struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
}

// SoloXC describes the longest solo cross-country flight.
type SoloXC struct {
	Found      bool      `json:"found"`
	Hours      float64   `json:"hours,omitempty"`
	DistanceNM float64   `json:"distance_nm,omitempty"`
	DistanceKM float64   `json:"distance_km,omitempty"`
	Date       time.Time `json:"date,omitempty"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to,omitempty"`
}

// better reports whether candidate beats current: greater distance first,
// then longer duration, ties broken by the earlier date so the comparison
// is a total order and folding stays commutative.
func (s *SoloXC) better(hours, dist float64, date time.Time) bool {
	if !s.Found {
		return true
	}
	if dist != s.DistanceNM {
		return dist > s.DistanceNM
	}
	if hours != s.Hours {
		return hours > s.Hours
	}
	return date.Before(s.Date)
}

// Accumulator is the mutable aggregate state. It is owned by a single
// goroutine; Fold mutates it, Finalize reads it without mutating.
type Accumulator struct {
	groups     map[aircraft.Group]*RoleBuckets
	types      map[string]*TypeRow
	unresolved map[string]float64

	flights   int
	totalTime float64

	pic, sic, student float64
	safetyExcluded    float64
	deviceHours       float64

	picXC                     float64
	xcAllRoles                float64
	nightHours                float64
	dualReceived, dualInst    float64
	solo, soloXC              float64
	complexHours, multiEngine float64
	instActual, instSimulated float64

	dayLandings, nightLandings int

	longestSoloXC SoloXC

	nightPICFlights []FlightRef
	instDualFlights []FlightRef
	complexFlights  []FlightRef
	advisoryFlights int
}

// New returns an empty accumulator.
func New() *Accumulator {
	return &Accumulator{
		groups:     make(map[aircraft.Group]*RoleBuckets),
		types:      make(map[string]*TypeRow),
		unresolved: make(map[string]float64),
	}
}

func (a *Accumulator) typeRow(f *classify.Flight) *TypeRow {
	row, ok := a.types[f.TypeCode]
	if !ok {
		row = &TypeRow{TypeCode: f.TypeCode, Group: f.Group}
		a.types[f.TypeCode] = row
	}
	return row
}

// Fold accumulates one classified flight. Order-independent: every update
// below is a sum, a count, or a total-order maximum.
func (a *Accumulator) Fold(f *classify.Flight) {
	if len(f.Advisories) > 0 {
		a.advisoryFlights++
	}

	row := a.typeRow(f)
	row.Flights++

	if f.IsDevice {
		row.DeviceHours += f.DeviceHours
		a.deviceHours += f.DeviceHours
		return
	}

	row.TotalTime += f.Record.TotalTime
	row.InstrumentActual += f.InstrumentActual
	row.InstrumentSimulated += f.InstrumentSimulated
	row.NightLandings += f.Record.NightLandings

	if f.SafetyExcluded > 0 {
		// Excluded from every form figure: hours appear only in the
		// exclusion accumulators.
		row.SafetyExcluded += f.SafetyExcluded
		a.safetyExcluded += f.SafetyExcluded
		return
	}

	if f.Group == aircraft.GroupUnresolved {
		// Reported, never silently bucketed into group A. These hours are
		// absent from the group rows, so totals read as incomplete.
		a.unresolved[f.TypeCode] += f.Record.TotalTime
		return
	}

	a.flights++
	a.totalTime += f.Record.TotalTime

	buckets, ok := a.groups[f.Group]
	if !ok {
		buckets = &RoleBuckets{}
		a.groups[f.Group] = buckets
	}
	buckets.add(f)
	row.RoleBuckets.add(f)

	a.pic += f.PIC
	a.sic += f.SIC
	a.student += f.Student

	a.instActual += f.InstrumentActual
	a.instSimulated += f.InstrumentSimulated
	a.nightHours += f.NightHours
	a.dayLandings += f.Record.DayLandings
	a.nightLandings += f.Record.NightLandings

	if f.IsCrossCountry {
		a.xcAllRoles += f.Record.TotalTime
	}
	if f.Group.MultiEngine() {
		a.multiEngine += f.Record.TotalTime
	}
	if aircraft.IsComplex(f.Record.AircraftType) && f.Record.TotalTime > 0 {
		// Hours on listed complex types; group C totals are layered on at
		// finalize, and group C has no listed complex types, so the CPL
		// complex cell never double-counts.
		a.complexHours += f.Record.TotalTime
		a.complexFlights = append(a.complexFlights, FlightRef{Date: f.Record.Date, Hours: f.Record.TotalTime})
	}

	switch {
	case f.Student > 0:
		a.dualReceived += f.Student
		if f.InstrumentActual > 0 || f.InstrumentSimulated > 0 {
			inst := f.InstrumentActual + f.InstrumentSimulated
			a.dualInst += inst
			a.instDualFlights = append(a.instDualFlights, FlightRef{Date: f.Record.Date, Hours: inst})
		}
	case f.PIC > 0:
		a.picXC += f.PICXC
		if f.NightHours > 0 {
			a.nightPICFlights = append(a.nightPICFlights, FlightRef{Date: f.Record.Date, Hours: f.NightHours})
		}
		if f.Record.Solo > 0 {
			a.solo += f.Record.TotalTime
			if f.IsCrossCountry {
				a.soloXC += f.Record.TotalTime
				dist := 0.0
				if f.Record.DistanceKnown {
					dist = f.Record.Distance
				}
				if a.longestSoloXC.better(f.Record.TotalTime, dist, f.Record.Date) {
					a.longestSoloXC = SoloXC{
						Found:      true,
						Hours:      f.Record.TotalTime,
						DistanceNM: dist,
						Date:       f.Record.Date,
						From:       f.Record.From,
						To:         f.Record.To,
					}
				}
			}
		}
	}
}

// GroupRow is one aircraft-group summary row.
type GroupRow struct {
	Group   aircraft.Group `json:"-"`
	GroupID string         `json:"group"`
	Letter  string         `json:"letter"`
	RoleBuckets
}

// FormValues is the finalized output of the aggregator: everything the form
// writer needs, plus the figures the report surfaces.
type FormValues struct {
	Flights   int     `json:"flights"`
	TotalTime float64 `json:"total_time"`

	// Table 1.
	GroupRows []GroupRow `json:"group_rows"`
	TypeRows  []TypeRow  `json:"type_rows"`

	// DeviceRows holds training-device types; their hours live outside
	// Table 1.
	DeviceRows []TypeRow `json:"device_rows,omitempty"`

	PIC            float64 `json:"pic"`
	SIC            float64 `json:"sic"`
	Student        float64 `json:"student"`
	SafetyExcluded float64 `json:"safety_pilot_excluded"`
	FormTotal      float64 `json:"form_total"`

	// GrandTotal applies the SIC half-credit of regulation 42(b), computed
	// once here over the fully accumulated totals.
	GrandTotal float64 `json:"grand_total"`

	// Table 2.
	InstrumentActual    float64 `json:"instrument_actual"`
	InstrumentSimulated float64 `json:"instrument_simulated"`
	DeviceHours         float64 `json:"device_hours"`

	// CPL sheet.
	PICCrossCountry float64     `json:"pic_cross_country"`
	DualReceived    float64     `json:"dual_received"`
	DualInstrument  float64     `json:"dual_instrument"`
	NightLandings   int         `json:"night_landings"`
	DayLandings     int         `json:"day_landings"`
	NightHours      float64     `json:"night_hours"`
	LongestSoloXC   SoloXC      `json:"longest_solo_xc"`
	ComplexGroupBC  float64     `json:"complex_group_bc"`
	NightPICFlights []FlightRef `json:"night_pic_flights,omitempty"`
	InstDualFlights []FlightRef `json:"instrument_dual_flights,omitempty"`
	ComplexFlights  []FlightRef `json:"complex_flights,omitempty"`

	// ATPL sheet.
	CrossCountryAllRoles float64 `json:"cross_country_all_roles"`
	NightPIC             float64 `json:"night_pic"`
	NightPICXC           float64 `json:"night_pic_xc"`
	InstrumentTotal      float64 `json:"instrument_total"`

	Solo            float64            `json:"solo"`
	SoloXC          float64            `json:"solo_xc"`
	MultiEngineTime float64            `json:"multi_engine_time"`
	UnresolvedTypes map[string]float64 `json:"unresolved_types,omitempty"`
	AdvisoryFlights int                `json:"advisory_flights,omitempty"`

	// TruncatedTypes names the aircraft types dropped from Table 1 when the
	// logbook has more types than the form has rows. Their hours stay in the
	// overall totals.
	TruncatedTypes []string `json:"truncated_types,omitempty"`
}

// Finalize folds the accumulated state into FormValues. It does not mutate
// the accumulator: calling it again without further folds returns identical
// values.
func (a *Accumulator) Finalize() *FormValues {
	v := &FormValues{
		Flights:   a.flights,
		TotalTime: a.totalTime,

		PIC:            a.pic,
		SIC:            a.sic,
		Student:        a.student,
		SafetyExcluded: a.safetyExcluded,
		FormTotal:      a.pic + a.sic + a.student,
		GrandTotal:     a.pic + a.sic/2 + a.student,

		InstrumentActual:    a.instActual,
		InstrumentSimulated: a.instSimulated,
		DeviceHours:         a.deviceHours,

		PICCrossCountry: a.picXC,
		DualReceived:    a.dualReceived,
		DualInstrument:  a.dualInst,
		NightLandings:   a.nightLandings,
		DayLandings:     a.dayLandings,
		NightHours:      a.nightHours,
		LongestSoloXC:   a.longestSoloXC,

		CrossCountryAllRoles: a.xcAllRoles,
		InstrumentTotal:      a.instActual + a.instSimulated,

		Solo:            a.solo,
		SoloXC:          a.soloXC,
		MultiEngineTime: a.multiEngine,
		AdvisoryFlights: a.advisoryFlights,
	}

	if a.longestSoloXC.Found {
		v.LongestSoloXC.DistanceKM = a.longestSoloXC.DistanceNM * 1.852
	}

	for _, g := range []aircraft.Group{aircraft.GroupA, aircraft.GroupB, aircraft.GroupC, aircraft.GroupD} {
		buckets, ok := a.groups[g]
		if !ok {
			continue
		}
		v.GroupRows = append(v.GroupRows, GroupRow{
			Group:       g,
			GroupID:     g.String(),
			Letter:      g.Letter(),
			RoleBuckets: *buckets,
		})
		// The ATPL night figures are the sums of the apportioned group cells.
		v.NightPIC += buckets.NightPIC
		v.NightPICXC += buckets.NightPICXC
	}

	// Complex singles plus the group C form total, per the CPL sheet's
	// "complex or group B/C" cell.
	v.ComplexGroupBC = a.complexHours
	if buckets, ok := a.groups[aircraft.GroupC]; ok {
		v.ComplexGroupBC += buckets.FormTotal
	}

	for _, row := range a.types {
		if row.Group == aircraft.GroupUnresolved && row.DeviceHours == 0 {
			// Listed under UnresolvedTypes instead.
			continue
		}
		r := *row
		r.GroupID = r.Group.String()
		if r.DeviceHours > 0 {
			v.DeviceRows = append(v.DeviceRows, r)
			continue
		}
		v.TypeRows = append(v.TypeRows, r)
	}
	sort.Slice(v.DeviceRows, func(i, j int) bool {
		return v.DeviceRows[i].TypeCode < v.DeviceRows[j].TypeCode
	})
	sort.Slice(v.TypeRows, func(i, j int) bool {
		if v.TypeRows[i].FormTotal != v.TypeRows[j].FormTotal {
			return v.TypeRows[i].FormTotal > v.TypeRows[j].FormTotal
		}
		return v.TypeRows[i].TypeCode < v.TypeRows[j].TypeCode
	})
	if len(v.TypeRows) > maxFormRows {
		for _, row := range v.TypeRows[maxFormRows:] {
			v.TruncatedTypes = append(v.TruncatedTypes, row.TypeCode)
		}
		v.TypeRows = v.TypeRows[:maxFormRows]
	}

	if len(a.unresolved) > 0 {
		v.UnresolvedTypes = make(map[string]float64, len(a.unresolved))
		for t, hours := range a.unresolved {
			v.UnresolvedTypes[t] = hours
		}
	}

	v.NightPICFlights = sortRefs(a.nightPICFlights)
	v.InstDualFlights = sortRefs(a.instDualFlights)
	v.ComplexFlights = sortRefs(a.complexFlights)

	return v
}

// sortRefs orders an evidence list by date (then hours, for a stable result
// regardless of fold order) and caps it at the form's row count.
func sortRefs(refs []FlightRef) []FlightRef {
	out := make([]FlightRef, len(refs))
	copy(out, refs)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Hours < out[j].Hours
	})
	if len(out) > maxListRows {
		out = out[:maxListRows]
	}
	return out
}
