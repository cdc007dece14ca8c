// Package logbook defines the canonical flight record and the closed set of
// canonical logbook fields that source columns are mapped onto.
package logbook

import "time"

// CanonicalField identifies one logical logbook column, independent of how a
// source file names or orders its columns.
type CanonicalField int

const (
	FieldDate CanonicalField = iota
	FieldFrom
	FieldTo
	FieldRegistration
	FieldAircraftType
	FieldTotalTime
	FieldPIC
	FieldSIC
	FieldNight
	FieldCrossCountry
	FieldActualInstrument
	FieldSimulatedInstrument
	FieldDualReceived
	FieldDualGiven
	FieldSolo
	FieldMultiPilot
	FieldSimulator
	FieldDayLandings
	FieldNightLandings
	FieldInstructor
	FieldRemarks
	FieldEngineType
	FieldClass
	FieldDistance

	fieldCount // sentinel, keep last
)

var fieldNames = [fieldCount]string{
	FieldDate:                "Date",
	FieldFrom:                "From",
	FieldTo:                  "To",
	FieldRegistration:        "Registration",
	FieldAircraftType:        "Aircraft Type",
	FieldTotalTime:           "Total Time",
	FieldPIC:                 "PIC",
	FieldSIC:                 "SIC",
	FieldNight:               "Night",
	FieldCrossCountry:        "Cross Country",
	FieldActualInstrument:    "Actual Instrument",
	FieldSimulatedInstrument: "Simulated Instrument",
	FieldDualReceived:        "Dual Received",
	FieldDualGiven:           "Dual Given",
	FieldSolo:                "Solo",
	FieldMultiPilot:          "Multi-Pilot",
	FieldSimulator:           "Simulator",
	FieldDayLandings:         "Day Landings",
	FieldNightLandings:       "Night Landings",
	FieldInstructor:          "Instructor",
	FieldRemarks:             "Remarks",
	FieldEngineType:          "Engine Type",
	FieldClass:               "Class",
	FieldDistance:            "Distance (NM)",
}

func (f CanonicalField) String() string {
	if f < 0 || f >= fieldCount {
		return "Unknown"
	}
	return fieldNames[f]
}

// AllFields returns every canonical field in declaration order.
func AllFields() []CanonicalField {
	fields := make([]CanonicalField, 0, int(fieldCount))
	for f := CanonicalField(0); f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// RequiredFields are the fields a usable record cannot do without. A mapping
// that resolves none of these cannot produce valid records at all.
var RequiredFields = []CanonicalField{
	FieldDate, FieldFrom, FieldTo, FieldRegistration,
	FieldAircraftType, FieldTotalTime,
}

// RecommendedFields improve classification quality but are not mandatory;
// their absence degrades output rather than blocking it.
var RecommendedFields = []CanonicalField{
	FieldPIC, FieldSIC, FieldNight, FieldCrossCountry,
	FieldActualInstrument, FieldSimulatedInstrument,
	FieldDualReceived, FieldDualGiven, FieldSolo, FieldSimulator,
	FieldDayLandings, FieldNightLandings, FieldInstructor, FieldRemarks,
	FieldEngineType, FieldClass, FieldDistance,
}

// DurationFields hold decimal hours and accept the three duration grammars.
var DurationFields = map[CanonicalField]bool{
	FieldTotalTime:           true,
	FieldPIC:                 true,
	FieldSIC:                 true,
	FieldNight:               true,
	FieldCrossCountry:        true,
	FieldActualInstrument:    true,
	FieldSimulatedInstrument: true,
	FieldDualReceived:        true,
	FieldDualGiven:           true,
	FieldSolo:                true,
	FieldMultiPilot:          true,
	FieldSimulator:           true,
}

// CountFields hold non-negative integers (landings).
var CountFields = map[CanonicalField]bool{
	FieldDayLandings:   true,
	FieldNightLandings: true,
}

// IsRequired reports whether f belongs to the required set.
func IsRequired(f CanonicalField) bool {
	for _, r := range RequiredFields {
		if r == f {
			return true
		}
	}
	return false
}

// FlightRecord is one normalized flight. It is constructed once by the
// normalizer and treated as immutable from then on.
type FlightRecord struct {
	Date         time.Time `json:"date"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Registration string    `json:"registration"`
	AircraftType string    `json:"aircraft_type"`
	EngineType   string    `json:"engine_type,omitempty"`
	Class        string    `json:"class,omitempty"`

	TotalTime           float64 `json:"total_time"`
	PIC                 float64 `json:"pic,omitempty"`
	SIC                 float64 `json:"sic,omitempty"`
	Night               float64 `json:"night,omitempty"`
	CrossCountry        float64 `json:"cross_country,omitempty"`
	ActualInstrument    float64 `json:"actual_instrument,omitempty"`
	SimulatedInstrument float64 `json:"simulated_instrument,omitempty"`
	DualReceived        float64 `json:"dual_received,omitempty"`
	DualGiven           float64 `json:"dual_given,omitempty"`
	Solo                float64 `json:"solo,omitempty"`
	MultiPilot          float64 `json:"multi_pilot,omitempty"`
	Simulator           float64 `json:"simulator,omitempty"`

	DayLandings   int `json:"day_landings,omitempty"`
	NightLandings int `json:"night_landings,omitempty"`

	Instructor string `json:"instructor,omitempty"`
	Remarks    string `json:"remarks,omitempty"`

	// Distance is the leg distance in nautical miles. DistanceKnown is false
	// when the source had no usable distance and no provider could supply one;
	// in that case cross-country status by distance is unknown, not zero.
	Distance      float64 `json:"distance,omitempty"`
	DistanceKnown bool    `json:"distance_known,omitempty"`
}
