// Package aircraft maps aircraft type codes onto the four regulatory
// aircraft groups and detects training devices and complex types.
package aircraft

import "strings"

// Group is one of the four regulatory aircraft groups, plus an explicit
// unresolved value for types the lookup table does not know. Unresolved
// hours are reported separately, never silently bucketed into group A.
type Group int

const (
	GroupUnresolved Group = iota
	GroupA                // single-engine piston
	GroupB                // multi-engine piston
	GroupC                // multi-engine jet/turboprop
	GroupD                // single-engine turboprop
)

func (g Group) String() string {
	switch g {
	case GroupA:
		return "A"
	case GroupB:
		return "B"
	case GroupC:
		return "C"
	case GroupD:
		return "D"
	default:
		return "unresolved"
	}
}

// Letter returns the Hebrew group letter used on the regulator's form.
func (g Group) Letter() string {
	switch g {
	case GroupA:
		return "א"
	case GroupB:
		return "ב"
	case GroupC:
		return "ג"
	case GroupD:
		return "ד"
	default:
		return "?"
	}
}

// MultiEngine reports whether the group has an SIC concept.
func (g Group) MultiEngine() bool {
	return g == GroupB || g == GroupC
}

// SingleEngine reports whether the group is one of the single-engine groups.
// False for GroupUnresolved: an unknown type is neither.
func (g Group) SingleEngine() bool {
	return g == GroupA || g == GroupD
}

// typeNormalization collapses variant type codes to a standard form.
var typeNormalization = map[string]string{
	"C172R":    "C172",
	"C172S":    "C172",
	"C172K":    "C172",
	"C172M":    "C172",
	"P28A-161": "PA28",
	"P28A-181": "PA28",
	"P28A":     "PA28",
	"PA-28":    "PA28",
	"PA-44":    "PA44",
	"BE-76":    "BE76",
}

// typeGroups is the static lookup table from normalized type code to group.
var typeGroups = map[string]Group{
	// Single-engine piston.
	"C150": GroupA, "C152": GroupA, "C172": GroupA, "C177": GroupA,
	"C182": GroupA, "PA28": GroupA, "PA18": GroupA, "PA38": GroupA,
	"DA40": GroupA, "DV20": GroupA, "SR20": GroupA, "SR22": GroupA,
	"BE33": GroupA, "BE36": GroupA, "M20P": GroupA, "AA5": GroupA,

	// Multi-engine piston.
	"PA44": GroupB, "BE76": GroupB, "PA34": GroupB, "BE58": GroupB,
	"DA42": GroupB,

	// Multi-engine jet/turboprop.
	"A319": GroupC, "A320": GroupC, "A321": GroupC, "B737": GroupC,
	"B738": GroupC, "H25B": GroupC, "E55P": GroupC, "C25A": GroupC,
	"BE20": GroupC, "DHC6": GroupC,

	// Single-engine turboprop.
	"PC12": GroupD, "TBM7": GroupD, "TBM8": GroupD, "TBM9": GroupD,
	"C208": GroupD, "PA46": GroupD,
}

// complexTypes have retractable gear and a variable-pitch propeller.
var complexTypes = map[string]bool{
	"PA44": true,
	"BE76": true,
	"PA34": true,
	"BE33": true,
	"BE36": true,
	"M20P": true,
}

// deviceRegistrations are registration prefixes that identify training
// devices rather than aircraft (simulator vendors, ATP-CTP courses).
var deviceRegistrations = []string{"FRASCA", "FLIGHT SAFETY", "CAE"}

// NormalizeType uppercases, trims and collapses variant type codes.
func NormalizeType(aircraftType string) string {
	t := strings.ToUpper(strings.TrimSpace(aircraftType))
	if n, ok := typeNormalization[t]; ok {
		return n
	}
	return t
}

// IsDevice reports whether the type/registration pair describes a simulator
// or other ground training device rather than an aircraft.
func IsDevice(aircraftType, registration string) bool {
	t := strings.ToUpper(aircraftType)
	if strings.Contains(t, "SIM") || strings.Contains(t, "FTD") || strings.Contains(t, "FFS") {
		return true
	}
	reg := strings.ToUpper(registration)
	for _, prefix := range deviceRegistrations {
		if strings.Contains(reg, prefix) {
			return true
		}
	}
	// ATP-CTP course entries log the provider as the first registration word.
	if parts := strings.Fields(reg); len(parts) > 0 && parts[0] == "ATP" {
		return true
	}
	return false
}

// IsComplex reports whether the (normalized) type is a complex aircraft.
func IsComplex(aircraftType string) bool {
	return complexTypes[NormalizeType(aircraftType)]
}

// GroupFor resolves the aircraft group for a type code, falling back to
// engine/class metadata when the type is not in the table. Unknown types
// with no usable metadata resolve to GroupUnresolved.
func GroupFor(aircraftType, engineType, class string) Group {
	t := NormalizeType(aircraftType)
	if g, ok := typeGroups[t]; ok {
		return g
	}

	engine := strings.ToLower(engineType)
	cls := strings.ToLower(class)
	multi := strings.Contains(cls, "multi")
	single := strings.Contains(cls, "single")

	switch {
	case strings.Contains(engine, "piston") && multi:
		return GroupB
	case strings.Contains(engine, "piston") && single:
		return GroupA
	case (strings.Contains(engine, "jet") || strings.Contains(engine, "turbine") ||
		strings.Contains(engine, "turbofan")) && (multi || !single):
		return GroupC
	case (strings.Contains(engine, "turboprop") || strings.Contains(engine, "turbo prop")) && multi:
		return GroupC
	case strings.Contains(engine, "turboprop") || strings.Contains(engine, "turbo prop"):
		return GroupD
	}
	return GroupUnresolved
}
