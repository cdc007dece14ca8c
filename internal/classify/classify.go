// Package classify applies the regulatory time-category rules to normalized
// flight records. Classification is a pure function of the record and the
// aircraft-group lookup: no I/O, no shared state, and it never fails on a
// valid record. Internal inconsistencies clamp to zero and leave an
// advisory on the flight instead of aborting the batch.
package classify

import (
	"fmt"
	"strings"

	"caai_logbook/internal/aircraft"
	"caai_logbook/internal/logbook"
)

// XCThresholdNM is the leg distance beyond which a flight counts as
// cross-country even when no cross-country time was logged.
const XCThresholdNM = 27.0

// Role is the regulatory time category a flight's hours credit toward.
type Role int

const (
	RoleNone Role = iota
	RolePIC
	RoleSIC
	RoleStudent
	RoleSafetyPilot // excluded from every form total
)

func (r Role) String() string {
	switch r {
	case RolePIC:
		return "PIC"
	case RoleSIC:
		return "SIC"
	case RoleStudent:
		return "Student"
	case RoleSafetyPilot:
		return "Safety Pilot"
	default:
		return "N/A"
	}
}

// GroupFunc resolves the aircraft group for a type code plus optional
// engine/class metadata.
type GroupFunc func(aircraftType, engineType, class string) aircraft.Group

// Flight is a classified flight: the record plus its group, credited hours
// per role, and the flags the aggregator folds on. Created once by Classify
// and never mutated afterwards.
type Flight struct {
	Record   *logbook.FlightRecord
	Group    aircraft.Group
	TypeCode string // normalized aircraft type

	// Credited hours. At most TotalTime in sum; SafetyExcluded hours are
	// removed from every form total.
	Student        float64
	PIC            float64
	SIC            float64
	SafetyExcluded float64

	PICXC float64 // cross-country portion of the PIC credit

	InstrumentActual    float64
	InstrumentSimulated float64
	DeviceHours         float64

	NightHours float64
	DayHours   float64

	IsDevice       bool
	IsNight        bool
	IsCrossCountry bool
	IsComplex      bool

	// Advisories record non-negativity clamps and similar repairs.
	Advisories []string
}

// Role returns the flight's dominant time category.
func (f *Flight) Role() Role {
	switch {
	case f.IsDevice:
		return RoleNone
	case f.SafetyExcluded > 0:
		return RoleSafetyPilot
	case f.Student > 0:
		return RoleStudent
	case f.SIC > 0:
		return RoleSIC
	case f.PIC > 0:
		return RolePIC
	default:
		return RoleNone
	}
}

// RoleSum is the total credited role hours (excluded hours not counted).
func (f *Flight) RoleSum() float64 {
	return f.Student + f.PIC + f.SIC
}

// step is one transformation over the classification in progress. Steps run
// strictly in order; later steps may override assignments made by earlier
// ones.
type step func(*Flight)

var steps = []step{
	stepSafetyPilot,
	stepStudent,
	stepPIC,
	stepSIC,
	stepCrossCountry,
	stepActualInstrument,
	stepSimulatedInstrument,
	stepDevice,
	stepComplex,
	stepNightSplit,
}

// Classify produces a ClassifiedFlight from one normalized record.
func Classify(rec *logbook.FlightRecord, groupOf GroupFunc) *Flight {
	f := &Flight{
		Record:   rec,
		Group:    groupOf(rec.AircraftType, rec.EngineType, rec.Class),
		TypeCode: aircraft.NormalizeType(rec.AircraftType),
	}
	for _, s := range steps {
		s(f)
	}
	return f
}

// stepSafetyPilot excludes single-engine safety-pilot hours from every
// role total. Multi-engine "safety pilot" remarks are not an exclusion:
// the SIC concept applies there and the SIC field governs.
func stepSafetyPilot(f *Flight) {
	if !f.Group.SingleEngine() {
		return
	}
	if strings.Contains(strings.ToLower(f.Record.Remarks), "safety pilot") {
		f.SafetyExcluded = f.Record.TotalTime
	}
}

// stepStudent credits dual-instruction flights to Student. A student
// flight cannot simultaneously credit PIC, and instruction overrides the
// safety-pilot exclusion.
func stepStudent(f *Flight) {
	if f.Record.Instructor == "" && f.Record.DualReceived <= 0 {
		return
	}
	f.Student = f.Record.TotalTime
	f.SafetyExcluded = 0
}

// stepPIC credits PIC hours for flights that are neither Student nor
// safety-pilot excluded. On single-engine aircraft the SIC field has no
// meaning and folds into PIC. Flights with no role fields at all default
// their total time to PIC.
func stepPIC(f *Flight) {
	if f.Student > 0 || f.SafetyExcluded > 0 {
		return
	}

	pic := f.Record.PIC
	if f.Group.SingleEngine() && f.Record.SIC > 0 {
		pic += f.Record.SIC
	}
	if pic == 0 && f.Record.SIC == 0 && f.Record.TotalTime > 0 {
		pic = f.Record.TotalTime
	}

	if limit := f.Record.TotalTime; pic > limit {
		f.advise("PIC credit %.2f exceeds total time %.2f, clamped", pic, limit)
		pic = limit
	}
	f.PIC = pic
}

// stepSIC credits the SIC field as-is on multi-engine aircraft.
func stepSIC(f *Flight) {
	if !f.Group.MultiEngine() || f.Student > 0 {
		return
	}
	sic := f.Record.SIC
	if limit := f.Record.TotalTime - f.PIC; sic > limit {
		if limit < 0 {
			limit = 0
		}
		f.advise("SIC credit %.2f exceeds remaining time %.2f, clamped", sic, limit)
		sic = limit
	}
	f.SIC = sic
}

// stepCrossCountry determines cross-country status and the PIC-XC credit.
// An unknown distance leaves the logged cross-country duration alone to
// decide; it never defaults the status to "not cross-country".
func stepCrossCountry(f *Flight) {
	f.IsCrossCountry = f.Record.CrossCountry > 0 ||
		(f.Record.DistanceKnown && f.Record.Distance > XCThresholdNM)

	if !f.IsCrossCountry || f.Student > 0 || f.SafetyExcluded > 0 || f.PIC == 0 {
		return
	}
	f.PICXC = f.Record.CrossCountry
	if f.PICXC == 0 {
		// Cross-country by distance with no XC time logged: the whole PIC
		// credit was flown on the qualifying leg.
		f.PICXC = f.PIC
	}
	if f.PICXC > f.PIC {
		f.advise("PIC XC credit %.2f exceeds PIC credit %.2f, clamped", f.PICXC, f.PIC)
		f.PICXC = f.PIC
	}
}

// stepActualInstrument records actual instrument time. It accrues for
// Table 2 regardless of role; it is PIC-qualifying only outside
// instruction on single-pilot aircraft, which the role steps above have
// already settled.
func stepActualInstrument(f *Flight) {
	f.InstrumentActual = f.Record.ActualInstrument
}

// stepSimulatedInstrument records hood time. Under instruction it is
// already Student time (never PIC); otherwise it accrues to whatever role
// the flight carries.
func stepSimulatedInstrument(f *Flight) {
	f.InstrumentSimulated = f.Record.SimulatedInstrument
}

// stepDevice moves training-device sessions out of the role totals
// entirely; their hours live only in the device accumulator for Table 2.
func stepDevice(f *Flight) {
	isDevice := aircraft.IsDevice(f.Record.AircraftType, f.Record.Registration) ||
		(f.Record.Simulator > 0 && f.Record.TotalTime == 0)
	if !isDevice {
		return
	}
	f.IsDevice = true
	f.DeviceHours = f.Record.TotalTime
	if f.DeviceHours == 0 {
		f.DeviceHours = f.Record.Simulator
	}
	f.Student, f.PIC, f.SIC, f.SafetyExcluded, f.PICXC = 0, 0, 0, 0, 0
	f.IsCrossCountry = false
}

func stepComplex(f *Flight) {
	if f.IsDevice {
		return
	}
	f.IsComplex = aircraft.IsComplex(f.Record.AircraftType) || f.Group.MultiEngine()
}

// stepNightSplit splits total time into day and night portions. Night is a
// parallel breakdown of whichever role the flight carries, not a role of
// its own.
func stepNightSplit(f *Flight) {
	if f.IsDevice {
		return
	}
	night := f.Record.Night
	if night > f.Record.TotalTime {
		f.advise("night time %.2f exceeds total time %.2f, clamped", night, f.Record.TotalTime)
		night = f.Record.TotalTime
	}
	if night < 0 {
		f.advise("negative night time %.2f, clamped to zero", night)
		night = 0
	}
	f.NightHours = night
	f.DayHours = f.Record.TotalTime - night
	f.IsNight = night > 0
}

func (f *Flight) advise(format string, args ...any) {
	f.Advisories = append(f.Advisories, fmt.Sprintf(format, args...))
}
