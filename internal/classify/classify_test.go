package classify

import (
	"testing"
	"time"

	"caai_logbook/internal/aircraft"
	"caai_logbook/internal/logbook"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func baseRecord() *logbook.FlightRecord {
	return &logbook.FlightRecord{
		Date:         date("2024-03-15"),
		From:         "KFPR",
		To:           "KVRB",
		Registration: "N12345",
		AircraftType: "C172",
		TotalTime:    1.5,
	}
}

func TestClassify_StudentFlight(t *testing.T) {
	rec := baseRecord()
	rec.Instructor = "J. Smith"
	rec.DualReceived = 1.5
	rec.PIC = 1.5 // logged PIC alongside instruction must not double-credit

	f := Classify(rec, aircraft.GroupFor)

	if f.Student != 1.5 {
		t.Errorf("Student = %.2f, want 1.50", f.Student)
	}
	if f.PIC != 0 {
		t.Errorf("PIC = %.2f, want 0", f.PIC)
	}
	if got := f.Role(); got != RoleStudent {
		t.Errorf("Role() = %v, want RoleStudent", got)
	}
}

func TestClassify_DualReceivedWithoutInstructorName(t *testing.T) {
	rec := baseRecord()
	rec.DualReceived = 1.5

	f := Classify(rec, aircraft.GroupFor)
	if f.Student != 1.5 {
		t.Errorf("Student = %.2f, want 1.50", f.Student)
	}
}

func TestClassify_SafetyPilotSingleEngine(t *testing.T) {
	rec := baseRecord()
	rec.Remarks = "Acted as Safety Pilot for hood work"
	rec.PIC = 1.5

	f := Classify(rec, aircraft.GroupFor)

	if f.SafetyExcluded != 1.5 {
		t.Errorf("SafetyExcluded = %.2f, want 1.50", f.SafetyExcluded)
	}
	if f.RoleSum() != 0 {
		t.Errorf("RoleSum() = %.2f, want 0", f.RoleSum())
	}
	if got := f.Role(); got != RoleSafetyPilot {
		t.Errorf("Role() = %v, want RoleSafetyPilot", got)
	}
}

func TestClassify_SafetyPilotMultiEngineNotExcluded(t *testing.T) {
	// On multi-engine aircraft the SIC field governs; a safety-pilot
	// remark alone does not exclude the hours.
	rec := baseRecord()
	rec.AircraftType = "PA44"
	rec.Remarks = "safety pilot"
	rec.PIC = 1.5

	f := Classify(rec, aircraft.GroupFor)

	if f.SafetyExcluded != 0 {
		t.Errorf("SafetyExcluded = %.2f, want 0", f.SafetyExcluded)
	}
	if f.PIC != 1.5 {
		t.Errorf("PIC = %.2f, want 1.50", f.PIC)
	}
}

func TestClassify_InstructionOverridesSafetyPilot(t *testing.T) {
	rec := baseRecord()
	rec.Remarks = "safety pilot"
	rec.Instructor = "J. Smith"

	f := Classify(rec, aircraft.GroupFor)

	if f.SafetyExcluded != 0 {
		t.Errorf("SafetyExcluded = %.2f, want 0", f.SafetyExcluded)
	}
	if f.Student != 1.5 {
		t.Errorf("Student = %.2f, want 1.50", f.Student)
	}
}

func TestClassify_SICFoldsIntoPICOnSingleEngine(t *testing.T) {
	rec := baseRecord()
	rec.PIC = 0.5
	rec.SIC = 1.0

	f := Classify(rec, aircraft.GroupFor)

	if f.PIC != 1.5 {
		t.Errorf("PIC = %.2f, want 1.50", f.PIC)
	}
	if f.SIC != 0 {
		t.Errorf("SIC = %.2f, want 0", f.SIC)
	}
}

func TestClassify_SICOnMultiEngine(t *testing.T) {
	rec := baseRecord()
	rec.AircraftType = "BE76"
	rec.SIC = 1.5

	f := Classify(rec, aircraft.GroupFor)

	if f.SIC != 1.5 {
		t.Errorf("SIC = %.2f, want 1.50", f.SIC)
	}
	if f.PIC != 0 {
		t.Errorf("PIC = %.2f, want 0", f.PIC)
	}
	if got := f.Role(); got != RoleSIC {
		t.Errorf("Role() = %v, want RoleSIC", got)
	}
}

func TestClassify_DefaultPICWhenNoRoleFields(t *testing.T) {
	rec := baseRecord()

	f := Classify(rec, aircraft.GroupFor)
	if f.PIC != 1.5 {
		t.Errorf("PIC = %.2f, want 1.50", f.PIC)
	}
}

func TestClassify_PICClampedToTotalTime(t *testing.T) {
	rec := baseRecord()
	rec.PIC = 2.0

	f := Classify(rec, aircraft.GroupFor)

	if f.PIC != 1.5 {
		t.Errorf("PIC = %.2f, want 1.50 (clamped)", f.PIC)
	}
	if len(f.Advisories) == 0 {
		t.Error("expected a clamp advisory, got none")
	}
}

func TestClassify_RoleClampedWhenTotalTimeZero(t *testing.T) {
	rec := baseRecord()
	rec.TotalTime = 0
	rec.PIC = 1.0

	f := Classify(rec, aircraft.GroupFor)

	if f.PIC != 0 {
		t.Errorf("PIC = %.2f, want 0 (clamped)", f.PIC)
	}
	if f.RoleSum() != 0 {
		t.Errorf("RoleSum() = %.2f, want 0", f.RoleSum())
	}
	if len(f.Advisories) == 0 {
		t.Error("expected a clamp advisory, got none")
	}
}

func TestClassify_SICClampedWhenTotalTimeZero(t *testing.T) {
	rec := baseRecord()
	rec.AircraftType = "BE76"
	rec.TotalTime = 0
	rec.SIC = 1.0

	f := Classify(rec, aircraft.GroupFor)

	if f.SIC != 0 {
		t.Errorf("SIC = %.2f, want 0 (clamped)", f.SIC)
	}
	if len(f.Advisories) == 0 {
		t.Error("expected a clamp advisory, got none")
	}
}

func TestClassify_CrossCountry(t *testing.T) {
	tests := []struct {
		name      string
		xcTime    float64
		distance  float64
		distKnown bool
		wantXC    bool
		wantPICXC float64
	}{
		{"logged XC time", 1.5, 0, false, true, 1.5},
		{"distance over threshold", 0, 40, true, true, 1.5},
		{"distance under threshold", 0, 20, true, false, 0},
		{"no XC signal", 0, 0, false, false, 0},
		{"distance unknown, XC logged", 1.0, 0, false, true, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec.PIC = 1.5
			rec.CrossCountry = tt.xcTime
			rec.Distance = tt.distance
			rec.DistanceKnown = tt.distKnown

			f := Classify(rec, aircraft.GroupFor)

			if f.IsCrossCountry != tt.wantXC {
				t.Errorf("IsCrossCountry = %v, want %v", f.IsCrossCountry, tt.wantXC)
			}
			if f.PICXC != tt.wantPICXC {
				t.Errorf("PICXC = %.2f, want %.2f", f.PICXC, tt.wantPICXC)
			}
		})
	}
}

func TestClassify_StudentGetsNoXCCredit(t *testing.T) {
	rec := baseRecord()
	rec.Instructor = "J. Smith"
	rec.CrossCountry = 1.5

	f := Classify(rec, aircraft.GroupFor)

	if !f.IsCrossCountry {
		t.Error("IsCrossCountry = false, want true")
	}
	if f.PICXC != 0 {
		t.Errorf("PICXC = %.2f, want 0", f.PICXC)
	}
}

func TestClassify_Device(t *testing.T) {
	tests := []struct {
		name         string
		aircraftType string
		registration string
		simulator    float64
		totalTime    float64
		wantHours    float64
	}{
		{"SIM in type", "PA44 SIM", "FRASCA", 0, 1.2, 1.2},
		{"vendor registration", "C172", "FRASCA 142", 0, 1.0, 1.0},
		{"simulator time only", "A320", "CAE 7000", 1.5, 0, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec.AircraftType = tt.aircraftType
			rec.Registration = tt.registration
			rec.Simulator = tt.simulator
			rec.TotalTime = tt.totalTime
			rec.PIC = tt.totalTime

			f := Classify(rec, aircraft.GroupFor)

			if !f.IsDevice {
				t.Fatal("IsDevice = false, want true")
			}
			if f.DeviceHours != tt.wantHours {
				t.Errorf("DeviceHours = %.2f, want %.2f", f.DeviceHours, tt.wantHours)
			}
			if f.RoleSum() != 0 {
				t.Errorf("RoleSum() = %.2f, want 0", f.RoleSum())
			}
		})
	}
}

func TestClassify_NightSplit(t *testing.T) {
	rec := baseRecord()
	rec.PIC = 1.5
	rec.Night = 0.6

	f := Classify(rec, aircraft.GroupFor)

	if f.NightHours != 0.6 {
		t.Errorf("NightHours = %.2f, want 0.60", f.NightHours)
	}
	if got := f.DayHours; got < 0.89 || got > 0.91 {
		t.Errorf("DayHours = %.2f, want 0.90", got)
	}
	if !f.IsNight {
		t.Error("IsNight = false, want true")
	}
}

func TestClassify_NightClampedToTotal(t *testing.T) {
	rec := baseRecord()
	rec.Night = 2.0

	f := Classify(rec, aircraft.GroupFor)

	if f.NightHours != 1.5 {
		t.Errorf("NightHours = %.2f, want 1.50 (clamped)", f.NightHours)
	}
	if len(f.Advisories) == 0 {
		t.Error("expected a clamp advisory, got none")
	}
}

func TestClassify_Complex(t *testing.T) {
	rec := baseRecord()
	rec.AircraftType = "PA44"
	rec.SIC = 1.5

	f := Classify(rec, aircraft.GroupFor)
	if !f.IsComplex {
		t.Error("IsComplex = false, want true")
	}
}

func TestClassify_IsPure(t *testing.T) {
	rec := baseRecord()
	rec.PIC = 1.5
	rec.Night = 0.5

	a := Classify(rec, aircraft.GroupFor)
	b := Classify(rec, aircraft.GroupFor)

	if a.PIC != b.PIC || a.NightHours != b.NightHours || a.Group != b.Group {
		t.Error("Classify is not deterministic for the same record")
	}
}
