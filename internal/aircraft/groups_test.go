package aircraft

import "testing"

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"C172R", "C172"},
		{"C172S", "C172"},
		{"c172r", "C172"},
		{"P28A-161", "PA28"},
		{"PA-44", "PA44"},
		{" BE76 ", "BE76"},
		{"PC12", "PC12"},
		{"UNKNOWN99", "UNKNOWN99"},
	}

	for _, tt := range tests {
		if got := NormalizeType(tt.in); got != tt.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGroupFor(t *testing.T) {
	tests := []struct {
		name         string
		aircraftType string
		engineType   string
		class        string
		want         Group
	}{
		{"SE piston", "C172R", "", "", GroupA},
		{"ME piston", "PA44", "", "", GroupB},
		{"jet", "A320", "", "", GroupC},
		{"SE turboprop", "PC12", "", "", GroupD},
		{"unknown with piston single metadata", "ZZ99", "Piston", "Single Engine Land", GroupA},
		{"unknown with piston multi metadata", "ZZ99", "Piston", "Multi Engine Land", GroupB},
		{"unknown with turboprop metadata", "ZZ99", "Turboprop", "Single Engine Land", GroupD},
		{"unknown with jet metadata", "ZZ99", "Jet", "", GroupC},
		{"unknown without metadata", "ZZ99", "", "", GroupUnresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupFor(tt.aircraftType, tt.engineType, tt.class); got != tt.want {
				t.Errorf("GroupFor(%q, %q, %q) = %v, want %v",
					tt.aircraftType, tt.engineType, tt.class, got, tt.want)
			}
		})
	}
}

func TestGroupProperties(t *testing.T) {
	if !GroupB.MultiEngine() || !GroupC.MultiEngine() {
		t.Error("groups B and C must be multi-engine")
	}
	if !GroupA.SingleEngine() || !GroupD.SingleEngine() {
		t.Error("groups A and D must be single-engine")
	}
	if GroupUnresolved.SingleEngine() || GroupUnresolved.MultiEngine() {
		t.Error("unresolved group must be neither single- nor multi-engine")
	}
	if GroupA.Letter() != "א" || GroupB.Letter() != "ב" || GroupC.Letter() != "ג" || GroupD.Letter() != "ד" {
		t.Error("Hebrew group letters are wrong")
	}
}

func TestIsDevice(t *testing.T) {
	tests := []struct {
		aircraftType string
		registration string
		want         bool
	}{
		{"PA44 SIM", "N123", true},
		{"C172 FTD", "N123", true},
		{"B737 FFS", "N123", true},
		{"C172", "FRASCA 142", true},
		{"H25B", "FLIGHT SAFETY", true},
		{"A320", "CAE 7000XR", true},
		{"A319", "ATP JETS", true},
		{"C172", "N12345", false},
		{"PA44", "4X-CGK", false},
	}

	for _, tt := range tests {
		if got := IsDevice(tt.aircraftType, tt.registration); got != tt.want {
			t.Errorf("IsDevice(%q, %q) = %v, want %v",
				tt.aircraftType, tt.registration, got, tt.want)
		}
	}
}

func TestIsComplex(t *testing.T) {
	for _, typ := range []string{"PA44", "BE76", "PA34", "BE33", "BE36", "M20P", "PA-44"} {
		if !IsComplex(typ) {
			t.Errorf("IsComplex(%q) = false, want true", typ)
		}
	}
	for _, typ := range []string{"C172", "PA28", "A320"} {
		if IsComplex(typ) {
			t.Errorf("IsComplex(%q) = true, want false", typ)
		}
	}
}
