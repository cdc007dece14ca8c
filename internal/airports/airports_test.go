package airports

import "testing"

func TestHaversineNM(t *testing.T) {
	// Fort Pierce to Vero Beach is a short hop, about 10 NM.
	d := HaversineNM(builtinAirports["KFPR"], builtinAirports["KVRB"])
	if d < 9 || d > 12 {
		t.Errorf("KFPR-KVRB = %.1f NM, want about 10", d)
	}

	// JFK to LAX-area distances sanity check: JFK to Boston ~160 NM.
	d = HaversineNM(builtinAirports["KJFK"], builtinAirports["KBOS"])
	if d < 150 || d > 175 {
		t.Errorf("KJFK-KBOS = %.1f NM, want about 160", d)
	}

	// Zero distance for identical coordinates.
	if d := HaversineNM(builtinAirports["KJFK"], builtinAirports["KJFK"]); d != 0 {
		t.Errorf("same point distance = %.1f, want 0", d)
	}
}

func TestProvider_Distance(t *testing.T) {
	p := NewProvider(nil)

	d, ok := p.Distance("KFPR", "KVRB")
	if !ok {
		t.Fatal("Distance(KFPR, KVRB) not found")
	}
	if d <= 0 {
		t.Errorf("distance = %.1f, want > 0", d)
	}

	// Case and whitespace are tolerated.
	d2, ok := p.Distance(" kfpr ", "kvrb")
	if !ok || d2 != d {
		t.Errorf("normalized lookup = %.1f (ok=%v), want %.1f", d2, ok, d)
	}

	// Same airport is known, distance zero.
	if d, ok := p.Distance("KFPR", "KFPR"); !ok || d != 0 {
		t.Errorf("same-airport = %.1f (ok=%v), want 0 true", d, ok)
	}

	// Unknown codes are reported, not zeroed.
	if _, ok := p.Distance("XXXX", "KVRB"); ok {
		t.Error("unknown airport resolved, want not found")
	}
	unknown := p.Unknown()
	if len(unknown) != 1 || unknown[0] != "XXXX" {
		t.Errorf("Unknown() = %v, want [XXXX]", unknown)
	}
}

func TestProvider_Overlay(t *testing.T) {
	p := NewProvider(map[string]Coord{
		"LLHA": {32.8094, 35.0431}, // Haifa
	})

	d, ok := p.Distance("LLHA", "LLBG")
	if !ok {
		t.Fatal("overlay airport not resolved")
	}
	// Haifa to Ben Gurion is roughly 48 NM.
	if d < 40 || d > 60 {
		t.Errorf("LLHA-LLBG = %.1f NM, want about 48", d)
	}
}
