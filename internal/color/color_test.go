package color

import "testing"

func TestKelvinMiredStability(t *testing.T) {
	// A kelvin -> mired -> kelvin round trip must land on the same mired
	// value again (within the 1-unit rounding tolerance) and stay there.
	for k := 1000; k <= 40000; k += 50 {
		m := KelvinToMired(k)
		k2 := MiredToKelvin(m)
		m2 := KelvinToMired(k2)
		if diff := m2 - m; diff < -1 || diff > 1 {
			t.Fatalf("kelvin %d: mired %d -> kelvin %d -> mired %d", k, m, k2, m2)
		}
		if k3 := MiredToKelvin(m2); k3 != k2 {
			t.Fatalf("kelvin %d: round trip not stable: %d != %d", k, k3, k2)
		}
	}
}

func TestMiredKelvinRoundTrip(t *testing.T) {
	for m := 25; m <= 1000; m++ {
		k := MiredToKelvin(m)
		m2 := KelvinToMired(k)
		if diff := m2 - m; diff < -1 || diff > 1 {
			t.Errorf("mired %d -> kelvin %d -> mired %d", m, k, m2)
		}
	}
}

func TestKelvinToMired(t *testing.T) {
	tests := []struct {
		kelvin int
		want   int
	}{
		{2700, 370},
		{4000, 250},
		{6500, 154},
		{0, 0},
	}
	for _, tt := range tests {
		if got := KelvinToMired(tt.kelvin); got != tt.want {
			t.Errorf("KelvinToMired(%d) = %d, want %d", tt.kelvin, got, tt.want)
		}
	}
}

func TestWhiteLevels(t *testing.T) {
	tests := []struct {
		name       string
		kelvin     int
		brightness uint8
		wantCold   uint8
		wantWarm   uint8
	}{
		{"warmest full", 2700, 255, 0, 255},
		{"coolest full", 6500, 255, 255, 0},
		{"midpoint full", 4600, 255, 255, 255},
		{"midpoint half", 4600, 128, 128, 128},
		{"warmest half", 2700, 128, 0, 128},
		{"4000K full", 4000, 255, 133, 255},
		{"below range clamps", 1000, 255, 0, 255},
		{"above range clamps", 9000, 255, 255, 0},
		{"zero brightness", 4000, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cold, warm := WhiteLevels(tt.kelvin, tt.brightness, 2700, 6500)
			if cold != tt.wantCold || warm != tt.wantWarm {
				t.Errorf("WhiteLevels(%d, %d) = (%d, %d), want (%d, %d)",
					tt.kelvin, tt.brightness, cold, warm, tt.wantCold, tt.wantWarm)
			}
		})
	}
}

func TestWhiteLevelsTrackBrightness(t *testing.T) {
	// The larger channel must equal the requested brightness at any kelvin.
	for k := 2700; k <= 6500; k += 200 {
		for _, b := range []uint8{1, 64, 128, 255} {
			cold, warm := WhiteLevels(k, b, 2700, 6500)
			max := cold
			if warm > max {
				max = warm
			}
			if max != b {
				t.Errorf("WhiteLevels(%d, %d): max channel %d, want %d", k, b, max, b)
			}
		}
	}
}

func TestRGBWBrightness(t *testing.T) {
	tests := []struct {
		name       string
		rgbw       [4]uint8
		brightness uint8
		want       [4]uint8
	}{
		{"all zero stays zero", [4]uint8{0, 0, 0, 0}, 128, [4]uint8{0, 0, 0, 0}},
		{"all zero full brightness", [4]uint8{0, 0, 0, 0}, 255, [4]uint8{0, 0, 0, 0}},
		{"scale down preserves ratios", [4]uint8{255, 128, 0, 64}, 128, [4]uint8{128, 64, 0, 32}},
		{"scale up", [4]uint8{128, 64, 0, 32}, 255, [4]uint8{255, 128, 0, 64}},
		{"unchanged at current brightness", [4]uint8{200, 100, 50, 25}, 200, [4]uint8{200, 100, 50, 25}},
		{"to zero", [4]uint8{10, 20, 30, 40}, 0, [4]uint8{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBWBrightness(tt.rgbw, tt.brightness); got != tt.want {
				t.Errorf("RGBWBrightness(%v, %d) = %v, want %v", tt.rgbw, tt.brightness, got, tt.want)
			}
		})
	}
}

func TestRGBWWBrightness(t *testing.T) {
	got := RGBWWBrightness([5]uint8{255, 0, 0, 128, 64}, 128)
	want := [5]uint8{128, 0, 0, 64, 32}
	if got != want {
		t.Errorf("RGBWWBrightness = %v, want %v", got, want)
	}

	zero := [5]uint8{}
	if got := RGBWWBrightness(zero, 255); got != zero {
		t.Errorf("RGBWWBrightness(zero) = %v, want zero", got)
	}
}

func TestRGBCWBrightnessMatchesNativeScaling(t *testing.T) {
	// Scaling in external order must agree with scaling in native order.
	rgbcw := [5]uint8{200, 100, 50, 80, 160}
	got := RGBCWBrightness(rgbcw, 100)
	viaNative := RGBWCToRGBCW(RGBWWBrightness(RGBCWToRGBWC(rgbcw), 100))
	if got != viaNative {
		t.Errorf("RGBCWBrightness = %v, native path = %v", got, viaNative)
	}
	if got[3] != 40 || got[4] != 80 {
		t.Errorf("cold/warm = %d/%d, want 40/80", got[3], got[4])
	}
}

func TestChannelOrderPermutation(t *testing.T) {
	in := [5]uint8{1, 2, 3, 4, 5}
	wc := RGBCWToRGBWC(in)
	if wc != [5]uint8{1, 2, 3, 5, 4} {
		t.Errorf("RGBCWToRGBWC(%v) = %v", in, wc)
	}
	if back := RGBWCToRGBCW(wc); back != in {
		t.Errorf("permutation not a bijection: got %v, want %v", back, in)
	}

	// Every vector must survive the round trip, not just distinct values.
	for _, v := range [][5]uint8{{0, 0, 0, 0, 0}, {255, 255, 255, 255, 255}, {9, 9, 9, 1, 2}} {
		if got := RGBWCToRGBCW(RGBCWToRGBWC(v)); got != v {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestRGBToHS(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantH   float64
		wantS   float64
	}{
		{"red", 255, 0, 0, 0, 100},
		{"green", 0, 255, 0, 120, 100},
		{"blue", 0, 0, 255, 240, 100},
		{"white", 255, 255, 255, 0, 0},
		{"black", 0, 0, 0, 0, 0},
		{"dim red", 128, 0, 0, 0, 100},
		{"yellow", 255, 255, 0, 60, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := RGBToHS(tt.r, tt.g, tt.b)
			if !near(h, tt.wantH, 1) || !near(s, tt.wantS, 1) {
				t.Errorf("RGBToHS(%d,%d,%d) = (%.1f, %.1f), want (%.1f, %.1f)",
					tt.r, tt.g, tt.b, h, s, tt.wantH, tt.wantS)
			}
		})
	}
}

func TestHSRoundTripDiscardsBrightness(t *testing.T) {
	// A dim color must come back at full value with the same hue.
	r, g, b := HSToRGB(RGBToHS(128, 0, 0))
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("dim red round trip = (%d,%d,%d), want (255,0,0)", r, g, b)
	}

	r, g, b = HSToRGB(RGBToHS(0, 64, 64))
	if r != 0 || g != 255 || b != 255 {
		t.Errorf("dim cyan round trip = (%d,%d,%d), want (0,255,255)", r, g, b)
	}

	r, g, b = HSToRGB(RGBToHS(30, 30, 30))
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("gray round trip = (%d,%d,%d), want (255,255,255)", r, g, b)
	}
}

func near(got, want, tolerance float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
