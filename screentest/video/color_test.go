package video

import (
	"testing"
)

func TestPackChannelOrder(t *testing.T) {
	tests := []struct {
		r, g, b  byte
		expected Pixel
	}{
		{0x00, 0x00, 0x00, 0xFF000000},
		{0xFF, 0xFF, 0xFF, 0xFFFFFFFF},
		{0xFF, 0x00, 0x00, 0xFF0000FF},
		{0x00, 0xFF, 0x00, 0xFF00FF00},
		{0x00, 0x00, 0xFF, 0xFFFF0000},
		{0x12, 0x34, 0x56, 0xFF563412},
	}

	for _, tt := range tests {
		result := Pack(tt.r, tt.g, tt.b)
		if result != tt.expected {
			t.Errorf("Pack(%#x, %#x, %#x) = %#x; want %#x", tt.r, tt.g, tt.b, result, tt.expected)
		}
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := []struct{ r, g, b byte }{
		{0, 0, 0},
		{255, 255, 255},
		{1, 128, 254},
		{17, 34, 51},
	}

	for _, tt := range tests {
		r, g, b := Unpack(Pack(tt.r, tt.g, tt.b))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("Unpack(Pack(%d, %d, %d)) = (%d, %d, %d)", tt.r, tt.g, tt.b, r, g, b)
		}
	}
}

func TestPaletteMatchesPack(t *testing.T) {
	tests := []struct {
		name    string
		color   Pixel
		r, g, b byte
	}{
		{"black", BlackColor, 0, 0, 0},
		{"white", WhiteColor, 255, 255, 255},
		{"red", RedColor, 255, 0, 0},
		{"green", GreenColor, 0, 255, 0},
		{"blue", BlueColor, 0, 0, 255},
		{"cyan", CyanColor, 0, 255, 255},
		{"magenta", MagentaColor, 255, 0, 255},
		{"yellow", YellowColor, 255, 255, 0},
		{"gray", GrayColor, 0x80, 0x80, 0x80},
		{"dark gray", DarkGrayColor, 0x40, 0x40, 0x40},
	}

	for _, tt := range tests {
		if got := Pack(tt.r, tt.g, tt.b); got != tt.color {
			t.Errorf("%s: Pack(%d, %d, %d) = %#x; want %#x", tt.name, tt.r, tt.g, tt.b, got, tt.color)
		}
	}
}

func TestHueToRGBSectorBoundaries(t *testing.T) {
	tests := []struct {
		hue     int
		r, g, b byte
	}{
		{0, 255, 0, 0},
		{60, 255, 255, 0},
		{120, 0, 255, 0},
		{180, 0, 255, 255},
		{240, 0, 0, 255},
		{300, 255, 0, 255},
	}

	for _, tt := range tests {
		r, g, b := HueToRGB(tt.hue)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("HueToRGB(%d) = (%d, %d, %d); want (%d, %d, %d)", tt.hue, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

// The wrap from 359 back to 0 must be continuous: 359 is red with a tiny
// blue remainder, never a flicker to a different sector.
func TestHueToRGBWrapContinuity(t *testing.T) {
	r, g, b := HueToRGB(359)
	if r != 255 {
		t.Errorf("HueToRGB(359) r = %d; want 255", r)
	}
	if g != 0 {
		t.Errorf("HueToRGB(359) g = %d; want 0", g)
	}
	if b > 5 {
		t.Errorf("HueToRGB(359) b = %d; want near 0", b)
	}
}

// Each channel changes by at most a small step between adjacent hues.
func TestHueToRGBMonotonicSteps(t *testing.T) {
	abs := func(a, b byte) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}

	pr, pg, pb := HueToRGB(0)
	for hue := 1; hue < 360; hue++ {
		r, g, b := HueToRGB(hue)
		if abs(r, pr) > 5 || abs(g, pg) > 5 || abs(b, pb) > 5 {
			t.Fatalf("discontinuity at hue %d: (%d,%d,%d) -> (%d,%d,%d)", hue, pr, pg, pb, r, g, b)
		}
		pr, pg, pb = r, g, b
	}
}
