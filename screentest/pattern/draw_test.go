package pattern

import (
	"fmt"
	"testing"

	"github.com/screenburn/screentest/screentest/video"
	"github.com/stretchr/testify/assert"
)

const sentinel = 0xDEADBEEF

// sentinelSurface returns a surface with stride padding, fully poisoned so
// tests can detect unwritten logical pixels and writes into the padding.
func sentinelSurface(width, height int) *video.Surface {
	s := video.NewSurfaceWithStride(width, height, width+8)
	raw := s.ToSlice()
	for i := range raw {
		raw[i] = sentinel
	}
	return s
}

// Every pattern must write every logical pixel and leave the stride
// padding alone, for both a fresh and an advanced animation state.
func TestAllPatternsFullCoverage(t *testing.T) {
	states := []AnimationState{
		{Frame: 0, Speed: 2},
		{Frame: 173, Speed: 7},
	}

	for p := Pattern(0); p < Count; p++ {
		for _, anim := range states {
			t.Run(fmt.Sprintf("%s_frame%d", p, anim.Frame), func(t *testing.T) {
				s := sentinelSurface(96, 64)
				p.Draw(s, anim)

				raw := s.ToSlice()
				for y := 0; y < 64; y++ {
					for x := 0; x < 96; x++ {
						if raw[y*s.Stride()+x] == sentinel {
							t.Fatalf("logical pixel (%d,%d) not written", x, y)
						}
					}
					for x := 96; x < s.Stride(); x++ {
						if raw[y*s.Stride()+x] != sentinel {
							t.Fatalf("padding pixel (%d,%d) was written", x, y)
						}
					}
				}
			})
		}
	}
}

func TestSolidFills(t *testing.T) {
	tests := []struct {
		pattern Pattern
		color   video.Pixel
	}{
		{SolidRed, video.RedColor},
		{SolidGreen, video.GreenColor},
		{SolidBlue, video.BlueColor},
		{SolidWhite, video.WhiteColor},
		{SolidBlack, video.BlackColor},
		{SolidCyan, video.CyanColor},
		{SolidMagenta, video.MagentaColor},
		{SolidYellow, video.YellowColor},
	}

	for _, tt := range tests {
		s := video.NewSurface(16, 8)
		tt.pattern.Draw(s, AnimationState{})
		assert.Equal(t, tt.color, s.GetPixel(0, 0), "%s top-left", tt.pattern)
		assert.Equal(t, tt.color, s.GetPixel(15, 7), "%s bottom-right", tt.pattern)
	}
}

func TestGradientHorizontal(t *testing.T) {
	s := video.NewSurface(256, 4)
	GradientHorizontal.Draw(s, AnimationState{})

	tests := []struct {
		x     int
		level byte
	}{
		{0, 0},
		{128, 127},
		{255, 254},
	}
	for _, tt := range tests {
		want := video.Pack(tt.level, tt.level, tt.level)
		assert.Equal(t, want, s.GetPixel(tt.x, 0), "x=%d", tt.x)
		// Directionally invariant across rows.
		assert.Equal(t, want, s.GetPixel(tt.x, 3), "x=%d bottom row", tt.x)
	}
}

func TestGradientVertical(t *testing.T) {
	s := video.NewSurface(4, 128)
	GradientVertical.Draw(s, AnimationState{})

	for _, y := range []int{0, 64, 127} {
		level := byte(y * 255 / 128)
		want := video.Pack(level, level, level)
		assert.Equal(t, want, s.GetPixel(0, y), "y=%d", y)
		assert.Equal(t, want, s.GetPixel(3, y), "y=%d right column", y)
	}
}

func TestCheckerboardCells(t *testing.T) {
	tests := []struct {
		pattern Pattern
		cell    int
	}{
		{CheckerboardSmall, 8},
		{CheckerboardLarge, 64},
	}

	for _, tt := range tests {
		s := video.NewSurface(tt.cell*3, tt.cell*2)
		tt.pattern.Draw(s, AnimationState{})

		// (0,0) is black, one cell to the right is white.
		assert.Equal(t, video.BlackColor, s.GetPixel(0, 0), "cell %d origin", tt.cell)
		assert.Equal(t, video.WhiteColor, s.GetPixel(tt.cell, 0), "cell %d right neighbor", tt.cell)
		assert.Equal(t, video.WhiteColor, s.GetPixel(0, tt.cell), "cell %d below neighbor", tt.cell)
		assert.Equal(t, video.BlackColor, s.GetPixel(tt.cell, tt.cell), "cell %d diagonal", tt.cell)
		// Last pixel inside the first cell is still black.
		assert.Equal(t, video.BlackColor, s.GetPixel(tt.cell-1, tt.cell-1), "cell %d interior", tt.cell)
	}
}

func TestVerticalBarsBandLayout(t *testing.T) {
	// Width 84 leaves 4 remainder columns that belong to the last band.
	s := video.NewSurface(84, 4)
	VerticalBars.Draw(s, AnimationState{})

	expected := []video.Pixel{
		video.RedColor, video.GreenColor, video.BlueColor, video.CyanColor,
		video.MagentaColor, video.YellowColor, video.WhiteColor, video.BlackColor,
	}
	for band := 0; band < 8; band++ {
		x := band*10 + 5
		assert.Equal(t, expected[band], s.GetPixel(x, 0), "band %d", band)
	}
	for x := 80; x < 84; x++ {
		assert.Equal(t, video.BlackColor, s.GetPixel(x, 0), "remainder column %d", x)
	}
}

func TestHorizontalBarsBandLayout(t *testing.T) {
	s := video.NewSurface(4, 84)
	HorizontalBars.Draw(s, AnimationState{})

	expected := []video.Pixel{
		video.RedColor, video.GreenColor, video.BlueColor, video.CyanColor,
		video.MagentaColor, video.YellowColor, video.WhiteColor, video.BlackColor,
	}
	for band := 0; band < 8; band++ {
		y := band*10 + 5
		assert.Equal(t, expected[band], s.GetPixel(0, y), "band %d", band)
	}
	for y := 80; y < 84; y++ {
		assert.Equal(t, video.BlackColor, s.GetPixel(0, y), "remainder row %d", y)
	}
}

func TestMovingBarStartsOffScreen(t *testing.T) {
	s := video.NewSurface(96, 16)
	MovingBarHorizontal.Draw(s, AnimationState{Frame: 0, Speed: 2})

	// Position 0 puts the bar at [-64, 0), fully off-screen.
	for x := 0; x < 96; x++ {
		assert.Equal(t, video.BlackColor, s.GetPixel(x, 0), "x=%d", x)
	}
}

func TestMovingBarInBarRange(t *testing.T) {
	s := video.NewSurface(256, 4)
	// Position = 100*2 % (256+64) = 200; bar covers [136, 200).
	MovingBarHorizontal.Draw(s, AnimationState{Frame: 100, Speed: 2})

	assert.Equal(t, video.BlackColor, s.GetPixel(135, 0))
	assert.Equal(t, video.WhiteColor, s.GetPixel(136, 0))
	assert.Equal(t, video.WhiteColor, s.GetPixel(199, 0))
	assert.Equal(t, video.BlackColor, s.GetPixel(200, 0))
}

func TestMovingBarSweepPeriod(t *testing.T) {
	// For axis length 960 at speed 2 the sweep repeats every
	// (960+64)/2 = 512 frames.
	anim := AnimationState{Frame: 0, Speed: 2}
	assert.Equal(t, 0, BarPosition(anim, 960))

	for _, frame := range []int{1, 17, 400, 511} {
		a := AnimationState{Frame: frame, Speed: 2}
		b := AnimationState{Frame: frame + 512, Speed: 2}
		assert.Equal(t, BarPosition(a, 960), BarPosition(b, 960), "frame %d", frame)
	}

	wrapped := AnimationState{Frame: 512, Speed: 2}
	assert.Equal(t, 0, BarPosition(wrapped, 960))
}

func TestMovingBarVertical(t *testing.T) {
	s := video.NewSurface(4, 128)
	// Position = 50*2 % (128+64) = 100; bar covers rows [36, 100).
	MovingBarVertical.Draw(s, AnimationState{Frame: 50, Speed: 2})

	assert.Equal(t, video.BlackColor, s.GetPixel(0, 35))
	assert.Equal(t, video.WhiteColor, s.GetPixel(0, 36))
	assert.Equal(t, video.WhiteColor, s.GetPixel(0, 99))
	assert.Equal(t, video.BlackColor, s.GetPixel(0, 100))
}

func TestColorCyclePhase(t *testing.T) {
	s := video.NewSurface(8, 8)

	ColorCycle.Draw(s, AnimationState{Frame: 0, Speed: 2})
	assert.Equal(t, video.RedColor, s.GetPixel(4, 4))

	// 30 frames at speed 2 is hue 60: yellow.
	ColorCycle.Draw(s, AnimationState{Frame: 30, Speed: 2})
	assert.Equal(t, video.YellowColor, s.GetPixel(4, 4))

	// The hue wraps modulo 360.
	ColorCycle.Draw(s, AnimationState{Frame: 180, Speed: 2})
	assert.Equal(t, video.RedColor, s.GetPixel(4, 4))
}

func TestInversionFlashPhases(t *testing.T) {
	tests := []struct {
		frame int
		speed int
		color video.Pixel
	}{
		{0, 2, video.BlackColor},
		{59, 2, video.BlackColor},
		{60, 2, video.WhiteColor},
		{119, 2, video.WhiteColor},
		{120, 2, video.BlackColor},
		// Speed must not affect the flash cadence.
		{60, 10, video.WhiteColor},
		{0, 10, video.BlackColor},
	}

	for _, tt := range tests {
		s := video.NewSurface(8, 8)
		InversionTest.Draw(s, AnimationState{Frame: tt.frame, Speed: tt.speed})
		assert.Equal(t, tt.color, s.GetPixel(0, 0), "frame %d speed %d", tt.frame, tt.speed)
	}
}

func TestGrayLevelsRamp(t *testing.T) {
	// Width 66 leaves 2 remainder columns for the last band.
	s := video.NewSurface(66, 4)
	GrayLevels.Draw(s, AnimationState{})

	for i := 0; i < 16; i++ {
		level := byte(i * 255 / 15)
		want := video.Pack(level, level, level)
		assert.Equal(t, want, s.GetPixel(i*4, 0), "band %d", i)
	}

	assert.Equal(t, video.WhiteColor, s.GetPixel(64, 0), "remainder column")
	assert.Equal(t, video.WhiteColor, s.GetPixel(65, 0), "remainder column")
}

func TestNavigationWrap(t *testing.T) {
	assert.Equal(t, Pattern(0), (Count - 1).Next())
	assert.Equal(t, Count-1, Pattern(0).Prev())
	assert.Equal(t, Pattern(1), Pattern(0).Next())
	assert.Equal(t, Pattern(0), Pattern(1).Prev())
}

func TestPatternNames(t *testing.T) {
	for p := Pattern(0); p < Count; p++ {
		assert.NotEmpty(t, p.String())
		assert.NotEqual(t, "unknown", p.String())
	}
	assert.Equal(t, "unknown", Count.String())
}
