package pattern

import (
	"github.com/screenburn/screentest/screentest/display"
	"github.com/screenburn/screentest/screentest/video"
)

// Pattern identifies one of the renderable full-screen test patterns.
// The ordering is significant: next/previous navigation wraps modulo Count.
type Pattern int

const (
	SolidRed Pattern = iota
	SolidGreen
	SolidBlue
	SolidWhite
	SolidBlack
	SolidCyan
	SolidMagenta
	SolidYellow
	GradientHorizontal
	GradientVertical
	CheckerboardSmall
	CheckerboardLarge
	HorizontalBars
	VerticalBars
	MovingBarHorizontal
	MovingBarVertical
	ColorCycle
	InversionTest
	GrayLevels

	// Count is the number of patterns; keep it last.
	Count
)

var names = [Count]string{
	SolidRed:            "solid_red",
	SolidGreen:          "solid_green",
	SolidBlue:           "solid_blue",
	SolidWhite:          "solid_white",
	SolidBlack:          "solid_black",
	SolidCyan:           "solid_cyan",
	SolidMagenta:        "solid_magenta",
	SolidYellow:         "solid_yellow",
	GradientHorizontal:  "gradient_h",
	GradientVertical:    "gradient_v",
	CheckerboardSmall:   "checkerboard_small",
	CheckerboardLarge:   "checkerboard_large",
	HorizontalBars:      "horizontal_bars",
	VerticalBars:        "vertical_bars",
	MovingBarHorizontal: "moving_bar_h",
	MovingBarVertical:   "moving_bar_v",
	ColorCycle:          "color_cycle",
	InversionTest:       "inversion_test",
	GrayLevels:          "gray_levels",
}

// String returns a short machine-friendly pattern name, used in logs and
// snapshot filenames.
func (p Pattern) String() string {
	if p < 0 || p >= Count {
		return "unknown"
	}
	return names[p]
}

// Next returns the following pattern, wrapping around at the end.
func (p Pattern) Next() Pattern {
	return (p + 1) % Count
}

// Prev returns the preceding pattern, wrapping around at the start.
func (p Pattern) Prev() Pattern {
	return (p + Count - 1) % Count
}

// renderFunc fills every logical pixel of the surface. There are no error
// paths: dimensions are fixed at startup and all indices are derived by
// wrap arithmetic.
type renderFunc func(s *video.Surface, anim AnimationState)

// renderers is the dispatch table for the closed pattern enumeration. The
// fixed array size makes an unhandled pattern a compile-time hole rather
// than a runtime fallback.
var renderers = [Count]renderFunc{
	SolidRed:            solid(video.RedColor),
	SolidGreen:          solid(video.GreenColor),
	SolidBlue:           solid(video.BlueColor),
	SolidWhite:          solid(video.WhiteColor),
	SolidBlack:          solid(video.BlackColor),
	SolidCyan:           solid(video.CyanColor),
	SolidMagenta:        solid(video.MagentaColor),
	SolidYellow:         solid(video.YellowColor),
	GradientHorizontal:  drawGradientHorizontal,
	GradientVertical:    drawGradientVertical,
	CheckerboardSmall:   checkerboard(display.CheckerSmallCell),
	CheckerboardLarge:   checkerboard(display.CheckerLargeCell),
	HorizontalBars:      drawHorizontalBars,
	VerticalBars:        drawVerticalBars,
	MovingBarHorizontal: drawMovingBarHorizontal,
	MovingBarVertical:   drawMovingBarVertical,
	ColorCycle:          drawColorCycle,
	InversionTest:       drawInversionTest,
	GrayLevels:          drawGrayLevels,
}

// Draw renders the pattern into the surface for the given animation state.
func (p Pattern) Draw(s *video.Surface, anim AnimationState) {
	renderers[p](s, anim)
}
