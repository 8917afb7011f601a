package pattern

import (
	"github.com/screenburn/screentest/screentest/display"
	"github.com/screenburn/screentest/screentest/video"
)

// AnimationState drives the time-varying patterns. Frame increments once
// per presented frame and resets to zero when the active pattern changes;
// Speed is a multiplier in [SpeedMin, SpeedMax] and does not reset Frame
// when adjusted.
type AnimationState struct {
	Frame int
	Speed int
}

// NewAnimationState returns the state a freshly selected pattern starts with.
func NewAnimationState(speed int) AnimationState {
	return AnimationState{Frame: 0, Speed: speed}
}

// barPalette is the fixed 8-color cycle used by the bar patterns.
var barPalette = [display.ColorBarBands]video.Pixel{
	video.RedColor,
	video.GreenColor,
	video.BlueColor,
	video.CyanColor,
	video.MagentaColor,
	video.YellowColor,
	video.WhiteColor,
	video.BlackColor,
}

func solid(color video.Pixel) renderFunc {
	return func(s *video.Surface, _ AnimationState) {
		fillSolid(s, color)
	}
}

func fillSolid(s *video.Surface, color video.Pixel) {
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		for x := range row {
			row[x] = uint32(color)
		}
	}
}

func drawGradientHorizontal(s *video.Surface, _ AnimationState) {
	width := s.Width()
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		for x := range row {
			level := byte(x * 255 / width)
			row[x] = uint32(video.Pack(level, level, level))
		}
	}
}

func drawGradientVertical(s *video.Surface, _ AnimationState) {
	height := s.Height()
	for y := 0; y < height; y++ {
		level := byte(y * 255 / height)
		color := uint32(video.Pack(level, level, level))
		row := s.Row(y)
		for x := range row {
			row[x] = color
		}
	}
}

func checkerboard(cellSize int) renderFunc {
	return func(s *video.Surface, _ AnimationState) {
		for y := 0; y < s.Height(); y++ {
			row := s.Row(y)
			for x := range row {
				if ((x/cellSize)+(y/cellSize))%2 == 1 {
					row[x] = uint32(video.WhiteColor)
				} else {
					row[x] = uint32(video.BlackColor)
				}
			}
		}
	}
}

func drawHorizontalBars(s *video.Surface, _ AnimationState) {
	barHeight := s.Height() / display.ColorBarBands
	for y := 0; y < s.Height(); y++ {
		idx := y / barHeight
		if idx >= display.ColorBarBands {
			idx = display.ColorBarBands - 1
		}
		color := uint32(barPalette[idx%display.ColorBarBands])
		row := s.Row(y)
		for x := range row {
			row[x] = color
		}
	}
}

func drawVerticalBars(s *video.Surface, _ AnimationState) {
	barWidth := s.Width() / display.ColorBarBands
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		for x := range row {
			idx := x / barWidth
			if idx >= display.ColorBarBands {
				idx = display.ColorBarBands - 1
			}
			row[x] = uint32(barPalette[idx%display.ColorBarBands])
		}
	}
}

// BarPosition returns the leading edge of the moving bar for the given
// axis length. The modulo over length+thickness makes the sweep seamless:
// the bar enters from one side, leaves fully on the other and wraps with
// no visible jump. At frame 0 the bar sits entirely off-screen.
func BarPosition(anim AnimationState, axisLength int) int {
	return (anim.Frame * anim.Speed) % (axisLength + display.MovingBarThickness)
}

func drawMovingBarHorizontal(s *video.Surface, anim AnimationState) {
	pos := BarPosition(anim, s.Width())
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		for x := range row {
			if x >= pos-display.MovingBarThickness && x < pos {
				row[x] = uint32(video.WhiteColor)
			} else {
				row[x] = uint32(video.BlackColor)
			}
		}
	}
}

func drawMovingBarVertical(s *video.Surface, anim AnimationState) {
	pos := BarPosition(anim, s.Height())
	for y := 0; y < s.Height(); y++ {
		color := uint32(video.BlackColor)
		if y >= pos-display.MovingBarThickness && y < pos {
			color = uint32(video.WhiteColor)
		}
		row := s.Row(y)
		for x := range row {
			row[x] = color
		}
	}
}

func drawColorCycle(s *video.Surface, anim AnimationState) {
	hue := (anim.Frame * anim.Speed) % 360
	r, g, b := video.HueToRGB(hue)
	fillSolid(s, video.Pack(r, g, b))
}

// drawInversionTest alternates full black and full white every 60 frames.
// The phase depends only on the frame counter, never on the speed setting.
func drawInversionTest(s *video.Surface, anim AnimationState) {
	phase := (anim.Frame / display.InversionPeriodFrames) % 2
	if phase == 1 {
		fillSolid(s, video.WhiteColor)
	} else {
		fillSolid(s, video.BlackColor)
	}
}

func drawGrayLevels(s *video.Surface, _ AnimationState) {
	barWidth := s.Width() / display.GrayRampLevels
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		for x := range row {
			idx := x / barWidth
			if idx >= display.GrayRampLevels {
				idx = display.GrayRampLevels - 1
			}
			gray := byte(idx * 255 / (display.GrayRampLevels - 1))
			row[x] = uint32(video.Pack(gray, gray, gray))
		}
	}
}
