// Package overlay composes the status indicator and the welcome screen on
// top of a rendered pattern.
package overlay

import (
	"fmt"

	"github.com/screenburn/screentest/screentest/display"
	"github.com/screenburn/screentest/screentest/font"
	"github.com/screenburn/screentest/screentest/video"
)

const (
	indicatorScale   = 3
	indicatorAnchorX = 8
	indicatorAnchorY = 8
	indicatorPadX    = 16
	indicatorPadY    = 12
	indicatorInsetX  = 8
	indicatorInsetY  = 6
)

// State tracks whether the pattern indicator is visible and for how many
// more frames. Navigation, speed changes and explicit toggle-on all reset
// the countdown; an explicit toggle-off zeroes it.
type State struct {
	Visible   bool
	Countdown int
}

// NewState returns the overlay state a fresh session starts with: visible,
// full countdown.
func NewState() State {
	return State{Visible: true, Countdown: display.OverlayTimeoutFrames}
}

// Show makes the overlay visible and restarts the auto-hide countdown.
func (st *State) Show() {
	st.Visible = true
	st.Countdown = display.OverlayTimeoutFrames
}

// Toggle flips visibility. Turning the overlay on restarts the countdown;
// turning it off zeroes it.
func (st *State) Toggle() {
	if st.Visible {
		st.Visible = false
		st.Countdown = 0
	} else {
		st.Show()
	}
}

// Tick advances the auto-hide countdown by one frame, hiding the overlay
// when it reaches zero.
func (st *State) Tick() {
	if st.Countdown > 0 {
		st.Countdown--
		if st.Countdown == 0 {
			st.Visible = false
		}
	}
}

// DrawIndicator renders the "NN/NN" pattern position inside a bordered
// box at the top-left corner. The text is drawn four times offset by one
// pixel in black and once centered in white, so it stays legible over any
// pattern, including pure white and pure black fills.
func DrawIndicator(s *video.Surface, index, total int) {
	text := fmt.Sprintf("%02d/%02d", index, total)

	textW := font.MeasureWidth(text, indicatorScale)
	textH := font.GlyphHeight * indicatorScale
	boxW := textW + indicatorPadX
	boxH := textH + indicatorPadY

	font.DrawBox(s, indicatorAnchorX, indicatorAnchorY, boxW, boxH, video.ScrimColor, video.WhiteColor)

	tx := indicatorAnchorX + indicatorInsetX
	ty := indicatorAnchorY + indicatorInsetY

	font.DrawString(s, tx-1, ty, text, indicatorScale, video.BlackColor, 0, false)
	font.DrawString(s, tx+1, ty, text, indicatorScale, video.BlackColor, 0, false)
	font.DrawString(s, tx, ty-1, text, indicatorScale, video.BlackColor, 0, false)
	font.DrawString(s, tx, ty+1, text, indicatorScale, video.BlackColor, 0, false)
	font.DrawString(s, tx, ty, text, indicatorScale, video.WhiteColor, 0, false)
}

// controlLines lists the key bindings shown on the welcome screen. Keep in
// sync with the backend key maps.
var controlLines = []string{
	"RIGHT / N      Next Pattern",
	"LEFT / P       Previous Pattern",
	"+ / -          Adjust Speed",
	"I              Toggle Info",
	"Q / ESC        Exit",
}

// DrawWelcome renders the static title, subtitle, controls panel and start
// prompt, centered horizontally over a dark blue vertical gradient. Pure
// composition; no animation and no input handling.
func DrawWelcome(s *video.Surface) {
	width := s.Width()
	height := s.Height()

	for y := 0; y < height; y++ {
		b := byte(40 + y*30/height)
		color := uint32(video.Pack(10, 15, b))
		row := s.Row(y)
		for x := range row {
			row[x] = color
		}
	}

	title := "Screen Burn-In Test"
	titleScale := 5
	titleX := (width - font.MeasureWidth(title, titleScale)) / 2
	titleY := 80
	font.DrawString(s, titleX+2, titleY+2, title, titleScale, video.BlackColor, 0, false)
	font.DrawString(s, titleX, titleY, title, titleScale, video.CyanColor, 0, false)

	subtitle := "Check your panel for image retention"
	subScale := 3
	subX := (width - font.MeasureWidth(subtitle, subScale)) / 2
	subY := 160
	font.DrawString(s, subX+1, subY+1, subtitle, subScale, video.BlackColor, 0, false)
	font.DrawString(s, subX, subY, subtitle, subScale, video.WhiteColor, 0, false)

	boxW := 400
	boxH := 180
	boxX := (width - boxW) / 2
	boxY := 220
	font.DrawBox(s, boxX, boxY, boxW, boxH, video.PanelScrimColor, video.WhiteColor)

	heading := "CONTROLS"
	headScale := 2
	headX := (width - font.MeasureWidth(heading, headScale)) / 2
	font.DrawString(s, headX, boxY+12, heading, headScale, video.YellowColor, 0, false)

	lineY := boxY + 45
	for _, line := range controlLines {
		font.DrawString(s, boxX+30, lineY, line, 2, video.WhiteColor, 0, false)
		lineY += 25
	}

	prompt := "Press ENTER to start..."
	promptScale := 2
	promptX := (width - font.MeasureWidth(prompt, promptScale)) / 2
	promptY := 440
	font.DrawString(s, promptX+1, promptY+1, prompt, promptScale, video.BlackColor, 0, false)
	font.DrawString(s, promptX, promptY, prompt, promptScale, video.GreenColor, 0, false)

	credits := "github.com/screenburn/screentest"
	creditsX := (width - font.MeasureWidth(credits, 1)) / 2
	font.DrawString(s, creditsX, 500, credits, 1, video.GrayColor, 0, false)
}
