// Package font renders text using a built-in 4x6 bitmap font. Glyphs are
// blitted as scale x scale blocks of opaque pixels, clipped against the
// surface bounds, so any x/y/scale combination is safe.
package font

import (
	"github.com/screenburn/screentest/screentest/video"
)

// DrawGlyph blits one glyph at (x, y) scaled by an integer factor. Set
// bits become fg; when paintBG is true unset bits become bg, otherwise
// they are left untouched.
func DrawGlyph(s *video.Surface, x, y int, c byte, scale int, fg, bg video.Pixel, paintBG bool) {
	glyph := glyphs[glyphIndex(c)]

	for row := 0; row < GlyphHeight; row++ {
		line := glyph[row]
		for col := 0; col < GlyphWidth; col++ {
			set := (line>>(GlyphWidth-1-col))&1 == 1
			if !set && !paintBG {
				continue
			}
			color := bg
			if set {
				color = fg
			}
			fillBlock(s, x+col*scale, y+row*scale, scale, color)
		}
	}
}

// fillBlock writes a scale x scale block, clipped to the surface.
func fillBlock(s *video.Surface, x, y, scale int, color video.Pixel) {
	for sy := 0; sy < scale; sy++ {
		py := y + sy
		if py < 0 || py >= s.Height() {
			continue
		}
		for sx := 0; sx < scale; sx++ {
			px := x + sx
			if px < 0 || px >= s.Width() {
				continue
			}
			s.SetPixel(px, py, color)
		}
	}
}

// Advance is the horizontal cursor movement per glyph at the given scale:
// the glyph width plus a one-glyph-pixel gap.
func Advance(scale int) int {
	return GlyphWidth*scale + scale
}

// LineAdvance is the vertical cursor movement for a line break.
func LineAdvance(scale int) int {
	return GlyphHeight*scale + scale
}

// DrawString renders text starting at (x, y). A '\n' resets the horizontal
// cursor to x and moves down one line.
func DrawString(s *video.Surface, x, y int, text string, scale int, fg, bg video.Pixel, paintBG bool) {
	origX := x
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			y += LineAdvance(scale)
			x = origX
			continue
		}
		DrawGlyph(s, x, y, text[i], scale, fg, bg, paintBG)
		x += Advance(scale)
	}
}

// MeasureWidth returns the pixel width of the longest line of text at the
// given scale, using exactly the per-glyph advance DrawString uses. The
// two must agree or centered layouts drift.
func MeasureWidth(text string, scale int) int {
	width := 0
	maxWidth := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if width > maxWidth {
				maxWidth = width
			}
			width = 0
			continue
		}
		width += Advance(scale)
	}
	if width > maxWidth {
		return width
	}
	return maxWidth
}

// DrawBox fills a rectangle with a 1px outline, clipped to the surface.
// The fill value is written as-is; a translucent-looking fill is just a
// dark opaque pixel value, there is no blending.
func DrawBox(s *video.Surface, x, y, w, h int, fill, outline video.Pixel) {
	for py := y; py < y+h && py < s.Height(); py++ {
		if py < 0 {
			continue
		}
		for px := x; px < x+w && px < s.Width(); px++ {
			if px < 0 {
				continue
			}
			color := fill
			if px == x || px == x+w-1 || py == y || py == y+h-1 {
				color = outline
			}
			s.SetPixel(px, py, color)
		}
	}
}
