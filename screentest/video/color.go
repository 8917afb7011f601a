package video

// Pixel is a packed 32-bit color in the display's native A8B8G8R8 order:
// alpha in the top byte, then blue, green, red. In little-endian memory the
// byte sequence is R,G,B,A.
type Pixel uint32

// Pack builds a fully opaque pixel from RGB components. It is the single
// point of truth for the channel order; no other code constructs raw pixel
// values.
func Pack(r, g, b byte) Pixel {
	return 0xFF000000 | Pixel(b)<<16 | Pixel(g)<<8 | Pixel(r)
}

// Unpack returns the RGB components of a pixel, inverting Pack.
func Unpack(p Pixel) (r, g, b byte) {
	return byte(p), byte(p >> 8), byte(p >> 16)
}

// Palette colors used by the bar patterns and the overlay.
const (
	BlackColor    Pixel = 0xFF000000
	WhiteColor    Pixel = 0xFFFFFFFF
	RedColor      Pixel = 0xFF0000FF
	GreenColor    Pixel = 0xFF00FF00
	BlueColor     Pixel = 0xFFFF0000
	CyanColor     Pixel = 0xFFFFFF00
	MagentaColor  Pixel = 0xFFFF00FF
	YellowColor   Pixel = 0xFF00FFFF
	GrayColor     Pixel = 0xFF808080
	DarkGrayColor Pixel = 0xFF404040
)

// Overlay scrim values. The alpha byte is below 0xFF so a compositing
// display dims the pattern underneath; the raster path stores the value
// verbatim, there is no blending on write.
const (
	ScrimColor      Pixel = 0xD0000000
	PanelScrimColor Pixel = 0xC0000000
)

// HueToRGB converts a hue angle in [0,360) to RGB at full saturation and
// brightness. The circle is split into six 60 degree sectors with linear
// interpolation inside each sector; at a sector boundary the interpolation
// factor is exactly 0, so adjacent hues never flicker.
func HueToRGB(hue int) (r, g, b byte) {
	sector := hue / 60
	f := hue % 60

	v := byte(255)
	p := byte(0)
	q := byte(255 * (60 - f) / 60)
	t := byte(255 * f / 60)

	switch sector % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
