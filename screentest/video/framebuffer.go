package video

// Surface is a fixed-size, row-major grid of packed pixels. The row stride
// may be larger than the logical width; padding pixels at the right edge of
// a row belong to the device and are never written by drawing code.
type Surface struct {
	width  int
	height int
	stride int
	buffer []uint32
}

// NewSurface allocates a zeroed surface with stride equal to the width.
func NewSurface(width, height int) *Surface {
	return NewSurfaceWithStride(width, height, width)
}

// NewSurfaceWithStride allocates a zeroed surface with an explicit row
// stride. The stride must be at least the logical width.
func NewSurfaceWithStride(width, height, stride int) *Surface {
	if stride < width {
		stride = width
	}
	return &Surface{
		width:  width,
		height: height,
		stride: stride,
		buffer: make([]uint32, stride*height),
	}
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }
func (s *Surface) Stride() int { return s.stride }

// GetPixel returns the pixel at the given logical coordinates.
func (s *Surface) GetPixel(x, y int) Pixel {
	return Pixel(s.buffer[y*s.stride+x])
}

// SetPixel writes the pixel at the given logical coordinates.
func (s *Surface) SetPixel(x, y int, color Pixel) {
	s.buffer[y*s.stride+x] = uint32(color)
}

// Row returns the logical part of row y, excluding any stride padding.
func (s *Surface) Row(y int) []uint32 {
	return s.buffer[y*s.stride : y*s.stride+s.width]
}

// ToSlice exposes the raw backing buffer, including stride padding.
// Presentation backends read it; nothing else should.
func (s *Surface) ToSlice() []uint32 {
	return s.buffer
}
