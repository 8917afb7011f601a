package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSurfaceZeroed(t *testing.T) {
	s := NewSurface(8, 4)

	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, 8, s.Stride())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			assert.Equal(t, Pixel(0), s.GetPixel(x, y))
		}
	}
}

func TestSurfaceStrideAddressing(t *testing.T) {
	s := NewSurfaceWithStride(4, 3, 6)

	s.SetPixel(3, 2, WhiteColor)
	assert.Equal(t, WhiteColor, s.GetPixel(3, 2))

	// The raw buffer places (3,2) at row 2 * stride 6 + 3.
	raw := s.ToSlice()
	assert.Equal(t, uint32(WhiteColor), raw[2*6+3])
	assert.Len(t, raw, 6*3)
}

func TestSurfaceRowExcludesPadding(t *testing.T) {
	s := NewSurfaceWithStride(4, 2, 7)

	row := s.Row(1)
	assert.Len(t, row, 4)

	row[0] = uint32(RedColor)
	assert.Equal(t, RedColor, s.GetPixel(0, 1))
}

func TestSurfaceStrideClampedToWidth(t *testing.T) {
	s := NewSurfaceWithStride(8, 2, 3)
	assert.Equal(t, 8, s.Stride())
}
