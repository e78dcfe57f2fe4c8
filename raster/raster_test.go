package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBuffer returns a width x height buffer filled with a gradient so
// that every pixel is distinguishable.
func testBuffer(t *testing.T, width, height int) *Buffer {
	t.Helper()

	b, err := New(width, height)
	require.NoError(t, err)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := b.offset(x, y)
			b.Pix[i+0] = uint8(x * 7)
			b.Pix[i+1] = uint8(y * 11)
			b.Pix[i+2] = uint8((x + y) * 13)
			b.Pix[i+3] = uint8(255 - x - y)
		}
	}

	return b
}

func TestNew(t *testing.T) {
	b, err := New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Len(t, b.Pix, 3*2*4)
}

func TestNewInvalidDimensions(t *testing.T) {
	tables := []struct {
		width, height int
	}{
		{0, 1},
		{1, 0},
		{-1, 1},
		{1, -1},
	}

	for _, table := range tables {
		b, err := New(table.width, table.height)
		assert.Nil(t, b)
		assert.Equal(t, ErrInvalidDimensions, err)
	}
}

func TestFromImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	m.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	m.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	m.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	m.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 128})

	b := FromImage(m)
	assert.Equal(t, 2, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Equal(t, []uint8{
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 0, 255, 255,
		255, 255, 255, 128,
	}, b.Pix)
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Images whose bounds don't start at the origin still map to a
	// buffer anchored at (0, 0)
	m := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	m.SetNRGBA(10, 20, color.NRGBA{1, 2, 3, 4})
	m.SetNRGBA(11, 20, color.NRGBA{5, 6, 7, 8})

	b := FromImage(m)
	assert.Equal(t, 2, b.Width)
	assert.Equal(t, 1, b.Height)
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8}, b.Pix)
}

func TestImageRoundTrip(t *testing.T) {
	b := testBuffer(t, 5, 3)

	m := b.Image()
	assert.Equal(t, image.Rect(0, 0, 5, 3), m.Bounds())

	// Mutating the image must not touch the buffer
	m.Pix[0] ^= 0xff
	assert.NotEqual(t, m.Pix[0], b.Pix[0])

	assert.Equal(t, b.Pix, FromImage(b.Image()).Pix)
}
