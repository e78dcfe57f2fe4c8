package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleaveSelf(t *testing.T) {
	a := testBuffer(t, 8, 5)

	dst, err := Interleave(a, a)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, dst.Pix)
}

func TestInterleaveRedBlue(t *testing.T) {
	a, err := New(2, 2)
	require.NoError(t, err)
	copy(a.Pix, []uint8{
		255, 0, 0, 255, 255, 0, 0, 255,
		255, 0, 0, 255, 255, 0, 0, 255,
	})

	b, err := New(2, 2)
	require.NoError(t, err)
	copy(b.Pix, []uint8{
		0, 0, 255, 255, 0, 0, 255, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	})

	dst, err := Interleave(a, b)
	require.NoError(t, err)

	// Even column takes b's blue with a's alpha, odd column stays red
	assert.Equal(t, []uint8{
		0, 0, 255, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 255, 0, 0, 255,
	}, dst.Pix)
}

func TestInterleaveChannels(t *testing.T) {
	a := testBuffer(t, 5, 3)

	b, err := New(5, 3)
	require.NoError(t, err)
	for i := range b.Pix {
		b.Pix[i] = uint8(201 - i)
	}

	dst, err := Interleave(a, b)
	require.NoError(t, err)
	assert.Equal(t, a.Width, dst.Width)
	assert.Equal(t, a.Height, dst.Height)

	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			i := dst.offset(x, y)
			if x%2 == 0 {
				// RGB from b, alpha from a
				assert.Equal(t, b.Pix[i:i+3], dst.Pix[i:i+3])
				assert.Equal(t, a.Pix[i+3], dst.Pix[i+3])
			} else {
				// All four channels from a
				assert.Equal(t, a.Pix[i:i+4], dst.Pix[i:i+4])
			}
		}
	}
}

func TestInterleaveMismatch(t *testing.T) {
	tables := []struct {
		aWidth, aHeight int
		bWidth, bHeight int
	}{
		{2, 2, 3, 2},
		{2, 2, 2, 3},
		{4, 4, 2, 2},
	}

	for _, table := range tables {
		a := testBuffer(t, table.aWidth, table.aHeight)
		b := testBuffer(t, table.bWidth, table.bHeight)

		dst, err := Interleave(a, b)
		assert.Nil(t, dst)
		assert.Equal(t, ErrDimensionMismatch, err)
	}
}

func TestInterleaveInputsUntouched(t *testing.T) {
	a := testBuffer(t, 4, 4)
	b, err := New(4, 4)
	require.NoError(t, err)
	for i := range b.Pix {
		b.Pix[i] = uint8(i)
	}

	origA := append([]uint8(nil), a.Pix...)
	origB := append([]uint8(nil), b.Pix...)

	_, err = Interleave(a, b)
	require.NoError(t, err)
	assert.Equal(t, origA, a.Pix)
	assert.Equal(t, origB, b.Pix)
}
