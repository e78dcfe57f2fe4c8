/*
Package raster implements the RGBA pixel buffer used by the weave
pipeline along with the two operations performed on it; resizing a
buffer to a target size and interleaving the columns of two buffers.

A buffer is a row-major grid of pixels where each pixel is four 8-bit
channels stored in red, green, blue, alpha order. Channel values are
not alpha-premultiplied. Every operation allocates and returns a new
buffer; the inputs are never mutated or retained.
*/
package raster

import (
	"errors"
	"image"
	"image/draw"
)

const pixelStride = 4

var (
	// ErrInvalidDimensions is returned when a requested target size
	// has a non-positive width or height.
	ErrInvalidDimensions = errors.New("raster: dimensions must be positive")
	// ErrDimensionMismatch is returned by Interleave when the two
	// buffers are not exactly the same size.
	ErrDimensionMismatch = errors.New("raster: buffers differ in size")
)

// Buffer is a rectangular grid of RGBA pixels. The invariant
// len(Pix) == Width*Height*4 holds for every buffer produced by this
// package.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// New returns a zeroed buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*pixelStride),
	}, nil
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.Width + x) * pixelStride
}

// FromImage copies m into a new buffer, flattening whatever color model
// it uses down to 8-bit non-premultiplied RGBA.
func FromImage(m image.Image) *Buffer {
	bounds := m.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), m, bounds.Min, draw.Src)
	return &Buffer{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    nrgba.Pix,
	}
}

// Image returns the buffer as a stdlib image. The pixel data is copied
// so the buffer can be reused or discarded afterwards.
func (b *Buffer) Image() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(m.Pix, b.Pix)
	return m
}
