package raster

import "math"

// Mode selects how Normalize maps the source onto the target size.
type Mode int

const (
	// Stretch fills the requested size exactly, ignoring the source
	// aspect ratio.
	Stretch Mode = iota
	// AspectFit preserves the source aspect ratio inside the requested
	// bounding box, shrinking one axis. Square sources land in the
	// portrait branch, so a square image fitted into a (w, h) box
	// comes out as (h, h).
	AspectFit
)

func fitSize(srcWidth, srcHeight, width, height int) (int, int) {
	ratio := float64(srcWidth) / float64(srcHeight)
	if ratio > 1 {
		height = int(math.Round(float64(width) / ratio))
	} else {
		width = int(math.Round(float64(height) * ratio))
	}
	// Extreme ratios can round the shrunk axis down to zero
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// Normalize resamples src to the given size using nearest-neighbor
// sampling. In Stretch mode the result is exactly (width, height); in
// AspectFit mode the box is first shrunk on one axis to preserve the
// source aspect ratio, so the result can be smaller than requested on
// that axis. The coordinate mapping truncates, making the output
// deterministic for a given source and size.
func Normalize(src *Buffer, width, height int, mode Mode) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	if mode == AspectFit {
		width, height = fitSize(src.Width, src.Height, width, height)
	}

	dst := &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*pixelStride),
	}

	for y := 0; y < height; y++ {
		sy := y * src.Height / height
		for x := 0; x < width; x++ {
			sx := x * src.Width / width

			si := src.offset(sx, sy)
			di := dst.offset(x, y)

			copy(dst.Pix[di:di+pixelStride], src.Pix[si:si+pixelStride])
		}
	}

	return dst, nil
}
