package raster

// Interleave combines two equally sized buffers column-wise. The result
// starts as a copy of a; at every even column the red, green and blue
// channels are replaced with b's while the alpha channel keeps a's
// value, and odd columns are left as a's pixels. Consumers depend on
// this output byte-for-byte, including the alpha channel surviving the
// swap, so the partial substitution is deliberate.
func Interleave(a, b *Buffer) (*Buffer, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return nil, ErrDimensionMismatch
	}

	dst := &Buffer{
		Width:  a.Width,
		Height: a.Height,
		Pix:    append([]uint8(nil), a.Pix...),
	}

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x += 2 {
			i := dst.offset(x, y)
			// RGB only, alpha stays a's
			copy(dst.Pix[i:i+3], b.Pix[i:i+3])
		}
	}

	return dst, nil
}
