package weave

import (
	"bytes"
	"fmt"

	"github.com/bodgit/weave/raster"
)

// Policy selects how the common target size for the two sources is
// computed before interleaving. The two policies give measurably
// different output sizes and are not interchangeable.
type Policy int

const (
	// PolicyMinimum takes the minimum of the two natural widths and
	// the minimum of the two natural heights directly.
	PolicyMinimum Policy = iota
	// PolicyFitBox first fits both sources into a 400x300 box
	// preserving their aspect ratios, then takes the minimum of the
	// two resulting sizes.
	PolicyFitBox
)

const (
	boxWidth  = 400
	boxHeight = 300
)

// Options controls how a composite is rendered.
type Options struct {
	Mode   raster.Mode
	Policy Policy
	Colors int // quantize the output to at most this many colors, 0 keeps truecolor
}

func (o Options) key(sum1, sum2 string) string {
	return fmt.Sprintf("%s:%s:%d:%d:%d", sum1, sum2, o.Policy, o.Mode, o.Colors)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (w *Weaver) render(a, b *raster.Buffer, opts Options) (*raster.Buffer, error) {
	var err error

	if opts.Policy == PolicyFitBox {
		if a, err = raster.Normalize(a, boxWidth, boxHeight, raster.AspectFit); err != nil {
			return nil, err
		}
		if b, err = raster.Normalize(b, boxWidth, boxHeight, raster.AspectFit); err != nil {
			return nil, err
		}
	}

	width := minInt(a.Width, b.Width)
	height := minInt(a.Height, b.Height)

	if a, err = raster.Normalize(a, width, height, opts.Mode); err != nil {
		return nil, err
	}
	if b, err = raster.Normalize(b, width, height, opts.Mode); err != nil {
		return nil, err
	}

	// AspectFit can leave the pair on different sizes; stretch the
	// remainder onto the common minimum so interleaving always has
	// equal buffers
	if a.Width != b.Width || a.Height != b.Height {
		width, height = minInt(a.Width, b.Width), minInt(a.Height, b.Height)
		if a, err = raster.Normalize(a, width, height, raster.Stretch); err != nil {
			return nil, err
		}
		if b, err = raster.Normalize(b, width, height, raster.Stretch); err != nil {
			return nil, err
		}
	}

	return raster.Interleave(a, b)
}

// Combine decodes the two source images, normalizes them to a common
// size according to the configured policy and writes the interleaved
// composite to path as a PNG. Finished composites are cached in the
// database keyed by the source checksums and options, so an identical
// request is served from the cache without re-rendering.
func (w *Weaver) Combine(image1, image2, path string, opts Options) error {
	a, sum1, err := decodeFile(image1)
	if err != nil {
		return err
	}

	b, sum2, err := decodeFile(image2)
	if err != nil {
		return err
	}

	var key string
	if w.db != nil {
		key = opts.key(sum1, sum2)
		png, err := w.db.FindComposite(key)
		if err != nil {
			return err
		}
		if png != nil {
			w.logger.Printf("Using cached composite for \"%s\" and \"%s\"\n", image1, image2)
			return writeFile(path, png)
		}
	}

	out, err := w.render(a, b, opts)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := encodePNG(buf, out, opts.Colors); err != nil {
		return err
	}

	if w.db != nil {
		if err := w.db.AddComposite(key, buf.Bytes()); err != nil {
			return err
		}
	}

	w.logger.Printf("Writing %dx%d composite to \"%s\"\n", out.Width, out.Height, path)

	return writeFile(path, buf.Bytes())
}
