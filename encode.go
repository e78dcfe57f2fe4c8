package weave

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"io/ioutil"

	"github.com/bodgit/weave/raster"
	"github.com/ericpauley/go-quantize/quantize"
)

// encodePNG writes the buffer to w as a PNG. A positive colors value
// quantizes the output down to at most that many palette entries.
func encodePNG(w io.Writer, b *raster.Buffer, colors int) error {
	m := b.Image()

	if colors > 0 {
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, colors), m))
		draw.Draw(pm, pm.Bounds(), m, m.Bounds().Min, draw.Src)
		return png.Encode(w, pm)
	}

	return png.Encode(w, m)
}

func writeFile(path string, b []byte) error {
	if err := ioutil.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("weave: encode %s: %w", path, err)
	}
	return nil
}
