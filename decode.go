package weave

import (
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/bodgit/weave/raster"
)

// decodeFile reads an image file into a pixel buffer, returning the
// SHA1 of the file contents alongside for cache keying.
func decodeFile(path string) (*raster.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("weave: decode %s: %w", path, err)
	}
	defer f.Close()

	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, "", fmt.Errorf("weave: decode %s: %w", path, err)
	}

	// Hash whatever trailing bytes the decoder did not consume
	if _, err := io.Copy(h, f); err != nil {
		return nil, "", fmt.Errorf("weave: decode %s: %w", path, err)
	}

	return raster.FromImage(m), fmt.Sprintf("%X", h.Sum(nil)), nil
}
