package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/save2md/iconkit/pkg/errors"
)

// Encode returns img as PNG bytes. Encoding is deterministic, so the same
// image always yields the same bytes.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode %dx%d png", img.Bounds().Dx(), img.Bounds().Dy())
	}
	return buf.Bytes(), nil
}

// FileName returns the conventional file name for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}
