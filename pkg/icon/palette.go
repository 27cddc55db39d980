package icon

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/save2md/iconkit/pkg/errors"
)

// Default palette colors.
const (
	DefaultDocument = "#4A90D9"
	DefaultPage     = "#FFFFFF"
	DefaultLabel    = "#4A90D9"
	DefaultArrow    = "#2ECC71"
)

// Palette holds the fill colors of an icon's parts.
type Palette struct {
	Document color.RGBA
	Page     color.RGBA
	Label    color.RGBA
	Arrow    color.RGBA
}

// DefaultPalette returns the Save2MD brand colors.
func DefaultPalette() Palette {
	p, err := ParsePalette(DefaultDocument, DefaultPage, DefaultLabel, DefaultArrow)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette builds a palette from "#rrggbb" or "#rgb" strings.
func ParsePalette(document, page, label, arrow string) (Palette, error) {
	var p Palette
	for _, c := range []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"document", document, &p.Document},
		{"page", page, &p.Page},
		{"label", label, &p.Label},
		{"arrow", arrow, &p.Arrow},
	} {
		rgba, err := ParseHex(c.hex)
		if err != nil {
			return Palette{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "%s color", c.name)
		}
		*c.dst = rgba
	}
	return p, nil
}

// ParseHex parses an opaque hex color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
