// Package preview lays rendered icons side by side on one image so every
// size can be eyeballed at once.
package preview

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FileName is the conventional name of the preview sheet.
const FileName = "preview.png"

// Gutter is the transparent margin around and between icons.
const Gutter = 8

// Sheet places images left to right in the given order, bottom-aligned, on
// a transparent background with Gutter pixels around each one.
func Sheet(images []image.Image) *image.NRGBA {
	width, height := Gutter, 0
	for _, img := range images {
		b := img.Bounds()
		width += b.Dx() + Gutter
		height = max(height, b.Dy())
	}
	height += 2 * Gutter

	sheet := imaging.New(width, height, color.Transparent)
	x := Gutter
	for _, img := range images {
		b := img.Bounds()
		sheet = imaging.Paste(sheet, img, image.Pt(x, height-Gutter-b.Dy()))
		x += b.Dx() + Gutter
	}
	return sheet
}
