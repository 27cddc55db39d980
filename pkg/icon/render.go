package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FaceSource supplies label font faces. The returned string names the face's
// origin for logging. Implementations must always return a usable face.
type FaceSource interface {
	Face(points float64) (font.Face, string)
}

// Icon is a rendered icon.
type Icon struct {
	Spec  Spec
	Image image.Image
	// FontSource names the face used for the label, empty for line labels.
	FontSource string
}

// Renderer draws icons with a fixed palette and font source. A nil Fonts
// labels icons with the fixed-size basic face.
type Renderer struct {
	Palette Palette
	Fonts   FaceSource
	Logger  *log.Logger
}

// NewRenderer creates a renderer. A nil logger uses log.Default().
func NewRenderer(p Palette, fonts FaceSource, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{Palette: p, Fonts: fonts, Logger: logger}
}

// Render draws the icon for the given edge length on a transparent canvas.
func (r *Renderer) Render(size int) (*Icon, error) {
	spec, err := NewSpec(size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(size, size)
	ic := &Icon{Spec: spec}

	fillRoundedRect(dc, spec.Document(), spec.Corner, r.Palette.Document)
	fillRoundedRect(dc, spec.Page(), spec.InnerCorner, r.Palette.Page)

	switch spec.Label() {
	case LabelText:
		ic.FontSource = r.drawText(dc, spec)
		r.drawArrow(dc, spec)
	case LabelLines:
		r.drawLines(dc, spec)
	}

	r.Logger.Debug("rendered icon", "size", size, "label", spec.Label(), "font", ic.FontSource)
	ic.Image = dc.Image()
	return ic, nil
}

func fillRoundedRect(dc *gg.Context, rect Rect, radius int, c color.RGBA) {
	if rect.Empty() {
		return
	}
	dc.SetColor(c)
	dc.DrawRoundedRectangle(
		float64(rect.MinX), float64(rect.MinY),
		float64(rect.Width()), float64(rect.Height()),
		float64(radius),
	)
	dc.Fill()
}

// drawText centers the label by its ink bounds rather than its advance, so
// the glyphs sit in the middle of the canvas regardless of side bearings.
func (r *Renderer) drawText(dc *gg.Context, spec Spec) string {
	var face font.Face = basicfont.Face7x13
	src := "basic"
	if r.Fonts != nil {
		face, src = r.Fonts.Face(float64(spec.FontSize))
	}
	dc.SetFontFace(face)

	bounds, _ := font.BoundString(face, Label)
	minX := fixedToFloat(bounds.Min.X)
	minY := fixedToFloat(bounds.Min.Y)
	tw := fixedToFloat(bounds.Max.X) - minX
	th := fixedToFloat(bounds.Max.Y) - minY

	x := math.Floor((float64(spec.Size)-tw)/2) - minX
	y := math.Floor((float64(spec.Size)-th)/2) - minY

	dc.SetColor(r.Palette.Label)
	dc.DrawString(Label, x, y)
	return src
}

func (r *Renderer) drawArrow(dc *gg.Context, spec Spec) {
	tri := spec.ArrowTriangle()
	dc.SetColor(r.Palette.Arrow)
	dc.MoveTo(float64(tri[0].X), float64(tri[0].Y))
	for _, p := range tri[1:] {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	dc.ClosePath()
	dc.Fill()
}

// drawLines fills strokes as pixel-aligned rectangles so each covers exactly
// one row.
func (r *Renderer) drawLines(dc *gg.Context, spec Spec) {
	dc.SetColor(r.Palette.Label)
	for _, seg := range spec.LineSegments() {
		if seg.X1 < seg.X0 {
			continue
		}
		dc.DrawRectangle(float64(seg.X0), float64(seg.Y), float64(seg.X1-seg.X0+1), 1)
	}
	dc.Fill()
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
