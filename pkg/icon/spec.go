package icon

import (
	"github.com/save2md/iconkit/pkg/errors"
)

const (
	// TextThreshold is the smallest size that gets a glyph label and arrow.
	TextThreshold = 32

	// MaxSize bounds the canvas edge length.
	MaxSize = 4096

	// Label is the text drawn on icons at or above TextThreshold.
	Label = "MD"
)

// DefaultSizes are the edge lengths a browser extension manifest asks for.
var DefaultSizes = []int{16, 32, 48, 128}

// LabelMode selects how the page is labelled.
type LabelMode int

const (
	// LabelLines draws three horizontal strokes.
	LabelLines LabelMode = iota
	// LabelText draws the "MD" glyphs and the download arrow.
	LabelText
)

func (m LabelMode) String() string {
	if m == LabelText {
		return "text"
	}
	return "lines"
}

// Spec holds the geometry derived from an icon's edge length.
type Spec struct {
	Size        int
	Pad         int // document inset from the canvas edge
	Corner      int // document corner radius
	InnerPad    int // page inset from the canvas edge
	InnerCorner int // page corner radius
	FontSize    int
	Arrow       int // arrow edge length
	LineSpacing int // vertical distance between label strokes
}

// NewSpec derives the geometry for an icon of the given edge length.
func NewSpec(size int) (Spec, error) {
	if size < 1 {
		return Spec{}, errors.New(errors.ErrCodeInvalidSize, "icon size must be positive, got %d", size)
	}
	if size > MaxSize {
		return Spec{}, errors.New(errors.ErrCodeInvalidSize, "icon size %d exceeds maximum %d", size, MaxSize)
	}

	corner := max(2, size/8)
	return Spec{
		Size:        size,
		Pad:         max(1, size/16),
		Corner:      corner,
		InnerPad:    max(2, size/6),
		InnerCorner: max(1, corner/2),
		FontSize:    size / 3,
		Arrow:       max(3, size/8),
		LineSpacing: max(1, size/8) + 1,
	}, nil
}

// Label reports which label the icon carries.
func (s Spec) Label() LabelMode {
	if s.Size >= TextThreshold {
		return LabelText
	}
	return LabelLines
}

// Rect is an axis-aligned rectangle in canvas coordinates. Max is exclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the rectangle's width, zero if empty.
func (r Rect) Width() int { return max(0, r.MaxX-r.MinX) }

// Height returns the rectangle's height, zero if empty.
func (r Rect) Height() int { return max(0, r.MaxY-r.MinY) }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.Width() == 0 || r.Height() == 0 }

// Contains reports whether o lies strictly inside r.
func (r Rect) Contains(o Rect) bool {
	return o.MinX > r.MinX && o.MinY > r.MinY && o.MaxX < r.MaxX && o.MaxY < r.MaxY
}

// Document returns the outer rounded rectangle.
func (s Spec) Document() Rect {
	return Rect{s.Pad, s.Pad, s.Size - s.Pad, s.Size - s.Pad}
}

// Page returns the inner rounded rectangle.
func (s Spec) Page() Rect {
	return Rect{s.InnerPad, s.InnerPad, s.Size - s.InnerPad, s.Size - s.InnerPad}
}

// Point is a canvas coordinate.
type Point struct{ X, Y int }

// ArrowTriangle returns the downward arrow's vertices: top-left, top-right
// and apex. The arrow's bounding box touches the page's bottom-right corner.
func (s Spec) ArrowTriangle() [3]Point {
	ax := s.Size - s.InnerPad - s.Arrow
	ay := s.Size - s.InnerPad - s.Arrow
	return [3]Point{
		{ax, ay},
		{ax + s.Arrow, ay},
		{ax + s.Arrow/2, ay + s.Arrow},
	}
}

// Segment is a one-pixel-high horizontal run covering X0..X1 inclusive.
type Segment struct {
	X0, X1, Y int
}

// LineSegments returns the three label strokes used below TextThreshold:
// two full-width lines and a third at two thirds of that width.
func (s Spec) LineSegments() []Segment {
	x1 := s.InnerPad + 2
	x2 := s.Size - s.InnerPad - 2
	y := s.InnerPad + 3

	segs := make([]Segment, 0, 3)
	for i := 0; i < 3; i++ {
		end := x2
		if i == 2 {
			end = x1 + (x2-x1)*2/3
		}
		segs = append(segs, Segment{X0: x1, X1: end, Y: y + i*s.LineSpacing})
	}
	return segs
}
