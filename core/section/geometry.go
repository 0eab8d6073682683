package section

import "math"

// Point is a position in the collection view coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width and height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Insets are distances from each edge of a rectangle.
type Insets struct {
	Top    float64 `json:"top" yaml:"top"`
	Left   float64 `json:"left" yaml:"left"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Right  float64 `json:"right" yaml:"right"`
}

// Negated flips the sign of every edge, turning an inset into an outset.
func (i Insets) Negated() Insets {
	return Insets{Top: -i.Top, Left: -i.Left, Bottom: -i.Bottom, Right: -i.Right}
}

// Rect is an axis aligned rectangle.
type Rect struct {
	Origin Point `json:"origin"`
	Size   Size  `json:"size"`
}

// NewRect builds a rectangle from its origin and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

func (r Rect) MinX() float64 { return r.Origin.X }
func (r Rect) MinY() float64 { return r.Origin.Y }
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.MinX(), other.MinX())
	minY := math.Min(r.MinY(), other.MinY())
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Inset shrinks the rectangle by the given insets. Negative insets grow it.
func (r Rect) Inset(by Insets) Rect {
	return NewRect(
		r.Origin.X+by.Left,
		r.Origin.Y+by.Top,
		r.Size.Width-by.Left-by.Right,
		r.Size.Height-by.Top-by.Bottom,
	)
}

// ScrollPosition aligns a target inside the visible bounds when scrolling.
type ScrollPosition int

const (
	// ScrollNone scrolls the minimum distance needed to make the target visible.
	ScrollNone ScrollPosition = iota
	ScrollTop
	ScrollCenteredVertically
	ScrollBottom
)

// String returns the position name.
func (p ScrollPosition) String() string {
	switch p {
	case ScrollTop:
		return "top"
	case ScrollCenteredVertically:
		return "centered_vertically"
	case ScrollBottom:
		return "bottom"
	default:
		return "none"
	}
}
