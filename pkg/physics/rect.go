// pkg/physics/rect.go
package physics

// Rect is an axis-aligned rectangle anchored at its top-left corner,
// in a y-down coordinate system (Top is the minimum y edge).
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRectFromCenter builds a rect of the given size centered on a point
func NewRectFromCenter(center Vector2D, width, height float64) Rect {
	return Rect{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Left returns the minimum x edge
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the minimum y edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the rect's center point
func (r Rect) Center() Vector2D {
	return Vector2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ContainsPoint reports whether the point lies inside the rect,
// edges included.
func (r Rect) ContainsPoint(p Vector2D) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely within r
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// Intersects reports whether the two rects overlap, touching edges
// included.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() && other.Left() <= r.Right() &&
		r.Top() <= other.Bottom() && other.Top() <= r.Bottom()
}
