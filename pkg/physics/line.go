// pkg/physics/line.go
package physics

import "math"

const (
	lineContainsEpsilon = 1e-6
	rayParallelEpsilon  = 1e-10
)

// Line is a line-segment collision shape anchored at its midpoint
type Line struct {
	Start Vector2D
	End   Vector2D
}

// NewLine creates a line segment between two points. A zero-length
// segment is allowed; detection routines treat it as a point.
func NewLine(start, end Vector2D) *Line {
	return &Line{Start: start, End: end}
}

// Kind returns KindLine
func (l *Line) Kind() ShapeKind { return KindLine }

// Position returns the segment's midpoint
func (l *Line) Position() Vector2D {
	return l.Start.Add(l.End).Scale(0.5)
}

// SetPosition translates both endpoints so the midpoint lands on pos
func (l *Line) SetPosition(pos Vector2D) {
	delta := pos.Sub(l.Position())
	l.Start = l.Start.Add(delta)
	l.End = l.End.Add(delta)
}

// BoundingRect returns the minimal box enclosing the segment. A
// degenerate axis is widened to unit size so region queries still
// intersect it.
func (l *Line) BoundingRect() Rect {
	left := math.Min(l.Start.X, l.End.X)
	top := math.Min(l.Start.Y, l.End.Y)
	width := math.Abs(l.Start.X - l.End.X)
	height := math.Abs(l.Start.Y - l.End.Y)
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	return Rect{X: left, Y: top, Width: width, Height: height}
}

// ContainsPoint reports whether the point lies on the segment, using a
// cross-product collinearity check plus a projection-interval bound.
func (l *Line) ContainsPoint(p Vector2D) bool {
	line := l.End.Sub(l.Start)
	toPoint := p.Sub(l.Start)
	if math.Abs(line.Cross(toPoint)) > lineContainsEpsilon {
		return false
	}
	dot := toPoint.Dot(line)
	return dot >= 0 && dot <= line.LengthSquared()
}

// IntersectsRay intersects the ray with the segment via perpendicular
// projection. The returned normal is the segment's perpendicular.
func (l *Line) IntersectsRay(origin, direction Vector2D, maxDistance float64) (RaycastHit, bool) {
	lineDir := l.End.Sub(l.Start)
	h := direction.Perp()

	a := lineDir.Dot(h)
	if math.Abs(a) < rayParallelEpsilon {
		return RaycastHit{}, false
	}

	f := 1.0 / a
	s := origin.Sub(l.Start)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return RaycastHit{}, false
	}

	q := lineDir.Perp()
	t := f * s.Dot(q)
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	return RaycastHit{
		Point:    origin.Add(direction.Scale(t)),
		Normal:   lineDir.Perp().Normalize(),
		Distance: t,
	}, true
}
