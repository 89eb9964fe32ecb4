// pkg/physics/circle.go
package physics

import (
	"errors"
	"math"
)

// ErrInvalidShape is returned by shape constructors when the requested
// geometry violates a shape invariant.
var ErrInvalidShape = errors.New("invalid shape geometry")

// Circle is a collision circle anchored at its center
type Circle struct {
	Center Vector2D
	Radius float64
}

// NewCircle creates a circle. The radius must be non-negative.
func NewCircle(center Vector2D, radius float64) (*Circle, error) {
	if radius < 0 {
		return nil, errors.Join(ErrInvalidShape, errors.New("circle radius must be non-negative"))
	}
	return &Circle{Center: center, Radius: radius}, nil
}

// Kind returns KindCircle
func (c *Circle) Kind() ShapeKind { return KindCircle }

// Position returns the circle's center
func (c *Circle) Position() Vector2D { return c.Center }

// SetPosition moves the circle's center
func (c *Circle) SetPosition(pos Vector2D) { c.Center = pos }

// BoundingRect returns the minimal box enclosing the circle
func (c *Circle) BoundingRect() Rect {
	return Rect{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  c.Radius * 2,
		Height: c.Radius * 2,
	}
}

// ContainsPoint reports whether the point lies inside or on the circle
func (c *Circle) ContainsPoint(p Vector2D) bool {
	return p.Sub(c.Center).LengthSquared() <= c.Radius*c.Radius
}

// IntersectsRay solves the ray/circle quadratic and returns the closest
// admissible intersection within [0, maxDistance].
func (c *Circle) IntersectsRay(origin, direction Vector2D, maxDistance float64) (RaycastHit, bool) {
	oc := origin.Sub(c.Center)

	a := direction.Dot(direction)
	b := 2.0 * oc.Dot(direction)
	cc := oc.Dot(oc) - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 || a == 0 {
		return RaycastHit{}, false
	}

	sqrtDiscriminant := math.Sqrt(discriminant)
	t1 := (-b - sqrtDiscriminant) / (2 * a)
	t2 := (-b + sqrtDiscriminant) / (2 * a)

	// Prefer the smaller admissible root, fall back to the larger
	var t float64
	switch {
	case t1 >= 0 && t1 <= maxDistance:
		t = t1
	case t2 >= 0 && t2 <= maxDistance:
		t = t2
	default:
		return RaycastHit{}, false
	}

	hitPoint := origin.Add(direction.Scale(t))
	return RaycastHit{
		Point:    hitPoint,
		Normal:   hitPoint.Sub(c.Center).Normalize(),
		Distance: t,
	}, true
}
