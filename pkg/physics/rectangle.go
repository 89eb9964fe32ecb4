// pkg/physics/rectangle.go
package physics

import (
	"errors"
	"math"
)

const rectFaceEpsilon = 1e-6

// Rectangle is an axis-aligned rectangular collision shape. Its anchor
// is the rect's center.
type Rectangle struct {
	Rect Rect
}

// NewRectangle creates a rectangle shape. Width and height must be
// non-negative.
func NewRectangle(rect Rect) (*Rectangle, error) {
	if rect.Width < 0 || rect.Height < 0 {
		return nil, errors.Join(ErrInvalidShape, errors.New("rectangle extents must be non-negative"))
	}
	return &Rectangle{Rect: rect}, nil
}

// Kind returns KindRectangle
func (r *Rectangle) Kind() ShapeKind { return KindRectangle }

// Position returns the rectangle's center
func (r *Rectangle) Position() Vector2D { return r.Rect.Center() }

// SetPosition recenters the rectangle on pos
func (r *Rectangle) SetPosition(pos Vector2D) {
	r.Rect.X = pos.X - r.Rect.Width/2
	r.Rect.Y = pos.Y - r.Rect.Height/2
}

// BoundingRect returns the rectangle itself
func (r *Rectangle) BoundingRect() Rect { return r.Rect }

// ContainsPoint reports whether the point lies inside the rectangle,
// edges included.
func (r *Rectangle) ContainsPoint(p Vector2D) bool {
	return r.Rect.ContainsPoint(p)
}

// Vertices returns the rectangle's corners in clockwise order starting
// from the top-left.
func (r *Rectangle) Vertices() []Vector2D {
	return []Vector2D{
		{X: r.Rect.Left(), Y: r.Rect.Top()},
		{X: r.Rect.Right(), Y: r.Rect.Top()},
		{X: r.Rect.Right(), Y: r.Rect.Bottom()},
		{X: r.Rect.Left(), Y: r.Rect.Bottom()},
	}
}

// IntersectsRay intersects the ray with the rectangle using the slab
// method. A ray with a zero direction component on an axis must already
// lie within that axis's slab or there is no hit.
func (r *Rectangle) IntersectsRay(origin, direction Vector2D, maxDistance float64) (RaycastHit, bool) {
	if direction.X == 0 && direction.Y == 0 {
		return RaycastHit{}, false
	}

	tMinX, tMaxX := math.Inf(-1), math.Inf(1)
	if direction.X != 0 {
		tMinX = (r.Rect.Left() - origin.X) / direction.X
		tMaxX = (r.Rect.Right() - origin.X) / direction.X
		if tMinX > tMaxX {
			tMinX, tMaxX = tMaxX, tMinX
		}
	} else if origin.X < r.Rect.Left() || origin.X > r.Rect.Right() {
		return RaycastHit{}, false
	}

	tMinY, tMaxY := math.Inf(-1), math.Inf(1)
	if direction.Y != 0 {
		tMinY = (r.Rect.Top() - origin.Y) / direction.Y
		tMaxY = (r.Rect.Bottom() - origin.Y) / direction.Y
		if tMinY > tMaxY {
			tMinY, tMaxY = tMaxY, tMinY
		}
	} else if origin.Y < r.Rect.Top() || origin.Y > r.Rect.Bottom() {
		return RaycastHit{}, false
	}

	tMin := math.Max(tMinX, tMinY)
	tMax := math.Min(tMaxX, tMaxY)
	if tMax < 0 || tMin > tMax {
		return RaycastHit{}, false
	}

	t := tMin
	if t < 0 {
		t = tMax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	hitPoint := origin.Add(direction.Scale(t))

	// Resolve the normal from the face that was hit
	var normal Vector2D
	switch {
	case math.Abs(hitPoint.X-r.Rect.Left()) < rectFaceEpsilon:
		normal = Vector2D{X: -1}
	case math.Abs(hitPoint.X-r.Rect.Right()) < rectFaceEpsilon:
		normal = Vector2D{X: 1}
	case math.Abs(hitPoint.Y-r.Rect.Top()) < rectFaceEpsilon:
		normal = Vector2D{Y: -1}
	case math.Abs(hitPoint.Y-r.Rect.Bottom()) < rectFaceEpsilon:
		normal = Vector2D{Y: 1}
	}

	return RaycastHit{
		Point:    hitPoint,
		Normal:   normal,
		Distance: t,
	}, true
}
