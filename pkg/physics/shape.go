// pkg/physics/shape.go
package physics

// ShapeKind identifies the concrete geometry of a Shape. The set of
// kinds is closed; collision dispatch tables key on pairs of kinds.
type ShapeKind int

const (
	KindCircle ShapeKind = iota
	KindRectangle
	KindLine
	KindPolygon
)

// String returns a human-readable kind name for error messages
func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// RaycastHit describes a single ray/shape intersection
type RaycastHit struct {
	Point    Vector2D // intersection point in world space
	Normal   Vector2D // unit surface normal at the intersection
	Distance float64  // distance from the ray origin along the direction
}

// Shape is a value description of collision geometry at a point in time.
// The owning entity repositions a shape as it moves via SetPosition;
// shapes have no lifecycle of their own.
type Shape interface {
	// Kind identifies the concrete geometry variant
	Kind() ShapeKind
	// Position returns the shape's reference anchor (center-like point)
	Position() Vector2D
	// SetPosition translates the shape so its anchor lands on pos
	SetPosition(pos Vector2D)
	// BoundingRect returns the minimal axis-aligned box enclosing the
	// shape at its current position
	BoundingRect() Rect
	// ContainsPoint performs an exact-geometry point test
	ContainsPoint(p Vector2D) bool
	// IntersectsRay returns the closest hit along a ray of the given
	// (not necessarily unit) direction within [0, maxDistance], or
	// false if no qualifying intersection exists
	IntersectsRay(origin, direction Vector2D, maxDistance float64) (RaycastHit, bool)
}
