// pkg/physics/polygon.go
package physics

import (
	"errors"
	"math"
)

// Polygon is a collision polygon described by an ordered vertex list in
// one consistent winding order. Its anchor is the vertex mean.
type Polygon struct {
	vertices []Vector2D
	position Vector2D
}

// NewPolygon creates a polygon. At least three vertices are required.
func NewPolygon(vertices []Vector2D) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, errors.Join(ErrInvalidShape, errors.New("polygon requires at least 3 vertices"))
	}
	verts := make([]Vector2D, len(vertices))
	copy(verts, vertices)

	var sum Vector2D
	for _, v := range verts {
		sum = sum.Add(v)
	}
	return &Polygon{
		vertices: verts,
		position: sum.Scale(1 / float64(len(verts))),
	}, nil
}

// Kind returns KindPolygon
func (p *Polygon) Kind() ShapeKind { return KindPolygon }

// Position returns the polygon's anchor point
func (p *Polygon) Position() Vector2D { return p.position }

// SetPosition translates every vertex so the anchor lands on pos
func (p *Polygon) SetPosition(pos Vector2D) {
	delta := pos.Sub(p.position)
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Add(delta)
	}
	p.position = pos
}

// Vertices returns the polygon's vertex list. The slice is shared;
// callers must not mutate it.
func (p *Polygon) Vertices() []Vector2D { return p.vertices }

// BoundingRect returns the minimal box enclosing all vertices
func (p *Polygon) BoundingRect() Rect {
	minX, maxX := p.vertices[0].X, p.vertices[0].X
	minY, maxY := p.vertices[0].Y, p.vertices[0].Y
	for _, v := range p.vertices[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ContainsPoint tests the point against the polygon using ray-casting
// parity.
func (p *Polygon) ContainsPoint(point Vector2D) bool {
	x, y := point.X, point.Y
	n := len(p.vertices)
	inside := false

	p1 := p.vertices[0]
	for i := 1; i <= n; i++ {
		p2 := p.vertices[i%n]
		if y > math.Min(p1.Y, p2.Y) && y <= math.Max(p1.Y, p2.Y) && x <= math.Max(p1.X, p2.X) {
			var xIntersection float64
			if p1.Y != p2.Y {
				xIntersection = (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
			}
			if p1.X == p2.X || x <= xIntersection {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// IntersectsRay evaluates every polygon edge and keeps the globally
// nearest admissible hit. The edge normal is flipped so it points away
// from the polygon's anchor.
func (p *Polygon) IntersectsRay(origin, direction Vector2D, maxDistance float64) (RaycastHit, bool) {
	minT := math.Inf(1)
	var hitNormal Vector2D

	n := len(p.vertices)
	for i := 0; i < n; i++ {
		v1 := p.vertices[i]
		v2 := p.vertices[(i+1)%n]

		edgeDir := v2.Sub(v1)
		h := direction.Perp()

		a := edgeDir.Dot(h)
		if math.Abs(a) < rayParallelEpsilon {
			continue
		}

		f := 1.0 / a
		s := origin.Sub(v1)
		u := f * s.Dot(h)
		if u < 0.0 || u > 1.0 {
			continue
		}

		q := edgeDir.Perp()
		t := f * s.Dot(q)
		if t < 0 || t >= minT || t > maxDistance {
			continue
		}
		minT = t

		edgeNormal := edgeDir.Perp().Normalize()
		edgeCenter := v1.Add(v2).Scale(0.5)
		if edgeNormal.Dot(p.position.Sub(edgeCenter)) > 0 {
			edgeNormal = edgeNormal.Neg()
		}
		hitNormal = edgeNormal
	}

	if math.IsInf(minT, 1) {
		return RaycastHit{}, false
	}
	return RaycastHit{
		Point:    origin.Add(direction.Scale(minT)),
		Normal:   hitNormal,
		Distance: minT,
	}, true
}
