// pkg/collision/collision.go
// Package collision implements pairwise narrow-phase collision tests
// between concrete shapes, and a Detector that dispatches on shape-kind
// pairs. The detection functions are pure and usable without any engine
// instance.
package collision

import (
	"math"

	"github.com/opd-ai/go-arcade/pkg/physics"
)

const (
	// degenerateEpsilon guards coincident-center and zero-length cases
	degenerateEpsilon = 1e-6
	// lineContactPenetration is the nominal depth reported for
	// segment/segment contacts, which carry no true penetration
	lineContactPenetration = 0.1
)

// Info is the result of a narrow-phase test: at least one contact
// point, a unit separation normal, and a non-negative penetration
// depth. The normal's sign convention is per detection function,
// matching the declared argument order.
type Info struct {
	ContactPoints []physics.Vector2D
	Normal        physics.Vector2D
	Penetration   float64
}

// CircleCircle checks two circles by comparing center distance against
// summed radii. Coincident centers resolve to an arbitrary unit normal.
func CircleCircle(a, b *physics.Circle) *Info {
	distanceVector := b.Center.Sub(a.Center)
	distance := distanceVector.Length()
	combinedRadius := a.Radius + b.Radius

	if distance > combinedRadius {
		return nil
	}

	var normal physics.Vector2D
	var penetration float64
	if distance < degenerateEpsilon {
		normal = physics.Vector2D{X: 1}
		penetration = combinedRadius
	} else {
		normal = distanceVector.Scale(1 / distance)
		penetration = combinedRadius - distance
	}

	return &Info{
		ContactPoints: []physics.Vector2D{a.Center.Add(normal.Scale(a.Radius))},
		Normal:        normal,
		Penetration:   penetration,
	}
}

// RectCircle clamps the circle center to the rectangle for the closest
// point. A center inside the rectangle resolves against the nearest of
// the four edges.
func RectCircle(a *physics.Rectangle, b *physics.Circle) *Info {
	closest := physics.Vector2D{
		X: math.Max(a.Rect.Left(), math.Min(b.Center.X, a.Rect.Right())),
		Y: math.Max(a.Rect.Top(), math.Min(b.Center.Y, a.Rect.Bottom())),
	}

	distanceVector := b.Center.Sub(closest)
	distance := distanceVector.Length()
	if distance > b.Radius {
		return nil
	}

	if distance < degenerateEpsilon {
		// Circle center is inside the rectangle: push out through the
		// nearest edge
		distances := []float64{
			b.Center.X - a.Rect.Left(),
			a.Rect.Right() - b.Center.X,
			b.Center.Y - a.Rect.Top(),
			a.Rect.Bottom() - b.Center.Y,
		}
		normals := []physics.Vector2D{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

		minIdx := 0
		for i, d := range distances {
			if d < distances[minIdx] {
				minIdx = i
			}
		}
		normal := normals[minIdx]
		return &Info{
			ContactPoints: []physics.Vector2D{b.Center.Sub(normal.Scale(b.Radius))},
			Normal:        normal,
			Penetration:   b.Radius + distances[minIdx],
		}
	}

	return &Info{
		ContactPoints: []physics.Vector2D{closest},
		Normal:        distanceVector.Scale(1 / distance),
		Penetration:   b.Radius - distance,
	}
}

// LineCircle projects the circle center onto the segment, clamps the
// projection parameter to [0,1], and tests the clamped point against
// the circle.
func LineCircle(a *physics.Line, b *physics.Circle) *Info {
	lineVec := a.End.Sub(a.Start)
	toCircle := b.Center.Sub(a.Start)

	lineLengthSq := lineVec.LengthSquared()
	if lineLengthSq < degenerateEpsilon {
		// The segment degenerates to a point
		distance := b.Center.Sub(a.Start).Length()
		if distance > b.Radius {
			return nil
		}
		normal := physics.Vector2D{X: 1}
		if distance > degenerateEpsilon {
			normal = b.Center.Sub(a.Start).Normalize()
		}
		return &Info{
			ContactPoints: []physics.Vector2D{a.Start},
			Normal:        normal,
			Penetration:   b.Radius - distance,
		}
	}

	t := math.Max(0, math.Min(1, toCircle.Dot(lineVec)/lineLengthSq))
	closest := a.Start.Add(lineVec.Scale(t))

	distanceVector := b.Center.Sub(closest)
	distance := distanceVector.Length()
	if distance > b.Radius {
		return nil
	}

	var normal physics.Vector2D
	if distance < degenerateEpsilon {
		// Circle center sits on the segment
		normal = lineVec.Perp().Normalize()
	} else {
		normal = distanceVector.Scale(1 / distance)
	}

	return &Info{
		ContactPoints: []physics.Vector2D{closest},
		Normal:        normal,
		Penetration:   b.Radius - distance,
	}
}

// PolygonCircle runs SAT over the polygon's edge normals against the
// circle's projected interval, then checks each vertex directly against
// the circle radius to catch corner contacts, keeping the smaller
// penetration.
func PolygonCircle(a *physics.Polygon, b *physics.Circle) *Info {
	minPenetration := math.Inf(1)
	var collisionNormal, contactPoint physics.Vector2D

	vertices := a.Vertices()
	n := len(vertices)
	for i := 0; i < n; i++ {
		v1 := vertices[i]
		v2 := vertices[(i+1)%n]

		edge := v2.Sub(v1)
		normal := edge.Perp().Normalize()

		polyMin, polyMax := projectVertices(vertices, normal)

		circleCenterProj := b.Center.Dot(normal)
		circleMin := circleCenterProj - b.Radius
		circleMax := circleCenterProj + b.Radius

		if polyMax < circleMin || circleMax < polyMin {
			return nil
		}

		penetration := math.Min(polyMax-circleMin, circleMax-polyMin)
		if penetration < minPenetration {
			minPenetration = penetration
			collisionNormal = normal

			t := math.Max(0, math.Min(1, b.Center.Sub(v1).Dot(edge)/edge.LengthSquared()))
			contactPoint = v1.Add(edge.Scale(t))
		}
	}

	for _, vertex := range vertices {
		toVertex := vertex.Sub(b.Center)
		distance := toVertex.Length()
		if distance < b.Radius {
			penetration := b.Radius - distance
			if penetration < minPenetration {
				minPenetration = penetration
				if distance > degenerateEpsilon {
					collisionNormal = toVertex.Normalize()
				} else {
					collisionNormal = physics.Vector2D{X: 1}
				}
				contactPoint = vertex
			}
		}
	}

	return &Info{
		ContactPoints: []physics.Vector2D{contactPoint},
		Normal:        collisionNormal,
		Penetration:   minPenetration,
	}
}

// RectRect performs a box-overlap test, picking the minimum of the four
// directional overlaps as the separating axis.
func RectRect(a, b *physics.Rectangle) *Info {
	if a.Rect.Right() < b.Rect.Left() || b.Rect.Right() < a.Rect.Left() ||
		a.Rect.Bottom() < b.Rect.Top() || b.Rect.Bottom() < a.Rect.Top() {
		return nil
	}

	leftOverlap := a.Rect.Right() - b.Rect.Left()
	rightOverlap := b.Rect.Right() - a.Rect.Left()
	topOverlap := a.Rect.Bottom() - b.Rect.Top()
	bottomOverlap := b.Rect.Bottom() - a.Rect.Top()

	penetrations := []float64{leftOverlap, rightOverlap, topOverlap, bottomOverlap}
	minIdx := 0
	for i, p := range penetrations {
		if p < penetrations[minIdx] {
			minIdx = i
		}
	}

	var normal, contactPoint physics.Vector2D
	switch minIdx {
	case 0: // left
		normal = physics.Vector2D{X: -1}
		contactPoint = physics.Vector2D{X: b.Rect.Left(), Y: a.Rect.Top() + a.Rect.Height/2}
	case 1: // right
		normal = physics.Vector2D{X: 1}
		contactPoint = physics.Vector2D{X: b.Rect.Right(), Y: a.Rect.Top() + a.Rect.Height/2}
	case 2: // top
		normal = physics.Vector2D{Y: -1}
		contactPoint = physics.Vector2D{X: a.Rect.Left() + a.Rect.Width/2, Y: b.Rect.Top()}
	case 3: // bottom
		normal = physics.Vector2D{Y: 1}
		contactPoint = physics.Vector2D{X: a.Rect.Left() + a.Rect.Width/2, Y: b.Rect.Bottom()}
	}

	return &Info{
		ContactPoints: []physics.Vector2D{contactPoint},
		Normal:        normal,
		Penetration:   penetrations[minIdx],
	}
}

// RectLine checks a rectangle against a line segment. A segment fully
// inside the rectangle resolves against the nearest edge; otherwise the
// first rectangle edge the segment crosses produces the contact.
func RectLine(a *physics.Rectangle, b *physics.Line) *Info {
	startInside := a.Rect.ContainsPoint(b.Start)
	endInside := a.Rect.ContainsPoint(b.End)

	if startInside && endInside {
		lineCenter := b.Start.Add(b.End).Scale(0.5)
		distances := []float64{
			lineCenter.X - a.Rect.Left(),
			a.Rect.Right() - lineCenter.X,
			lineCenter.Y - a.Rect.Top(),
			a.Rect.Bottom() - lineCenter.Y,
		}
		normals := []physics.Vector2D{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

		minIdx := 0
		for i, d := range distances {
			if d < distances[minIdx] {
				minIdx = i
			}
		}
		return &Info{
			ContactPoints: []physics.Vector2D{lineCenter},
			Normal:        normals[minIdx],
			Penetration:   distances[minIdx],
		}
	}

	corners := a.Vertices()
	rectEdges := [4][2]physics.Vector2D{
		{corners[0], corners[1]}, // top
		{corners[1], corners[2]}, // right
		{corners[2], corners[3]}, // bottom
		{corners[3], corners[0]}, // left
	}
	edgeNormals := []physics.Vector2D{{Y: -1}, {X: 1}, {Y: 1}, {X: -1}}

	for i, edge := range rectEdges {
		if intersection, ok := segmentIntersection(b.Start, b.End, edge[0], edge[1]); ok {
			return &Info{
				ContactPoints: []physics.Vector2D{intersection},
				Normal:        edgeNormals[i],
				Penetration:   lineContactPenetration,
			}
		}
	}

	return nil
}

// RectPolygon converts the rectangle to a 4-vertex polygon and routes
// through PolygonPolygon.
func RectPolygon(a *physics.Rectangle, b *physics.Polygon) *Info {
	rectPoly, err := physics.NewPolygon(a.Vertices())
	if err != nil {
		return nil
	}
	return PolygonPolygon(rectPoly, b)
}

// LineLine checks two segments for intersection. The normal is the
// first segment's perpendicular and the penetration is nominal.
func LineLine(a, b *physics.Line) *Info {
	intersection, ok := segmentIntersection(a.Start, a.End, b.Start, b.End)
	if !ok {
		return nil
	}
	return &Info{
		ContactPoints: []physics.Vector2D{intersection},
		Normal:        a.End.Sub(a.Start).Perp().Normalize(),
		Penetration:   lineContactPenetration,
	}
}

// LinePolygon checks a segment against each polygon edge and returns
// the first intersection found.
func LinePolygon(a *physics.Line, b *physics.Polygon) *Info {
	vertices := b.Vertices()
	n := len(vertices)
	for i := 0; i < n; i++ {
		v1 := vertices[i]
		v2 := vertices[(i+1)%n]

		if intersection, ok := segmentIntersection(a.Start, a.End, v1, v2); ok {
			return &Info{
				ContactPoints: []physics.Vector2D{intersection},
				Normal:        v2.Sub(v1).Perp().Normalize(),
				Penetration:   lineContactPenetration,
			}
		}
	}
	return nil
}

// PolygonPolygon runs SAT over every edge normal of both polygons. Any
// separating axis aborts with no collision; otherwise the minimum
// overlap axis gives the normal and penetration. The contact point is
// approximated as the midpoint between the two anchors.
func PolygonPolygon(a, b *physics.Polygon) *Info {
	minPenetration := math.Inf(1)
	var collisionNormal physics.Vector2D

	for _, vertices := range [][]physics.Vector2D{a.Vertices(), b.Vertices()} {
		n := len(vertices)
		for i := 0; i < n; i++ {
			edge := vertices[(i+1)%n].Sub(vertices[i])
			normal := edge.Perp().Normalize()

			aMin, aMax := projectVertices(a.Vertices(), normal)
			bMin, bMax := projectVertices(b.Vertices(), normal)

			if aMax < bMin || bMax < aMin {
				return nil
			}

			penetration := math.Min(aMax-bMin, bMax-aMin)
			if penetration < minPenetration {
				minPenetration = penetration
				collisionNormal = normal
			}
		}
	}

	contactPoint := a.Position().Add(b.Position()).Scale(0.5)
	return &Info{
		ContactPoints: []physics.Vector2D{contactPoint},
		Normal:        collisionNormal,
		Penetration:   minPenetration,
	}
}

// projectVertices returns the min and max projections of the vertex set
// onto the axis.
func projectVertices(vertices []physics.Vector2D, axis physics.Vector2D) (float64, float64) {
	min := vertices[0].Dot(axis)
	max := min
	for _, v := range vertices[1:] {
		proj := v.Dot(axis)
		min = math.Min(min, proj)
		max = math.Max(max, proj)
	}
	return min, max
}

// segmentIntersection finds the intersection point of two segments,
// reporting false for parallel or non-crossing segments.
func segmentIntersection(p1, p2, p3, p4 physics.Vector2D) (physics.Vector2D, bool) {
	denom := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(denom) < degenerateEpsilon {
		return physics.Vector2D{}, false
	}

	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / denom
	u := -((p1.X-p2.X)*(p1.Y-p3.Y) - (p1.Y-p2.Y)*(p1.X-p3.X)) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return physics.Vector2D{}, false
	}
	return physics.Vector2D{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
	}, true
}
