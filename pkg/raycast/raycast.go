// pkg/raycast/raycast.go
// Package raycast combines a broad-phase query against the spatial
// index with per-candidate ray/shape intersection.
package raycast

import (
	"math"

	"github.com/opd-ai/go-arcade/pkg/entity"
	"github.com/opd-ai/go-arcade/pkg/physics"
	"github.com/opd-ai/go-arcade/pkg/spatial"
)

// Cast traces a ray through the spatial index. The direction need not
// be normalized; distances are reported in direction-length units.
//
// Results accumulate in candidate-retrieval order and are truncated
// once the query's hit cap is reached. Ordering is NOT nearest-first;
// callers needing the closest hit must scan the full result list. This
// is a deliberate simplification, not an accident of implementation.
func Cast(tree *spatial.QuadTree, origin, direction physics.Vector2D, query entity.RaycastQuery) []entity.RaycastResult {
	maxDistance := query.MaxDistance
	if maxDistance <= 0 {
		maxDistance = math.Inf(1)
	}

	candidates := tree.Retrieve(rayBounds(tree, origin, direction, maxDistance))

	var hits []entity.RaycastResult
	for _, obj := range candidates {
		if query.MaxHits > 0 && len(hits) >= query.MaxHits {
			break
		}
		if _, ignored := query.IgnoreTypes[obj.GetType()]; ignored {
			continue
		}
		if !obj.IsCollidable() {
			continue
		}
		shape := obj.CollisionShape()
		if shape == nil {
			continue
		}
		if hit, ok := shape.IntersectsRay(origin, direction, maxDistance); ok {
			hits = append(hits, entity.RaycastResult{Entity: obj, Hit: hit})
		}
	}
	return hits
}

// rayBounds returns the broad-phase query rect spanning the ray from
// its origin to its endpoint at maxDistance. An unbounded ray queries
// the whole world.
func rayBounds(tree *spatial.QuadTree, origin, direction physics.Vector2D, maxDistance float64) physics.Rect {
	if math.IsInf(maxDistance, 1) {
		return tree.Bounds()
	}
	end := origin.Add(direction.Scale(maxDistance))
	minX := math.Min(origin.X, end.X)
	minY := math.Min(origin.Y, end.Y)
	return physics.Rect{
		X:      minX,
		Y:      minY,
		Width:  math.Max(origin.X, end.X) - minX,
		Height: math.Max(origin.Y, end.Y) - minY,
	}
}
