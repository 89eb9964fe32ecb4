// pkg/raycast/raycast_test.go
package raycast

import (
	"math"
	"testing"

	"github.com/opd-ai/go-arcade/pkg/entity"
	"github.com/opd-ai/go-arcade/pkg/physics"
	"github.com/opd-ai/go-arcade/pkg/spatial"
)

type probeEntity struct {
	entity.BaseEntity
	entityType entity.Type
	collidable bool
	shape      physics.Shape
}

func (e *probeEntity) GetType() entity.Type          { return e.entityType }
func (e *probeEntity) IsCollidable() bool            { return e.collidable }
func (e *probeEntity) CollisionShape() physics.Shape { return e.shape }

func addCircle(t *testing.T, tree *spatial.QuadTree, id entity.ID, entityType entity.Type, x, y, radius float64) *probeEntity {
	t.Helper()
	shape, err := physics.NewCircle(physics.Vector2D{X: x, Y: y}, radius)
	if err != nil {
		t.Fatalf("NewCircle() error = %v", err)
	}
	e := &probeEntity{entityType: entityType, collidable: true, shape: shape}
	e.SetID(id)
	tree.Insert(e)
	return e
}

func hitIDs(results []entity.RaycastResult) map[entity.ID]bool {
	ids := make(map[entity.ID]bool, len(results))
	for _, r := range results {
		ids[r.Entity.GetID()] = true
	}
	return ids
}

func TestCast_HitsEntitiesAlongRay(t *testing.T) {
	tree := spatial.NewQuadTree(physics.Rect{X: -100, Y: -100, Width: 1200, Height: 1200}, 0, 0)
	addCircle(t, tree, 1, 0, 50, 0, 5)
	addCircle(t, tree, 2, 0, 200, 0, 5)
	addCircle(t, tree, 3, 0, 50, 100, 5) // off the ray

	results := Cast(tree, physics.Vector2D{}, physics.Vector2D{X: 1}, entity.RaycastQuery{MaxDistance: 500})

	ids := hitIDs(results)
	if !ids[1] || !ids[2] {
		t.Errorf("hits = %v, expected entities 1 and 2", ids)
	}
	if ids[3] {
		t.Error("entity off the ray reported as hit")
	}
	for _, r := range results {
		if r.Hit.Distance < 0 || r.Hit.Distance > 500 {
			t.Errorf("hit distance %v outside [0, 500]", r.Hit.Distance)
		}
	}
}

func TestCast_MaxDistanceCutsOffFarHits(t *testing.T) {
	tree := spatial.NewQuadTree(physics.Rect{X: -100, Y: -100, Width: 1200, Height: 1200}, 0, 0)
	addCircle(t, tree, 1, 0, 50, 0, 5)
	addCircle(t, tree, 2, 0, 400, 0, 5)

	results := Cast(tree, physics.Vector2D{}, physics.Vector2D{X: 1}, entity.RaycastQuery{MaxDistance: 100})

	ids := hitIDs(results)
	if !ids[1] {
		t.Error("near entity missing")
	}
	if ids[2] {
		t.Error("entity beyond the maximum distance reported as hit")
	}
}

func TestCast_NonPositiveMaxDistanceIsUnbounded(t *testing.T) {
	tree := spatial.NewQuadTree(physics.Rect{X: -100, Y: -100, Width: 1200, Height: 1200}, 0, 0)
	addCircle(t, tree, 1, 0, 900, 0, 5)

	results := Cast(tree, physics.Vector2D{}, physics.Vector2D{X: 1}, entity.RaycastQuery{})

	if len(results) != 1 {
		t.Fatalf("hits = %d, expected 1 from an unbounded ray", len(results))
	}
	if math.IsNaN(results[0].Hit.Distance) || math.IsInf(results[0].Hit.Distance, 0) {
		t.Errorf("hit distance = %v, expected finite", results[0].Hit.Distance)
	}
}

func TestCast_IgnoreTypes(t *testing.T) {
	tree := spatial.NewQuadTree(physics.Rect{X: -100, Y: -100, Width: 1200, Height: 1200}, 0, 0)
	addCircle(t, tree, 1, 7, 50, 0, 5)
	addCircle(t, tree, 2, 3, 100, 0, 5)

	results := Cast(tree, physics.Vector2D{}, physics.Vector2D{X: 1}, entity.RaycastQuery{
		MaxDistance: 500,
		IgnoreTypes: map[entity.Type]struct{}{7: {}},
	})

	ids := hitIDs(results)
	if ids[1] {
		t.Error("ignored type reported as hit")
	}
	if !ids[2] {
		t.Error("non-ignored entity missing")
	}
}

func TestCast_SkipsNonCollidableAndShapeless(t *testing.T) {
	tree := spatial.NewQuadTree(physics.Rect{X: -100, Y: -100, Width: 1200, Height: 1200}, 0, 0)
	ghost := addCircle(t, tree, 1, 0, 50, 0, 5)
	ghost.collidable = false
	addCircle(t, tree, 2, 0, 100, 0, 5)

	results := Cast(tree, physics.Vector2D{}, physics.Vector2D{X: 1}, entity.RaycastQuery{MaxDistance: 500})

	ids := hitIDs(results)
	if ids[1] {
		t.Error("non-collidable entity reported as hit")
	}
	if !ids[2] {
		t.Error("collidable entity missing")
	}
}

func TestCast_MaxHitsTruncates(t *testing.T) {
	tree := spatial.NewQuadTree(physics.Rect{X: -100, Y: -100, Width: 1200, Height: 1200}, 0, 0)
	for i := 0; i < 10; i++ {
		addCircle(t, tree, entity.ID(i+1), 0, float64(50+i*30), 0, 5)
	}

	results := Cast(tree, physics.Vector2D{}, physics.Vector2D{X: 1}, entity.RaycastQuery{
		MaxDistance: 1000,
		MaxHits:     3,
	})

	if len(results) != 3 {
		t.Errorf("hits = %d, expected truncation at 3", len(results))
	}
}

func TestCast_ReportsHitGeometry(t *testing.T) {
	tree := spatial.NewQuadTree(physics.Rect{X: -100, Y: -100, Width: 1200, Height: 1200}, 0, 0)
	addCircle(t, tree, 1, 0, 10, 0, 2)

	results := Cast(tree, physics.Vector2D{}, physics.Vector2D{X: 1}, entity.RaycastQuery{MaxDistance: 100})

	if len(results) != 1 {
		t.Fatalf("hits = %d, expected 1", len(results))
	}
	hit := results[0].Hit
	if math.Abs(hit.Distance-8) > 1e-9 {
		t.Errorf("Distance = %v, expected 8", hit.Distance)
	}
	if math.Abs(hit.Point.X-8) > 1e-9 || math.Abs(hit.Point.Y) > 1e-9 {
		t.Errorf("Point = %v, expected (8, 0)", hit.Point)
	}
	if math.Abs(hit.Normal.X+1) > 1e-9 || math.Abs(hit.Normal.Y) > 1e-9 {
		t.Errorf("Normal = %v, expected (-1, 0)", hit.Normal)
	}
}

func TestCast_MissReturnsEmpty(t *testing.T) {
	tree := spatial.NewQuadTree(physics.Rect{X: -100, Y: -100, Width: 1200, Height: 1200}, 0, 0)
	addCircle(t, tree, 1, 0, 50, 50, 5)

	results := Cast(tree, physics.Vector2D{}, physics.Vector2D{X: 1}, entity.RaycastQuery{MaxDistance: 500})

	if len(results) != 0 {
		t.Errorf("hits = %d, expected none", len(results))
	}
}
