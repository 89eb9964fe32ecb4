// pkg/entity/world.go
package entity

import (
	"github.com/opd-ai/go-arcade/pkg/physics"
)

// RaycastQuery bounds a raycast. The zero value means an unbounded ray
// with no hit cap and no ignored types.
type RaycastQuery struct {
	// MaxDistance limits the ray's parameter range; zero or negative
	// means unbounded.
	MaxDistance float64
	// MaxHits truncates the result list once reached; zero or negative
	// means unlimited.
	MaxHits int
	// IgnoreTypes excludes entities whose type tag is present
	IgnoreTypes map[Type]struct{}
}

// RaycastResult pairs an entity with the ray hit on its shape
type RaycastResult struct {
	Entity Entity
	Hit    physics.RaycastHit
}

// World is the engine capability surface exposed to entities. Entities
// must not mutate the identity registry except through AddEntity and
// RemoveEntity.
type World interface {
	// AddEntity registers an entity, assigns its identity, and inserts
	// it into the spatial index
	AddEntity(e Entity) ID
	// RemoveEntity unregisters an entity and removes it from the
	// spatial index; unknown identities return an explicit error with
	// no partial mutation
	RemoveEntity(id ID) error
	// EntityByID looks up a live entity
	EntityByID(id ID) (Entity, bool)
	// EntitiesByType returns all live entities carrying the type tag
	EntitiesByType(t Type) []Entity

	// Raycast runs a broad-phase pruned ray query. Results are in
	// candidate-retrieval order, not sorted by distance.
	Raycast(origin, direction physics.Vector2D, query RaycastQuery) []RaycastResult
	// EntitiesInRadius returns entities whose shape anchor lies within
	// radius of center
	EntitiesInRadius(center physics.Vector2D, radius float64) []Entity
	// EntitiesInRect returns broad-phase candidates for the region;
	// extra candidates are possible, missing ones are not
	EntitiesInRect(rect physics.Rect) []Entity

	// SignalEntity delivers an application-defined message to the
	// entity with the given identity
	SignalEntity(id ID, signal Signal, data any) error
}
