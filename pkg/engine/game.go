// pkg/engine/game.go
// Package engine drives the per-frame simulation tick: entity updates,
// spatial repositioning, broad- and narrow-phase collision detection,
// and paired collision-callback dispatch, in that fixed order.
package engine

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-arcade/pkg/collision"
	"github.com/opd-ai/go-arcade/pkg/config"
	"github.com/opd-ai/go-arcade/pkg/entity"
	"github.com/opd-ai/go-arcade/pkg/event"
	"github.com/opd-ai/go-arcade/pkg/logging"
	"github.com/opd-ai/go-arcade/pkg/physics"
	"github.com/opd-ai/go-arcade/pkg/raycast"
	"github.com/opd-ai/go-arcade/pkg/spatial"
)

// ErrEntityNotFound is returned by operations addressing an identity
// that was never registered or has already been removed.
var ErrEntityNotFound = fmt.Errorf("entity not found")

type shapeKindPair struct {
	a, b physics.ShapeKind
}

type detectedCollision struct {
	a, b entity.Entity
	info *collision.Info
}

// Game is one running engine instance: the identity registry, the
// spatial index, the collision detector, and the tick orchestration.
// It implements entity.World.
//
// A Game is single-threaded: all mutation happens from within a tick or
// between ticks on the caller's goroutine. Re-entrant registration and
// removal from entity callbacks is supported; each tick phase iterates
// over a snapshot taken when the phase starts.
type Game struct {
	Config   *config.EngineConfig
	EventBus *event.Bus

	log      *logging.Logger
	detector *collision.Detector
	tree     *spatial.QuadTree

	nextID         entity.ID
	entities       map[entity.ID]entity.Entity
	entitiesByType map[entity.Type]map[entity.ID]entity.Entity

	currentTick uint64

	// unsupported shape pairs already logged, to keep the skip policy
	// from flooding the log every tick
	loggedUnsupported map[shapeKindPair]struct{}
}

// NewGame creates a game with the default collision handler table
func NewGame(cfg *config.EngineConfig) *Game {
	return NewGameWithDetector(cfg, collision.NewDetector())
}

// NewGameWithDetector creates a game with an injected detector. The
// detector's handler table should be fully registered before the first
// tick and never mutated afterwards.
func NewGameWithDetector(cfg *config.EngineConfig, detector *collision.Detector) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Game{
		Config:            cfg,
		EventBus:          event.NewBus(),
		log:               logging.NewLogger(),
		detector:          detector,
		tree:              spatial.NewQuadTree(cfg.WorldBounds.Rect(), cfg.Spatial.MaxObjects, cfg.Spatial.MaxLevels),
		entities:          make(map[entity.ID]entity.Entity),
		entitiesByType:    make(map[entity.Type]map[entity.ID]entity.Entity),
		loggedUnsupported: make(map[shapeKindPair]struct{}),
	}
}

// SetLogger replaces the game's logger
func (g *Game) SetLogger(log *logging.Logger) { g.log = log }

// CurrentTick returns the number of completed ticks
func (g *Game) CurrentTick() uint64 { return g.currentTick }

// SpatialIndex exposes the broad-phase index for direct queries
func (g *Game) SpatialIndex() *spatial.QuadTree { return g.tree }

// AddEntity registers an entity, assigns the next identity, indexes it
// by type, and inserts it into the spatial index.
func (g *Game) AddEntity(e entity.Entity) entity.ID {
	g.nextID++
	id := g.nextID
	e.SetID(id)

	g.entities[id] = e
	byType, ok := g.entitiesByType[e.GetType()]
	if !ok {
		byType = make(map[entity.ID]entity.Entity)
		g.entitiesByType[e.GetType()] = byType
	}
	byType[id] = e

	g.tree.Insert(e)

	g.EventBus.Publish(&event.EntityEvent{
		BaseEvent:  event.BaseEvent{EventType: event.EntityAdded, Source: g},
		EntityID:   id,
		EntityType: e.GetType(),
	})
	return id
}

// RemoveEntity unregisters an entity and removes it from both the
// identity index and the spatial index. Unknown identities return
// ErrEntityNotFound with no partial mutation.
func (g *Game) RemoveEntity(id entity.ID) error {
	e, ok := g.entities[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntityNotFound, id)
	}

	g.tree.Remove(e)

	byType := g.entitiesByType[e.GetType()]
	delete(byType, id)
	if len(byType) == 0 {
		delete(g.entitiesByType, e.GetType())
	}
	delete(g.entities, id)

	g.EventBus.Publish(&event.EntityEvent{
		BaseEvent:  event.BaseEvent{EventType: event.EntityRemoved, Source: g},
		EntityID:   id,
		EntityType: e.GetType(),
	})
	return nil
}

// EntityByID looks up a live entity by identity
func (g *Game) EntityByID(id entity.ID) (entity.Entity, bool) {
	e, ok := g.entities[id]
	return e, ok
}

// EntitiesByType returns all live entities carrying the type tag
func (g *Game) EntitiesByType(t entity.Type) []entity.Entity {
	byType := g.entitiesByType[t]
	result := make([]entity.Entity, 0, len(byType))
	for _, e := range byType {
		result = append(result, e)
	}
	return result
}

// Raycast traces a ray through the spatial index. Results are in
// candidate-retrieval order, not sorted by distance.
func (g *Game) Raycast(origin, direction physics.Vector2D, query entity.RaycastQuery) []entity.RaycastResult {
	return raycast.Cast(g.tree, origin, direction, query)
}

// EntitiesInRadius returns entities whose shape anchor lies within
// radius of center.
func (g *Game) EntitiesInRadius(center physics.Vector2D, radius float64) []entity.Entity {
	return collectEntities(g.tree.RetrieveInRadius(center, radius))
}

// EntitiesInRect returns broad-phase candidates for the region
func (g *Game) EntitiesInRect(rect physics.Rect) []entity.Entity {
	return collectEntities(g.tree.Retrieve(rect))
}

// SignalEntity delivers an application-defined message to one entity
func (g *Game) SignalEntity(id entity.ID, signal entity.Signal, data any) error {
	e, ok := g.entities[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntityNotFound, id)
	}
	e.Signal(g, signal, data)
	return nil
}

// Update advances the simulation by one tick. The phase order is fixed:
// entity updates run first, moved entities are repositioned in the
// spatial index, collision detection runs only against moved entities,
// and finally both members of every detected pair receive the same
// collision info.
func (g *Game) Update(dt float64) {
	if g.Config.MaxDeltaTime > 0 && dt > g.Config.MaxDeltaTime {
		dt = g.Config.MaxDeltaTime
	}

	moved := g.updatePhase(dt)
	g.repositionPhase(moved)
	collisions := g.detectPhase(moved)
	g.dispatchPhase(collisions)

	g.currentTick++
}

// updatePhase runs every live entity's update over a snapshot and
// collects the ones that report movement.
func (g *Game) updatePhase(dt float64) []entity.Entity {
	var moved []entity.Entity
	for _, e := range g.snapshot() {
		if !g.isLive(e) {
			continue
		}
		if res := e.Update(g, dt); res.Moved {
			moved = append(moved, e)
		}
	}
	return moved
}

// repositionPhase re-keys moved entities in the spatial index. This
// must complete before detection queries run, or a moved entity's stale
// bucket could miss or double-count candidates.
func (g *Game) repositionPhase(moved []entity.Entity) {
	for _, e := range moved {
		if !g.isLive(e) {
			continue
		}
		g.tree.Update(e)
	}
}

// detectPhase queries the spatial index around every moved entity with
// a shape and runs the narrow-phase detector against each distinct,
// non-self, collidable candidate. Unsupported shape pairs are skipped
// for the tick.
func (g *Game) detectPhase(moved []entity.Entity) []detectedCollision {
	var collisions []detectedCollision
	for _, movedObj := range moved {
		if !g.isLive(movedObj) {
			continue
		}
		shapeA := movedObj.CollisionShape()
		if shapeA == nil {
			continue
		}

		for id, other := range g.tree.Retrieve(shapeA.BoundingRect()) {
			if id == movedObj.GetID() {
				continue
			}
			if !other.IsCollidable() {
				continue
			}
			shapeB := other.CollisionShape()
			if shapeB == nil {
				continue
			}

			info, err := g.detector.Detect(shapeA, shapeB)
			if err != nil {
				g.logUnsupportedPair(shapeA, shapeB, err)
				continue
			}
			if info == nil {
				continue
			}
			collisions = append(collisions, detectedCollision{a: movedObj, b: other, info: info})
		}
	}
	return collisions
}

// dispatchPhase invokes both entities' collision callbacks with the
// shared info; each sees itself as "self". Pairs whose members were
// removed by an earlier callback this tick are dropped.
func (g *Game) dispatchPhase(collisions []detectedCollision) {
	for _, c := range collisions {
		if !g.isLive(c.a) || !g.isLive(c.b) {
			continue
		}
		g.EventBus.Publish(&event.CollisionEvent{
			BaseEvent: event.BaseEvent{EventType: event.EntityCollision, Source: g},
			A:         c.a.GetID(),
			B:         c.b.GetID(),
			Info:      c.info,
		})
		c.a.OnCollision(g, c.b, c.info)
		c.b.OnCollision(g, c.a, c.info)
	}
}

func (g *Game) snapshot() []entity.Entity {
	snapshot := make([]entity.Entity, 0, len(g.entities))
	for _, e := range g.entities {
		snapshot = append(snapshot, e)
	}
	return snapshot
}

func (g *Game) isLive(e entity.Entity) bool {
	live, ok := g.entities[e.GetID()]
	return ok && live == e
}

// logUnsupportedPair records the skip once per kind pair
func (g *Game) logUnsupportedPair(a, b physics.Shape, err error) {
	key := shapeKindPair{a.Kind(), b.Kind()}
	if _, seen := g.loggedUnsupported[key]; seen {
		return
	}
	g.loggedUnsupported[key] = struct{}{}
	g.log.Warn(context.Background(), "skipping collision pair with no registered handler",
		"shape_a", key.a.String(), "shape_b", key.b.String(), "reason", err.Error())
}

func collectEntities(m map[entity.ID]entity.Entity) []entity.Entity {
	result := make([]entity.Entity, 0, len(m))
	for _, e := range m {
		result = append(result, e)
	}
	return result
}

var _ entity.World = (*Game)(nil)
