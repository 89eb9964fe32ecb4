// pkg/entity/entity.go
// Package entity defines the capability contract between the engine and
// the application's game objects. The engine owns identity assignment;
// everything else an object can do is an independently overridable
// capability with a visible no-op default in BaseEntity.
package entity

import (
	"github.com/opd-ai/go-arcade/pkg/collision"
	"github.com/opd-ai/go-arcade/pkg/physics"
)

// ID is a unique identifier for an entity, assigned once at
// registration and never reused while the entity is alive.
type ID uint64

// Type is an application-defined tag used for grouping and filtering
type Type int

// Signal is an application-defined message code delivered to a single
// entity through the world.
type Signal int

// UpdateResult is returned by an entity's per-tick update
type UpdateResult struct {
	// Moved reports whether the entity changed position or rotation
	// this tick; the engine repositions moved entities in the spatial
	// index and runs collision detection against them.
	Moved bool
}

// Entity is the full capability set the engine consumes from every
// registered object. Embed BaseEntity for no-op defaults.
type Entity interface {
	// GetID returns the identity the engine assigned at registration
	GetID() ID
	// SetID stores the identity; called exactly once by the engine
	SetID(ID)
	// GetType returns the entity's type tag
	GetType() Type

	// Update advances the entity by dt seconds and reports whether it
	// moved. Entities that own a physics.Body typically apply forces
	// and return the integrator's movement flag.
	Update(world World, dt float64) UpdateResult
	// Signal delivers an application-defined message to the entity
	Signal(world World, signal Signal, data any)

	// IsCollidable reports whether the entity participates in
	// collision detection as a candidate
	IsCollidable() bool
	// CollisionShape returns the entity's shape, or nil for
	// non-collidable entities with no geometry
	CollisionShape() physics.Shape
	// OnCollision is invoked once per detected pair; the receiver sees
	// itself as "self" and interprets the shared normal's sign
	OnCollision(world World, other Entity, info *collision.Info)
}

// BaseEntity carries the identity assigned by the engine and provides
// no-op defaults for every optional capability.
type BaseEntity struct {
	id ID
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID { return e.id }

// SetID stores the engine-assigned identifier
func (e *BaseEntity) SetID(id ID) { e.id = id }

// Update does nothing and reports no movement
func (e *BaseEntity) Update(world World, dt float64) UpdateResult {
	return UpdateResult{}
}

// Signal ignores the message
func (e *BaseEntity) Signal(world World, signal Signal, data any) {}

// IsCollidable reports false; override together with CollisionShape
func (e *BaseEntity) IsCollidable() bool { return false }

// CollisionShape returns nil, meaning "not collidable"
func (e *BaseEntity) CollisionShape() physics.Shape { return nil }

// OnCollision ignores the contact
func (e *BaseEntity) OnCollision(world World, other Entity, info *collision.Info) {}
