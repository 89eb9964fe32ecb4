// pkg/event/events.go
package event

import (
	"github.com/opd-ai/go-arcade/pkg/collision"
	"github.com/opd-ai/go-arcade/pkg/entity"
)

// EntityEvent reports an entity entering or leaving the world
type EntityEvent struct {
	BaseEvent
	EntityID   entity.ID
	EntityType entity.Type
}

// CollisionEvent reports one detected pair for the current tick. A and
// B are ordered as detection ran: A is the entity whose movement
// triggered the query.
type CollisionEvent struct {
	BaseEvent
	A    entity.ID
	B    entity.ID
	Info *collision.Info
}
