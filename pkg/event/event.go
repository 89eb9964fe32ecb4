// pkg/event/event.go
// Package event provides the in-process bus the engine publishes
// lifecycle and collision notifications on.
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Events published by the engine
const (
	WorldStarted    Type = "world_started"
	WorldStopped    Type = "world_stopped"
	EntityAdded     Type = "entity_added"
	EntityRemoved   Type = "entity_removed"
	EntityCollision Type = "entity_collision"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() any
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    any
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() any {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed
type Subscription struct {
	eventType Type
	id        uint64
}

type registeredHandler struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]registeredHandler
	nextID   uint64
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registeredHandler),
	}
}

// Subscribe registers a handler for an event type and returns a
// subscription handle for later removal.
func (b *Bus) Subscribe(eventType Type, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registeredHandler{
		id:      b.nextID,
		handler: handler,
	})
	return Subscription{eventType: eventType, id: b.nextID}
}

// Unsubscribe removes a previously registered handler. Unknown
// subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.handlers[sub.eventType]
	for i, h := range handlers {
		if h.id == sub.id {
			b.handlers[sub.eventType] = append(handlers[:i], handlers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all handlers subscribed to its type
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]registeredHandler, len(b.handlers[event.GetType()]))
	copy(handlers, b.handlers[event.GetType()])
	b.mu.RUnlock()

	for _, h := range handlers {
		h.handler(event)
	}
}
