// pkg/collision/detector.go
package collision

import (
	"fmt"

	"github.com/opd-ai/go-arcade/pkg/physics"
)

// ErrUnsupportedPair is returned by Detect when no handler is
// registered for a shape-kind pair. It indicates a missing
// registration, not a runtime data problem, and must not be collapsed
// into "no collision"; callers decide whether to skip or fail.
var ErrUnsupportedPair = fmt.Errorf("no collision handler registered for shape pair")

// Func is a narrow-phase handler taking shapes in the order matching
// its registered kind pair. It returns nil when there is no contact.
type Func func(a, b physics.Shape) *Info

type pairKey struct {
	a, b physics.ShapeKind
}

// Detector dispatches narrow-phase detection by shape-kind pair. It is
// constructed once with its full handler table and never mutated during
// simulation; there is no shared global registry.
type Detector struct {
	handlers map[pairKey]Func
}

// NewDetector creates a detector with the default handler table
// covering every supported shape-kind combination.
func NewDetector() *Detector {
	d := NewEmptyDetector()
	d.Register(physics.KindCircle, physics.KindCircle, func(a, b physics.Shape) *Info {
		return CircleCircle(a.(*physics.Circle), b.(*physics.Circle))
	})
	d.Register(physics.KindRectangle, physics.KindCircle, func(a, b physics.Shape) *Info {
		return RectCircle(a.(*physics.Rectangle), b.(*physics.Circle))
	})
	d.Register(physics.KindLine, physics.KindCircle, func(a, b physics.Shape) *Info {
		return LineCircle(a.(*physics.Line), b.(*physics.Circle))
	})
	d.Register(physics.KindPolygon, physics.KindCircle, func(a, b physics.Shape) *Info {
		return PolygonCircle(a.(*physics.Polygon), b.(*physics.Circle))
	})
	d.Register(physics.KindRectangle, physics.KindRectangle, func(a, b physics.Shape) *Info {
		return RectRect(a.(*physics.Rectangle), b.(*physics.Rectangle))
	})
	d.Register(physics.KindRectangle, physics.KindLine, func(a, b physics.Shape) *Info {
		return RectLine(a.(*physics.Rectangle), b.(*physics.Line))
	})
	d.Register(physics.KindRectangle, physics.KindPolygon, func(a, b physics.Shape) *Info {
		return RectPolygon(a.(*physics.Rectangle), b.(*physics.Polygon))
	})
	d.Register(physics.KindLine, physics.KindLine, func(a, b physics.Shape) *Info {
		return LineLine(a.(*physics.Line), b.(*physics.Line))
	})
	d.Register(physics.KindLine, physics.KindPolygon, func(a, b physics.Shape) *Info {
		return LinePolygon(a.(*physics.Line), b.(*physics.Polygon))
	})
	d.Register(physics.KindPolygon, physics.KindPolygon, func(a, b physics.Shape) *Info {
		return PolygonPolygon(a.(*physics.Polygon), b.(*physics.Polygon))
	})
	return d
}

// NewEmptyDetector creates a detector with no registered handlers
func NewEmptyDetector() *Detector {
	return &Detector{handlers: make(map[pairKey]Func)}
}

// Register installs a handler for (kindA, kindB) and derives the
// mirrored handler for (kindB, kindA) by swapping argument order; the
// mirrored call's normal is whatever the handler naturally produces for
// the swapped arguments.
func (d *Detector) Register(kindA, kindB physics.ShapeKind, handler Func) {
	d.handlers[pairKey{kindA, kindB}] = handler
	if kindA != kindB {
		d.handlers[pairKey{kindB, kindA}] = func(b, a physics.Shape) *Info {
			return handler(a, b)
		}
	}
}

// Detect runs the registered handler for the shapes' kind pair. It
// returns (nil, nil) for no contact and ErrUnsupportedPair when the
// pair has no handler.
func (d *Detector) Detect(a, b physics.Shape) (*Info, error) {
	handler, ok := d.handlers[pairKey{a.Kind(), b.Kind()}]
	if !ok {
		return nil, fmt.Errorf("%w: %v x %v", ErrUnsupportedPair, a.Kind(), b.Kind())
	}
	return handler(a, b), nil
}

// Supports reports whether a handler is registered for the kind pair
func (d *Detector) Supports(kindA, kindB physics.ShapeKind) bool {
	_, ok := d.handlers[pairKey{kindA, kindB}]
	return ok
}
