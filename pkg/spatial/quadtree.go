// pkg/spatial/quadtree.go
// Package spatial provides the hierarchical quad-partition index used
// for broad-phase pruning. Entities are stored by their current
// bounding rect; the index is opaque to concrete shape kinds.
package spatial

import (
	"github.com/opd-ai/go-arcade/pkg/entity"
	"github.com/opd-ai/go-arcade/pkg/physics"
)

const (
	// DefaultMaxObjects is the per-node capacity before subdivision
	DefaultMaxObjects = 10
	// DefaultMaxLevels is the maximum subdivision depth
	DefaultMaxLevels = 5
)

// Child quadrant indices
const (
	quadNE = iota
	quadNW
	quadSW
	quadSE
	noQuadrant = -1
)

// QuadTree is the root of the spatial index. It records the bounding
// rect each entity was inserted with, so removal descends by the
// last-known rect even after the entity's shape has moved.
type QuadTree struct {
	root       *quadNode
	lastBounds map[entity.ID]physics.Rect
}

// quadNode is one rectangular partition cell. An entity lives in the
// deepest node whose region fully contains its bounding rect, or in an
// ancestor when the rect straddles quadrant midpoints or the depth
// limit is reached.
type quadNode struct {
	bounds     physics.Rect
	maxObjects int
	maxLevels  int
	level      int

	objects       map[entity.ID]entity.Entity
	children      [4]*quadNode // NE, NW, SW, SE; nil until split
	verticalMid   float64
	horizontalMid float64
}

// NewQuadTree creates an index over the world bounds. Non-positive
// maxObjects or maxLevels fall back to the defaults.
func NewQuadTree(bounds physics.Rect, maxObjects, maxLevels int) *QuadTree {
	if maxObjects <= 0 {
		maxObjects = DefaultMaxObjects
	}
	if maxLevels <= 0 {
		maxLevels = DefaultMaxLevels
	}
	return &QuadTree{
		root:       newQuadNode(bounds, maxObjects, maxLevels, 0),
		lastBounds: make(map[entity.ID]physics.Rect),
	}
}

func newQuadNode(bounds physics.Rect, maxObjects, maxLevels, level int) *quadNode {
	return &quadNode{
		bounds:     bounds,
		maxObjects: maxObjects,
		maxLevels:  maxLevels,
		level:      level,
		objects:    make(map[entity.ID]entity.Entity),
	}
}

// Bounds returns the world region the index covers
func (t *QuadTree) Bounds() physics.Rect { return t.root.bounds }

// Len returns the number of entities currently stored
func (t *QuadTree) Len() int { return len(t.lastBounds) }

// Clear removes every entity and discards all child nodes
func (t *QuadTree) Clear() {
	t.root = newQuadNode(t.root.bounds, t.root.maxObjects, t.root.maxLevels, 0)
	t.lastBounds = make(map[entity.ID]physics.Rect)
}

// Insert stores an entity under its current bounding rect. Entities
// without a shape, or whose rect does not intersect the world bounds,
// are ignored.
func (t *QuadTree) Insert(e entity.Entity) {
	shape := e.CollisionShape()
	if shape == nil {
		return
	}
	rect := shape.BoundingRect()
	if !t.root.bounds.Intersects(rect) {
		return
	}
	t.root.insert(e, rect)
	t.lastBounds[e.GetID()] = rect
}

// Remove discards an entity from every node whose region intersects the
// rect the entity was last inserted with. Removing an unknown entity is
// a no-op.
func (t *QuadTree) Remove(e entity.Entity) {
	rect, ok := t.lastBounds[e.GetID()]
	if !ok {
		return
	}
	t.root.remove(e.GetID(), rect)
	delete(t.lastBounds, e.GetID())
}

// Update repositions a moved entity by removing it under its last-known
// rect and re-inserting it under its current one. This is the only
// repositioning mechanism.
func (t *QuadTree) Update(e entity.Entity) {
	t.Remove(e)
	t.Insert(e)
}

// Retrieve returns every stored entity whose storage node's region
// intersects the query rect, keyed by identity. The result may include
// extra candidates but never misses one; callers narrow it with exact
// shape tests.
func (t *QuadTree) Retrieve(rect physics.Rect) map[entity.ID]entity.Entity {
	found := make(map[entity.ID]entity.Entity)
	t.root.retrieve(rect, found)
	return found
}

// RetrieveInRadius returns entities whose shape anchor lies within
// radius of center, broad-phased through the circle's bounding square.
func (t *QuadTree) RetrieveInRadius(center physics.Vector2D, radius float64) map[entity.ID]entity.Entity {
	candidates := t.Retrieve(physics.NewRectFromCenter(center, radius*2, radius*2))
	for id, e := range candidates {
		shape := e.CollisionShape()
		if shape == nil || shape.Position().Distance(center) > radius {
			delete(candidates, id)
		}
	}
	return candidates
}

func (n *quadNode) split() {
	subWidth := n.bounds.Width / 2
	subHeight := n.bounds.Height / 2
	x, y := n.bounds.X, n.bounds.Y

	n.verticalMid = x + subWidth
	n.horizontalMid = y + subHeight

	n.children[quadNE] = newQuadNode(physics.Rect{X: n.verticalMid, Y: y, Width: subWidth, Height: subHeight},
		n.maxObjects, n.maxLevels, n.level+1)
	n.children[quadNW] = newQuadNode(physics.Rect{X: x, Y: y, Width: subWidth, Height: subHeight},
		n.maxObjects, n.maxLevels, n.level+1)
	n.children[quadSW] = newQuadNode(physics.Rect{X: x, Y: n.horizontalMid, Width: subWidth, Height: subHeight},
		n.maxObjects, n.maxLevels, n.level+1)
	n.children[quadSE] = newQuadNode(physics.Rect{X: n.verticalMid, Y: n.horizontalMid, Width: subWidth, Height: subHeight},
		n.maxObjects, n.maxLevels, n.level+1)
}

// quadrantIndex returns the child quadrant fully containing the rect,
// or noQuadrant when the rect straddles a midpoint on either axis.
func (n *quadNode) quadrantIndex(rect physics.Rect) int {
	inLeft := rect.Right() <= n.verticalMid
	inRight := rect.Left() >= n.verticalMid
	inTop := rect.Bottom() <= n.horizontalMid
	inBottom := rect.Top() >= n.horizontalMid

	switch {
	case inLeft && inTop:
		return quadNW
	case inLeft && inBottom:
		return quadSW
	case inRight && inTop:
		return quadNE
	case inRight && inBottom:
		return quadSE
	}
	return noQuadrant
}

func (n *quadNode) insert(e entity.Entity, rect physics.Rect) {
	if !n.bounds.Intersects(rect) {
		return
	}

	if n.children[0] != nil {
		if index := n.quadrantIndex(rect); index != noQuadrant {
			n.children[index].insert(e, rect)
			return
		}
	}

	n.objects[e.GetID()] = e

	if len(n.objects) > n.maxObjects && n.level < n.maxLevels {
		if n.children[0] == nil {
			n.split()
		}

		// Redistribute locally stored objects that now fit a single
		// quadrant; straddling objects stay at this level
		for id, obj := range n.objects {
			shape := obj.CollisionShape()
			if shape == nil {
				continue
			}
			objRect := shape.BoundingRect()
			if index := n.quadrantIndex(objRect); index != noQuadrant {
				n.children[index].insert(obj, objRect)
				delete(n.objects, id)
			}
		}
	}
}

func (n *quadNode) remove(id entity.ID, rect physics.Rect) {
	if !n.bounds.Intersects(rect) {
		return
	}

	delete(n.objects, id)

	if n.children[0] != nil {
		for _, child := range n.children {
			child.remove(id, rect)
		}
	}
}

func (n *quadNode) retrieve(rect physics.Rect, found map[entity.ID]entity.Entity) {
	if !n.bounds.Intersects(rect) {
		return
	}

	for id, e := range n.objects {
		found[id] = e
	}

	if n.children[0] == nil {
		return
	}

	if index := n.quadrantIndex(rect); index != noQuadrant {
		n.children[index].retrieve(rect, found)
		return
	}
	for _, child := range n.children {
		child.retrieve(rect, found)
	}
}
