// pkg/physics/body.go
package physics

import "math"

// Body is a rigid-body state integrated with semi-implicit Euler.
// Forces accumulate for a single tick and are cleared by Integrate.
// A static body (or one with non-positive mass) has inverse mass zero
// and is immune to forces and impulses.
type Body struct {
	Position     Vector2D
	Velocity     Vector2D
	Acceleration Vector2D
	Mass         float64
	Drag         float64 // air resistance, linear in velocity
	Friction     float64 // ground/contact friction, linear in velocity
	Static       bool

	// Optional angular motion
	Rotation        float64
	AngularVelocity float64
	AngularDrag     float64
	EnableRotation  bool

	forces      Vector2D
	inverseMass float64
}

// NewBody creates a dynamic body at the given position
func NewBody(position Vector2D, mass float64) *Body {
	b := &Body{
		Position:    position,
		Mass:        mass,
		Drag:        0.1,
		Friction:    0.2,
		AngularDrag: 0.1,
	}
	b.recomputeInverseMass()
	return b
}

// NewStaticBody creates a body that never moves and ignores forces
func NewStaticBody(position Vector2D) *Body {
	b := &Body{Position: position, Static: true}
	b.recomputeInverseMass()
	return b
}

func (b *Body) recomputeInverseMass() {
	if b.Static || b.Mass <= 0 {
		b.inverseMass = 0
		return
	}
	b.inverseMass = 1.0 / b.Mass
}

// InverseMass returns the derived inverse mass (zero for static bodies)
func (b *Body) InverseMass() float64 { return b.inverseMass }

// SetMass updates the mass and its derived inverse
func (b *Body) SetMass(mass float64) {
	b.Mass = mass
	b.recomputeInverseMass()
}

// ApplyForce accumulates a force for this tick. No-op on static bodies.
func (b *Body) ApplyForce(force Vector2D) {
	if b.Static {
		return
	}
	b.forces = b.forces.Add(force)
}

// ApplyImpulse adds directly to velocity, scaled by inverse mass.
// No-op on static bodies.
func (b *Body) ApplyImpulse(impulse Vector2D) {
	if b.Static {
		return
	}
	b.Velocity = b.Velocity.Add(impulse.Scale(b.inverseMass))
}

// ClearForces drops any force accumulated this tick
func (b *Body) ClearForces() { b.forces = Vector2D{} }

// Integrate advances the body by dt seconds and reports whether the
// body moved, compared by exact value against the tick's starting
// position and rotation. Accumulated forces are cleared.
func (b *Body) Integrate(dt float64) bool {
	if b.Static {
		return false
	}

	prevPosition := b.Position
	prevRotation := b.Rotation

	acc := b.forces.Scale(b.inverseMass)

	if b.Friction > 0 {
		acc = acc.Sub(b.Velocity.Scale(b.Friction))
	}
	if b.Drag > 0 {
		acc = acc.Sub(b.Velocity.Scale(b.Drag))
	}

	// Semi-implicit Euler: velocity first, then position from the new
	// velocity
	b.Velocity = b.Velocity.Add(acc.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	if b.EnableRotation {
		b.AngularVelocity *= math.Max(0.0, 1.0-b.AngularDrag*dt)
		b.Rotation += b.AngularVelocity * dt
	}

	b.forces = Vector2D{}
	b.Acceleration = acc

	positionChanged := b.Position != prevPosition
	rotationChanged := b.EnableRotation && b.Rotation != prevRotation
	return positionChanged || rotationChanged
}
