package physics

// Body is a point mass in 2D space. The ID is a stable per-body index
// assigned by the Simulation; the tree uses it to recognize a body as
// itself during force queries, so bodies are compared by value and never
// by address.
//
// A Body is owned exclusively by the Simulation's body slice and mutated
// in place each step. Mass must be positive; zero or negative mass is a
// caller contract violation and produces undefined accelerations.
type Body struct {
	ID   int
	Mass float64
	Pos  Vec2
	Vel  Vec2
	Acc  Vec2
}

// NewBody creates a body at rest acceleration with the given mass,
// position and velocity.
func NewBody(mass, x, y, vx, vy float64) Body {
	return Body{
		Mass: mass,
		Pos:  Vec2{x, y},
		Vel:  Vec2{vx, vy},
	}
}

// advanceVelocity applies the current acceleration over dt.
func (b *Body) advanceVelocity(dt float64) {
	b.Vel = b.Vel.Add(b.Acc.Scale(dt))
}

// advancePosition applies the current velocity over dt.
func (b *Body) advancePosition(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Body3 is a point mass in 3D space. See Body for ownership and ID
// semantics; the two types are kept as separate concrete structs so the
// hot paths never dispatch on dimension.
type Body3 struct {
	ID   int
	Mass float64
	Pos  Vec3
	Vel  Vec3
	Acc  Vec3
}

// NewBody3 creates a 3D body with the given mass, position and velocity.
func NewBody3(mass, x, y, z, vx, vy, vz float64) Body3 {
	return Body3{
		Mass: mass,
		Pos:  Vec3{x, y, z},
		Vel:  Vec3{vx, vy, vz},
	}
}

func (b *Body3) advanceVelocity(dt float64) {
	b.Vel = b.Vel.Add(b.Acc.Scale(dt))
}

func (b *Body3) advancePosition(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}
