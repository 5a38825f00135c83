package physics

// Simulation owns a slice of 2D bodies and the scalar step parameters.
// Step is a pure transformation of the slice and can be called
// indefinitely; there is no further state machine.
//
// Parameter contract (enforced by callers, not here): dt > 0, theta > 0,
// softening >= 0. The sign of G picks attraction (positive) or repulsion
// (negative).
type Simulation struct {
	bodies    []Body
	dt        float64
	g         float64
	softening float64
	theta     float64
}

// NewSimulation creates a simulation over the given bodies. The slice is
// taken over by the simulation; body IDs are assigned from the slice
// indices and stay stable for the simulation's lifetime.
func NewSimulation(bodies []Body, dt, g, softening, theta float64) *Simulation {
	for i := range bodies {
		bodies[i].ID = i
	}
	return &Simulation{
		bodies:    bodies,
		dt:        dt,
		g:         g,
		softening: softening,
		theta:     theta,
	}
}

// Bodies returns the current body slice. Callers must treat it as
// read-only; it is only valid to read between calls to Step.
func (s *Simulation) Bodies() []Body {
	return s.bodies
}

// Len returns the number of bodies.
func (s *Simulation) Len() int {
	return len(s.bodies)
}

// Dt returns the current timestep.
func (s *Simulation) Dt() float64 {
	return s.dt
}

// SetDt changes the timestep for subsequent steps.
func (s *Simulation) SetDt(dt float64) {
	s.dt = dt
}

// Theta returns the opening-angle threshold.
func (s *Simulation) Theta() float64 {
	return s.theta
}

// buildTree computes bounds over the current positions and inserts every
// body in slice order. Insertion is strictly sequential; the tree is not
// queried until the build completes.
func (s *Simulation) buildTree() *QuadTree {
	tree := NewQuadTree(ComputeBounds(s.bodies))
	for i := range s.bodies {
		tree.Insert(s.bodies[i])
	}
	return tree
}

// Step advances the simulation by one timestep:
//
//  1. Build a fresh tree from the current positions (sequential).
//  2. In parallel, reset each body's acceleration and query the tree for
//     the force on it; a = F/m. Every query runs against the same
//     finished, unmutated tree, so results are order-independent.
//  3. In parallel, Vel += Acc*dt.
//  4. In parallel, Pos += Vel*dt.
//
// Each phase completes before the next begins. Velocity is updated before
// position, so this is semi-implicit (Euler-Cromer) integration: the
// position update sees the new velocities.
func (s *Simulation) Step() {
	tree := s.buildTree()

	forEach(len(s.bodies), func(i int) {
		b := &s.bodies[i]
		b.Acc = Vec2{}
		f := tree.ForceOn(b, s.g, s.softening, s.theta)
		b.Acc = f.Scale(1 / b.Mass)
	})

	forEach(len(s.bodies), func(i int) {
		s.bodies[i].advanceVelocity(s.dt)
	})

	forEach(len(s.bodies), func(i int) {
		s.bodies[i].advancePosition(s.dt)
	})
}

// Tree rebuilds and returns the same tree a Step would use, for overlay
// drawing. It is a pure query with no side effects on the simulation.
func (s *Simulation) Tree() *QuadTree {
	return s.buildTree()
}
