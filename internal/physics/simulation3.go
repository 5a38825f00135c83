package physics

// Simulation3 drives a slice of 3D bodies against an Octree. It mirrors
// Simulation exactly; see that type for the phase ordering and the
// parameter contract.
type Simulation3 struct {
	bodies    []Body3
	dt        float64
	g         float64
	softening float64
	theta     float64
}

// NewSimulation3 creates a 3D simulation over the given bodies. The slice
// is taken over by the simulation; body IDs are assigned from the slice
// indices.
func NewSimulation3(bodies []Body3, dt, g, softening, theta float64) *Simulation3 {
	for i := range bodies {
		bodies[i].ID = i
	}
	return &Simulation3{
		bodies:    bodies,
		dt:        dt,
		g:         g,
		softening: softening,
		theta:     theta,
	}
}

// Bodies returns the current body slice, read-only between steps.
func (s *Simulation3) Bodies() []Body3 {
	return s.bodies
}

// Len returns the number of bodies.
func (s *Simulation3) Len() int {
	return len(s.bodies)
}

// Dt returns the current timestep.
func (s *Simulation3) Dt() float64 {
	return s.dt
}

// SetDt changes the timestep for subsequent steps.
func (s *Simulation3) SetDt(dt float64) {
	s.dt = dt
}

func (s *Simulation3) buildTree() *Octree {
	tree := NewOctree(ComputeBounds3(s.bodies))
	for i := range s.bodies {
		tree.Insert(s.bodies[i])
	}
	return tree
}

// Step advances the simulation by one timestep with the same
// build / force / velocity / position phase barriers as Simulation.Step.
func (s *Simulation3) Step() {
	tree := s.buildTree()

	forEach(len(s.bodies), func(i int) {
		b := &s.bodies[i]
		b.Acc = Vec3{}
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

// Tree rebuilds and returns the same octree a Step would use.
func (s *Simulation3) Tree() *Octree {
	return s.buildTree()
}
