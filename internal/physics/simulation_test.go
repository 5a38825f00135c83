package physics

import (
	"math"
	"testing"
)

func TestTwoBodyStepAttracts(t *testing.T) {
	bodies := []Body{
		NewBody(1, -0.5, 0, 0, 0),
		NewBody(1, 0.5, 0, 0, 0),
	}
	sim := NewSimulation(bodies, 0.1, 1.0, 0.001, 0.5)

	x1 := sim.Bodies()[0].Pos.X
	x2 := sim.Bodies()[1].Pos.X

	sim.Step()

	if got := sim.Bodies()[0].Pos.X; got <= x1 {
		t.Errorf("left body moved from %v to %v, expected rightward", x1, got)
	}
	if got := sim.Bodies()[1].Pos.X; got >= x2 {
		t.Errorf("right body moved from %v to %v, expected leftward", x2, got)
	}
	// The pair is symmetric, so neither body should drift off the x axis.
	if y := sim.Bodies()[0].Pos.Y; y != 0 {
		t.Errorf("left body drifted to y=%v", y)
	}
}

func TestStepIsSemiImplicit(t *testing.T) {
	// Position must be updated with the freshly advanced velocity, not the
	// velocity from the start of the step. Verify one step of a two-body
	// system against the closed-form update.
	const (
		dt        = 0.1
		g         = 1.0
		softening = 0.001
		theta     = 0.5
		d         = 0.5
		mass      = 1.0
	)
	bodies := []Body{
		NewBody(mass, -d, 0, 0, 0),
		NewBody(mass, d, 0, 0, 0),
	}
	sim := NewSimulation(bodies, dt, g, softening, theta)
	sim.Step()

	distSq := (2 * d) * (2 * d)
	force := g * mass * mass / (distSq + softening)
	acc := force / mass
	vel := acc * dt
	wantX := -d + vel*dt

	got := sim.Bodies()[0].Pos.X
	if math.Abs(got-wantX) > 1e-12 {
		t.Errorf("left body at %v after one step, expected %v", got, wantX)
	}
	if gotV := sim.Bodies()[0].Vel.X; math.Abs(gotV-vel) > 1e-12 {
		t.Errorf("left body velocity %v, expected %v", gotV, vel)
	}
}

func TestZeroBodies(t *testing.T) {
	sim := NewSimulation(nil, 0.1, 1.0, 0.001, 0.5)

	// Both stepping and tree building must return defined results.
	sim.Step()
	tree := sim.Tree()

	if tree.TotalMass() != 0 {
		t.Errorf("empty tree TotalMass() = %v, expected 0", tree.TotalMass())
	}
	want := Bounds{Min: Vec2{-1, -1}, Max: Vec2{1, 1}}
	if tree.Bounds() != want {
		t.Errorf("empty tree bounds = %+v, expected unit box", tree.Bounds())
	}
}

func TestTreeIsPureQuery(t *testing.T) {
	bodies := randomBodies(20, 5)
	sim := NewSimulation(bodies, 0.1, 1.0, 0.001, 0.5)

	before := make([]Body, len(sim.Bodies()))
	copy(before, sim.Bodies())

	sim.Tree()
	sim.Tree()

	for i, b := range sim.Bodies() {
		if b != before[i] {
			t.Fatalf("Tree() mutated body %d: %+v vs %+v", i, b, before[i])
		}
	}
}

func TestBoundsGrowWithDispersal(t *testing.T) {
	// With G = 0 nothing attracts, so outward-moving bodies must expand
	// the recomputed bounds every step.
	bodies := []Body{
		NewBody(1, -1, -1, -1, -1),
		NewBody(1, 1, 1, 1, 1),
	}
	sim := NewSimulation(bodies, 0.1, 0.0, 0.001, 0.5)

	initial := sim.Tree().Bounds()
	for i := 0; i < 10; i++ {
		sim.Step()
	}
	grown := sim.Tree().Bounds()

	if grown.Min.X >= initial.Min.X || grown.Min.Y >= initial.Min.Y {
		t.Errorf("min did not grow outward: %+v vs %+v", grown.Min, initial.Min)
	}
	if grown.Max.X <= initial.Max.X || grown.Max.Y <= initial.Max.Y {
		t.Errorf("max did not grow outward: %+v vs %+v", grown.Max, initial.Max)
	}
}

func TestManyBodyStepMatchesPairwise(t *testing.T) {
	// One parallel step with tiny theta must equal a sequential pairwise
	// step: same accelerations, same integrated state.
	const (
		dt        = 0.01
		g         = 1.0
		softening = 0.01
		theta     = 1e-9
	)
	bodies := randomBodies(40, 11)
	reference := make([]Body, len(bodies))
	copy(reference, bodies)

	sim := NewSimulation(bodies, dt, g, softening, theta)
	sim.Step()

	for i := range reference {
		f := pairwiseForce(reference, reference[i], g, softening)
		acc := f.Scale(1 / reference[i].Mass)
		vel := reference[i].Vel.Add(acc.Scale(dt))
		pos := reference[i].Pos.Add(vel.Scale(dt))

		got := sim.Bodies()[i]
		if got.Pos.Sub(pos).Len() > 1e-9 {
			t.Fatalf("body %d position %+v, expected %+v", i, got.Pos, pos)
		}
		if got.Vel.Sub(vel).Len() > 1e-9 {
			t.Fatalf("body %d velocity %+v, expected %+v", i, got.Vel, vel)
		}
	}
}

func TestSetDt(t *testing.T) {
	sim := NewSimulation(nil, 0.1, 1.0, 0.001, 0.5)
	sim.SetDt(0.25)
	if sim.Dt() != 0.25 {
		t.Errorf("Dt() = %v after SetDt(0.25)", sim.Dt())
	}
}
