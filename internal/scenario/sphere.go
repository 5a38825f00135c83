package scenario

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-gravity/internal/physics"
)

func init() {
	Register(Scenario{
		ID:     "sphere",
		Title:  "Rotating Sphere (3D)",
		ThreeD: true,
		Build3: buildSphere,
	})
}

// buildSphere fills a ball with uniformly distributed bodies around a
// heavy center, spinning about the z axis. Drives the octree engine.
func buildSphere(p Params, rng *rand.Rand) []physics.Body3 {
	bodies := make([]physics.Body3, 0, p.Bodies)
	bodies = append(bodies, physics.NewBody3(p.CentralMass, 0, 0, 0, 0, 0, 0))

	for i := 1; i < p.Bodies; i++ {
		// Uniform direction via normalized gaussian, uniform radius via
		// the cube-root transform.
		dx := rng.NormFloat64()
		dy := rng.NormFloat64()
		dz := rng.NormFloat64()
		norm := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if norm == 0 {
			norm = 1
		}
		r := p.Radius * math.Cbrt(rng.Float64())

		x := r * dx / norm
		y := r * dy / norm
		z := r * dz / norm

		var vx, vy float64
		if p.Spin != 0 {
			spin := p.Spin * (1 + 0.1*rng.Float64()) / (1 + r/p.Radius)
			vx = -y * spin
			vy = x * spin
		}

		bodies = append(bodies, physics.NewBody3(p.Mass, x, y, z, vx, vy, 0))
	}
	return bodies
}
