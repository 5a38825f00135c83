package scenario

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-gravity/internal/physics"
)

func init() {
	Register(Scenario{
		ID:    "binary",
		Title: "Binary Pair",
		Build: buildBinary,
	})
}

// buildBinary sets up two equal heavy bodies on a circular mutual orbit,
// surrounded by light dust on wider circular orbits around the pair.
func buildBinary(p Params, rng *rand.Rand) []physics.Body {
	bodies := make([]physics.Body, 0, p.Bodies)

	// Two bodies of mass m separated by 2R each orbit the barycenter at
	// v = sqrt(G*m / (4R)).
	v := math.Sqrt(p.G * p.CentralMass / (4 * p.Radius))
	bodies = append(bodies,
		physics.NewBody(p.CentralMass, -p.Radius, 0, 0, -v),
		physics.NewBody(p.CentralMass, p.Radius, 0, 0, v),
	)

	for i := 2; i < p.Bodies; i++ {
		r := p.Radius * (1.5 + 1.5*rng.Float64())
		angle := 2 * math.Pi * rng.Float64()
		x := r * math.Cos(angle)
		y := r * math.Sin(angle)

		// Circular orbit around the combined central mass.
		orbital := math.Sqrt(p.G * 2 * p.CentralMass / r)
		vx := -math.Sin(angle) * orbital
		vy := math.Cos(angle) * orbital

		bodies = append(bodies, physics.NewBody(p.Mass, x, y, vx, vy))
	}
	return bodies
}
