package scenario

import (
	"math/rand"

	"github.com/vovakirdan/tui-gravity/internal/physics"
)

func init() {
	Register(Scenario{
		ID:    "cloud",
		Title: "Cold Cloud",
		Build: buildCloud,
	})
}

// buildCloud scatters equal-mass bodies uniformly in a square, all at
// rest. Under positive G the cloud collapses into clumps.
func buildCloud(p Params, rng *rand.Rand) []physics.Body {
	bodies := make([]physics.Body, 0, p.Bodies)
	for i := 0; i < p.Bodies; i++ {
		x := (rng.Float64()*2 - 1) * p.Radius
		y := (rng.Float64()*2 - 1) * p.Radius
		bodies = append(bodies, physics.NewBody(p.Mass, x, y, 0, 0))
	}
	return bodies
}
