package scenario

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-gravity/internal/physics"
)

func init() {
	Register(Scenario{
		ID:    "disk",
		Title: "Spinning Disk",
		Build: buildDisk,
	})
}

// buildDisk places a heavy central body at the origin and scatters the
// remaining bodies in a disk with a tangential spin velocity that falls
// off away from the center.
func buildDisk(p Params, rng *rand.Rand) []physics.Body {
	bodies := make([]physics.Body, 0, p.Bodies)
	bodies = append(bodies, physics.NewBody(p.CentralMass, 0, 0, 0, 0))

	for i := 1; i < p.Bodies; i++ {
		r := rng.Float64()*2 - 1
		angle := 2 * math.Pi * rng.Float64()

		x := r * p.Radius * math.Cos(angle)
		y := r * p.Radius * math.Sin(angle)

		var vx, vy float64
		if p.Spin != 0 {
			spin := p.Spin * (1 + 0.1*rng.Float64()) / (1 + math.Abs(r))
			vx = -y * spin
			vy = x * spin
		}

		bodies = append(bodies, physics.NewBody(p.Mass, x, y, vx, vy))
	}
	return bodies
}
