package scenario

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-gravity/internal/physics"
)

func init() {
	Register(Scenario{
		ID:    "collision",
		Title: "Disk Collision",
		Build: buildCollision,
	})
}

// buildCollision places two spinning half-size disks offset on the x axis
// and drifting toward each other.
func buildCollision(p Params, rng *rand.Rand) []physics.Body {
	bodies := make([]physics.Body, 0, p.Bodies)

	half := p.Bodies / 2
	bodies = append(bodies, diskAt(half, p, rng, -1.5*p.Radius, 0.1*p.Radius)...)
	bodies = append(bodies, diskAt(p.Bodies-half, p, rng, 1.5*p.Radius, -0.1*p.Radius)...)
	return bodies
}

// diskAt builds one of the colliding disks: a central anchor plus spinning
// satellites, all sharing a drift velocity along x.
func diskAt(count int, p Params, rng *rand.Rand, cx, drift float64) []physics.Body {
	if count <= 0 {
		return nil
	}
	bodies := make([]physics.Body, 0, count)
	bodies = append(bodies, physics.NewBody(p.CentralMass/2, cx, 0, drift, 0))

	for i := 1; i < count; i++ {
		r := rng.Float64()*2 - 1
		angle := 2 * math.Pi * rng.Float64()

		x := r * p.Radius * 0.5 * math.Cos(angle)
		y := r * p.Radius * 0.5 * math.Sin(angle)

		var vx, vy float64
		if p.Spin != 0 {
			spin := p.Spin * (1 + 0.1*rng.Float64()) / (1 + math.Abs(r))
			vx = -y * spin
			vy = x * spin
		}

		bodies = append(bodies, physics.NewBody(p.Mass, cx+x, y, vx+drift, vy))
	}
	return bodies
}
