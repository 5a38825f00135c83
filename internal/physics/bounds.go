package physics

import "math"

// epsilon is the 64-bit machine epsilon, used both as the degenerate-extent
// threshold and as the per-side widening applied to flat bounds.
var epsilon = math.Nextafter(1, 2) - 1

// Bounds is an axis-aligned rectangle in 2D space with Min[i] <= Max[i]
// on every axis. Bounds are value objects rebuilt every simulation step.
type Bounds struct {
	Min, Max Vec2
}

// ComputeBounds returns the smallest bounds enclosing all body positions.
// An empty slice yields the unit box [-1, 1] on both axes. Any axis whose
// extent is below machine epsilon is widened by epsilon per side so the
// region never has zero area.
func ComputeBounds(bodies []Body) Bounds {
	if len(bodies) == 0 {
		return Bounds{Min: Vec2{-1, -1}, Max: Vec2{1, 1}}
	}

	first := bodies[0].Pos
	b := Bounds{Min: first, Max: first}
	for i := 1; i < len(bodies); i++ {
		p := bodies[i].Pos
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}

	if math.Abs(b.Max.X-b.Min.X) < epsilon {
		b.Min.X -= epsilon
		b.Max.X += epsilon
	}
	if math.Abs(b.Max.Y-b.Min.Y) < epsilon {
		b.Min.Y -= epsilon
		b.Max.Y += epsilon
	}
	return b
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{
		X: (b.Min.X + b.Max.X) * 0.5,
		Y: (b.Min.Y + b.Max.Y) * 0.5,
	}
}

// Diagonal returns the Euclidean extent from Min to Max.
func (b Bounds) Diagonal() float64 {
	return b.Max.Sub(b.Min).Len()
}

// Contains reports whether the point lies inside the bounds, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Subdivide splits the bounds into four equal quadrants by bisecting both
// axes at the center. Quadrant k takes the upper half of axis i exactly
// when bit i of k is set, matching the index returned by quadrant, so the
// children cover the parent with no gaps and overlap only on shared edges.
func (b Bounds) Subdivide() [4]Bounds {
	c := b.Center()
	var out [4]Bounds
	for k := range out {
		q := Bounds{Min: b.Min, Max: c}
		if k&1 != 0 {
			q.Min.X, q.Max.X = c.X, b.Max.X
		}
		if k&2 != 0 {
			q.Min.Y, q.Max.Y = c.Y, b.Max.Y
		}
		out[k] = q
	}
	return out
}

// quadrant classifies a point into a child index: bit i is set when the
// coordinate on axis i is strictly greater than the center. Ties and NaN
// comparisons leave the bit clear, so a fully degenerate position lands in
// child 0. This is a structural bias, not a numerical fix; it guarantees
// insertion always terminates.
func (b Bounds) quadrant(p Vec2) int {
	c := b.Center()
	idx := 0
	if p.X > c.X {
		idx |= 1
	}
	if p.Y > c.Y {
		idx |= 2
	}
	return idx
}
