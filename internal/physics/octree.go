package physics

import "math"

// Bounds3 is an axis-aligned box in 3D space. See Bounds for the invariants;
// the 2D and 3D geometry types are concrete duplicates by design.
type Bounds3 struct {
	Min, Max Vec3
}

// ComputeBounds3 returns the smallest box enclosing all body positions.
// An empty slice yields the unit cube [-1, 1] on every axis; flat axes are
// widened by machine epsilon per side.
func ComputeBounds3(bodies []Body3) Bounds3 {
	if len(bodies) == 0 {
		return Bounds3{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}
	}

	first := bodies[0].Pos
	b := Bounds3{Min: first, Max: first}
	for i := 1; i < len(bodies); i++ {
		p := bodies[i].Pos
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}

	if math.Abs(b.Max.X-b.Min.X) < epsilon {
		b.Min.X -= epsilon
		b.Max.X += epsilon
	}
	if math.Abs(b.Max.Y-b.Min.Y) < epsilon {
		b.Min.Y -= epsilon
		b.Max.Y += epsilon
	}
	if math.Abs(b.Max.Z-b.Min.Z) < epsilon {
		b.Min.Z -= epsilon
		b.Max.Z += epsilon
	}
	return b
}

// Center returns the midpoint of the box.
func (b Bounds3) Center() Vec3 {
	return Vec3{
		X: (b.Min.X + b.Max.X) * 0.5,
		Y: (b.Min.Y + b.Max.Y) * 0.5,
		Z: (b.Min.Z + b.Max.Z) * 0.5,
	}
}

// Diagonal returns the Euclidean extent from Min to Max.
func (b Bounds3) Diagonal() float64 {
	return b.Max.Sub(b.Min).Len()
}

// Contains reports whether the point lies inside the box, faces included.
func (b Bounds3) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Subdivide splits the box into eight equal octants. Octant k takes the
// upper half of axis i exactly when bit i of k is set, matching octant.
func (b Bounds3) Subdivide() [8]Bounds3 {
	c := b.Center()
	var out [8]Bounds3
	for k := range out {
		o := Bounds3{Min: b.Min, Max: c}
		if k&1 != 0 {
			o.Min.X, o.Max.X = c.X, b.Max.X
		}
		if k&2 != 0 {
			o.Min.Y, o.Max.Y = c.Y, b.Max.Y
		}
		if k&4 != 0 {
			o.Min.Z, o.Max.Z = c.Z, b.Max.Z
		}
		out[k] = o
	}
	return out
}

// octant classifies a point into a child index: bit i set when the
// coordinate exceeds the center on axis i. Ties and NaN comparisons leave
// the bit clear, so degenerate positions land in child 0.
func (b Bounds3) octant(p Vec3) int {
	c := b.Center()
	idx := 0
	if p.X > c.X {
		idx |= 1
	}
	if p.Y > c.Y {
		idx |= 2
	}
	if p.Z > c.Z {
		idx |= 4
	}
	return idx
}

// Octree is the 3D counterpart of QuadTree: an 8-ary spatial index with
// the same empty / occupied-leaf / internal node states and the same
// build-then-query lifecycle.
type Octree struct {
	bounds       Bounds3
	totalMass    float64
	centerOfMass Vec3
	body         *Body3
	children     [8]*Octree
}

// NewOctree creates an empty tree covering the given bounds.
func NewOctree(bounds Bounds3) *Octree {
	return &Octree{bounds: bounds}
}

// Insert adds a body to the subtree rooted at this node. See
// QuadTree.Insert for the splitting and aggregate-recomputation rules.
func (t *Octree) Insert(b Body3) {
	if t.totalMass == 0 {
		t.totalMass = b.Mass
		t.centerOfMass = b.Pos
		resident := b
		t.body = &resident
		return
	}

	if t.body != nil {
		existing := *t.body
		// Same unseparable-body guard as QuadTree.Insert.
		if existing.Pos == b.Pos || hasNaN3(b.Pos) || hasNaN3(existing.Pos) {
			t.body.Mass += b.Mass
			t.totalMass += b.Mass
			return
		}
		t.body = nil
		t.insertChild(existing)
	}
	t.insertChild(b)
	t.recomputeAggregates()
}

func hasNaN3(p Vec3) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

func (t *Octree) insertChild(b Body3) {
	o := t.bounds.octant(b.Pos)
	if t.children[o] == nil {
		t.children[o] = NewOctree(t.bounds.Subdivide()[o])
	}
	t.children[o].Insert(b)
}

func (t *Octree) recomputeAggregates() {
	total := 0.0
	var weighted Vec3
	if t.body != nil {
		total += t.body.Mass
		weighted = weighted.Add(t.body.Pos.Scale(t.body.Mass))
	}
	for _, c := range t.children {
		if c == nil {
			continue
		}
		total += c.totalMass
		weighted = weighted.Add(c.centerOfMass.Scale(c.totalMass))
	}
	if total > 0 {
		t.centerOfMass = weighted.Scale(1 / total)
	}
	t.totalMass = total
}

// ForceOn returns the approximate gravitational force this subtree exerts
// on the target body. See QuadTree.ForceOn for the opening-angle test and
// the coincident-body and self-exclusion policies.
func (t *Octree) ForceOn(b *Body3, g, softening, theta float64) Vec3 {
	if t.body != nil && t.body.ID == b.ID {
		return Vec3{}
	}

	d := t.centerOfMass.Sub(b.Pos)
	distSq := d.LenSq()
	dist := math.Sqrt(distSq)

	if t.isLeaf() || t.bounds.Diagonal()/dist < theta {
		if distSq == 0 {
			return Vec3{}
		}
		f := g * b.Mass * t.totalMass / (distSq + softening)
		return d.Scale(f / dist)
	}

	var total Vec3
	for _, c := range t.children {
		if c != nil {
			total = total.Add(c.ForceOn(b, g, softening, theta))
		}
	}
	return total
}

func (t *Octree) isLeaf() bool {
	for _, c := range t.children {
		if c != nil {
			return false
		}
	}
	return true
}

// Bounds returns the region this node covers.
func (t *Octree) Bounds() Bounds3 {
	return t.bounds
}

// TotalMass returns the aggregate mass of everything under this node.
func (t *Octree) TotalMass() float64 {
	return t.totalMass
}

// CenterOfMass returns the mass-weighted average position under this node.
func (t *Octree) CenterOfMass() Vec3 {
	return t.centerOfMass
}

// Children returns the node's child slots in octant order; absent octants
// are nil.
func (t *Octree) Children() [8]*Octree {
	return t.children
}
