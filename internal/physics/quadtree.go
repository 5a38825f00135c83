package physics

import "math"

// QuadTree is a recursive 4-ary spatial index over Bounds. Every node
// aggregates the total mass and center of mass of everything beneath it.
// A node is always in exactly one of three states:
//
//   - empty: zero total mass, no resident body, no children
//   - occupied leaf: exactly one resident body, no children
//   - internal: no resident body; aggregates are mass-weighted sums of
//     the direct children only
//
// Trees are built fresh each step by sequential insertion and are
// read-only afterwards, which is what makes the parallel force phase safe.
type QuadTree struct {
	bounds       Bounds
	totalMass    float64
	centerOfMass Vec2
	body         *Body
	children     [4]*QuadTree
}

// NewQuadTree creates an empty tree covering the given bounds.
func NewQuadTree(bounds Bounds) *QuadTree {
	return &QuadTree{bounds: bounds}
}

// Insert adds a body to the subtree rooted at this node.
//
// An empty node stores the body directly and takes its aggregates. A node
// that already holds a resident body first pushes it down into the correct
// quadrant, then routes the new body the same way, and finally recomputes
// this node's aggregates from scratch. Aggregates are never accumulated
// incrementally across inserts; each call costs O(depth).
func (t *QuadTree) Insert(b Body) {
	if t.totalMass == 0 {
		t.totalMass = b.Mass
		t.centerOfMass = b.Pos
		resident := b
		t.body = &resident
		return
	}

	if t.body != nil {
		existing := *t.body
		// A body whose position exactly matches the resident's, or whose
		// coordinates are NaN, can never be separated by subdivision.
		// Fold its mass into the resident so insertion terminates and the
		// combined mass survives a later push-down.
		if existing.Pos == b.Pos || hasNaN2(b.Pos) || hasNaN2(existing.Pos) {
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

func hasNaN2(p Vec2) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// insertChild routes a body into the quadrant child it belongs to,
// creating the child node (with subdivided bounds) on first use.
func (t *QuadTree) insertChild(b Body) {
	q := t.bounds.quadrant(b.Pos)
	if t.children[q] == nil {
		t.children[q] = NewQuadTree(t.bounds.Subdivide()[q])
	}
	t.children[q].Insert(b)
}

// recomputeAggregates rebuilds totalMass and centerOfMass from the
// resident body (if any) plus the direct children's aggregates.
func (t *QuadTree) recomputeAggregates() {
	total := 0.0
	var weighted Vec2
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
// on the target body.
//
// If the node's resident body is the target itself (same ID), the force is
// zero. A leaf, or any node whose bounds diagonal divided by the distance
// to the target is below theta, is treated as a single point mass with
// magnitude g*m*M / (d² + softening) directed along the separation vector.
// Coincident but distinct bodies (d² == 0) contribute zero force rather
// than dividing by zero. Otherwise the query recurses into every present
// child and sums the results.
//
// Smaller theta means more node openings and more accuracy; theta near
// zero degenerates to exact pairwise summation.
func (t *QuadTree) ForceOn(b *Body, g, softening, theta float64) Vec2 {
	if t.body != nil && t.body.ID == b.ID {
		return Vec2{}
	}

	d := t.centerOfMass.Sub(b.Pos)
	distSq := d.LenSq()
	dist := math.Sqrt(distSq)

	if t.isLeaf() || t.bounds.Diagonal()/dist < theta {
		if distSq == 0 {
			return Vec2{}
		}
		f := g * b.Mass * t.totalMass / (distSq + softening)
		return d.Scale(f / dist)
	}

	var total Vec2
	for _, c := range t.children {
		if c != nil {
			total = total.Add(c.ForceOn(b, g, softening, theta))
		}
	}
	return total
}

// isLeaf reports whether the node has no children.
func (t *QuadTree) isLeaf() bool {
	for _, c := range t.children {
		if c != nil {
			return false
		}
	}
	return true
}

// Bounds returns the region this node covers. Exposed for overlay drawing.
func (t *QuadTree) Bounds() Bounds {
	return t.bounds
}

// TotalMass returns the aggregate mass of everything under this node.
func (t *QuadTree) TotalMass() float64 {
	return t.totalMass
}

// CenterOfMass returns the mass-weighted average position under this node.
func (t *QuadTree) CenterOfMass() Vec2 {
	return t.centerOfMass
}

// Children returns the node's child slots in quadrant order; absent
// quadrants are nil. Exposed for overlay drawing.
func (t *QuadTree) Children() [4]*QuadTree {
	return t.children
}
