package physics

import (
	"math"
	"testing"
)

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name     string
		bodies   []Body
		wantMin  Vec2
		wantMax  Vec2
	}{
		{
			name: "two bodies spanning a box",
			bodies: []Body{
				NewBody(1, -1, -2, 0, 0),
				NewBody(1, 3, 4, 0, 0),
			},
			wantMin: Vec2{-1, -2},
			wantMax: Vec2{3, 4},
		},
		{
			name:    "empty set uses the unit box",
			bodies:  nil,
			wantMin: Vec2{-1, -1},
			wantMax: Vec2{1, 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := ComputeBounds(tc.bodies)
			if b.Min != tc.wantMin || b.Max != tc.wantMax {
				t.Errorf("ComputeBounds() = %+v, expected Min %+v Max %+v", b, tc.wantMin, tc.wantMax)
			}
		})
	}
}

func TestComputeBoundsDegenerate(t *testing.T) {
	// A single body and a fully coincident pair both produce a flat extent
	// that must be widened so the region never has zero area.
	tests := []struct {
		name   string
		bodies []Body
	}{
		{"single body", []Body{NewBody(1, 0.5, 0.5, 0, 0)}},
		{"coincident bodies", []Body{
			NewBody(1, 2, 3, 0, 0),
			NewBody(5, 2, 3, 0, 0),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := ComputeBounds(tc.bodies)
			if b.Max.X <= b.Min.X {
				t.Errorf("x extent not widened: [%v, %v]", b.Min.X, b.Max.X)
			}
			if b.Max.Y <= b.Min.Y {
				t.Errorf("y extent not widened: [%v, %v]", b.Min.Y, b.Max.Y)
			}
			for _, body := range tc.bodies {
				if !b.Contains(body.Pos) {
					t.Errorf("widened bounds %+v do not contain %+v", b, body.Pos)
				}
			}
		})
	}
}

func TestBoundsCenterAndDiagonal(t *testing.T) {
	b := Bounds{Min: Vec2{-2, -1}, Max: Vec2{2, 2}}

	if c := b.Center(); c != (Vec2{0, 0.5}) {
		t.Errorf("Center() = %+v, expected {0 0.5}", c)
	}

	want := math.Sqrt(4*4 + 3*3)
	if d := b.Diagonal(); math.Abs(d-want) > 1e-12 {
		t.Errorf("Diagonal() = %v, expected %v", d, want)
	}
}

func TestSubdivideCoversParent(t *testing.T) {
	parent := Bounds{Min: Vec2{-3, -1}, Max: Vec2{5, 7}}
	quads := parent.Subdivide()

	// The min/max envelope of all quadrants must reconstruct the parent
	// exactly.
	envelope := quads[0]
	for _, q := range quads[1:] {
		envelope.Min.X = math.Min(envelope.Min.X, q.Min.X)
		envelope.Min.Y = math.Min(envelope.Min.Y, q.Min.Y)
		envelope.Max.X = math.Max(envelope.Max.X, q.Max.X)
		envelope.Max.Y = math.Max(envelope.Max.Y, q.Max.Y)
	}
	if envelope != parent {
		t.Errorf("quadrant envelope %+v does not reconstruct parent %+v", envelope, parent)
	}

	// Interiors must be pairwise disjoint: quadrants may only touch on
	// shared edges.
	for i := 0; i < len(quads); i++ {
		for j := i + 1; j < len(quads); j++ {
			a, b := quads[i], quads[j]
			overlapX := math.Min(a.Max.X, b.Max.X) - math.Max(a.Min.X, b.Min.X)
			overlapY := math.Min(a.Max.Y, b.Max.Y) - math.Max(a.Min.Y, b.Min.Y)
			if overlapX > 0 && overlapY > 0 {
				t.Errorf("quadrants %d and %d share interior: %+v vs %+v", i, j, a, b)
			}
		}
	}

	// Every quadrant's own center must classify back into that quadrant.
	for i, q := range quads {
		if got := parent.quadrant(q.Center()); got != i {
			t.Errorf("quadrant(center of child %d) = %d", i, got)
		}
	}
}

func TestQuadrantClassification(t *testing.T) {
	b := Bounds{Min: Vec2{-1, -1}, Max: Vec2{1, 1}}

	tests := []struct {
		name     string
		p        Vec2
		expected int
	}{
		{"upper right", Vec2{0.5, 0.5}, 3},
		{"upper left", Vec2{-0.5, 0.5}, 2},
		{"lower left", Vec2{-0.5, -0.5}, 0},
		{"lower right", Vec2{0.5, -0.5}, 1},
		{"exact center ties to child 0", Vec2{0, 0}, 0},
		{"tie on x only", Vec2{0, 0.5}, 2},
		{"NaN coordinates default to child 0", Vec2{math.NaN(), math.NaN()}, 0},
		{"NaN x keeps y classification", Vec2{math.NaN(), 0.5}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.quadrant(tc.p); got != tc.expected {
				t.Errorf("quadrant(%+v) = %d, expected %d", tc.p, got, tc.expected)
			}
		})
	}
}
