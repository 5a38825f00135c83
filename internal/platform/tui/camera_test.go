package tui

import (
	"testing"

	"github.com/vovakirdan/tui-gravity/internal/physics"
)

func TestCameraProjectCenter(t *testing.T) {
	c := NewCamera(80, 24)

	x, y := c.Project(physics.Vec2{})
	if x != 40 || y != 12 {
		t.Errorf("origin projected to (%d, %d), expected (40, 12)", x, y)
	}
}

func TestCameraProjectAxes(t *testing.T) {
	c := NewCamera(80, 24)
	c.Zoom(10) // 10 columns per world unit

	// +X moves right
	x, y := c.Project(physics.Vec2{X: 1})
	if x != 50 || y != 12 {
		t.Errorf("(1, 0) projected to (%d, %d), expected (50, 12)", x, y)
	}

	// +Y moves up, compressed by the cell aspect ratio
	x, y = c.Project(physics.Vec2{Y: 1})
	if x != 40 || y != 7 {
		t.Errorf("(0, 1) projected to (%d, %d), expected (40, 7)", x, y)
	}
}

func TestCameraFitBounds(t *testing.T) {
	c := NewCamera(80, 24)

	b := physics.Bounds{
		Min: physics.Vec2{X: -1, Y: -1},
		Max: physics.Vec2{X: 1, Y: 1},
	}
	c.FitBounds(b)

	// All corners must land on screen
	corners := []physics.Vec2{
		b.Min,
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
		{X: b.Max.X, Y: b.Min.Y},
	}
	for _, p := range corners {
		x, y := c.Project(p)
		if !c.OnScreen(x, y) {
			t.Errorf("corner %+v projected off screen to (%d, %d)", p, x, y)
		}
	}

	// Center of the bounds maps to the screen center
	x, y := c.Project(b.Center())
	if x != 40 || y != 12 {
		t.Errorf("bounds center projected to (%d, %d), expected (40, 12)", x, y)
	}
}

func TestCameraFitDegenerateBounds(t *testing.T) {
	c := NewCamera(80, 24)

	// Zero-extent bounds must not produce an infinite or zero scale
	c.FitBounds(physics.Bounds{
		Min: physics.Vec2{X: 3, Y: 3},
		Max: physics.Vec2{X: 3, Y: 3},
	})

	if c.Scale() <= 0 {
		t.Errorf("scale = %v, expected positive", c.Scale())
	}
	x, y := c.Project(physics.Vec2{X: 3, Y: 3})
	if !c.OnScreen(x, y) {
		t.Errorf("degenerate center projected off screen to (%d, %d)", x, y)
	}
}

func TestCameraProjectBounds(t *testing.T) {
	c := NewCamera(80, 24)
	c.Zoom(10)

	r := c.ProjectBounds(physics.Bounds{
		Min: physics.Vec2{X: -1, Y: -1},
		Max: physics.Vec2{X: 1, Y: 1},
	})

	if r.W < 2 || r.H < 2 {
		t.Errorf("projected rect too small: %+v", r)
	}
	// World Max.Y is the top edge on screen
	if r.Y >= r.Bottom() {
		t.Errorf("rect has non-positive height: %+v", r)
	}
	// Symmetric bounds produce a rect centered on screen
	cx, cy := r.Center()
	if cx != 40 || cy != 12 {
		t.Errorf("rect center = (%d, %d), expected (40, 12)", cx, cy)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	c := NewCamera(80, 24)

	for i := 0; i < 100; i++ {
		c.Zoom(10)
	}
	if c.Scale() > 1e9 {
		t.Errorf("scale = %v, expected clamp at 1e9", c.Scale())
	}

	for i := 0; i < 200; i++ {
		c.Zoom(0.1)
	}
	if c.Scale() < 1e-6 {
		t.Errorf("scale = %v, expected clamp at 1e-6", c.Scale())
	}
}
