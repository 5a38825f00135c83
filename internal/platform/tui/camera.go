package tui

import (
	"math"

	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/physics"
)

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide. One world unit spans cellAspect times more columns
// than rows.
const cellAspect = 2.0

// Camera maps world coordinates to screen cells. Positive world Y points
// up, screen Y grows downward.
type Camera struct {
	center physics.Vec2
	scale  float64 // Columns per world unit
	width  int
	height int
}

// NewCamera creates a camera for a screen of the given size, centered on
// the origin with one world unit per column.
func NewCamera(width, height int) *Camera {
	return &Camera{
		scale:  1,
		width:  width,
		height: height,
	}
}

// Resize updates the screen size the camera projects onto.
func (c *Camera) Resize(width, height int) {
	c.width = width
	c.height = height
}

// Scale returns the current zoom in columns per world unit.
func (c *Camera) Scale() float64 {
	return c.scale
}

// Zoom multiplies the current scale, clamped to a sane range.
func (c *Camera) Zoom(factor float64) {
	c.scale = core.ClampF(c.scale*factor, 1e-6, 1e9)
}

// FitBounds centers the camera on the given bounds and picks the largest
// scale that keeps them fully on screen, with a one-cell margin.
func (c *Camera) FitBounds(b physics.Bounds) {
	c.center = b.Center()

	extX := b.Max.X - b.Min.X
	extY := b.Max.Y - b.Min.Y

	availW := float64(core.Max(c.width-2, 1))
	availH := float64(core.Max(c.height-2, 1))

	scaleX := math.Inf(1)
	scaleY := math.Inf(1)
	if extX > 0 {
		scaleX = availW / extX
	}
	if extY > 0 {
		scaleY = availH * cellAspect / extY
	}

	scale := math.Min(scaleX, scaleY)
	if math.IsInf(scale, 1) {
		scale = 1
	}
	c.scale = core.ClampF(scale, 1e-6, 1e9)
}

// Project converts a world position to screen cell coordinates.
// The returned coordinates may lie outside the screen.
func (c *Camera) Project(p physics.Vec2) (int, int) {
	dx := (p.X - c.center.X) * c.scale
	dy := (p.Y - c.center.Y) * c.scale / cellAspect

	x := int(math.Round(float64(c.width)/2 + dx))
	y := int(math.Round(float64(c.height)/2 - dy))
	return x, y
}

// OnScreen reports whether the given cell coordinates are visible.
func (c *Camera) OnScreen(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// ProjectBounds converts world bounds to a screen rectangle.
// World Max.Y maps to the rectangle's top edge.
func (c *Camera) ProjectBounds(b physics.Bounds) core.Rect {
	x0, y1 := c.Project(b.Min)
	x1, y0 := c.Project(b.Max)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}
