package engine

import "math"

// Viewport is the world rectangle shown on screen.
type Viewport struct {
	Origin Vec2
	Size   Vec2
}

// Project maps a world point to a cell on a cols x rows grid.
func (v Viewport) Project(p Vec2, cols, rows int) (int, int) {
	if v.Size.X <= 0 || v.Size.Y <= 0 {
		return 0, 0
	}
	x := (p.X - v.Origin.X) / v.Size.X * float64(cols)
	y := (p.Y - v.Origin.Y) / v.Size.Y * float64(rows)
	return int(math.Floor(x)), int(math.Floor(y))
}

// Camera keeps a viewport centered on a target body.
type Camera struct {
	target *Body
	offset Vec2
	dims   Vec2
}

// NewCamera creates a camera following target with a viewport of size dims.
func NewCamera(target *Body, offset, dims Vec2) *Camera {
	return &Camera{target: target, offset: offset, dims: dims}
}

// Viewport returns the current world rectangle.
func (c *Camera) Viewport() Viewport {
	center := c.target.Center().Add(c.offset)
	return Viewport{Origin: center.Sub(c.dims.Mult(0.5)), Size: c.dims}
}
