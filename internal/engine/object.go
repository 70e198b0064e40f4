package engine

import "github.com/vovakirdan/tui-bricker/internal/core"

// Body is the position, size, velocity and look of an object.
// Pos is the top-left corner.
type Body struct {
	Pos  Vec2
	Size Vec2
	Vel  Vec2

	Tag string

	// Rendering hints. A non-empty Text is drawn instead of a filled rect.
	Glyph  rune
	Color  core.Color
	Text   string
	Hidden bool
}

// Center returns the center of the body.
func (b *Body) Center() Vec2 {
	return b.Pos.Add(b.Size.Mult(0.5))
}

// SetCenter moves the body so that its center is at c.
func (b *Body) SetCenter(c Vec2) {
	b.Pos = c.Sub(b.Size.Mult(0.5))
}

// Max returns the bottom-right corner.
func (b *Body) Max() Vec2 {
	return b.Pos.Add(b.Size)
}

// Overlaps reports whether two bodies share any area. Touching edges do not count.
func (b *Body) Overlaps(o *Body) bool {
	bm, om := b.Max(), o.Max()
	return b.Pos.X < om.X && o.Pos.X < bm.X && b.Pos.Y < om.Y && o.Pos.Y < bm.Y
}

// Object is anything that lives in a Collection.
type Object interface {
	Body() *Body
	// Update advances the object by dt seconds.
	Update(dt float64)
	// OnCollisionEnter is called once when contact with other starts.
	OnCollisionEnter(other Object, c Collision)
	// ShouldCollideWith filters contacts. Both sides must agree.
	ShouldCollideWith(other Object) bool
}

// BaseObject gives embedding types a body that moves with its velocity,
// collides with everything and ignores collisions.
type BaseObject struct {
	body Body
}

// NewBaseObject creates a base object with the given top-left and size.
func NewBaseObject(pos, size Vec2) BaseObject {
	return BaseObject{body: Body{Pos: pos, Size: size}}
}

func (o *BaseObject) Body() *Body { return &o.body }

func (o *BaseObject) Update(dt float64) {
	o.body.Pos = o.body.Pos.Add(o.body.Vel.Mult(dt))
}

func (o *BaseObject) OnCollisionEnter(Object, Collision) {}

func (o *BaseObject) ShouldCollideWith(Object) bool { return true }
