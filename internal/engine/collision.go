package engine

// Collision describes a contact between two bodies, seen from one of them.
type Collision struct {
	// Normal is the unit axis along which the bodies separate,
	// pointing from the other object toward this one.
	Normal Vec2
	// Point is the center of the overlap area.
	Point Vec2
	// Penetration is the overlap depth along Normal.
	Penetration float64
}

// Collide computes the collision of a with b, seen from a.
// The second result is false when they do not overlap.
func Collide(a, b *Body) (Collision, bool) {
	if !a.Overlaps(b) {
		return Collision{}, false
	}

	am, bm := a.Max(), b.Max()
	minX, maxX := max(a.Pos.X, b.Pos.X), min(am.X, bm.X)
	minY, maxY := max(a.Pos.Y, b.Pos.Y), min(am.Y, bm.Y)
	overlapX, overlapY := maxX-minX, maxY-minY

	d := a.Center().Sub(b.Center())
	c := Collision{Point: NewVec2((minX+maxX)/2, (minY+maxY)/2)}
	if overlapX < overlapY {
		c.Normal = NewVec2(sign(d.X), 0)
		c.Penetration = overlapX
	} else {
		c.Normal = NewVec2(0, sign(d.Y))
		c.Penetration = overlapY
	}
	return c, true
}

// Reversed returns the same collision seen from the other object.
func (c Collision) Reversed() Collision {
	c.Normal = c.Normal.Mult(-1)
	return c
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
