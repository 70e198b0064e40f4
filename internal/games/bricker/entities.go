package bricker

import (
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

// Object tags.
const (
	TagBall            = "ball"
	TagPuck            = "puck"
	TagPaddle          = "paddle"
	TagSecondaryPaddle = "secondary_paddle"
	TagBrick           = "brick"
	TagDestroyed       = "destroyed"
	TagHeart           = "heart"
	TagWall            = "wall"
	TagWatchdog        = "camera_watchdog"
	TagLifeIcon        = "life_icon"
	TagLifeText        = "life_text"
)

// Glyphs.
const (
	BallChar            = '●'
	PuckChar            = '•'
	PaddleChar          = '='
	SecondaryPaddleChar = '≡'
	HeartChar           = '♥'
)

// Ball bounces off everything it touches and counts its collisions.
type Ball struct {
	engine.BaseObject
	collisions int
	onBounce   func()
}

// NewBall creates a ball centered on center.
func NewBall(center engine.Vec2, size float64, vel engine.Vec2, onBounce func()) *Ball {
	b := &Ball{
		BaseObject: engine.NewBaseObject(engine.NewVec2Zero(), engine.NewVec2(size, size)),
		onBounce:   onBounce,
	}
	body := b.Body()
	body.SetCenter(center)
	body.Vel = vel
	body.Tag = TagBall
	body.Glyph = BallChar
	body.Color = core.ColorBrightWhite
	return b
}

// CollisionCount returns how many collisions the ball has had.
func (b *Ball) CollisionCount() int { return b.collisions }

// OnCollisionEnter reflects the velocity around the collision normal.
func (b *Ball) OnCollisionEnter(_ engine.Object, c engine.Collision) {
	b.collisions++
	body := b.Body()
	body.Vel = body.Vel.Flipped(c.Normal)
	if b.onBounce != nil {
		b.onBounce()
	}
}

// PuckBall is a short-lived extra ball. It leaves play once it drops below
// the window.
type PuckBall struct {
	Ball
	env     Env
	windowH float64
}

// NewPuckBall creates a puck centered on center.
func NewPuckBall(env Env, center engine.Vec2, size float64, vel engine.Vec2, windowH float64, onBounce func()) *PuckBall {
	p := &PuckBall{
		Ball:    *NewBall(center, size, vel, onBounce),
		env:     env,
		windowH: windowH,
	}
	p.Body().Tag = TagPuck
	p.Body().Glyph = PuckChar
	p.Body().Color = core.ColorBrightCyan
	return p
}

func (p *PuckBall) Update(dt float64) {
	p.Ball.Update(dt)
	if p.Body().Pos.Y > p.windowH {
		p.env.RemoveObject(p, engine.LayerDefault)
	}
}

// Paddle moves horizontally with the left/right actions and stays at least
// minDist away from both window edges.
type Paddle struct {
	engine.BaseObject
	keys    *core.InputFrame
	speed   float64
	minDist float64
	windowW float64
}

// NewPaddle creates a paddle centered on center. keys is read every frame.
func NewPaddle(center, size engine.Vec2, speed, minDist, windowW float64, keys *core.InputFrame) *Paddle {
	p := &Paddle{
		BaseObject: engine.NewBaseObject(engine.NewVec2Zero(), size),
		keys:       keys,
		speed:      speed,
		minDist:    minDist,
		windowW:    windowW,
	}
	body := p.Body()
	body.SetCenter(center)
	body.Tag = TagPaddle
	body.Glyph = PaddleChar
	body.Color = core.ColorBrightBlue
	return p
}

func (p *Paddle) Update(dt float64) {
	body := p.Body()

	var dir float64
	if p.keys.Has(core.ActionLeft) {
		dir--
	}
	if p.keys.Has(core.ActionRight) {
		dir++
	}
	body.Vel = engine.NewVec2(dir*p.speed, 0)

	p.BaseObject.Update(dt)
	body.Pos.X = core.Clamp(body.Pos.X, p.minDist, p.windowW-p.minDist-body.Size.X)
}

// SecondaryPaddle is a Paddle that disappears after maxHits collisions.
type SecondaryPaddle struct {
	Paddle
	env     Env
	hits    int
	maxHits int
	onGone  func()
}

// NewSecondaryPaddle creates a second paddle. onGone runs once when it leaves play.
func NewSecondaryPaddle(env Env, paddle *Paddle, maxHits int, onGone func()) *SecondaryPaddle {
	sp := &SecondaryPaddle{
		Paddle:  *paddle,
		env:     env,
		maxHits: maxHits,
		onGone:  onGone,
	}
	sp.Body().Tag = TagSecondaryPaddle
	sp.Body().Glyph = SecondaryPaddleChar
	sp.Body().Color = core.ColorBrightMagenta
	return sp
}

func (sp *SecondaryPaddle) OnCollisionEnter(engine.Object, engine.Collision) {
	if sp.hits >= sp.maxHits {
		return
	}
	sp.hits++
	if sp.hits >= sp.maxHits {
		sp.env.RemoveObject(sp, engine.LayerDefault)
		if sp.onGone != nil {
			sp.onGone()
		}
	}
}

// Heart falls towards the primary paddle and grants a life when caught.
type Heart struct {
	engine.BaseObject
	env      Env
	lives    *engine.Counter
	maxLives int
	windowH  float64
	caught   bool
}

// NewHeart creates a falling heart centered on center.
func NewHeart(env Env, center engine.Vec2, size, fallSpeed float64, lives *engine.Counter, maxLives int, windowH float64) *Heart {
	h := &Heart{
		BaseObject: engine.NewBaseObject(engine.NewVec2Zero(), engine.NewVec2(size, size)),
		env:        env,
		lives:      lives,
		maxLives:   maxLives,
		windowH:    windowH,
	}
	body := h.Body()
	body.SetCenter(center)
	body.Vel = engine.NewVec2Down().Mult(fallSpeed)
	body.Tag = TagHeart
	body.Glyph = HeartChar
	body.Color = core.ColorBrightRed
	return h
}

// ShouldCollideWith accepts only the primary paddle.
func (h *Heart) ShouldCollideWith(other engine.Object) bool {
	_, ok := other.(*Paddle)
	return ok
}

// OnCollisionEnter adds a life unless lives are at the maximum. The heart is
// consumed either way.
func (h *Heart) OnCollisionEnter(engine.Object, engine.Collision) {
	if h.caught {
		return
	}
	h.caught = true
	if h.lives.Value() < h.maxLives {
		h.lives.Increment()
	}
	h.env.RemoveObject(h, engine.LayerDefault)
}

func (h *Heart) Update(dt float64) {
	h.BaseObject.Update(dt)
	if h.Body().Pos.Y > h.windowH {
		h.env.RemoveObject(h, engine.LayerDefault)
	}
}

// Brick runs its strategy the first time something hits it.
type Brick struct {
	engine.BaseObject
	env      Env
	strategy Strategy
	bricks   *engine.Counter
}

// NewBrick creates a brick with its top-left corner at pos.
func NewBrick(env Env, pos, size engine.Vec2, strategy Strategy, bricks *engine.Counter) *Brick {
	b := &Brick{
		BaseObject: engine.NewBaseObject(pos, size),
		env:        env,
		strategy:   strategy,
		bricks:     bricks,
	}
	b.Body().Tag = TagBrick
	return b
}

// Strategy returns the brick's strategy.
func (b *Brick) Strategy() Strategy { return b.strategy }

// Destroyed reports whether the brick has already been hit.
func (b *Brick) Destroyed() bool { return b.Body().Tag == TagDestroyed }

func (b *Brick) OnCollisionEnter(other engine.Object, _ engine.Collision) {
	if b.Destroyed() {
		return
	}
	b.strategy.OnCollision(b.env, b, other, b.bricks)
	b.Body().Tag = TagDestroyed
}

// newWall creates an invisible wall the balls bounce off.
func newWall(pos, size engine.Vec2) *engine.BaseObject {
	w := engine.NewBaseObject(pos, size)
	w.Body().Tag = TagWall
	return &w
}
