package bricker

import (
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

// puckDirections are the diagonals a puck ball may leave a brick along.
var puckDirections = [...]engine.Vec2{
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// AddObject queues obj for the given layer.
func (g *Game) AddObject(obj engine.Object, layer engine.Layer) {
	g.objects.Add(obj, layer)
}

// RemoveObject queues obj for removal from the given layer.
func (g *Game) RemoveObject(obj engine.Object, layer engine.Layer) bool {
	return g.objects.Remove(obj, layer)
}

// SpawnPucks releases puck.count puck balls, each along a random diagonal.
func (g *Game) SpawnPucks(center engine.Vec2, size float64) {
	for range g.cfg.Puck.Count {
		dir := puckDirections[g.rng.Intn(len(puckDirections))]
		vel := dir.Normalized().Mult(g.cfg.Puck.Speed)
		g.objects.Add(NewPuckBall(g, center, size, vel, g.cfg.Window.Height, g.bounce), engine.LayerDefault)
		g.logger.Debug("puck spawned", "x", center.X, "y", center.Y, "dir", dir)
	}
}

// SpawnSecondaryPaddle puts a second paddle in the middle of the window
// unless one is already in play.
func (g *Game) SpawnSecondaryPaddle() bool {
	if g.secondaryPaddleAlive {
		return false
	}
	cfg := g.cfg
	base := NewPaddle(
		engine.NewVec2(cfg.Window.Width/2, cfg.Window.Height/2),
		engine.NewVec2(cfg.Paddle.Width, cfg.Paddle.Height),
		cfg.Paddle.Speed, cfg.SecondaryPaddle.MinDistFromEdge, cfg.Window.Width, &g.input,
	)
	sp := NewSecondaryPaddle(g, base, cfg.SecondaryPaddle.MaxHits, func() {
		g.secondaryPaddleAlive = false
		g.logger.Debug("secondary paddle gone")
	})
	g.secondaryPaddleAlive = true
	g.objects.Add(sp, engine.LayerDefault)
	g.logger.Debug("secondary paddle spawned")
	return true
}

// FollowBall zooms the camera out around the main ball. A watchdog detaches
// it again after enough ball collisions.
func (g *Game) FollowBall(collider engine.Object) bool {
	if g.camera != nil || collider != g.ball {
		return false
	}
	window := engine.NewVec2(g.cfg.Window.Width, g.cfg.Window.Height)
	g.camera = engine.NewCamera(g.ball.Body(), engine.NewVec2Zero(), window.Mult(g.cfg.Camera.WidenFactor))

	w := &cameraWatchdog{game: g, start: g.ball.CollisionCount()}
	w.Body().Tag = TagWatchdog
	g.objects.Add(w, engine.LayerBackground)
	g.logger.Debug("camera following ball", "collisions", w.start)
	return true
}

// DropHeart spawns a heart falling from center.
func (g *Game) DropHeart(center engine.Vec2) {
	cfg := g.cfg
	h := NewHeart(g, center, cfg.Lives.HeartSize, cfg.Heart.FallSpeed, g.lives, cfg.Lives.Max, cfg.Window.Height)
	g.objects.Add(h, engine.LayerDefault)
	g.logger.Debug("heart dropped", "x", center.X, "y", center.Y)
}

// cameraWatchdog polls the ball's collision count and releases the camera.
type cameraWatchdog struct {
	engine.BaseObject
	game  *Game
	start int
}

func (w *cameraWatchdog) Update(float64) {
	g := w.game
	if g.camera == nil {
		return
	}
	if g.ball.CollisionCount()-w.start-1 >= g.cfg.Camera.MaxCollisions {
		g.camera = nil
		g.RemoveObject(w, engine.LayerBackground)
		g.logger.Debug("camera released", "collisions", g.ball.CollisionCount())
	}
}
