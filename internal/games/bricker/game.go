// Package bricker implements Bricker, a Breakout game where every brick
// carries a randomly chosen collision strategy that may release extra balls,
// a second paddle, a falling heart or a follow camera.
package bricker

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

// Round states
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
	StateOver    = "over"   // Round ended, waiting for the play-again answer
	StateClosed  = "closed" // Player declined to play again
)

// Minimum terminal size the game renders in.
const (
	minScreenW = 30
	minScreenH = 15
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

var _ core.Game = (*Game)(nil)

// Game is the Bricker game manager. It owns the scene, the bricks and lives
// counters and the singleton slots (camera, second paddle).
type Game struct {
	cfg     config.BrickerConfig
	pending *config.BrickerConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	objects    *engine.Collection
	rng        *SimpleRNG
	difficulty *config.DifficultyManager
	input      core.InputFrame

	ball   *Ball
	paddle *Paddle
	camera *engine.Camera

	bricks      *engine.Counter
	lives       *engine.Counter
	bricksTotal int

	secondaryPaddleAlive bool

	state   string
	outcome core.Outcome
	tick    int
	rounds  int
	sounds  int
	layout  string

	screenTooSmall bool
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.BrickerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		logger:  log.New(io.Discard),
		objects: engine.NewCollection(),
		bricks:  engine.NewCounter(0),
		lives:   engine.NewCounter(cfg.Lives.Initial),
		input:   core.NewInputFrame(),
		state:   StatePlaying,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the configuration of the current round.
func (g *Game) Config() config.BrickerConfig { return g.cfg }

// SetConfig replaces the configuration. It takes effect when the next round starts.
func (g *Game) SetConfig(cfg config.BrickerConfig) {
	g.pending = &cfg
}

// Reset seeds the game and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewSimpleRNG(runtime.Seed)
	g.rounds = 0
	g.startRound()
}

// Resize updates the terminal size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

func (g *Game) startRound() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	cfg := g.cfg

	g.objects.Clear()
	g.camera = nil
	g.secondaryPaddleAlive = false
	g.state = StatePlaying
	g.outcome = core.OutcomeNone
	g.tick = 0
	g.sounds = 0
	g.rounds++
	g.input = core.NewInputFrame()
	g.lives.Set(cfg.Lives.Initial)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.Resize(g.runtime.ScreenW, g.runtime.ScreenH)

	w, h := cfg.Window.Width, cfg.Window.Height
	window := engine.NewVec2(w, h)

	g.objects.Add(newWall(engine.NewVec2(0, 1), engine.NewVec2(w, 1)), engine.LayerDefault)
	g.objects.Add(newWall(engine.NewVec2(0, 1), engine.NewVec2(1, h)), engine.LayerDefault)
	g.objects.Add(newWall(engine.NewVec2(w, 1), engine.NewVec2(1, h)), engine.LayerDefault)

	g.ball = NewBall(window.Mult(0.5), cfg.Ball.Size, engine.NewVec2Down().Mult(g.ballSpeed()), g.bounce)
	g.objects.Add(g.ball, engine.LayerDefault)

	g.paddle = NewPaddle(
		engine.NewVec2(w/2, h-cfg.Paddle.BottomOffset),
		engine.NewVec2(cfg.Paddle.Width, cfg.Paddle.Height),
		cfg.Paddle.Speed, cfg.Paddle.MinDistFromEdge, w, &g.input,
	)
	g.objects.Add(g.paddle, engine.LayerDefault)

	g.buildBricks()

	heart := cfg.Lives.HeartSize
	g.objects.Add(NewGraphicLifeCounter(g, g.lives, engine.NewVec2(0, h-heart), heart, heart+cfg.Lives.HeartGap, cfg.Lives.Max), engine.LayerBackground)
	g.objects.Add(NewNumericLifeCounter(g.lives, heart, cfg.Lives.HeartGap, h-heart-cfg.Lives.HeartGap), engine.LayerUI)

	g.objects.Flush()
	g.logger.Debug("round started", "round", g.rounds, "layout", g.layout, "bricks", g.bricksTotal, "lives", g.lives.Value())
}

func (g *Game) buildBricks() {
	cfg := g.cfg

	layout, err := LayoutByName(cfg.Bricks.Layout, cfg.Bricks)
	if err != nil {
		g.logger.Warn("falling back to classic layout", "err", err)
		layout = classicLayout(cfg.Bricks.Rows, cfg.Bricks.Columns)
	}
	g.layout = layout.Name

	force, err := ParseStrategy(cfg.Strategies.Force)
	if err != nil {
		g.logger.Warn("ignoring forced strategy", "err", err)
		force = -1
	}
	factory := NewStrategyFactory(g.rng, force, cfg.Strategies.CompositeBase, cfg.Strategies.CompositeMax)

	slots := layout.Slots(cfg)
	g.bricks.Reset()
	for _, slot := range slots {
		brick := NewBrick(g, slot.Pos, slot.Size, factory.Next(), g.bricks)
		styleBrick(brick, slot)
		g.objects.Add(brick, engine.LayerStatic)
	}
	g.bricks.IncreaseBy(len(slots))
	g.bricksTotal = g.bricks.Value()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateClosed:
		return core.StepResult{State: g.State()}
	case StateOver:
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
			g.startRound()
		case in.Has(core.ActionBack):
			g.state = StateClosed
			g.logger.Debug("player declined another round")
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.input = in
	g.tick++
	g.objects.Step(g.dt())
	g.checkBallFell()

	if outcome := g.checkEnd(in); outcome != core.OutcomeNone {
		g.state = StateOver
		g.outcome = outcome
		snap := g.Snapshot()
		g.logger.Info("round over", "outcome", outcome, "score", g.score(), "lives", g.lives.Value(), "ticks", g.tick)
		g.logger.Debug("final state", "hash", snap.Hash(), "bricks", snap.BricksRemaining)
		return core.StepResult{State: g.State(), Outcome: outcome}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) dt() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = g.cfg.Window.FrameRate
	}
	return 1 / float64(rate)
}

// checkBallFell costs a life and serves the ball again from the center once
// it drops below the window.
func (g *Game) checkBallFell() {
	body := g.ball.Body()
	if body.Center().Y <= g.cfg.Window.Height {
		return
	}
	g.lives.Decrement()
	body.SetCenter(engine.NewVec2(g.cfg.Window.Width, g.cfg.Window.Height).Mult(0.5))
	body.Vel = engine.NewVec2Down().Mult(g.ballSpeed())
	g.logger.Debug("ball lost", "lives", g.lives.Value())
}

// checkEnd reports a win before a loss when both hold on the same tick.
func (g *Game) checkEnd(in core.InputFrame) core.Outcome {
	forced := g.cfg.Gameplay.AllowForceWin && in.Has(core.ActionForceWin)
	switch {
	case g.bricks.Value() <= 0 || forced:
		return core.OutcomeWin
	case g.lives.Value() <= 0:
		return core.OutcomeLose
	}
	return core.OutcomeNone
}

func (g *Game) ballSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Ball.Speed, g.score(), g.tick)
}

func (g *Game) score() int {
	return (g.bricksTotal - g.bricks.Value()) * g.cfg.Gameplay.BrickPoints
}

func (g *Game) bounce() {
	if g.cfg.Ball.Sound {
		g.sounds++
	}
}

// TakeSounds returns and clears the number of bounce sounds since the last call.
func (g *Game) TakeSounds() int {
	n := g.sounds
	g.sounds = 0
	return n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.state == StateOver || g.state == StateClosed,
		Paused:   g.state == StatePaused,
		Exit:     g.state == StateClosed,
		Outcome:  g.outcome,
	}
}

// RoundStats describes the round for persistence.
type RoundStats struct {
	Outcome         core.Outcome
	Score           int
	BricksDestroyed int
	BricksTotal     int
	LivesLeft       int
	Ticks           int
	Seed            int64
	Layout          string
}

// Stats returns the figures of the current (or just finished) round.
func (g *Game) Stats() RoundStats {
	return RoundStats{
		Outcome:         g.outcome,
		Score:           g.score(),
		BricksDestroyed: g.bricksTotal - g.bricks.Value(),
		BricksTotal:     g.bricksTotal,
		LivesLeft:       max(g.lives.Value(), 0),
		Ticks:           g.tick,
		Seed:            g.runtime.Seed,
		Layout:          g.layout,
	}
}
