package bricker

import (
	"math"

	"github.com/vovakirdan/tui-bricker/internal/engine"
)

// Snapshot is a flat copy of the observable game state, used to compare
// runs in determinism tests and for debugging.
type Snapshot struct {
	Tick            uint64
	State           string
	Score           int
	Lives           int
	BricksRemaining int
	BricksTotal     int

	BallX, BallY   float64
	BallVX, BallVY float64
	BallCollisions int
	PaddleX        float64

	Pucks                int
	Hearts               int
	SecondaryPaddleAlive bool
	CameraActive         bool

	// Strategy string of every live brick in insertion order.
	Strategies []string

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ball := g.ball.Body()
	snap := Snapshot{
		Tick:                 uint64(g.tick), //#nosec G115 -- tick count is always positive
		State:                g.state,
		Score:                g.score(),
		Lives:                g.lives.Value(),
		BricksRemaining:      g.bricks.Value(),
		BricksTotal:          g.bricksTotal,
		BallX:                ball.Pos.X,
		BallY:                ball.Pos.Y,
		BallVX:               ball.Vel.X,
		BallVY:               ball.Vel.Y,
		BallCollisions:       g.ball.CollisionCount(),
		PaddleX:              g.paddle.Body().Pos.X,
		SecondaryPaddleAlive: g.secondaryPaddleAlive,
		CameraActive:         g.camera != nil,
		RNGState:             g.rng.State(),
	}

	for _, obj := range g.objects.Objects(engine.LayerDefault) {
		switch obj.(type) {
		case *PuckBall:
			snap.Pucks++
		case *Heart:
			snap.Hearts++
		}
	}
	for _, obj := range g.objects.Objects(engine.LayerStatic) {
		if b, ok := obj.(*Brick); ok {
			snap.Strategies = append(snap.Strategies, b.Strategy().String())
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCollisions)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pucks)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hearts)          //#nosec G115 -- hash computation

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}
	for _, b := range []bool{snap.SecondaryPaddleAlive, snap.CameraActive} {
		h *= 31
		if b {
			h++
		}
	}
	for _, s := range snap.Strategies {
		for i := range len(s) {
			h = h*31 + uint64(s[i])
		}
	}
	for i := range len(snap.State) {
		h = h*31 + uint64(snap.State[i])
	}

	return h*31 + snap.RNGState
}
