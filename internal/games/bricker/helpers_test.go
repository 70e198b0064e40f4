package bricker

import (
	"fmt"
	"math"
	"testing"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

func near(a, b engine.Vec2) bool {
	return math.Abs(a.X-b.X) <= 1e-9 && math.Abs(a.Y-b.Y) <= 1e-9
}

// recordingEnv implements Env and Scene and remembers every call.
type recordingEnv struct {
	calls   []string
	added   []engine.Object
	removed []engine.Object
	pucks   []engine.Vec2
	hearts  []engine.Vec2
}

func (e *recordingEnv) AddObject(obj engine.Object, _ engine.Layer) {
	e.added = append(e.added, obj)
}

func (e *recordingEnv) RemoveObject(obj engine.Object, layer engine.Layer) bool {
	e.calls = append(e.calls, "remove:"+layer.String())
	e.removed = append(e.removed, obj)
	return true
}

func (e *recordingEnv) SpawnPucks(center engine.Vec2, size float64) {
	e.calls = append(e.calls, fmt.Sprintf("pucks:%g", size))
	e.pucks = append(e.pucks, center)
}

func (e *recordingEnv) SpawnSecondaryPaddle() bool {
	e.calls = append(e.calls, "paddle")
	return true
}

func (e *recordingEnv) FollowBall(engine.Object) bool {
	e.calls = append(e.calls, "camera")
	return true
}

func (e *recordingEnv) DropHeart(center engine.Vec2) {
	e.calls = append(e.calls, "heart")
	e.hearts = append(e.hearts, center)
}

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 80,
	Seed:     12345,
}

// newTestGame returns a reset game on the default config after applying mutate.
func newTestGame(t *testing.T, mutate func(*config.BrickerConfig)) *Game {
	t.Helper()
	cfg := config.DefaultBrickerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(cfg)
	g.Reset(testRuntime)
	return g
}

func forceStrategy(name string) func(*config.BrickerConfig) {
	return func(cfg *config.BrickerConfig) {
		cfg.Strategies.Force = name
	}
}

func liveBricks(g *Game) []*Brick {
	var out []*Brick
	for _, obj := range g.objects.Objects(engine.LayerStatic) {
		if b, ok := obj.(*Brick); ok {
			out = append(out, b)
		}
	}
	return out
}

func countDefault[T engine.Object](g *Game) int {
	n := 0
	for _, obj := range g.objects.Objects(engine.LayerDefault) {
		if _, ok := obj.(T); ok {
			n++
		}
	}
	return n
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
