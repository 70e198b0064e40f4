package bricker

import (
	"testing"

	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/engine"
)

const testDT = 1.0 / 80

func TestBallReflects(t *testing.T) {
	bounces := 0
	b := NewBall(engine.NewVec2(50, 50), 10, engine.NewVec2(100, 200), func() { bounces++ })

	b.OnCollisionEnter(nil, engine.Collision{Normal: engine.NewVec2(0, -1)})

	if v := b.Body().Vel; v != engine.NewVec2(100, -200) {
		t.Errorf("velocity = %v, expected (100, -200)", v)
	}
	if b.CollisionCount() != 1 || bounces != 1 {
		t.Errorf("collisions=%d bounces=%d, expected 1 each", b.CollisionCount(), bounces)
	}
}

func TestPaddleMovesAndClamps(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		wantX   float64
	}{
		{"left", []core.Action{core.ActionLeft}, 30},
		{"right", []core.Action{core.ActionRight}, 470},
		{"both cancel", []core.Action{core.ActionLeft, core.ActionRight}, 250},
		{"idle", nil, 250},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys := frame(tc.actions...)
			p := NewPaddle(engine.NewVec2(350, 470), engine.NewVec2(200, 20), 300, 30, 700, &keys)
			for range 200 {
				p.Update(testDT)
			}
			if got := p.Body().Pos.X; got != tc.wantX {
				t.Errorf("x = %f, expected %f", got, tc.wantX)
			}
		})
	}
}

func TestPaddleReadsKeysEveryFrame(t *testing.T) {
	keys := core.NewInputFrame()
	p := NewPaddle(engine.NewVec2(350, 470), engine.NewVec2(200, 20), 300, 30, 700, &keys)

	keys.Set(core.ActionRight)
	p.Update(testDT)
	if v := p.Body().Vel.X; v != 300 {
		t.Errorf("vx = %f, expected 300", v)
	}

	keys.Clear()
	p.Update(testDT)
	if v := p.Body().Vel.X; v != 0 {
		t.Errorf("vx = %f, expected 0 after release", v)
	}
}

func TestSecondaryPaddleLeavesAfterMaxHits(t *testing.T) {
	env := &recordingEnv{}
	keys := core.NewInputFrame()
	gone := 0
	sp := NewSecondaryPaddle(env,
		NewPaddle(engine.NewVec2(350, 250), engine.NewVec2(200, 20), 300, 1, 700, &keys),
		3, func() { gone++ })

	if sp.Body().Tag != TagSecondaryPaddle {
		t.Errorf("tag = %q", sp.Body().Tag)
	}

	sp.OnCollisionEnter(nil, engine.Collision{})
	sp.OnCollisionEnter(nil, engine.Collision{})
	if len(env.removed) != 0 || gone != 0 {
		t.Fatal("removed before max hits")
	}

	sp.OnCollisionEnter(nil, engine.Collision{})
	sp.OnCollisionEnter(nil, engine.Collision{})
	if len(env.removed) != 1 || gone != 1 {
		t.Errorf("removed=%d gone=%d, expected 1 each", len(env.removed), gone)
	}
	if sp.hits != 3 {
		t.Errorf("hits = %d, expected 3", sp.hits)
	}
}

func TestHeartCollidesOnlyWithPrimaryPaddle(t *testing.T) {
	env := &recordingEnv{}
	keys := core.NewInputFrame()
	lives := engine.NewCounter(3)
	h := NewHeart(env, engine.NewVec2(100, 100), 25, 100, lives, 4, 500)

	paddle := NewPaddle(engine.NewVec2(350, 470), engine.NewVec2(200, 20), 300, 30, 700, &keys)
	second := NewSecondaryPaddle(env, NewPaddle(engine.NewVec2(350, 250), engine.NewVec2(200, 20), 300, 1, 700, &keys), 3, nil)
	ball := NewBall(engine.NewVec2(0, 0), 10, engine.NewVec2Zero(), nil)

	tests := []struct {
		name  string
		other engine.Object
		want  bool
	}{
		{"paddle", paddle, true},
		{"secondary paddle", second, false},
		{"ball", ball, false},
		{"brick", NewBrick(env, engine.NewVec2Zero(), engine.NewVec2(1, 1), Strategy{}, lives), false},
	}
	for _, tc := range tests {
		if got := h.ShouldCollideWith(tc.other); got != tc.want {
			t.Errorf("%s: ShouldCollideWith = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestHeartRespectsMaxLives(t *testing.T) {
	env := &recordingEnv{}
	lives := engine.NewCounter(3)

	first := NewHeart(env, engine.NewVec2(100, 100), 25, 100, lives, 4, 500)
	first.OnCollisionEnter(nil, engine.Collision{})
	first.OnCollisionEnter(nil, engine.Collision{})
	if lives.Value() != 4 {
		t.Fatalf("lives = %d, expected 4", lives.Value())
	}

	second := NewHeart(env, engine.NewVec2(100, 100), 25, 100, lives, 4, 500)
	second.OnCollisionEnter(nil, engine.Collision{})
	if lives.Value() != 4 {
		t.Errorf("lives = %d, expected to stay at max 4", lives.Value())
	}
	if len(env.removed) != 2 {
		t.Errorf("removed = %d, both hearts should be consumed", len(env.removed))
	}
}

func TestHeartFallsAndLeaves(t *testing.T) {
	env := &recordingEnv{}
	h := NewHeart(env, engine.NewVec2(100, 480), 25, 100, engine.NewCounter(3), 4, 500)

	if v := h.Body().Vel; v != engine.NewVec2(0, 100) {
		t.Errorf("velocity = %v, expected (0, 100)", v)
	}

	h.Update(testDT)
	if len(env.removed) != 0 {
		t.Fatal("heart removed while still inside the window")
	}

	for range 80 {
		h.Update(testDT)
	}
	if len(env.removed) == 0 || env.removed[0] != engine.Object(h) {
		t.Error("heart should remove itself below the window")
	}
}

func TestPuckLeavesBelowWindow(t *testing.T) {
	env := &recordingEnv{}
	p := NewPuckBall(env, engine.NewVec2(100, 480), 20, engine.NewVec2(0, 300), 500, nil)

	p.Update(testDT)
	if len(env.removed) != 0 {
		t.Fatal("puck removed while still inside the window")
	}
	for range 20 {
		p.Update(testDT)
	}
	if len(env.removed) == 0 || p.Body().Tag != TagPuck {
		t.Error("puck should remove itself below the window")
	}
}

func TestGraphicLifeCounter(t *testing.T) {
	env := &recordingEnv{}
	lives := engine.NewCounter(3)
	c := NewGraphicLifeCounter(env, lives, engine.NewVec2(0, 475), 25, 30, 4)

	if c.Icons() != 3 || len(env.added) != 3 {
		t.Fatalf("icons = %d, added = %d, expected 3", c.Icons(), len(env.added))
	}
	if x := env.added[2].Body().Pos.X; x != 60 {
		t.Errorf("third icon x = %f, expected 60", x)
	}

	lives.Set(1)
	c.Update(testDT)
	if c.Icons() != 2 {
		t.Errorf("icons = %d, expected one removed per frame", c.Icons())
	}
	c.Update(testDT)
	if c.Icons() != 1 || len(env.removed) != 2 {
		t.Errorf("icons = %d removed = %d", c.Icons(), len(env.removed))
	}

	lives.Set(7)
	for range 10 {
		c.Update(testDT)
	}
	if c.Icons() != 4 {
		t.Errorf("icons = %d, expected capped at 4", c.Icons())
	}
}

func TestNumericLifeCounter(t *testing.T) {
	tests := []struct {
		lives int
		text  string
		color core.Color
		x     float64
	}{
		{4, "4", core.ColorGreen, 120},
		{3, "3", core.ColorGreen, 90},
		{2, "2", core.ColorYellow, 60},
		{1, "1", core.ColorRed, 30},
		{0, "0", core.ColorGreen, 0},
	}

	lives := engine.NewCounter(3)
	n := NewNumericLifeCounter(lives, 25, 5, 470)
	for _, tc := range tests {
		lives.Set(tc.lives)
		n.Update(testDT)
		body := n.Body()
		if body.Text != tc.text || body.Color != tc.color || body.Pos.X != tc.x || body.Pos.Y != 470 {
			t.Errorf("lives %d: text=%q color=%v pos=%v", tc.lives, body.Text, body.Color, body.Pos)
		}
	}
}
