package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
	"github.com/vovakirdan/tui-bricker/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 80, Seed: 7}

func newTestModel(t *testing.T, cfg config.BrickerConfig, opts ...Option) Model {
	t.Helper()
	m := NewModel(bricker.New(cfg), testRuntime, opts...)
	m.Init()
	return m
}

// send feeds msg to m and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestModelSavesFinishedRoundOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	saver := NewMockRoundSaver(ctrl)

	saver.EXPECT().SaveRound(gomock.Any()).DoAndReturn(func(r storage.Round) (string, error) {
		if r.Outcome != "win" || r.Player != "alice" || r.BricksTotal != 56 || r.Seed != 7 || r.Layout != "classic" {
			t.Errorf("saved round = %+v", r)
		}
		return "round-1", nil
	}).Times(1)

	m := newTestModel(t, config.DefaultBrickerConfig(), WithSaver(saver), WithPlayer("alice"))

	m, _ = send(t, m, keyMsg("w"))
	m, _ = tick(t, m)
	if !m.State().GameOver || m.State().Outcome != core.OutcomeWin {
		t.Fatalf("state = %+v, expected won", m.State())
	}

	for range 5 {
		m, _ = tick(t, m)
	}
	if m.saved != 1 {
		t.Errorf("saved = %d, expected 1", m.saved)
	}
}

func TestModelSaveErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	saver := NewMockRoundSaver(ctrl)
	saver.EXPECT().SaveRound(gomock.Any()).Return("", errors.New("disk full"))

	m := newTestModel(t, config.DefaultBrickerConfig(), WithSaver(saver))
	m, _ = send(t, m, keyMsg("w"))
	m, cmd := tick(t, m)

	if cmd == nil || m.Done() || m.IsQuitting() {
		t.Error("model should keep running after a failed save")
	}
	if m.saved != 0 {
		t.Errorf("saved = %d, expected 0", m.saved)
	}
}

func TestModelDeclineEndsProgram(t *testing.T) {
	m := newTestModel(t, config.DefaultBrickerConfig())

	m, _ = send(t, m, keyMsg("w"))
	m, _ = tick(t, m)
	m, _ = send(t, m, keyMsg("n"))
	m, cmd := tick(t, m)

	if !m.Done() || cmd == nil {
		t.Fatal("declining should finish the model")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd returned %T, expected quit", msg)
	}
	if m.View() != "" {
		t.Error("finished model should render nothing")
	}
}

func TestModelConfirmStartsNewRound(t *testing.T) {
	m := newTestModel(t, config.DefaultBrickerConfig())

	m, _ = send(t, m, keyMsg("w"))
	m, _ = tick(t, m)
	m, _ = send(t, m, keyMsg("y"))
	m, _ = tick(t, m)

	if m.State().GameOver || m.Done() {
		t.Errorf("state = %+v, expected a fresh round", m.State())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultBrickerConfig())
	m, cmd := send(t, m, keyMsg("q"))

	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelRingsBell(t *testing.T) {
	cfg := config.DefaultBrickerConfig()
	cfg.Ball.Sound = true
	var bell bytes.Buffer
	m := newTestModel(t, cfg, WithBell(&bell))

	// The ball drops onto the centered paddle within a second.
	for range 100 {
		m, _ = tick(t, m)
	}
	if !strings.Contains(bell.String(), "\a") {
		t.Error("expected a bell after the ball hit the paddle")
	}
}

func TestModelAppliesReloadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricker.yaml")
	if err := os.WriteFile(path, []byte("lives:\n  initial: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := config.Watch(path, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	m := newTestModel(t, config.DefaultBrickerConfig(), WithWatcher(w, nil))

	reloaded := config.DefaultBrickerConfig()
	reloaded.Lives.Initial = 1
	m, cmd := send(t, m, configMsg{cfg: reloaded})
	if cmd == nil {
		t.Error("model should keep waiting for updates")
	}
	if m.game.Config().Lives.Initial != 3 {
		t.Fatal("reload should not touch the running round")
	}

	m, _ = send(t, m, keyMsg("w"))
	m, _ = tick(t, m)
	m, _ = send(t, m, keyMsg("enter"))
	m, _ = tick(t, m)
	if m.game.Config().Lives.Initial != 1 {
		t.Error("reloaded config should apply to the next round")
	}
}

func TestModelAdjustsReloadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricker.yaml")
	if err := os.WriteFile(path, []byte("lives:\n  initial: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := config.Watch(path, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	reject := false
	adjust := func(cfg *config.BrickerConfig) error {
		if reject {
			return errors.New("bad override")
		}
		cfg.Strategies.Force = "heart"
		return nil
	}
	m := newTestModel(t, config.DefaultBrickerConfig(), WithWatcher(w, adjust))

	nextRound := func(m Model) Model {
		m, _ = send(t, m, keyMsg("w"))
		m, _ = tick(t, m)
		m, _ = send(t, m, keyMsg("enter"))
		m, _ = tick(t, m)
		return m
	}

	m, _ = send(t, m, configMsg{cfg: config.DefaultBrickerConfig()})
	m = nextRound(m)
	if got := m.game.Config().Strategies.Force; got != "heart" {
		t.Fatalf("Strategies.Force = %q, expected the adjusted heart", got)
	}

	reject = true
	rejected := config.DefaultBrickerConfig()
	rejected.Lives.Initial = 1
	m, cmd := send(t, m, configMsg{cfg: rejected})
	if cmd == nil {
		t.Error("model should keep waiting for updates after a rejected config")
	}
	m = nextRound(m)
	if m.game.Config().Lives.Initial == 1 {
		t.Error("rejected config should not be applied")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, config.DefaultBrickerConfig())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if v := m.View(); strings.Count(v, "\n") != 29 {
		t.Errorf("view has %d lines, expected 30", strings.Count(v, "\n")+1)
	}
}

func TestRoundFromStats(t *testing.T) {
	r := roundFromStats("bob", bricker.RoundStats{
		Outcome:         core.OutcomeLose,
		Score:           120,
		BricksDestroyed: 12,
		BricksTotal:     56,
		LivesLeft:       0,
		Ticks:           4000,
		Seed:            99,
		Layout:          "pyramid",
	})
	want := storage.Round{
		Player: "bob", Outcome: "lose", Score: 120, BricksDestroyed: 12, BricksTotal: 56,
		Ticks: 4000, Seed: 99, Layout: "pyramid",
	}
	if r != want {
		t.Errorf("round = %+v, expected %+v", r, want)
	}
}
