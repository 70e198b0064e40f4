package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/storage"
)

// withFlags sets the override flags for one test and restores them after.
func withFlags(t *testing.T, difficulty, strategy, layout string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	old := [...]string{flagConfig, flagDifficulty, flagStrategy, flagLayout}
	flagConfig, flagDifficulty, flagStrategy, flagLayout = "", difficulty, strategy, layout
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagStrategy, flagLayout = old[0], old[1], old[2], old[3]
	})
}

func TestLoadConfigOverrides(t *testing.T) {
	withFlags(t, "easy", "heart", "pyramid")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Lives.Initial != 4 || cfg.Paddle.Width != 260 {
		t.Errorf("easy preset not applied: lives=%d paddle=%v", cfg.Lives.Initial, cfg.Paddle.Width)
	}
	if cfg.Strategies.Force != "heart" {
		t.Errorf("Strategies.Force = %q, expected heart", cfg.Strategies.Force)
	}
	if cfg.Bricks.Layout != "pyramid" {
		t.Errorf("Bricks.Layout = %q, expected pyramid", cfg.Bricks.Layout)
	}
}

func TestLoadConfigNoOverrides(t *testing.T) {
	withFlags(t, "", "", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	def := config.DefaultBrickerConfig()
	if cfg.Lives.Initial != def.Lives.Initial || cfg.Strategies.Force != def.Strategies.Force {
		t.Errorf("loadConfig() changed defaults: %+v", cfg.Lives)
	}
}

func TestLoadConfigRejectsUnknownNames(t *testing.T) {
	tests := []struct {
		name                         string
		difficulty, strategy, layout string
	}{
		{"difficulty", "insane", "", ""},
		{"strategy", "", "laser", ""},
		{"layout", "", "", "spiral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, tt.difficulty, tt.strategy, tt.layout)
			if _, err := loadConfig(); err == nil {
				t.Error("loadConfig() expected error")
			}
		})
	}
}

func TestCommandsReturnConfigErrors(t *testing.T) {
	withFlags(t, "", "laser", "")

	for name, run := range map[string]func(*cobra.Command, []string) error{
		"play":  runPlay,
		"menu":  runMenu,
		"serve": runServe,
	} {
		err := run(rootCmd, nil)
		if err == nil || !strings.Contains(err.Error(), "loading config") {
			t.Errorf("%s: error = %v, expected a config error", name, err)
		}
	}
}

func TestOverridesSurviveConfigReload(t *testing.T) {
	withFlags(t, "hard", "heart", "pyramid")
	path := filepath.Join(t.TempDir(), "bricker.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	w, err := config.Watch(path, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("ball:\n  speed: 555\nlives:\n  initial: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var reloaded config.BrickerConfig
	deadline := time.After(5 * time.Second)
	for reloaded.Ball.Speed != 555 {
		select {
		case reloaded = <-w.Updates():
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
	if err := applyOverrides(&reloaded); err != nil {
		t.Fatalf("applyOverrides() error = %v", err)
	}

	if reloaded.Strategies.Force != cfg.Strategies.Force {
		t.Errorf("Strategies.Force = %q, expected %q", reloaded.Strategies.Force, cfg.Strategies.Force)
	}
	if reloaded.Bricks.Layout != cfg.Bricks.Layout {
		t.Errorf("Bricks.Layout = %q, expected %q", reloaded.Bricks.Layout, cfg.Bricks.Layout)
	}
	if reloaded.Lives.Initial != 2 {
		t.Errorf("Lives.Initial = %d, expected hard preset's 2", reloaded.Lives.Initial)
	}
}

func TestScoresCommand(t *testing.T) {
	oldDB, oldID, oldClear := flagDBPath, flagRoundID, flagClear
	t.Cleanup(func() { flagDBPath, flagRoundID, flagClear = oldDB, oldID, oldClear })
	flagDBPath = filepath.Join(t.TempDir(), "rounds.db")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	low, err := store.SaveRound(storage.Round{Player: "local", Outcome: "lose", Score: 40, BricksTotal: 30, Layout: "classic"})
	if err != nil {
		t.Fatalf("SaveRound: %v", err)
	}
	if _, err := store.SaveRound(storage.Round{Player: "local", Outcome: "win", Score: 300, BricksTotal: 30, Layout: "classic"}); err != nil {
		t.Fatalf("SaveRound: %v", err)
	}
	store.Close()

	run := func() string {
		t.Helper()
		var out bytes.Buffer
		scoresCmd.SetOut(&out)
		t.Cleanup(func() { scoresCmd.SetOut(nil) })
		if err := runScores(scoresCmd, nil); err != nil {
			t.Fatalf("runScores() error = %v", err)
		}
		return out.String()
	}

	if out := run(); !strings.Contains(out, "High Scores") || !strings.Contains(out, "Best: 300") {
		t.Errorf("table output = %q", out)
	}

	flagRoundID = low
	if out := run(); !strings.Contains(out, "Score:   40 (best 300)") {
		t.Errorf("round output = %q", out)
	}

	flagRoundID = "missing"
	if err := runScores(scoresCmd, nil); err == nil {
		t.Error("runScores() expected error for unknown id")
	}

	flagRoundID, flagClear = "", true
	if out := run(); !strings.Contains(out, "deleted") {
		t.Errorf("clear output = %q", out)
	}
	flagClear = false
	if out := run(); !strings.Contains(out, "No rounds recorded yet.") {
		t.Errorf("after clear output = %q", out)
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"localhost", "localhost"},
	}

	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}
