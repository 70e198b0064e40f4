// bricker is a Breakout game for the terminal where every brick hides a
// collision strategy: extra balls, a second paddle, a falling heart or a
// camera that follows the ball.
//
// Usage:
//
//	bricker play             - Play a round right away
//	bricker menu             - Pick layout and difficulty from a menu
//	bricker serve            - Start SSH server for remote play
//	bricker scores           - Show the best and latest rounds
//	bricker layouts          - List brick layouts
//
// Global flags:
//
//	--config <path>       - Config file (YAML or TOML)
//	--fps <rate>          - Set tick rate (default: window.frame_rate)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.bricker/rounds.db)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
	"github.com/vovakirdan/tui-bricker/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagDebug      bool
	flagDifficulty string
	flagStrategy   string
	flagLayout     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricker",
	Short: "Bricker - Breakout with surprises in every brick",
	Long: `Bricker is a terminal Breakout game. Every brick carries a strategy
that fires when a ball hits it: it may release puck balls, add a second
paddle, drop a heart or zoom the camera out around the ball.

Available commands:
  play     - Play a round right away
  menu     - Pick layout and difficulty interactively
  serve    - Start SSH server for remote play
  scores   - View the best and latest rounds
  layouts  - List brick layouts

Examples:
  bricker play
  bricker play --layout pyramid --difficulty hard
  bricker play --strategy composite --seed 42
  bricker menu
  bricker serve --ssh :2222
  bricker scores --recent`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = window.frame_rate from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to rounds database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log strategy firings and spawns")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagStrategy, "strategy", "", "Force one strategy for every brick: none, puck, paddle, camera, heart, composite")
	pf.StringVar(&flagLayout, "layout", "", "Brick layout (see 'bricker layouts')")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(layoutsCmd)
}

// loadConfig loads the config file and applies the command line overrides.
func loadConfig() (config.BrickerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := applyOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyOverrides applies --difficulty, --strategy and --layout to cfg.
// Reloaded configs go through it too, so the flags outlive file edits.
func applyOverrides(cfg *config.BrickerConfig) error {
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(cfg, preset)
	}
	if flagStrategy != "" {
		if _, err := bricker.ParseStrategy(flagStrategy); err != nil {
			return err
		}
		cfg.Strategies.Force = flagStrategy
	}
	if flagLayout != "" {
		if _, err := bricker.LayoutByName(flagLayout, cfg.Bricks); err != nil {
			return err
		}
		cfg.Bricks.Layout = flagLayout
	}
	return nil
}

// newLogger returns a logger writing to --log-file, or one that discards
// everything. The terminal belongs to the game.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricker",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(cfg config.BrickerConfig) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = cfg.Window.FrameRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}

// openStore opens the rounds database. Failures only disable persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		logger.Warn("rounds database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
