package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
	"github.com/vovakirdan/tui-bricker/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round right away.

Controls:
  Left/Right, A/D  - Move paddle
  P/Space          - Pause
  W                - Win the round (if gameplay.allow_force_win)
  Y/Enter, N/Esc   - Answer "Play again?"
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 4 lives, wide paddle, slow ball
  normal - Ball speeds up from 30% as you score
  hard   - 2 lives, narrow paddle, fast ball
  fixed  - No speed-up

Examples:
  bricker play
  bricker play --difficulty easy
  bricker play --layout invaders
  bricker play --strategy heart
  bricker play --config ./my-bricker.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies to the next round)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	opts := []tui.Option{tui.WithLogger(logger), tui.WithBell(os.Stderr)}
	if store != nil {
		defer store.Close()
		opts = append(opts, tui.WithSaver(store))
	}

	if flagWatch {
		if path := config.Locate(flagConfig); path != "" {
			w, werr := config.Watch(path, logger)
			if werr != nil {
				logger.Warn("config watch disabled", "error", werr)
			} else {
				defer w.Close()
				opts = append(opts, tui.WithWatcher(w, applyOverrides))
			}
		} else {
			logger.Warn("config watch disabled: using built-in defaults")
		}
	}

	game := bricker.New(cfg, bricker.WithLogger(logger))
	if err := tui.Run(game, runtimeConfig(cfg), opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
