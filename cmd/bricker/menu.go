package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
	"github.com/vovakirdan/tui-bricker/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Bricker with a menu",
	Long: `Start Bricker in interactive menu mode.

Pick a layout and a difficulty, play, and come back to the menu when you
decline another round.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change layout or difficulty
  Enter/Space     - Select
  Q               - Quit

Examples:
  bricker menu
  bricker menu --fps 30
  bricker menu --db ./rounds.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig(base)
	layout := base.Bricks.Layout

	for {
		choice, err := tui.RunMenu(layout, rt.ScreenW, rt.ScreenH)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		switch choice.Choice {
		case tui.MenuScores:
			var source tui.RoundSource
			if store != nil {
				source = store
			}
			back, sbErr := tui.RunScoreboard(source, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !back {
				return nil
			}

		case tui.MenuPlay:
			layout = choice.Layout
			cfg := base
			cfg.Bricks.Layout = choice.Layout
			if flagDifficulty == "" {
				config.ApplyPreset(&cfg, choice.Preset)
			}

			opts := []tui.Option{tui.WithLogger(logger), tui.WithBell(os.Stderr)}
			if store != nil {
				opts = append(opts, tui.WithSaver(store))
			}
			game := bricker.New(cfg, bricker.WithLogger(logger))
			if err := tui.Run(game, rt, opts...); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		default:
			return nil
		}
	}
}
