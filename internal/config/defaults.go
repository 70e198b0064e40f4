package config

import (
	_ "embed"
)

//go:embed defaults/bricker.yaml
var defaultBrickerYAML []byte

// DefaultBrickerConfig returns the built-in configuration.
func DefaultBrickerConfig() BrickerConfig {
	return BrickerConfig{
		Window: WindowConfig{
			Width:     700,
			Height:    500,
			FrameRate: 80,
		},
		Ball: BallConfig{
			Size:  30,
			Speed: 300,
		},
		Paddle: PaddleConfig{
			Width:           200,
			Height:          20,
			Speed:           300,
			MinDistFromEdge: 30,
			BottomOffset:    30,
		},
		Bricks: BricksConfig{
			Layout:    "classic",
			Rows:      8,
			Columns:   7,
			Height:    20,
			Left:      20,
			Top:       5,
			ColumnGap: 5,
		},
		Lives: LivesConfig{
			Initial:   3,
			Max:       4,
			HeartSize: 25,
			HeartGap:  5,
		},
		Puck: PuckConfig{
			Count: 1,
			Speed: 300,
		},
		Heart: HeartConfig{
			FallSpeed: 100,
		},
		Camera: CameraConfig{
			WidenFactor:   1.2,
			MaxCollisions: 4,
		},
		SecondaryPaddle: SecondaryPaddleConfig{
			MaxHits:         3,
			MinDistFromEdge: 1,
		},
		Strategies: StrategiesConfig{
			CompositeBase: 2,
			CompositeMax:  3,
		},
		Gameplay: GameplayConfig{
			BrickPoints:   10,
			AllowForceWin: true,
		},
		Input: InputConfig{
			HoldMs: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 560,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
