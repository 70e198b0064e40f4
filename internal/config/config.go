// Package config loads Bricker configuration from YAML or TOML files with
// embedded defaults, and applies difficulty presets.
package config

// BrickerConfig holds every tunable of the game. Distances are in world
// units of the logical window; speeds are world units per second.
type BrickerConfig struct {
	Window          WindowConfig          `yaml:"window" toml:"window"`
	Ball            BallConfig            `yaml:"ball" toml:"ball"`
	Paddle          PaddleConfig          `yaml:"paddle" toml:"paddle"`
	Bricks          BricksConfig          `yaml:"bricks" toml:"bricks"`
	Lives           LivesConfig           `yaml:"lives" toml:"lives"`
	Puck            PuckConfig            `yaml:"puck" toml:"puck"`
	Heart           HeartConfig           `yaml:"heart" toml:"heart"`
	Camera          CameraConfig          `yaml:"camera" toml:"camera"`
	SecondaryPaddle SecondaryPaddleConfig `yaml:"secondary_paddle" toml:"secondary_paddle"`
	Strategies      StrategiesConfig      `yaml:"strategies" toml:"strategies"`
	Gameplay        GameplayConfig        `yaml:"gameplay" toml:"gameplay"`
	Input           InputConfig           `yaml:"input" toml:"input"`
	Difficulty      DifficultyConfig      `yaml:"difficulty" toml:"difficulty"`
}

// WindowConfig is the logical play area.
type WindowConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	FrameRate int     `yaml:"frame_rate" toml:"frame_rate"` // Simulation ticks per second
}

// BallConfig describes the main ball.
type BallConfig struct {
	Size  float64 `yaml:"size" toml:"size"`
	Speed float64 `yaml:"speed" toml:"speed"`
	Sound bool    `yaml:"sound" toml:"sound"` // Ring the terminal bell on every bounce
}

// PaddleConfig describes the player paddle.
type PaddleConfig struct {
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	Speed           float64 `yaml:"speed" toml:"speed"`
	MinDistFromEdge float64 `yaml:"min_dist_from_edge" toml:"min_dist_from_edge"`
	BottomOffset    float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Paddle center distance from window bottom
}

// BricksConfig describes the brick grid.
type BricksConfig struct {
	Layout    string  `yaml:"layout" toml:"layout"`   // Layout name, see `bricker layouts`
	Rows      int     `yaml:"rows" toml:"rows"`       // Used by the "classic" layout
	Columns   int     `yaml:"columns" toml:"columns"` // Used by the "classic" layout
	Height    float64 `yaml:"height" toml:"height"`
	Left      float64 `yaml:"left" toml:"left"` // Margin on both sides
	Top       float64 `yaml:"top" toml:"top"`
	ColumnGap float64 `yaml:"column_gap" toml:"column_gap"`
	RowGap    float64 `yaml:"row_gap" toml:"row_gap"`
}

// LivesConfig describes the lives counter and its displays.
type LivesConfig struct {
	Initial   int     `yaml:"initial" toml:"initial"`
	Max       int     `yaml:"max" toml:"max"`
	HeartSize float64 `yaml:"heart_size" toml:"heart_size"`
	HeartGap  float64 `yaml:"heart_gap" toml:"heart_gap"`
}

// PuckConfig describes the extra balls released by a brick.
type PuckConfig struct {
	Count int     `yaml:"count" toml:"count"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// HeartConfig describes the falling extra-life pickup.
type HeartConfig struct {
	FallSpeed float64 `yaml:"fall_speed" toml:"fall_speed"`
}

// CameraConfig describes the follow-the-ball camera.
type CameraConfig struct {
	WidenFactor   float64 `yaml:"widen_factor" toml:"widen_factor"`
	MaxCollisions int     `yaml:"max_collisions" toml:"max_collisions"`
}

// SecondaryPaddleConfig describes the temporary second paddle.
type SecondaryPaddleConfig struct {
	MaxHits         int     `yaml:"max_hits" toml:"max_hits"`
	MinDistFromEdge float64 `yaml:"min_dist_from_edge" toml:"min_dist_from_edge"`
}

// MaxCompositeEffects caps the effects one composite strategy can hold.
const MaxCompositeEffects = 3

// StrategiesConfig controls how brick strategies are chosen.
type StrategiesConfig struct {
	Force         string `yaml:"force" toml:"force"`                   // Empty for random, otherwise a strategy name
	CompositeBase int    `yaml:"composite_base" toml:"composite_base"` // Effects in a composite strategy
	CompositeMax  int    `yaml:"composite_max" toml:"composite_max"`   // Upper bound after re-rolls, at most MaxCompositeEffects
}

// GameplayConfig holds scoring and cheat switches.
type GameplayConfig struct {
	BrickPoints   int  `yaml:"brick_points" toml:"brick_points"`
	AllowForceWin bool `yaml:"allow_force_win" toml:"allow_force_win"`
}

// InputConfig tunes the terminal key handling.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms" toml:"hold_ms"` // How long a movement key counts as held
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a name to a preset. Unknown names return false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BrickerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Lives.Initial = 4
		cfg.Paddle.Width = 260
		cfg.Ball.Speed = 250
	case DifficultyHard:
		cfg.Lives.Initial = 2
		cfg.Paddle.Width = 150
		cfg.Ball.Speed = 380
	}
}
