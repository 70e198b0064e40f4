package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const configFileName = "bricker.yaml"

// Load loads the Bricker configuration.
// Search order: customPath -> ~/.bricker/configs/bricker.yaml -> ./configs/bricker.yaml -> embedded default.
// Only an explicit customPath can produce an error; broken files elsewhere are skipped.
func Load(customPath string) (BrickerConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultBrickerConfig()
	if err := yaml.Unmarshal(defaultBrickerYAML, &cfg); err != nil {
		return DefaultBrickerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single config file. Fields missing from the file keep
// their default values. The format is chosen by extension: .toml is TOML,
// anything else YAML.
func LoadFile(path string) (BrickerConfig, error) {
	cfg := DefaultBrickerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Locate returns the file Load would read, or "" when the embedded default is used.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func decode(path string, data []byte, cfg *BrickerConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(configFileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricker", "configs", filename)
}

// Validation errors.
var (
	ErrInvalidWindow = errors.New("window size and frame rate must be positive")
	ErrInvalidLives  = errors.New("lives must satisfy 0 < initial <= max")
	ErrInvalidBricks = errors.New("brick height must be positive")
	ErrInvalidCombo  = errors.New("strategies need 1 <= composite_base <= composite_max <= 3")
)

// Validate reports the first setting that would make the game unplayable.
func (c BrickerConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.FrameRate <= 0:
		return ErrInvalidWindow
	case c.Lives.Initial <= 0 || c.Lives.Initial > c.Lives.Max:
		return ErrInvalidLives
	case c.Bricks.Height <= 0:
		return ErrInvalidBricks
	case c.Strategies.CompositeBase < 1 || c.Strategies.CompositeBase > c.Strategies.CompositeMax,
		c.Strategies.CompositeMax > MaxCompositeEffects:
		return ErrInvalidCombo
	}
	return nil
}
