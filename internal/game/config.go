package game

import (
	"fmt"
	"os"
	"strconv"
)

// Default maze dimensions, in cells.
const (
	DefaultWidth  = 20
	DefaultHeight = 20
)

// Config holds runtime options for the viewer.
type Config struct {
	// Width and Height of the generated maze, in cells.
	Width  int
	Height int
	// Seed for maze generation. Used for reproducible mazes; a seed of 0
	// means one is derived from the wall clock.
	Seed int64
}

// LoadConfig reads configuration from MAZETERM_WIDTH, MAZETERM_HEIGHT and
// MAZETERM_SEED environment variables, falling back to defaults for anything
// unset.
func LoadConfig() (Config, error) {
	var cfg Config
	var err error

	if cfg.Width, err = intEnv("MAZETERM_WIDTH", DefaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intEnv("MAZETERM_HEIGHT", DefaultHeight); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = int64Env("MAZETERM_SEED", 0); err != nil {
		return Config{}, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("maze dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func int64Env(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
