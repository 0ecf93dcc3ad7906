// Package config loads session settings from .env, the environment and flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/memgrid/constants"
	"github.com/lixenwraith/memgrid/game"
)

// Config holds application configuration
type Config struct {
	GridSize              int
	InitialSequenceLength int
	InitialLevel          int
	HighlightDuration     time.Duration
	GapDuration           time.Duration
	Seed                  uint64 // 0 selects a time-based seed

	LogLevel  string
	LogFile   string // empty discards logs; the terminal owns stdout
	LogPretty bool

	AudioEnabled bool
	MasterVolume float64 // 0.0-1.0
}

// Load reads .env if present, then environment variables over defaults
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GridSize:              getEnvAsInt("MEMGRID_GRID_SIZE", constants.DefaultGridSize),
		InitialSequenceLength: getEnvAsInt("MEMGRID_INITIAL_LENGTH", constants.DefaultInitialSequenceLength),
		InitialLevel:          getEnvAsInt("MEMGRID_INITIAL_LEVEL", constants.DefaultInitialLevel),
		HighlightDuration:     getEnvAsMillis("MEMGRID_HIGHLIGHT_MS", constants.HighlightDuration),
		GapDuration:           getEnvAsMillis("MEMGRID_GAP_MS", constants.GapDuration),
		Seed:                  getEnvAsUint("MEMGRID_SEED", 0),
		LogLevel:              getEnv("MEMGRID_LOG_LEVEL", "info"),
		LogFile:               getEnv("MEMGRID_LOG_FILE", ""),
		LogPretty:             getEnvAsBool("MEMGRID_LOG_PRETTY", false),
		AudioEnabled:          getEnvAsBool("MEMGRID_AUDIO_ENABLED", true),
		MasterVolume:          volumeFromPercent(getEnvAsInt("MEMGRID_MASTER_VOLUME", constants.DefaultMasterVolume)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the game parameters and clamps the initial level
func (c *Config) Validate() error {
	gc := c.Game()
	if err := gc.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.InitialLevel = gc.InitialLevel
	return nil
}

// Game returns the controller configuration, resolving a zero seed from the clock
func (c *Config) Game() game.Config {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return game.Config{
		GridSize:              c.GridSize,
		InitialSequenceLength: c.InitialSequenceLength,
		InitialLevel:          c.InitialLevel,
		HighlightDuration:     c.HighlightDuration,
		GapDuration:           c.GapDuration,
		Seed:                  seed,
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsMillis(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

// volumeFromPercent converts 0-100 to 0.0-1.0, clamped
func volumeFromPercent(percent int) float64 {
	v := float64(percent) / 100.0
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
