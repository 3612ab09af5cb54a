package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
)

// Config holds the configuration for the simulation driver
type Config struct {
	Mode                string        `json:"mode"`
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Endless             bool          `json:"endless"`
	RandomDensity       float64       `json:"random_density"`
	RandomSeed          int64         `json:"random_seed"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	UseActiveRegion     bool          `json:"use_active_region"`
	StopOnExtinction    bool          `json:"stop_on_extinction"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	// AutoRestart re-seeds a fresh random pattern instead of stopping on extinction or stagnation
	AutoRestart         bool          `json:"auto_restart"`
	AliveCharacter      string        `json:"alive_character"`
	DeadCharacter       string        `json:"dead_character"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Mode:                model.Unbounded.String(),
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Endless:             false,
		RandomDensity:       0.15,
		RandomSeed:          42,
		UseMemoryPool:       true,
		UseActiveRegion:     true,
		StopOnExtinction:    true,
		StopOnStagnation:    true,
		StagnationThreshold: 5,
		AutoRestart:         false,
		AliveCharacter:      "██",
		DeadCharacter:       "  ",
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a driver cannot run with
func (c Config) Validate() error {
	if _, err := model.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
