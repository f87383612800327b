// Package config loads CLI settings from an optional YAML file, an
// optional .env file and TURNMAZE_* environment variables, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/turnmaze/statespace"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TURNMAZE_"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one CLI run.
type Config struct {
	Input       string `yaml:"input"`        // map file; "-" reads stdin
	Output      string `yaml:"output"`       // result file, empty to skip
	Image       string `yaml:"image"`        // PNG overlay path, empty to skip
	CellPixels  int    `yaml:"cell_pixels"`  // PNG cell size
	StartFacing string `yaml:"start_facing"` // north, west, south or east
	TurnCost    int64  `yaml:"turn_cost"`
	StepCost    int64  `yaml:"step_cost"`
	LogLevel    string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat   string `yaml:"log_format"` // text or json
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Input:       "input",
		Output:      "",
		CellPixels:  9,
		StartFacing: statespace.East.String(),
		TurnCost:    statespace.DefaultTurnCost,
		StepCost:    statespace.DefaultStepCost,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then .env in the working directory if present, then
// the process environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// .env is optional; existing environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("config: load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// applyEnv overlays TURNMAZE_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"INPUT":        &c.Input,
		"OUTPUT":       &c.Output,
		"IMAGE":        &c.Image,
		"START_FACING": &c.StartFacing,
		"LOG_LEVEL":    &c.LogLevel,
		"LOG_FORMAT":   &c.LogFormat,
	}
	for key, dst := range str {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	num := map[string]*int64{
		"TURN_COST": &c.TurnCost,
		"STEP_COST": &c.StepCost,
	}
	for key, dst := range num {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, key, err)
		}
		*dst = n
	}

	if v, ok := lookup(EnvPrefix + "CELL_PIXELS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sCELL_PIXELS must be an integer: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.CellPixels = n
	}

	return nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is empty", ErrInvalidConfig)
	}
	if _, err := c.Facing(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Costs().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.CellPixels <= 0 {
		return fmt.Errorf("%w: cell_pixels must be positive, got %d", ErrInvalidConfig, c.CellPixels)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Facing parses StartFacing.
func (c Config) Facing() (statespace.Orientation, error) {
	return statespace.ParseOrientation(c.StartFacing)
}

// Costs returns the configured edge prices.
func (c Config) Costs() statespace.Costs {
	return statespace.Costs{Turn: c.TurnCost, Step: c.StepCost}
}
