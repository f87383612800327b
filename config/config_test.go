package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnmaze/statespace"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	f, err := cfg.Facing()
	require.NoError(t, err)
	assert.Equal(t, statespace.East, f)
	assert.Equal(t, statespace.DefaultCosts(), cfg.Costs())
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnmaze.yaml")
	data := []byte("input: maze.txt\nturn_cost: 10\nstart_facing: north\nlog_format: json\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "maze.txt", cfg.Input)
	assert.Equal(t, int64(10), cfg.TurnCost)
	assert.Equal(t, int64(1), cfg.StepCost, "unset keys keep their defaults")
	assert.Equal(t, "north", cfg.StartFacing)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("turn_cost: 10\n"), 0o644))
	t.Setenv("TURNMAZE_TURN_COST", "25")
	t.Setenv("TURNMAZE_OUTPUT", "answer.txt")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(25), cfg.TurnCost)
	assert.Equal(t, "answer.txt", cfg.Output)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("turn_cost: [1, 2\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv("TURNMAZE_STEP_COST", "lots")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TURNMAZE_INPUT":       "-",
		"TURNMAZE_IMAGE":       "out.png",
		"TURNMAZE_CELL_PIXELS": " 3 ",
		"TURNMAZE_STEP_COST":   "2",
	}
	cfg := DefaultConfig()
	err := cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, "out.png", cfg.Image)
	assert.Equal(t, 3, cfg.CellPixels)
	assert.Equal(t, int64(2), cfg.StepCost)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"EmptyInput":   func(c *Config) { c.Input = "" },
		"BadFacing":    func(c *Config) { c.StartFacing = "up" },
		"ZeroStep":     func(c *Config) { c.StepCost = 0 },
		"NegativeTurn": func(c *Config) { c.TurnCost = -1 },
		"OverflowTurn": func(c *Config) { c.TurnCost = math.MaxInt64 },
		"ZeroPixels":   func(c *Config) { c.CellPixels = 0 },
		"BadLevel":     func(c *Config) { c.LogLevel = "loud" },
		"BadFormat":    func(c *Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
