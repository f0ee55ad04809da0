package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pineapple/internal/game"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, game.DefaultMaxAttempts, c.Session.MaxAttempts)
	assert.Equal(t, 1000, c.Simulation.Hands)
	assert.Equal(t, [2]string{"greedy", "random"}, c.SimulationStrategies())

	names, strategies, fl := c.Seats()
	assert.Equal(t, [2]string{"seat0", "seat1"}, names)
	assert.Equal(t, [2]string{"greedy", "random"}, strategies)
	assert.Equal(t, [2]bool{}, fl)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	c, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ofc.hcl")
	src := `
log {
  level = "debug"
  json  = true
}

simulation {
  hands      = 500
  seed       = 42
  workers    = 8
  duplicate  = true
  strategies = ["random", "greedy"]
}

player "alice" {
  strategy    = "random"
  fantasyland = true
}

player "bob" {
  strategy = "greedy"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, game.DefaultMaxAttempts, c.Session.MaxAttempts)
	assert.Equal(t, &SimulationConfig{
		Hands:      500,
		Seed:       42,
		Workers:    8,
		Duplicate:  true,
		Strategies: []string{"random", "greedy"},
	}, c.Simulation)

	names, strategies, fl := c.Seats()
	assert.Equal(t, [2]string{"alice", "bob"}, names)
	assert.Equal(t, [2]string{"random", "greedy"}, strategies)
	assert.Equal(t, [2]bool{true, false}, fl)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`simulation {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL")

	_, err = Parse([]byte(`simulation { hands = "lots" }`), "bad.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")

	_, err = Parse([]byte(`player "carol" {}`), "missing.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"attempts", func(c *Config) { c.Session.MaxAttempts = -1 }, "max_attempts"},
		{"hands", func(c *Config) { c.Simulation.Hands = -5 }, "hands must be positive"},
		{"workers", func(c *Config) { c.Simulation.Workers = -1 }, "workers must be at least 1"},
		{"strategy count", func(c *Config) { c.Simulation.Strategies = []string{"greedy"} }, "need 2 strategies"},
		{"strategy name", func(c *Config) { c.Simulation.Strategies = []string{"greedy", "minimax"} }, "invalid strategy minimax"},
		{"player count", func(c *Config) {
			c.Players = []PlayerConfig{{Name: "solo", Strategy: "greedy"}}
		}, "need exactly 2 players"},
		{"player strategy", func(c *Config) {
			c.Players = []PlayerConfig{{Name: "a", Strategy: "greedy"}, {Name: "b", Strategy: "oracle"}}
		}, "player b: invalid strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Default()
			tt.mutate(c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}
