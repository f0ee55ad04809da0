// Package config loads the optional HCL configuration shared by the ofc
// sub-commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pineapple/internal/bot"
	"github.com/lox/pineapple/internal/game"
)

// DefaultFile is read when no path is given.
const DefaultFile = "ofc.hcl"

// Config represents the complete configuration.
//
//	log {
//	  level = "debug"
//	  json  = true
//	}
//
//	session {
//	  max_attempts = 3
//	}
//
//	simulation {
//	  hands      = 10000
//	  seed       = 42
//	  workers    = 8
//	  duplicate  = true
//	  strategies = ["greedy", "random"]
//	}
//
//	player "alice" {
//	  strategy    = "greedy"
//	  fantasyland = false
//	}
type Config struct {
	Log        *LogConfig        `hcl:"log,block"`
	Session    *SessionConfig    `hcl:"session,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Players    []PlayerConfig    `hcl:"player,block"`
}

// LogConfig controls logger setup.
type LogConfig struct {
	Level string `hcl:"level,optional"`
	JSON  bool   `hcl:"json,optional"`
}

// SessionConfig tunes a single hand.
type SessionConfig struct {
	MaxAttempts int `hcl:"max_attempts,optional"`
}

// SimulationConfig configures self-play batches.
type SimulationConfig struct {
	Hands      int      `hcl:"hands,optional"`
	Seed       int64    `hcl:"seed,optional"`
	Workers    int      `hcl:"workers,optional"`
	Duplicate  bool     `hcl:"duplicate,optional"`
	Strategies []string `hcl:"strategies,optional"`
}

// PlayerConfig seats a named strategy for the play command.
type PlayerConfig struct {
	Name        string `hcl:"name,label"`
	Strategy    string `hcl:"strategy"`
	Fantasyland bool   `hcl:"fantasyland,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads an HCL file, falling back to defaults when it does not exist.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for anything left unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.MaxAttempts == 0 {
		c.Session.MaxAttempts = game.DefaultMaxAttempts
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	if c.Simulation.Hands == 0 {
		c.Simulation.Hands = 1000
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = 1
	}
	if len(c.Simulation.Strategies) == 0 {
		c.Simulation.Strategies = []string{bot.Greedy, bot.Random}
	}

	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = bot.Greedy
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains([]string{"trace", "debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Session.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.Session.MaxAttempts)
	}

	sim := c.Simulation
	if sim.Hands <= 0 {
		return fmt.Errorf("simulation: hands must be positive, got %d", sim.Hands)
	}
	if sim.Workers < 1 {
		return fmt.Errorf("simulation: workers must be at least 1, got %d", sim.Workers)
	}
	if len(sim.Strategies) != game.NumSeats {
		return fmt.Errorf("simulation: need %d strategies, got %d", game.NumSeats, len(sim.Strategies))
	}
	for _, s := range sim.Strategies {
		if !validStrategy(s) {
			return fmt.Errorf("simulation: invalid strategy %s", s)
		}
	}

	if len(c.Players) != 0 && len(c.Players) != game.NumSeats {
		return fmt.Errorf("need exactly %d players, got %d", game.NumSeats, len(c.Players))
	}
	for _, p := range c.Players {
		if !validStrategy(p.Strategy) {
			return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
		}
	}
	return nil
}

// SimulationStrategies returns the two strategies, hero first.
func (c *Config) SimulationStrategies() [game.NumSeats]string {
	var out [game.NumSeats]string
	copy(out[:], c.Simulation.Strategies)
	return out
}

// Seats returns the name, strategy and fantasyland flag for each seat.
// Without player blocks the seats are named after their position and use
// the simulation strategies.
func (c *Config) Seats() (names, strategies [game.NumSeats]string, fantasyland [game.NumSeats]bool) {
	strategies = c.SimulationStrategies()
	for seat := range names {
		if seat < len(c.Players) {
			p := c.Players[seat]
			names[seat], strategies[seat], fantasyland[seat] = p.Name, p.Strategy, p.Fantasyland
			continue
		}
		names[seat] = fmt.Sprintf("seat%d", seat)
	}
	return names, strategies, fantasyland
}

func validStrategy(name string) bool {
	return slices.Contains(bot.Names(), strings.ToLower(name))
}
