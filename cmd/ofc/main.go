package main

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/lox/pineapple/cmd/ofc/shared"
	"github.com/lox/pineapple/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are shared by every sub-command.
type Globals struct {
	Config   string `kong:"default='ofc.hcl',type='path',help='HCL config file (ignored if missing)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
	LogLevel string `kong:"help='Log level (trace|debug|info|warn|error), overrides the config file'"`
	JSONLogs bool   `kong:"name='json-logs',help='Emit structured JSON logs'"`
}

// load reads the config file and builds the logger it describes.
func (g *Globals) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.JSONLogs {
		cfg.Log.JSON = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}

	level, err := shared.ParseLevel(cfg.Log.Level, g.Debug)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if cfg.Log.JSON {
		return cfg, shared.SetupStructuredLogger(level), nil
	}
	return cfg, shared.SetupLogger(level), nil
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play hands between two strategies and show the boards"`
	Simulate SimulateCmd      `cmd:"" help:"Run a self-play batch and report statistics"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate rows or a complete board"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ofc"),
		kong.Description("Pineapple open-face Chinese poker engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
