// Package main is the entry point for stride, a selection motion engine
// with a terminal viewer and a scripting host.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/stride/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "stride",
		Short: "Selection motions over text documents",
		Long: `stride moves selections through a document the way an editor does:
by character, by line, by page and to line boundaries, with a sticky
preferred column for vertical motions.`,
		Example: `  # Move a cursor two lines down
  stride move select.down --file main.go --at 3:4 --count 2

  # Run a Lua script against a document
  stride script motions.lua --file main.go

  # Browse a file interactively
  stride view main.go`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to configuration file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newMoveCmd(g),
		newScriptCmd(g),
		newViewCmd(g),
		newActionsCmd(),
		newConfigCmd(g),
	)
	return root
}

// load reads the configuration. An explicit --config path must exist.
func (g *globals) load() (*config.Config, string, error) {
	path := g.configPath
	required := path != ""
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// logger builds the process logger. --log-level wins over the config.
func (g *globals) logger(cfg *config.Config) (*log.Logger, error) {
	level := cfg.LogLevel()
	if g.logLevel != "" {
		l, err := log.ParseLevel(g.logLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q", g.logLevel)
		}
		level = l
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "stride",
		ReportTimestamp: true,
	}), nil
}

// setup loads the configuration and builds the logger.
func (g *globals) setup() (*config.Config, *log.Logger, error) {
	cfg, _, err := g.load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := g.logger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
