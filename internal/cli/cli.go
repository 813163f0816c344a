// Package cli implements the gfakit command-line interface.
//
// Commands load a GFA file through pkg/io, run one operation of the graph
// engine and write the result to a file or standard output. The CLI is
// built with cobra; progress and debug output go through a charmbracelet/log
// logger attached to the command context, and user-facing results are
// styled with lipgloss.
//
// # Commands
//
//   - info: Statistics report (full or one-line)
//   - validate: Integrity check with the offending lines
//   - compact: Merge every linear path
//   - multiply: Split a repeat segment into copies
//   - render: Node-link drawing as DOT, SVG, PDF or PNG
//   - convert: JSON view of a graph
//   - cache: Manage cached statistics reports
//
// # Configuration
//
// Defaults come from a TOML file at --config or
// $XDG_CONFIG_HOME/gfakit/config.toml. Flags override it. Reports of info
// are cached under $XDG_CACHE_HOME/gfakit.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/buildinfo"
	"github.com/matzehuels/gfakit/pkg/gfa"
	"github.com/matzehuels/gfakit/pkg/graph"
	gfaio "github.com/matzehuels/gfakit/pkg/io"
)

// appName is the application name used for directories and display.
const appName = "gfakit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
	level      int
	strict     bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "gfakit inspects and rewrites GFA assembly graphs",
		Long:              `gfakit reads GFA 1 assembly graphs, validates them, reports statistics, compacts linear paths, resolves repeats and draws the graph.`,
		Version:           buildinfo.Resolved(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gfakit/config.toml)")
	flags.IntVarP(&c.level, "level", "l", int(gfa.LevelStrict), "validation level: 0 none, 1 deferred, 2 strict, 3 complete")
	flags.BoolVar(&c.strict, "strict-ordering", false, "reject references to segments defined later in the file")

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.compactCommand())
	root.AddCommand(c.multiplyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	registerCompletions(root)

	return root
}

// setup loads the configuration, applies flag overrides and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}

	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Validation.Level = c.level
	}
	if flags.Changed("strict-ordering") {
		cfg.Validation.StrictOrdering = c.strict
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	c.Config = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Graph I/O
// =============================================================================

func (c *CLI) graphOptions() graph.Options {
	return graph.Options{
		Level:          c.Config.Level(),
		StrictOrdering: c.Config.Validation.StrictOrdering,
		Observer:       newObserver(c.Logger),
	}
}

// loadGraph reads a GFA file, or standard input when path is "-".
func (c *CLI) loadGraph(ctx context.Context, cmd *cobra.Command, path string) (*graph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prog := newProgress(loggerFromContext(ctx))
	var (
		g   *graph.Graph
		err error
	)
	if path == "-" {
		g, err = gfaio.ReadGFA(cmd.InOrStdin(), c.graphOptions())
	} else {
		g, err = gfaio.ImportGFA(path, c.graphOptions())
	}
	if err != nil {
		return nil, err
	}
	prog.done("Loaded " + path)
	return g, nil
}

// writeGraph writes g as GFA to path, or to the command output when path is
// empty or "-".
func writeGraph(cmd *cobra.Command, g *graph.Graph, path string) error {
	if path == "" || path == "-" {
		return gfaio.WriteGFA(g, cmd.OutOrStdout())
	}
	if err := gfaio.ExportGFA(g, path); err != nil {
		return err
	}
	printFile(cmd.ErrOrStderr(), path)
	return nil
}

// writeBytes writes data to path, or to the command output when path is
// empty or "-".
func writeBytes(cmd *cobra.Command, data []byte, path string) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(cmd.ErrOrStderr(), path)
	return nil
}
