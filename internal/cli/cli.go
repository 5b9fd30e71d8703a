// Package cli implements the profilecluster command-line interface.
//
// The commands lay out avatar rows from roster files (or placeholder
// profiles), print their slots, render them to files and preview them
// interactively in the terminal. The CLI is built with cobra and logs with
// charmbracelet/log; --verbose switches to debug output, which also traces
// pipeline and cache events.
//
// # Commands
//
//   - layout: print the slots of a row and where they sit
//   - render: write SVG, PNG, PDF, JSON or terminal output
//   - preview: interactive row that follows the terminal width
//   - cache: manage the local artifact cache
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/profilecluster/pkg/buildinfo"
	"github.com/matzehuels/profilecluster/pkg/cache"
	"github.com/matzehuels/profilecluster/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "profilecluster"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// cacheDir overrides the per-user cache directory; tests point it at a
	// temp dir.
	cacheDir string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level pipeline and cache
// events are logged too.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		registerLogHooks(c.Logger)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "profilecluster lays out rows of overlapping avatars",
		Long: `profilecluster computes how many avatars of a group fit in a row of a given
width, folds the rest into a "+N" badge, and renders the row to SVG, PNG, PDF,
JSON or the terminal.`,
		Version:      buildinfo.Resolved(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped to
// the build so upgrades never read stale entries.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope()+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.resolveCacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func (c *CLI) resolveCacheDir() (string, error) {
	if c.cacheDir != "" {
		return c.cacheDir, nil
	}
	return cache.DefaultDir()
}
