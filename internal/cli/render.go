package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/profilecluster/pkg/pipeline"
	"github.com/matzehuels/profilecluster/pkg/render"
)

// defaultBase names output files when no roster is given.
const defaultBase = "cluster"

// renderFlags holds the render-only flags.
type renderFlags struct {
	output     string
	formats    string
	style      string
	scale      float64
	background string
	columns    int
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags layoutFlags
		rf    renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [roster]",
		Short: "Render an avatar row to SVG, PNG, PDF, JSON or the terminal",
		Long: `Render an avatar row.

Output files are named after the roster (team.toml → team.svg) unless -o is
given. With several formats, -o is used as the base name. The term format is
printed to stdout. PNG and PDF need rsvg-convert on the PATH.

Rendered artifacts are cached locally; use --refresh to recompute.`,
		Example: `  profilecluster render team.toml -f svg,png -W 320
  profilecluster render -n 30 -f term --align center`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Roster:     rosterArg(args),
				Formats:    pipeline.ParseFormats(rf.formats),
				Style:      rf.style,
				Scale:      rf.scale,
				Background: rf.background,
				Columns:    rf.columns,
				Logger:     c.Logger,
			}
			flags.apply(cmd, &opts)
			return c.runRender(cmd.Context(), opts, rf.output, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&rf.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&rf.formats, "format", "f", pipeline.FormatSVG, "output format(s): svg, png, pdf, json, term (comma-separated)")
	cmd.Flags().StringVar(&rf.style, "style", pipeline.DefaultStyle, "visual style: flat, ring")
	cmd.Flags().Float64Var(&rf.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&rf.background, "background", "", "background color, e.g. #ffffff (default: transparent)")
	cmd.Flags().IntVar(&rf.columns, "columns", pipeline.DefaultColumns, "terminal columns per avatar (term format)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if needsConverter(opts.Formats) && !render.Available() {
		printWarning("rsvg-convert not found; PNG and PDF output will fail")
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spin := startSpinner(ctx, "Rendering")
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spin.fail("Render failed")
		return err
	}
	spin.stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := outputPaths(opts.Roster, output, opts.Formats)
	var written []string
	for _, format := range opts.Formats {
		data := result.Artifacts[format]
		path := paths[format]
		if path == "" {
			os.Stdout.Write(data)
			continue
		}
		if err := writeFile(path, data); err != nil {
			return err
		}
		written = append(written, path)
	}
	if len(written) == 0 {
		return nil
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", len(written)))
	printSuccess("Render complete")
	for _, p := range written {
		printFile(p)
	}
	printStats(result.Stats.Profiles, result.Stats.Hidden, result.CacheInfo.RenderHit)
	if result.Stats.Hidden > 0 {
		printNewline()
		printNextStep("Preview", appName+" preview "+opts.Roster)
	}
	return nil
}

// outputPaths decides where each format is written. An empty path means
// stdout. A single format with -o writes exactly there; "-" is stdout.
// Otherwise files are named base.format, where base comes from -o (minus a
// known format extension) or the roster file name.
func outputPaths(rosterPath, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		if output != "-" {
			paths[formats[0]] = output
		}
		return paths
	}

	base := basePath(output, rosterPath)
	for _, f := range formats {
		if f == pipeline.FormatTerm || output == "-" {
			continue
		}
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the output base from -o or the roster path.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func needsConverter(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatPNG) || slices.Contains(formats, pipeline.FormatPDF)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
