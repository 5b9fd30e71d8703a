package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/pipeline"
	"github.com/matzehuels/profilecluster/pkg/render/sink"
)

// layoutCommand creates the layout command, which prints the computed slots.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [roster]",
		Short: "Print the slots of an avatar row",
		Long: `Print the slots of an avatar row.

The roster is a TOML or JSON file listing profiles and, optionally, a [cluster]
table with layout settings. Without a roster, placeholder profiles are used.
Flags given on the command line override the roster's settings.`,
		Example: `  profilecluster layout team.toml -W 320
  profilecluster layout -n 20 --spacing -12 --align center`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Roster: rosterArg(args), Logger: c.Logger}
			flags.apply(cmd, &opts)
			return c.runLayout(cmd.Context(), opts, flags.noCache)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	ros, err := pipeline.Load(ctx, opts)
	if err != nil {
		return err
	}

	scene, cacheHit, err := runner.LayoutWithCacheInfo(ctx, ros, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	title := ros.Title
	if title == "" {
		title = opts.Roster
	}
	if title == "" {
		title = "placeholder roster"
	}
	fmt.Println(StyleTitle.Render(title))
	printKeyValue("Container", fmt.Sprintf("%s × %s", formatFloat(scene.Width), formatFloat(scene.Height)))
	printKeyValue("Visible", strconv.Itoa(scene.VisibleCount))
	printKeyValue("Content", formatFloat(scene.ContentWidth))
	printKeyValue("Order", readingOrder(scene))
	printStats(ros.ItemCount(), scene.Hidden(), cacheHit)
	printNewline()
	fmt.Println(slotTable(scene, ros.Names()))
	fmt.Print(sink.RenderTerminal(scene, sink.WithContainerFrame()))
	return nil
}

// readingOrder lists the slots left to right, which differs from draw order
// when the row starts from the end.
func readingOrder(scene sink.Scene) string {
	frames := make([]cluster.Frame, len(scene.Items))
	for i, it := range scene.Items {
		frames[i] = it.Frame
	}
	parts := make([]string, 0, len(frames))
	for _, f := range cluster.VisualFrames(frames) {
		parts = append(parts, f.Slot.String())
	}
	return strings.Join(parts, " ")
}

// slotTable lists the slots in draw order.
func slotTable(scene sink.Scene, names []string) string {
	rows := make([][]string, 0, len(scene.Items))
	for i, it := range scene.Items {
		label := it.Visual.Label
		if !it.Slot.IsOverflow() && it.Slot.Index < len(names) && names[it.Slot.Index] != "" {
			label = names[it.Slot.Index]
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			it.Slot.String(),
			label,
			formatFloat(it.X),
			formatFloat(it.Width),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Slot", "Label", "X", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			st := lipgloss.NewStyle().Padding(0, 1)
			if row >= 0 && row < len(scene.Items) && scene.Items[row].Slot.IsOverflow() {
				return st.Foreground(colorBadge).Bold(true)
			}
			if col >= 3 {
				return st.Foreground(colorGray)
			}
			return st
		})
	return t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
