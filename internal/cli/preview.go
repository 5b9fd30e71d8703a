package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/profilecluster/pkg/cluster"
	pcerrors "github.com/matzehuels/profilecluster/pkg/errors"
	"github.com/matzehuels/profilecluster/pkg/pipeline"
	"github.com/matzehuels/profilecluster/pkg/render/sink"
	"github.com/matzehuels/profilecluster/pkg/render/styles"
	"github.com/matzehuels/profilecluster/pkg/roster"
)

const (
	spacingStep = 2.0
	// previewChrome is the border around the row.
	previewChrome = 2
)

var alignmentCycle = []cluster.Alignment{
	cluster.AlignStart, cluster.AlignCenter, cluster.AlignEnd, cluster.AlignJustify,
}

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags   layoutFlags
		columns int
	)

	cmd := &cobra.Command{
		Use:   "preview [roster]",
		Short: "Preview an avatar row that follows the terminal width",
		Long: `Preview an avatar row interactively.

The row fills the terminal width; resize the window to watch avatars fold
into the "+N" badge. Keys:

  + / -   add or remove a profile     [ / ]   tighten or loosen spacing
  m / M   raise or lower max visible  a       cycle alignment
  d       flip direction              r       reload the roster
  q       quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Roster: rosterArg(args), Logger: c.Logger}
			flags.apply(cmd, &opts)
			return c.runPreview(cmd.Context(), opts, columns)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&columns, "columns", pipeline.DefaultColumns, "terminal columns per avatar")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options, columns int) error {
	ros, err := pipeline.Load(ctx, opts)
	if err != nil {
		return err
	}
	m, err := newPreviewModel(ros, opts, columns)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("preview: %w", err)
	}
	hits, misses := m.view.MemoStats()
	loggerFromContext(ctx).Debug("preview closed", "recomputed", misses, "reused", hits)
	return nil
}

// previewModel is the bubbletea model behind the preview command. The
// terminal width, scaled by the cell size, is the container width.
type previewModel struct {
	opts    pipeline.Options
	roster  *roster.Roster
	count   int
	columns int
	height  float64

	view  *cluster.View[styles.Chip]
	scene sink.Scene
	cols  int

	renderer *lipgloss.Renderer
	status   string
}

func newPreviewModel(ros *roster.Roster, opts pipeline.Options, columns int) (*previewModel, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	settings, err := opts.Settings(ros)
	if err != nil {
		return nil, err
	}

	m := &previewModel{
		opts:     opts,
		roster:   ros,
		count:    ros.ItemCount(),
		columns:  max(columns, 1),
		height:   opts.Height,
		renderer: lipgloss.DefaultRenderer(),
	}
	src := cluster.ItemCountFunc(func() int { return m.count })
	m.view, err = cluster.NewView[styles.Chip](src, pipeline.ChipRenderer{Roster: ros}, settings)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *previewModel) Init() tea.Cmd { return nil }

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width-previewChrome, 0)
		m.relayout()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *previewModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.view.Settings()
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case "+", "=":
		m.setCount(m.count + 1)
	case "-", "_":
		m.setCount(m.count - 1)
	case "[":
		s.Spacing -= spacingStep
		m.apply(s)
	case "]":
		s.Spacing += spacingStep
		m.apply(s)
	case "m":
		s.MaxVisible++
		m.apply(s)
	case "M":
		s.MaxVisible = max(s.MaxVisible-1, 0)
		m.apply(s)
	case "a":
		s.Alignment = nextAlignment(s.Alignment)
		m.apply(s)
	case "d":
		if s.StartFrom == cluster.StartFromStart {
			s.StartFrom = cluster.StartFromEnd
		} else {
			s.StartFrom = cluster.StartFromStart
		}
		m.apply(s)
	case "r":
		m.reload()
	}
	return nil
}

// setCount changes the number of profiles. Placeholder rosters grow on
// demand; a roster file caps the count at its length.
func (m *previewModel) setCount(n int) {
	n = max(n, 0)
	if m.opts.Roster == "" {
		if n > len(m.roster.Profiles) {
			m.roster.Profiles = roster.Placeholder(n).Profiles
		}
	} else {
		n = min(n, len(m.roster.Profiles))
	}
	if n == m.count {
		return
	}
	m.count = n
	m.view.Reload()
	m.relayout()
}

func (m *previewModel) apply(s cluster.Settings) {
	if err := m.view.SetSettings(s); err != nil {
		m.status = pcerrors.UserMessage(err)
		return
	}
	m.relayout()
}

// reload re-reads the roster file, keeping the live settings.
func (m *previewModel) reload() {
	if m.opts.Roster != "" {
		fresh, err := roster.Load(m.opts.Roster)
		if err != nil {
			m.status = err.Error()
			return
		}
		m.roster.Profiles = fresh.Profiles
		m.count = fresh.ItemCount()
	}
	m.status = "reloaded"
	m.view.Reload()
	m.relayout()
}

// pixelsPerColumn converts terminal columns to container pixels.
func (m *previewModel) pixelsPerColumn() float64 {
	size := m.height
	if s := m.view.Settings().ItemSize; s != nil {
		size = *s
	}
	return size / float64(m.columns)
}

func (m *previewModel) relayout() {
	width := float64(m.cols) * m.pixelsPerColumn()
	placed, fresh := m.view.Resize(width, m.height)
	if !fresh {
		return
	}
	s := m.view.Settings()
	cfg := s.Config(width, m.height, m.count)
	m.scene = sink.NewScene(cfg, m.view.Result(), placed, s.Shadow)
}

func (m *previewModel) View() string {
	var b strings.Builder
	s := m.view.Settings()
	res := m.view.Result()

	b.WriteString(StyleTitle.Render("profilecluster preview"))
	b.WriteString("\n\n")
	b.WriteString(sink.RenderTerminal(m.scene,
		sink.WithCellsPerItem(m.columns),
		sink.WithContainerFrame(),
		sink.WithTermRenderer(m.renderer)))
	b.WriteString("\n")

	hits, misses := m.view.MemoStats()
	fmt.Fprintf(&b, "%s %s  %s %d/%d  %s %d  %s %s\n",
		StyleDim.Render("width"), StyleValue.Render(formatFloat(m.scene.Width)),
		StyleDim.Render("visible"), len(m.scene.Items), res.VisibleCount,
		StyleDim.Render("hidden"), m.scene.Hidden(),
		StyleDim.Render("content"), StyleValue.Render(formatFloat(res.ContentWidth)))
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s  %s %s\n",
		StyleDim.Render("spacing"), StyleValue.Render(formatFloat(s.Spacing)),
		StyleDim.Render("max"), StyleValue.Render(maxVisibleLabel(s.MaxVisible)),
		StyleDim.Render("align"), StyleValue.Render(s.Alignment.String()),
		StyleDim.Render("from"), StyleValue.Render(s.StartFrom.String()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("profiles %d · recomputed %d · reused %d", m.count, misses, hits)))
	if m.status != "" {
		b.WriteString("  " + StyleWarning.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("+/- profiles  [/] spacing  m/M max  a align  d direction  r reload  q quit"))
	return b.String()
}

func nextAlignment(a cluster.Alignment) cluster.Alignment {
	for i, v := range alignmentCycle {
		if v == a {
			return alignmentCycle[(i+1)%len(alignmentCycle)]
		}
	}
	return cluster.AlignStart
}

func maxVisibleLabel(n int) string {
	if n == 0 {
		return "auto"
	}
	return fmt.Sprint(n)
}
