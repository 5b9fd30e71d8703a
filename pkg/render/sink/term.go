package sink

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TermOption configures terminal rendering via [RenderTerminal].
type TermOption func(*termRenderer)

type termRenderer struct {
	cellsPerItem int
	renderer     *lipgloss.Renderer
	frame        bool
}

// WithCellsPerItem sets how many terminal columns one slot spans (default 4).
func WithCellsPerItem(n int) TermOption {
	return func(r *termRenderer) { r.cellsPerItem = max(n, 1) }
}

// WithTermRenderer renders with a specific lipgloss renderer, e.g. one bound
// to the output the text is written to.
func WithTermRenderer(lr *lipgloss.Renderer) TermOption {
	return func(r *termRenderer) { r.renderer = lr }
}

// WithContainerFrame draws the container bounds around the row.
func WithContainerFrame() TermOption { return func(r *termRenderer) { r.frame = true } }

// MaxTermColumns caps the line width; wider containers are clipped.
const MaxTermColumns = 1024

// clampCols rounds v to a column count in [0, limit].
func clampCols(v float64, limit int) int {
	v = math.Round(v)
	switch {
	case v >= float64(limit):
		return limit
	case v > 0:
		return int(v)
	}
	return 0
}

type cell struct {
	r     rune
	owner int
}

// RenderTerminal draws the scene as a single line of colored text. The
// container is scaled so one slot spans a fixed number of columns; items
// are painted in draw order and clipped to the container.
func RenderTerminal(s Scene, opts ...TermOption) string {
	r := termRenderer{cellsPerItem: 4}
	for _, opt := range opts {
		opt(&r)
	}
	if r.renderer == nil {
		r.renderer = lipgloss.DefaultRenderer()
	}

	unit := 0.0
	if s.ItemSize > 0 {
		unit = s.ItemSize / float64(r.cellsPerItem)
	}
	cols := 0
	if unit > 0 {
		cols = clampCols(s.Width/unit, MaxTermColumns)
	}

	cells := make([]cell, cols)
	for i := range cells {
		cells[i] = cell{r: ' ', owner: -1}
	}
	for idx, it := range s.Items {
		if cols == 0 {
			break
		}
		pos := math.Round(it.X / unit)
		width := max(clampCols(it.Width/unit, cols), 1)
		// Skip items entirely outside the line, including NaN positions.
		if !(pos < float64(cols)) || pos+float64(width) <= 0 {
			continue
		}
		paint(cells, idx, int(pos), width, []rune(it.Visual.Text))
	}

	line := r.line(s, cells)
	if !r.frame {
		return line + "\n"
	}
	return r.renderer.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(line) + "\n"
}

func paint(cells []cell, owner, start, width int, text []rune) {
	textStart := start + (width-len(text))/2
	for c := start; c < start+width; c++ {
		if c < 0 || c >= len(cells) {
			continue
		}
		ch := ' '
		if t := c - textStart; t >= 0 && t < len(text) {
			ch = text[t]
		}
		cells[c] = cell{r: ch, owner: owner}
	}
}

func (r termRenderer) line(s Scene, cells []cell) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run strings.Builder
		for j < len(cells) && cells[j].owner == cells[i].owner {
			run.WriteRune(cells[j].r)
			j++
		}
		if owner := cells[i].owner; owner >= 0 {
			b.WriteString(r.chipStyle(s.Items[owner]).Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		i = j
	}
	return b.String()
}

func (r termRenderer) chipStyle(it Item) lipgloss.Style {
	st := r.renderer.NewStyle()
	if it.Visual.Fill != "" {
		st = st.Background(lipgloss.Color(it.Visual.Fill))
	}
	if it.Visual.TextColor != "" {
		st = st.Foreground(lipgloss.Color(it.Visual.TextColor))
	}
	return st.Bold(it.Visual.Overflow)
}
