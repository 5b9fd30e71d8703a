package cli

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/pipeline"
	"github.com/matzehuels/profilecluster/pkg/roster"
)

func newTestPreview(t *testing.T, n int) *previewModel {
	t.Helper()
	m, err := newPreviewModel(roster.Placeholder(n), pipeline.Options{Height: 40}, 4)
	if err != nil {
		t.Fatalf("newPreviewModel() error: %v", err)
	}
	m.renderer = lipgloss.NewRenderer(&bytes.Buffer{})
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewResize(t *testing.T) {
	m := newTestPreview(t, 20)

	// 20 columns plus the border: 200px at 10px per column.
	m.Update(tea.WindowSizeMsg{Width: 22, Height: 10})
	if m.scene.Width != 200 {
		t.Fatalf("scene width = %v, want 200", m.scene.Width)
	}
	if len(m.scene.Items) != 6 || m.scene.Hidden() != 15 {
		t.Errorf("items = %d, hidden = %d, want 6, 15", len(m.scene.Items), m.scene.Hidden())
	}

	m.Update(tea.WindowSizeMsg{Width: 22, Height: 30})
	if hits, misses := m.view.MemoStats(); hits != 1 || misses != 1 {
		t.Errorf("memo hits, misses = %d, %d, want 1, 1", hits, misses)
	}

	m.Update(tea.WindowSizeMsg{Width: 102, Height: 10})
	if len(m.scene.Items) != 20 || m.scene.Hidden() != 0 {
		t.Errorf("wide window: items = %d, hidden = %d", len(m.scene.Items), m.scene.Hidden())
	}
}

func TestPreviewKeys(t *testing.T) {
	m := newTestPreview(t, 3)
	m.Update(tea.WindowSizeMsg{Width: 42, Height: 10})

	m.Update(key("+"))
	if m.count != 4 || len(m.roster.Profiles) != 4 || len(m.scene.Items) != 4 {
		t.Errorf("after +: count %d, profiles %d, items %d", m.count, len(m.roster.Profiles), len(m.scene.Items))
	}
	m.Update(key("-"))
	m.Update(key("-"))
	if m.count != 2 {
		t.Errorf("after -: count %d, want 2", m.count)
	}

	m.Update(key("]"))
	if got := m.view.Settings().Spacing; got != cluster.DefaultSpacing+spacingStep {
		t.Errorf("spacing = %v", got)
	}
	m.Update(key("m"))
	if got := m.view.Settings().MaxVisible; got != 1 {
		t.Errorf("max visible = %d, want 1", got)
	}
	if len(m.scene.Items) != 1 || !m.scene.Items[0].Slot.IsOverflow() {
		t.Errorf("max visible 1 should show only the badge, got %+v", m.scene.Items)
	}
	m.Update(key("M"))
	m.Update(key("M"))
	if got := m.view.Settings().MaxVisible; got != 0 {
		t.Errorf("max visible = %d, want 0", got)
	}

	m.Update(key("a"))
	if got := m.view.Settings().Alignment; got != cluster.AlignCenter {
		t.Errorf("alignment = %v, want center", got)
	}
	m.Update(key("d"))
	if got := m.view.Settings().StartFrom; got != cluster.StartFromEnd {
		t.Errorf("direction = %v, want end", got)
	}
	for _, it := range m.scene.Items {
		if !it.Mirrored {
			t.Errorf("item %v not mirrored", it.Slot)
		}
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestPreviewCountCappedByRosterFile(t *testing.T) {
	ros := roster.New(roster.Profile{Name: "Ada"}, roster.Profile{Name: "Grace"})
	m, err := newPreviewModel(ros, pipeline.Options{Roster: "team.toml", Height: 40}, 4)
	if err != nil {
		t.Fatal(err)
	}
	m.Update(key("+"))
	if m.count != 2 {
		t.Errorf("count = %d, want capped at 2", m.count)
	}
}

func TestPreviewView(t *testing.T) {
	m := newTestPreview(t, 12)
	m.Update(tea.WindowSizeMsg{Width: 22, Height: 10})

	out := m.View()
	for _, want := range []string{"+7", "visible 6/6", "hidden 7", "align start"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}
}

func TestNextAlignment(t *testing.T) {
	a := cluster.AlignStart
	seen := map[cluster.Alignment]bool{}
	for range alignmentCycle {
		seen[a] = true
		a = nextAlignment(a)
	}
	if a != cluster.AlignStart || len(seen) != 4 {
		t.Errorf("alignment cycle visited %v, ended at %v", seen, a)
	}
}
