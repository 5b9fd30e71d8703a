package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/profilecluster/pkg/render/styles"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")

	// colorBadge matches the overflow badge fill.
	colorBadge = lipgloss.Color(styles.BadgeFill)
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand  = lipgloss.NewStyle().Foreground(colorBlue)
)

// marker is the colored glyph that leads a status line.
type marker struct {
	glyph string
	style lipgloss.Style
	body  *lipgloss.Style
}

var (
	markSuccess = marker{glyph: "✓", style: lipgloss.NewStyle().Foreground(colorGreen)}
	markError   = marker{glyph: "✗", style: lipgloss.NewStyle().Foreground(colorRed)}
	markWarning = marker{glyph: "!", style: lipgloss.NewStyle().Foreground(colorYellow), body: &StyleWarning}
	markInfo    = marker{glyph: "›", style: lipgloss.NewStyle().Foreground(colorGray)}
)

const (
	iconArrow  = "→"
	iconCached = "cached"
	iconFresh  = "fresh"
)

func (m marker) println(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if m.body != nil {
		text = m.body.Render(text)
	}
	fmt.Println(m.style.Render(m.glyph) + " " + text)
}

func printSuccess(format string, args ...any) { markSuccess.println(format, args...) }
func printError(format string, args ...any)   { markError.println(format, args...) }
func printWarning(format string, args ...any) { markWarning.println(format, args...) }
func printInfo(format string, args ...any)    { markInfo.println(format, args...) }

// printDetail prints an indented dim line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints roster statistics on one line.
func printStats(profiles, hidden int, cached bool) {
	parts := []string{fmt.Sprintf("%d profiles", profiles)}
	if hidden > 0 {
		parts = append(parts, fmt.Sprintf("%d hidden", hidden))
	}
	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")) + StyleDim.Render(" · ") + cacheStatus(cached))
}

func cacheStatus(cached bool) string {
	if cached {
		return styleCached.Render(iconCached)
	}
	return styleComputed.Render(iconFresh)
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
