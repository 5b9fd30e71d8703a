package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode"
)

const fontSizeRatio = 2.5

// FontSize returns the text size used inside a slot of the given edge.
func FontSize(size float64) float64 { return size / fontSizeRatio }

// Initials returns up to two uppercase initials for name: the first letters
// of the first and last words.
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.'
	})
	if len(words) == 0 {
		return ""
	}
	first := firstLetter(words[0])
	if len(words) == 1 {
		return first
	}
	return first + firstLetter(words[len(words)-1])
}

func firstLetter(w string) string {
	for _, r := range w {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// BadgeText returns the badge label for more hidden items.
func BadgeText(more int) string { return fmt.Sprintf("+%d", more) }

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
