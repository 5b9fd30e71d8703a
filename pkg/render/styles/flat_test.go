package styles

import (
	"bytes"
	"strings"
	"testing"
)

func shape(chip Chip) Shape {
	return Shape{Chip: chip, ID: "row-0", X: 10, Y: 0, Size: 40, CX: 30, CY: 20}
}

func TestFlatRenderDefs(t *testing.T) {
	var buf bytes.Buffer
	Flat{}.RenderDefs(&buf, Defs{Prefix: "row"})
	if buf.Len() != 0 {
		t.Errorf("RenderDefs() without shadow or clips wrote %q", buf.String())
	}

	buf.Reset()
	Flat{}.RenderDefs(&buf, Defs{
		Prefix: "row",
		Shadow: 4,
		Clips:  []Shape{shape(Chip{Image: "https://example.com/a.png"})},
	})
	out := buf.String()
	for _, want := range []string{
		`<filter id="row-shadow"`,
		`dx="2.00" dy="2.00"`,
		`flood-opacity="0.40"`,
		`<clipPath id="row-0-clip"><circle cx="30.00" cy="20.00" r="20.00"/>`,
		`</defs>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderDefs() missing %q\nGot: %s", want, out)
		}
	}
}

func TestFlatRenderAvatar(t *testing.T) {
	tests := []struct {
		name     string
		chip     Chip
		filter   string
		contains []string
		excludes []string
	}{
		{
			name: "initials",
			chip: Chip{Label: "Ada Lovelace", Text: "AL", Fill: "#B3EBF2", TextColor: AvatarText},
			contains: []string{
				`<g id="row-0" class="avatar">`,
				`<circle cx="30.00" cy="20.00" r="20.00" fill="#B3EBF2"/>`,
				`font-size="16.00"`,
				`>AL</text>`,
				`<title>Ada Lovelace</title>`,
			},
			excludes: []string{"<image", "filter="},
		},
		{
			name: "image replaces initials",
			chip: Chip{Text: "AL", Fill: "#B3EBF2", Image: "https://example.com/a.png?x=1&y=2"},
			contains: []string{
				`<image href="https://example.com/a.png?x=1&amp;y=2"`,
				`clip-path="url(#row-0-clip)"`,
			},
			excludes: []string{"</text>"},
		},
		{
			name:     "shadow filter",
			chip:     Chip{Text: "K", Fill: "#A5D6A7"},
			filter:   "row-shadow",
			contains: []string{`filter="url(#row-shadow)"`},
		},
		{
			name:     "escaped label",
			chip:     Chip{Label: "<b>", Text: "B"},
			contains: []string{`<title>&lt;b&gt;</title>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shape(tt.chip)
			s.Filter = tt.filter
			var buf bytes.Buffer
			Flat{}.RenderAvatar(&buf, s)
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("RenderAvatar() missing %q\nGot: %s", want, out)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("RenderAvatar() should not contain %q\nGot: %s", bad, out)
				}
			}
		})
	}
}

func TestFlatRenderOverflow(t *testing.T) {
	var buf bytes.Buffer
	Flat{Stroke: "#fff"}.RenderOverflow(&buf, shape(Chip{
		Label: "+15", Text: "+15", Fill: BadgeFill, TextColor: BadgeTextColor, Overflow: true, Count: 15,
	}))
	out := buf.String()
	for _, want := range []string{
		`class="overflow"`,
		`fill="#7E57C2" stroke="#fff"`,
		`font-weight="bold"`,
		`fill="#FFFFFF">+15</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderOverflow() missing %q\nGot: %s", want, out)
		}
	}
}
