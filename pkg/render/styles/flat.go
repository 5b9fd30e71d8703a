package styles

import (
	"bytes"
	"fmt"
)

// Flat draws avatars as solid circles. Images are clipped to the circle and
// replace the initials.
type Flat struct {
	// Stroke is an optional ring drawn around every shape.
	Stroke string
}

func (f Flat) RenderDefs(buf *bytes.Buffer, d Defs) {
	if d.Shadow == 0 && len(d.Clips) == 0 {
		return
	}
	buf.WriteString("  <defs>\n")
	if d.Shadow != 0 {
		off, blur, opacity := ShadowParams(d.Shadow)
		fmt.Fprintf(buf, `    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+"\n", EscapeXML(ShadowID(d.Prefix)))
		fmt.Fprintf(buf, `      <feDropShadow dx="%.2f" dy="%.2f" stdDeviation="%.2f" flood-color="%s" flood-opacity="%.2f"/>`+"\n",
			off, off, blur/2, ShadowColor, opacity)
		buf.WriteString("    </filter>\n")
	}
	for _, s := range d.Clips {
		fmt.Fprintf(buf, `    <clipPath id="%s"><circle cx="%.2f" cy="%.2f" r="%.2f"/></clipPath>`+"\n",
			EscapeXML(ClipID(s.ID)), s.CX, s.CY, s.Radius())
	}
	buf.WriteString("  </defs>\n")
}

func (f Flat) RenderAvatar(buf *bytes.Buffer, s Shape) {
	f.openGroup(buf, s, "avatar")
	f.circle(buf, s, s.Fill)
	if s.Image != "" {
		fmt.Fprintf(buf, `    <image href="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" clip-path="url(#%s)" preserveAspectRatio="xMidYMid slice"/>`+"\n",
			EscapeXML(s.Image), s.X, s.Y, s.Size, s.Size, EscapeXML(ClipID(s.ID)))
	} else if s.Text != "" {
		f.text(buf, s, "normal")
	}
	if s.Label != "" {
		fmt.Fprintf(buf, "    <title>%s</title>\n", EscapeXML(s.Label))
	}
	buf.WriteString("  </g>\n")
}

func (f Flat) RenderOverflow(buf *bytes.Buffer, s Shape) {
	f.openGroup(buf, s, "overflow")
	f.circle(buf, s, s.Fill)
	f.text(buf, s, "bold")
	buf.WriteString("  </g>\n")
}

func (f Flat) openGroup(buf *bytes.Buffer, s Shape, class string) {
	fmt.Fprintf(buf, `  <g id="%s" class="%s"`, EscapeXML(s.ID), class)
	if s.Filter != "" {
		fmt.Fprintf(buf, ` filter="url(#%s)"`, EscapeXML(s.Filter))
	}
	buf.WriteString(">\n")
}

func (f Flat) circle(buf *bytes.Buffer, s Shape, fill string) {
	fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"`, s.CX, s.CY, s.Radius(), EscapeXML(fill))
	if f.Stroke != "" {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="1"`, EscapeXML(f.Stroke))
	}
	buf.WriteString("/>\n")
}

func (f Flat) text(buf *bytes.Buffer, s Shape, weight string) {
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="Helvetica, Arial, sans-serif" font-size="%.2f" font-weight="%s" fill="%s">%s</text>`+"\n",
		s.CX, s.CY, FontSize(s.Size), weight, EscapeXML(s.TextColor), EscapeXML(s.Text))
}

// ShadowID returns the shadow filter id for a row prefix.
func ShadowID(prefix string) string { return prefix + "-shadow" }

// ClipID returns the clip path id for a shape id.
func ClipID(shapeID string) string { return shapeID + "-clip" }
