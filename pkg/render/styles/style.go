package styles

import "bytes"

// Style defines the visual appearance of an avatar row.
type Style interface {
	// RenderDefs writes SVG <defs> content shared by every shape.
	RenderDefs(buf *bytes.Buffer, d Defs)
	// RenderAvatar writes the SVG for a single avatar.
	RenderAvatar(buf *bytes.Buffer, s Shape)
	// RenderOverflow writes the SVG for the overflow badge.
	RenderOverflow(buf *bytes.Buffer, s Shape)
}

// Chip is what the pipeline renders for one slot. It carries no geometry.
type Chip struct {
	Label     string `json:"label"`           // Full name, or "+N" for the badge
	Text      string `json:"text"`            // Drawn text: initials or "+N"
	Fill      string `json:"fill"`            // Background color
	TextColor string `json:"text_color"`      // Foreground color
	Image     string `json:"image,omitempty"` // Optional image URL
	Overflow  bool   `json:"overflow,omitempty"`
	Count     int    `json:"count,omitempty"` // Items folded into the badge
}

// Shape is a chip placed in the scene.
type Shape struct {
	Chip
	ID     string  // Unique element id
	X, Y   float64 // Top-left corner
	Size   float64 // Edge of the square slot
	CX, CY float64 // Center
	Filter string  // Filter id to apply, empty for none
}

// Radius returns the circle radius for the shape.
func (s Shape) Radius() float64 { return s.Size / 2 }

// Defs describes the shared definitions a row needs.
type Defs struct {
	Prefix string  // Id prefix keeping several rows apart in one document
	Shadow float64 // Shadow level, 0 for none
	Clips  []Shape // Shapes needing a circular clip path for their image
}
