package cluster

import (
	"cmp"
	"slices"
)

// ResolveVisualOrder returns slots in left-to-right visual order.
//
// Logical order is always ascending. A row that starts from the end is
// mirrored as a whole while each slot keeps its content upright, so the
// visual order is simply the reverse. The input is never modified.
func ResolveVisualOrder(slots []Slot, startFrom Direction) []Slot {
	out := make([]Slot, len(slots))
	if startFrom != StartFromEnd {
		copy(out, slots)
		return out
	}
	for i, s := range slots {
		out[len(slots)-1-i] = s
	}
	return out
}

// Frame is a slot positioned inside the container.
type Frame struct {
	Slot Slot `json:"slot"`

	// Position is the slot's logical position in the row (0 = first).
	Position int `json:"position"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Mirrored is set when the row starts from the end.
	Mirrored bool `json:"mirrored,omitempty"`
}

// CenterX returns the horizontal center of the frame.
func (f Frame) CenterX() float64 { return f.X + f.Width/2 }

// CenterY returns the vertical center of the frame.
func (f Frame) CenterY() float64 { return f.Y + f.Height/2 }

// RowWidth returns the width occupied by n slots of size separated by spacing.
func RowWidth(n int, size, spacing float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*size + float64(n-1)*spacing
}

// Place positions slots inside the container described by cfg.
//
// Frames come back in draw order, which is logical order: when slots
// overlap, later slots paint over earlier ones in either direction.
func Place(cfg LayoutConfig, slots []Slot) []Frame {
	size := cfg.EffectiveItemSize()
	n := len(slots)
	if n == 0 || !(size > 0) {
		return nil
	}

	gap := cfg.Spacing
	var x0 float64
	switch cfg.Alignment {
	case AlignEnd:
		x0 = cfg.ContainerWidth - RowWidth(n, size, gap)
	case AlignCenter:
		x0 = (cfg.ContainerWidth - RowWidth(n, size, gap)) / 2
	case AlignJustify:
		if n > 1 {
			gap = (cfg.ContainerWidth - float64(n)*size) / float64(n-1)
		}
	}

	mirrored := cfg.StartFrom == StartFromEnd
	y := (cfg.ContainerHeight - size) / 2
	frames := make([]Frame, n)
	for i, s := range slots {
		p := i
		if mirrored {
			p = n - 1 - i
		}
		frames[i] = Frame{
			Slot:     s,
			Position: i,
			X:        x0 + float64(p)*(size+gap),
			Y:        y,
			Width:    size,
			Height:   size,
			Mirrored: mirrored,
		}
	}
	return frames
}

// VisualFrames returns frames sorted left to right.
func VisualFrames(frames []Frame) []Frame {
	out := make([]Frame, len(frames))
	copy(out, frames)
	slices.SortStableFunc(out, func(a, b Frame) int {
		return cmp.Compare(a.X, b.X)
	})
	return out
}
