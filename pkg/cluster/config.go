package cluster

import (
	"strings"

	"github.com/matzehuels/profilecluster/pkg/errors"
)

// Alignment anchors the rendered row inside its container.
// It only positions the row; it never changes how many slots are computed.
type Alignment int

const (
	AlignStart   Alignment = iota // leading edge, row may run past the trailing edge
	AlignEnd                      // trailing edge
	AlignCenter                   // centered
	AlignJustify                  // both edges; spare width becomes inter-item gaps
)

var alignmentNames = map[Alignment]string{
	AlignStart:   "start",
	AlignEnd:     "end",
	AlignCenter:  "center",
	AlignJustify: "justify",
}

// String returns the canonical name of the alignment.
func (a Alignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return "invalid"
}

// Valid reports whether a is one of the enumerated alignments.
func (a Alignment) Valid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// ParseAlignment parses an alignment name. The names "left" and "right"
// are accepted as aliases for start and end.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left":
		return AlignStart, nil
	case "end", "right":
		return AlignEnd, nil
	case "center", "centre":
		return AlignCenter, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignStart, errors.New(errors.ErrCodeInvalidAlignment,
		"invalid alignment: %q (must be 'start', 'end', 'center', or 'justify')", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidAlignment, "invalid alignment value %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Direction is the visual edge the row starts from.
type Direction int

const (
	StartFromStart Direction = iota // first item on the leading edge
	StartFromEnd                    // row mirrored; first item on the trailing edge
)

// String returns the canonical name of the direction.
func (d Direction) String() string {
	switch d {
	case StartFromStart:
		return "start"
	case StartFromEnd:
		return "end"
	}
	return "invalid"
}

// Valid reports whether d is one of the enumerated directions.
func (d Direction) Valid() bool {
	return d == StartFromStart || d == StartFromEnd
}

// ParseDirection parses a direction name ("start"/"left" or "end"/"right").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left":
		return StartFromStart, nil
	case "end", "right":
		return StartFromEnd, nil
	}
	return StartFromStart, errors.New(errors.ErrCodeInvalidDirection,
		"invalid direction: %q (must be 'start' or 'end')", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidDirection, "invalid direction value %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// LayoutConfig holds every input of one slot computation. It is a plain
// value: build a fresh one whenever geometry or the item count changes.
type LayoutConfig struct {
	ContainerWidth  float64
	ContainerHeight float64

	// ItemSize overrides the square slot edge. Nil means ContainerHeight.
	ItemSize *float64

	// Spacing between neighbouring slots. Negative values overlap them.
	Spacing float64

	ItemCount int

	// MaxVisible forces the slot count when > 0, regardless of width.
	MaxVisible int

	Alignment Alignment
	StartFrom Direction
}

// Option adjusts a LayoutConfig built by NewLayoutConfig.
type Option func(*LayoutConfig)

// WithItemSize overrides the slot edge length.
func WithItemSize(size float64) Option {
	return func(c *LayoutConfig) { c.ItemSize = Size(size) }
}

// WithSpacing sets the gap between slots.
func WithSpacing(spacing float64) Option {
	return func(c *LayoutConfig) { c.Spacing = spacing }
}

// WithMaxVisible forces a fixed slot count.
func WithMaxVisible(n int) Option {
	return func(c *LayoutConfig) { c.MaxVisible = n }
}

// WithAlignment sets the row alignment.
func WithAlignment(a Alignment) Option {
	return func(c *LayoutConfig) { c.Alignment = a }
}

// WithStartFrom sets the visual start edge.
func WithStartFrom(d Direction) Option {
	return func(c *LayoutConfig) { c.StartFrom = d }
}

// NewLayoutConfig builds a validated config for a container of the given
// size holding count items.
func NewLayoutConfig(width, height float64, count int, opts ...Option) (LayoutConfig, error) {
	c := LayoutConfig{
		ContainerWidth:  width,
		ContainerHeight: height,
		ItemCount:       count,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return LayoutConfig{}, err
	}
	return c, nil
}

// Size returns a pointer to s, for populating LayoutConfig.ItemSize.
func Size(s float64) *float64 { return &s }

// Validate rejects caller programming errors: enum values outside their
// sets and negative counts. Degenerate geometry is not an error; it
// produces an empty layout instead.
func (c LayoutConfig) Validate() error {
	if !c.Alignment.Valid() {
		return errors.New(errors.ErrCodeInvalidAlignment, "invalid alignment value %d", int(c.Alignment))
	}
	if !c.StartFrom.Valid() {
		return errors.New(errors.ErrCodeInvalidDirection, "invalid direction value %d", int(c.StartFrom))
	}
	if c.ItemCount < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "item count must be >= 0, got %d", c.ItemCount)
	}
	if c.MaxVisible < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max visible must be >= 0, got %d", c.MaxVisible)
	}
	return nil
}

// EffectiveItemSize returns ItemSize when set, otherwise ContainerHeight.
func (c LayoutConfig) EffectiveItemSize() float64 {
	if c.ItemSize != nil {
		return *c.ItemSize
	}
	return c.ContainerHeight
}
