package cluster

// Settings are the per-view knobs that stay fixed across resizes.
type Settings struct {
	ItemSize   *float64  `json:"item_size,omitempty" toml:"item_size"`
	Spacing    float64   `json:"spacing" toml:"spacing"`
	MaxVisible int       `json:"max_visible,omitempty" toml:"max_visible"`
	Alignment  Alignment `json:"alignment" toml:"alignment"`
	StartFrom  Direction `json:"start_from" toml:"start_from"`

	// Shadow is the drop shadow level; 0 disables it. Sinks read it, the
	// slot computation ignores it.
	Shadow float64 `json:"shadow,omitempty" toml:"shadow"`
}

// DefaultSpacing overlaps neighbouring avatars slightly.
const DefaultSpacing = -8

// DefaultSettings returns leading-aligned, left-to-right settings with
// overlapping avatars.
func DefaultSettings() Settings {
	return Settings{Spacing: DefaultSpacing}
}

// Config builds the LayoutConfig for a container of the given size.
func (s Settings) Config(width, height float64, count int) LayoutConfig {
	return LayoutConfig{
		ContainerWidth:  width,
		ContainerHeight: height,
		ItemSize:        s.ItemSize,
		Spacing:         s.Spacing,
		ItemCount:       count,
		MaxVisible:      s.MaxVisible,
		Alignment:       s.Alignment,
		StartFrom:       s.StartFrom,
	}
}

// Validate checks the settings the same way LayoutConfig.Validate does.
func (s Settings) Validate() error {
	return s.Config(0, 0, 0).Validate()
}

// Placed pairs a positioned frame with the visual rendered for it.
type Placed[V any] struct {
	Frame
	Visual V
}

// View is a host-side avatar row: it owns the settings, asks its source for
// the item count, and re-renders through its renderer whenever the bounds
// change. Recomputation is memoized on the bounds.
type View[V any] struct {
	source   ItemSource
	renderer Renderer[V]
	settings Settings

	memo   Memo
	result Result
	placed []Placed[V]
}

// NewView returns a view with validated settings. A nil source counts as
// zero items.
func NewView[V any](src ItemSource, r Renderer[V], s Settings) (*View[V], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &View[V]{source: src, renderer: r, settings: s}, nil
}

// Settings returns the current settings.
func (v *View[V]) Settings() Settings { return v.settings }

// SetSettings validates and applies s, forcing a recompute on the next Resize.
func (v *View[V]) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	v.settings = s
	v.memo.Invalidate()
	return nil
}

// Reload forces a recompute on the next Resize, e.g. after the source changed.
func (v *View[V]) Reload() {
	v.memo.Invalidate()
}

// CopyCallbacks makes v use the same source and renderer as other.
func (v *View[V]) CopyCallbacks(other *View[V]) {
	v.source = other.source
	v.renderer = other.renderer
	v.memo.Invalidate()
}

// Resize lays the row out for a container of the given size. The boolean
// reports whether the slots were recomputed; when it is false the previous
// visuals are returned unchanged.
func (v *View[V]) Resize(width, height float64) ([]Placed[V], bool) {
	cfg := v.settings.Config(width, height, v.itemCount())
	res, fresh := v.memo.Compute(cfg)
	if !fresh {
		return v.placed, false
	}

	v.result = res
	frames := Place(cfg, res.Slots)
	var visuals []V
	if v.renderer != nil {
		visuals = Materialize(res.Slots, v.renderer)
	}

	v.placed = make([]Placed[V], len(frames))
	for i, f := range frames {
		v.placed[i].Frame = f
		if visuals != nil {
			v.placed[i].Visual = visuals[i]
		}
	}
	return v.placed, true
}

// Result returns the result of the last recomputation.
func (v *View[V]) Result() Result { return v.result }

// MemoStats exposes the memo hit and miss counters.
func (v *View[V]) MemoStats() (hits, misses int) { return v.memo.Stats() }

func (v *View[V]) itemCount() int {
	if v.source == nil {
		return 0
	}
	return max(v.source.ItemCount(), 0)
}
