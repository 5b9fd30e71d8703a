package cluster

// ItemSource supplies the total number of logical items at computation time.
type ItemSource interface {
	ItemCount() int
}

// ItemCountFunc adapts a function to ItemSource.
type ItemCountFunc func() int

// ItemCount calls f.
func (f ItemCountFunc) ItemCount() int { return f() }

// Renderer turns slots into caller-owned visuals. V is opaque to this
// package; handles are passed back exactly as returned.
type Renderer[V any] interface {
	// RenderAvatar renders the item at index.
	RenderAvatar(index int) V
	// RenderOverflow renders the badge standing in for more items.
	RenderOverflow(more int) V
}

// RendererFuncs adapts a pair of closures to Renderer. A nil closure
// renders the zero value of V.
type RendererFuncs[V any] struct {
	Avatar   func(index int) V
	Overflow func(more int) V
}

// RenderAvatar calls f.Avatar.
func (f RendererFuncs[V]) RenderAvatar(index int) V {
	var zero V
	if f.Avatar == nil {
		return zero
	}
	return f.Avatar(index)
}

// RenderOverflow calls f.Overflow.
func (f RendererFuncs[V]) RenderOverflow(more int) V {
	var zero V
	if f.Overflow == nil {
		return zero
	}
	return f.Overflow(more)
}

// Materialize renders every slot through r, in slot order. Avatars are
// rendered once each in ascending index order; the badge at most once.
func Materialize[V any](slots []Slot, r Renderer[V]) []V {
	out := make([]V, 0, len(slots))
	for _, s := range slots {
		if s.IsOverflow() {
			out = append(out, r.RenderOverflow(s.Index))
			continue
		}
		out = append(out, r.RenderAvatar(s.Index))
	}
	return out
}
