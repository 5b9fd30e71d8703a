// Package cluster computes the slots of an avatar row with overflow
// collapsing.
//
// # Overview
//
// An avatar row shows as many square slots as fit in its container. When
// there are more items than slots, the last slot becomes a "+N" badge
// standing in for the N items that did not fit. The package is pure
// geometry: it never draws anything and never depends on a toolkit.
//
// # Computing Slots
//
// [ComputeSlots] takes a [LayoutConfig] and returns the slots to render and
// the width needed to show every item unclipped:
//
//	cfg, err := cluster.NewLayoutConfig(200, 40, 20, cluster.WithSpacing(-8))
//	slots, contentWidth := cluster.ComputeSlots(cfg)
//	// slots: #0 #1 #2 #3 #4 +15
//
// The slot capacity comes from the width unless MaxVisible forces it. A
// container narrower than one item still shows one slot. A badge never
// stands for a single item; that item is rendered as an avatar instead.
//
// # Placement
//
// [Place] positions the slots inside the container according to the
// [Alignment] and the [Direction] the row starts from. [ResolveVisualOrder]
// gives the left-to-right order of a mirrored row.
//
// # Rendering
//
// Callers supply a [Renderer] producing their own visual type; [Materialize]
// calls it once per slot. [View] bundles settings, an [ItemSource], a
// renderer and a [Memo] so that repeated resizes to the same bounds do no
// work.
package cluster
