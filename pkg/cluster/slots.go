package cluster

import (
	"fmt"
	"math"

	"github.com/matzehuels/profilecluster/pkg/errors"
)

// SlotKind tells an avatar slot from the overflow badge.
type SlotKind int

const (
	KindAvatar SlotKind = iota
	KindOverflow
)

// String returns "avatar" or "overflow".
func (k SlotKind) String() string {
	if k == KindOverflow {
		return "overflow"
	}
	return "avatar"
}

// MarshalText implements encoding.TextMarshaler.
func (k SlotKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SlotKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "avatar":
		*k = KindAvatar
	case "overflow":
		*k = KindOverflow
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown slot kind %q", string(b))
	}
	return nil
}

// Slot is one rendered position in the row.
//
// For avatar slots Index is the zero-based item index. For the overflow
// slot it is the number of items folded into the badge.
type Slot struct {
	Kind  SlotKind `json:"kind"`
	Index int      `json:"index"`
}

// Avatar returns an avatar slot for item i.
func Avatar(i int) Slot { return Slot{Kind: KindAvatar, Index: i} }

// Overflow returns a badge slot folding more items.
func Overflow(more int) Slot { return Slot{Kind: KindOverflow, Index: more} }

// IsOverflow reports whether s is the overflow badge.
func (s Slot) IsOverflow() bool { return s.Kind == KindOverflow }

// String renders avatars as "#3" and the badge as "+15".
func (s Slot) String() string {
	if s.IsOverflow() {
		return fmt.Sprintf("+%d", s.Index)
	}
	return fmt.Sprintf("#%d", s.Index)
}

// Result is the full output of one computation.
type Result struct {
	Slots []Slot `json:"slots"`

	// ContentWidth is the width needed to show every item unclipped.
	ContentWidth float64 `json:"content_width"`

	// VisibleCount is the slot capacity before clamping to the item count.
	VisibleCount int `json:"visible_count"`

	// ItemSize is the effective slot edge used for the computation.
	ItemSize float64 `json:"item_size"`
}

// Overflowed reports whether the last slot is an overflow badge.
func (r Result) Overflowed() bool {
	return len(r.Slots) > 0 && r.Slots[len(r.Slots)-1].IsOverflow()
}

// Hidden returns the number of items folded into the badge, or 0.
func (r Result) Hidden() int {
	if !r.Overflowed() {
		return 0
	}
	return r.Slots[len(r.Slots)-1].Index
}

// ComputeSlots returns the slots to render for cfg and the width needed to
// show every item unclipped. It is pure and never fails: a non-positive
// item size yields no slots and zero width.
func ComputeSlots(cfg LayoutConfig) ([]Slot, float64) {
	r := Compute(cfg)
	return r.Slots, r.ContentWidth
}

// Compute is ComputeSlots with the intermediate values exposed.
func Compute(cfg LayoutConfig) Result {
	size := cfg.EffectiveItemSize()
	if !(size > 0) {
		return Result{ItemSize: size}
	}

	count := max(cfg.ItemCount, 0)
	res := Result{
		ContentWidth: contentWidth(count, size, cfg.Spacing),
		VisibleCount: visibleCount(cfg, size),
		ItemSize:     size,
	}
	if count == 0 {
		return res
	}

	slots := make([]Slot, 0, min(res.VisibleCount, count))
	for i := 1; i <= res.VisibleCount; i++ {
		if i > count {
			break
		}
		if i == res.VisibleCount {
			if more := count - i + 1; more > 1 {
				slots = append(slots, Overflow(more))
				break
			}
		}
		slots = append(slots, Avatar(i-1))
	}
	res.Slots = slots
	return res
}

// MaxSlots bounds the slot capacity of a single row.
const MaxSlots = math.MaxInt32

// VisibleCount returns how many slots the row offers for cfg, before the
// item count is taken into account. It is 0 only for a non-positive item
// size and never exceeds MaxSlots unless MaxVisible asks for more.
func VisibleCount(cfg LayoutConfig) int {
	size := cfg.EffectiveItemSize()
	if !(size > 0) {
		return 0
	}
	return visibleCount(cfg, size)
}

func visibleCount(cfg LayoutConfig, size float64) int {
	if cfg.MaxVisible > 0 {
		return cfg.MaxVisible
	}

	var n int
	if single := size + cfg.Spacing; single > 0 {
		// Clamp before converting: huge widths or a near-zero step would
		// not fit in an int. NaN lands here too.
		q := math.Floor((cfg.ContainerWidth - size) / single)
		if q < MaxSlots {
			n = int(q)
		} else {
			n = MaxSlots - 1
		}
	}
	// The first slot always shows, even when narrower than one item.
	if cfg.ContainerWidth > size {
		return n + 1
	}
	return 1
}

func contentWidth(count int, size, spacing float64) float64 {
	return float64(count)*size + float64(max(count-1, 0))*spacing
}
