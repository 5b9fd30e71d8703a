package sink

import (
	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/render/styles"
)

// Item is one positioned slot with the chip rendered for it.
type Item = cluster.Placed[styles.Chip]

// Scene is a fully laid out avatar row, ready for any sink.
type Scene struct {
	Width        float64 // Container width
	Height       float64 // Container height
	ItemSize     float64 // Effective slot edge
	ContentWidth float64 // Width needed to show every item unclipped
	ItemCount    int     // Logical item count
	VisibleCount int     // Slot capacity
	Shadow       float64 // Shadow level, 0 for none

	Alignment cluster.Alignment
	StartFrom cluster.Direction

	// Items are in draw order: later items paint over earlier ones.
	Items []Item
}

// NewScene assembles a scene from a layout computation and its placed chips.
func NewScene(cfg cluster.LayoutConfig, res cluster.Result, items []Item, shadow float64) Scene {
	return Scene{
		Width:        cfg.ContainerWidth,
		Height:       cfg.ContainerHeight,
		ItemSize:     res.ItemSize,
		ContentWidth: res.ContentWidth,
		ItemCount:    cfg.ItemCount,
		VisibleCount: res.VisibleCount,
		Shadow:       shadow,
		Alignment:    cfg.Alignment,
		StartFrom:    cfg.StartFrom,
		Items:        items,
	}
}

// Hidden returns the number of items folded into the badge, or 0.
func (s Scene) Hidden() int {
	for _, it := range s.Items {
		if it.Slot.IsOverflow() {
			return it.Slot.Index
		}
	}
	return 0
}

func shapeFor(prefix string, pos int, it Item) styles.Shape {
	return styles.Shape{
		Chip: it.Visual,
		ID:   itemID(prefix, pos),
		X:    it.X, Y: it.Y,
		Size: it.Width,
		CX:   it.CenterX(), CY: it.CenterY(),
	}
}
