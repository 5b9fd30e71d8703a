package sink

import (
	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/render/styles"
)

var testNames = []string{"Ada Lovelace", "Grace Hopper", "Linus Torvalds", "Ken Thompson", "Barbara Liskov", "Alan Kay"}

// testScene lays out n profiles the way the pipeline does.
func testScene(width, height float64, n int, opts ...cluster.Option) Scene {
	cfg, err := cluster.NewLayoutConfig(width, height, n, opts...)
	if err != nil {
		panic(err)
	}
	res := cluster.Compute(cfg)
	frames := cluster.Place(cfg, res.Slots)
	chips := cluster.Materialize[styles.Chip](res.Slots, cluster.RendererFuncs[styles.Chip]{
		Avatar: func(i int) styles.Chip {
			name := testNames[i%len(testNames)]
			return styles.Chip{Label: name, Text: styles.Initials(name), Fill: styles.AvatarColor(i), TextColor: styles.AvatarText}
		},
		Overflow: func(more int) styles.Chip {
			text := styles.BadgeText(more)
			return styles.Chip{Label: text, Text: text, Fill: styles.BadgeFill, TextColor: styles.BadgeTextColor, Overflow: true, Count: more}
		},
	})
	items := make([]Item, len(frames))
	for i, f := range frames {
		items[i] = Item{Frame: f, Visual: chips[i]}
	}
	return NewScene(cfg, res, items, 0)
}
