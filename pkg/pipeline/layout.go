package pipeline

import (
	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/render/sink"
	"github.com/matzehuels/profilecluster/pkg/render/styles"
	"github.com/matzehuels/profilecluster/pkg/roster"
)

// ChipRenderer renders roster profiles as chips. Profiles without a color
// get the placeholder palette by index.
type ChipRenderer struct {
	Roster *roster.Roster
}

var _ cluster.Renderer[styles.Chip] = ChipRenderer{}

func (c ChipRenderer) RenderAvatar(index int) styles.Chip {
	p, _ := c.Roster.Profile(index)
	chip := styles.Chip{
		Label:     p.Name,
		Text:      p.DisplayInitials(),
		Fill:      p.Color,
		TextColor: styles.AvatarText,
		Image:     p.Image,
	}
	if chip.Label == "" {
		chip.Label = chip.Text
	}
	if chip.Fill == "" {
		chip.Fill = styles.AvatarColor(index)
	}
	return chip
}

func (c ChipRenderer) RenderOverflow(more int) styles.Chip {
	text := styles.BadgeText(more)
	return styles.Chip{
		Label:     text,
		Text:      text,
		Fill:      styles.BadgeFill,
		TextColor: styles.BadgeTextColor,
		Overflow:  true,
		Count:     more,
	}
}

// Layout computes the scene for a roster. It does no caching.
func Layout(r *roster.Roster, opts Options) (sink.Scene, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return sink.Scene{}, err
	}
	s, err := opts.Settings(r)
	if err != nil {
		return sink.Scene{}, err
	}

	cfg := s.Config(opts.Width, opts.Height, r.ItemCount())
	res := cluster.Compute(cfg)
	frames := cluster.Place(cfg, res.Slots)
	chips := cluster.Materialize[styles.Chip](res.Slots, ChipRenderer{Roster: r})

	items := make([]sink.Item, len(frames))
	for i, f := range frames {
		items[i] = sink.Item{Frame: f, Visual: chips[i]}
	}

	opts.Logger.Debug("computed slots",
		"visible", res.VisibleCount,
		"slots", len(res.Slots),
		"hidden", res.Hidden(),
		"content_width", res.ContentWidth)
	return sink.NewScene(cfg, res, items, s.Shadow), nil
}
