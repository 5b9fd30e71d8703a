package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/profilecluster/pkg/pipeline"
)

// layoutFlags holds the flags shared by every command that lays out a row.
// Pointer options are only set when the flag was given, so that a roster's
// [cluster] table fills in the rest.
type layoutFlags struct {
	count      int
	width      float64
	height     float64
	itemSize   float64
	spacing    float64
	maxVisible int
	alignment  string
	startFrom  string
	shadow     float64
	noCache    bool
	refresh    bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVarP(&f.count, "count", "n", 0, "placeholder profiles when no roster is given (default 8)")
	fl.Float64VarP(&f.width, "width", "W", pipeline.DefaultWidth, "container width in pixels")
	fl.Float64VarP(&f.height, "height", "H", pipeline.DefaultHeight, "container height in pixels")
	fl.Float64Var(&f.itemSize, "item-size", 0, "avatar size (default: container height)")
	fl.Float64VarP(&f.spacing, "spacing", "s", -8, "gap between avatars; negative overlaps")
	fl.IntVarP(&f.maxVisible, "max-visible", "m", 0, "fixed number of slots (0: as many as fit)")
	fl.StringVarP(&f.alignment, "align", "a", "", "row alignment: start, end, center, justify")
	fl.StringVarP(&f.startFrom, "start-from", "d", "", "side the row starts from: start, end")
	fl.Float64Var(&f.shadow, "shadow", 0, "drop shadow level (0: none)")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	fl.BoolVar(&f.refresh, "refresh", false, "ignore cached results and recompute")
}

// apply copies the flags into opts. Only flags the user changed override the
// roster settings.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed

	opts.Count = f.count
	opts.Width = f.width
	opts.Height = f.height
	opts.Alignment = f.alignment
	opts.StartFrom = f.startFrom
	opts.Refresh = f.refresh

	if changed("item-size") {
		opts.ItemSize = &f.itemSize
	}
	if changed("spacing") {
		opts.Spacing = &f.spacing
	}
	if changed("max-visible") {
		opts.MaxVisible = &f.maxVisible
	}
	if changed("shadow") {
		opts.Shadow = &f.shadow
	}
}

// rosterArg returns the optional roster file argument.
func rosterArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
