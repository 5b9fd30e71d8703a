package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/profilecluster/pkg/observability"
	"github.com/matzehuels/profilecluster/pkg/roster"
)

// placeholderSource names the input when no roster file is given.
const placeholderSource = "placeholder"

// Load reads the roster named by opts, or builds opts.Count placeholder
// profiles when no file is given.
func Load(ctx context.Context, opts Options) (*roster.Roster, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}

	source := opts.Roster
	if source == "" {
		source = placeholderSource
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	var (
		r   *roster.Roster
		err error
	)
	if opts.Roster == "" {
		r = roster.Placeholder(opts.Count)
	} else {
		r, err = roster.Load(opts.Roster)
	}

	hooks.OnLoadComplete(ctx, source, r.ItemCount(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("loaded roster", "source", source, "profiles", r.ItemCount())
	return r, nil
}
