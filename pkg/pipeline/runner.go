package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/profilecluster/pkg/cache"
	"github.com/matzehuels/profilecluster/pkg/observability"
	"github.com/matzehuels/profilecluster/pkg/render/sink"
	"github.com/matzehuels/profilecluster/pkg/roster"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	loadStart := time.Now()
	ros, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Roster = ros
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Profiles = ros.ItemCount()

	layoutStart := time.Now()
	scene, layoutHit, err := r.LayoutWithCacheInfo(ctx, ros, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Scene = scene
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Slots = len(scene.Items)
	result.Stats.Hidden = scene.Hidden()
	result.CacheInfo.LayoutHit = layoutHit
	result.RosterHash, _ = cache.HashJSON(ros)

	r.Logger.Info("computed layout",
		"profiles", result.Stats.Profiles,
		"slots", result.Stats.Slots,
		"hidden", result.Stats.Hidden,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit
	result.SceneHash, _ = SceneHash(scene)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes the scene for a roster with caching and
// reports whether it came from the cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, ros *roster.Roster, opts Options) (sink.Scene, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return sink.Scene{}, false, err
	}
	settings, err := opts.Settings(ros)
	if err != nil {
		return sink.Scene{}, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, ros.ItemCount())
	start := time.Now()

	rosterHash, err := cache.HashJSON(ros)
	if err != nil {
		return sink.Scene{}, false, fmt.Errorf("hash roster: %w", err)
	}
	key := r.Keyer.LayoutKey(rosterHash, opts.LayoutKeyOpts(settings))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if scene, err := sink.ReadJSON(data); err == nil {
				observability.Cache().OnCacheHit(ctx, observability.KindLayout)
				hooks.OnLayoutComplete(ctx, len(scene.Items), scene.Hidden(), time.Since(start), nil)
				return scene, true, nil
			}
			// unreadable entry: recompute
		}
		observability.Cache().OnCacheMiss(ctx, observability.KindLayout)
	}

	scene, err := Layout(ros, opts)
	hooks.OnLayoutComplete(ctx, len(scene.Items), scene.Hidden(), time.Since(start), err)
	if err != nil {
		return sink.Scene{}, false, err
	}

	if data, err := sink.RenderJSON(scene); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, observability.KindLayout, len(data))
		}
	}
	return scene, false, nil
}

// Layout is LayoutWithCacheInfo without the cache hit info.
func (r *Runner) Layout(ctx context.Context, ros *roster.Roster, opts Options) (sink.Scene, error) {
	scene, _, err := r.LayoutWithCacheInfo(ctx, ros, opts)
	return scene, err
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene sink.Scene, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hash, err := SceneHash(scene)
	if err != nil {
		return nil, false, fmt.Errorf("hash scene: %w", err)
	}

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)))
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, observability.KindArtifact)
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, observability.KindArtifact)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, scene, idPrefix(hash), opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		if err := r.Cache.Set(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)), data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, observability.KindArtifact, len(data))
	}
	return rendered, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, scene sink.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, scene, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// SceneHash returns the content hash of a scene.
func SceneHash(scene sink.Scene) (string, error) {
	data, err := sink.RenderJSON(scene)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

func idPrefix(sceneHash string) string {
	return "pc-" + sceneHash[:8]
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
