// Package observability lets a front end watch the pipeline without the
// pipeline importing any logging or metrics backend.
//
// The pipeline and cache layers report through [Pipeline] and [Cache]. By
// default both are no-ops; a binary swaps in its own implementation once at
// startup:
//
//	observability.Register(myHooks, myHooks)
//	defer observability.Reset()
//
// Registration is safe to race with emitters; an emitter sees either the old
// or the new set, never a mix of the two.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Cache kinds reported to [CacheHooks].
const (
	KindLayout   = "layout"
	KindArtifact = "artifact"
)

// PipelineHooks receives load, layout and render events. Every Complete event
// follows its Start event on the same goroutine.
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, profiles int, duration time.Duration, err error)

	OnLayoutStart(ctx context.Context, itemCount int)
	OnLayoutComplete(ctx context.Context, slots, hidden int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. kind is [KindLayout] or
// [KindArtifact]; size is the stored payload in bytes.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	OnCacheSet(ctx context.Context, kind string, size int)
}

// NoopPipelineHooks ignores every event. Embed it to implement a subset.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type hookSet struct {
	pipeline PipelineHooks
	cache    CacheHooks
}

var defaults = hookSet{pipeline: NoopPipelineHooks{}, cache: NoopCacheHooks{}}

var current atomic.Pointer[hookSet]

func init() { Reset() }

func load() *hookSet { return current.Load() }

// update applies fn to a copy of the current set and publishes it.
func update(fn func(*hookSet)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Register installs both hook sets. A nil argument keeps the current value.
func Register(p PipelineHooks, c CacheHooks) {
	update(func(s *hookSet) {
		if p != nil {
			s.pipeline = p
		}
		if c != nil {
			s.cache = c
		}
	})
}

// SetPipelineHooks installs pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) { Register(h, nil) }

// SetCacheHooks installs cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) { Register(nil, h) }

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return load().pipeline }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return load().cache }

// Reset reinstalls the no-op hooks.
func Reset() {
	s := defaults
	current.Store(&s)
}
