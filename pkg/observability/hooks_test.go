package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

type countingHooks struct {
	NoopPipelineHooks
	mu     sync.Mutex
	layout int
	hits   map[string]int
}

func (h *countingHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error) {
	h.mu.Lock()
	h.layout++
	h.mu.Unlock()
}

func (h *countingHooks) OnCacheHit(_ context.Context, kind string) {
	h.mu.Lock()
	if h.hits == nil {
		h.hits = map[string]int{}
	}
	h.hits[kind]++
	h.mu.Unlock()
}

func (h *countingHooks) OnCacheMiss(context.Context, string)     {}
func (h *countingHooks) OnCacheSet(context.Context, string, int) {}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}

	ctx := context.Background()
	Pipeline().OnLoadStart(ctx, "team.toml")
	Pipeline().OnLoadComplete(ctx, "team.toml", 12, time.Millisecond, nil)
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)
	Cache().OnCacheSet(ctx, KindArtifact, 1024)
}

func TestRegister(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingHooks{}
	Register(h, h)

	ctx := context.Background()
	Pipeline().OnLayoutComplete(ctx, 6, 7, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, KindLayout)
	Cache().OnCacheHit(ctx, KindLayout)

	if h.layout != 1 {
		t.Errorf("layout events = %d, want 1", h.layout)
	}
	if h.hits[KindLayout] != 2 {
		t.Errorf("layout hits = %d, want 2", h.hits[KindLayout])
	}

	Reset()
	Cache().OnCacheHit(ctx, KindLayout)
	if h.hits[KindLayout] != 2 {
		t.Error("hooks still called after Reset")
	}
}

func TestRegisterKeepsNil(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingHooks{}
	SetPipelineHooks(h)
	SetPipelineHooks(nil)
	if Pipeline() != PipelineHooks(h) {
		t.Error("SetPipelineHooks(nil) replaced the installed hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetPipelineHooks changed the cache hooks")
	}

	SetCacheHooks(h)
	Register(nil, nil)
	if Pipeline() != PipelineHooks(h) || Cache() != CacheHooks(h) {
		t.Error("Register(nil, nil) changed the installed hooks")
	}
}

func TestRegisterConcurrent(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingHooks{}
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetPipelineHooks(h)
		}()
		go func() {
			defer wg.Done()
			SetCacheHooks(h)
			Cache().OnCacheMiss(ctx, KindArtifact)
		}()
	}
	wg.Wait()

	if Pipeline() != PipelineHooks(h) || Cache() != CacheHooks(h) {
		t.Error("concurrent registration lost an update")
	}
}
