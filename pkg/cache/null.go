package cache

import (
	"context"
	"time"
)

// NullCache is the cache behind --no-cache and a Runner built without one:
// every lookup misses, so each layout and artifact is recomputed, and writes
// are dropped. It holds no state and needs no Close.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error)          { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error                      { return nil }
func (*NullCache) Close() error                                              { return nil }
