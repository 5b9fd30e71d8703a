package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDraws(t *testing.T) {
	var out syncBuffer
	s := startSpinnerTo(context.Background(), &out, "Rendering")
	time.Sleep(3 * spinnerTick)
	s.stop()

	got := out.String()
	if !strings.Contains(got, "Rendering") {
		t.Errorf("spinner output = %q, want label", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("spinner output = %q, want cleared line at the end", got)
	}
}

func TestSpinnerStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := startSpinnerTo(ctx, &syncBuffer{}, "cancel me")
	cancel()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
	s.stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := startSpinnerTo(context.Background(), &syncBuffer{}, "twice")

	done := make(chan struct{})
	go func() {
		s.stop()
		s.stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("repeated stop blocked")
	}
}
