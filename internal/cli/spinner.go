package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerFrames animate a dot sliding through a short avatar row.
var spinnerFrames = []string{"●○○○", "○●○○", "○○●○", "○○○●", "○○●○", "○●○○"}

const spinnerTick = 90 * time.Millisecond

// spinner draws a single status line on w until stopped or until its
// context ends. The zero value is not usable; call startSpinner.
type spinner struct {
	w     io.Writer
	label string
	begun time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// startSpinner begins animating label on stderr.
func startSpinner(ctx context.Context, label string) *spinner {
	return startSpinnerTo(ctx, os.Stderr, label)
}

func startSpinnerTo(ctx context.Context, w io.Writer, label string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	s := &spinner{w: w, label: label, begun: time.Now(), cancel: cancel, done: make(chan struct{})}
	go s.loop(ctx)
	return s
}

func (s *spinner) loop(ctx context.Context) {
	defer close(s.done)
	t := time.NewTicker(spinnerTick)
	defer t.Stop()

	width := 0
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
			s.mu.Unlock()
			return
		case <-t.C:
			elapsed := time.Since(s.begun).Truncate(100 * time.Millisecond)
			line := fmt.Sprintf("%s %s %s",
				styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)]),
				StyleDim.Render(s.label),
				StyleDim.Render(elapsed.String()))
			s.mu.Lock()
			fmt.Fprint(s.w, "\r"+line)
			width = max(width, len(line))
			s.mu.Unlock()
		}
	}
}

// stop clears the line and waits for the animation to exit. Repeated calls
// are no-ops.
func (s *spinner) stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// fail stops the spinner and prints msg as an error.
func (s *spinner) fail(msg string) {
	s.stop()
	printError("%s", msg)
}
