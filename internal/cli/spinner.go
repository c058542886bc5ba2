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

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner draws a progress indicator on w until stopped or until its
// context is cancelled.
type spinner struct {
	w       io.Writer
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	mu      sync.Mutex
}

// startSpinner starts a spinner that stops when ctx is cancelled.
func startSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		w:       w,
		message: message,
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			s.mu.Lock()
			fmt.Fprintf(s.w, "\r%s %s", styleAccent.Render(frame), styleMuted.Render(s.message))
			s.mu.Unlock()
		}
	}
}

// stop stops the spinner and clears its line. It is safe to call more
// than once.
func (s *spinner) stop() {
	s.once.Do(s.cancel)
	<-s.stopped
}

func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// withSpinner runs fn while a spinner shows message on stderr. When show is
// false fn runs without one.
func withSpinner(ctx context.Context, show bool, message string, fn func() error) error {
	if !show {
		return fn()
	}
	s := startSpinner(ctx, os.Stderr, message)
	defer s.stop()
	return fn()
}
