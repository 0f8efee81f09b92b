package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Spinner provides a simple progress indicator with context cancellation
// support. Output goes to stderr so piped stdout stays clean.
type Spinner struct {
	message string
	cancel  context.CancelFunc
	stopped chan struct{}
}

// newSpinner creates a spinner that stops when ctx is cancelled.
func newSpinner(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	s := &Spinner{
		message: message,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.run(spinnerCtx)
	return s
}

func (s *Spinner) run(ctx context.Context) {
	defer close(s.stopped)

	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
			frame := frames[i%len(frames)]
			fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			i++
		}
	}
}

// Stop ends the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.cancel()
	<-s.stopped
}

// StopWithError ends the animation and leaves an error line behind.
func (s *Spinner) StopWithError(msg string) {
	s.Stop()
	fmt.Fprintln(os.Stderr, styleIconError.Render(iconError)+" "+msg)
}

func (s *Spinner) clearLine() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
}
