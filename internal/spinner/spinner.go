// Package spinner renders a single-line progress indicator while the
// CLI waits on a model reply.
package spinner

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// Spinner animates a message on a terminal until stopped.
type Spinner struct {
	writer  io.Writer
	message string
	color   string
	width   int

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	frame   int
}

// New returns a spinner that animates message on w. A width above zero
// truncates the rendered line to fit narrow terminals. A non-empty
// color is an ANSI escape applied to the animation glyph.
func New(w io.Writer, message string, width int, color string) *Spinner {
	return &Spinner{
		writer:  w,
		message: message,
		color:   color,
		width:   width,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins the animation on its own goroutine.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	go s.run()
}

// Stop halts the animation and clears the line. It blocks until the
// animation goroutine has finished writing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh

	s.clearLine()
}

func (s *Spinner) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.render()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(frames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	frame := frames[s.frame]
	msg := s.message
	s.mu.Unlock()

	if s.width > 0 {
		msg = runewidth.Truncate(msg, s.width-runewidth.StringWidth(frame)-1, "")
	}

	fmt.Fprint(s.writer, "\r\033[K")
	if s.color != "" {
		fmt.Fprintf(s.writer, "%s%s\033[0m %s", s.color, frame, msg)
	} else {
		fmt.Fprintf(s.writer, "%s %s", frame, msg)
	}
}

func (s *Spinner) clearLine() {
	fmt.Fprint(s.writer, "\r\033[K")
}
