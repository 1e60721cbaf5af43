package ui

import (
	"fmt"
	"time"
)

// spinnerFrames is the braille animation shared by the stdout spinner
// and the watch view's sync indicator.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner shows a progress indicator on stdout while a command waits
// on the network. One-shot commands use it directly; the watch view
// animates its own frames inside the bubbletea loop instead.
type Spinner struct {
	msg  string
	stop chan struct{}
	done chan struct{}
}

// NewSpinner returns a spinner that will display msg next to the frames.
func NewSpinner(msg string) *Spinner {
	return &Spinner{
		msg:  msg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start launches the animation goroutine. Call Stop before printing
// anything else to the terminal.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		for i := 0; ; i++ {
			select {
			case <-s.stop:
				fmt.Printf("\r%-60s\r", "")
				return
			default:
				fmt.Printf("\r%s  %s", StyleChain.Render(spinnerFrames[i%len(spinnerFrames)]), s.msg)
				time.Sleep(spinnerInterval)
			}
		}
	}()
}

// Stop clears the spinner line and blocks until the goroutine exits.
func (s *Spinner) Stop() {
	close(s.stop)
	<-s.done
}

// StopWithMsg stops the spinner and prints msg in its place.
func (s *Spinner) StopWithMsg(msg string) {
	s.Stop()
	fmt.Println(msg)
}
