package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/i474232898/weather-app/internal/display"
)

const (
	cmdToggle = ":u"
	cmdQuit   = ":q"
	prompt    = "Enter city name: "
)

// Session is the subset of session.Session the prompt drives.
type Session interface {
	Submit(ctx context.Context, city string) display.View
	ToggleUnit() display.View
	View() display.View
	OnRefresh(fn func(display.View))
}

// syncWriter lets background refreshes and the prompt loop share one output.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// printf writes one formatted block atomically.
func (s *syncWriter) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format, args...)
}

func (s *syncWriter) render(v display.View) {
	var b strings.Builder
	Render(&b, v)
	s.printf("%s", b.String())
}

// Run reads one command per line from in until EOF, ":q" or ctx is done.
// A line is a city to look up, or ":u" to toggle the unit once a reading is shown.
// Background refreshes are rendered as they complete, followed by a fresh prompt.
func Run(ctx context.Context, in io.Reader, out io.Writer, sess Session) error {
	w := &syncWriter{w: out}
	stopped := make(chan struct{})
	defer close(stopped)

	sess.OnRefresh(func(v display.View) {
		select {
		case <-stopped:
			return
		default:
		}
		var b strings.Builder
		Render(&b, v)
		w.printf("\n(refreshed)\n%s%s", b.String(), prompt)
	})

	scanner := bufio.NewScanner(in)
	w.printf("Type a city and press enter. %s toggles °C/°F, %s quits.\n", cmdToggle, cmdQuit)

	for {
		w.printf("%s", prompt)
		if !scanner.Scan() {
			w.printf("\n")
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case cmdQuit:
			return nil
		case cmdToggle:
			if !sess.View().ToggleVisible {
				w.printf("(nothing to convert yet)\n")
				continue
			}
			w.render(sess.ToggleUnit())
		default:
			w.render(sess.Submit(ctx, line))
		}
	}
}

// Render writes v the way the weather panel lays it out: temperature (or
// error text), emoji, description, then the toggle hint.
func Render(w io.Writer, v display.View) {
	switch v.State {
	case display.StateError:
		fmt.Fprintln(w, v.ErrorMessage)
	case display.StateShowing:
		fmt.Fprintln(w, v.Temperature)
		if v.Emoji != "" {
			fmt.Fprintln(w, v.Emoji)
		}
		fmt.Fprintln(w, v.Description)
		if v.ToggleVisible {
			fmt.Fprintf(w, "[%s] %s\n", cmdToggle, v.ToggleLabel)
		}
	}
}
