// Command loop runs a minimal activity stack driven by live keyboard input:
// a counter scene that pushes a help scene on TAB and exits on ESC.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ansrk/keyloop/activity"
	"github.com/ansrk/keyloop/keyboard"
)

type counter struct {
	loop  *activity.Loop[io.Writer]
	count int
}

func (c *counter) Interact(ev activity.Event) bool {
	ke, ok := ev.(activity.KeyEvent)
	if !ok {
		return false
	}
	switch ke.Token.Key {
	case keyboard.KeyEsc:
		c.loop.Exit(c.count)
	case keyboard.KeyTab:
		c.loop.Enter("help")
	default:
		c.count++
	}
	return true
}

func (c *counter) Render(now time.Time, w io.Writer) bool {
	fmt.Fprintf(w, "\rkeys pressed: %d (TAB for help, ESC to quit) ", c.count)
	return true
}

type help struct {
	loop *activity.Loop[io.Writer]
}

func (h *help) Interact(ev activity.Event) bool {
	h.loop.Exit(nil)
	return true
}

func (h *help) Render(now time.Time, w io.Writer) bool {
	fmt.Fprint(w, "\rany key returns to the counter                ")
	return true
}

func main() {
	kb, err := keyboard.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer kb.Close()

	loop := activity.NewLoop[io.Writer]()
	if err := loop.Register("counter", func(args ...any) activity.Activity[io.Writer] {
		return &counter{loop: loop}
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := loop.Register("help", func(args ...any) activity.Activity[io.Writer] {
		return &help{loop: loop}
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := loop.Enter("counter"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for loop.Active() {
		tok, err := kb.Next(false)
		switch {
		case err == nil:
			loop.Interact(activity.KeyEvent{Token: tok})
		case errors.Is(err, keyboard.ErrNoInput):
			// idle frame
		default:
			fmt.Fprintf(os.Stderr, "\r\n%v\r\n", err)
		}
		loop.Render(os.Stdout)
		loop.Wait(30)
	}
	fmt.Print("\r\n")
}
