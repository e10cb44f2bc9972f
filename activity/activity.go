// Package activity implements a stack of interactive scenes driven by
// decoded keyboard tokens. The top of the stack receives interaction and
// render calls; activities below it are paused until revealed again.
//
// The screen type is a type parameter so the loop does not care what it
// renders onto.
package activity

import (
	"fmt"
	"time"

	"github.com/ansrk/keyloop/keyboard"
)

// Event is an interaction event delivered to the active Activity.
type Event interface {
	event()
}

// KeyEvent wraps one decoded key token. The receiving activity treats it as
// opaque; raw bytes and decoder internals are not visible here.
type KeyEvent struct {
	Token keyboard.Token
}

func (KeyEvent) event() {}

// Activity is one scene on the loop's stack.
type Activity[S any] interface {
	// Interact handles one event and reports whether it was consumed.
	Interact(ev Event) bool
	// Render draws the scene and reports whether anything changed.
	Render(now time.Time, screen S) bool
}

// Optional lifecycle hooks, detected by type assertion.
type (
	// Leaver is notified when another activity is pushed on top of it.
	Leaver interface{ OnLeave() }
	// Exiter is notified when it is removed from the stack.
	Exiter interface{ OnExit() }
	// Returner receives the value passed to Exit by the activity that was
	// stacked on top of it.
	Returner interface{ OnReturn(value any) }
)

// Factory builds an activity from the arguments given to Enter or Switch.
type Factory[S any] func(args ...any) Activity[S]

// Loop manages the activity stack and a named factory registry. It is not
// safe for concurrent use; one goroutine drives it.
type Loop[S any] struct {
	factories map[string]Factory[S]
	stack     []Activity[S]
}

// NewLoop returns an empty loop with no registered activities.
func NewLoop[S any]() *Loop[S] {
	return &Loop[S]{factories: make(map[string]Factory[S])}
}

// Register binds a name to an activity factory. Registering the same name
// twice is an error.
func (l *Loop[S]) Register(name string, f Factory[S]) error {
	if _, ok := l.factories[name]; ok {
		return fmt.Errorf("activity: %q already registered", name)
	}
	l.factories[name] = f
	return nil
}

// Enter constructs the named activity and pushes it onto the stack. The
// activity it covers is notified through OnLeave if implemented.
func (l *Loop[S]) Enter(name string, args ...any) error {
	f, ok := l.factories[name]
	if !ok {
		return fmt.Errorf("activity: %q not registered", name)
	}
	if top, ok := l.top(); ok {
		if leaver, ok := any(top).(Leaver); ok {
			leaver.OnLeave()
		}
	}
	l.stack = append(l.stack, f(args...))
	return nil
}

// Switch replaces the top of the stack with the named activity. The replaced
// activity is notified through OnExit if implemented.
func (l *Loop[S]) Switch(name string, args ...any) error {
	f, ok := l.factories[name]
	if !ok {
		return fmt.Errorf("activity: %q not registered", name)
	}
	top, ok := l.top()
	if !ok {
		return fmt.Errorf("activity: switch on an empty stack")
	}
	l.stack = l.stack[:len(l.stack)-1]
	if exiter, ok := any(top).(Exiter); ok {
		exiter.OnExit()
	}
	l.stack = append(l.stack, f(args...))
	return nil
}

// Exit pops the top activity, notifying it through OnExit if implemented,
// and hands value to the revealed activity through OnReturn if implemented.
func (l *Loop[S]) Exit(value any) error {
	top, ok := l.top()
	if !ok {
		return fmt.Errorf("activity: exit on an empty stack")
	}
	l.stack = l.stack[:len(l.stack)-1]
	if exiter, ok := any(top).(Exiter); ok {
		exiter.OnExit()
	}
	if revealed, ok := l.top(); ok {
		if returner, ok := any(revealed).(Returner); ok {
			returner.OnReturn(value)
		}
	}
	return nil
}

// Interact dispatches the event to the top of the stack. It reports false
// when the stack is empty or the activity did not consume the event.
func (l *Loop[S]) Interact(ev Event) bool {
	if top, ok := l.top(); ok {
		return top.Interact(ev)
	}
	return false
}

// Render asks the top of the stack to draw itself with the current time.
func (l *Loop[S]) Render(screen S) bool {
	if top, ok := l.top(); ok {
		return top.Render(time.Now(), screen)
	}
	return false
}

// Active reports whether any activity remains on the stack.
func (l *Loop[S]) Active() bool {
	return len(l.stack) > 0
}

// Depth returns the number of stacked activities.
func (l *Loop[S]) Depth() int {
	return len(l.stack)
}

// Wait sleeps for one frame at the given rate.
func (l *Loop[S]) Wait(fps float64) {
	if fps <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(time.Second) / fps))
}

func (l *Loop[S]) top() (Activity[S], bool) {
	if len(l.stack) == 0 {
		return nil, false
	}
	return l.stack[len(l.stack)-1], true
}
