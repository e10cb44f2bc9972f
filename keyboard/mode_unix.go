//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package keyboard

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	// ErrModeHeld is returned by AcquireMode while another Mode is live.
	ErrModeHeld = errors.New("keyboard: terminal mode already held")
	// ErrNotOwner is returned by Restore on a Mode that no longer owns the
	// terminal (already restored, or superseded).
	ErrNotOwner = errors.New("keyboard: not the terminal mode owner")
)

// ioctl entry points as variables so the guard can be tested without a tty.
var (
	getTermios = func(fd int) (*unix.Termios, error) {
		return unix.IoctlGetTermios(fd, ioctlReadTermios)
	}
	setTermios = func(fd int, req uint, tio *unix.Termios) error {
		return unix.IoctlSetTermios(fd, req, tio)
	}
)

// Mode is the acquisition token for exclusive terminal discipline. It holds
// the attribute snapshot taken by AcquireMode and restores it exactly once.
type Mode struct {
	fd    int
	saved unix.Termios
}

// The process-wide owner slot. At most one live Mode at any time.
var modeOwner struct {
	sync.Mutex
	current *Mode
}

// AcquireMode captures the terminal attributes of fd and switches it to
// cbreak: input is delivered character-at-a-time without echo. It fails with
// ErrModeHeld while a previous Mode is unreleased, and leaves the terminal
// untouched on any failure.
//
// Release the returned Mode with Restore, preferably via defer so the
// attributes come back on every exit path.
func AcquireMode(fd int) (*Mode, error) {
	modeOwner.Lock()
	defer modeOwner.Unlock()

	if modeOwner.current != nil {
		return nil, ErrModeHeld
	}

	saved, err := getTermios(fd)
	if err != nil {
		return nil, fmt.Errorf("keyboard: reading terminal attributes: %w", err)
	}

	cbreak := *saved
	cbreak.Lflag &^= unix.ECHO | unix.ICANON
	cbreak.Cc[unix.VMIN] = 1
	cbreak.Cc[unix.VTIME] = 0
	if err := setTermios(fd, ioctlWriteTermiosFlush, &cbreak); err != nil {
		return nil, fmt.Errorf("keyboard: switching to cbreak: %w", err)
	}

	m := &Mode{fd: fd, saved: *saved}
	modeOwner.current = m
	return m, nil
}

// Restore puts the saved attribute snapshot back verbatim, waiting for
// pending output to drain, and clears the owner slot. A Mode that is not the
// current owner fails with ErrNotOwner and changes nothing.
func (m *Mode) Restore() error {
	modeOwner.Lock()
	defer modeOwner.Unlock()

	if m == nil || modeOwner.current != m {
		return ErrNotOwner
	}
	if err := setTermios(m.fd, ioctlWriteTermiosDrain, &m.saved); err != nil {
		return fmt.Errorf("keyboard: restoring terminal attributes: %w", err)
	}
	modeOwner.current = nil
	return nil
}
