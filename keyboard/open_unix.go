//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package keyboard

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// Open acquires the terminal input device exclusively and returns a Keyboard
// session in cbreak mode with the default decode tables. It fails with
// ErrModeHeld while another session is open, without touching terminal
// state. Release with Close.
func Open() (*Keyboard, error) {
	f, owned, err := inputDevice()
	if err != nil {
		return nil, err
	}

	mode, err := AcquireMode(int(f.Fd()))
	if err != nil {
		if owned {
			f.Close()
		}
		return nil, err
	}

	k := &Keyboard{
		src:    &ttyReader{fd: int(f.Fd())},
		mode:   mode,
		tables: DefaultTables(),
	}
	if owned {
		k.file = f
	}
	return k, nil
}

// inputDevice picks the terminal to read from. Multiplexer and SSH sessions
// may expose the real pane tty through the environment; otherwise stdin is
// used when it is a terminal, with /dev/tty as the fallback when it is not
// (e.g. redirected input). The second return value reports whether the
// caller owns the returned file and must close it.
func inputDevice() (*os.File, bool, error) {
	if path := env.Str("TMUX_PANE_TTY"); path != "" {
		return openDevice(path)
	}
	if path := env.Str("SSH_TTY"); path != "" {
		return openDevice(path)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, false, nil
	}
	return openDevice("/dev/tty")
}

func openDevice(path string) (*os.File, bool, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, false, fmt.Errorf("keyboard: opening %s: %w", path, err)
	}
	return f, true, nil
}
