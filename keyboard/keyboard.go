package keyboard

import (
	"errors"
	"io"
	"os"
)

// ErrNoInput is returned by a non-blocking Next when nothing is pressed and
// nothing is buffered. It is the only way to observe "no data"; it is not a
// failure.
var ErrNoInput = errors.New("keyboard: no input available")

// reader is the input multiplexer behind a Keyboard. Tests inject scripted
// implementations.
type reader interface {
	// Poll reports input readiness, blocking when wait is set.
	Poll(wait bool) (bool, error)
	// ReadAvailable returns all bytes pending right now.
	ReadAvailable() ([]byte, error)
}

// releaser restores the terminal discipline acquired for a session.
type releaser interface {
	Restore() error
}

// Keyboard is an exclusive unbuffered input session over one terminal
// device. Decoded tokens wait in a FIFO until consumed by Next; once
// enqueued a token is never dropped except by Clear.
type Keyboard struct {
	src    reader
	mode   releaser
	file   *os.File // non-nil when the device was opened by Open
	tables Tables
	buf    []Token
}

// Next returns the next key token.
//
// When tokens are buffered the front one is returned immediately. Otherwise
// the terminal is polled: with block set this waits until input arrives;
// without it, ErrNoInput is returned when nothing is pending. Ready input is
// read, decoded and enqueued in order before the front token is popped.
//
// Decode errors are returned before any of that run's tokens are consumed;
// the successfully decoded tokens stay buffered for subsequent calls.
func (k *Keyboard) Next(block bool) (Token, error) {
	if len(k.buf) > 0 {
		return k.pop(), nil
	}

	ready, err := k.src.Poll(block)
	if err != nil {
		return Token{}, err
	}
	if !ready {
		return Token{}, ErrNoInput
	}

	data, rerr := k.src.ReadAvailable()
	if len(data) > 0 {
		tokens, derr := Decode(data, k.tables)
		k.buf = append(k.buf, tokens...)
		if derr != nil || rerr != nil {
			return Token{}, errors.Join(derr, rerr)
		}
	}
	if rerr != nil {
		return Token{}, rerr
	}
	if len(k.buf) == 0 {
		return Token{}, ErrNoInput
	}
	return k.pop(), nil
}

// Clear discards all buffered tokens and drains any raw input that is
// pending right now, without decoding it. It never waits for future input.
func (k *Keyboard) Clear() error {
	k.buf = k.buf[:0]

	ready, err := k.src.Poll(false)
	if err != nil {
		return err
	}
	if ready {
		if _, err := k.src.ReadAvailable(); err != nil && err != io.EOF {
			return err
		}
	}
	return nil
}

// Close restores the terminal attributes saved at acquisition and closes the
// input device if the session opened it. Closing twice is a no-op.
func (k *Keyboard) Close() error {
	var err error
	if k.mode != nil {
		err = k.mode.Restore()
		k.mode = nil
	}
	if k.file != nil {
		if cerr := k.file.Close(); err == nil {
			err = cerr
		}
		k.file = nil
	}
	return err
}

func (k *Keyboard) pop() Token {
	tok := k.buf[0]
	k.buf = k.buf[1:]
	return tok
}
