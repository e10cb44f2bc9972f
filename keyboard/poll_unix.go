//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package keyboard

import (
	"io"

	"golang.org/x/sys/unix"
)

// readChunk is the per-read buffer size for draining pending input.
const readChunk = 1024

// ttyReader multiplexes readiness checks and reads over one terminal file
// descriptor. It never mutates terminal state.
type ttyReader struct {
	fd int
}

// Poll reports whether the descriptor has input pending. With wait set it
// blocks until input arrives; otherwise it returns the current readiness
// immediately. Interrupted polls are retried.
func (t *ttyReader) Poll(wait bool) (bool, error) {
	timeout := 0
	if wait {
		timeout = -1
	}
	for {
		fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return false, err
		}
		return n > 0, nil
	}
}

// ReadAvailable performs one read, then keeps reading while more input is
// immediately pending, concatenating the bytes. There is no guarantee that a
// whole escape sequence arrived in one call if the terminal delivers it
// across a boundary the caller did not wait for.
func (t *ttyReader) ReadAvailable() ([]byte, error) {
	var data []byte
	buf := make([]byte, readChunk)
	for {
		n, err := unix.Read(t.fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return data, err
		}
		if n == 0 {
			return data, io.EOF
		}
		data = append(data, buf[:n]...)

		more, err := t.Poll(false)
		if err != nil {
			return data, err
		}
		if !more {
			return data, nil
		}
	}
}
