//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package keyboard

import "golang.org/x/sys/unix"

// ioctl requests for reading and writing termios on the BSDs and macOS.
const (
	ioctlReadTermios       = unix.TIOCGETA
	ioctlWriteTermiosFlush = unix.TIOCSETAF
	ioctlWriteTermiosDrain = unix.TIOCSETAW
)
