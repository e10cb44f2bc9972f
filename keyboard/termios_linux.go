package keyboard

import "golang.org/x/sys/unix"

// ioctl requests for reading and writing termios on Linux. The flush variant
// discards pending input when applying cbreak; the drain variant waits for
// pending output when restoring.
const (
	ioctlReadTermios       = unix.TCGETS
	ioctlWriteTermiosFlush = unix.TCSETSF
	ioctlWriteTermiosDrain = unix.TCSETSW
)
