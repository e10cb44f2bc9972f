//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package keyboard

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeReader returns a ttyReader over the read end of a pipe and the write
// end for feeding it input.
func pipeReader(t *testing.T) (*ttyReader, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return &ttyReader{fd: int(r.Fd())}, w
}

func TestPollImmediateReadiness(t *testing.T) {
	src, w := pipeReader(t)

	ready, err := src.Poll(false)
	require.NoError(t, err)
	assert.False(t, ready, "nothing written yet")

	_, err = w.Write([]byte("x"))
	require.NoError(t, err)

	ready, err = src.Poll(false)
	require.NoError(t, err)
	assert.True(t, ready)
}

func TestPollIndefiniteReturnsOnceReady(t *testing.T) {
	src, w := pipeReader(t)

	_, err := w.Write([]byte("\x1b[A"))
	require.NoError(t, err)

	ready, err := src.Poll(true)
	require.NoError(t, err)
	assert.True(t, ready)

	// Polling does not consume: the bytes are still readable.
	data, err := src.ReadAvailable()
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1b[A"), data)
}

func TestReadAvailableConcatenatesPendingWrites(t *testing.T) {
	src, w := pipeReader(t)

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = w.Write([]byte("def"))
	require.NoError(t, err)

	data, err := src.ReadAvailable()
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdef"), data)

	ready, err := src.Poll(false)
	require.NoError(t, err)
	assert.False(t, ready, "everything pending was drained")
}

func TestReadAvailableDrainsAcrossChunks(t *testing.T) {
	src, w := pipeReader(t)

	// More than one read buffer's worth, so the drain loop has to go around.
	big := bytes.Repeat([]byte("k"), readChunk+512)
	_, err := w.Write(big)
	require.NoError(t, err)

	data, err := src.ReadAvailable()
	require.NoError(t, err)
	assert.Equal(t, big, data)
}
