package uefi

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStringChunking(t *testing.T) {
	f, out := newFake()
	s := strings.Repeat("ab", writeBufSize) // 2*B units, no newlines

	n, err := out.WriteString(s)
	require.NoError(t, err)
	assert.Equal(t, len(s), n)

	// two full flushes of B units plus terminator each, then the
	// unconditional trailing flush with nothing staged
	require.Len(t, f.writes, 3)
	assert.Len(t, f.writes[0], writeBufSize+1)
	assert.Len(t, f.writes[1], writeBufSize+1)
	assert.Equal(t, []CHAR16{0}, f.writes[2])

	var staged []CHAR16
	for _, w := range f.writes {
		require.Equal(t, CHAR16(0), w[len(w)-1])
		staged = append(staged, w[:len(w)-1]...)
	}
	enc, err := EncodeCString(s)
	require.NoError(t, err)
	assert.Equal(t, enc[:len(enc)-1], staged, "character order preserved")
}

func TestWriteStringLineFeed(t *testing.T) {
	f, out := newFake()

	_, err := out.WriteString("a\nb")
	require.NoError(t, err)

	require.Len(t, f.writes, 1)
	assert.Equal(t, []CHAR16{'a', '\r', '\n', 'b', 0}, f.writes[0])
}

func TestWriteStringEmpty(t *testing.T) {
	f, out := newFake()

	n, err := out.WriteString("")
	require.NoError(t, err)
	assert.Zero(t, n)

	// the final flush still runs: one zero-length terminated write
	require.Len(t, f.writes, 1)
	assert.Equal(t, []CHAR16{0}, f.writes[0])
}

func TestWriteStringShort(t *testing.T) {
	f, out := newFake()

	_, err := out.WriteString("hi")
	require.NoError(t, err)

	require.Len(t, f.writes, 1)
	assert.Equal(t, []CHAR16{'h', 'i', 0}, f.writes[0])
}

func TestWriteStringEncodingFault(t *testing.T) {
	f, out := newFake()

	_, err := out.WriteString("emoji: \U0001f600")
	assert.ErrorIs(t, err, ErrWriteFault)
	assert.Empty(t, f.writes, "nothing staged reaches the device")
}

func TestWriteStringDeviceFault(t *testing.T) {
	f, out := newFake()
	f.writeStatus = []EFI_STATUS{EFI_DEVICE_ERROR}

	_, err := out.WriteString(strings.Repeat("x", 2*writeBufSize))
	assert.ErrorIs(t, err, ErrWriteFault)

	// the first flush failed, the write was abandoned there
	assert.Len(t, f.writes, 1)
}

func TestWriteStringMidFault(t *testing.T) {
	f, out := newFake()
	f.writeStatus = []EFI_STATUS{EFI_SUCCESS, EFI_DEVICE_ERROR}

	_, err := out.WriteString(strings.Repeat("x", 2*writeBufSize))
	assert.ErrorIs(t, err, ErrWriteFault)

	// already flushed output stays flushed, the fault is not rolled back
	assert.Len(t, f.writes, 2)
}

func TestFprintf(t *testing.T) {
	f, out := newFake()

	_, err := fmt.Fprintf(out, "mode %d: %dx%d\n", 0, 80, 25)
	require.NoError(t, err)

	require.Len(t, f.writes, 1)
	assert.Equal(t, []CHAR16{
		'm', 'o', 'd', 'e', ' ', '0', ':', ' ',
		'8', '0', 'x', '2', '5', '\r', '\n', 0,
	}, f.writes[0])
}
