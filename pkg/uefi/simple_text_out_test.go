package uefi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRawOutput builds an in-memory protocol table with one distinct entry
// point per slot, so tests can assert which slot a wrapper dispatched to.
func newRawOutput() *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL {
	return &EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL{
		fnReset:             0x1010,
		fnOutputString:      0x1020,
		fnTestString:        0x1030,
		fnQueryMode:         0x1040,
		fnSetMode:           0x1050,
		fnSetAttribute:      0x1060,
		fnClearScreen:       0x1070,
		fnSetCursorPosition: 0x1080,
		fnEnableCursor:      0x1090,
		Mode:                &EFI_SIMPLE_TEXT_OUTPUT_MODE{MaxMode: 1, Mode: -1},
	}
}

func TestRawOutputDispatch(t *testing.T) {
	fw := installStub(t)

	p := newRawOutput()
	out := OutputAt(uintptr(unsafe.Pointer(p)))
	this := uint64(uintptr(unsafe.Pointer(p)))

	fw.status(p.fnReset, EFI_SUCCESS)
	fw.status(p.fnSetMode, EFI_SUCCESS)
	fw.status(p.fnSetAttribute, EFI_SUCCESS)
	fw.status(p.fnClearScreen, EFI_SUCCESS)
	fw.status(p.fnSetCursorPosition, EFI_SUCCESS)
	fw.status(p.fnEnableCursor, EFI_SUCCESS)

	require.NoError(t, out.Reset(true))
	require.NoError(t, out.SetMode(OutputMode{}))
	require.NoError(t, out.SetColor(Yellow, Black))
	require.NoError(t, out.Clear())
	require.NoError(t, out.SetCursorPosition(7, 3))
	require.NoError(t, out.EnableCursor(false))

	for _, c := range fw.calls {
		assert.Equal(t, this, c.args[0], "entry %#x", c.fn)
	}

	assert.Equal(t, []uint64{this, 1}, fw.callsTo(p.fnReset)[0].args)
	assert.Equal(t, []uint64{this, 0}, fw.callsTo(p.fnSetMode)[0].args)
	assert.Equal(t, []uint64{this, uint64(Yellow)},
		fw.callsTo(p.fnSetAttribute)[0].args)
	assert.Equal(t, []uint64{this}, fw.callsTo(p.fnClearScreen)[0].args)
	assert.Equal(t, []uint64{this, 7, 3},
		fw.callsTo(p.fnSetCursorPosition)[0].args)
	assert.Equal(t, []uint64{this, 0}, fw.callsTo(p.fnEnableCursor)[0].args)
}

func TestRawOutputString(t *testing.T) {
	fw := installStub(t)

	p := newRawOutput()
	out := OutputAt(uintptr(unsafe.Pointer(p)))

	var written []CHAR16
	fw.handle(p.fnOutputString, func(args []uint64) EFI_STATUS {
		written = readCString(args[1])
		return EFI_SUCCESS
	})

	require.NoError(t, out.OutputString([]CHAR16{'o', 'k', 0}))
	assert.Equal(t, []CHAR16{'o', 'k', 0}, written)
}

func TestRawQueryMode(t *testing.T) {
	fw := installStub(t)

	p := newRawOutput()
	out := OutputAt(uintptr(unsafe.Pointer(p)))

	fw.handle(p.fnQueryMode, func(args []uint64) EFI_STATUS {
		if args[1] != 0 {
			return EFI_UNSUPPORTED
		}
		storeUINTN(args[2], 80)
		storeUINTN(args[3], 25)
		return EFI_SUCCESS
	})

	m, err := out.QueryMode(0)
	require.NoError(t, err)
	assert.Equal(t, 80, m.Columns())
	assert.Equal(t, 25, m.Rows())

	_, err = out.QueryMode(1)
	assert.ErrorIs(t, err, ErrUnsupported)
}
