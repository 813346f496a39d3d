package uefi

import (
	"errors"
	"iter"
)

// EFI_SIMPLE_TEXT_OUTPUT_MODE is the auxiliary device state hanging off the
// protocol's data pointer. It is owned and mutated by the firmware as a side
// effect of calls through the entry points; the wrapper only ever reads it.
type EFI_SIMPLE_TEXT_OUTPUT_MODE struct {
	MaxMode int32
	// Mode is the current mode index, -1 while no mode has been selected.
	Mode          int32
	Attribute     int32
	CursorColumn  int32
	CursorRow     int32
	CursorVisible BOOLEAN
}

// TextDevice is the capability set of EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL.
// The methods mirror the fixed-order function-pointer table one to one and
// return the raw status of each call; only Output interprets statuses.
//
// The interface is sealed: the real implementation is the protocol vtable
// located from the system table, callers never touch entry points directly.
type TextDevice interface {
	reset(extended bool) EFI_STATUS
	outputString(s []CHAR16) EFI_STATUS
	testString(s []CHAR16) EFI_STATUS
	queryMode(index int) (columns, rows int, status EFI_STATUS)
	setMode(index int) EFI_STATUS
	setAttribute(attr int) EFI_STATUS
	clearScreen() EFI_STATUS
	setCursorPosition(column, row int) EFI_STATUS
	enableCursor(visible bool) EFI_STATUS
	mode() *EFI_SIMPLE_TEXT_OUTPUT_MODE
}

// Color indices for the text console attribute. Any color is a valid
// foreground, only the first 8 are valid backgrounds.
type Color int

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// OutputMode describes one text geometry supported by the device. It is a
// value produced by a successful mode query and has no identity beyond the
// index it was queried with.
type OutputMode struct {
	index   int
	columns int
	rows    int
}

// Index returns the mode index used with Output.SetMode.
func (m OutputMode) Index() int { return m.index }

// Columns returns the width in character cells.
func (m OutputMode) Columns() int { return m.columns }

// Rows returns the height in character cells.
func (m OutputMode) Rows() int { return m.rows }

// Output wraps the Simple Text Output device behind typed accessors, turning
// each raw status into an error (or swallowed warning) per call contract.
// The handle is borrowed from the firmware for the duration of boot
// services; Output never copies or frees the underlying table.
type Output struct {
	dev TextDevice
}

// NewOutput wraps an already located text output device.
func NewOutput(dev TextDevice) *Output {
	return &Output{dev: dev}
}

// Reset reinitializes the device hardware and clears the screen. extended
// requests the more exhaustive (and slower) verification some firmware
// implements.
func (o *Output) Reset(extended bool) error {
	return statusErr(o.dev.reset(extended))
}

// Clear clears the screen to the current background color and moves the
// cursor to (0, 0).
func (o *Output) Clear() error {
	return statusErr(o.dev.clearScreen())
}

// OutputString pushes a pre-encoded, null-terminated UCS-2 string to the
// device. Use EncodeCString or the Write methods for host strings.
func (o *Output) OutputString(s []CHAR16) error {
	if err := checkCString(s); err != nil {
		return err
	}
	return statusErr(o.dev.outputString(s))
}

// OutputStringLossy is OutputString with the unknown-glyph warning treated
// as success: glyphs the device cannot render are silently skipped. Every
// other non-success status propagates unchanged.
func (o *Output) OutputStringLossy(s []CHAR16) error {
	err := o.OutputString(s)
	if errors.Is(err, WarnUnknownGlyph) {
		return nil
	}
	return err
}

// TestString reports whether the device can render every character of s.
// EFI_UNSUPPORTED is the documented "no" answer of this probe and maps to
// (false, nil) rather than an error.
func (o *Output) TestString(s string) (bool, error) {
	enc, err := EncodeCString(s)
	if err != nil {
		return false, err
	}
	switch status := o.dev.testString(enc); status {
	case EFI_UNSUPPORTED:
		return false, nil
	case EFI_SUCCESS:
		return true, nil
	default:
		return false, StatusError(status)
	}
}

// QueryMode returns the geometry of the mode at index. Devices guarantee
// mode 0 (80x25); mode 1 is 80x50 when present, but querying it may
// legitimately fail with EFI_UNSUPPORTED even though the index is within
// MaxMode. Indices 2+ are device defined.
func (o *Output) QueryMode(index int) (OutputMode, error) {
	columns, rows, status := o.dev.queryMode(index)
	if status != EFI_SUCCESS {
		return OutputMode{}, StatusError(status)
	}
	return OutputMode{index: index, columns: columns, rows: rows}, nil
}

// CurrentMode returns the currently selected mode, or nil when the firmware
// reports that no mode has been selected yet.
func (o *Output) CurrentMode() (*OutputMode, error) {
	switch n := o.dev.mode().Mode; {
	case n == -1:
		return nil, nil
	case n >= 0:
		m, err := o.QueryMode(int(n))
		if err != nil {
			return nil, err
		}
		return &m, nil
	default:
		panic("uefi: firmware reported a negative text mode index")
	}
}

// SetMode selects a mode previously obtained from Modes or QueryMode.
func (o *Output) SetMode(m OutputMode) error {
	return statusErr(o.dev.setMode(m.index))
}

// Modes returns a lazy sequence of the modes the device supports, in
// ascending index order. MaxMode is read once when Modes is called;
// unsupported indices inside the range are skipped, not errors. Iterate
// again by calling Modes again.
func (o *Output) Modes() iter.Seq[OutputMode] {
	max := int(o.dev.mode().MaxMode)
	return func(yield func(OutputMode) bool) {
		for index := 0; index < max; index++ {
			m, err := o.QueryMode(index)
			if err != nil {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// SetColor sets the foreground and background colors of subsequent output.
//
// Requesting a background outside the first 8 colors is a caller bug and
// panics before any firmware call is made; the attribute byte has only
// three background bits.
func (o *Output) SetColor(foreground, background Color) error {
	if background < 0 || background >= 8 {
		panic("uefi: invalid background color")
	}
	attr := int(background&0x7)<<4 | int(foreground&0xf)
	return statusErr(o.dev.setAttribute(attr))
}

// CursorVisible reports whether the cursor is shown. Reads device state
// only, no firmware call.
func (o *Output) CursorVisible() bool {
	return bool(o.dev.mode().CursorVisible)
}

// CursorPosition returns the cursor's column and row. Reads device state
// only, no firmware call.
func (o *Output) CursorPosition() (column, row int) {
	m := o.dev.mode()
	return int(m.CursorColumn), int(m.CursorRow)
}

// EnableCursor shows or hides the cursor. Devices without cursor control
// return EFI_UNSUPPORTED.
func (o *Output) EnableCursor(visible bool) error {
	return statusErr(o.dev.enableCursor(visible))
}

// SetCursorPosition moves the cursor; (0, 0) is the top-left corner. The
// firmware rejects positions outside the current mode's bounds, the wrapper
// does not validate them locally.
func (o *Output) SetCursorPosition(column, row int) error {
	return statusErr(o.dev.setCursorPosition(column, row))
}
