package uefi

import (
	"unsafe"
)

// {387477C2-69C7-11D2-8E39-00A0C969723B}
var SimpleTextOutputProtocolGUID = EFI_GUID{
	0x387477c2, 0x69c7, 0x11d2,
	[8]byte{0x8e, 0x39, 0x00, 0xa0, 0xc9, 0x69, 0x72, 0x3b},
}

// EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL – §12.4 UEFI 2.10
//
// Field order and count are the ABI; the firmware fills this table in and
// keeps ownership of it and of the Mode data it points to. The entry points
// stay unexported, dispatch goes through the TextDevice methods only.
type EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL struct {
	fnReset             uintptr // (*this, extended)
	fnOutputString      uintptr // (*this, *CHAR16)
	fnTestString        uintptr // (*this, *CHAR16)
	fnQueryMode         uintptr // (*this, mode, *columns, *rows)
	fnSetMode           uintptr // (*this, mode)
	fnSetAttribute      uintptr // (*this, attribute)
	fnClearScreen       uintptr // (*this)
	fnSetCursorPosition uintptr // (*this, column, row)
	fnEnableCursor      uintptr // (*this, visible)
	Mode                *EFI_SIMPLE_TEXT_OUTPUT_MODE
}

var _ TextDevice = (*EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL)(nil)

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) this() uintptr {
	return uintptr(unsafe.Pointer(p))
}

func efibool(v bool) uintptr {
	if v {
		return 1
	}
	return 0
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) reset(extended bool) EFI_STATUS {
	return UefiCall2(p.fnReset, p.this(), efibool(extended))
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) outputString(s []CHAR16) EFI_STATUS {
	return UefiCall2(p.fnOutputString, p.this(), Ptrval(unsafe.Pointer(&s[0])))
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) testString(s []CHAR16) EFI_STATUS {
	return UefiCall2(p.fnTestString, p.this(), Ptrval(unsafe.Pointer(&s[0])))
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) queryMode(index int) (columns, rows int, status EFI_STATUS) {
	var c, r UINTN

	status = UefiCall4(p.fnQueryMode, p.this(), uintptr(index),
		Ptrval(unsafe.Pointer(&c)), Ptrval(unsafe.Pointer(&r)))

	return int(c), int(r), status
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) setMode(index int) EFI_STATUS {
	return UefiCall2(p.fnSetMode, p.this(), uintptr(index))
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) setAttribute(attr int) EFI_STATUS {
	return UefiCall2(p.fnSetAttribute, p.this(), uintptr(attr))
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) clearScreen() EFI_STATUS {
	return UefiCall1(p.fnClearScreen, p.this())
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) setCursorPosition(column, row int) EFI_STATUS {
	return UefiCall3(p.fnSetCursorPosition, p.this(), uintptr(column), uintptr(row))
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) enableCursor(visible bool) EFI_STATUS {
	return UefiCall2(p.fnEnableCursor, p.this(), efibool(visible))
}

func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) mode() *EFI_SIMPLE_TEXT_OUTPUT_MODE {
	return p.Mode
}

// OutputAt wraps the protocol instance at addr, e.g. the ConOut pointer of
// the system table or an address located by protocol GUID.
func OutputAt(addr uintptr) *Output {
	return NewOutput((*EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL)(unsafe.Pointer(addr)))
}
