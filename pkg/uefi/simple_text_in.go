package uefi

import (
	"unsafe"
)

// EFI_INPUT_KEY is the keystroke information for the key that was pressed.
type EFI_INPUT_KEY struct {
	ScanCode    uint16
	UnicodeChar CHAR16
}

// EFI_SIMPLE_TEXT_INPUT_PROTOCOL – §12.3 UEFI 2.10. Minimum required
// protocol for ConsoleIn; same ABI rules as the output table.
type EFI_SIMPLE_TEXT_INPUT_PROTOCOL struct {
	fnReset         uintptr // (*this, extended)
	fnReadKeyStroke uintptr // (*this, *EFI_INPUT_KEY)
	WaitForKey      EFI_EVENT
}

// Input wraps the console input device. When constructed from a system
// table the WaitForKey event is polled through boot services while
// blocking; a bare handle from InputAt falls back to polling the device
// itself.
type Input struct {
	p  *EFI_SIMPLE_TEXT_INPUT_PROTOCOL
	st *EFI_SYSTEM_TABLE
}

// InputAt wraps the protocol instance at addr, e.g. the ConIn pointer of
// the system table.
func InputAt(addr uintptr) *Input {
	return &Input{p: (*EFI_SIMPLE_TEXT_INPUT_PROTOCOL)(unsafe.Pointer(addr))}
}

// Reset resets the input device and optionally runs diagnostics.
func (in *Input) Reset(extended bool) error {
	status := UefiCall2(in.p.fnReset,
		Ptrval(unsafe.Pointer(in.p)), efibool(extended))

	return statusErr(status)
}

// ReadKeyStroke reads the next keystroke, if one is pending. ready is false
// when the device reports EFI_NOT_READY, which is not an error.
func (in *Input) ReadKeyStroke() (key EFI_INPUT_KEY, ready bool, err error) {
	status := UefiCall2(in.p.fnReadKeyStroke,
		Ptrval(unsafe.Pointer(in.p)), Ptrval(unsafe.Pointer(&key)))

	switch status {
	case EFI_SUCCESS:
		return key, true, nil
	case EFI_NOT_READY:
		return key, false, nil
	default:
		return key, false, StatusError(status)
	}
}

// ReadKey blocks until a keystroke arrives, waiting on the WaitForKey
// event when boot services are reachable and re-reading on EFI_NOT_READY
// otherwise.
func (in *Input) ReadKey() (EFI_INPUT_KEY, error) {
	for {
		if in.st != nil {
			in.st.WaitForEvent(in.p.WaitForKey)
		}

		key, ready, err := in.ReadKeyStroke()
		if err != nil {
			return key, err
		}
		if ready {
			return key, nil
		}
	}
}
