package uefi

import (
	"unsafe"
)

// EFI_SYSTEM_TABLE – §4.3 UEFI 2.10. Fixed layout filled in by the
// firmware; the wrapper borrows it for the lifetime of boot services.
type EFI_SYSTEM_TABLE struct {
	Hdr                  EFI_TABLE_HEADER
	FirmwareVendor       uintptr
	FirmwareRevision     uint32
	ConsoleInHandle      EFI_HANDLE
	ConIn                *EFI_SIMPLE_TEXT_INPUT_PROTOCOL
	ConsoleOutHandle     EFI_HANDLE
	ConOut               *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL
	StandardErrorHandle  EFI_HANDLE
	StdErr               *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL
	RuntimeServices      uintptr
	BootServices         uintptr
	NumberOfTableEntries UINTN
	ConfigurationTable   uintptr
}

// EFI Boot Services offsets
const (
	checkEvent     = 0x78
	locateProtocol = 0x140
)

// EFI Runtime Services offsets
const (
	resetSystem = 0x68
)

// EFI_RESET_SYSTEM reset types
const (
	EfiResetCold = iota
	EfiResetWarm
	EfiResetShutdown
	EfiResetPlatformSpecific
)

// SystemTableAt casts the system table address handed to the EFI entry
// point (or re-exported by the runtime) into its typed form.
func SystemTableAt(addr uintptr) *EFI_SYSTEM_TABLE {
	return (*EFI_SYSTEM_TABLE)(unsafe.Pointer(addr))
}

// TextOutput returns the wrapped console output device (ConOut).
func (st *EFI_SYSTEM_TABLE) TextOutput() *Output {
	return NewOutput(st.ConOut)
}

// StandardError returns the wrapped standard error device (StdErr).
func (st *EFI_SYSTEM_TABLE) StandardError() *Output {
	return NewOutput(st.StdErr)
}

// TextInput returns the wrapped console input device (ConIn).
func (st *EFI_SYSTEM_TABLE) TextInput() *Input {
	return &Input{p: st.ConIn, st: st}
}

// fnAt reads the entry point stored at the given offset of a services
// table.
func fnAt(table uintptr, offset uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(table + offset))
}

// LocateProtocol calls EFI_BOOT_SERVICES.LocateProtocol() and returns the
// first interface registered for guid.
func (st *EFI_SYSTEM_TABLE) LocateProtocol(guid *EFI_GUID) (unsafe.Pointer, error) {
	var iface unsafe.Pointer

	status := UefiCall3(fnAt(st.BootServices, locateProtocol),
		Ptrval(unsafe.Pointer(guid)), 0, Ptrval(unsafe.Pointer(&iface)))
	if status != EFI_SUCCESS {
		return nil, StatusError(status)
	}

	return iface, nil
}

// LocateTextOutput finds the first Simple Text Output instance by GUID.
// Prefer TextOutput (ConOut) unless a specific device is wanted.
func (st *EFI_SYSTEM_TABLE) LocateTextOutput() (*Output, error) {
	iface, err := st.LocateProtocol(&SimpleTextOutputProtocolGUID)
	if err != nil {
		return nil, err
	}
	return OutputAt(uintptr(iface)), nil
}

// CheckEvent calls EFI_BOOT_SERVICES.CheckEvent().
func (st *EFI_SYSTEM_TABLE) CheckEvent(event EFI_EVENT) EFI_STATUS {
	return UefiCall1(fnAt(st.BootServices, checkEvent), uintptr(event))
}

// WaitForEvent polls event until it signals, yielding nothing: unlike
// EFI_BOOT_SERVICES.WaitForEvent this does not stall the CPU inside the
// firmware, so the Go runtime keeps running.
func (st *EFI_SYSTEM_TABLE) WaitForEvent(event EFI_EVENT) {
	for {
		if status := st.CheckEvent(event); status == EFI_SUCCESS {
			return
		}
	}
}

// ResetSystem calls EFI_RUNTIME_SERVICES.ResetSystem() and does not return
// on success.
func (st *EFI_SYSTEM_TABLE) ResetSystem(resetType int) error {
	status := UefiCall4(fnAt(st.RuntimeServices, resetSystem),
		uintptr(resetType), uintptr(EFI_SUCCESS), 0, 0)

	return statusErr(status)
}
