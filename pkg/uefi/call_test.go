package uefi

import (
	"testing"
	"unsafe"
)

// firmwareStub stands in for the efiapi trampoline: it records every
// service call and dispatches to per-entry-point handlers, so the raw
// table wrappers run against in-memory tables.
type firmwareStub struct {
	calls    []stubCall
	handlers map[uint64]func(args []uint64) EFI_STATUS
}

type stubCall struct {
	fn   uint64
	args []uint64
}

func installStub(t *testing.T) *firmwareStub {
	t.Helper()

	fw := &firmwareStub{handlers: map[uint64]func(args []uint64) EFI_STATUS{}}

	prev := callEFI
	callEFI = func(fn uint64, n int, args []uint64) uint64 {
		recorded := make([]uint64, len(args))
		copy(recorded, args)
		fw.calls = append(fw.calls, stubCall{fn: fn, args: recorded})

		if h, ok := fw.handlers[fn]; ok {
			return uint64(h(args))
		}

		return uint64(EFI_UNSUPPORTED)
	}
	t.Cleanup(func() { callEFI = prev })

	return fw
}

func (fw *firmwareStub) handle(fn uintptr, h func(args []uint64) EFI_STATUS) {
	fw.handlers[uint64(fn)] = h
}

// status scripts an entry point to return the given statuses in order,
// repeating the last one.
func (fw *firmwareStub) status(fn uintptr, statuses ...EFI_STATUS) {
	var n int

	fw.handle(fn, func([]uint64) EFI_STATUS {
		s := statuses[n]
		if n < len(statuses)-1 {
			n++
		}
		return s
	})
}

func (fw *firmwareStub) callsTo(fn uintptr) []stubCall {
	var matched []stubCall

	for _, c := range fw.calls {
		if c.fn == uint64(fn) {
			matched = append(matched, c)
		}
	}

	return matched
}

// storeUINTN emulates a firmware out parameter.
func storeUINTN(arg uint64, v UINTN) {
	*(*UINTN)(unsafe.Pointer(uintptr(arg))) = v
}

// readCString reads the NUL-terminated CHAR16 string an argument points at.
func readCString(arg uint64) []CHAR16 {
	var s []CHAR16

	for p := uintptr(arg); ; p += unsafe.Sizeof(CHAR16(0)) {
		c := *(*CHAR16)(unsafe.Pointer(p))
		s = append(s, c)
		if c == 0 {
			return s
		}
	}
}
