package uefi

import (
	"sync"
	"unsafe"
)

var mux sync.Mutex

// callEFI invokes fn with the EFI calling convention. The firmware build
// installs the uefi.s trampoline (see call_efi.go); tests install an
// in-memory device instead.
var callEFI func(fn uint64, n int, args []uint64) (status uint64)

// callService serializes all firmware entry: UEFI services are single
// caller by contract.
func callService(fn uint64, args []uint64) (status uint64) {
	mux.Lock()
	defer mux.Unlock()

	return callEFI(fn, len(args), args)
}

// Ptrval converts a Go pointer to the integer argument passed across the
// EFI boundary. Arguments are prepared right before the call while the
// callee cannot retain them, so this does not need dma-style pinning.
func Ptrval(ptr unsafe.Pointer) uintptr {
	return uintptr(ptr)
}

func UefiCall1(fn uintptr, a uintptr) EFI_STATUS {
	return EFI_STATUS(callService(uint64(fn), []uint64{uint64(a)}))
}

func UefiCall2(fn uintptr, a, b uintptr) EFI_STATUS {
	return EFI_STATUS(callService(uint64(fn), []uint64{uint64(a), uint64(b)}))
}

func UefiCall3(fn uintptr, a, b, c uintptr) EFI_STATUS {
	return EFI_STATUS(callService(uint64(fn), []uint64{uint64(a), uint64(b), uint64(c)}))
}

func UefiCall4(fn uintptr, a, b, c, d uintptr) EFI_STATUS {
	return EFI_STATUS(callService(uint64(fn), []uint64{uint64(a), uint64(b), uint64(c), uint64(d)}))
}
