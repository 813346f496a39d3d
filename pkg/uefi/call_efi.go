//go:build tamago

package uefi

// callFn enters the firmware with the efiapi calling convention, defined
// in uefi.s.
func callFn(fn uint64, n int, args []uint64) (status uint64)

func init() {
	callEFI = callFn
}
