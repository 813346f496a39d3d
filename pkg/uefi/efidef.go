package uefi

type UINTN uintptr
type EFI_STATUS UINTN
type EFI_HANDLE uintptr
type EFI_EVENT uintptr

type CHAR16 uint16
type BOOLEAN bool

type EFI_GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// EFI_TABLE_HEADER precedes the system, boot services and runtime services
// tables.
type EFI_TABLE_HEADER struct {
	Signature  uint64
	Revision   uint32
	HeaderSize uint32
	CRC32      uint32
	Reserved   uint32
}
