package uefi

import "fmt"

// Error is a firmware-reported outcome: a non-success EFI_STATUS with
// optional payload data. It is the only error type returned for statuses
// coming back from the firmware; contract violations on the caller's side
// panic instead.
type Error struct {
	status EFI_STATUS
	data   any
}

// NewError wraps a non-success status and optional payload data.
//
// Passing EFI_SUCCESS is a programming error and panics: a success must
// never be representable as a failure outcome.
func NewError(status EFI_STATUS, data any) *Error {
	if status == EFI_SUCCESS {
		panic("uefi: NewError called with EFI_SUCCESS")
	}
	return &Error{status: status, data: data}
}

// Status returns the raw status code.
func (e *Error) Status() EFI_STATUS {
	return e.status
}

// Data returns the payload, nil when the error carries none.
func (e *Error) Data() any {
	return e.data
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error %v: %v", e.status, e.data)
}

// Is matches two errors by status code, so payload-carrying errors compare
// equal to the canonical Err*/Warn* values under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.status == e.status
}

var errMap = make(map[EFI_STATUS]*Error)

func newError(status EFI_STATUS, msg string) *Error {
	err := NewError(status, msg)
	errMap[status] = err
	return err
}

var (
	ErrLoadError           = newError(EFI_LOAD_ERROR, "image failed to load")
	ErrInvalidParameter    = newError(EFI_INVALID_PARAMETER, "a parameter was incorrect")
	ErrUnsupported         = newError(EFI_UNSUPPORTED, "operation not supported")
	ErrBadBufferSize       = newError(EFI_BAD_BUFFER_SIZE, "buffer size incorrect for request")
	ErrBufferTooSmall      = newError(EFI_BUFFER_TOO_SMALL, "buffer too small; size returned in parameter")
	ErrNotReady            = newError(EFI_NOT_READY, "no data pending")
	ErrDeviceError         = newError(EFI_DEVICE_ERROR, "physical device reported an error")
	ErrWriteProtected      = newError(EFI_WRITE_PROTECTED, "device is write-protected")
	ErrOutOfResources      = newError(EFI_OUT_OF_RESOURCES, "out of resources")
	ErrVolumeCorrupted     = newError(EFI_VOLUME_CORRUPTED, "filesystem inconsistency detected")
	ErrVolumeFull          = newError(EFI_VOLUME_FULL, "no more space on filesystem")
	ErrNoMedia             = newError(EFI_NO_MEDIA, "device contains no medium")
	ErrMediaChanged        = newError(EFI_MEDIA_CHANGED, "medium changed since last access")
	ErrNotFound            = newError(EFI_NOT_FOUND, "item not found")
	ErrAccessDenied        = newError(EFI_ACCESS_DENIED, "access denied")
	ErrNoResponse          = newError(EFI_NO_RESPONSE, "server not found or no response")
	ErrNoMapping           = newError(EFI_NO_MAPPING, "no device mapping exists")
	ErrTimeout             = newError(EFI_TIMEOUT, "timeout expired")
	ErrNotStarted          = newError(EFI_NOT_STARTED, "protocol not started")
	ErrAlreadyStarted      = newError(EFI_ALREADY_STARTED, "protocol already started")
	ErrAborted             = newError(EFI_ABORTED, "operation aborted")
	ErrICMPError           = newError(EFI_ICMP_ERROR, "ICMP error during network operation")
	ErrTFTPError           = newError(EFI_TFTP_ERROR, "TFTP error during network operation")
	ErrProtocolError       = newError(EFI_PROTOCOL_ERROR, "protocol error during network operation")
	ErrIncompatibleVersion = newError(EFI_INCOMPATIBLE_VERSION, "requested version incompatible")
	ErrSecurityViolation   = newError(EFI_SECURITY_VIOLATION, "security violation")
	ErrCRCError            = newError(EFI_CRC_ERROR, "CRC error detected")
	ErrEndOfMedia          = newError(EFI_END_OF_MEDIA, "beginning or end of media reached")
	ErrEndOfFile           = newError(EFI_END_OF_FILE, "end of file reached")
	ErrInvalidLanguage     = newError(EFI_INVALID_LANGUAGE, "invalid language specified")
	ErrCompromisedData     = newError(EFI_COMPROMISED_DATA, "data security status unknown or compromised")
	ErrIPAddressConflict   = newError(EFI_IP_ADDRESS_CONFLICT, "IP address conflict detected")
	ErrHTTPError           = newError(EFI_HTTP_ERROR, "HTTP error during network operation")
)

// Warnings propagate through the same error channel unless an operation
// documents otherwise (see Output.OutputStringLossy).
var (
	WarnUnknownGlyph   = newError(EFI_WARN_UNKNOWN_GLYPH, "unknown glyph in string, not rendered")
	WarnDeleteFailure  = newError(EFI_WARN_DELETE_FAILURE, "handle closed but file not deleted")
	WarnWriteFailure   = newError(EFI_WARN_WRITE_FAILURE, "handle closed but data not flushed")
	WarnBufferTooSmall = newError(EFI_WARN_BUFFER_TOO_SMALL, "data truncated to fit buffer")
	WarnStaleData      = newError(EFI_WARN_STALE_DATA, "data not updated within expected timeframe")
	WarnFileSystem     = newError(EFI_WARN_FILE_SYSTEM, "buffer contains a filesystem")
	WarnResetRequired  = newError(EFI_WARN_RESET_REQUIRED, "operation requires a system reset")
)

// StatusError returns the canonical error for status, nil for EFI_SUCCESS.
// The returned values can be checked with errors.Is() and the like.
func StatusError(status EFI_STATUS) *Error {
	if status == EFI_SUCCESS {
		return nil
	}
	if err, ok := errMap[status]; ok {
		return err
	}
	return NewError(status, "unknown EFI status")
}

// statusErr converts a raw status to the error channel of an accessor:
// nil for success, the canonical error otherwise. Returning the interface
// type keeps a nil *Error from leaking as a non-nil error.
func statusErr(status EFI_STATUS) error {
	if status == EFI_SUCCESS {
		return nil
	}
	return StatusError(status)
}
