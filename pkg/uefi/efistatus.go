package uefi

const (
	uintnSize = 32 << (^uintptr(0) >> 63) // 32 or 64
	errorMask = 1 << uintptr(uintnSize-1)
)

// Status codes as defined by the UEFI specification, Appendix D. The
// partition is fixed by the ABI: 0 is the only success value, codes with the
// high bit set are errors, low positive codes are warnings. The values are
// bit-exact with the firmware's and must not be renumbered.
const (
	EFI_SUCCESS EFI_STATUS = 0

	EFI_WARN_UNKNOWN_GLYPH    EFI_STATUS = 1
	EFI_WARN_DELETE_FAILURE   EFI_STATUS = 2
	EFI_WARN_WRITE_FAILURE    EFI_STATUS = 3
	EFI_WARN_BUFFER_TOO_SMALL EFI_STATUS = 4
	EFI_WARN_STALE_DATA       EFI_STATUS = 5
	EFI_WARN_FILE_SYSTEM      EFI_STATUS = 6
	EFI_WARN_RESET_REQUIRED   EFI_STATUS = 7

	EFI_LOAD_ERROR           EFI_STATUS = errorMask | 1
	EFI_INVALID_PARAMETER    EFI_STATUS = errorMask | 2
	EFI_UNSUPPORTED          EFI_STATUS = errorMask | 3
	EFI_BAD_BUFFER_SIZE      EFI_STATUS = errorMask | 4
	EFI_BUFFER_TOO_SMALL     EFI_STATUS = errorMask | 5
	EFI_NOT_READY            EFI_STATUS = errorMask | 6
	EFI_DEVICE_ERROR         EFI_STATUS = errorMask | 7
	EFI_WRITE_PROTECTED      EFI_STATUS = errorMask | 8
	EFI_OUT_OF_RESOURCES     EFI_STATUS = errorMask | 9
	EFI_VOLUME_CORRUPTED     EFI_STATUS = errorMask | 10
	EFI_VOLUME_FULL          EFI_STATUS = errorMask | 11
	EFI_NO_MEDIA             EFI_STATUS = errorMask | 12
	EFI_MEDIA_CHANGED        EFI_STATUS = errorMask | 13
	EFI_NOT_FOUND            EFI_STATUS = errorMask | 14
	EFI_ACCESS_DENIED        EFI_STATUS = errorMask | 15
	EFI_NO_RESPONSE          EFI_STATUS = errorMask | 16
	EFI_NO_MAPPING           EFI_STATUS = errorMask | 17
	EFI_TIMEOUT              EFI_STATUS = errorMask | 18
	EFI_NOT_STARTED          EFI_STATUS = errorMask | 19
	EFI_ALREADY_STARTED      EFI_STATUS = errorMask | 20
	EFI_ABORTED              EFI_STATUS = errorMask | 21
	EFI_ICMP_ERROR           EFI_STATUS = errorMask | 22
	EFI_TFTP_ERROR           EFI_STATUS = errorMask | 23
	EFI_PROTOCOL_ERROR       EFI_STATUS = errorMask | 24
	EFI_INCOMPATIBLE_VERSION EFI_STATUS = errorMask | 25
	EFI_SECURITY_VIOLATION   EFI_STATUS = errorMask | 26
	EFI_CRC_ERROR            EFI_STATUS = errorMask | 27
	EFI_END_OF_MEDIA         EFI_STATUS = errorMask | 28
	EFI_END_OF_FILE          EFI_STATUS = errorMask | 31
	EFI_INVALID_LANGUAGE     EFI_STATUS = errorMask | 32
	EFI_COMPROMISED_DATA     EFI_STATUS = errorMask | 33
	EFI_IP_ADDRESS_CONFLICT  EFI_STATUS = errorMask | 34
	EFI_HTTP_ERROR           EFI_STATUS = errorMask | 35
)

// IsSuccess reports whether s is the single reserved success code.
func (s EFI_STATUS) IsSuccess() bool {
	return s == EFI_SUCCESS
}

// IsWarning reports whether s is a warning: the call succeeded but carries
// auxiliary information. Warnings are not errors.
func (s EFI_STATUS) IsWarning() bool {
	return s != EFI_SUCCESS && s&errorMask == 0
}

// IsError reports whether the high bit of s is set.
func (s EFI_STATUS) IsError() bool {
	return s&errorMask != 0
}

var statusNames = map[EFI_STATUS]string{
	EFI_SUCCESS:               "EFI_SUCCESS",
	EFI_WARN_UNKNOWN_GLYPH:    "EFI_WARN_UNKNOWN_GLYPH",
	EFI_WARN_DELETE_FAILURE:   "EFI_WARN_DELETE_FAILURE",
	EFI_WARN_WRITE_FAILURE:    "EFI_WARN_WRITE_FAILURE",
	EFI_WARN_BUFFER_TOO_SMALL: "EFI_WARN_BUFFER_TOO_SMALL",
	EFI_WARN_STALE_DATA:       "EFI_WARN_STALE_DATA",
	EFI_WARN_FILE_SYSTEM:      "EFI_WARN_FILE_SYSTEM",
	EFI_WARN_RESET_REQUIRED:   "EFI_WARN_RESET_REQUIRED",
	EFI_LOAD_ERROR:            "EFI_LOAD_ERROR",
	EFI_INVALID_PARAMETER:     "EFI_INVALID_PARAMETER",
	EFI_UNSUPPORTED:           "EFI_UNSUPPORTED",
	EFI_BAD_BUFFER_SIZE:       "EFI_BAD_BUFFER_SIZE",
	EFI_BUFFER_TOO_SMALL:      "EFI_BUFFER_TOO_SMALL",
	EFI_NOT_READY:             "EFI_NOT_READY",
	EFI_DEVICE_ERROR:          "EFI_DEVICE_ERROR",
	EFI_WRITE_PROTECTED:       "EFI_WRITE_PROTECTED",
	EFI_OUT_OF_RESOURCES:      "EFI_OUT_OF_RESOURCES",
	EFI_VOLUME_CORRUPTED:      "EFI_VOLUME_CORRUPTED",
	EFI_VOLUME_FULL:           "EFI_VOLUME_FULL",
	EFI_NO_MEDIA:              "EFI_NO_MEDIA",
	EFI_MEDIA_CHANGED:         "EFI_MEDIA_CHANGED",
	EFI_NOT_FOUND:             "EFI_NOT_FOUND",
	EFI_ACCESS_DENIED:         "EFI_ACCESS_DENIED",
	EFI_NO_RESPONSE:           "EFI_NO_RESPONSE",
	EFI_NO_MAPPING:            "EFI_NO_MAPPING",
	EFI_TIMEOUT:               "EFI_TIMEOUT",
	EFI_NOT_STARTED:           "EFI_NOT_STARTED",
	EFI_ALREADY_STARTED:       "EFI_ALREADY_STARTED",
	EFI_ABORTED:               "EFI_ABORTED",
	EFI_ICMP_ERROR:            "EFI_ICMP_ERROR",
	EFI_TFTP_ERROR:            "EFI_TFTP_ERROR",
	EFI_PROTOCOL_ERROR:        "EFI_PROTOCOL_ERROR",
	EFI_INCOMPATIBLE_VERSION:  "EFI_INCOMPATIBLE_VERSION",
	EFI_SECURITY_VIOLATION:    "EFI_SECURITY_VIOLATION",
	EFI_CRC_ERROR:             "EFI_CRC_ERROR",
	EFI_END_OF_MEDIA:          "EFI_END_OF_MEDIA",
	EFI_END_OF_FILE:           "EFI_END_OF_FILE",
	EFI_INVALID_LANGUAGE:      "EFI_INVALID_LANGUAGE",
	EFI_COMPROMISED_DATA:      "EFI_COMPROMISED_DATA",
	EFI_IP_ADDRESS_CONFLICT:   "EFI_IP_ADDRESS_CONFLICT",
	EFI_HTTP_ERROR:            "EFI_HTTP_ERROR",
}

func (s EFI_STATUS) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	if s.IsError() {
		return "EFI_STATUS(error " + itox(uintptr(s&^errorMask)) + ")"
	}
	return "EFI_STATUS(warning " + itox(uintptr(s)) + ")"
}

// itox formats v as 0x-prefixed hex without pulling fmt into String(),
// which is called from error paths.
func itox(v uintptr) string {
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0x0"
	}
	var b [18]byte
	i := len(b)
	for v > 0 {
		i--
		b[i] = digits[v&0xf]
		v >>= 4
	}
	return "0x" + string(b[i:])
}
