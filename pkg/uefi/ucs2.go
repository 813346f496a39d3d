package uefi

import "fmt"

// The console alphabet is UCS-2: every character is exactly one 16-bit code
// unit. It is a proper subset of UTF-16 with no surrogate pairs, so runes
// above the Basic Multilingual Plane cannot be encoded at all.

// ucs2Encode converts s rune by rune and hands each code unit to emit.
// Encoding stops at the first rune outside UCS-2 or the first emit error.
func ucs2Encode(s string, emit func(CHAR16) error) error {
	for _, r := range s {
		if (r >= 0xd800 && r <= 0xdfff) || r > 0xffff {
			return fmt.Errorf("rune %#U cannot be encoded as UCS-2", r)
		}
		if err := emit(CHAR16(r)); err != nil {
			return err
		}
	}
	return nil
}

// EncodeCString converts s to a null-terminated UCS-2 string suitable for
// Output.OutputString. Interior NULs are rejected, the terminator would cut
// the string short on the device side.
func EncodeCString(s string) ([]CHAR16, error) {
	out := make([]CHAR16, 0, len(s)+1)
	err := ucs2Encode(s, func(c CHAR16) error {
		if c == 0 {
			return fmt.Errorf("interior NUL at unit %d", len(out))
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return append(out, 0), nil
}

// checkCString validates what EncodeCString produces: at least the
// terminator, terminator last, no interior NULs.
func checkCString(s []CHAR16) error {
	if len(s) == 0 || s[len(s)-1] != 0 {
		return StatusError(EFI_INVALID_PARAMETER)
	}
	for _, c := range s[:len(s)-1] {
		if c == 0 {
			return StatusError(EFI_INVALID_PARAMETER)
		}
	}
	return nil
}
