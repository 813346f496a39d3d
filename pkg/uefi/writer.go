package uefi

import (
	"errors"
	"io"
)

// writeBufSize is the staging capacity in code units, sized to bound stack
// usage; one extra slot holds the terminator.
const writeBufSize = 128

// ErrWriteFault is the single failure surfaced by the buffered write path.
// Output flushed before the fault stays on screen, the device cannot take
// it back.
var ErrWriteFault = errors.New("text output write fault")

var (
	_ io.Writer       = (*Output)(nil)
	_ io.StringWriter = (*Output)(nil)
)

// WriteString transcodes s to the device's UCS-2 alphabet through a small
// fixed staging buffer, translating "\n" to "\r\n" on the way, and flushes
// full buffers as null-terminated writes. A trailing flush always runs,
// even with nothing staged, so the device sees a final (possibly empty)
// terminated write.
//
// Any transcoding or device failure aborts the whole write with
// ErrWriteFault.
func (o *Output) WriteString(s string) (int, error) {
	var buf [writeBufSize + 1]CHAR16
	n := 0

	flush := func() error {
		buf[n] = 0
		codes := buf[:n+1]
		n = 0
		return o.OutputString(codes)
	}
	stage := func(c CHAR16) error {
		buf[n] = c
		n++
		if n == writeBufSize {
			return flush()
		}
		return nil
	}

	err := ucs2Encode(s, func(c CHAR16) error {
		if c == '\n' {
			if err := stage('\r'); err != nil {
				return err
			}
		}
		return stage(c)
	})
	if err != nil {
		return 0, ErrWriteFault
	}
	if err := flush(); err != nil {
		return 0, ErrWriteFault
	}
	return len(s), nil
}

// Write implements io.Writer so the console works with fmt.Fprintf and
// friends. p is interpreted as UTF-8 text.
func (o *Output) Write(p []byte) (int, error) {
	return o.WriteString(string(p))
}
