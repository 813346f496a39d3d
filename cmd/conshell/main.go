//go:build tamago

package main

import (
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"

	_ "github.com/usbarmory/go-boot/cmd"
	"github.com/usbarmory/go-boot/shell"
	"github.com/usbarmory/go-boot/uefi/x64"

	"github.com/costinm/efi-console/pkg/uefi"
)

// Interactive console exerciser for the Simple Text Output wrapper:
// enumerate and switch text modes, set colors, drive the cursor, read
// keystrokes and push text through the buffered UCS-2 write path.
func main() {
	log.SetFlags(0)

	out := uefi.OutputAt(uintptr(x64.UEFI.Console.Out))
	in := uefi.InputAt(uintptr(x64.UEFI.Console.In))

	banner := fmt.Sprintf("efi-console • %s/%s (%s) • UEFI x64",
		runtime.GOOS, runtime.GOARCH, runtime.Version())

	iface := &shell.Interface{
		Banner:  banner,
		Console: x64.UEFI.Console,
	}

	addCommands(out, in)

	// disable UEFI watchdog
	x64.UEFI.Boot.SetWatchdogTimer(0)

	iface.ReadWriter = x64.UEFI.Console
	iface.Start(false)

	log.Print("exit")
}

func addCommands(out *uefi.Output, in *uefi.Input) {
	shell.Add(shell.Cmd{
		Name: "textmodes",
		Help: "list the text modes supported by ConOut",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			var b strings.Builder

			for m := range out.Modes() {
				fmt.Fprintf(&b, "mode %d: %dx%d\n", m.Index(), m.Columns(), m.Rows())
			}

			if cur, err := out.CurrentMode(); err == nil && cur != nil {
				fmt.Fprintf(&b, "current: %d\n", cur.Index())
			}

			return b.String(), nil
		},
	})

	shell.Add(shell.Cmd{
		Name:   "textmode",
		Args:   1,
		Syntax: "<index>",
		Help:   "switch ConOut to the given text mode",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			index, err := strconv.Atoi(arg[0])
			if err != nil {
				return "", err
			}

			m, err := out.QueryMode(index)
			if err != nil {
				return "", err
			}

			return "", out.SetMode(m)
		},
	})

	shell.Add(shell.Cmd{
		Name:   "color",
		Args:   2,
		Syntax: "<fg 0-15> <bg 0-7>",
		Help:   "set ConOut foreground and background colors",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			fg, err := strconv.Atoi(arg[0])
			if err != nil {
				return "", err
			}
			bg, err := strconv.Atoi(arg[1])
			if err != nil {
				return "", err
			}

			// SetColor treats a bad background as a caller bug,
			// reject user input before it panics.
			if bg < 0 || bg > 7 || fg < 0 || fg > 15 {
				return "", fmt.Errorf("color out of range")
			}

			return "", out.SetColor(uefi.Color(fg), uefi.Color(bg))
		},
	})

	shell.Add(shell.Cmd{
		Name: "cls",
		Help: "clear ConOut",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			return "", out.Clear()
		},
	})

	shell.Add(shell.Cmd{
		Name:   "cursor",
		Args:   1,
		Syntax: "on|off",
		Help:   "show or hide the ConOut cursor",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			switch arg[0] {
			case "on":
				return "", out.EnableCursor(true)
			case "off":
				return "", out.EnableCursor(false)
			default:
				return "", fmt.Errorf("invalid argument %q", arg[0])
			}
		},
	})

	shell.Add(shell.Cmd{
		Name:   "moveto",
		Args:   2,
		Syntax: "<col> <row>",
		Help:   "move the ConOut cursor",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			col, err := strconv.Atoi(arg[0])
			if err != nil {
				return "", err
			}
			row, err := strconv.Atoi(arg[1])
			if err != nil {
				return "", err
			}

			return "", out.SetCursorPosition(col, row)
		},
	})

	shell.Add(shell.Cmd{
		Name: "readkey",
		Help: "wait for a keystroke on ConIn and report it",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			key, err := in.ReadKey()
			if err != nil {
				return "", err
			}

			if key.UnicodeChar != 0 {
				return fmt.Sprintf("key %q scan 0x%04x",
					rune(key.UnicodeChar), key.ScanCode), nil
			}

			return fmt.Sprintf("scan 0x%04x", key.ScanCode), nil
		},
	})

	shell.Add(shell.Cmd{
		Name:   "glyphs",
		Args:   1,
		Syntax: "<text>",
		Help:   "probe whether ConOut can render every character",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			ok, err := out.TestString(strings.Join(arg, " "))
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("renderable: %v", ok), nil
		},
	})

	shell.Add(shell.Cmd{
		Name:   "say",
		Args:   1,
		Syntax: "<text>",
		Help:   "write text through the buffered ConOut encoder",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			_, err := out.WriteString(strings.Join(arg, " ") + "\n")
			return "", err
		},
	})

	shell.Add(shell.Cmd{
		Name: "reboot",
		Help: "cold reset through EFI Runtime Services",
		Fn: func(c *shell.Interface, arg []string) (string, error) {
			x64.UEFI.Runtime.ResetSystem(uefi.EfiResetCold)
			return "", nil
		},
	})
}
