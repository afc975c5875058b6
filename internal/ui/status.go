package ui

import (
	"fmt"
	"io"
	"os"
)

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// OK prints a success line.
func OK(w io.Writer, msg string) { fmt.Fprintln(w, current.Success.Render("✔ "+msg)) }

// Fail prints a failure line.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, current.Error.Render("✖ "+msg)) }

// Hint prints a muted follow-up line.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, current.Muted.Render("Hint: "+msg)) }
