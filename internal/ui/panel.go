package ui

import (
	"fmt"
	"io"
	"strings"
)

// ProgressBar renders a bar of width cells with an n/total suffix.
func ProgressBar(n, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := n * width / total
	if filled > width {
		filled = width
	}
	t := current
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, n, total)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, body string) {
	fmt.Fprintln(w, current.Frame.Render(body))
}
