package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/faq/internal/accordion"
	"github.com/idilsaglam/faq/internal/model"
)

const (
	defaultWidth = 80
	minWidth     = 20
)

// lineSpan is an inclusive range of content lines.
type lineSpan struct{ first, last int }

func (s lineSpan) contains(line int) bool { return line >= s.first && line <= s.last }

// layout is a rendered list plus where each control landed.
type layout struct {
	content  string
	controls []lineSpan
}

type lineWriter struct {
	b    strings.Builder
	line int
}

// add appends a block and returns the lines it occupies.
func (w *lineWriter) add(s string) lineSpan {
	if w.b.Len() > 0 {
		w.b.WriteByte('\n')
	}
	w.b.WriteString(s)
	span := lineSpan{first: w.line, last: w.line + lipgloss.Height(s) - 1}
	w.line = span.last + 1
	return span
}

// renderList draws the whole widget. focus is the index of the focused
// control, or -1 for none.
func renderList(l *accordion.List, focus, width int) layout {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	t := current
	var w lineWriter

	w.add(t.Title.Render(l.Heading()))
	w.add("")
	w.add(renderInstructions(l.Instructions(), width))
	w.add("")

	out := layout{controls: make([]lineSpan, 0, l.Len())}
	for i, it := range l.Items() {
		out.controls = append(out.controls, w.add(renderControl(it, i == focus, width)))
		if it.Expanded() {
			w.add(renderAnswer(it.Entry().Answer, width))
			w.add("")
		}
	}
	out.content = w.b.String()
	return out
}

func renderInstructions(in accordion.Instructions, width int) string {
	t := current
	inner := width - t.Banner.GetHorizontalFrameSize()
	lines := []string{t.Heading.Render(in.Title)}
	for _, ln := range in.Lines {
		bullet := t.SymBullet + " "
		body := lipgloss.NewStyle().Width(inner - len([]rune(bullet))).Render(renderSpans(ln))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, bullet, body))
	}
	return t.Banner.Render(strings.Join(lines, "\n"))
}

func renderSpans(ln model.Line) string {
	t := current
	var sb strings.Builder
	for _, s := range ln {
		switch s.Style {
		case model.Strong:
			sb.WriteString(t.Strong.Render(s.Text))
		case model.Kbd:
			sb.WriteString(t.Kbd.Render(" " + s.Text + " "))
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

func renderControl(it *accordion.Item, focused bool, width int) string {
	t := current
	marker := "  "
	if focused {
		marker = t.SymFocus + " "
	}
	sym := t.SymCollapsed
	if it.Expanded() {
		sym = t.SymExpanded
	}
	prefix := marker + sym + " "
	style := t.Question
	if focused {
		style = t.Focus
	}
	q := style.Width(width - len([]rune(prefix))).Render(it.Entry().Question)
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, q)
}

func renderAnswer(blocks []model.Block, width int) string {
	t := current
	const indent = 4
	body := t.Answer.Width(width - indent)
	var parts []string
	for _, b := range blocks {
		if b.Text != "" {
			parts = append(parts, body.Render(b.Text))
		}
		for _, li := range b.Items {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
				t.SymBullet+" ", t.Answer.Width(width-indent-2).Render(li)))
		}
	}
	return lipgloss.NewStyle().PaddingLeft(indent).Render(strings.Join(parts, "\n"))
}

// RenderStatic draws the list without focus for non-interactive output,
// followed by a count of expanded items.
func RenderStatic(l *accordion.List, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	body := renderList(l, -1, width-current.Frame.GetHorizontalFrameSize()).content
	footer := current.Muted.Render(ProgressBar(len(l.ExpandedIDs()), l.Len(), 20) + " expanded")
	return body + "\n\n" + footer
}
