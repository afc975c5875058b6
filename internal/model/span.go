package model

// SpanStyle marks inline emphasis inside instruction text.
type SpanStyle int

const (
	Plain SpanStyle = iota
	Strong
	Kbd // a key the user presses
)

// Span is a run of inline text with a single style.
type Span struct {
	Text  string
	Style SpanStyle
}

// Line is a sequence of spans rendered on one logical line.
type Line []Span

// Text returns the line without any styling.
func (l Line) Text() string {
	var n int
	for _, s := range l {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range l {
		b = append(b, s.Text...)
	}
	return string(b)
}
