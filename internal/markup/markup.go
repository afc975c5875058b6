// Package markup renders an accordion list as accessible HTML.
//
// A control is a <button type="button"> carrying aria-expanded and
// aria-controls. The answer region it points at is always present and is
// hidden while collapsed. The list is a region labeled with the h1 text.
package markup

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/idilsaglam/faq/internal/accordion"
	"github.com/idilsaglam/faq/internal/model"
)

func el(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}
	return parent
}

// Fragment builds the widget: heading, instructions and the labeled list.
func Fragment(l *accordion.List) *html.Node {
	root := el(atom.Div, attr("class", "faq"))
	root.AppendChild(appendAll(el(atom.H1, attr("id", "faq-heading")), text(l.Heading())))
	root.AppendChild(instructions(l.Instructions()))

	list := el(atom.Ul,
		attr("class", "faq-list"),
		attr("role", "region"),
		attr("aria-label", l.Heading()),
	)
	for _, it := range l.Items() {
		list.AppendChild(item(it))
	}
	root.AppendChild(list)
	return root
}

func instructions(in accordion.Instructions) *html.Node {
	box := el(atom.Div, attr("class", "faq-instructions"))
	box.AppendChild(appendAll(el(atom.H2), text(in.Title)))
	ul := el(atom.Ul)
	for _, line := range in.Lines {
		ul.AppendChild(appendAll(el(atom.Li), spans(line)...))
	}
	box.AppendChild(ul)
	return box
}

func spans(line model.Line) []*html.Node {
	out := make([]*html.Node, 0, len(line))
	for _, s := range line {
		switch s.Style {
		case model.Strong:
			out = append(out, appendAll(el(atom.Strong), text(s.Text)))
		case model.Kbd:
			out = append(out, appendAll(el(atom.Kbd), text(s.Text)))
		default:
			out = append(out, text(s.Text))
		}
	}
	return out
}

func item(it *accordion.Item) *html.Node {
	expanded := it.Expanded()

	button := el(atom.Button,
		attr("type", "button"),
		attr("id", it.ControlID()),
		attr("class", "faq-button"),
		attr("aria-expanded", strconv.FormatBool(expanded)),
		attr("aria-controls", it.ContentID()),
	)
	button.AppendChild(appendAll(el(atom.Span), text(it.Entry().Question)))
	button.AppendChild(chevron(expanded))

	answer := el(atom.Div,
		attr("id", it.ContentID()),
		attr("class", "faq-answer"),
	)
	if !expanded {
		answer.Attr = append(answer.Attr, attr("hidden", ""))
	}
	body := el(atom.Div, attr("class", "faq-answer-body"))
	for _, b := range it.Entry().Answer {
		if b.Text != "" {
			body.AppendChild(appendAll(el(atom.P), text(b.Text)))
		}
		if len(b.Items) > 0 {
			ul := el(atom.Ul)
			for _, li := range b.Items {
				ul.AppendChild(appendAll(el(atom.Li), text(li)))
			}
			body.AppendChild(ul)
		}
	}
	answer.AppendChild(body)

	return appendAll(el(atom.Li), button, answer)
}

func chevron(expanded bool) *html.Node {
	class := "faq-icon"
	if expanded {
		class += " rotate-180"
	}
	svg := el(atom.Svg,
		attr("class", class),
		attr("aria-hidden", "true"),
		attr("focusable", "false"),
		attr("viewBox", "0 0 20 20"),
		attr("fill", "currentColor"),
	)
	svg.Namespace = "svg"
	path := &html.Node{Type: html.ElementNode, Data: "path", Namespace: "svg"}
	path.Attr = append(path.Attr, attr("d", "M5.3 7.3a1 1 0 0 1 1.4 0L10 10.6l3.3-3.3a1 1 0 1 1 1.4 1.4l-4 4a1 1 0 0 1-1.4 0l-4-4a1 1 0 0 1 0-1.4z"))
	svg.AppendChild(path)
	return svg
}

// Document wraps the fragment in a standalone page with styles and the
// toggle script.
func Document(l *accordion.List) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := el(atom.Html, attr("lang", "en"))
	head := appendAll(el(atom.Head),
		el(atom.Meta, attr("charset", "utf-8")),
		el(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")),
		appendAll(el(atom.Title), text(l.Heading())),
		appendAll(el(atom.Style), text(asset("accordion.css"))),
	)
	body := appendAll(el(atom.Body),
		appendAll(el(atom.Main), Fragment(l)),
		appendAll(el(atom.Script), text(asset("accordion.js"))),
	)
	doc.AppendChild(appendAll(root, head, body))
	return doc
}

// WriteFragment renders only the widget markup.
func WriteFragment(w io.Writer, l *accordion.List) error {
	if err := html.Render(w, Fragment(l)); err != nil {
		return fmt.Errorf("render fragment: %w", err)
	}
	return nil
}

// WriteDocument renders a full HTML page.
func WriteDocument(w io.Writer, l *accordion.List) error {
	if err := html.Render(w, Document(l)); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}
