package accordion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/faq/internal/model"
)

const DefaultHeading = "Frequently Asked Questions"

// Instructions is the banner shown above the list.
type Instructions struct {
	Title string
	Lines []model.Line
}

// DefaultInstructions describes how to operate the accordion.
func DefaultInstructions() Instructions {
	return Instructions{
		Title: "How to Use This Accordion",
		Lines: []model.Line{
			{
				{Text: "Click", Style: model.Strong},
				{Text: " or "},
				{Text: "tap", Style: model.Strong},
				{Text: " on any question to reveal its answer"},
			},
			{
				{Text: "Keyboard users:", Style: model.Strong},
				{Text: " Press "},
				{Text: "Tab", Style: model.Kbd},
				{Text: " to navigate between questions, then "},
				{Text: "Enter", Style: model.Kbd},
				{Text: " or "},
				{Text: "Space", Style: model.Kbd},
				{Text: " to expand/collapse"},
			},
			{
				{Text: "Multiple answers can be open at the same time"},
			},
		},
	}
}

// List is a labeled, ordered collection of Items.
type List struct {
	heading      string
	instructions Instructions
	items        []*Item
	byID         map[string]*Item
}

// New validates entries and builds a list with every item collapsed.
func New(heading string, instructions Instructions, entries []model.Entry) (*List, error) {
	if strings.TrimSpace(heading) == "" {
		return nil, errors.New("accordion: heading is required")
	}
	if err := model.Validate(entries); err != nil {
		return nil, fmt.Errorf("accordion: %w", err)
	}
	l := &List{
		heading:      heading,
		instructions: instructions,
		items:        make([]*Item, 0, len(entries)),
		byID:         make(map[string]*Item, len(entries)),
	}
	for _, e := range entries {
		it := NewItem(e)
		l.items = append(l.items, it)
		l.byID[e.ID] = it
	}
	return l, nil
}

// MustNew is New for content known to be valid at build time.
func MustNew(heading string, instructions Instructions, entries []model.Entry) *List {
	l, err := New(heading, instructions, entries)
	if err != nil {
		panic(err)
	}
	return l
}

// Heading is the top-level heading text and the region's accessible label.
func (l *List) Heading() string            { return l.heading }
func (l *List) Instructions() Instructions { return l.instructions }
func (l *List) Len() int                   { return len(l.items) }

// Items returns the items in input order.
func (l *List) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Item(id string) (*Item, bool) {
	it, ok := l.byID[id]
	return it, ok
}

// At returns the item at position i.
func (l *List) At(i int) *Item { return l.items[i] }

// Activate routes an activation to the item with the given id. It reports
// false if no such item exists.
func (l *List) Activate(id string, src Activation) bool {
	it, ok := l.byID[id]
	if !ok {
		return false
	}
	it.Activate(src)
	return true
}

// ExpandedIDs lists the ids of expanded items in order.
func (l *List) ExpandedIDs() []string {
	var ids []string
	for _, it := range l.items {
		if it.expanded {
			ids = append(ids, it.entry.ID)
		}
	}
	return ids
}
