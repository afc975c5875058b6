// Package accordion holds the expand/collapse model behind the FAQ widget.
// Each Item owns its state; a List only composes Items in order.
package accordion

import "github.com/idilsaglam/faq/internal/model"

// Activation is the user action that reached a control.
type Activation int

const (
	Pointer  Activation = iota // click or tap
	KeyEnter                   // Enter on a focused control
	KeySpace                   // Space on a focused control
)

func (a Activation) String() string {
	switch a {
	case Pointer:
		return "pointer"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	}
	return "unknown"
}

// ActivationForKey maps a key name to the activation it triggers on a
// focused control. Only Enter and Space activate.
func ActivationForKey(k string) (Activation, bool) {
	switch k {
	case "enter":
		return KeyEnter, true
	case " ", "space":
		return KeySpace, true
	}
	return 0, false
}

// Item is a single question with its answer region.
type Item struct {
	entry    model.Entry
	expanded bool
}

// NewItem returns a collapsed item for e.
func NewItem(e model.Entry) *Item {
	return &Item{entry: e}
}

func (it *Item) Entry() model.Entry { return it.entry }
func (it *Item) ID() string         { return it.entry.ID }
func (it *Item) Expanded() bool     { return it.expanded }

// ControlID is the id of the element that toggles the item.
func (it *Item) ControlID() string { return ControlID(it.entry.ID) }

// ContentID is the id of the answer region the control points at.
func (it *Item) ContentID() string { return ContentID(it.entry.ID) }

// Toggle flips the expanded state.
func (it *Item) Toggle() {
	it.expanded = !it.expanded
}

// Activate handles a pointer or keyboard activation. Every source toggles.
func (it *Item) Activate(Activation) {
	it.Toggle()
}

func ControlID(entryID string) string { return entryID + "-button" }
func ContentID(entryID string) string { return entryID + "-answer" }
