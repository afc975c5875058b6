package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrDuplicateID = errors.New("duplicate entry id")
	ErrInvalidID   = errors.New("invalid entry id")
)

// Entry is one question/answer pair. Entries are static once loaded.
type Entry struct {
	ID       string  `json:"id" toml:"id"`
	Question string  `json:"question" toml:"question"`
	Answer   []Block `json:"answer" toml:"answer"`
}

// Block is one piece of answer content: a paragraph, optionally followed
// by a bulleted list.
type Block struct {
	Text  string   `json:"text,omitempty" toml:"text"`
	Items []string `json:"items,omitempty" toml:"items"`
}

// Paragraph is a shorthand for a text-only block.
func Paragraph(text string) Block { return Block{Text: text} }

// Validate checks the structural invariants of an ordered entry sequence:
// every id is non-empty, free of whitespace and unique.
func Validate(entries []Entry) error {
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("entry %d: %w: empty", i+1, ErrInvalidID)
		}
		if strings.IndexFunc(e.ID, unicode.IsSpace) >= 0 {
			return fmt.Errorf("entry %d: %w: %q contains whitespace", i+1, ErrInvalidID, e.ID)
		}
		if prev, dup := seen[e.ID]; dup {
			return fmt.Errorf("entry %d: %w: %q already used by entry %d", i+1, ErrDuplicateID, e.ID, prev)
		}
		seen[e.ID] = i + 1
	}
	return nil
}
