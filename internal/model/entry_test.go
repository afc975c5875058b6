package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{name: "empty list", entries: nil},
		{name: "unique ids", entries: []Entry{{ID: "faq1"}, {ID: "faq2"}, {ID: "faq3"}}},
		{name: "duplicate id", entries: []Entry{{ID: "faq1"}, {ID: "faq2"}, {ID: "faq1"}}, wantErr: ErrDuplicateID},
		{name: "empty id", entries: []Entry{{ID: "faq1"}, {ID: ""}}, wantErr: ErrInvalidID},
		{name: "whitespace in id", entries: []Entry{{ID: "faq 1"}}, wantErr: ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.entries)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateNamesBothPositions(t *testing.T) {
	err := Validate([]Entry{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 3")
	assert.Contains(t, err.Error(), "entry 1")
}

func TestLineText(t *testing.T) {
	l := Line{{Text: "Press "}, {Text: "Tab", Style: Kbd}, {Text: " to move"}}
	assert.Equal(t, "Press Tab to move", l.Text())
}
