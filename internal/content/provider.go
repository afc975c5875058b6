// Package content supplies the ordered FAQ entries the accordion renders.
package content

import (
	"context"

	"github.com/idilsaglam/faq/internal/model"
)

// Provider returns the ordered entry sequence for a list.
type Provider interface {
	Entries(ctx context.Context) ([]model.Entry, error)
}

// Load fetches entries from p and validates them.
func Load(ctx context.Context, p Provider) ([]model.Entry, error) {
	entries, err := p.Entries(ctx)
	if err != nil {
		return nil, err
	}
	if err := model.Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
