package content

import (
	"context"

	"github.com/idilsaglam/faq/internal/model"
)

// Static serves a fixed entry slice.
type Static []model.Entry

func (s Static) Entries(context.Context) ([]model.Entry, error) {
	out := make([]model.Entry, len(s))
	copy(out, s)
	return out, nil
}

// Builtin is the content compiled into the binary.
var Builtin = Static{
	{
		ID:       "faq1",
		Question: "What is 5G technology?",
		Answer: []model.Block{
			model.Paragraph("5G is the next generation of wireless network technology, designed to expand the scope of mobile technology beyond the capabilities of LTE. It will fuel innovation across every industry and transform every aspect of our lives. Over time, 5G technology will change the way we live, work, and play, for the better."),
		},
	},
	{
		ID:       "faq2",
		Question: "Will 4G phones work on a 5G network?",
		Answer: []model.Block{
			model.Paragraph("You must have a 5G-capable phone to access a 5G network. Older 4G devices without 5G radios will not connect to 5G networks."),
		},
	},
	{
		ID:       "faq3",
		Question: "Will 5G work in 4G areas?",
		Answer: []model.Block{
			model.Paragraph("4G and 5G Networks have separate coverage footprints. In many places you will have both 4G and 5G coverage with a 5G device. You can check our 5G coverage map."),
		},
	},
}
