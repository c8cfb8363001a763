package notes

import (
	"context"
	"fmt"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Thread is a read view of an order's notes and drafts.
type Thread struct {
	OrderID  string                        `json:"orderId"`
	Customer []domain.NoteEntry            `json:"customer"`
	Yard     []domain.NoteEntry            `json:"yard"`
	Drafts   map[domain.NoteChannel]string `json:"drafts"`
}

// ListNotes returns the order's notes, most recent first. When a channel is
// given the other channel's list is left empty.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) (*Thread, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.ledger(ctx, input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	t := &Thread{
		OrderID:  input.OrderID,
		Customer: []domain.NoteEntry{},
		Yard:     []domain.NoteEntry{},
		Drafts:   l.Drafts(),
	}
	if input.Channel == "" || input.Channel == domain.NoteChannelCustomer {
		t.Customer = l.Notes(domain.NoteChannelCustomer)
	}
	if input.Channel == "" || input.Channel == domain.NoteChannelYard {
		t.Yard = l.Notes(domain.NoteChannelYard)
	}
	return t, nil
}
