package notes

import (
	"context"
	"fmt"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Drafts returns the unsent text of both channels.
func (s *Service) Drafts(ctx context.Context, orderID string) (map[domain.NoteChannel]string, error) {
	if err := (ListNotesInput{OrderID: orderID}).Validate(); err != nil {
		return nil, err
	}
	l, err := s.ledger(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	return l.Drafts(), nil
}

// SaveDraft replaces a channel's draft and stores it. Drafts are shared by
// every operator working on the order.
func (s *Service) SaveDraft(ctx context.Context, input DraftInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	l, err := s.ledger(ctx, input.OrderID)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	l.SetDraft(input.Channel, input.Text)
	if err := s.drafts.Save(input.OrderID, input.Channel, input.Text); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// ClearDraft empties a channel's draft.
func (s *Service) ClearDraft(ctx context.Context, input DraftInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	l, err := s.ledger(ctx, input.OrderID)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	l.ClearDraft(input.Channel)
	if err := s.drafts.Delete(input.OrderID, input.Channel); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
