package notes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/pkg/ctxutil"
)

// AddNote appends a note attributed to the operator in ctx. The note is
// visible immediately and removed again if it cannot be stored. A blank
// message returns (nil, nil).
func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (*domain.NoteEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.ledger(ctx, input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	entry, ok := l.Append(input.Channel, input.Message, ctxutil.ActorFromCtx(ctx))
	if !ok {
		return nil, nil
	}
	return s.commit(ctx, l, entry)
}

// SubmitDraft appends the channel's current draft as a note. An empty
// draft returns (nil, nil).
func (s *Service) SubmitDraft(ctx context.Context, input DraftInput) (*domain.NoteEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.ledger(ctx, input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	entry, ok := l.SubmitDraft(input.Channel, ctxutil.ActorFromCtx(ctx))
	if !ok {
		return nil, nil
	}
	return s.commit(ctx, l, entry)
}

// commit stores an entry already appended to the ledger. On failure the
// entry is rolled back and its text returned to the draft.
func (s *Service) commit(ctx context.Context, l *Ledger, entry domain.NoteEntry) (*domain.NoteEntry, error) {
	if err := s.notes.Create(ctx, entry); err != nil {
		l.Replace(entry.Channel, func(prev []domain.NoteEntry) []domain.NoteEntry {
			return removeEntry(prev, entry)
		})
		if l.Draft(entry.Channel) == "" {
			l.SetDraft(entry.Channel, entry.Message)
		}
		return nil, fmt.Errorf("store note: %w", err)
	}

	if err := s.drafts.Delete(entry.OrderID, entry.Channel); err != nil {
		s.log.WarnContext(ctx, "delete stored draft",
			slog.String("order_id", entry.OrderID),
			slog.String("channel", entry.Channel.String()),
			slog.String("error", err.Error()),
		)
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventNoteAppended,
		Key:        entry.OrderID,
		Actor:      entry.Actor,
		OccurredAt: time.Now().UTC(),
		Payload:    entry,
	})

	s.log.InfoContext(ctx, "note added",
		slog.String("order_id", entry.OrderID),
		slog.String("channel", entry.Channel.String()),
		slog.String("note_id", entry.ID.String()),
		slog.String("actor", entry.Actor),
	)

	return &entry, nil
}

func removeEntry(list []domain.NoteEntry, entry domain.NoteEntry) []domain.NoteEntry {
	out := list[:0]
	for _, e := range list {
		if e.ID != entry.ID {
			out = append(out, e)
		}
	}
	return out
}
