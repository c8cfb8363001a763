package problempart

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/pkg/ctxutil"
)

// List returns the reports filed against an order.
func (s *Service) List(ctx context.Context, orderID string) ([]domain.ProblematicPartRecord, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domain.NewValidationError("orderId", "required")
	}
	recs, err := s.parts.ListProblematicParts(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list problematic parts: %w", err)
	}
	if recs == nil {
		recs = []domain.ProblematicPartRecord{}
	}
	return recs, nil
}

// Get returns one report.
func (s *Service) Get(ctx context.Context, id string) (*domain.ProblematicPartRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	rec, err := s.parts.GetProblematicPart(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get problematic part %s: %w", id, err)
	}
	return rec, nil
}

// Delete removes a report.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "required")
	}
	if err := s.parts.DeleteProblematicPart(ctx, id); err != nil {
		return fmt.Errorf("delete problematic part %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "problematic part deleted", slog.String("id", id))
	s.publish(ctx, domain.Event{
		Type:       domain.EventProblemPartDeleted,
		Key:        id,
		Actor:      ctxutil.ActorFromCtx(ctx),
		OccurredAt: time.Now().UTC(),
		Payload:    map[string]string{"id": id},
	})
	return nil
}
