package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/paycard"
	"github.com/heartmarshall/partsdesk-backend/pkg/ctxutil"
)

// Update sends an edited order to the parts API, stores the order the API
// returns and patches it into the snapshot.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	o := input.Order.Clone()
	o.ID = strings.TrimSpace(input.ID)
	if input.CardNumber != "" {
		o.CardLast4 = paycard.Last4(input.CardNumber)
		o.CardNetwork = string(paycard.Classify(input.CardNumber))
	}

	saved, err := s.upstream.UpdateOrder(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("update order upstream: %w", err)
	}
	if saved.UpdatedAt.IsZero() {
		saved.UpdatedAt = s.now()
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.orders.Upsert(txCtx, *saved)
	})
	if err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	s.snapshot.Put(*saved)

	s.publish(ctx, domain.Event{
		Type:       domain.EventOrderUpdated,
		Key:        saved.ID,
		Actor:      ctxutil.ActorFromCtx(ctx),
		OccurredAt: s.now(),
		Payload:    saved,
	})

	s.log.InfoContext(ctx, "order updated",
		slog.String("order_id", saved.ID),
		slog.String("actor", ctxutil.ActorFromCtx(ctx)),
	)
	return saved, nil
}
