package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Import stores a batch of orders in one transaction and adds them to the
// snapshot. It returns the number of orders stored.
func (s *Service) Import(ctx context.Context, input ImportInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	orders := make([]domain.Order, len(input.Orders))
	for i, o := range input.Orders {
		o = o.Clone()
		o.ID = strings.TrimSpace(o.ID)
		if o.UpdatedAt.IsZero() {
			o.UpdatedAt = s.now()
		}
		if o.CreatedAt.IsZero() {
			o.CreatedAt = o.UpdatedAt
		}
		orders[i] = o
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, o := range orders {
			if err := s.orders.Upsert(txCtx, o); err != nil {
				return fmt.Errorf("upsert order %s: %w", o.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import orders: %w", err)
	}

	s.snapshot.Put(orders...)

	s.log.InfoContext(ctx, "orders imported", slog.Int("count", len(orders)))
	return len(orders), nil
}
