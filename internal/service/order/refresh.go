package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/partsdesk-backend/pkg/flight"
)

const refreshTimeout = time.Minute

// Refresh reloads the snapshot from the database. Concurrent callers share
// one load.
func (s *Service) Refresh(ctx context.Context) error {
	_, _, err := flight.Do(ctx, &s.refreshes, "refresh", refreshTimeout, func(ctx context.Context) (int, error) {
		orders, err := s.orders.ListRecent(ctx, s.maxOrders)
		if err != nil {
			return 0, fmt.Errorf("list recent orders: %w", err)
		}
		s.snapshot.Replace(orders, s.now())
		s.log.DebugContext(ctx, "snapshot refreshed", slog.Int("orders", len(orders)))
		return len(orders), nil
	})
	return err
}

// Run refreshes the snapshot immediately and then on every tick of interval
// until ctx is done. Failed refreshes are logged and the old snapshot is kept.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
		s.log.ErrorContext(ctx, "initial snapshot refresh failed", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
				s.log.WarnContext(ctx, "snapshot refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}

// ensureLoaded loads the snapshot on first use.
func (s *Service) ensureLoaded(ctx context.Context) error {
	if !s.snapshot.LoadedAt().IsZero() {
		return nil
	}
	return s.Refresh(ctx)
}
