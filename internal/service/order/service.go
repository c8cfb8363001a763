// Package order keeps the searchable order snapshot and applies order edits.
package order

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

type orderRepo interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Upsert(ctx context.Context, o domain.Order) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type orderClient interface {
	UpdateOrder(ctx context.Context, o domain.Order) (*domain.Order, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Service serves order reads from an in-memory snapshot and writes through
// to the parts API and the local database.
type Service struct {
	log      *slog.Logger
	orders   orderRepo
	tx       txManager
	upstream orderClient
	events   eventPublisher

	snapshot  *Snapshot
	maxOrders int
	refreshes singleflight.Group
	now       func() time.Time
}

// NewService creates a new order service. maxOrders caps how many of the
// most recent orders are held in the snapshot.
func NewService(
	logger *slog.Logger,
	orders orderRepo,
	tx txManager,
	upstream orderClient,
	events eventPublisher,
	maxOrders int,
) *Service {
	return &Service{
		log:       logger.With("service", "order"),
		orders:    orders,
		tx:        tx,
		upstream:  upstream,
		events:    events,
		snapshot:  NewSnapshot(),
		maxOrders: maxOrders,
		now:       time.Now,
	}
}

// Snapshot exposes the current snapshot for read-only use.
func (s *Service) Snapshot() *Snapshot {
	return s.snapshot
}

func (s *Service) publish(ctx context.Context, ev domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "publish event",
			slog.String("type", string(ev.Type)),
			slog.String("key", ev.Key),
			slog.String("error", err.Error()),
		)
	}
}
