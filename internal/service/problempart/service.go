// Package problempart builds problematic-part reports and submits them to
// the parts API.
package problempart

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

type partsClient interface {
	CreateProblematicPart(ctx context.Context, p domain.ProblematicPart) (*domain.ProblematicPartRecord, error)
	UpdateProblematicPart(ctx context.Context, id string, p domain.ProblematicPart) (*domain.ProblematicPartRecord, error)
	ListProblematicParts(ctx context.Context, orderID string) ([]domain.ProblematicPartRecord, error)
	GetProblematicPart(ctx context.Context, id string) (*domain.ProblematicPartRecord, error)
	DeleteProblematicPart(ctx context.Context, id string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Service submits problematic-part reports. Identical submissions in flight
// for an order are collapsed into one request, and different submissions
// for the same order are sent one at a time.
type Service struct {
	parts  partsClient
	events eventPublisher
	log    *slog.Logger

	inflight singleflight.Group
	locks    orderLocks
}

// NewService creates a new problematic-part service.
func NewService(
	log *slog.Logger,
	parts partsClient,
	events eventPublisher,
) *Service {
	return &Service{
		parts:  parts,
		events: events,
		log:    log.With("service", "problempart"),
		locks:  orderLocks{m: make(map[string]*orderLock)},
	}
}

// orderLocks hands out one mutex per order id and drops it when unused.
type orderLocks struct {
	mu sync.Mutex
	m  map[string]*orderLock
}

type orderLock struct {
	mu   sync.Mutex
	refs int
}

func (l *orderLocks) lock(orderID string) func() {
	l.mu.Lock()
	ol, ok := l.m[orderID]
	if !ok {
		ol = &orderLock{}
		l.m[orderID] = ol
	}
	ol.refs++
	l.mu.Unlock()

	ol.mu.Lock()
	return func() {
		ol.mu.Unlock()
		l.mu.Lock()
		ol.refs--
		if ol.refs == 0 {
			delete(l.m, orderID)
		}
		l.mu.Unlock()
	}
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
