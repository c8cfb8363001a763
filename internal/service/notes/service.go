// Package notes manages the per-order customer and yard note ledgers.
package notes

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/pkg/flight"
)

// loadTimeout bounds one shared ledger hydration.
const loadTimeout = 30 * time.Second

type noteRepo interface {
	ListByOrder(ctx context.Context, orderID string) ([]domain.NoteEntry, error)
	Create(ctx context.Context, entry domain.NoteEntry) error
}

type draftStore interface {
	Load(orderID string) (map[domain.NoteChannel]string, error)
	Save(orderID string, ch domain.NoteChannel, text string) error
	Delete(orderID string, ch domain.NoteChannel) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Service owns one Ledger per order, hydrated on first use and dropped
// once idle. Notes and drafts are persisted, so a dropped ledger is
// rebuilt from storage on the next access.
type Service struct {
	notes  noteRepo
	drafts draftStore
	events eventPublisher
	log    *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	ledgers map[string]*cachedLedger
	loads   singleflight.Group
}

type cachedLedger struct {
	ledger   *Ledger
	lastUsed atomic.Int64 // unix nanoseconds
}

func (c *cachedLedger) touch(now time.Time) { c.lastUsed.Store(now.UnixNano()) }

// NewService creates a new notes service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	drafts draftStore,
	events eventPublisher,
) *Service {
	return &Service{
		notes:   notes,
		drafts:  drafts,
		events:  events,
		log:     log.With("service", "notes"),
		now:     time.Now,
		ledgers: make(map[string]*cachedLedger),
	}
}

// ledger returns the order's ledger, loading notes and drafts on first use.
// Concurrent first calls for the same order share a single load.
func (s *Service) ledger(ctx context.Context, orderID string) (*Ledger, error) {
	s.mu.RLock()
	c, ok := s.ledgers[orderID]
	s.mu.RUnlock()
	if ok {
		c.touch(s.now())
		return c.ledger, nil
	}

	c, _, err := flight.Do(ctx, &s.loads, orderID, loadTimeout, func(ctx context.Context) (*cachedLedger, error) {
		l, err := s.load(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return s.store(orderID, l), nil
	})
	if err != nil {
		return nil, err
	}
	c.touch(s.now())
	return c.ledger, nil
}

// store caches l unless another load got there first.
func (s *Service) store(orderID string, l *Ledger) *cachedLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.ledgers[orderID]; ok {
		return c
	}
	c := &cachedLedger{ledger: l}
	c.touch(s.now())
	s.ledgers[orderID] = c
	return c
}

// Evict drops ledgers unused since before cutoff and returns how many
// remain cached.
func (s *Service) Evict(cutoff time.Time) int {
	limit := cutoff.UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.ledgers {
		if c.lastUsed.Load() < limit {
			delete(s.ledgers, id)
		}
	}
	return len(s.ledgers)
}

// Run evicts ledgers idle for longer than idleTTL on every tick of interval
// until ctx is done.
func (s *Service) Run(ctx context.Context, interval, idleTTL time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			remaining := s.Evict(s.now().Add(-idleTTL))
			s.log.DebugContext(ctx, "idle ledgers evicted", slog.Int("cached", remaining))
		}
	}
}

func (s *Service) load(ctx context.Context, orderID string) (*Ledger, error) {
	entries, err := s.notes.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var customer, yard []domain.NoteEntry
	for _, e := range entries {
		switch e.Channel {
		case domain.NoteChannelCustomer:
			customer = append(customer, e)
		case domain.NoteChannelYard:
			yard = append(yard, e)
		}
	}

	l := NewLedger(orderID)
	l.Initialize(customer, yard)

	drafts, err := s.drafts.Load(orderID)
	if err != nil {
		s.log.WarnContext(ctx, "load note drafts",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
	}
	for ch, text := range drafts {
		l.SetDraft(ch, text)
	}

	s.log.DebugContext(ctx, "ledger loaded",
		slog.String("order_id", orderID),
		slog.Int("customer_notes", len(customer)),
		slog.Int("yard_notes", len(yard)),
	)
	return l, nil
}

// publish sends an event. Failures are logged and never fail the caller.
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
