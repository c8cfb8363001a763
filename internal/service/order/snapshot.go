package order

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Snapshot is the in-memory list of orders that search runs over. Orders are
// kept newest first, ties broken by id. The backing slice is replaced on
// every write, so a slice returned by All stays valid and unchanged.
type Snapshot struct {
	mu       sync.RWMutex
	orders   []domain.Order
	loadedAt time.Time
}

// NewSnapshot creates an empty, not yet loaded snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

func compareOrders(a, b domain.Order) int {
	if c := b.OrderDate.Compare(a.OrderDate); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Replace swaps in a whole new order list.
func (s *Snapshot) Replace(orders []domain.Order, at time.Time) {
	next := slices.Clone(orders)
	slices.SortStableFunc(next, compareOrders)

	s.mu.Lock()
	s.orders = next
	s.loadedAt = at
	s.mu.Unlock()
}

// All returns the current orders. Callers must not modify the result.
func (s *Snapshot) All() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders
}

// Len returns the number of orders held.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// LoadedAt returns when the snapshot was last fully loaded, or the zero time.
func (s *Snapshot) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Get returns a copy of the order with the given id.
func (s *Snapshot) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i].Clone(), true
		}
	}
	return domain.Order{}, false
}

// Put inserts or replaces orders by id, keeping the sort order. When an id
// repeats, the last one wins.
func (s *Snapshot) Put(orders ...domain.Order) {
	if len(orders) == 0 {
		return
	}
	last := make(map[string]int, len(orders))
	for i, o := range orders {
		last[o.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Order, 0, len(s.orders)+len(orders))
	for _, o := range s.orders {
		if _, ok := last[o.ID]; !ok {
			next = append(next, o)
		}
	}
	for i, o := range orders {
		if last[o.ID] != i {
			continue
		}
		o = o.Clone()
		i, _ := slices.BinarySearchFunc(next, o, compareOrders)
		next = slices.Insert(next, i, o)
	}
	s.orders = next
}
