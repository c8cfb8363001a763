package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/ordersearch"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Search runs a free-text query over the snapshot. A blank query returns
// every order in the snapshot.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Order, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return ordersearch.Search(s.snapshot.All(), query), nil
}

// List returns a page of orders from the database.
func (s *Service) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.SalesAgent = strings.TrimSpace(filter.SalesAgent)
	if filter.Offset < 0 {
		return nil, domain.NewValidationError("offset", "must be >= 0")
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get returns one order, from the snapshot when present and from the
// database otherwise.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	if o, ok := s.snapshot.Get(id); ok {
		return &o, nil
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}
