// Package catalog proxies vehicle, product and picture lookups to the parts API.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

type catalogClient interface {
	VehicleYears(ctx context.Context, vehicleMake, model string) ([]int, error)
	GroupedProducts(ctx context.Context, q domain.VehicleQuery) ([]domain.ProductGroup, error)
	PresignedURL(ctx context.Context, key string) (string, error)
}

// Service wraps catalog lookups. With bestEffort set, year and picture
// lookups degrade to empty results instead of failing the request.
type Service struct {
	log        *slog.Logger
	client     catalogClient
	bestEffort bool
}

// NewService creates a new catalog service.
func NewService(logger *slog.Logger, client catalogClient, bestEffort bool) *Service {
	return &Service{
		log:        logger.With("service", "catalog"),
		client:     client,
		bestEffort: bestEffort,
	}
}
