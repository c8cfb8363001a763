package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// VehicleYears returns the known model years for a make and model, newest first.
func (s *Service) VehicleYears(ctx context.Context, vehicleMake, model string) ([]int, error) {
	vehicleMake = strings.TrimSpace(vehicleMake)
	model = strings.TrimSpace(model)

	var errs []domain.FieldError
	if vehicleMake == "" {
		errs = append(errs, domain.FieldError{Field: "make", Message: "required"})
	}
	if model == "" {
		errs = append(errs, domain.FieldError{Field: "model", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	years, err := s.client.VehicleYears(ctx, vehicleMake, model)
	if err != nil {
		if s.bestEffort && ctx.Err() == nil {
			s.log.WarnContext(ctx, "vehicle years lookup failed, returning none",
				slog.String("make", vehicleMake),
				slog.String("model", model),
				slog.String("error", err.Error()),
			)
			return []int{}, nil
		}
		return nil, fmt.Errorf("vehicle years: %w", err)
	}

	out := slices.Clone(years)
	slices.SortFunc(out, func(a, b int) int { return b - a })
	if out == nil {
		out = []int{}
	}
	return out, nil
}

// GroupedProducts returns catalog variants grouped by part. Failures are
// always reported.
func (s *Service) GroupedProducts(ctx context.Context, q domain.VehicleQuery) ([]domain.ProductGroup, error) {
	q = domain.VehicleQuery{
		Make:  strings.TrimSpace(q.Make),
		Model: strings.TrimSpace(q.Model),
		Year:  strings.TrimSpace(q.Year),
		Part:  strings.TrimSpace(q.Part),
	}
	if q.Make == "" {
		return nil, domain.NewValidationError("make", "required")
	}

	groups, err := s.client.GroupedProducts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("grouped products: %w", err)
	}
	if groups == nil {
		groups = []domain.ProductGroup{}
	}
	return groups, nil
}

// PictureURL returns a download URL for a stored picture key. In best-effort
// mode a failed lookup yields an empty URL.
func (s *Service) PictureURL(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", domain.NewValidationError("key", "required")
	}

	u, err := s.client.PresignedURL(ctx, key)
	if err != nil {
		if s.bestEffort && ctx.Err() == nil {
			s.log.WarnContext(ctx, "picture url lookup failed, returning empty",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			return "", nil
		}
		return "", fmt.Errorf("picture url: %w", err)
	}
	return u, nil
}
