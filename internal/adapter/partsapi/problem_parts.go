package partsapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// CreateProblematicPart files a new report.
func (c *Client) CreateProblematicPart(ctx context.Context, p domain.ProblematicPart) (*domain.ProblematicPartRecord, error) {
	var rec domain.ProblematicPartRecord
	err := c.do(ctx, call{
		op:            "create problematic part",
		method:        http.MethodPost,
		path:          "/problematic-parts",
		body:          p,
		fallback:      "failed to save problematic part",
		serverMessage: true,
	}, &rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateProblematicPart replaces an existing report.
func (c *Client) UpdateProblematicPart(ctx context.Context, id string, p domain.ProblematicPart) (*domain.ProblematicPartRecord, error) {
	var rec domain.ProblematicPartRecord
	err := c.do(ctx, call{
		op:            "update problematic part",
		method:        http.MethodPut,
		path:          "/problematic-parts/" + url.PathEscape(id),
		body:          p,
		fallback:      "failed to save problematic part",
		serverMessage: true,
	}, &rec)
	if err != nil {
		return nil, err
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return &rec, nil
}

// ListProblematicParts returns the reports filed against an order.
func (c *Client) ListProblematicParts(ctx context.Context, orderID string) ([]domain.ProblematicPartRecord, error) {
	var recs []domain.ProblematicPartRecord
	err := c.do(ctx, call{
		op:       "list problematic parts",
		method:   http.MethodGet,
		path:     "/problematic-parts/order/" + url.PathEscape(orderID),
		fallback: "failed to fetch problematic parts",
	}, &recs)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// GetProblematicPart returns one report.
func (c *Client) GetProblematicPart(ctx context.Context, id string) (*domain.ProblematicPartRecord, error) {
	var rec domain.ProblematicPartRecord
	err := c.do(ctx, call{
		op:       "get problematic part",
		method:   http.MethodGet,
		path:     "/problematic-parts/" + url.PathEscape(id),
		fallback: "failed to fetch problematic part",
	}, &rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteProblematicPart removes a report.
func (c *Client) DeleteProblematicPart(ctx context.Context, id string) error {
	return c.do(ctx, call{
		op:       "delete problematic part",
		method:   http.MethodDelete,
		path:     "/problematic-parts/" + url.PathEscape(id),
		fallback: "failed to delete problematic part",
	}, nil)
}
