package partsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// UpdateOrder pushes an edited order and returns the order as stored.
func (c *Client) UpdateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, call{
		op:            "update order",
		method:        http.MethodPut,
		path:          "/orders/" + url.PathEscape(o.ID),
		body:          o,
		fallback:      "failed to update order",
		serverMessage: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = o.ID
	}
	return &out, nil
}

// VehicleYears returns the model years known for a make and model, in the
// order the API sends them.
func (c *Client) VehicleYears(ctx context.Context, vehicleMake, model string) ([]int, error) {
	var raw []json.RawMessage
	err := c.do(ctx, call{
		op:       "vehicle years",
		method:   http.MethodGet,
		path:     "/products/years",
		query:    url.Values{"make": {vehicleMake}, "model": {model}},
		fallback: "failed to fetch years",
	}, &raw)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, len(raw))
	for _, r := range raw {
		y, err := parseYear(r)
		if err != nil {
			return nil, fmt.Errorf("partsapi vehicle years: %w", err)
		}
		years = append(years, y)
	}
	return years, nil
}

// parseYear accepts a year encoded as a JSON number or string.
func parseYear(raw json.RawMessage) (int, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("year %s: %w", raw, err)
		}
		return int(v), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("year %s: %w", raw, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("year %q: %w", s, err)
	}
	return v, nil
}

// GroupedProducts returns catalog variants grouped by part, with sub-parts.
func (c *Client) GroupedProducts(ctx context.Context, q domain.VehicleQuery) ([]domain.ProductGroup, error) {
	query := url.Values{}
	for k, v := range map[string]string{"make": q.Make, "model": q.Model, "year": q.Year, "part": q.Part} {
		if v != "" {
			query.Set(k, v)
		}
	}

	var groups []domain.ProductGroup
	err := c.do(ctx, call{
		op:            "grouped products",
		method:        http.MethodGet,
		path:          "/products/v2/grouped-with-subparts",
		query:         query,
		fallback:      "failed to fetch products",
		serverMessage: true,
	}, &groups)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// PresignedURL returns a time-limited download URL for a stored picture.
func (c *Client) PresignedURL(ctx context.Context, key string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.do(ctx, call{
		op:       "presigned url",
		method:   http.MethodGet,
		path:     "/presigned-url/" + url.PathEscape(key),
		fallback: "failed to fetch picture url",
	}, &out)
	if err != nil {
		return "", err
	}
	return out.URL, nil
}
