package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// ReadOrders decodes an order export. Both a bare JSON array and an
// object of the form {"orders": [...]} are accepted.
func ReadOrders(r io.Reader) ([]domain.Order, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("read orders: empty input")
	}

	if data[0] == '[' {
		var orders []domain.Order
		if err := json.Unmarshal(data, &orders); err != nil {
			return nil, fmt.Errorf("decode orders: %w", err)
		}
		return orders, nil
	}

	var wrapped struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return wrapped.Orders, nil
}
