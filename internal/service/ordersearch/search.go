// Package ordersearch implements free-text search over in-memory orders.
//
// An order matches when the query is a case-insensitive substring of any
// scalar field of the order, of its shipping info, or of any of its
// products. Results keep input order.
package ordersearch

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Search returns the orders matching query in their original order. A
// blank query returns orders itself.
func Search(orders []domain.Order, query string) []domain.Order {
	q := strings.TrimSpace(query)
	if q == "" {
		return orders
	}
	m := newMatcher(q)

	result := make([]domain.Order, 0)
	for i := range orders {
		if m.order(&orders[i]) {
			result = append(result, orders[i])
		}
	}
	return result
}

// Matches reports whether a single order matches query. A blank query
// matches everything.
func Matches(o domain.Order, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return newMatcher(q).order(&o)
}

type matcher struct {
	needle string
}

func newMatcher(q string) matcher {
	return matcher{needle: strings.ToLower(q)}
}

func (m matcher) any(values []string) bool {
	for _, v := range values {
		if v != "" && strings.Contains(strings.ToLower(v), m.needle) {
			return true
		}
	}
	return false
}

func (m matcher) order(o *domain.Order) bool {
	if m.any(orderFields(o)) {
		return true
	}
	if o.OwnShippingInfo != nil && m.any(shippingFields(o.OwnShippingInfo)) {
		return true
	}
	for i := range o.Products {
		if m.any(productFields(&o.Products[i])) {
			return true
		}
	}
	return false
}

// orderFields lists the top-level scalar fields of an order as text.
// Products and shipping info are structured and searched separately.
func orderFields(o *domain.Order) []string {
	return []string{
		o.ID,
		timeText(o.OrderDate),
		o.Status,
		o.CustomerName,
		o.CustomerEmail,
		o.CustomerPhone,
		o.BillingAddress,
		o.ShippingAddress,
		o.PaymentMethod,
		o.CardHolder,
		o.CardLast4,
		o.CardNetwork,
		o.SalesAgent,
		o.Source,
		moneyText(o.TotalAmount),
		moneyText(o.PaidAmount),
		timeText(o.CreatedAt),
		timeText(o.UpdatedAt),
	}
}

func productFields(p *domain.Product) []string {
	return []string{
		p.SKU,
		p.Make,
		p.Model,
		intText(p.Year),
		p.Part,
		p.Specification,
		p.VIN,
		moneyText(p.Price),
		intText(p.Quantity),
		intText(p.WarrantyMonths),
		intText(p.Mileage),
	}
}

func shippingFields(s *domain.ShippingInfo) []string {
	return []string{
		s.Carrier,
		s.TrackingNumber,
		s.Method,
		moneyText(s.Cost),
		s.Status,
		timePtrText(s.ShippedAt),
		timePtrText(s.EstimatedDelivery),
	}
}

// Numbers always render, zero included; only absent times render as "".

func intText(v int) string {
	return strconv.Itoa(v)
}

func moneyText(m domain.Money) string {
	return m.String()
}

func timeText(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func timePtrText(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeText(*t)
}
