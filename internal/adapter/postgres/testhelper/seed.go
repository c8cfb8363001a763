package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewOrder returns an order with a unique id, two products and shipping info.
// Nothing is written to the database.
func NewOrder(orderDate time.Time) domain.Order {
	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	shipped := orderDate.UTC().Add(24 * time.Hour).Truncate(time.Microsecond)

	return domain.Order{
		ID:              "T-" + suffix,
		OrderDate:       orderDate.UTC().Truncate(time.Microsecond),
		Status:          "paid",
		CustomerName:    "Customer " + suffix,
		CustomerEmail:   "customer-" + suffix + "@example.com",
		CustomerPhone:   "555-0100",
		BillingAddress:  "1 Main St",
		ShippingAddress: "2 Side St",
		PaymentMethod:   "card",
		CardHolder:      "Customer " + suffix,
		CardLast4:       "1111",
		CardNetwork:     "Visa",
		SalesAgent:      "agent-" + suffix,
		Source:          "phone",
		TotalAmount:     domain.MustParseMoney("1250.50"),
		PaidAmount:      domain.MustParseMoney("1250.50"),
		CreatedAt:       now,
		UpdatedAt:       now,
		Products: []domain.Product{
			{SKU: "ENG-" + suffix, Make: "Honda", Model: "Civic", Year: 2012, Part: "Engine", Specification: "1.8L", VIN: "1HGCM82633A004352", Price: domain.MustParseMoney("1000"), Quantity: 1, WarrantyMonths: 6, Mileage: 84000},
			{SKU: "TRN-" + suffix, Make: "Honda", Model: "Civic", Year: 2012, Part: "Transmission", Price: domain.MustParseMoney("250.50"), Quantity: 1},
		},
		OwnShippingInfo: &domain.ShippingInfo{
			Carrier:        "FedEx",
			TrackingNumber: "TRK-" + suffix,
			Method:         "freight",
			Cost:           domain.MustParseMoney("75"),
			Status:         "in transit",
			ShippedAt:      &shipped,
		},
	}
}

// SeedOrder inserts a minimal order row without products or shipping.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, orderDate time.Time) string {
	t.Helper()

	id := "S-" + uniqueSuffix()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO orders (id, order_date, status, customer_name)
		 VALUES ($1, $2, 'new', $3)`,
		id, orderDate.UTC(), "Seeded "+id,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder insert order: %v", err)
	}
	return id
}
