// Package order implements the order repository using PostgreSQL. An order
// is spread over orders, order_products and order_shipping; reads assemble
// it back with one query per table.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new order repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var orderColumns = []string{
	"id", "order_date", "status", "customer_name", "customer_email", "customer_phone",
	"billing_address", "shipping_address", "payment_method", "card_holder", "card_last4",
	"card_network", "sales_agent", "source", "total_amount_cents", "paid_amount_cents",
	"created_at", "updated_at",
}

var productColumns = []string{
	"order_id", "sku", "make", "model", "year", "part", "specification", "vin",
	"price_cents", "quantity", "warranty_months", "mileage",
}

var shippingColumns = []string{
	"order_id", "carrier", "tracking_number", "method", "cost_cents", "status",
	"shipped_at", "estimated_delivery",
}

const upsertOrderSQL = `
INSERT INTO orders (
    id, order_date, status, customer_name, customer_email, customer_phone,
    billing_address, shipping_address, payment_method, card_holder, card_last4,
    card_network, sales_agent, source, total_amount_cents, paid_amount_cents,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (id) DO UPDATE SET
    order_date         = EXCLUDED.order_date,
    status             = EXCLUDED.status,
    customer_name      = EXCLUDED.customer_name,
    customer_email     = EXCLUDED.customer_email,
    customer_phone     = EXCLUDED.customer_phone,
    billing_address    = EXCLUDED.billing_address,
    shipping_address   = EXCLUDED.shipping_address,
    payment_method     = EXCLUDED.payment_method,
    card_holder        = EXCLUDED.card_holder,
    card_last4         = EXCLUDED.card_last4,
    card_network       = EXCLUDED.card_network,
    sales_agent        = EXCLUDED.sales_agent,
    source             = EXCLUDED.source,
    total_amount_cents = EXCLUDED.total_amount_cents,
    paid_amount_cents  = EXCLUDED.paid_amount_cents,
    updated_at         = EXCLUDED.updated_at`

const deleteProductsSQL = `DELETE FROM order_products WHERE order_id = $1`

const insertProductSQL = `
INSERT INTO order_products (
    order_id, position, sku, make, model, year, part, specification, vin,
    price_cents, quantity, warranty_months, mileage
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const upsertShippingSQL = `
INSERT INTO order_shipping (
    order_id, carrier, tracking_number, method, cost_cents, status, shipped_at, estimated_delivery
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (order_id) DO UPDATE SET
    carrier            = EXCLUDED.carrier,
    tracking_number    = EXCLUDED.tracking_number,
    method             = EXCLUDED.method,
    cost_cents         = EXCLUDED.cost_cents,
    status             = EXCLUDED.status,
    shipped_at         = EXCLUDED.shipped_at,
    estimated_delivery = EXCLUDED.estimated_delivery`

const deleteShippingSQL = `DELETE FROM order_shipping WHERE order_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one order with its products and shipping info.
// Returns domain.ErrNotFound if the order does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := r.query(ctx, psql.Select(orderColumns...).From("orders").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	if len(orders) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "order", id)
	}
	return &orders[0], nil
}

// ListRecent returns up to limit orders, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	q := psql.Select(orderColumns...).
		From("orders").
		OrderBy("order_date DESC", "id").
		Limit(uint64(max(limit, 0)))

	orders, err := r.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	return orders, nil
}

// List returns a page of orders matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	q := psql.Select(orderColumns...).From("orders")
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.SalesAgent != "" {
		q = q.Where(squirrel.Eq{"sales_agent": filter.SalesAgent})
	}
	q = q.OrderBy("order_date DESC", "id")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	orders, err := r.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// query runs an orders select and attaches products and shipping info.
func (r *Repo) query(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Order, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build orders query: %w", err)
	}
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []domain.Order{}, nil
	}

	ids := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	if err := r.attachProducts(ctx, querier, ids, orders, index); err != nil {
		return nil, err
	}
	if err := r.attachShipping(ctx, querier, ids, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repo) attachProducts(ctx context.Context, querier postgres.Querier, ids []string, orders []domain.Order, index map[string]int) error {
	sql, args, err := psql.Select(productColumns...).
		From("order_products").
		Where("order_id = ANY(?)", ids).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build products query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID string
			p       domain.Product
			price   int64
		)
		if err := rows.Scan(&orderID, &p.SKU, &p.Make, &p.Model, &p.Year, &p.Part,
			&p.Specification, &p.VIN, &price, &p.Quantity, &p.WarrantyMonths, &p.Mileage); err != nil {
			return fmt.Errorf("scan product: %w", err)
		}
		p.Price = domain.Money(price)
		i := index[orderID]
		orders[i].Products = append(orders[i].Products, p)
	}
	return rows.Err()
}

func (r *Repo) attachShipping(ctx context.Context, querier postgres.Querier, ids []string, orders []domain.Order, index map[string]int) error {
	sql, args, err := psql.Select(shippingColumns...).
		From("order_shipping").
		Where("order_id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return fmt.Errorf("build shipping query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("query shipping: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID string
			s       domain.ShippingInfo
			cost    int64
		)
		if err := rows.Scan(&orderID, &s.Carrier, &s.TrackingNumber, &s.Method, &cost,
			&s.Status, &s.ShippedAt, &s.EstimatedDelivery); err != nil {
			return fmt.Errorf("scan shipping: %w", err)
		}
		s.Cost = domain.Money(cost)
		s.ShippedAt = utcPtr(s.ShippedAt)
		s.EstimatedDelivery = utcPtr(s.EstimatedDelivery)
		orders[index[orderID]].OwnShippingInfo = &s
	}
	return rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts or replaces an order with its products and shipping info.
// It issues several statements; run it inside a transaction.
func (r *Repo) Upsert(ctx context.Context, o domain.Order) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := o.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err := querier.Exec(ctx, upsertOrderSQL,
		o.ID, o.OrderDate.UTC(), o.Status, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.BillingAddress, o.ShippingAddress, o.PaymentMethod, o.CardHolder, o.CardLast4,
		o.CardNetwork, o.SalesAgent, o.Source, int64(o.TotalAmount), int64(o.PaidAmount),
		createdAt.UTC(), updatedAt.UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "order", o.ID)
	}

	batch := &pgx.Batch{}
	batch.Queue(deleteProductsSQL, o.ID)
	for i, p := range o.Products {
		batch.Queue(insertProductSQL,
			o.ID, i, p.SKU, p.Make, p.Model, p.Year, p.Part, p.Specification, p.VIN,
			int64(p.Price), p.Quantity, p.WarrantyMonths, p.Mileage,
		)
	}
	if s := o.OwnShippingInfo; s != nil {
		batch.Queue(upsertShippingSQL,
			o.ID, s.Carrier, s.TrackingNumber, s.Method, int64(s.Cost), s.Status,
			s.ShippedAt, s.EstimatedDelivery,
		)
	} else {
		batch.Queue(deleteShippingSQL, o.ID)
	}

	if err := querier.SendBatch(ctx, batch).Close(); err != nil {
		return postgres.MapError(err, "order", o.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var (
			o           domain.Order
			total, paid int64
		)
		if err := rows.Scan(
			&o.ID, &o.OrderDate, &o.Status, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.BillingAddress, &o.ShippingAddress, &o.PaymentMethod, &o.CardHolder, &o.CardLast4,
			&o.CardNetwork, &o.SalesAgent, &o.Source, &total, &paid,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.TotalAmount = domain.Money(total)
		o.PaidAmount = domain.Money(paid)
		o.OrderDate = o.OrderDate.UTC()
		o.CreatedAt = o.CreatedAt.UTC()
		o.UpdatedAt = o.UpdatedAt.UTC()
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
