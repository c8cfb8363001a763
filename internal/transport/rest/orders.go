package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/order"
)

type orderService interface {
	Search(ctx context.Context, query string) ([]domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, input order.UpdateInput) (*domain.Order, error)
	Import(ctx context.Context, input order.ImportInput) (int, error)
}

// OrderHandler serves the order snapshot endpoints.
type OrderHandler struct {
	svc orderService
	log *slog.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc orderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: logger.With("handler", "orders")}
}

type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
	Count  int            `json:"count"`
}

// List handles GET /api/orders?status=&salesAgent=&limit=&offset=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	orders, err := h.svc.List(r.Context(), domain.OrderFilter{
		Status:     r.URL.Query().Get("status"),
		SalesAgent: r.URL.Query().Get("salesAgent"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ordersResponse{Orders: orders, Count: len(orders)})
}

// Search handles GET /api/orders/search?q=.
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query().Get("q")

	orders, err := h.svc.Search(r.Context(), q)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.log.DebugContext(r.Context(), "order search",
		slog.Int("query_len", len(q)),
		slog.Int("matches", len(orders)),
		slog.Duration("duration", time.Since(start)),
	)
	writeJSON(w, http.StatusOK, ordersResponse{Orders: orders, Count: len(orders)})
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type updateOrderRequest struct {
	domain.Order
	// CardNumber is accepted for card changes and never echoed or stored.
	CardNumber string `json:"cardNumber,omitempty"`
}

// Update handles PUT /api/orders/{id}.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	o, err := h.svc.Update(r.Context(), order.UpdateInput{
		ID:         r.PathValue("id"),
		Order:      req.Order,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type importOrdersRequest struct {
	Orders []domain.Order `json:"orders"`
}

type importOrdersResponse struct {
	Imported int `json:"imported"`
}

// Import handles POST /api/orders/import.
func (h *OrderHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importOrdersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.Import(r.Context(), order.ImportInput{Orders: req.Orders})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, importOrdersResponse{Imported: n})
}
