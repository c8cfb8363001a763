package rest

import (
	"net/http"

	"github.com/heartmarshall/partsdesk-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers served by the router.
type Handlers struct {
	Health       *HealthHandler
	Orders       *OrderHandler
	Notes        *NoteHandler
	ProblemParts *ProblemPartHandler
	Catalog      *CatalogHandler
	Cards        *CardHandler
	Metrics      http.Handler
}

// NewRouter registers every route. Each route is instrumented under its
// pattern; /api routes are additionally wrapped in api (auth, rate limit).
func NewRouter(h Handlers, metrics *middleware.HTTPMetrics, api middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	public := func(pattern string, fn http.Handler) {
		mux.Handle(pattern, metrics.Instrument(pattern)(fn))
	}
	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.Chain(metrics.Instrument(pattern), api)(fn))
	}

	public("GET /live", http.HandlerFunc(h.Health.Live))
	public("GET /ready", http.HandlerFunc(h.Health.Ready))
	public("GET /health", http.HandlerFunc(h.Health.Health))
	mux.Handle("GET /metrics", h.Metrics)

	protected("GET /api/orders", h.Orders.List)
	protected("GET /api/orders/search", h.Orders.Search)
	protected("POST /api/orders/import", h.Orders.Import)
	protected("GET /api/orders/{id}", h.Orders.Get)
	protected("PUT /api/orders/{id}", h.Orders.Update)

	protected("GET /api/orders/{id}/notes", h.Notes.List)
	protected("POST /api/orders/{id}/notes", h.Notes.Add)
	protected("GET /api/orders/{id}/notes/drafts", h.Notes.Drafts)
	protected("PUT /api/orders/{id}/notes/drafts/{channel}", h.Notes.SaveDraft)
	protected("DELETE /api/orders/{id}/notes/drafts/{channel}", h.Notes.ClearDraft)
	protected("POST /api/orders/{id}/notes/drafts/{channel}/submit", h.Notes.SubmitDraft)

	protected("GET /api/orders/{id}/problematic-parts", h.ProblemParts.ListByOrder)
	protected("POST /api/problematic-parts", h.ProblemParts.Submit)
	protected("GET /api/problematic-parts/{id}", h.ProblemParts.Get)
	protected("DELETE /api/problematic-parts/{id}", h.ProblemParts.Delete)

	protected("GET /api/products/years", h.Catalog.Years)
	protected("GET /api/products/grouped", h.Catalog.Grouped)
	protected("GET /api/pictures/url", h.Catalog.PictureURL)

	protected("POST /api/cards/check", h.Cards.Check)

	return mux
}
