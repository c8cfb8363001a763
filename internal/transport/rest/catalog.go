package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

type catalogService interface {
	VehicleYears(ctx context.Context, vehicleMake, model string) ([]int, error)
	GroupedProducts(ctx context.Context, q domain.VehicleQuery) ([]domain.ProductGroup, error)
	PictureURL(ctx context.Context, key string) (string, error)
}

// CatalogHandler proxies product catalog lookups.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type yearsResponse struct {
	Years []int `json:"years"`
}

// Years handles GET /api/products/years?make=&model=.
func (h *CatalogHandler) Years(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	years, err := h.svc.VehicleYears(r.Context(), q.Get("make"), q.Get("model"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, yearsResponse{Years: years})
}

type groupedResponse struct {
	Groups []domain.ProductGroup `json:"groups"`
}

// Grouped handles GET /api/products/grouped?make=&model=&year=&part=.
func (h *CatalogHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	groups, err := h.svc.GroupedProducts(r.Context(), domain.VehicleQuery{
		Make:  q.Get("make"),
		Model: q.Get("model"),
		Year:  q.Get("year"),
		Part:  q.Get("part"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, groupedResponse{Groups: groups})
}

type pictureURLResponse struct {
	URL string `json:"url"`
}

// PictureURL handles GET /api/pictures/url?key=. An empty url means the
// picture could not be resolved.
func (h *CatalogHandler) PictureURL(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.PictureURL(r.Context(), r.URL.Query().Get("key"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pictureURLResponse{URL: u})
}
