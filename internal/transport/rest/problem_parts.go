package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/problempart"
)

type problemPartService interface {
	Submit(ctx context.Context, input problempart.SubmitInput) (*domain.ProblematicPartRecord, error)
	List(ctx context.Context, orderID string) ([]domain.ProblematicPartRecord, error)
	Get(ctx context.Context, id string) (*domain.ProblematicPartRecord, error)
	Delete(ctx context.Context, id string) error
}

// ProblemPartHandler serves problematic-part reports.
type ProblemPartHandler struct {
	svc problemPartService
	log *slog.Logger
}

// NewProblemPartHandler creates a ProblemPartHandler.
func NewProblemPartHandler(svc problemPartService, logger *slog.Logger) *ProblemPartHandler {
	return &ProblemPartHandler{svc: svc, log: logger.With("handler", "problem_parts")}
}

// submitProblemPartRequest is the dashboard form: common and type-specific
// fields arrive flat, the same way the form holds them.
type submitProblemPartRequest struct {
	ID          *string            `json:"id,omitempty"`
	OrderID     string             `json:"orderId"`
	ProblemType domain.ProblemType `json:"problemType"`
	domain.ProblemCommon
	domain.ProblemFields
	Replacement *domain.Replacement `json:"replacement,omitempty"`
}

// Submit handles POST /api/problematic-parts. A body without id creates a
// report; with id it replaces that report.
func (h *ProblemPartHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitProblemPartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Submit(r.Context(), problempart.SubmitInput{
		ID:          req.ID,
		OrderID:     req.OrderID,
		ProblemType: req.ProblemType,
		Common:      req.ProblemCommon,
		Fields:      req.ProblemFields,
		Replacement: req.Replacement,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, rec)
}

type problemPartsResponse struct {
	OrderID string                         `json:"orderId"`
	Parts   []domain.ProblematicPartRecord `json:"parts"`
}

// ListByOrder handles GET /api/orders/{id}/problematic-parts.
func (h *ProblemPartHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")
	recs, err := h.svc.List(r.Context(), orderID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, problemPartsResponse{OrderID: orderID, Parts: recs})
}

// Get handles GET /api/problematic-parts/{id}.
func (h *ProblemPartHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/problematic-parts/{id}.
func (h *ProblemPartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
