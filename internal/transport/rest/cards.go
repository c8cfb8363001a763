package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/partsdesk-backend/internal/paycard"
)

// CardHandler answers card number checks for the payment form.
type CardHandler struct {
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(logger *slog.Logger) *CardHandler {
	return &CardHandler{log: logger.With("handler", "cards")}
}

type checkCardRequest struct {
	Number string `json:"number"`
}

type checkCardResponse struct {
	Network string `json:"network"`
	Valid   bool   `json:"valid"`
	Last4   string `json:"last4,omitempty"`
}

// Check handles POST /api/cards/check. The number is never logged.
func (h *CardHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, checkCardResponse{
		Network: string(paycard.Classify(req.Number)),
		Valid:   paycard.IsValid(req.Number),
		Last4:   paycard.Last4(req.Number),
	})
}
