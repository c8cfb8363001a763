package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/notes"
)

type noteService interface {
	ListNotes(ctx context.Context, input notes.ListNotesInput) (*notes.Thread, error)
	AddNote(ctx context.Context, input notes.AddNoteInput) (*domain.NoteEntry, error)
	Drafts(ctx context.Context, orderID string) (map[domain.NoteChannel]string, error)
	SaveDraft(ctx context.Context, input notes.DraftInput) error
	ClearDraft(ctx context.Context, input notes.DraftInput) error
	SubmitDraft(ctx context.Context, input notes.DraftInput) (*domain.NoteEntry, error)
}

// NoteHandler serves the per-order note ledger.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "notes")}
}

// List handles GET /api/orders/{id}/notes?channel=.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	thread, err := h.svc.ListNotes(r.Context(), notes.ListNotesInput{
		OrderID: r.PathValue("id"),
		Channel: domain.NoteChannel(r.URL.Query().Get("channel")),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

type addNoteRequest struct {
	Channel domain.NoteChannel `json:"channel"`
	Message string             `json:"message"`
}

type noteResponse struct {
	Added bool              `json:"added"`
	Note  *domain.NoteEntry `json:"note,omitempty"`
}

// Add handles POST /api/orders/{id}/notes. A blank message is accepted and
// reported with added=false.
func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.AddNote(r.Context(), notes.AddNoteInput{
		OrderID: r.PathValue("id"),
		Channel: req.Channel,
		Message: req.Message,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeNoteResult(w, entry)
}

// Drafts handles GET /api/orders/{id}/notes/drafts.
func (h *NoteHandler) Drafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.svc.Drafts(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, drafts)
}

type saveDraftRequest struct {
	Text string `json:"text"`
}

// SaveDraft handles PUT /api/orders/{id}/notes/drafts/{channel}.
func (h *NoteHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req saveDraftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := draftInput(r)
	input.Text = req.Text
	if err := h.svc.SaveDraft(r.Context(), input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearDraft handles DELETE /api/orders/{id}/notes/drafts/{channel}.
func (h *NoteHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearDraft(r.Context(), draftInput(r)); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitDraft handles POST /api/orders/{id}/notes/drafts/{channel}/submit.
func (h *NoteHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.SubmitDraft(r.Context(), draftInput(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeNoteResult(w, entry)
}

func draftInput(r *http.Request) notes.DraftInput {
	return notes.DraftInput{
		OrderID: r.PathValue("id"),
		Channel: domain.NoteChannel(r.PathValue("channel")),
	}
}

func writeNoteResult(w http.ResponseWriter, entry *domain.NoteEntry) {
	if entry == nil {
		writeJSON(w, http.StatusOK, noteResponse{Added: false})
		return
	}
	writeJSON(w, http.StatusCreated, noteResponse{Added: true, Note: entry})
}
