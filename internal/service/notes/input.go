package notes

import (
	"strings"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// AddNoteInput holds the parameters for appending a note.
// A blank Message is not an error; the call is a no-op.
type AddNoteInput struct {
	OrderID string
	Channel domain.NoteChannel
	Message string
}

// Validate checks all fields and collects all errors.
func (i AddNoteInput) Validate() error {
	var errs []domain.FieldError
	errs = validateOrder(errs, i.OrderID)
	errs = validateChannel(errs, i.Channel)
	if len(i.Message) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 4000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListNotesInput holds the parameters for reading an order's notes.
// An empty Channel selects both channels.
type ListNotesInput struct {
	OrderID string
	Channel domain.NoteChannel
}

// Validate checks all fields and collects all errors.
func (i ListNotesInput) Validate() error {
	var errs []domain.FieldError
	errs = validateOrder(errs, i.OrderID)
	if i.Channel != "" {
		errs = validateChannel(errs, i.Channel)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DraftInput addresses one channel's draft. Text is ignored by clear and
// submit.
type DraftInput struct {
	OrderID string
	Channel domain.NoteChannel
	Text    string
}

// Validate checks all fields and collects all errors.
func (i DraftInput) Validate() error {
	var errs []domain.FieldError
	errs = validateOrder(errs, i.OrderID)
	errs = validateChannel(errs, i.Channel)
	if len(i.Text) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 4000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

const (
	// MaxMessageLength bounds note and draft text in bytes.
	MaxMessageLength = 4000
	// MaxOrderIDLength bounds the order id a ledger is keyed by.
	MaxOrderIDLength = 64
)

func validateOrder(errs []domain.FieldError, orderID string) []domain.FieldError {
	switch {
	case strings.TrimSpace(orderID) == "":
		errs = append(errs, domain.FieldError{Field: "order_id", Message: "required"})
	case len(orderID) > MaxOrderIDLength:
		errs = append(errs, domain.FieldError{Field: "order_id", Message: "max 64 characters"})
	}
	return errs
}

func validateChannel(errs []domain.FieldError, ch domain.NoteChannel) []domain.FieldError {
	if !ch.IsValid() {
		errs = append(errs, domain.FieldError{Field: "channel", Message: "must be customer or yard"})
	}
	return errs
}
