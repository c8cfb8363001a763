package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoteChannel selects one of the two independent note streams of an order.
type NoteChannel string

const (
	NoteChannelCustomer NoteChannel = "customer"
	NoteChannelYard     NoteChannel = "yard"
)

// DefaultNoteActor is recorded when a note is appended without attribution.
const DefaultNoteActor = "system"

func (c NoteChannel) String() string { return string(c) }

// IsValid reports whether c is a known channel.
func (c NoteChannel) IsValid() bool {
	switch c {
	case NoteChannelCustomer, NoteChannelYard:
		return true
	}
	return false
}

// NoteChannels lists every channel in display order.
func NoteChannels() []NoteChannel {
	return []NoteChannel{NoteChannelCustomer, NoteChannelYard}
}

// NoteEntry is an immutable note appended to an order channel.
type NoteEntry struct {
	ID        uuid.UUID   `json:"id"`
	OrderID   string      `json:"orderId"`
	Channel   NoteChannel `json:"channel"`
	Timestamp time.Time   `json:"timestamp"`
	Message   string      `json:"message"`
	Actor     string      `json:"actor"`
}

// NoteDraft is the unsent text of one channel.
type NoteDraft struct {
	OrderID string      `json:"orderId"`
	Channel NoteChannel `json:"channel"`
	Text    string      `json:"text"`
}
