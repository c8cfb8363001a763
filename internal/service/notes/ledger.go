package notes

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Ledger holds the notes and unsent drafts of one order. Each channel's list
// is most-recent-first and entries are never modified once appended.
// A Ledger is safe for concurrent use; every operation is a single state
// replacement under one lock.
type Ledger struct {
	orderID string
	now     func() time.Time

	mu     sync.RWMutex
	notes  map[domain.NoteChannel][]domain.NoteEntry
	drafts map[domain.NoteChannel]string
}

// NewLedger creates an empty ledger for the order.
func NewLedger(orderID string) *Ledger {
	return &Ledger{
		orderID: orderID,
		now:     func() time.Time { return time.Now().UTC() },
		notes:   make(map[domain.NoteChannel][]domain.NoteEntry),
		drafts:  make(map[domain.NoteChannel]string),
	}
}

// OrderID returns the order the ledger belongs to.
func (l *Ledger) OrderID() string { return l.orderID }

// Append prepends a note to the channel and clears its draft. A blank
// message or an unknown channel is a no-op and reports false.
func (l *Ledger) Append(ch domain.NoteChannel, message, actor string) (domain.NoteEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.appendLocked(ch, message, actor)
}

// SubmitDraft appends the channel's current draft.
func (l *Ledger) SubmitDraft(ch domain.NoteChannel, actor string) (domain.NoteEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.appendLocked(ch, l.drafts[ch], actor)
}

func (l *Ledger) appendLocked(ch domain.NoteChannel, message, actor string) (domain.NoteEntry, bool) {
	msg := strings.TrimSpace(message)
	if msg == "" || !ch.IsValid() {
		return domain.NoteEntry{}, false
	}
	if actor = strings.TrimSpace(actor); actor == "" {
		actor = domain.DefaultNoteActor
	}

	entry := domain.NoteEntry{
		ID:        newNoteID(),
		OrderID:   l.orderID,
		Channel:   ch,
		Timestamp: l.now(),
		Message:   msg,
		Actor:     actor,
	}

	prev := l.notes[ch]
	next := make([]domain.NoteEntry, 0, len(prev)+1)
	next = append(next, entry)
	next = append(next, prev...)
	l.notes[ch] = next
	l.drafts[ch] = ""

	return entry, true
}

// SetDraft replaces the channel's draft text as is.
func (l *Ledger) SetDraft(ch domain.NoteChannel, text string) {
	if !ch.IsValid() {
		return
	}
	l.mu.Lock()
	l.drafts[ch] = text
	l.mu.Unlock()
}

// ClearDraft resets the channel's draft to empty.
func (l *Ledger) ClearDraft(ch domain.NoteChannel) {
	l.SetDraft(ch, "")
}

// Draft returns the channel's draft text.
func (l *Ledger) Draft(ch domain.NoteChannel) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.drafts[ch]
}

// Drafts returns the drafts of all channels.
func (l *Ledger) Drafts() map[domain.NoteChannel]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[domain.NoteChannel]string, len(domain.NoteChannels()))
	for _, ch := range domain.NoteChannels() {
		out[ch] = l.drafts[ch]
	}
	return out
}

// Notes returns a copy of the channel's notes, most recent first.
func (l *Ledger) Notes(ch domain.NoteChannel) []domain.NoteEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneEntries(l.notes[ch])
}

// Initialize replaces both note lists wholesale. Drafts are left untouched.
func (l *Ledger) Initialize(customer, yard []domain.NoteEntry) {
	c, y := cloneEntries(customer), cloneEntries(yard)

	l.mu.Lock()
	l.notes[domain.NoteChannelCustomer] = c
	l.notes[domain.NoteChannelYard] = y
	l.mu.Unlock()
}

// Replace sets the channel's list to the result of update applied to a copy
// of the current list. update runs under the ledger lock and must not call
// back into the ledger.
func (l *Ledger) Replace(ch domain.NoteChannel, update func(prev []domain.NoteEntry) []domain.NoteEntry) {
	if !ch.IsValid() || update == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notes[ch] = cloneEntries(update(cloneEntries(l.notes[ch])))
}

// ReplaceWith sets the channel's list directly.
func (l *Ledger) ReplaceWith(ch domain.NoteChannel, entries []domain.NoteEntry) {
	l.Replace(ch, func([]domain.NoteEntry) []domain.NoteEntry { return entries })
}

func cloneEntries(in []domain.NoteEntry) []domain.NoteEntry {
	out := make([]domain.NoteEntry, len(in))
	copy(out, in)
	return out
}

// newNoteID returns a UUIDv7: a millisecond timestamp followed by a
// monotonic sequence and random bits, so ids sort by creation time and two
// notes in the same millisecond still differ.
func newNoteID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
