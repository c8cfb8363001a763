// Package bolt persists note drafts in an embedded bbolt file so unsent text
// survives restarts.
package bolt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/heartmarshall/partsdesk-backend/internal/config"
	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

var draftsBucket = []byte("note_drafts")

// DraftStore keeps one nested bucket per order, keyed by channel.
type DraftStore struct {
	db *bolt.DB
}

// Open opens (or creates) the draft database at cfg.Path.
func Open(cfg config.DraftsConfig) (*DraftStore, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create drafts dir: %w", err)
		}
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("open drafts db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(draftsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create drafts bucket: %w", err)
	}

	return &DraftStore{db: db}, nil
}

// Close releases the database file lock.
func (s *DraftStore) Close() error {
	return s.db.Close()
}

// Load returns the stored drafts of an order. Missing orders yield an empty map.
func (s *DraftStore) Load(orderID string) (map[domain.NoteChannel]string, error) {
	out := make(map[domain.NoteChannel]string)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(draftsBucket).Bucket([]byte(orderID))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			ch := domain.NoteChannel(k)
			if ch.IsValid() {
				out[ch] = string(v)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load drafts %s: %w", orderID, err)
	}
	return out, nil
}

// Save stores a channel's draft. Empty text removes it.
func (s *DraftStore) Save(orderID string, ch domain.NoteChannel, text string) error {
	if text == "" {
		return s.Delete(orderID, ch)
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(draftsBucket).CreateBucketIfNotExists([]byte(orderID))
		if err != nil {
			return err
		}
		return b.Put([]byte(ch), []byte(text))
	})
	if err != nil {
		return fmt.Errorf("save draft %s/%s: %w", orderID, ch, err)
	}
	return nil
}

// Delete removes a channel's draft and drops the order bucket once empty.
// Deleting a missing draft is a no-op.
func (s *DraftStore) Delete(orderID string, ch domain.NoteChannel) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(draftsBucket)
		b := root.Bucket([]byte(orderID))
		if b == nil {
			return nil
		}
		if err := b.Delete([]byte(ch)); err != nil {
			return err
		}
		if k, _ := b.Cursor().First(); k == nil {
			if err := root.DeleteBucket([]byte(orderID)); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete draft %s/%s: %w", orderID, ch, err)
	}
	return nil
}
