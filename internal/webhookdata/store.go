// Package webhookdata keeps the bounded history of accepted webhook
// deliveries and serves it to the site.
package webhookdata

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"folio/internal/models"

	goerrors "github.com/goliatone/go-errors"
)

// HistoryKey is the key-value store key holding the history list.
const HistoryKey = "webhookData"

// DefaultLimit caps the history when no limit is configured.
const DefaultLimit = 10

// ErrNotFound is returned when no history has been stored yet.
var ErrNotFound = goerrors.New("webhook data not found", goerrors.CategoryNotFound)

// KV is the subset of the key-value client the store needs.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// Store persists WebhookRecords newest first, evicting the oldest once the
// list grows past Limit. Writes are read-modify-write without locking, so
// concurrent deliveries are last-write-wins.
type Store struct {
	kv    KV
	limit int
}

func NewStore(kv KV, limit int) *Store {
	if limit < 1 {
		limit = DefaultLimit
	}

	return &Store{kv: kv, limit: limit}
}

// Push prepends record and trims the history to the configured limit.
func (s *Store) Push(ctx context.Context, record models.WebhookRecord) error {
	history, err := s.load(ctx)
	if err != nil {
		return err
	}

	history = append([]models.WebhookRecord{record}, history...)
	if len(history) > s.limit {
		history = history[:s.limit]
	}

	encoded, err := json.Marshal(history)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "encode webhook history")
	}

	return s.kv.Set(ctx, HistoryKey, string(encoded))
}

// List returns the stored history, newest first. ErrNotFound means nothing
// has been stored.
func (s *Store) List(ctx context.Context) ([]models.WebhookRecord, error) {
	history, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, ErrNotFound
	}

	return history, nil
}

// Clear removes the whole history.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, HistoryKey)
}

func (s *Store) load(ctx context.Context) ([]models.WebhookRecord, error) {
	raw, found, err := s.kv.Get(ctx, HistoryKey)
	if err != nil {
		return nil, err
	}

	if !found || raw == "" {
		return nil, nil
	}

	// single-record values written before the history was bounded
	if trimmed := strings.TrimSpace(raw); strings.HasPrefix(trimmed, "{") {
		var record models.WebhookRecord
		if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "decode webhook record")
		}
		return []models.WebhookRecord{record}, nil
	}

	var history []models.WebhookRecord
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "decode webhook history")
	}

	return history, nil
}

// IsNotFound reports whether err means no history has been stored.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}

	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich.Category == goerrors.CategoryNotFound
}
