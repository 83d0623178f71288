// internal/letter/draft/draft.go
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"

	"github.com/redis/go-redis/v9"
)

var ErrDraftNotFound = errors.New("DRAFT_NOT_FOUND")

const (
	// DefaultTTL keeps an abandoned draft around for a week.
	DefaultTTL = 7 * 24 * time.Hour

	// DefaultDebounce collapses per-keystroke saves into one write.
	DefaultDebounce = time.Second

	// DefaultMaxBytes caps the serialized draft; anything bigger is not
	// form input.
	DefaultMaxBytes = 64 * 1024

	keyPrefix      = "letter:draft:"
	debouncePrefix = "letter:draft:debounce:"
)

// Draft is the per-session form state: the chosen template, language and
// whatever field values the user has typed so far.
type Draft struct {
	TemplateID string           `json:"templateId"`
	Language   catalog.Language `json:"language"`
	Values     field.Values     `json:"values"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

type Config struct {
	TTL      time.Duration
	Debounce time.Duration
	MaxBytes int
}

// Store persists drafts in Redis keyed by session. Saves are debounced and
// best-effort: a lost draft costs the user some retyping, never a letter.
type Store struct {
	client *redis.Client
	config Config
	logger logger.Logger
}

func NewStore(client *redis.Client, config Config, log logger.Logger) *Store {
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.MaxBytes <= 0 {
		config.MaxBytes = DefaultMaxBytes
	}
	return &Store{
		client: client,
		config: config,
		logger: log.WithFields(map[string]interface{}{"component": "draft-store"}),
	}
}

// Save writes the draft for a session, refreshing the TTL. Saves inside the
// debounce window are skipped; the final state still lands because the window
// is much shorter than any realistic typing pause.
func (s *Store) Save(ctx context.Context, sessionID string, d Draft) error {
	ok, err := s.client.SetNX(ctx, debouncePrefix+sessionID, "1", s.config.Debounce).Result()
	if err != nil {
		return fmt.Errorf("draft debounce check: %w", err)
	}
	if !ok {
		return nil
	}

	return s.write(ctx, sessionID, d)
}

// SaveNow writes the draft immediately, bypassing the debounce window. Used
// on explicit user actions like switching templates.
func (s *Store) SaveNow(ctx context.Context, sessionID string, d Draft) error {
	return s.write(ctx, sessionID, d)
}

func (s *Store) write(ctx context.Context, sessionID string, d Draft) error {
	d.UpdatedAt = time.Now().UTC()
	blob, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	// Oversized drafts are dropped, not stored: no form produces this much
	// text, so the blob is garbage and the stored draft stays as it was.
	if len(blob) > s.config.MaxBytes {
		s.logger.Warn("draft too large, skipping save", map[string]interface{}{
			"sessionId": sessionID,
			"bytes":     len(blob),
			"maxBytes":  s.config.MaxBytes,
		})
		return nil
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, blob, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("store draft: %w", err)
	}
	return nil
}

// Load returns the stored draft for a session. A corrupt blob is discarded
// and reported as not found so the UI starts the user with a clean form.
func (s *Store) Load(ctx context.Context, sessionID string) (*Draft, error) {
	blob, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	var d Draft
	if err := json.Unmarshal([]byte(blob), &d); err != nil {
		s.logger.Warn("discarding corrupt draft", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		_ = s.client.Del(ctx, keyPrefix+sessionID).Err()
		return nil, ErrDraftNotFound
	}
	if d.Values == nil {
		d.Values = field.Values{}
	}
	return &d, nil
}

// Delete removes the draft for a session, typically after a successful
// generation.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID, debouncePrefix+sessionID).Err()
}
