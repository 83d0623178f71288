// internal/letter/archive/archive.go
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"letter-workers/internal/common/logger"

	"github.com/google/uuid"
)

var ErrLetterNotFound = errors.New("LETTER_NOT_FOUND")

// Letter is an archived generation result. The stored text is the final
// letter as the user saw it; field values are not persisted.
type Letter struct {
	ID         string
	SessionID  string
	TemplateID string
	Language   string
	Path       string
	Text       string
	CreatedAt  time.Time
}

// Repository persists generated letters in PostgreSQL.
type Repository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewRepository(db *sql.DB, log logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "letter-archive"}),
	}
}

// Insert stores a generated letter and returns its assigned id.
func (r *Repository) Insert(ctx context.Context, l Letter) (string, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO letters (id, session_id, template_id, language, path, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.ExecContext(ctx, query,
		l.ID, l.SessionID, l.TemplateID, l.Language, l.Path, l.Text, l.CreatedAt,
	); err != nil {
		return "", fmt.Errorf("insert letter: %w", err)
	}

	r.logger.Info("letter archived", map[string]interface{}{
		"letterId":   l.ID,
		"templateId": l.TemplateID,
		"path":       l.Path,
	})
	return l.ID, nil
}

// GetByID fetches a single archived letter.
func (r *Repository) GetByID(ctx context.Context, id string) (*Letter, error) {
	const query = `
		SELECT id, session_id, template_id, language, path, text, created_at
		FROM letters WHERE id = $1`

	var l Letter
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.SessionID, &l.TemplateID, &l.Language, &l.Path, &l.Text, &l.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrLetterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get letter: %w", err)
	}
	return &l, nil
}

// ListBySession returns the most recent letters for a session, newest first.
func (r *Repository) ListBySession(ctx context.Context, sessionID string, limit int) ([]Letter, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
		SELECT id, session_id, template_id, language, path, text, created_at
		FROM letters WHERE session_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	defer rows.Close()

	var letters []Letter
	for rows.Next() {
		var l Letter
		if err := rows.Scan(&l.ID, &l.SessionID, &l.TemplateID, &l.Language, &l.Path, &l.Text, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan letter: %w", err)
		}
		letters = append(letters, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	return letters, nil
}
