// internal/letter/archive/archive_test.go
package archive

import (
	"context"
	"testing"
	"time"

	"letter-workers/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db, logger.NewTestLogger(t)), mock
}

func TestRepository_Insert_AssignsID(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(`INSERT INTO letters`).
		WithArgs(sqlmock.AnyArg(), "session-1", "bank_atm_lost", "en", "instant", "letter text", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Insert(context.Background(), Letter{
		SessionID:  "session-1",
		TemplateID: "bank_atm_lost",
		Language:   "en",
		Path:       "instant",
		Text:       "letter text",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert_DBError(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(`INSERT INTO letters`).
		WillReturnError(assert.AnError)

	_, err := repo.Insert(context.Background(), Letter{
		SessionID:  "session-1",
		TemplateID: "bank_atm_lost",
		Language:   "en",
		Path:       "remote",
		Text:       "letter text",
	})
	assert.Error(t, err)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := setupRepo(t)
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "session_id", "template_id", "language", "path", "text", "created_at"}).
		AddRow("letter-1", "session-1", "bank_atm_lost", "hi", "instant", "पत्र", created)
	mock.ExpectQuery(`SELECT .* FROM letters WHERE id`).
		WithArgs("letter-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "letter-1")
	require.NoError(t, err)
	assert.Equal(t, "bank_atm_lost", got.TemplateID)
	assert.Equal(t, "hi", got.Language)
	assert.Equal(t, created, got.CreatedAt)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT .* FROM letters WHERE id`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "template_id", "language", "path", "text", "created_at"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrLetterNotFound)
}

func TestRepository_ListBySession(t *testing.T) {
	repo, mock := setupRepo(t)
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "session_id", "template_id", "language", "path", "text", "created_at"}).
		AddRow("letter-2", "session-1", "police_mobile_theft", "en", "remote", "second", created.Add(time.Hour)).
		AddRow("letter-1", "session-1", "bank_atm_lost", "en", "instant", "first", created)
	mock.ExpectQuery(`SELECT .* FROM letters WHERE session_id`).
		WithArgs("session-1", 20).
		WillReturnRows(rows)

	letters, err := repo.ListBySession(context.Background(), "session-1", 0)
	require.NoError(t, err)
	require.Len(t, letters, 2)
	assert.Equal(t, "letter-2", letters[0].ID)
	assert.Equal(t, "letter-1", letters[1].ID)
}
