// internal/workers/letter/archive-letter/handler_test.go
package archiveletter

import (
	"context"
	"testing"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/letter/archive"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/draft"
	"letter-workers/internal/letter/field"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) (*Handler, sqlmock.Sqlmock, *draft.Store) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	drafts := draft.NewStore(client, draft.Config{}, logger.NewTestLogger(t))

	repo := archive.NewRepository(db, logger.NewTestLogger(t))
	h := NewHandler(LoadConfig(), repo, drafts, logger.NewTestLogger(t))
	return h, mock, drafts
}

func createInput() *Input {
	return &Input{
		SessionID:      "session-1",
		TemplateID:     "bank_atm_lost",
		Language:       "en",
		GenerationPath: "instant",
		LetterText:     "Respected Sir/Madam, ...",
	}
}

func TestHandler_Execute_InsertsAndClearsDraft(t *testing.T) {
	h, mock, drafts := setupHandler(t)
	ctx := context.Background()

	require.NoError(t, drafts.SaveNow(ctx, "session-1", draft.Draft{
		TemplateID: "bank_atm_lost",
		Language:   catalog.English,
		Values:     field.Values{field.SenderName: "Ramesh"},
	}))

	mock.ExpectExec(`INSERT INTO letters`).
		WithArgs(sqlmock.AnyArg(), "session-1", "bank_atm_lost", "en", "instant", "Respected Sir/Madam, ...", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	output, err := h.Execute(ctx, createInput())
	require.NoError(t, err)
	assert.NotEmpty(t, output.LetterID)

	_, err = drafts.Load(ctx, "session-1")
	assert.ErrorIs(t, err, draft.ErrDraftNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_EmptyText(t *testing.T) {
	h, _, _ := setupHandler(t)

	input := createInput()
	input.LetterText = "   "

	_, err := h.Execute(context.Background(), input)
	assert.Error(t, err)
}

func TestHandler_Execute_InsertFailure(t *testing.T) {
	h, mock, _ := setupHandler(t)

	mock.ExpectExec(`INSERT INTO letters`).
		WillReturnError(assert.AnError)

	_, err := h.Execute(context.Background(), createInput())
	assert.Error(t, err)
}

func TestHandler_Execute_NoDraftStore(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := archive.NewRepository(db, logger.NewTestLogger(t))
	h := NewHandler(LoadConfig(), repo, nil, logger.NewTestLogger(t))

	mock.ExpectExec(`INSERT INTO letters`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	output, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)
	assert.NotEmpty(t, output.LetterID)
}
