// internal/workers/letter/validate-fields/handler_test.go
package validatefields

import (
	"context"
	"testing"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/draft"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), catalog.Default(), nil, logger.NewTestLogger(t))
}

func completeATMFields() map[string]string {
	return map[string]string{
		"senderName":        "Ramesh Kumar",
		"senderStreet":      "12 MG Road",
		"senderCity":        "Patna",
		"senderState":       "Bihar",
		"senderPincode":     "800001",
		"accountNumber":     "12345678901",
		"bankName":          "State Bank of India",
		"branchName":        "Patna Main",
		"atmCardLastDigits": "4321",
		"date":              "01/06/2025",
		"phone":             "9876543210",
	}
}

func TestHandler_Execute_AllFieldsValid(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TemplateID:  "bank_atm_lost",
		FieldValues: completeATMFields(),
	})
	require.NoError(t, err)

	assert.True(t, output.Valid)
	assert.Empty(t, output.MissingFields)
	assert.Empty(t, output.Errors)
}

func TestHandler_Execute_MissingFields(t *testing.T) {
	h := createTestHandler(t)

	fields := completeATMFields()
	delete(fields, "accountNumber")
	fields["senderName"] = "   "

	output, err := h.Execute(context.Background(), &Input{
		TemplateID:  "bank_atm_lost",
		FieldValues: fields,
	})
	require.NoError(t, err)

	assert.False(t, output.Valid)
	assert.Contains(t, output.MissingFields, "accountNumber")
	assert.Contains(t, output.MissingFields, "senderName")
}

func TestHandler_Execute_FormatRules(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantValid bool
	}{
		{"valid phone", "phone", "9876543210", true},
		{"phone starting with 1", "phone", "1234567890", false},
		{"phone too short", "phone", "98765", false},
		{"account 11 digits", "accountNumber", "12345678901", true},
		{"account 16 digits", "accountNumber", "1234567890123456", true},
		{"account 10 digits", "accountNumber", "1234567890", false},
		{"account with spaces", "accountNumber", "1234 5678 901", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			fields := completeATMFields()
			fields[tt.field] = tt.value

			output, err := h.Execute(context.Background(), &Input{
				TemplateID:  "bank_atm_lost",
				FieldValues: fields,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, output.Valid)
			if !tt.wantValid {
				require.NotEmpty(t, output.Errors)
				assert.Equal(t, tt.field, output.Errors[0].Field)
			}
		})
	}
}

func TestHandler_Execute_TemplateNotFound(t *testing.T) {
	h := createTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{
		TemplateID:  "no_such_template",
		FieldValues: map[string]string{},
	})
	assert.ErrorIs(t, err, catalog.ErrTemplateNotFound)
}

func TestHandler_Execute_SavesDraft(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	drafts := draft.NewStore(client, draft.Config{}, logger.NewTestLogger(t))
	h := NewHandler(LoadConfig(), catalog.Default(), drafts, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		TemplateID:  "bank_atm_lost",
		Language:    "en",
		SessionID:   "session-1",
		FieldValues: completeATMFields(),
	})
	require.NoError(t, err)
	assert.True(t, output.Valid)

	stored, err := drafts.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, "bank_atm_lost", stored.TemplateID)
}

func TestHandler_Execute_DraftFailureDoesNotBlock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	drafts := draft.NewStore(client, draft.Config{}, logger.NewTestLogger(t))
	mr.Close()
	h := NewHandler(LoadConfig(), catalog.Default(), drafts, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		TemplateID:  "bank_atm_lost",
		SessionID:   "session-1",
		FieldValues: completeATMFields(),
	})
	require.NoError(t, err)
	assert.True(t, output.Valid)
}
