// internal/workers/letter/generate-remote/handler_test.go
package generateremote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/engine"
	"letter-workers/internal/letter/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T, baseURL string) *Handler {
	cfg := LoadConfig()
	cfg.BaseURL = baseURL
	cfg.Timeout = 2 * time.Second
	return NewHandler(cfg, catalog.Default(), logger.NewTestLogger(t))
}

func createInput() *Input {
	return &Input{
		TemplateID: "bank_custom",
		Language:   "en",
		FieldValues: map[string]string{
			"senderName":    "Ramesh Kumar",
			"senderStreet":  "12 MG Road",
			"senderCity":    "Patna",
			"senderState":   "Bihar",
			"senderPincode": "800001",
			"accountNumber": "12345678901",
			"bankName":      "State Bank of India",
			"branchName":    "Patna Main",
			"customBody":    "Please update my registered address.",
		},
	}
}

func TestHandler_Execute_RemoteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("**Respected Sir,**\n\nPlease update the address for account [ACCOUNT_PLACEHOLDER].\n\nYours faithfully,\nRamesh Kumar"))
	}))
	defer server.Close()

	h := createTestHandler(t, server.URL)

	output, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)

	assert.Equal(t, "remote", output.GenerationPath)
	// Markdown stripped, sentinel restored to the real value.
	assert.NotContains(t, output.LetterText, "**")
	assert.NotContains(t, output.LetterText, "[ACCOUNT_PLACEHOLDER]")
	assert.Contains(t, output.LetterText, "12345678901")
}

func TestHandler_Execute_RemoteDownFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	h := createTestHandler(t, server.URL)

	output, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)

	assert.Equal(t, "fallback", output.GenerationPath)
	assert.Contains(t, output.LetterText, "Ramesh Kumar")
	assert.NotEmpty(t, output.LetterText)
}

func TestHandler_Execute_TimeoutFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("too late"))
	}))
	defer server.Close()

	cfg := LoadConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 50 * time.Millisecond
	h := NewHandler(cfg, catalog.Default(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)
	assert.Equal(t, "fallback", output.GenerationPath)
}

func TestHandler_Execute_ValidationFailure(t *testing.T) {
	h := createTestHandler(t, "http://localhost:0")
	input := createInput()
	delete(input.FieldValues, "customBody")

	_, err := h.Execute(context.Background(), input)
	require.Error(t, err)

	var vErr *engine.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Result.Missing, field.CustomBody)
}

func TestHandler_Execute_TemplateNotFound(t *testing.T) {
	h := createTestHandler(t, "http://localhost:0")
	input := createInput()
	input.TemplateID = "no_such_template"

	_, err := h.Execute(context.Background(), input)
	assert.ErrorIs(t, err, catalog.ErrTemplateNotFound)
}

func TestHandler_Execute_PromptExcludesSensitiveValues(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("letter"))
	}))
	defer server.Close()

	h := createTestHandler(t, server.URL)

	_, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)
	assert.NotContains(t, gotPath, "12345678901")
}

func TestNewHandlerWithEngine(t *testing.T) {
	eng := engine.New(catalog.Default(), stubGenerator{text: "stub letter"}, logger.NewTestLogger(t))
	h := NewHandlerWithEngine(LoadConfig(), eng, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), createInput())
	require.NoError(t, err)
	assert.Equal(t, "stub letter", output.LetterText)
	assert.Equal(t, "remote", output.GenerationPath)
}

type stubGenerator struct {
	text string
}

func (s stubGenerator) Generate(_ context.Context, _ catalog.Template, _ catalog.Language, _ field.Values) (string, error) {
	return s.text, nil
}
