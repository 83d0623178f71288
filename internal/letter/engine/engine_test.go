// internal/letter/engine/engine_test.go
package engine

import (
	"context"
	"errors"
	"testing"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/remote"
	"letter-workers/internal/letter/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _ catalog.Template, _ catalog.Language, _ field.Values) (string, error) {
	s.calls++
	return s.text, s.err
}

func atmValues() field.Values {
	return field.Values{
		field.SenderName:        "Ramesh Kumar",
		field.SenderStreet:      "12 MG Road",
		field.SenderCity:        "Pune",
		field.SenderState:       "Maharashtra",
		field.SenderPincode:     "411001",
		field.AccountNumber:     "12345678901",
		field.BankName:          "State Bank of India",
		field.BranchName:        "Pune Camp",
		field.AtmCardLastDigits: "4321",
		field.Date:              "2026-08-31",
		field.Phone:             "9876543210",
	}
}

func customValues() field.Values {
	return field.Values{
		field.SenderName:    "Ramesh Kumar",
		field.SenderStreet:  "12 MG Road",
		field.SenderCity:    "Pune",
		field.SenderState:   "Maharashtra",
		field.SenderPincode: "411001",
		field.AccountNumber: "12345678901",
		field.BankName:      "State Bank of India",
		field.BranchName:    "Pune Camp",
		field.CustomBody:    "Please update my registered address.",
	}
}

func TestEngine_Generate_InstantPath(t *testing.T) {
	gen := &stubGenerator{}
	eng := New(catalog.Default(), gen, logger.NewTestLogger(t))

	res, err := eng.Generate(context.Background(), Request{
		TemplateID: "bank_atm_lost",
		Language:   catalog.English,
		Values:     atmValues(),
	})
	require.NoError(t, err)

	assert.Equal(t, PathInstant, res.Path)
	assert.Contains(t, res.Text, "Ramesh Kumar")
	assert.NotContains(t, res.Text, "{{")
	// Instant templates never touch the remote endpoint.
	assert.Zero(t, gen.calls)
}

func TestEngine_Generate_RemotePath(t *testing.T) {
	gen := &stubGenerator{text: "Respected Sir, generated letter body."}
	eng := New(catalog.Default(), gen, logger.NewTestLogger(t))

	res, err := eng.Generate(context.Background(), Request{
		TemplateID: "bank_custom",
		Language:   catalog.English,
		Values:     customValues(),
	})
	require.NoError(t, err)

	assert.Equal(t, PathRemote, res.Path)
	assert.Equal(t, "Respected Sir, generated letter body.", res.Text)
	assert.Equal(t, 1, gen.calls)
}

func TestEngine_Generate_RemoteFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: remote.ErrRemoteUnavailable}
	eng := New(catalog.Default(), gen, logger.NewTestLogger(t))

	res, err := eng.Generate(context.Background(), Request{
		TemplateID: "bank_custom",
		Language:   catalog.English,
		Values:     customValues(),
	})
	require.NoError(t, err)

	assert.Equal(t, PathFallback, res.Path)
	assert.Contains(t, res.Text, "Ramesh Kumar")
	assert.Contains(t, res.Text, "Please update my registered address.")
}

func TestEngine_Generate_ValidationGate(t *testing.T) {
	gen := &stubGenerator{text: "should not be called"}
	eng := New(catalog.Default(), gen, logger.NewTestLogger(t))

	values := customValues()
	delete(values, field.CustomBody)
	values[field.Phone] = "1234567890" // invalid mobile prefix

	_, err := eng.Generate(context.Background(), Request{
		TemplateID: "bank_custom",
		Language:   catalog.English,
		Values:     values,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Missing, field.CustomBody)
	require.Len(t, vErr.Result.Errors, 1)
	assert.Equal(t, field.Phone, vErr.Result.Errors[0].Field)
	assert.Zero(t, gen.calls)
}

func TestEngine_Generate_TemplateNotFound(t *testing.T) {
	eng := New(catalog.Default(), &stubGenerator{}, logger.NewTestLogger(t))

	_, err := eng.Generate(context.Background(), Request{
		TemplateID: "no_such_template",
		Language:   catalog.English,
	})
	assert.ErrorIs(t, err, catalog.ErrTemplateNotFound)
}

func TestEngine_Generate_UnsupportedLanguagePassesThrough(t *testing.T) {
	eng := New(catalog.Default(), &stubGenerator{}, logger.NewTestLogger(t))

	_, err := eng.Generate(context.Background(), Request{
		TemplateID: "bank_atm_lost",
		Language:   catalog.Language("fr"),
		Values:     atmValues(),
	})
	assert.ErrorIs(t, err, render.ErrUnsupportedLanguage)
}

func TestEngine_VerifyCatalog(t *testing.T) {
	eng := New(catalog.Default(), &stubGenerator{}, logger.NewTestLogger(t))
	assert.NoError(t, eng.VerifyCatalog())

	broken := catalog.New(nil, []catalog.Template{{ID: "t1", CategoryID: "ghost", Mode: catalog.ModeInstant}})
	engBroken := New(broken, &stubGenerator{}, logger.NewTestLogger(t))
	assert.Error(t, engBroken.VerifyCatalog())
}

func TestEngine_Generate_ValidationErrorMessage(t *testing.T) {
	eng := New(catalog.Default(), &stubGenerator{}, logger.NewTestLogger(t))

	_, err := eng.Generate(context.Background(), Request{
		TemplateID: "bank_custom",
		Language:   catalog.English,
		Values:     field.Values{},
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, catalog.ErrTemplateNotFound))
	assert.Contains(t, err.Error(), "missing")
}
