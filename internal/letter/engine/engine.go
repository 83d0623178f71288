// internal/letter/engine/engine.go
package engine

import (
	"context"
	"errors"
	"fmt"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/remote"
	"letter-workers/internal/letter/render"
)

// Path reports which route produced the letter text.
type Path string

const (
	PathInstant  Path = "instant"
	PathRemote   Path = "remote"
	PathFallback Path = "fallback"
)

// ValidationError carries field-level detail back to the caller; it is the
// only user-recoverable failure the engine surfaces.
type ValidationError struct {
	Result *field.Result
}

func (e *ValidationError) Error() string {
	return e.Result.Error().Error()
}

// Generator is the remote text-generation dependency, satisfied by
// *remote.Client.
type Generator interface {
	Generate(ctx context.Context, t catalog.Template, lang catalog.Language, values field.Values) (string, error)
}

type Request struct {
	TemplateID string
	Language   catalog.Language
	Values     field.Values
}

type Result struct {
	Text string
	Path Path
}

// Engine is the single entry point for letter generation: it resolves the
// template, re-checks validation as a defensive gate behind the UI, and
// routes to local substitution or remote generation. Remote outages collapse
// into the deterministic fallback letter; the caller only ever sees success,
// a validation failure, or a configuration-class error (unknown template,
// unsupported language).
//
// The engine holds no per-request state; one instance serves all sessions.
type Engine struct {
	catalog *catalog.Catalog
	remote  Generator
	logger  logger.Logger
}

func New(cat *catalog.Catalog, gen Generator, log logger.Logger) *Engine {
	return &Engine{
		catalog: cat,
		remote:  gen,
		logger:  log.WithFields(map[string]interface{}{"component": "letter-engine"}),
	}
}

func (e *Engine) Generate(ctx context.Context, req Request) (Result, error) {
	t, err := e.catalog.Find(req.TemplateID)
	if err != nil {
		return Result{}, err
	}

	if res := field.Validate(t.RequiredFields, req.Values); !res.Valid {
		return Result{}, &ValidationError{Result: res}
	}

	if t.Mode == catalog.ModeInstant {
		text, err := render.Render(t, req.Language, req.Values)
		switch {
		case err == nil:
			return Result{Text: text, Path: PathInstant}, nil
		case errors.Is(err, render.ErrUnsupportedLanguage):
			// Configuration gap, not a render bug: the caller picks a
			// supported language or routes to the remote path explicitly.
			return Result{}, err
		default:
			e.logger.Error("instant render failed, using fallback letter", map[string]interface{}{
				"templateId": t.ID,
				"error":      err.Error(),
			})
			return Result{Text: remote.Fallback(t, req.Language, req.Values), Path: PathFallback}, nil
		}
	}

	text, err := e.remote.Generate(ctx, t, req.Language, req.Values)
	if err != nil {
		// Never surface a raw network error: the user always gets a letter.
		e.logger.Warn("remote generation unavailable, using fallback letter", map[string]interface{}{
			"templateId": t.ID,
			"error":      err.Error(),
		})
		return Result{Text: remote.Fallback(t, req.Language, req.Values), Path: PathFallback}, nil
	}
	return Result{Text: text, Path: PathRemote}, nil
}

// VerifyCatalog runs the startup consistency check. A failure means a broken
// build, so main treats it as fatal.
func (e *Engine) VerifyCatalog() error {
	if err := e.catalog.Verify(); err != nil {
		return fmt.Errorf("catalog verification failed: %w", err)
	}
	return nil
}
