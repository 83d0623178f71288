// internal/letter/render/render.go
package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"
)

var (
	ErrWrongMode           = errors.New("RENDER_WRONG_MODE")
	ErrUnsupportedLanguage = errors.New("UNSUPPORTED_LANGUAGE")
)

// BlankMarker stands in for an unset field in rendered output. Ten
// underscores, wide enough to look like a fillable line on paper.
const BlankMarker = "__________"

// Render produces the final letter text for an instant template by
// substituting every known placeholder in the body for lang. Values insert
// verbatim (plain-text output, no escaping); empty values insert BlankMarker
// so the printed letter keeps a visible line to fill by hand. Unknown tokens
// are left untouched; the catalog consistency check rejects them at startup.
//
// Render is a pure function of its inputs: no I/O, no hidden state, identical
// inputs give identical output.
func Render(t catalog.Template, lang catalog.Language, values field.Values) (string, error) {
	if t.Mode != catalog.ModeInstant {
		return "", fmt.Errorf("%w: template %s is %s", ErrWrongMode, t.ID, t.Mode)
	}
	body, ok := t.Bodies[lang]
	if !ok || body == "" {
		// No cross-language fallback: the caller picks a supported language
		// or routes to remote generation instead.
		return "", fmt.Errorf("%w: template %s has no %s body", ErrUnsupportedLanguage, t.ID, lang)
	}

	names := catalog.Placeholders(body)
	// Longest names first, so a name that is a prefix of another can never
	// split its longer sibling's token mid-way.
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		if !field.Known(name) {
			continue
		}
		value := strings.TrimSpace(values.Get(name))
		if value == "" {
			value = BlankMarker
		}
		pairs = append(pairs, "{{"+string(name)+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(body), nil
}
