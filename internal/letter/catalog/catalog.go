// internal/letter/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"regexp"

	"letter-workers/internal/letter/field"
)

var (
	ErrTemplateNotFound = errors.New("TEMPLATE_NOT_FOUND")
	ErrCategoryNotFound = errors.New("CATEGORY_NOT_FOUND")
)

// Language selects the output language of a rendered letter.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Mode decides how a template produces its letter text.
type Mode string

const (
	// ModeInstant templates carry fixed bodies and render by local
	// placeholder substitution.
	ModeInstant Mode = "instant"
	// ModeRemote templates carry no body and go through the remote
	// generation client.
	ModeRemote Mode = "remote"
)

type Category struct {
	ID      string
	LabelEn string
	LabelHi string
}

// Template is one category-scoped letter pattern. RequiredFields order defines
// the input rendering order for the UI, not substitution order.
type Template struct {
	ID             string
	CategoryID     string
	LabelEn        string
	LabelHi        string
	Mode           Mode
	RequiredFields []field.Name
	Bodies         map[Language]string
}

// Supports reports whether the template has a body for lang. Only meaningful
// for instant templates.
func (t Template) Supports(lang Language) bool {
	return t.Bodies[lang] != ""
}

// Catalog is process-wide read-only configuration: built once at startup,
// never mutated afterwards.
type Catalog struct {
	categories []Category
	templates  []Template
	byID       map[string]int
}

// New builds a catalog over the given categories and templates.
func New(categories []Category, templates []Template) *Catalog {
	c := &Catalog{
		categories: categories,
		templates:  templates,
		byID:       make(map[string]int, len(templates)),
	}
	for i, t := range templates {
		c.byID[t.ID] = i
	}
	return c
}

// Default returns the built-in letter catalog.
func Default() *Catalog {
	return New(builtinCategories, builtinTemplates)
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Templates returns every template in declaration order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// TemplatesFor returns the templates of one category in declaration order.
func (c *Catalog) TemplatesFor(categoryID string) []Template {
	var out []Template
	for _, t := range c.templates {
		if t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	return out
}

// Find looks up a template by id. A miss is a configuration or selection bug,
// not a recoverable runtime condition; callers must not retry it.
func (c *Catalog) Find(id string) (Template, error) {
	i, ok := c.byID[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return c.templates[i], nil
}

var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z]+)\}\}`)

// Placeholders returns the distinct placeholder names occurring in body, in
// first-occurrence order.
func Placeholders(body string) []field.Name {
	seen := make(map[field.Name]struct{})
	var out []field.Name
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		name := field.Name(m[1])
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Verify checks the catalog's internal consistency: category references,
// required-field vocabulary and uniqueness, instant bodies present, and every
// body placeholder resolving to a known field. Run once at startup; any error
// is fatal, so stale placeholder references never survive to render time.
func (c *Catalog) Verify() error {
	cats := make(map[string]struct{}, len(c.categories))
	for _, cat := range c.categories {
		cats[cat.ID] = struct{}{}
	}

	for _, t := range c.templates {
		if _, ok := cats[t.CategoryID]; !ok {
			return fmt.Errorf("template %s: %w: %s", t.ID, ErrCategoryNotFound, t.CategoryID)
		}

		seen := make(map[field.Name]struct{}, len(t.RequiredFields))
		for _, name := range t.RequiredFields {
			if !field.Known(name) {
				return fmt.Errorf("template %s: unknown required field %q", t.ID, name)
			}
			if _, dup := seen[name]; dup {
				return fmt.Errorf("template %s: duplicate required field %q", t.ID, name)
			}
			seen[name] = struct{}{}
		}

		switch t.Mode {
		case ModeInstant:
			nonEmpty := false
			for lang, body := range t.Bodies {
				if body == "" {
					continue
				}
				nonEmpty = true
				for _, name := range Placeholders(body) {
					if !field.Known(name) {
						return fmt.Errorf("template %s (%s): unknown placeholder %q", t.ID, lang, name)
					}
				}
			}
			if !nonEmpty {
				return fmt.Errorf("template %s: instant template has no body", t.ID)
			}
		case ModeRemote:
			if len(t.Bodies) != 0 {
				return fmt.Errorf("template %s: remote template must not carry bodies", t.ID)
			}
		default:
			return fmt.Errorf("template %s: unknown mode %q", t.ID, t.Mode)
		}
	}
	return nil
}
