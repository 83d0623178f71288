// internal/letter/catalog/catalog_test.go
package catalog

import (
	"testing"

	"letter-workers/internal/letter/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Verify(t *testing.T) {
	assert.NoError(t, Default().Verify())
}

func TestCatalog_Find(t *testing.T) {
	cat := Default()

	tmpl, err := cat.Find("bank_atm_lost")
	require.NoError(t, err)
	assert.Equal(t, "banking", tmpl.CategoryID)
	assert.Equal(t, ModeInstant, tmpl.Mode)
	assert.Contains(t, tmpl.RequiredFields, field.AccountNumber)

	_, err = cat.Find("no_such_template")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCatalog_TemplatesFor(t *testing.T) {
	cat := Default()

	banking := cat.TemplatesFor("banking")
	require.NotEmpty(t, banking)
	for _, tmpl := range banking {
		assert.Equal(t, "banking", tmpl.CategoryID)
	}

	assert.Empty(t, cat.TemplatesFor("no_such_category"))
}

func TestCatalog_Templates_Copies(t *testing.T) {
	cat := Default()
	all := cat.Templates()
	require.NotEmpty(t, all)

	// Mutating the returned slice must not touch the catalog.
	all[0].ID = "mutated"
	_, err := cat.Find("mutated")
	assert.Error(t, err)
}

func TestTemplate_Supports(t *testing.T) {
	cat := Default()

	tmpl, err := cat.Find("bank_atm_lost")
	require.NoError(t, err)
	assert.True(t, tmpl.Supports(English))
	assert.True(t, tmpl.Supports(Hindi))

	remote, err := cat.Find("bank_custom")
	require.NoError(t, err)
	assert.False(t, remote.Supports(English))
}

func TestPlaceholders(t *testing.T) {
	body := "Dear {{recipientTitle}}, I am {{senderName}}. Signed, {{senderName}}."
	names := Placeholders(body)
	assert.Equal(t, []field.Name{field.RecipientTitle, field.SenderName}, names)
}

func TestPlaceholders_None(t *testing.T) {
	assert.Empty(t, Placeholders("no placeholders here"))
}

func TestVerify_Failures(t *testing.T) {
	categories := []Category{{ID: "banking", LabelEn: "Banking", LabelHi: "बैंकिंग"}}

	tests := []struct {
		name     string
		template Template
	}{
		{
			name: "unknown category",
			template: Template{
				ID: "t1", CategoryID: "missing", Mode: ModeInstant,
				Bodies: map[Language]string{English: "hello"},
			},
		},
		{
			name: "unknown required field",
			template: Template{
				ID: "t1", CategoryID: "banking", Mode: ModeInstant,
				RequiredFields: []field.Name{"notAField"},
				Bodies:         map[Language]string{English: "hello"},
			},
		},
		{
			name: "duplicate required field",
			template: Template{
				ID: "t1", CategoryID: "banking", Mode: ModeInstant,
				RequiredFields: []field.Name{field.SenderName, field.SenderName},
				Bodies:         map[Language]string{English: "hello"},
			},
		},
		{
			name: "instant template without body",
			template: Template{
				ID: "t1", CategoryID: "banking", Mode: ModeInstant,
			},
		},
		{
			name: "unknown placeholder in body",
			template: Template{
				ID: "t1", CategoryID: "banking", Mode: ModeInstant,
				Bodies: map[Language]string{English: "hello {{mystery}}"},
			},
		},
		{
			name: "remote template with body",
			template: Template{
				ID: "t1", CategoryID: "banking", Mode: ModeRemote,
				Bodies: map[Language]string{English: "hello"},
			},
		},
		{
			name: "unknown mode",
			template: Template{
				ID: "t1", CategoryID: "banking", Mode: "streamed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := New(categories, []Template{tt.template})
			assert.Error(t, cat.Verify())
		})
	}
}
