// internal/letter/redact/redact_test.go
package redact

import (
	"testing"

	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact_ReplacesSensitiveValues(t *testing.T) {
	values := field.Values{
		field.SenderName:    "Ramesh Kumar",
		field.AccountNumber: "12345678901",
		field.Phone:         "9876543210",
		field.AadharNumber:  "123456789012",
	}

	sanitized, tokens := Redact(values)

	assert.Equal(t, "[ACCOUNT_PLACEHOLDER]", sanitized.Get(field.AccountNumber))
	assert.Equal(t, "[PHONE_PLACEHOLDER]", sanitized.Get(field.Phone))
	assert.Equal(t, "[AADHAR_PLACEHOLDER]", sanitized.Get(field.AadharNumber))
	// Non-sensitive fields pass through.
	assert.Equal(t, "Ramesh Kumar", sanitized.Get(field.SenderName))

	assert.Equal(t, "12345678901", tokens["[ACCOUNT_PLACEHOLDER]"])
	assert.Equal(t, "9876543210", tokens["[PHONE_PLACEHOLDER]"])
}

func TestRedact_DoesNotMutateCaller(t *testing.T) {
	values := field.Values{field.AccountNumber: "12345678901"}
	_, _ = Redact(values)
	assert.Equal(t, "12345678901", values.Get(field.AccountNumber))
}

func TestRedact_SkipsEmptySensitiveFields(t *testing.T) {
	sanitized, tokens := Redact(field.Values{
		field.AccountNumber: "",
		field.Phone:         "   ",
	})
	assert.Empty(t, tokens)
	assert.Equal(t, "", sanitized.Get(field.AccountNumber))
}

func TestRestore_RoundTrip(t *testing.T) {
	values := field.Values{
		field.AccountNumber: "12345678901",
		field.Phone:         "9876543210",
	}
	_, tokens := Redact(values)

	text := "Account [ACCOUNT_PLACEHOLDER] linked to [PHONE_PLACEHOLDER]. Ref [ACCOUNT_PLACEHOLDER]."
	restored := tokens.Restore(text)

	assert.Equal(t, "Account 12345678901 linked to 9876543210. Ref 12345678901.", restored)
}

func TestRestore_UnissuedSentinelBecomesBlankMarker(t *testing.T) {
	// The remote echoed a sentinel we never issued (the field was empty);
	// the token must not survive into the letter.
	_, tokens := Redact(field.Values{field.Phone: "9876543210"})

	restored := tokens.Restore("Aadhar: [AADHAR_PLACEHOLDER], Phone: [PHONE_PLACEHOLDER]")
	assert.Equal(t, "Aadhar: "+render.BlankMarker+", Phone: 9876543210", restored)
}

func TestRestore_ValueWithRegexMetacharacters(t *testing.T) {
	values := field.Values{field.AccountNumber: "123(45)$67*89.01"}
	_, tokens := Redact(values)

	restored := tokens.Restore("Acct [ACCOUNT_PLACEHOLDER]")
	assert.Equal(t, "Acct 123(45)$67*89.01", restored)
}

func TestSensitive(t *testing.T) {
	assert.True(t, Sensitive(field.AccountNumber))
	assert.True(t, Sensitive(field.AadharNumber))
	assert.False(t, Sensitive(field.SenderName))

	require.NotEmpty(t, SentinelFor(field.AccountNumber))
	assert.Empty(t, SentinelFor(field.SenderName))
}
