// internal/letter/redact/redact.go
//
// Sensitive field values never leave the process: before a prompt is sent to
// the remote text-generation endpoint, each one is swapped for a fixed
// sentinel token, and the tokens are swapped back on the response. The map is
// built fresh per generation call, never persisted and never logged.
package redact

import (
	"strings"

	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/render"
)

// sentinels is the fixed bijection between sensitive fields and the opaque
// tokens that stand in for them in outbound prompts.
var sentinels = map[field.Name]string{
	field.AccountNumber:  "[ACCOUNT_PLACEHOLDER]",
	field.CifNumber:      "[CIF_PLACEHOLDER]",
	field.ConsumerNumber: "[CONSUMER_PLACEHOLDER]",
	field.Phone:          "[PHONE_PLACEHOLDER]",
	field.ImeiNumber:     "[IMEI_PLACEHOLDER]",
	field.AadharNumber:   "[AADHAR_PLACEHOLDER]",
	field.RationCard:     "[RATION_PLACEHOLDER]",
}

// Sensitive reports whether name is redacted from outbound prompts.
func Sensitive(name field.Name) bool {
	_, ok := sentinels[name]
	return ok
}

// SentinelFor returns the token standing in for name, or "" if name is not
// sensitive.
func SentinelFor(name field.Name) string {
	return sentinels[name]
}

// Map records which sentinel tokens were issued for one generation call.
type Map map[string]string // sentinel -> original value

// Redact returns a copy of values with every non-empty sensitive value
// replaced by its sentinel token, plus the map needed to reverse the
// substitution. The caller's map is never mutated.
func Redact(values field.Values) (field.Values, Map) {
	sanitized := values.Clone()
	tokens := make(Map)
	for name, sentinel := range sentinels {
		if !values.IsSet(name) {
			continue
		}
		tokens[sentinel] = values.Get(name)
		sanitized[name] = sentinel
	}
	return sanitized, tokens
}

// Restore replaces every occurrence of every known sentinel in text with the
// original value. Plain string replacement, no pattern interpretation, so a
// value containing regex metacharacters can never corrupt the result. Tokens
// the remote echoed back without a recorded value (the field was empty) become
// the blank marker rather than vanishing.
func (m Map) Restore(text string) string {
	for _, sentinel := range sentinels {
		original, ok := m[sentinel]
		if !ok {
			original = render.BlankMarker
		}
		text = strings.ReplaceAll(text, sentinel, original)
	}
	return text
}
