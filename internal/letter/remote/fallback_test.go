// internal/letter/remote/fallback_test.go
package remote

import (
	"strings"
	"testing"

	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/render"

	"github.com/stretchr/testify/assert"
)

func TestFallback_English(t *testing.T) {
	text := Fallback(remoteTemplate(), catalog.English, field.Values{
		field.SenderName:     "Ramesh Kumar",
		field.SenderStreet:   "12 MG Road",
		field.SenderCity:     "Pune",
		field.RecipientTitle: "The Branch Manager",
		field.Date:           "2026-08-31",
		field.CustomBody:     "Please update my registered address.",
	})

	assert.True(t, strings.HasPrefix(text, "To,"))
	assert.Contains(t, text, "Subject: Custom Bank Letter")
	assert.Contains(t, text, "Ramesh Kumar")
	assert.Contains(t, text, "Please update my registered address.")
	assert.Contains(t, text, "Yours faithfully,")
	// Unset phone shows as a fillable line, not an empty hole.
	assert.Contains(t, text, "Mobile: "+render.BlankMarker)
}

func TestFallback_Hindi(t *testing.T) {
	text := Fallback(remoteTemplate(), catalog.Hindi, field.Values{
		field.SenderName: "रमेश कुमार",
	})

	assert.Contains(t, text, "सेवा में,")
	assert.Contains(t, text, "विषय: कस्टम बैंक पत्र")
	assert.Contains(t, text, "भवदीय,")
	assert.Contains(t, text, "रमेश कुमार")
	assert.Contains(t, text, "कृपया मेरे आवेदन पर विचार करें।")
}

func TestFallback_SubjectOverride(t *testing.T) {
	text := Fallback(remoteTemplate(), catalog.English, field.Values{
		field.Subject: "Request for account statement",
	})
	assert.Contains(t, text, "Subject: Request for account statement")
}

func TestFallback_IncidentDetailsAsBody(t *testing.T) {
	text := Fallback(remoteTemplate(), catalog.English, field.Values{
		field.IncidentDetails: "My phone was stolen near the railway station.",
	})
	assert.Contains(t, text, "My phone was stolen near the railway station.")
}

func TestFallback_Deterministic(t *testing.T) {
	values := field.Values{field.SenderName: "Ramesh Kumar"}
	assert.Equal(t,
		Fallback(remoteTemplate(), catalog.English, values),
		Fallback(remoteTemplate(), catalog.English, values))
}
