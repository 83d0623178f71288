// internal/letter/remote/fallback.go
package remote

import (
	"fmt"
	"strings"

	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"
)

// Fallback assembles a minimal deterministic letter straight from the field
// values: address block, date, subject, body, closing. It is the recovery
// path when the remote endpoint is unavailable, so the user always gets a
// usable letter instead of a network error.
func Fallback(t catalog.Template, lang catalog.Language, v field.Values) string {
	subject := v.Get(field.Subject)
	if subject == "" {
		subject = t.LabelEn
		if lang == catalog.Hindi {
			subject = t.LabelHi
		}
	}

	body := v.Get(field.CustomBody)
	if body == "" {
		body = v.Get(field.IncidentDetails)
	}

	if lang == catalog.Hindi {
		if body == "" {
			body = "कृपया मेरे आवेदन पर विचार करें।"
		}
		return strings.TrimSpace(fmt.Sprintf(`सेवा में,
%s
%s
%s, %s

दिनांक: %s

विषय: %s

महोदय,

सविनय निवेदन है कि मैं %s, निवासी %s, %s का/की निवासी हूँ।

%s

अतः श्रीमान से सविनय अनुरोध है कि मेरे आवेदन पर उचित कार्यवाही करने की कृपा करें।

भवदीय,
%s
पता: %s
मोबाइल: %s`,
			orBlank(v.Get(field.RecipientTitle)),
			orBlank(v.Get(field.RecipientStreet)),
			orBlank(v.Get(field.RecipientCity)), orBlank(v.Get(field.RecipientState)),
			orBlank(v.Get(field.Date)),
			subject,
			orBlank(v.Get(field.SenderName)), orBlank(v.Get(field.SenderStreet)), orBlank(v.Get(field.SenderCity)),
			body,
			orBlank(v.Get(field.SenderName)),
			senderAddress(v),
			orBlank(v.Get(field.Phone))))
	}

	if body == "" {
		body = "Please consider my application."
	}
	return strings.TrimSpace(fmt.Sprintf(`To,
%s
%s
%s, %s

Date: %s

Subject: %s

Respected Sir/Madam,

I, %s, resident of %s, %s, respectfully submit this application.

%s

I humbly request you to kindly take necessary action on my application.

Yours faithfully,
%s
Address: %s
Mobile: %s`,
		orBlank(v.Get(field.RecipientTitle)),
		orBlank(v.Get(field.RecipientStreet)),
		orBlank(v.Get(field.RecipientCity)), orBlank(v.Get(field.RecipientState)),
		orBlank(v.Get(field.Date)),
		subject,
		orBlank(v.Get(field.SenderName)), orBlank(v.Get(field.SenderStreet)), orBlank(v.Get(field.SenderCity)),
		body,
		orBlank(v.Get(field.SenderName)),
		senderAddress(v),
		orBlank(v.Get(field.Phone))))
}
