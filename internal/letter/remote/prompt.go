// internal/letter/remote/prompt.go
package remote

import (
	"fmt"
	"strings"

	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/render"
)

// buildPrompt assembles the natural-language instruction for the remote
// endpoint. It only ever sees redacted values; sentinel tokens stand in for
// account, phone and identity numbers.
func buildPrompt(t catalog.Template, lang catalog.Language, redacted field.Values) string {
	var parts []string

	parts = append(parts, "You are a professional Indian government document drafter.")
	parts = append(parts, "\nWrite a COMPLETE formal application letter.")

	langInstruction := "Write in formal English suitable for Indian government offices."
	if lang == catalog.Hindi {
		langInstruction = "Write ENTIRELY in formal HINDI (Devanagari script). Use formal Hindi: 'सविनय निवेदन', 'प्रार्थी', 'श्रीमान'."
	}

	parts = append(parts, "\nCRITICAL REQUIREMENTS:")
	parts = append(parts, fmt.Sprintf("- Language: %s", langInstruction))
	parts = append(parts, "- Format: Standard Indian formal application format")
	parts = append(parts, "- NO markdown, NO asterisks, NO special formatting")
	parts = append(parts, "- NO \"[Signature]\" placeholder - end with sender name only")

	parts = append(parts, "\nAPPLICATION DETAILS:")
	parts = append(parts, fmt.Sprintf("- Type: %s", t.LabelEn))
	if subject := redacted.Get(field.Subject); subject != "" {
		parts = append(parts, fmt.Sprintf("- Subject: %s", subject))
	} else {
		parts = append(parts, fmt.Sprintf("- Subject: Application for %s", t.LabelEn))
	}
	parts = append(parts, fmt.Sprintf("- Date: %s", orBlank(redacted.Get(field.Date))))

	parts = append(parts, "\nSENDER DETAILS:")
	parts = append(parts, fmt.Sprintf("- Name: %s", redacted.Get(field.SenderName)))
	if redacted.IsSet(field.FatherName) {
		parts = append(parts, fmt.Sprintf("- Father's Name: %s", redacted.Get(field.FatherName)))
	}
	parts = append(parts, fmt.Sprintf("- Address: %s", senderAddress(redacted)))
	if redacted.IsSet(field.Phone) {
		parts = append(parts, fmt.Sprintf("- Phone: %s", redacted.Get(field.Phone)))
	}
	if redacted.IsSet(field.AadharNumber) {
		parts = append(parts, fmt.Sprintf("- Aadhar: %s", redacted.Get(field.AadharNumber)))
	}

	if recipient := recipientBlock(redacted); recipient != "" {
		parts = append(parts, "\nRECIPIENT:")
		parts = append(parts, recipient)
	}

	if ref := referenceLine(t, redacted); ref != "" {
		parts = append(parts, fmt.Sprintf("\nREFERENCE: %s", ref))
	}

	parts = append(parts, "\nCONTENT/REASON:")
	parts = append(parts, reasonContent(redacted))

	parts = append(parts, `
STRUCTURE:
1. Complete address block (To/From format)
2. Date on right side
3. Subject line
4. Salutation (महोदय/Sir)
5. Body with proper paragraphs
6. Polite closing request
7. "Yours faithfully/भवदीय" with sender name

Write minimum 200 words. Be detailed and professional.`)

	return strings.Join(parts, "\n")
}

func senderAddress(v field.Values) string {
	return fmt.Sprintf("%s, %s, %s - %s",
		orBlank(v.Get(field.SenderStreet)), orBlank(v.Get(field.SenderCity)),
		orBlank(v.Get(field.SenderState)), orBlank(v.Get(field.SenderPincode)))
}

func recipientBlock(v field.Values) string {
	if !v.IsSet(field.RecipientTitle) {
		return ""
	}
	lines := []string{fmt.Sprintf("- Title: %s", v.Get(field.RecipientTitle))}
	var addr []string
	for _, name := range []field.Name{field.RecipientStreet, field.RecipientCity, field.RecipientState, field.RecipientPincode} {
		if v.IsSet(name) {
			addr = append(addr, v.Get(name))
		}
	}
	if len(addr) > 0 {
		lines = append(lines, fmt.Sprintf("- Address: %s", strings.Join(addr, ", ")))
	}
	return strings.Join(lines, "\n")
}

// referenceLine surfaces the category-specific reference number. Values are
// already redacted, so only sentinel tokens reach the wire.
func referenceLine(t catalog.Template, v field.Values) string {
	switch t.CategoryID {
	case "banking":
		ref := fmt.Sprintf("Account No: %s", orBlank(v.Get(field.AccountNumber)))
		if v.IsSet(field.CifNumber) {
			ref += fmt.Sprintf(", CIF: %s", v.Get(field.CifNumber))
		}
		if v.IsSet(field.BankName) {
			ref += fmt.Sprintf(", Bank: %s, Branch: %s", v.Get(field.BankName), orBlank(v.Get(field.BranchName)))
		}
		return ref
	case "police":
		if v.IsSet(field.PoliceStation) {
			return fmt.Sprintf("PS: %s", v.Get(field.PoliceStation))
		}
	case "government":
		if v.IsSet(field.ConsumerNumber) {
			return fmt.Sprintf("Consumer No: %s", v.Get(field.ConsumerNumber))
		}
	}
	return ""
}

func reasonContent(v field.Values) string {
	reason := v.Get(field.CustomBody)
	if reason == "" {
		reason = v.Get(field.IncidentDetails)
	}
	if reason == "" {
		reason = "As per subject."
	}

	var extra strings.Builder
	if v.IsSet(field.IncidentDate) {
		at := v.Get(field.IncidentTime)
		if at == "" {
			at = "approx time"
		}
		fmt.Fprintf(&extra, "\nIncident Date: %s at %s.", v.Get(field.IncidentDate), at)
	}
	if v.IsSet(field.IncidentLocation) {
		fmt.Fprintf(&extra, "\nLocation: %s.", v.Get(field.IncidentLocation))
	}
	if v.IsSet(field.VehicleBrand) {
		fmt.Fprintf(&extra, "\nVehicle: %s %s.", v.Get(field.VehicleType), v.Get(field.VehicleBrand))
	}
	return reason + extra.String()
}

func orBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return render.BlankMarker
	}
	return s
}
