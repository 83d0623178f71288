// internal/workers/letter/render-letter/models.go
package renderletter

// Input renders an instant-mode template with the validated field values.
type Input struct {
	TemplateID  string            `json:"templateId"`
	Language    string            `json:"language"`
	FieldValues map[string]string `json:"fieldValues"`
}

// Output carries the final letter text. GenerationPath is "instant" for a
// normal render and "fallback" when the deterministic fallback letter had to
// step in.
type Output struct {
	LetterText     string `json:"letterText"`
	GenerationPath string `json:"generationPath"`
}
