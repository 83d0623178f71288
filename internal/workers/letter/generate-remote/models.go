// internal/workers/letter/generate-remote/models.go
package generateremote

// Input requests remote generation for a template.
type Input struct {
	TemplateID  string            `json:"templateId"`
	Language    string            `json:"language"`
	FieldValues map[string]string `json:"fieldValues"`
}

// Output carries the final letter text. GenerationPath is "remote" on
// success and "fallback" when the endpoint was unavailable and the
// deterministic letter stepped in. The job never fails for a remote outage.
type Output struct {
	LetterText     string `json:"letterText"`
	GenerationPath string `json:"generationPath"`
}
