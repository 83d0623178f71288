// internal/workers/letter/archive-letter/models.go
package archiveletter

// Input stores a finished letter. SessionID ties the record to the user's
// session so the history view can list it.
type Input struct {
	SessionID      string `json:"sessionId"`
	TemplateID     string `json:"templateId"`
	Language       string `json:"language"`
	GenerationPath string `json:"generationPath"`
	LetterText     string `json:"letterText"`
}

type Output struct {
	LetterID string `json:"letterId"`
}
