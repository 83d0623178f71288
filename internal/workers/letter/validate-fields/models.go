// internal/workers/letter/validate-fields/models.go
package validatefields

// Input carries the raw form state to validate. SessionID is optional; when
// present the state is also saved as the session's draft.
type Input struct {
	TemplateID  string            `json:"templateId"`
	Language    string            `json:"language,omitempty"`
	SessionID   string            `json:"sessionId,omitempty"`
	FieldValues map[string]string `json:"fieldValues"`
}

type Output struct {
	Valid         bool         `json:"valid"`
	MissingFields []string     `json:"missingFields,omitempty"`
	Errors        []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
