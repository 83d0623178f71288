// internal/workers/communication/notify-letter/models.go
package notifyletter

// Input delivers a finished letter to the applicant. Email gets the full
// text; SMS gets a short notice with the archive id, never the letter body.
type Input struct {
	LetterID   string `json:"letterId"`
	TemplateID string `json:"templateId"`
	Language   string `json:"language"`
	LetterText string `json:"letterText"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
