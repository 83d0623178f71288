// internal/workers/letter/select-template/models.go
package selecttemplate

// Input selects a template directly by id, or lists what a category offers.
type Input struct {
	TemplateID string `json:"templateId,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	Language   string `json:"language,omitempty"`
}

// Output carries everything the form layer needs to build the field form.
type Output struct {
	SelectedTemplateID string           `json:"selectedTemplateId,omitempty"`
	Label              string           `json:"label,omitempty"`
	Mode               string           `json:"mode,omitempty"`
	RequiredFields     []string         `json:"requiredFields,omitempty"`
	Languages          []string         `json:"languages,omitempty"`
	Templates          []TemplateOption `json:"templates,omitempty"`
}

// TemplateOption is one entry in a category listing.
type TemplateOption struct {
	ID      string `json:"id"`
	LabelEn string `json:"labelEn"`
	LabelHi string `json:"labelHi"`
	Mode    string `json:"mode"`
}
