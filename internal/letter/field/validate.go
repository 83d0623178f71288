// internal/letter/field/validate.go
package field

import (
	"fmt"
	"regexp"
	"strings"
)

// Format rules carried over from the production validation layer. All three
// apply only when the field is non-empty; presence is checked separately
// against the template's required-field list.
var (
	accountNumberPattern = regexp.MustCompile(`^\d{11,16}$`)
	phonePattern         = regexp.MustCompile(`^[6-9]\d{9}$`)
	aadharPattern        = regexp.MustCompile(`^\d{12}$`)
)

type ValidationError struct {
	Field   Name   `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Result reports required fields that are blank and set fields that fail
// their format rule. Valid is true only when both lists are empty.
type Result struct {
	Valid   bool              `json:"valid"`
	Missing []Name            `json:"missing,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// Missing returns the required fields whose trimmed value is empty, in the
// template's declared order.
func Missing(required []Name, v Values) []Name {
	var missing []Name
	for _, name := range required {
		if !v.IsSet(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Validate checks required-field presence and the domain format rules.
// Callers should block generation while Valid is false; the engine runs the
// same check again as a defensive second gate.
func Validate(required []Name, v Values) *Result {
	res := &Result{Missing: Missing(required, v)}

	checks := []struct {
		name    Name
		pattern *regexp.Regexp
		message string
	}{
		{AccountNumber, accountNumberPattern, "account number must be 11-16 digits"},
		{Phone, phonePattern, "phone must be a 10-digit mobile number starting with 6-9"},
		{AadharNumber, aadharPattern, "aadhar number must be exactly 12 digits"},
	}
	for _, c := range checks {
		raw := strings.ReplaceAll(v.Get(c.name), " ", "")
		if raw == "" {
			continue
		}
		if !c.pattern.MatchString(raw) {
			res.Errors = append(res.Errors, ValidationError{
				Field:   c.name,
				Message: c.message,
				Code:    "INVALID_FORMAT",
			})
		}
	}

	res.Valid = len(res.Missing) == 0 && len(res.Errors) == 0
	return res
}

// Error summarizes a failed result as a single error value.
func (r *Result) Error() error {
	if r.Valid {
		return nil
	}
	var parts []string
	if len(r.Missing) > 0 {
		names := make([]string, len(r.Missing))
		for i, n := range r.Missing {
			names[i] = string(n)
		}
		parts = append(parts, fmt.Sprintf("missing: %s", strings.Join(names, ", ")))
	}
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return fmt.Errorf("field validation failed (%s)", strings.Join(parts, "; "))
}
