// internal/letter/remote/clean.go
package remote

import (
	"regexp"
	"strings"
)

// The remote endpoint is untrusted and unstructured: responses arrive with
// markdown leftovers, vendor banners and ad fragments. Every format guarantee
// is enforced here, not assumed from the provider.
var cleanSteps = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`\*\*`), ""},
	{regexp.MustCompile(`#{1,6}\s?`), ""},
	{regexp.MustCompile(`(?i)Generated via.*`), ""},
	{regexp.MustCompile(`(?i)Pollinations`), ""},
	{regexp.MustCompile(`Ø`), ""},
	{regexp.MustCompile(`(?i)\(Ad\)`), ""},
	{regexp.MustCompile(`(?i)\[Unrelated text\]`), ""},
	{regexp.MustCompile(`(?m)^\s*[-_]{3,}\s*$`), ""},
	{regexp.MustCompile(`(?i)\[?\(?Signature\)?\]?`), ""},
	{regexp.MustCompile("```[\\s\\S]*?```"), ""},
	{regexp.MustCompile("`"), ""},
	{regexp.MustCompile(`\*\s`), "• "},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
}

// clean strips markup artifacts and vendor leakage from a raw response and
// normalizes blank runs to a single empty line.
func clean(text string) string {
	for _, step := range cleanSteps {
		text = step.pattern.ReplaceAllString(text, step.repl)
	}
	return strings.TrimSpace(text)
}
