package pipeline

import (
	"fmt"
	"strings"
)

// Summary renders the run-end report: counts per stage plus every tool that
// failed validation. Counts always equal the cardinality of the result sets.
func (r *Result) Summary() string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Summary")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(&b, "Generated: %d/%d\n", len(r.Generated), r.Total)
	fmt.Fprintf(&b, "Validated: %d/%d\n", len(r.Validated), len(r.Generated))
	if len(r.FailedValidation) > 0 {
		fmt.Fprintf(&b, "Failed validation: %d\n", len(r.FailedValidation))
		for _, tool := range r.FailedValidation {
			fmt.Fprintf(&b, "   • %s\n", tool)
		}
	}
	fmt.Fprintf(&b, "Git initialized: %d/%d\n", len(r.GitInitialized), len(r.Validated))
	fmt.Fprintf(&b, "GitHub configured: %d/%d\n", len(r.GitHubConfigured), len(r.Validated))
	fmt.Fprintln(&b, rule)
	return b.String()
}
