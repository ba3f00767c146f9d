package gate

import (
	"fmt"
	"strings"
)

// Document is the machine-readable form of a report.
type Document struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Info     []string `json:"info"`
}

// NewDocument converts a report into its machine-readable form.
func NewDocument(r *Report) Document {
	return Document{
		Valid:    r.Valid(),
		Errors:   r.Errors(),
		Warnings: r.Warnings(),
		Info:     r.Info(),
	}
}

// RenderText formats a human-readable quality report for one project.
func RenderText(projectName string, r *Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Quality Check Report")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Project: %s\n", projectName)
	if r.Valid() {
		fmt.Fprintln(&b, "Status: PASSED")
	} else {
		fmt.Fprintln(&b, "Status: FAILED")
	}
	fmt.Fprintln(&b)

	writeBucket(&b, "Errors", r.Errors())
	writeBucket(&b, "Warnings", r.Warnings())
	writeBucket(&b, "Info", r.Info())

	fmt.Fprintln(&b, rule)
	return b.String()
}

func writeBucket(b *strings.Builder, label string, findings []string) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(b, "%s (%d):\n", label, len(findings))
	for _, f := range findings {
		fmt.Fprintf(b, "   • %s\n", f)
	}
	fmt.Fprintln(b)
}
