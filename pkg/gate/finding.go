// Package gate inspects generated project trees against the publishing
// quality contract. The gate is an ordered battery of independent read-only
// checks; findings carry a severity and only error findings block publishing.
package gate

import "fmt"

// Severity classifies a finding.
type Severity string

const (
	// SeverityError marks a hard requirement violation; any error fails the gate.
	SeverityError Severity = "error"
	// SeverityWarning marks a soft quality signal; warnings never fail the gate.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks a confirmation that a check passed.
	SeverityInfo Severity = "info"
)

// Finding is a single (severity, message) pair emitted by a check.
type Finding struct {
	Severity Severity
	Message  string
}

// Report accumulates findings across the battery, preserving emission order
// within each severity bucket.
type Report struct {
	findings []Finding
}

// Errorf records an error finding.
func (r *Report) Errorf(format string, args ...any) {
	r.findings = append(r.findings, Finding{SeverityError, fmt.Sprintf(format, args...)})
}

// Warnf records a warning finding.
func (r *Report) Warnf(format string, args ...any) {
	r.findings = append(r.findings, Finding{SeverityWarning, fmt.Sprintf(format, args...)})
}

// Infof records an informational finding.
func (r *Report) Infof(format string, args ...any) {
	r.findings = append(r.findings, Finding{SeverityInfo, fmt.Sprintf(format, args...)})
}

// Findings returns all findings in emission order.
func (r *Report) Findings() []Finding {
	out := make([]Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

func (r *Report) messages(sev Severity) []string {
	out := []string{}
	for _, f := range r.findings {
		if f.Severity == sev {
			out = append(out, f.Message)
		}
	}
	return out
}

// Errors returns the blocking findings.
func (r *Report) Errors() []string { return r.messages(SeverityError) }

// Warnings returns the advisory findings.
func (r *Report) Warnings() []string { return r.messages(SeverityWarning) }

// Info returns the confirmations of checks that passed.
func (r *Report) Info() []string { return r.messages(SeverityInfo) }

// Valid reports whether the gate passed: true iff no error findings exist.
func (r *Report) Valid() bool {
	for _, f := range r.findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}
