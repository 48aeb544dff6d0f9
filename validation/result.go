package validation

import "fmt"

// Severity classifies an Issue.
type Severity string

const (
	// SeverityError makes the document invalid.
	SeverityError Severity = "error"
	// SeverityWarning reports something that was removed or defaulted.
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding.
type Issue struct {
	Severity Severity `json:"severity"`
	// Path locates the value, e.g. "$.creator[1].name".
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Severity, i.Path, i.Message)
}

// Result is the outcome of validating one document.
type Result struct {
	// Valid is false when the base keywords are wrong or a top-level
	// required property is missing.
	Valid bool `json:"valid"`
	// Document is the cleaned copy of the input.
	Document map[string]any `json:"document"`
	Issues   []Issue        `json:"issues,omitempty"`
}

// Errors returns the error-level issues.
func (r Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-level issues.
func (r Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r Result) filter(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}
