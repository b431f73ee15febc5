package model

import "time"

// Severity indicates how serious a detected issue is
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Status is the verdict for a validation category or a whole report
type Status string

const (
	StatusPassed  Status = "Passed"
	StatusWarning Status = "Warning"
	StatusFailed  Status = "Failed"
)

// Issue is a single detected inconsistency or structural defect.
// Document is set for issues scoped to one document; Documents is set
// for cross-document issues naming the pair involved. Both empty means
// the issue concerns the claim as a whole.
type Issue struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Document    DocType   `json:"document,omitempty"`
	Documents   []DocType `json:"documents,omitempty"`
}

// CategoryResult holds the issues found by one validation category.
// Status is always derived from the issue list, never set independently.
type CategoryResult struct {
	Status Status  `json:"status"`
	Issues []Issue `json:"issues"`
}

// StatusFor applies the severity escalation rule to a list of issues:
// critical present -> Failed, else any issue -> Warning, else Passed.
func StatusFor(issues []Issue) Status {
	status := StatusPassed
	for _, issue := range issues {
		if issue.Severity == SeverityCritical {
			return StatusFailed
		}
		status = StatusWarning
	}
	return status
}

// NewCategoryResult builds a CategoryResult with its derived status
func NewCategoryResult(issues []Issue) CategoryResult {
	if issues == nil {
		issues = []Issue{}
	}
	return CategoryResult{
		Status: StatusFor(issues),
		Issues: issues,
	}
}

// ValidationReport is the immutable outcome of one validation run.
// The JSON shape is flat enough to persist verbatim and render without
// reinterpretation.
type ValidationReport struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`

	Personal      CategoryResult `json:"personal_validation"`
	Academic      CategoryResult `json:"academic_validation"`
	Authenticity  CategoryResult `json:"document_authenticity"`
	CrossDocument CategoryResult `json:"cross_document_consistency"`

	Overall Status `json:"overall_status"`
}

// Categories returns the four category results in report order
func (r *ValidationReport) Categories() []CategoryResult {
	return []CategoryResult{r.Personal, r.Academic, r.Authenticity, r.CrossDocument}
}

// AllIssues returns the union of issues across all four categories
func (r *ValidationReport) AllIssues() []Issue {
	var issues []Issue
	for _, c := range r.Categories() {
		issues = append(issues, c.Issues...)
	}
	return issues
}

// DeriveOverall recomputes the overall status from the union of all
// category issues using the same escalation rule applied per category.
func (r *ValidationReport) DeriveOverall() {
	r.Overall = StatusFor(r.AllIssues())
}
