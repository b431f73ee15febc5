package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/credvet/credvet/internal/model"
)

// maxDocChars caps how much of each document's text goes into the
// prompt, to keep token usage bounded.
const maxDocChars = 1000

const systemPrompt = `You are an expert academic document validator. Your task is to analyze academic documents and verify their authenticity by cross-referencing information between different documents and user-provided personal/academic data.

Analyze the following:
1. Personal information consistency across documents (name, gender, address, etc.)
2. Academic information consistency (university, major, graduation info, etc.)
3. Document authenticity markers (proper formatting, letterheads, etc.)
4. Cross-document consistency of all information

For each area of validation, identify:
- Whether it passes, has warnings, or fails
- Specific issues found with detailed descriptions
- Severity of each issue (warning or critical)

Respond with JSON only, no surrounding prose.`

const responseTemplate = `{
  "personal_validation": {"status": "Passed|Warning|Failed", "issues": [{"type": "issue_type", "description": "Detailed description", "severity": "warning|critical", "document": "document_type"}]},
  "academic_validation": {"status": "Passed|Warning|Failed", "issues": []},
  "document_authenticity": {"status": "Passed|Warning|Failed", "issues": []},
  "cross_document_consistency": {"status": "Passed|Warning|Failed", "issues": []},
  "overall_status": "Passed|Warning|Failed"
}`

// BuildPrompt constructs the user prompt for one assessment
func BuildPrompt(personal model.PersonalInfo, academic model.AcademicInfo, docs model.DocumentSet) string {
	personalJSON, _ := json.Marshal(personal)
	academicJSON, _ := json.Marshal(academic)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here is the personal information provided by the user:\n%s\n\n", personalJSON)
	fmt.Fprintf(&sb, "Here is the academic information provided by the user:\n%s\n\n", academicJSON)
	sb.WriteString("Here are the documents submitted for validation (extracted text):\n\n")

	for _, doc := range docs.Ordered() {
		text := doc.Text
		if text == "" {
			text = "No text extracted"
		}
		if len(text) > maxDocChars {
			text = text[:maxDocChars] + "..."
		}
		fmt.Fprintf(&sb, "--- %s DOCUMENT ---\n%s\n\n", strings.ToUpper(string(doc.Type)), text)
	}

	sb.WriteString("Analyze these documents and validate them against the provided personal and academic information.\n")
	sb.WriteString("Determine if there are any inconsistencies, missing information, or potential issues.\n\n")
	sb.WriteString("Return your analysis in the following JSON format:\n")
	sb.WriteString(responseTemplate)

	return sb.String()
}

// ParseReport decodes an assessor response into a ValidationReport.
// Providers wrap JSON in markdown fences or prose often enough that the
// decoder extracts the outermost object before unmarshaling. Statuses
// are re-derived from the issue lists afterwards: the escalation rule
// is an invariant the model's own status fields are not trusted with.
func ParseReport(raw string) (*model.ValidationReport, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in assessor response")
	}

	var report model.ValidationReport
	if err := json.Unmarshal([]byte(raw[start:end+1]), &report); err != nil {
		return nil, fmt.Errorf("decode assessor response: %w", err)
	}

	report.Personal = model.NewCategoryResult(report.Personal.Issues)
	report.Academic = model.NewCategoryResult(report.Academic.Issues)
	report.Authenticity = model.NewCategoryResult(report.Authenticity.Issues)
	report.CrossDocument = model.NewCategoryResult(report.CrossDocument.Issues)
	report.DeriveOverall()

	return &report, nil
}
