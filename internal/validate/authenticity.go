package validate

import (
	"fmt"

	"github.com/credvet/credvet/internal/model"
)

// Authenticity applies type-specific structural checks to each present
// document, independent of the claim. Missing structural markers are
// warnings; missing content that defines the document type (an ID
// letter without an ID number, a transcript without courses or grades)
// is critical — the document is probably not what it claims to be.
func Authenticity(docs model.DocumentSet) model.CategoryResult {
	var issues []model.Issue

	for _, doc := range docs.Ordered() {
		switch doc.Type {
		case model.DocStudentID:
			issues = append(issues, checkStudentID(doc)...)
		case model.DocTranscript:
			issues = append(issues, checkTranscript(doc)...)
		case model.DocStudentRecord:
			issues = append(issues, checkStudentRecord(doc)...)
		case model.DocUnionLetter:
			issues = append(issues, checkUnionLetter(doc)...)
		}

		// Every document type is expected to carry a date
		if !doc.Meta.FormatMarkers.HasDate {
			issues = append(issues, model.Issue{
				Type:        "missing_date",
				Document:    doc.Type,
				Description: fmt.Sprintf("No date found in %s", doc.Type),
				Severity:    model.SeverityWarning,
			})
		}
	}

	return model.NewCategoryResult(issues)
}

func checkStudentID(doc model.ExtractedDocument) []model.Issue {
	var issues []model.Issue

	if !doc.Meta.FormatMarkers.HasHeader {
		issues = append(issues, model.Issue{
			Type:        "missing_header",
			Document:    doc.Type,
			Description: "Student ID letter lacks proper header",
			Severity:    model.SeverityWarning,
		})
	}

	if doc.Meta.StudentID == nil || doc.Meta.StudentID.IDNumber == "" {
		issues = append(issues, model.Issue{
			Type:        "missing_id_number",
			Document:    doc.Type,
			Description: "No student ID number found in ID letter",
			Severity:    model.SeverityCritical,
		})
	}

	return issues
}

func checkTranscript(doc model.ExtractedDocument) []model.Issue {
	var issues []model.Issue

	if !doc.Meta.FormatMarkers.HasHeader {
		issues = append(issues, model.Issue{
			Type:        "missing_header",
			Document:    doc.Type,
			Description: "Transcript lacks proper university header",
			Severity:    model.SeverityWarning,
		})
	}

	var meta model.TranscriptMeta
	if doc.Meta.Transcript != nil {
		meta = *doc.Meta.Transcript
	}

	if len(meta.Courses) == 0 {
		issues = append(issues, model.Issue{
			Type:        "missing_courses",
			Document:    doc.Type,
			Description: "No course codes found in transcript",
			Severity:    model.SeverityCritical,
		})
	}

	if len(meta.Grades) == 0 {
		issues = append(issues, model.Issue{
			Type:        "missing_grades",
			Document:    doc.Type,
			Description: "No grades found in transcript",
			Severity:    model.SeverityCritical,
		})
	}

	return issues
}

func checkStudentRecord(doc model.ExtractedDocument) []model.Issue {
	var issues []model.Issue

	if !doc.Meta.FormatMarkers.HasLetterhead {
		issues = append(issues, model.Issue{
			Type:        "missing_letterhead",
			Document:    doc.Type,
			Description: "Student record lacks official letterhead",
			Severity:    model.SeverityWarning,
		})
	}

	if doc.Meta.StudentRecord == nil || doc.Meta.StudentRecord.Status == "" {
		issues = append(issues, model.Issue{
			Type:        "missing_status",
			Document:    doc.Type,
			Description: "No student status found in student record",
			Severity:    model.SeverityWarning,
		})
	}

	return issues
}

func checkUnionLetter(doc model.ExtractedDocument) []model.Issue {
	var issues []model.Issue

	if !doc.Meta.FormatMarkers.HasHeader {
		issues = append(issues, model.Issue{
			Type:        "missing_header",
			Document:    doc.Type,
			Description: "Union letter lacks organizational header",
			Severity:    model.SeverityWarning,
		})
	}

	if doc.Meta.UnionLetter == nil || !doc.Meta.UnionLetter.HasSignature {
		issues = append(issues, model.Issue{
			Type:        "missing_signature",
			Document:    doc.Type,
			Description: "No signature found in union letter",
			Severity:    model.SeverityWarning,
		})
	}

	return issues
}
