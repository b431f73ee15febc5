package model

import (
	"encoding/json"
	"testing"
)

func TestStatusFor_EscalationRule(t *testing.T) {
	if s := StatusFor(nil); s != StatusPassed {
		t.Errorf("Expected Passed for no issues, got %s", s)
	}

	warnings := []Issue{{Type: "name_mismatch", Severity: SeverityWarning}}
	if s := StatusFor(warnings); s != StatusWarning {
		t.Errorf("Expected Warning, got %s", s)
	}

	mixed := []Issue{
		{Type: "name_mismatch", Severity: SeverityWarning},
		{Type: "university_mismatch", Severity: SeverityCritical},
	}
	if s := StatusFor(mixed); s != StatusFailed {
		t.Errorf("Expected Failed when any issue is critical, got %s", s)
	}
}

func TestNewCategoryResult_StatusDerivedFromIssues(t *testing.T) {
	result := NewCategoryResult(nil)

	if result.Status != StatusPassed {
		t.Errorf("Expected Passed, got %s", result.Status)
	}
	if result.Issues == nil {
		t.Error("Expected an empty issue list, not nil, so JSON renders []")
	}
}

func TestDeriveOverall_UnionOfCategories(t *testing.T) {
	report := ValidationReport{
		Personal:      NewCategoryResult([]Issue{{Type: "dob_mismatch", Severity: SeverityWarning}}),
		Academic:      NewCategoryResult(nil),
		Authenticity:  NewCategoryResult(nil),
		CrossDocument: NewCategoryResult(nil),
	}

	report.DeriveOverall()
	if report.Overall != StatusWarning {
		t.Errorf("Expected Warning, got %s", report.Overall)
	}

	report.CrossDocument = NewCategoryResult([]Issue{{Type: "future_date", Severity: SeverityCritical}})
	report.DeriveOverall()
	if report.Overall != StatusFailed {
		t.Errorf("Expected Failed, got %s", report.Overall)
	}
}

func TestValidationReport_JSONShape(t *testing.T) {
	report := ValidationReport{
		Personal: NewCategoryResult([]Issue{{
			Type:        "name_mismatch",
			Document:    DocTranscript,
			Description: "name not clearly found",
			Severity:    SeverityWarning,
		}}),
		Academic:      NewCategoryResult(nil),
		Authenticity:  NewCategoryResult(nil),
		CrossDocument: NewCategoryResult(nil),
	}
	report.DeriveOverall()

	data, err := json.Marshal(&report)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"personal_validation",
		"academic_validation",
		"document_authenticity",
		"cross_document_consistency",
		"overall_status",
	} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Expected key %q in report JSON", key)
		}
	}

	if decoded["overall_status"] != "Warning" {
		t.Errorf("Expected overall_status Warning, got %v", decoded["overall_status"])
	}
}

func TestDocumentSet_OrderedIsDeterministic(t *testing.T) {
	set := DocumentSet{
		DocUnionLetter: {Type: DocUnionLetter},
		DocStudentID:   {Type: DocStudentID},
		DocTranscript:  {Type: DocTranscript},
	}

	ordered := set.Ordered()
	want := []DocType{DocStudentID, DocTranscript, DocUnionLetter}

	if len(ordered) != len(want) {
		t.Fatalf("Expected %d documents, got %d", len(want), len(ordered))
	}
	for i, doc := range ordered {
		if doc.Type != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], doc.Type)
		}
	}
}
