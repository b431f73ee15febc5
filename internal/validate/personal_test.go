package validate

import (
	"testing"

	"github.com/credvet/credvet/internal/model"
)

func docSet(docs ...model.ExtractedDocument) model.DocumentSet {
	set := make(model.DocumentSet, len(docs))
	for _, d := range docs {
		set[d.Type] = d
	}
	return set
}

func TestPersonal_NameMismatchPerDocument(t *testing.T) {
	docs := docSet(
		model.ExtractedDocument{
			Type: model.DocStudentID,
			Text: "student: john smith, id: 12345",
		},
		model.ExtractedDocument{
			Type: model.DocTranscript,
			Text: "nothing useful here",
		},
	)

	result := Personal(docs, model.PersonalInfo{Name: "John Smith"})

	if result.Status != model.StatusWarning {
		t.Errorf("Expected Warning status, got %s", result.Status)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("Expected exactly one issue, got %d", len(result.Issues))
	}

	issue := result.Issues[0]
	if issue.Type != "name_mismatch" {
		t.Errorf("Expected name_mismatch, got %s", issue.Type)
	}
	if issue.Document != model.DocTranscript {
		t.Errorf("Expected issue scoped to transcript, got %s", issue.Document)
	}
	if issue.Severity != model.SeverityWarning {
		t.Errorf("Expected warning severity, got %s", issue.Severity)
	}
}

func TestPersonal_AllOptionalFieldsAbsent(t *testing.T) {
	docs := docSet(model.ExtractedDocument{
		Type: model.DocStudentID,
		Text: "this certifies that alice wong holds student id 998",
	})

	result := Personal(docs, model.PersonalInfo{Name: "Alice Wong"})

	if result.Status != model.StatusPassed {
		t.Errorf("Expected Passed when only the name is claimed and found, got %s", result.Status)
	}
	if len(result.Issues) != 0 {
		t.Errorf("Expected no issues, got %d", len(result.Issues))
	}
}

func TestPersonal_DOBFoundInAnyRendering(t *testing.T) {
	docs := docSet(model.ExtractedDocument{
		Type: model.DocStudentRecord,
		Text: "alice wong, born 12 March 1999, is enrolled",
	})

	result := Personal(docs, model.PersonalInfo{Name: "Alice Wong", DOB: "1999-03-12"})

	for _, issue := range result.Issues {
		if issue.Type == "dob_mismatch" {
			t.Error("Expected '12 March 1999' rendering to satisfy the DOB check")
		}
	}
}

func TestPersonal_DOBMissingIsSingleClaimWideWarning(t *testing.T) {
	docs := docSet(
		model.ExtractedDocument{Type: model.DocStudentID, Text: "alice wong"},
		model.ExtractedDocument{Type: model.DocTranscript, Text: "alice wong"},
	)

	result := Personal(docs, model.PersonalInfo{Name: "Alice Wong", DOB: "1999-03-12"})

	count := 0
	for _, issue := range result.Issues {
		if issue.Type == "dob_mismatch" {
			count++
			if issue.Document != "" {
				t.Errorf("Expected claim-wide DOB issue, got document %s", issue.Document)
			}
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one dob_mismatch, got %d", count)
	}
}

func TestPersonal_DOBAcceptsNonPaddedClaim(t *testing.T) {
	// A claimed "5/3/1999" parses like its padded form, so the search
	// still runs: found in one case, a claim-wide warning in the other.
	found := docSet(model.ExtractedDocument{
		Type: model.DocStudentID,
		Text: "alice wong, date of birth 05/03/1999",
	})
	result := Personal(found, model.PersonalInfo{Name: "Alice Wong", DOB: "5/3/1999"})
	for _, issue := range result.Issues {
		if issue.Type == "dob_mismatch" {
			t.Error("Expected non-padded claim to match the padded rendering")
		}
	}

	absent := docSet(model.ExtractedDocument{Type: model.DocStudentID, Text: "alice wong"})
	result = Personal(absent, model.PersonalInfo{Name: "Alice Wong", DOB: "5/3/1999"})
	count := 0
	for _, issue := range result.Issues {
		if issue.Type == "dob_mismatch" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one dob_mismatch for absent DOB, got %d", count)
	}
}

func TestPersonal_UnparsableDOBSkipped(t *testing.T) {
	docs := docSet(model.ExtractedDocument{Type: model.DocStudentID, Text: "alice wong"})

	result := Personal(docs, model.PersonalInfo{Name: "Alice Wong", DOB: "sometime in march"})

	for _, issue := range result.Issues {
		if issue.Type == "dob_mismatch" {
			t.Error("Expected unparsable DOB to be silently skipped")
		}
	}
}

func TestPersonal_CitizenshipAndGender(t *testing.T) {
	docs := docSet(model.ExtractedDocument{
		Type: model.DocStudentRecord,
		Text: "Alice Wong, citizen of Ruritania, gender: female",
	})

	info := model.PersonalInfo{
		Name:        "Alice Wong",
		Citizenship: "Ruritania",
		Gender:      "female",
	}
	if result := Personal(docs, info); result.Status != model.StatusPassed {
		t.Errorf("Expected Passed, got %s with %v", result.Status, result.Issues)
	}

	info.Citizenship = "Freedonia"
	result := Personal(docs, info)
	if result.Status != model.StatusWarning {
		t.Errorf("Expected Warning for absent citizenship, got %s", result.Status)
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Type == "citizenship_mismatch" {
			found = true
		}
	}
	if !found {
		t.Error("Expected citizenship_mismatch issue")
	}
}

func TestPersonal_AddressSegmentMajority(t *testing.T) {
	docs := docSet(model.ExtractedDocument{
		Type: model.DocUnionLetter,
		Text: "alice wong\n42 elm street\nspringfield",
	})

	info := model.PersonalInfo{
		Name:    "Alice Wong",
		Address: "42 Elm Street, Springfield, Ruritania",
	}
	if result := Personal(docs, info); result.Status != model.StatusPassed {
		t.Errorf("Expected Passed for address majority, got %s with %v", result.Status, result.Issues)
	}

	info.Address = "9 Oak Avenue, Shelbyville, Freedonia"
	result := Personal(docs, info)
	found := false
	for _, issue := range result.Issues {
		if issue.Type == "address_mismatch" {
			found = true
		}
	}
	if !found {
		t.Error("Expected address_mismatch issue")
	}
}

func TestPersonal_EmptyDocumentSet(t *testing.T) {
	result := Personal(model.DocumentSet{}, model.PersonalInfo{Name: "Alice Wong"})

	if result.Status != model.StatusPassed {
		t.Errorf("Expected Passed with no documents to contradict, got %s", result.Status)
	}
}
