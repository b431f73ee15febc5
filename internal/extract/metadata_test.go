package extract

import (
	"testing"

	"github.com/credvet/credvet/internal/model"
)

func TestDetectMarkers(t *testing.T) {
	text := `Ruritania State University
Office of the Registrar
Date: 12/03/2024
Authorized signature on file
Page 1 of 1 - Official`

	markers := DetectMarkers(text)

	if !markers.HasHeader {
		t.Error("Expected 'university' to set has_header")
	}
	if !markers.HasFooter {
		t.Error("Expected 'page'/'official' to set has_footer")
	}
	if !markers.HasDate {
		t.Error("Expected 'date:' to set has_date")
	}
	if !markers.HasSignature {
		t.Error("Expected 'signature' to set has_signature")
	}
	if !markers.HasLetterhead {
		t.Error("Expected 'office of' to set has_letterhead")
	}

	empty := DetectMarkers("nothing recognizable")
	if empty.HasHeader || empty.HasFooter || empty.HasDate || empty.HasSignature || empty.HasLetterhead {
		t.Errorf("Expected no markers in unrelated text, got %+v", empty)
	}
}

func TestExtractMetadata_StudentID(t *testing.T) {
	meta := ExtractMetadata("Student ID: RSU-44812\nValid through 2026", model.DocStudentID)

	if meta.StudentID == nil {
		t.Fatal("Expected student_id metadata variant")
	}
	if meta.StudentID.IDNumber != "RSU-44812" {
		t.Errorf("Expected RSU-44812, got %q", meta.StudentID.IDNumber)
	}
	if meta.Transcript != nil || meta.StudentRecord != nil || meta.UnionLetter != nil {
		t.Error("Expected only the student_id variant to be populated")
	}
}

func TestExtractMetadata_Transcript(t *testing.T) {
	text := `CS 101 A
MATH 2040 B+
PHYS 330 Pass
GPA: 3.71`

	meta := ExtractMetadata(text, model.DocTranscript)

	if meta.Transcript == nil {
		t.Fatal("Expected transcript metadata variant")
	}
	if len(meta.Transcript.Courses) != 3 {
		t.Errorf("Expected 3 course codes, got %v", meta.Transcript.Courses)
	}
	if len(meta.Transcript.Grades) == 0 {
		t.Errorf("Expected grades, got %v", meta.Transcript.Grades)
	}
	if meta.Transcript.GPA != "3.71" {
		t.Errorf("Expected GPA 3.71, got %q", meta.Transcript.GPA)
	}
}

func TestExtractMetadata_StudentRecord(t *testing.T) {
	text := `Student Record
Class of 2024
Spring Graduation
Status: Enrolled`

	meta := ExtractMetadata(text, model.DocStudentRecord)

	if meta.StudentRecord == nil {
		t.Fatal("Expected student_record metadata variant")
	}
	if meta.StudentRecord.GraduationYear != "2024" {
		t.Errorf("Expected 2024, got %q", meta.StudentRecord.GraduationYear)
	}
	if meta.StudentRecord.GraduationSeason != "Spring" {
		t.Errorf("Expected Spring, got %q", meta.StudentRecord.GraduationSeason)
	}
	if meta.StudentRecord.Status != "Enrolled" {
		t.Errorf("Expected Enrolled, got %q", meta.StudentRecord.Status)
	}
}

func TestExtractMetadata_UnionLetter(t *testing.T) {
	text := `Student Union Membership
Date: 12/03/2024
Sincerely,
The Union Board`

	meta := ExtractMetadata(text, model.DocUnionLetter)

	if meta.UnionLetter == nil {
		t.Fatal("Expected union_letter metadata variant")
	}
	if meta.UnionLetter.LetterDate != "12/03/2024" {
		t.Errorf("Expected 12/03/2024, got %q", meta.UnionLetter.LetterDate)
	}
	if !meta.UnionLetter.HasSignature {
		t.Error("Expected 'sincerely' to count as a signature")
	}
}

func TestExtractMetadata_MissingFieldsStayEmpty(t *testing.T) {
	meta := ExtractMetadata("no identifiers here", model.DocStudentID)

	if meta.StudentID == nil {
		t.Fatal("Expected student_id variant even without a hit")
	}
	if meta.StudentID.IDNumber != "" {
		t.Errorf("Expected empty ID number, got %q", meta.StudentID.IDNumber)
	}
}
