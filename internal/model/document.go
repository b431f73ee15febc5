package model

// DocType identifies the kind of supporting document that was uploaded
type DocType string

const (
	DocStudentID        DocType = "student_id"
	DocStudentRecord    DocType = "student_record"
	DocTranscript       DocType = "transcript"
	DocDiploma          DocType = "diploma"
	DocGraduationLetter DocType = "graduation_letter"
	DocUnionLetter      DocType = "union_letter"
)

// docTypeOrder fixes the iteration order over a document set so issue
// sequences are deterministic regardless of map insertion order.
var docTypeOrder = []DocType{
	DocStudentID,
	DocStudentRecord,
	DocTranscript,
	DocDiploma,
	DocGraduationLetter,
	DocUnionLetter,
}

// EntityPerson is the entity category holding detected person names
const EntityPerson = "PERSON"

// FormatMarkers are boolean structural signals used as a proxy for
// document authenticity. They are heuristic, never a guarantee.
type FormatMarkers struct {
	HasHeader     bool `json:"has_header"`
	HasFooter     bool `json:"has_footer"`
	HasDate       bool `json:"has_date"`
	HasSignature  bool `json:"has_signature"`
	HasLetterhead bool `json:"has_letterhead"`
}

// StudentIDMeta is metadata extracted from a student ID letter
type StudentIDMeta struct {
	IDNumber string `json:"id_number,omitempty"`
}

// TranscriptMeta is metadata extracted from an academic transcript
type TranscriptMeta struct {
	Courses []string `json:"courses,omitempty"`
	Grades  []string `json:"grades,omitempty"`
	GPA     string   `json:"gpa,omitempty"`
}

// StudentRecordMeta is metadata extracted from a student record letter
type StudentRecordMeta struct {
	GraduationYear   string `json:"graduation_year,omitempty"`
	GraduationSeason string `json:"graduation_season,omitempty"`
	Status           string `json:"status,omitempty"`
}

// UnionLetterMeta is metadata extracted from a student union letter
type UnionLetterMeta struct {
	LetterDate   string `json:"letter_date,omitempty"`
	HasSignature bool   `json:"has_signature"`
}

// Metadata is the per-document-type metadata record. Exactly one of the
// typed variants is set, matching the document's declared type; absent
// variants mean the extractor found nothing for that document.
type Metadata struct {
	FormatMarkers FormatMarkers      `json:"format_markers"`
	StudentID     *StudentIDMeta     `json:"student_id,omitempty"`
	Transcript    *TranscriptMeta    `json:"transcript,omitempty"`
	StudentRecord *StudentRecordMeta `json:"student_record,omitempty"`
	UnionLetter   *UnionLetterMeta   `json:"union_letter,omitempty"`
}

// ExtractedDocument is one uploaded file, reduced by the extraction
// collaborator to plain text, named entities, and typed metadata.
// Any of the fields may be empty; validators skip what is missing.
type ExtractedDocument struct {
	Type     DocType             `json:"type"`
	Text     string              `json:"text,omitempty"`
	Entities map[string][]string `json:"entities,omitempty"`
	Meta     Metadata            `json:"metadata"`
}

// DocumentSet maps document types to their extracted documents.
// At most one document per type participates in a validation run.
type DocumentSet map[DocType]ExtractedDocument

// Ordered returns the present documents in canonical type order
func (s DocumentSet) Ordered() []ExtractedDocument {
	docs := make([]ExtractedDocument, 0, len(s))
	for _, t := range docTypeOrder {
		if d, ok := s[t]; ok {
			docs = append(docs, d)
		}
	}
	return docs
}

// ParseDocType validates a document type string
func ParseDocType(s string) (DocType, bool) {
	t := DocType(s)
	for _, known := range docTypeOrder {
		if t == known {
			return t, true
		}
	}
	return "", false
}
