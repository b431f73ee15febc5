package extract

import (
	"regexp"
	"strings"

	"github.com/credvet/credvet/internal/model"
)

var (
	idNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`ID\s*:\s*([A-Za-z0-9-]+)`),
		regexp.MustCompile(`Student\s*ID\s*:\s*([A-Za-z0-9-]+)`),
		regexp.MustCompile(`Identification\s*Number\s*:\s*([A-Za-z0-9-]+)`),
	}

	coursePattern = regexp.MustCompile(`([A-Z]{2,4}\s*\d{3,4})`)
	gradePattern  = regexp.MustCompile(`([ABCDF][+-]?|Pass|Fail|Incomplete)`)

	gpaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`GPA\s*:\s*(\d\.\d+)`),
		regexp.MustCompile(`Grade Point Average\s*:\s*(\d\.\d+)`),
	}

	gradYearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Graduation Year\s*:\s*(\d{4})`),
		regexp.MustCompile(`Year of Graduation\s*:\s*(\d{4})`),
		regexp.MustCompile(`Class of\s*(\d{4})`),
	}

	gradSeasonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Graduation Season\s*:\s*(Spring|Summer|Autumn|Winter)`),
		regexp.MustCompile(`(?i)(Spring|Summer|Autumn|Winter)\s+Graduation`),
		regexp.MustCompile(`(?i)Graduating in\s+(Spring|Summer|Autumn|Winter)`),
	}

	statusPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Status\s*:\s*(\w+)`),
		regexp.MustCompile(`Student Status\s*:\s*(\w+)`),
		regexp.MustCompile(`Academic Standing\s*:\s*(\w+)`),
	}

	letterDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Date\s*:\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	}

	signoffWords = []string{"sincerely", "regards", "signature", "signed"}
)

// ExtractMetadata builds the typed metadata record for a document,
// dispatching on its declared type. Only the variant matching the type
// is populated.
func ExtractMetadata(text string, docType model.DocType) model.Metadata {
	meta := model.Metadata{
		FormatMarkers: DetectMarkers(text),
	}

	switch docType {
	case model.DocStudentID:
		meta.StudentID = &model.StudentIDMeta{
			IDNumber: firstGroup(idNumberPatterns, text),
		}
	case model.DocTranscript:
		meta.Transcript = &model.TranscriptMeta{
			Courses: coursePattern.FindAllString(text, -1),
			Grades:  gradePattern.FindAllString(text, -1),
			GPA:     firstGroup(gpaPatterns, text),
		}
	case model.DocStudentRecord:
		meta.StudentRecord = &model.StudentRecordMeta{
			GraduationYear:   firstGroup(gradYearPatterns, text),
			GraduationSeason: firstGroup(gradSeasonPatterns, text),
			Status:           firstGroup(statusPatterns, text),
		}
	case model.DocUnionLetter:
		meta.UnionLetter = &model.UnionLetterMeta{
			LetterDate:   firstGroup(letterDatePatterns, text),
			HasSignature: containsAny(strings.ToLower(text), signoffWords),
		}
	}

	return meta
}

// firstGroup returns the first capture group of the first pattern that
// matches, or an empty string when none do.
func firstGroup(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}
