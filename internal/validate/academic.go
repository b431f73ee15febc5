package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/credvet/credvet/internal/match"
	"github.com/credvet/credvet/internal/model"
)

// degreeVariants maps a degree level to abbreviations accepted as
// textual evidence of that level.
var degreeVariants = map[string][]string{
	"bachelor":  {"bachelor", "bachelor's", "bachelors", "b.a.", "b.s.", "b.sc", "bs", "ba"},
	"master":    {"master", "master's", "masters", "m.a.", "m.s.", "m.sc", "ms", "ma"},
	"doctorate": {"doctorate", "doctoral", "ph.d.", "phd", "doctor of philosophy"},
	"associate": {"associate", "a.a.", "a.s.", "associate's"},
}

// gradeTokens matches single-letter grades (with optional +/-) and
// pass/fail markers in transcript text.
var gradeTokens = regexp.MustCompile(`(?i)(([A-D][+-]?|F)|pass|fail)`)

// Academic checks the claimed academic facts against document text and
// structured metadata. University absence is the one critical check:
// institutional identity is load-bearing for the whole claim.
func Academic(docs model.DocumentSet, info model.AcademicInfo) model.CategoryResult {
	var issues []model.Issue

	issues = append(issues, checkMajor(docs, info.Major)...)
	issues = append(issues, checkUniversity(docs, info.University)...)
	issues = append(issues, checkDegreeLevel(docs, string(info.DegreeLevel))...)
	issues = append(issues, checkGrade(docs, info.Grade)...)
	issues = append(issues, checkGraduation(docs, info)...)

	return model.NewCategoryResult(issues)
}

func checkMajor(docs model.DocumentSet, major string) []model.Issue {
	if major == "" {
		return nil
	}
	for _, doc := range docs.Ordered() {
		if match.Contains(doc.Text, major) {
			return nil
		}
	}
	return []model.Issue{{
		Type:        "major_mismatch",
		Description: fmt.Sprintf("Major %q not found in documents", strings.ToLower(major)),
		Severity:    model.SeverityWarning,
	}}
}

// checkUniversity accepts either the full institution name or a
// majority of its name tokens (so "MIT" paperwork can still corroborate
// "Massachusetts Institute of Technology").
func checkUniversity(docs model.DocumentSet, university string) []model.Issue {
	if university == "" {
		return nil
	}
	for _, doc := range docs.Ordered() {
		if match.Contains(doc.Text, university) || match.TokenMajority(doc.Text, university) {
			return nil
		}
	}
	return []model.Issue{{
		Type:        "university_mismatch",
		Description: fmt.Sprintf("University %q not found in documents", strings.ToLower(university)),
		Severity:    model.SeverityCritical,
	}}
}

// checkDegreeLevel matches any synonym of the applicable degree level(s)
// against any document. The claimed level is substring-matched against
// the variant keys, so "bachelor's degree" selects the bachelor set.
// Levels without a synonym set (certificate, diploma, other) have no
// acceptable evidence and always warn.
func checkDegreeLevel(docs model.DocumentSet, level string) []model.Issue {
	level = strings.ToLower(level)
	if level == "" {
		return nil
	}

	var applicable []string
	for _, key := range []string{"bachelor", "master", "doctorate", "associate"} {
		if strings.Contains(level, key) {
			applicable = append(applicable, degreeVariants[key]...)
		}
	}

	for _, doc := range docs.Ordered() {
		text := strings.ToLower(doc.Text)
		for _, variant := range applicable {
			if strings.Contains(text, variant) {
				return nil
			}
		}
	}
	return []model.Issue{{
		Type:        "degree_level_mismatch",
		Description: fmt.Sprintf("Degree level %q not found in documents", level),
		Severity:    model.SeverityWarning,
	}}
}

// checkGrade only verifies that a transcript contains grade-like tokens
// at all; it does not compare the claimed grade's value.
func checkGrade(docs model.DocumentSet, grade string) []model.Issue {
	if grade == "" {
		return nil
	}
	transcript, ok := docs[model.DocTranscript]
	if !ok {
		return nil
	}

	if !gradeTokens.MatchString(transcript.Text) {
		return []model.Issue{{
			Type:        "grade_not_found",
			Description: "No grades found in transcript",
			Severity:    model.SeverityWarning,
		}}
	}
	return nil
}

// checkGraduation compares claimed graduation year and season against
// the student record's structured metadata, not its raw text.
func checkGraduation(docs model.DocumentSet, info model.AcademicInfo) []model.Issue {
	record, ok := docs[model.DocStudentRecord]
	if !ok {
		return nil
	}

	var meta model.StudentRecordMeta
	if record.Meta.StudentRecord != nil {
		meta = *record.Meta.StudentRecord
	}

	var issues []model.Issue

	if info.GraduationYear != "" {
		switch {
		case meta.GraduationYear == "":
			issues = append(issues, model.Issue{
				Type:        "graduation_year_not_found",
				Description: "Graduation year not found in student record",
				Severity:    model.SeverityWarning,
			})
		case meta.GraduationYear != info.GraduationYear:
			issues = append(issues, model.Issue{
				Type: "graduation_year_mismatch",
				Description: fmt.Sprintf("Graduation year in claim (%s) does not match record (%s)",
					info.GraduationYear, meta.GraduationYear),
				Severity: model.SeverityWarning,
			})
		}
	}

	if info.GraduationSeason != "" {
		claimed := strings.ToLower(string(info.GraduationSeason))
		recorded := strings.ToLower(meta.GraduationSeason)
		switch {
		case recorded == "":
			issues = append(issues, model.Issue{
				Type:        "graduation_season_not_found",
				Description: "Graduation season not found in student record",
				Severity:    model.SeverityWarning,
			})
		case recorded != claimed:
			issues = append(issues, model.Issue{
				Type: "graduation_season_mismatch",
				Description: fmt.Sprintf("Graduation season in claim (%s) does not match record (%s)",
					claimed, meta.GraduationSeason),
				Severity: model.SeverityWarning,
			})
		}
	}

	return issues
}
