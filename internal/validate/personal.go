package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/credvet/credvet/internal/match"
	"github.com/credvet/credvet/internal/model"
)

// dobInputFormats are the accepted renderings of a claimed date of
// birth. The non-padded day/month layout also accepts padded values.
var dobInputFormats = []string{"2006-01-02", "2/1/2006"}

// dobSearchFormats are the textual renderings searched for inside
// document text when the claimed date of birth parses.
var dobSearchFormats = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"2006/01/02",
	"02 January 2006",
	"January 02, 2006",
}

// Personal checks the claimed identity fields against every document's
// text. All issues raised here are warnings: a personal fact that is
// merely absent from paperwork is suspicious, not damning.
func Personal(docs model.DocumentSet, info model.PersonalInfo) model.CategoryResult {
	var issues []model.Issue

	issues = append(issues, checkName(docs, info.Name)...)
	issues = append(issues, checkDOB(docs, info.DOB)...)

	if info.Citizenship != "" {
		issues = append(issues, checkAnywhere(docs, "citizenship", info.Citizenship)...)
	}
	if info.Address != "" {
		issues = append(issues, checkAddress(docs, info.Address)...)
	}
	if info.Gender != "" {
		issues = append(issues, checkAnywhere(docs, "gender", info.Gender)...)
	}

	return model.NewCategoryResult(issues)
}

// checkName token-matches the claimed name against each document
// independently: one document can fail while the others pass.
func checkName(docs model.DocumentSet, name string) []model.Issue {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	var issues []model.Issue
	for _, doc := range docs.Ordered() {
		if !match.TokenMajority(doc.Text, name) {
			issues = append(issues, model.Issue{
				Type:        "name_mismatch",
				Document:    doc.Type,
				Description: fmt.Sprintf("Name %q not clearly found in %s", strings.ToLower(name), doc.Type),
				Severity:    model.SeverityWarning,
			})
		}
	}
	return issues
}

// checkDOB searches every document for any rendering of the claimed
// date of birth. An unparsable claimed date is silently skipped.
func checkDOB(docs model.DocumentSet, dob string) []model.Issue {
	if dob == "" {
		return nil
	}

	var parsed time.Time
	var ok bool
	for _, format := range dobInputFormats {
		if t, err := time.Parse(format, dob); err == nil {
			parsed, ok = t, true
			break
		}
	}
	if !ok {
		return nil
	}

	for _, doc := range docs.Ordered() {
		for _, format := range dobSearchFormats {
			if strings.Contains(doc.Text, parsed.Format(format)) {
				return nil
			}
		}
	}

	return []model.Issue{{
		Type:        "dob_mismatch",
		Description: "Date of birth not found in any document",
		Severity:    model.SeverityWarning,
	}}
}

// checkAnywhere requires an exact substring match in at least one document
func checkAnywhere(docs model.DocumentSet, field, value string) []model.Issue {
	for _, doc := range docs.Ordered() {
		if match.Contains(doc.Text, value) {
			return nil
		}
	}
	return []model.Issue{{
		Type:        field + "_mismatch",
		Description: fmt.Sprintf("%s information not found in documents", capitalize(field)),
		Severity:    model.SeverityWarning,
	}}
}

// checkAddress matches comma/newline-separated address segments; a
// majority of segments in any single document counts as found.
func checkAddress(docs model.DocumentSet, address string) []model.Issue {
	for _, doc := range docs.Ordered() {
		if match.SegmentMajority(doc.Text, address) {
			return nil
		}
	}
	return []model.Issue{{
		Type:        "address_mismatch",
		Description: "Address information not found in documents",
		Severity:    model.SeverityWarning,
	}}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
