package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/credvet/credvet/internal/match"
	"github.com/credvet/credvet/internal/model"
)

// nameSimilarityThreshold is the minimum similarity ratio for two
// documents' names to be considered the same person.
const nameSimilarityThreshold = 0.7

// nowFunc is the clock used for the future-date check (injectable for tests)
var nowFunc = time.Now

// namePatterns are fallbacks when a document has no PERSON entities:
// a labeled name line, then any two-word letter sequence.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)name\s*:\s*([A-Za-z\s]+)`),
	regexp.MustCompile(`([A-Za-z]+\s+[A-Za-z]+)`),
}

// datePatterns are tried in order per document; the first pattern that
// yields any match determines all dates recorded for that document.
// Patterns are deliberately not merged, matching the inherited
// first-match-wins behavior.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(\d{4}[/-]\d{1,2}[/-]\d{1,2})`),
	regexp.MustCompile(`(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})`),
}

// dateLayouts are the interpretations tried when parsing an extracted
// date string. Strings matching none of them are silently ignored.
var dateLayouts = []string{
	"2/1/2006",
	"1/2/2006",
	"2006/1/2",
	"2-1-2006",
	"1-2-2006",
	"2006-1-2",
}

// CrossDocument compares documents against each other, independent of
// the claim: name agreement and date plausibility. With fewer than two
// documents there is no comparison basis and the category auto-passes.
func CrossDocument(docs model.DocumentSet) model.CategoryResult {
	if len(docs) < 2 {
		return model.NewCategoryResult(nil)
	}

	var issues []model.Issue
	issues = append(issues, compareNames(docs)...)
	issues = append(issues, checkDates(docs)...)

	return model.NewCategoryResult(issues)
}

type docName struct {
	doc  model.DocType
	name string
}

// compareNames extracts one candidate name per document and compares
// every subsequent name against the first one extracted — a fixed
// reference point, not all-pairs.
func compareNames(docs model.DocumentSet) []model.Issue {
	var names []docName
	for _, doc := range docs.Ordered() {
		if name := extractName(doc); name != "" {
			names = append(names, docName{doc: doc.Type, name: name})
		}
	}
	if len(names) < 2 {
		return nil
	}

	reference := names[0]
	var issues []model.Issue
	for _, candidate := range names[1:] {
		similarity := match.Similarity(
			strings.ToLower(reference.name),
			strings.ToLower(candidate.name),
		)
		if similarity < nameSimilarityThreshold {
			issues = append(issues, model.Issue{
				Type:      "name_inconsistency",
				Documents: []model.DocType{reference.doc, candidate.doc},
				Description: fmt.Sprintf("Name inconsistency between documents: %q vs %q",
					reference.name, candidate.name),
				Severity: model.SeverityCritical,
			})
		}
	}
	return issues
}

// extractName picks a candidate name for a document: the first PERSON
// entity if present, else the first matching fallback pattern.
func extractName(doc model.ExtractedDocument) string {
	if persons := doc.Entities[model.EntityPerson]; len(persons) > 0 {
		return persons[0]
	}
	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(doc.Text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// checkDates extracts date strings per document and flags any date
// strictly after the current moment. Dates only matter once at least
// two documents yield them — a lone document has nothing to disagree with.
func checkDates(docs model.DocumentSet) []model.Issue {
	type docDates struct {
		doc   model.DocType
		dates []string
	}

	var extracted []docDates
	for _, doc := range docs.Ordered() {
		for _, pattern := range datePatterns {
			if matches := pattern.FindAllString(doc.Text, -1); len(matches) > 0 {
				extracted = append(extracted, docDates{doc: doc.Type, dates: matches})
				break
			}
		}
	}
	if len(extracted) < 2 {
		return nil
	}

	now := nowFunc()
	var issues []model.Issue
	for _, entry := range extracted {
		for _, dateStr := range entry.dates {
			parsed, ok := parseDate(dateStr)
			if !ok {
				continue
			}
			if parsed.After(now) {
				issues = append(issues, model.Issue{
					Type:        "future_date",
					Document:    entry.doc,
					Description: fmt.Sprintf("Document contains a future date: %s", dateStr),
					Severity:    model.SeverityCritical,
				})
			}
		}
	}
	return issues
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
