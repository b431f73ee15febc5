package extract

import (
	"strings"

	"github.com/credvet/credvet/internal/model"
)

// Marker keyword lists for academic paperwork. Presence of any keyword
// sets the corresponding boolean; these are heuristic structural
// signals, not proof of anything.
var (
	headerWords     = []string{"university", "college", "school", "institute"}
	footerWords     = []string{"page", "confidential", "official", "copyright"}
	dateWords       = []string{"date:", "dated:", "issued on:"}
	signatureWords  = []string{"signature", "signed", "authorized"}
	letterheadWords = []string{"department", "faculty", "office of", "division"}
)

// DetectMarkers scans document text for the five format markers
func DetectMarkers(text string) model.FormatMarkers {
	lower := strings.ToLower(text)

	return model.FormatMarkers{
		HasHeader:     containsAny(lower, headerWords),
		HasFooter:     containsAny(lower, footerWords),
		HasDate:       containsAny(lower, dateWords),
		HasSignature:  containsAny(lower, signatureWords),
		HasLetterhead: containsAny(lower, letterheadWords),
	}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
