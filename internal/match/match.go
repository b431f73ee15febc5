// Package match locates claimed field values inside extracted document
// text. Three escalating strategies are provided: exact substring,
// token-majority, and a normalized similarity ratio for short strings.
package match

import (
	"regexp"
	"strings"
)

// minTokenLen filters stopword-like fragments ("de", "la") out of the
// token count; shorter tokens never count as matches.
const minTokenLen = 2

// minSegmentLen is the equivalent cutoff for address segments
const minSegmentLen = 3

var segmentSplit = regexp.MustCompile(`[,\n]`)

// Contains reports whether the claimed value appears verbatim in the
// document text, case-insensitively.
func Contains(text, value string) bool {
	if value == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(value))
}

// TokenMajority splits the claimed value on whitespace and reports a
// match if at least half the tokens appear as substrings of the text.
// Tokens of length <= 2 are never counted as matches but stay in the
// denominator; ties count as a match (1 of 2 tokens is enough).
func TokenMajority(text, value string) bool {
	text = strings.ToLower(text)
	tokens := strings.Fields(strings.ToLower(value))

	matches := 0
	for _, token := range tokens {
		if len(token) > minTokenLen && strings.Contains(text, token) {
			matches++
		}
	}
	return 2*matches >= len(tokens)
}

// SegmentMajority is the address variant of TokenMajority: the claimed
// value is split on commas and newlines, segments of length <= 3 are
// skipped, and at least half of all segments must appear in the text.
func SegmentMajority(text, value string) bool {
	text = strings.ToLower(text)
	segments := segmentSplit.Split(strings.ToLower(value), -1)

	matches := 0
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if len(segment) > minSegmentLen && strings.Contains(text, segment) {
			matches++
		}
	}
	return 2*matches >= len(segments)
}

// Similarity returns the Ratcliff/Obershelp ratio between two strings:
// twice the total length of matching blocks over the combined length,
// in [0, 1]. Identical strings score 1; two empty strings score 1.
func Similarity(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 1
	}
	matched := matchingTotal(a, b)
	return 2 * float64(matched) / float64(len(a)+len(b))
}

// matchingTotal sums the lengths of matching blocks by recursively
// splitting around the longest common substring.
func matchingTotal(a, b string) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingTotal(a[:ai], b[:bi]) +
		matchingTotal(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring of a and b, returning
// its start offsets and length. Earliest occurrence in a wins ties.
func longestMatch(a, b string) (int, int, int) {
	var bestA, bestB, bestSize int

	// lengths[j] holds the common-suffix length ending at a[i-1], b[j-1]
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > bestSize {
					bestSize = lengths[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return bestA, bestB, bestSize
}
