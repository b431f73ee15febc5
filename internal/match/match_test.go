package match

import "testing"

func TestContains_CaseInsensitive(t *testing.T) {
	text := "Massachusetts Institute of Technology\nOffice of the Registrar"

	if !Contains(text, "massachusetts institute of technology") {
		t.Error("Expected lowercased claim to match mixed-case text")
	}

	if !Contains(text, "Registrar") {
		t.Error("Expected substring to match regardless of case")
	}

	if Contains(text, "Stanford") {
		t.Error("Expected absent value not to match")
	}

	if Contains(text, "") {
		t.Error("Expected empty value not to match")
	}
}

func TestTokenMajority_HalfTokensSuffice(t *testing.T) {
	text := "this letter certifies that maria is enrolled"

	// 1 of 2 usable tokens found; ties count as a match
	if !TokenMajority(text, "Maria Garcia") {
		t.Error("Expected half of the tokens to be enough")
	}

	if TokenMajority(text, "John Smith") {
		t.Error("Expected no match when no token is present")
	}
}

func TestTokenMajority_ShortTokensDontCount(t *testing.T) {
	// "de" and "la" appear in the text but are too short to count;
	// only 1 of 4 tokens can match, which is below half.
	text := "de la something else entirely"

	if TokenMajority(text, "Juan de la Cruz") {
		t.Error("Expected short tokens not to count toward the majority")
	}

	// 2 of 4 tokens (juan, cruz) match: exactly half, which passes
	if !TokenMajority("juan cruz", "Juan de la Cruz") {
		t.Error("Expected long-token matches to reach the majority")
	}
}

func TestSegmentMajority_Address(t *testing.T) {
	text := "resident at 42 elm street, springfield since 2020"

	// 2 of 3 segments present
	if !SegmentMajority(text, "42 Elm Street, Springfield, Ruritania") {
		t.Error("Expected majority of address segments to match")
	}

	if SegmentMajority(text, "9 Oak Avenue, Shelbyville, Freedonia") {
		t.Error("Expected unrelated address not to match")
	}
}

func TestSimilarity_SimilarNames(t *testing.T) {
	ratio := Similarity("john smith", "jon smyth")
	if ratio < 0.7 {
		t.Errorf("Expected similar names to score >= 0.7, got %.3f", ratio)
	}
}

func TestSimilarity_DifferentNames(t *testing.T) {
	ratio := Similarity("john smith", "maria garcia")
	if ratio >= 0.7 {
		t.Errorf("Expected different names to score < 0.7, got %.3f", ratio)
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	if r := Similarity("alice", "alice"); r != 1 {
		t.Errorf("Expected identical strings to score 1, got %.3f", r)
	}

	if r := Similarity("", ""); r != 1 {
		t.Errorf("Expected two empty strings to score 1, got %.3f", r)
	}

	if r := Similarity("abc", "xyz"); r != 0 {
		t.Errorf("Expected disjoint strings to score 0, got %.3f", r)
	}
}
