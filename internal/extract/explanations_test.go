package extract

import "testing"

func TestExtractExplanationsCapturesMarkerText(t *testing.T) {
	text := "1. B. 41105\nExplanation:\nCPT code 41105 specifically covers excision of lesions\n" +
		"on the floor of the mouth.It is the correct choice.\n" +
		"2. A. I10\nExplanation: Essential hypertension is reported with I10.\n"

	explanations := extractExplanations(text)
	if len(explanations) != 2 {
		t.Fatalf("expected 2 explanations, got %d", len(explanations))
	}

	want := "CPT code 41105 specifically covers excision of lesions on the floor of the mouth. It is the correct choice."
	if explanations[1] != want {
		t.Fatalf("unexpected explanation 1\nwant: %q\ngot:  %q", want, explanations[1])
	}
	if explanations[2] != "Essential hypertension is reported with I10." {
		t.Fatalf("unexpected explanation 2: %q", explanations[2])
	}
}

func TestExtractExplanationsSkipsBlocksWithoutMarker(t *testing.T) {
	text := "3. D. K0004\nThe answer key entry repeats here without a rationale.\n" +
		"4. A. 99213\nExplanation: An established patient office visit.\n"

	explanations := extractExplanations(text)
	if _, ok := explanations[3]; ok {
		t.Fatal("expected no explanation recorded for question 3")
	}
	if explanations[4] != "An established patient office visit." {
		t.Fatalf("unexpected explanation 4: %q", explanations[4])
	}
}

func TestNormalizeExplanationCollapsesWhitespace(t *testing.T) {
	got := normalizeExplanation("  Modifier -25   indicates a significant,\nseparately identifiable service. ")
	want := "Modifier -25 indicates a significant, separately identifiable service."
	if got != want {
		t.Fatalf("unexpected normalization\nwant: %q\ngot:  %q", want, got)
	}
}
