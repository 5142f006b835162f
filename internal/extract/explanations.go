package extract

import (
	"strings"

	"cpc-extractor/internal/constants"
	"cpc-extractor/internal/utils"
)

// extractExplanations splits the explanations-section text by question number
// and captures the free text after the "Explanation:" marker in each block.
// A block without the marker simply records no explanation for that question.
func extractExplanations(text string) map[int]string {
	explanations := make(map[int]string)

	for _, block := range splitNumberedBlocks(text) {
		markerStart := strings.Index(block.body, constants.ExplanationMarker)
		if markerStart == -1 {
			continue
		}

		raw := block.body[markerStart+len(constants.ExplanationMarker):]
		cleaned := normalizeExplanation(raw)
		if cleaned == "" {
			continue
		}
		explanations[block.number] = cleaned
	}

	return explanations
}

// normalizeExplanation collapses the PDF line breaks out of an explanation and
// regularizes the spacing after sentence-ending periods.
func normalizeExplanation(raw string) string {
	return utils.NormalizeSentenceSpacing(utils.CleanText(raw))
}
