package extract

import (
	"strings"

	"cpc-extractor/internal/config"
)

// Section collection: each function performs one linear pass over its slice of
// pages and returns the accumulated section text. The onPage callback fires
// once per visited page so the caller can drive a progress bar.

// collectQuestionText gathers the question pages: everything after the front
// matter up to, but excluding, the first page that carries the answer-key
// sentinel.
func collectQuestionText(src PageSource, layout config.Layout, onPage func()) (string, error) {
	var b strings.Builder

	for n := layout.FrontMatterPages; n < src.PageCount(); n++ {
		text, err := src.PageText(n)
		if err != nil {
			return "", err
		}
		if onPage != nil {
			onPage()
		}

		if text == "" {
			continue
		}
		if strings.Contains(text, layout.AnswerKeySentinel) {
			break
		}

		b.WriteString(stripPageHeader(text, layout.PageHeader))
		b.WriteString("\n")
	}

	return b.String(), nil
}

// collectAnswerKeyText gathers the answer-key pages: the contiguous run that
// starts at the answer-key sentinel and ends when a page mentions the
// explanations sentinel without carrying any checkbox entries. Only pages that
// contain the checkbox marker contribute text.
func collectAnswerKeyText(src PageSource, layout config.Layout, onPage func()) (string, error) {
	var b strings.Builder
	started := false

	for n := 0; n < src.PageCount(); n++ {
		text, err := src.PageText(n)
		if err != nil {
			return "", err
		}
		if onPage != nil {
			onPage()
		}

		if text == "" {
			continue
		}
		if strings.Contains(text, layout.AnswerKeySentinel) {
			started = true
		}

		hasCheckbox := strings.Contains(text, layout.CheckboxMarker)
		switch {
		case started && hasCheckbox:
			b.WriteString(stripPageHeader(text, layout.PageHeader))
			b.WriteString("\n")
		case started && strings.Contains(text, layout.ExplanationsSentinel):
			return b.String(), nil
		}
	}

	return b.String(), nil
}

// collectExplanationText gathers the explanation pages: from the first page at
// or after ExplanationSearchStart that carries the explanations sentinel
// without the answer-key sentinel, to the end of the document. The second
// return value reports whether the section was found at all.
func collectExplanationText(src PageSource, layout config.Layout, onPage func()) (string, bool, error) {
	start := -1
	for n := layout.ExplanationSearchStart; n < src.PageCount(); n++ {
		text, err := src.PageText(n)
		if err != nil {
			return "", false, err
		}
		if onPage != nil {
			onPage()
		}

		if text != "" && strings.Contains(text, layout.ExplanationsSentinel) &&
			!strings.Contains(text, layout.AnswerKeySentinel) {
			start = n
			break
		}
	}

	if start == -1 {
		return "", false, nil
	}
	debugf("explanations section starts at page %d", start+1)

	var b strings.Builder
	for n := start; n < src.PageCount(); n++ {
		text, err := src.PageText(n)
		if err != nil {
			return "", true, err
		}
		if n > start && onPage != nil {
			onPage()
		}

		if text == "" {
			continue
		}
		b.WriteString(stripPageHeader(text, layout.PageHeader))
		b.WriteString("\n")
	}

	return b.String(), true, nil
}

// stripPageHeader removes the repeating page-header line wherever it appears
// in a page's text.
func stripPageHeader(text, header string) string {
	if header == "" {
		return strings.TrimSpace(text)
	}
	text = strings.ReplaceAll(text, header+"\n", "")
	return strings.TrimSpace(text)
}
