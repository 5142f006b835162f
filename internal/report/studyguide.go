package report

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"cpc-extractor/internal/models"

	"github.com/mandolyte/mdtopdf"
	"github.com/yuin/goldmark"
)

// BuildStudyGuideMarkdown renders the dataset as a Markdown document: every
// question with its choices, the keyed answer, and the explanation when one
// was recovered.
func BuildStudyGuideMarkdown(dataset *models.Dataset, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", title)
	stats := dataset.GetStatistics()
	fmt.Fprintf(&b, "\n%d questions, %d with explanations.\n", stats.TotalQuestions, stats.QuestionsWithExplanations)

	for _, q := range dataset.Questions {
		fmt.Fprintf(&b, "\n## Question %d\n\n", q.ID)
		fmt.Fprintf(&b, "%s\n\n", q.Stem)

		for _, letter := range models.OptionLetters {
			if letter == q.CorrectAnswerLetter {
				fmt.Fprintf(&b, "- **%s. %s**\n", letter, q.Options[letter])
			} else {
				fmt.Fprintf(&b, "- %s. %s\n", letter, q.Options[letter])
			}
		}

		fmt.Fprintf(&b, "\nCorrect answer: **%s. %s**\n", q.CorrectAnswerLetter, q.CorrectAnswerText)
		if q.Explanation != "" {
			fmt.Fprintf(&b, "\n> %s\n", q.Explanation)
		}
	}

	return b.String()
}

// WriteStudyGuideMarkdown writes the study guide as a Markdown file.
func WriteStudyGuideMarkdown(dataset *models.Dataset, path, title string) error {
	content := BuildStudyGuideMarkdown(dataset, title)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing study guide: %w", err)
	}
	return nil
}

// WriteStudyGuideHTML converts the Markdown study guide to a standalone HTML
// document.
func WriteStudyGuideHTML(dataset *models.Dataset, path, title string) error {
	markdown := BuildStudyGuideMarkdown(dataset, title)

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &body); err != nil {
		return fmt.Errorf("converting study guide to HTML: %w", err)
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	doc.WriteString("  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&doc, "  <title>%s</title>\n", title)
	doc.WriteString("</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(path, []byte(doc.String()), 0o644); err != nil {
		return fmt.Errorf("writing study guide: %w", err)
	}
	return nil
}

// WriteStudyGuidePDF converts the Markdown study guide to a printable PDF.
func WriteStudyGuidePDF(dataset *models.Dataset, path, title string) error {
	markdown := BuildStudyGuideMarkdown(dataset, title)

	renderer := mdtopdf.NewPdfRenderer("", "", path, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(markdown)); err != nil {
		return fmt.Errorf("rendering study guide PDF: %w", err)
	}
	return nil
}
