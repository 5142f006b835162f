// Package report renders a parsed question dataset into study artifacts: an
// interactive HTML exam simulator and a printable study guide.
package report

import (
	"fmt"
	htmlpkg "html"
	"os"
	"regexp"
	"strings"

	"cpc-extractor/internal/models"
	"cpc-extractor/internal/templates"
)

// ExamMeta labels the generated simulator page.
type ExamMeta struct {
	Company string
	Title   string
	Badge   string
}

// DefaultExamMeta matches the known CPC practice-test document.
func DefaultExamMeta() ExamMeta {
	return ExamMeta{
		Company: "Medical Coding Ace",
		Title:   "CPC Exam Simulator",
		Badge:   "CPC",
	}
}

var (
	titlePattern       = regexp.MustCompile(`(?is)<title>.*?</title>`)
	companyPattern     = regexp.MustCompile(`(?is)(<span class="company-name">).*?(</span>)`)
	headerTitlePattern = regexp.MustCompile(`(?is)(<span class="header-separator">\|</span>\s*)(.*?)(\s*</h1>)`)
	badgePattern       = regexp.MustCompile(`(?is)(<span class="badge">).*?(</span>)`)
	questionsListOpen  = regexp.MustCompile(`(?is)<div[^>]*class="[^"]*\bquestions-list\b[^"]*"[^>]*>`)
)

// WriteExamSimulator renders the dataset as a self-contained HTML page.
func WriteExamSimulator(dataset *models.Dataset, path string, meta ExamMeta) error {
	doc, err := BuildExamSimulator(dataset, meta)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing simulator file: %w", err)
	}
	return nil
}

// BuildExamSimulator assembles the simulator document: the embedded template
// with its meta spans replaced and one question card per record injected into
// the questions-list container.
func BuildExamSimulator(dataset *models.Dataset, meta ExamMeta) (string, error) {
	withMeta := applyTemplateMeta(templates.EmbeddedTemplate, meta)
	cards := buildQuestionCards(dataset)
	return injectQuestionCards(withMeta, cards)
}

func applyTemplateMeta(templateHTML string, meta ExamMeta) string {
	title := fmt.Sprintf("%s %s", meta.Company, meta.Title)
	escapedTitle := htmlpkg.EscapeString(strings.TrimSpace(title))
	escapedCompany := htmlpkg.EscapeString(meta.Company)
	escapedHeader := htmlpkg.EscapeString(meta.Title)
	escapedBadge := htmlpkg.EscapeString(meta.Badge)

	updated := titlePattern.ReplaceAllString(templateHTML, fmt.Sprintf("<title>%s</title>", escapedTitle))
	updated = companyPattern.ReplaceAllString(updated, fmt.Sprintf("${1}%s${2}", escapedCompany))
	updated = headerTitlePattern.ReplaceAllString(updated, fmt.Sprintf("${1}%s${3}", escapedHeader))
	updated = badgePattern.ReplaceAllString(updated, fmt.Sprintf("${1}%s${2}", escapedBadge))

	return updated
}

func buildQuestionCards(dataset *models.Dataset) string {
	var b strings.Builder

	for i, q := range dataset.Questions {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderQuestionCard(q, i == 0))
	}

	return strings.TrimSpace(b.String())
}

func renderQuestionCard(q models.Question, isOpen bool) string {
	var b strings.Builder

	qid := fmt.Sprintf("q%d", q.ID)
	cardClass := "q-card"
	if isOpen {
		cardClass += " open"
	}

	fmt.Fprintf(&b, "<!-- QUESTION %d -->\n", q.ID)
	fmt.Fprintf(&b, "<div class=\"%s\" id=\"%s\" data-correct=\"%s\">\n",
		cardClass, qid, htmlpkg.EscapeString(q.CorrectAnswerLetter))
	fmt.Fprintf(&b, "    <div class=\"q-top\" onclick=\"toggleCard('%s')\">\n", qid)
	fmt.Fprintf(&b, "        <span class=\"q-number\">Q%d</span>\n", q.ID)
	fmt.Fprintf(&b, "        <span class=\"q-preview\">%s</span>\n",
		htmlpkg.EscapeString(truncatePreview(q.Stem, 95)))
	b.WriteString("    </div>\n")
	b.WriteString("    <div class=\"q-body\">\n")
	fmt.Fprintf(&b, "        <div class=\"q-text\">%s</div>\n", htmlpkg.EscapeString(q.Stem))

	for _, letter := range models.OptionLetters {
		escapedLetter := htmlpkg.EscapeString(letter)
		escapedText := htmlpkg.EscapeString(q.Options[letter])
		fmt.Fprintf(&b, "        <div class=\"opt\" data-val=\"%s\" onclick=\"pick(this,'%s')\">\n", escapedLetter, qid)
		fmt.Fprintf(&b, "            <div class=\"opt-letter\">%s</div>\n", escapedLetter)
		fmt.Fprintf(&b, "            <div class=\"opt-text\">%s</div>\n", escapedText)
		b.WriteString("        </div>\n")
	}

	if q.Explanation != "" {
		fmt.Fprintf(&b, "        <div class=\"q-explanation\">%s</div>\n", htmlpkg.EscapeString(q.Explanation))
	}
	b.WriteString("    </div>\n")
	b.WriteString("</div>")

	return b.String()
}

func truncatePreview(text string, maxLen int) string {
	plain := strings.Join(strings.Fields(text), " ")
	runes := []rune(plain)
	if len(runes) <= maxLen {
		return plain
	}
	return string(runes[:maxLen-3]) + "..."
}

func injectQuestionCards(templateHTML, cardsHTML string) (string, error) {
	openMatch := questionsListOpen.FindStringIndex(templateHTML)
	if openMatch == nil {
		return "", fmt.Errorf("questions-list container not found in template")
	}

	openStart := openMatch[0]
	openEnd := openMatch[1]
	closeEnd, err := findMatchingDivClose(templateHTML, openStart)
	if err != nil {
		return "", fmt.Errorf("locating questions-list closing tag: %w", err)
	}

	closeStart := closeEnd - len("</div>")
	if closeStart < openEnd {
		return "", fmt.Errorf("invalid questions-list structure in template")
	}

	lineStart := strings.LastIndex(templateHTML[:openStart], "\n")
	if lineStart == -1 {
		lineStart = 0
	} else {
		lineStart++
	}
	containerIndent := templateHTML[lineStart:openStart]
	childIndent := containerIndent + "    "

	injected := indentBlock(strings.TrimSpace(cardsHTML), childIndent)
	prefix := strings.TrimRight(templateHTML[:openEnd], "\r\n")
	suffix := templateHTML[closeStart:]

	if injected == "" {
		return prefix + "\n" + containerIndent + suffix, nil
	}
	return prefix + "\n" + injected + "\n" + containerIndent + suffix, nil
}

// findMatchingDivClose walks nested <div> tags starting at startIdx and
// returns the index just past the matching </div>.
func findMatchingDivClose(content string, startIdx int) (int, error) {
	depth := 0
	cursor := startIdx

	for cursor < len(content) {
		nextOpen := strings.Index(content[cursor:], "<div")
		nextClose := strings.Index(content[cursor:], "</div>")

		if nextOpen == -1 && nextClose == -1 {
			break
		}

		if nextOpen != -1 && (nextClose == -1 || nextOpen < nextClose) {
			depth++
			cursor += nextOpen + len("<div")
			continue
		}

		depth--
		cursor += nextClose + len("</div>")
		if depth == 0 {
			return cursor, nil
		}
	}

	return 0, fmt.Errorf("no matching </div> found")
}

func indentBlock(content, indent string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
