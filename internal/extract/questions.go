package extract

import (
	"regexp"
	"strconv"
	"strings"

	"cpc-extractor/internal/models"
)

var (
	// blockStartPattern tokenizes section text into numbered blocks: a question
	// number followed by a period and whitespace, at the start of the text or
	// of a line.
	blockStartPattern = regexp.MustCompile(`(?:^|\n)(\d+)\.\s+`)

	// optionLinePatterns match one option line per letter: the letter label at
	// the start of a line, a period, a space, then text to end of line. Option
	// text is assumed not to wrap onto a following line; the known document
	// never does this.
	optionLinePatterns = map[string]*regexp.Regexp{
		"A": regexp.MustCompile(`\nA\. ([^\n]+)`),
		"B": regexp.MustCompile(`\nB\. ([^\n]+)`),
		"C": regexp.MustCompile(`\nC\. ([^\n]+)`),
		"D": regexp.MustCompile(`\nD\. ([^\n]+)`),
	}
)

// numberedBlock is one tokenized chunk of section text: the question number
// and everything up to the next numbered block.
type numberedBlock struct {
	number int
	body   string
}

// splitNumberedBlocks tokenizes section text on question-number boundaries.
// Any leading fragment before the first match is discarded.
func splitNumberedBlocks(text string) []numberedBlock {
	matches := blockStartPattern.FindAllStringSubmatchIndex(text, -1)
	blocks := make([]numberedBlock, 0, len(matches))

	for i, m := range matches {
		number, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}

		bodyStart := m[1]
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		blocks = append(blocks, numberedBlock{number: number, body: text[bodyStart:bodyEnd]})
	}

	return blocks
}

// questionBlock is the per-question output of the first pipeline stage.
type questionBlock struct {
	stem    string
	options map[string]string
}

// extractQuestions splits the question-section text into per-question stem and
// options. A question missing any of the four option letters is dropped with a
// warning; the final dataset will then hold fewer than the nominal question
// count, which is an accepted degradation rather than an error.
func extractQuestions(text string) map[int]questionBlock {
	questions := make(map[int]questionBlock)

	for _, block := range splitNumberedBlocks(text) {
		optionStart := strings.Index(block.body, "\nA.")
		if optionStart == -1 {
			warnf("question %d has no option lines", block.number)
			continue
		}

		stem := strings.TrimSpace(strings.ReplaceAll(block.body[:optionStart], "\n", " "))
		optionsText := block.body[optionStart:]

		options := make(map[string]string, len(models.OptionLetters))
		for _, letter := range models.OptionLetters {
			if m := optionLinePatterns[letter].FindStringSubmatch(optionsText); m != nil {
				options[letter] = strings.TrimSpace(m[1])
			}
		}

		if len(options) != len(models.OptionLetters) {
			warnf("question %d has %d options instead of 4", block.number, len(options))
			continue
		}

		questions[block.number] = questionBlock{stem: stem, options: options}
	}

	return questions
}
