package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// answerLinePattern matches the start of an answer-key entry: a bracketed
// checkbox, the question number, the selected letter, and the selected option
// text.
var answerLinePattern = regexp.MustCompile(`^\[\s*\]\s*(\d+)\.\s*([A-D])\.\s*(.+)`)

// answerEntry is the per-question output of the answer-key stage.
type answerEntry struct {
	letter string
	text   string
}

// extractAnswerKey parses the answer-key section text. A checkbox line opens a
// new entry; any following non-empty line that does not itself open an entry
// is a continuation of the answer text, joined with a single space. The last
// open entry is flushed when the section text ends.
func extractAnswerKey(text string, checkboxMarker string) map[int]answerEntry {
	answers := make(map[int]answerEntry)

	var currentNumber int
	var current *answerEntry

	flush := func() {
		if current != nil {
			answers[currentNumber] = *current
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if m := answerLinePattern.FindStringSubmatch(line); m != nil {
			flush()

			number, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			currentNumber = number
			current = &answerEntry{letter: m[2], text: strings.TrimSpace(m[3])}
			continue
		}

		if current != nil && strings.TrimSpace(line) != "" && !strings.HasPrefix(line, checkboxMarker) {
			current.text += " " + strings.TrimSpace(line)
		}
	}
	flush()

	return answers
}
