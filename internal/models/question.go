// Package models defines the validated question records produced by the
// extraction pipeline and their downstream renderings.
package models

import (
	"fmt"
	"sort"
	"strings"

	"cpc-extractor/internal/constants"
	"cpc-extractor/internal/utils"
)

// OptionLetters lists the four answer-choice labels in display order.
var OptionLetters = []string{"A", "B", "C", "D"}

// interrogative words that mark a stem as a question when it lacks terminal
// punctuation
var questionWords = []string{"which", "what", "when", "where", "who", "why", "how"}

// Question is a single validated practice-test question. Construct it with
// NewQuestion; a Question that came out of the constructor always satisfies
// the invariants checked there and is not mutated afterwards.
type Question struct {
	ID                  int               `json:"id"`
	Stem                string            `json:"stem"`
	Options             map[string]string `json:"options"`
	CorrectAnswerLetter string            `json:"correct_answer_letter"`
	CorrectAnswerText   string            `json:"correct_answer_text"`
	Explanation         string            `json:"explanation"`
}

// NewQuestion validates and builds a Question record.
//
// The stem is cleaned (whitespace collapsed, terminal punctuation ensured),
// options must contain exactly the keys A-D with non-empty text, and the
// correct-answer letter must be one of them. A correctAnswerText that
// disagrees with the option text for that letter is overwritten by the option
// text: the options block is authoritative, so the mismatch is healed rather
// than rejected.
func NewQuestion(id int, stem string, options map[string]string, correctAnswerLetter, correctAnswerText, explanation string) (Question, error) {
	if id < constants.MinQuestionID || id > constants.MaxQuestionID {
		return Question{}, fmt.Errorf("question id must be between %d and %d, got %d",
			constants.MinQuestionID, constants.MaxQuestionID, id)
	}

	cleanedStem := cleanStem(stem)
	if len(cleanedStem) < constants.MinStemLength {
		return Question{}, fmt.Errorf("question %d: stem must be at least %d characters, got %q",
			id, constants.MinStemLength, cleanedStem)
	}

	if err := validateOptions(id, options); err != nil {
		return Question{}, err
	}

	optionText, ok := options[correctAnswerLetter]
	if !ok {
		return Question{}, fmt.Errorf("question %d: correct answer letter must be one of A, B, C, D, got %q",
			id, correctAnswerLetter)
	}

	copied := make(map[string]string, len(options))
	for letter, text := range options {
		copied[letter] = text
	}

	return Question{
		ID:                  id,
		Stem:                cleanedStem,
		Options:             copied,
		CorrectAnswerLetter: correctAnswerLetter,
		CorrectAnswerText:   optionText,
		Explanation:         explanation,
	}, nil
}

func validateOptions(id int, options map[string]string) error {
	if len(options) != len(OptionLetters) {
		return optionKeysError(id, options)
	}
	for _, letter := range OptionLetters {
		text, ok := options[letter]
		if !ok {
			return optionKeysError(id, options)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("question %d: option %s must not be empty", id, letter)
		}
	}
	return nil
}

func optionKeysError(id int, options map[string]string) error {
	keys := make([]string, 0, len(options))
	for letter := range options {
		keys = append(keys, letter)
	}
	sort.Strings(keys)
	return fmt.Errorf("question %d: options must contain exactly keys A, B, C, D, got: %v", id, keys)
}

// cleanStem collapses whitespace and guarantees terminal punctuation. A stem
// starting with an interrogative word gets a question mark, anything else a
// period. Cleaning an already-clean stem is a no-op.
func cleanStem(stem string) string {
	cleaned := utils.CleanText(stem)
	if cleaned == "" {
		return cleaned
	}

	if strings.HasSuffix(cleaned, ".") || strings.HasSuffix(cleaned, "?") ||
		strings.HasSuffix(cleaned, "!") || strings.HasSuffix(cleaned, ":") {
		return cleaned
	}

	lower := strings.ToLower(cleaned)
	for _, word := range questionWords {
		if strings.HasPrefix(lower, word) {
			return cleaned + "?"
		}
	}
	return cleaned + "."
}

// ToPrompt renders the question as human-readable text for a downstream
// answering agent, optionally with the lettered choices.
func (q Question) ToPrompt(includeOptions bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d: %s", q.ID, q.Stem)

	if includeOptions {
		b.WriteString("\n")
		for _, letter := range OptionLetters {
			fmt.Fprintf(&b, "\n%s. %s", letter, q.Options[letter])
		}
	}

	return b.String()
}

// Message is one turn of a fine-tuning example pair.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToTrainingMessages renders the question as a two-turn exchange suitable for
// fine-tuning: the prompt, then the keyed answer with its explanation.
func (q Question) ToTrainingMessages() []Message {
	return []Message{
		{
			Role:    "user",
			Content: q.ToPrompt(true),
		},
		{
			Role: "assistant",
			Content: fmt.Sprintf("The correct answer is %s. %s\n\nExplanation: %s",
				q.CorrectAnswerLetter, q.CorrectAnswerText, q.Explanation),
		},
	}
}
