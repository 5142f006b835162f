package extract

import (
	"fmt"

	"cpc-extractor/internal/config"
	"cpc-extractor/internal/models"
)

// Stats reports how much each pipeline stage recovered, so a caller can spot a
// document that under-parsed without the run failing.
type Stats struct {
	QuestionsFound      int
	AnswersFound        int
	ExplanationsFound   int
	ValidRecords        int
	DroppedQuestions    []int
	ExplanationsMissing bool
}

// Parse runs the full extraction pipeline over an open page source: three
// sequential passes (question blocks, answer key, explanations), then the
// reconciliation into a validated dataset. The onPage callback fires once per
// visited page across all passes. The caller owns the source and its Close.
func Parse(src PageSource, layout config.Layout, metadata map[string]any, onPage func()) (*models.Dataset, Stats, error) {
	var stats Stats

	questionText, err := collectQuestionText(src, layout, onPage)
	if err != nil {
		return nil, stats, fmt.Errorf("collecting question pages: %w", err)
	}
	questions := extractQuestions(questionText)
	stats.QuestionsFound = len(questions)
	debugf("parsed %d questions", len(questions))

	answerText, err := collectAnswerKeyText(src, layout, onPage)
	if err != nil {
		return nil, stats, fmt.Errorf("collecting answer-key pages: %w", err)
	}
	answers := extractAnswerKey(answerText, layout.CheckboxMarker)
	stats.AnswersFound = len(answers)
	debugf("parsed %d answers", len(answers))

	explanationText, found, err := collectExplanationText(src, layout, onPage)
	if err != nil {
		return nil, stats, fmt.Errorf("collecting explanation pages: %w", err)
	}
	stats.ExplanationsMissing = !found
	var explanations map[int]string
	if found {
		explanations = extractExplanations(explanationText)
	} else {
		warnf("explanations section not found")
	}
	stats.ExplanationsFound = len(explanations)
	debugf("parsed %d explanations", len(explanations))

	records, dropped := reconcile(questions, answers, explanations)
	stats.ValidRecords = len(records)
	stats.DroppedQuestions = dropped

	dataset, err := models.NewDataset(records, metadata)
	if err != nil {
		return nil, stats, fmt.Errorf("building dataset: %w", err)
	}

	return dataset, stats, nil
}

// ParseFile opens a PDF, parses it, and closes it again.
func ParseFile(path string, layout config.Layout) (*models.Dataset, Stats, error) {
	src, err := OpenPDF(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer src.Close()

	return Parse(src, layout, map[string]any{"source": path}, nil)
}
