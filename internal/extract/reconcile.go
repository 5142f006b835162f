package extract

import (
	"sort"

	"cpc-extractor/internal/models"
)

// reconcile joins the three per-phase maps by question number into validated
// question records, in increasing question-number order. A question without an
// answer-key entry is skipped with a warning, as is one whose record fails
// validation: one bad question never aborts the document. Explanations are
// optional and default to the empty string.
func reconcile(questions map[int]questionBlock, answers map[int]answerEntry, explanations map[int]string) ([]models.Question, []int) {
	numbers := make([]int, 0, len(questions))
	for number := range questions {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	records := make([]models.Question, 0, len(numbers))
	var dropped []int

	for _, number := range numbers {
		block := questions[number]

		answer, ok := answers[number]
		if !ok {
			warnf("no answer found for question %d", number)
			dropped = append(dropped, number)
			continue
		}

		record, err := models.NewQuestion(number, block.stem, block.options,
			answer.letter, answer.text, explanations[number])
		if err != nil {
			warnf("skipping question %d: %v", number, err)
			dropped = append(dropped, number)
			continue
		}

		records = append(records, record)
	}

	return records, dropped
}
