package models

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"cpc-extractor/internal/constants"
)

// Dataset is an ordered, validated collection of questions from one test
// document. Question IDs are pairwise distinct; downstream consumers treat it
// as a read-only collection with lookup by ID.
type Dataset struct {
	Questions []Question
	Metadata  map[string]any
}

// NewDataset validates the collection invariants: at least one question, no
// more than the test size, and no duplicate IDs.
func NewDataset(questions []Question, metadata map[string]any) (*Dataset, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("dataset must contain at least one question")
	}
	if len(questions) > constants.MaxQuestionID {
		return nil, fmt.Errorf("dataset must contain at most %d questions, got %d",
			constants.MaxQuestionID, len(questions))
	}

	seen := make(map[int]int, len(questions))
	var duplicates []int
	for _, q := range questions {
		seen[q.ID]++
		if seen[q.ID] == 2 {
			duplicates = append(duplicates, q.ID)
		}
	}
	if len(duplicates) > 0 {
		sort.Ints(duplicates)
		return nil, fmt.Errorf("duplicate question IDs found: %v", duplicates)
	}

	return &Dataset{Questions: questions, Metadata: metadata}, nil
}

// QuestionByID returns the question with the given ID, if present.
func (d *Dataset) QuestionByID(id int) (Question, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Statistics are aggregate numbers derived on demand, never cached.
type Statistics struct {
	TotalQuestions            int
	AnswerDistribution        map[string]int
	AvgStemLength             float64
	AvgExplanationLength      float64
	QuestionsWithExplanations int
}

// GetStatistics derives aggregate statistics over the dataset.
func (d *Dataset) GetStatistics() Statistics {
	distribution := make(map[string]int, len(OptionLetters))
	for _, letter := range OptionLetters {
		distribution[letter] = 0
	}

	stemTotal := 0
	explanationTotal := 0
	withExplanations := 0
	for _, q := range d.Questions {
		distribution[q.CorrectAnswerLetter]++
		stemTotal += len(q.Stem)
		explanationTotal += len(q.Explanation)
		if q.Explanation != "" {
			withExplanations++
		}
	}

	count := float64(len(d.Questions))
	return Statistics{
		TotalQuestions:            len(d.Questions),
		AnswerDistribution:        distribution,
		AvgStemLength:             float64(stemTotal) / count,
		AvgExplanationLength:      float64(explanationTotal) / count,
		QuestionsWithExplanations: withExplanations,
	}
}

// jsonlRecord is the flattened persisted form: the options mapping is spread
// over four fields for easier processing in benchmarking and fine-tuning.
type jsonlRecord struct {
	ID                  int    `json:"id"`
	Stem                string `json:"stem"`
	OptionA             string `json:"option_a"`
	OptionB             string `json:"option_b"`
	OptionC             string `json:"option_c"`
	OptionD             string `json:"option_d"`
	CorrectAnswerLetter string `json:"correct_answer_letter"`
	CorrectAnswerText   string `json:"correct_answer_text"`
	Explanation         string `json:"explanation"`
}

// WriteJSONL writes the dataset as newline-delimited JSON, one question per
// line.
func (d *Dataset) WriteJSONL(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, q := range d.Questions {
		record := jsonlRecord{
			ID:                  q.ID,
			Stem:                q.Stem,
			OptionA:             q.Options["A"],
			OptionB:             q.Options["B"],
			OptionC:             q.Options["C"],
			OptionD:             q.Options["D"],
			CorrectAnswerLetter: q.CorrectAnswerLetter,
			CorrectAnswerText:   q.CorrectAnswerText,
			Explanation:         q.Explanation,
		}

		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshaling question %d: %w", q.ID, err)
		}
		if _, err := writer.Write(append(payload, '\n')); err != nil {
			return fmt.Errorf("writing question %d: %w", q.ID, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing output file: %w", err)
	}
	return nil
}

// LoadJSONL reads a dataset back from its newline-delimited form. Records are
// rebuilt through NewQuestion and NewDataset, so a loaded dataset re-validates
// under the same invariants it was written with.
func LoadJSONL(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer file.Close()

	var questions []Question
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var record jsonlRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", line, err)
		}

		q, err := NewQuestion(
			record.ID,
			record.Stem,
			map[string]string{
				"A": record.OptionA,
				"B": record.OptionB,
				"C": record.OptionC,
				"D": record.OptionD,
			},
			record.CorrectAnswerLetter,
			record.CorrectAnswerText,
			record.Explanation,
		)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		questions = append(questions, q)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	return NewDataset(questions, nil)
}
