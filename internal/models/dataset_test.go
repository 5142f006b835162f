package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func mustQuestion(t *testing.T, id int, letter string, explanation string) Question {
	t.Helper()
	q, err := NewQuestion(id, "Which code is correct?", fourOptions(), letter, "", explanation)
	if err != nil {
		t.Fatalf("failed building question %d: %v", id, err)
	}
	return q
}

func TestNewDatasetRejectsDuplicateIDs(t *testing.T) {
	questions := []Question{
		mustQuestion(t, 1, "A", ""),
		mustQuestion(t, 1, "B", ""),
	}

	_, err := NewDataset(questions, nil)
	if err == nil || !strings.Contains(err.Error(), "duplicate question IDs found") {
		t.Fatalf("expected duplicate IDs error, got %v", err)
	}
	if !strings.Contains(err.Error(), "1") {
		t.Fatalf("expected error to name the duplicate id, got %v", err)
	}
}

func TestNewDatasetRejectsEmpty(t *testing.T) {
	if _, err := NewDataset(nil, nil); err == nil {
		t.Fatal("expected error for empty dataset")
	}
}

func TestQuestionByID(t *testing.T) {
	dataset, err := NewDataset([]Question{
		mustQuestion(t, 1, "A", ""),
		mustQuestion(t, 2, "B", ""),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, ok := dataset.QuestionByID(2)
	if !ok || q.CorrectAnswerLetter != "B" {
		t.Fatalf("unexpected lookup result: %+v, %v", q, ok)
	}
	if _, ok := dataset.QuestionByID(42); ok {
		t.Fatal("expected lookup miss for id 42")
	}
}

func TestGetStatistics(t *testing.T) {
	dataset, err := NewDataset([]Question{
		mustQuestion(t, 1, "A", "Because of the code range."),
		mustQuestion(t, 2, "A", ""),
		mustQuestion(t, 3, "D", "See the guidelines."),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := dataset.GetStatistics()
	if stats.TotalQuestions != 3 {
		t.Fatalf("unexpected total: %d", stats.TotalQuestions)
	}
	if stats.AnswerDistribution["A"] != 2 || stats.AnswerDistribution["D"] != 1 {
		t.Fatalf("unexpected distribution: %v", stats.AnswerDistribution)
	}
	if stats.AnswerDistribution["B"] != 0 || stats.AnswerDistribution["C"] != 0 {
		t.Fatalf("expected zero counts present for unused letters: %v", stats.AnswerDistribution)
	}
	if stats.QuestionsWithExplanations != 2 {
		t.Fatalf("unexpected explanation count: %d", stats.QuestionsWithExplanations)
	}
	if stats.AvgStemLength <= 0 {
		t.Fatalf("unexpected avg stem length: %f", stats.AvgStemLength)
	}
}

func TestJSONLRoundTrip(t *testing.T) {
	original, err := NewDataset([]Question{
		mustQuestion(t, 1, "A", "Explanation one."),
		mustQuestion(t, 2, "C", ""),
		mustQuestion(t, 3, "D", "Explanation three."),
	}, map[string]any{"source": "test.pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "questions.jsonl")
	if err := original.WriteJSONL(path); err != nil {
		t.Fatalf("failed writing JSONL: %v", err)
	}

	loaded, err := LoadJSONL(path)
	if err != nil {
		t.Fatalf("failed loading JSONL: %v", err)
	}

	if len(loaded.Questions) != len(original.Questions) {
		t.Fatalf("expected %d questions, got %d", len(original.Questions), len(loaded.Questions))
	}
	for i, want := range original.Questions {
		got := loaded.Questions[i]
		if got.ID != want.ID || got.Stem != want.Stem ||
			got.CorrectAnswerLetter != want.CorrectAnswerLetter ||
			got.CorrectAnswerText != want.CorrectAnswerText ||
			got.Explanation != want.Explanation {
			t.Fatalf("record %d does not round-trip\nwant: %+v\ngot:  %+v", i, want, got)
		}
		for _, letter := range OptionLetters {
			if got.Options[letter] != want.Options[letter] {
				t.Fatalf("record %d option %s does not round-trip: want %q, got %q",
					i, letter, want.Options[letter], got.Options[letter])
			}
		}
	}
}

func TestLoadJSONLRevalidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	line := `{"id":1,"stem":"Which code is correct?","option_a":"a","option_b":"","option_c":"c","option_d":"d","correct_answer_letter":"A","correct_answer_text":"a","explanation":""}` + "\n"
	if err := writeTestFile(path, line); err != nil {
		t.Fatalf("failed writing file: %v", err)
	}

	_, err := LoadJSONL(path)
	if err == nil || !strings.Contains(err.Error(), "option B") {
		t.Fatalf("expected validation error on load, got %v", err)
	}
}
