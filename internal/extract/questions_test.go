package extract

import "testing"

func TestSplitNumberedBlocksDiscardsLeadingFragment(t *testing.T) {
	text := "Section 1: Surgery\n1. First question?\nA. one\n2. Second question?\nA. two"

	blocks := splitNumberedBlocks(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].number != 1 || blocks[1].number != 2 {
		t.Fatalf("unexpected block numbers: %d, %d", blocks[0].number, blocks[1].number)
	}
	if blocks[0].body != "First question?\nA. one" {
		t.Fatalf("unexpected first body: %q", blocks[0].body)
	}
	if blocks[1].body != "Second question?\nA. two" {
		t.Fatalf("unexpected second body: %q", blocks[1].body)
	}
}

func TestSplitNumberedBlocksIgnoresMidLineNumbers(t *testing.T) {
	text := "1. The code 11400. What applies?\nA. one"

	blocks := splitNumberedBlocks(text)
	if len(blocks) != 1 {
		t.Fatalf("expected mid-line number to stay inside the block, got %d blocks", len(blocks))
	}
	if blocks[0].number != 1 {
		t.Fatalf("unexpected number: %d", blocks[0].number)
	}
}

func TestExtractQuestionsParsesStemAndOptions(t *testing.T) {
	text := "1. Which CPT code covers excision of an oral lesion?\n" +
		"A. 40800\nB. 41105\nC. 41113\nD. 40804\n"

	questions := extractQuestions(text)
	q, ok := questions[1]
	if !ok {
		t.Fatalf("question 1 not extracted: %v", questions)
	}
	if q.stem != "Which CPT code covers excision of an oral lesion?" {
		t.Fatalf("unexpected stem: %q", q.stem)
	}
	want := map[string]string{"A": "40800", "B": "41105", "C": "41113", "D": "40804"}
	for letter, text := range want {
		if q.options[letter] != text {
			t.Fatalf("option %s: want %q, got %q", letter, text, q.options[letter])
		}
	}
}

func TestExtractQuestionsJoinsMultilineStem(t *testing.T) {
	text := "2. During a regular checkup Dr. Stevens\nreviewed the chart. What\nmodifier applies?\n" +
		"A. -25\nB. -59\nC. -50\nD. -91\n"

	questions := extractQuestions(text)
	q, ok := questions[2]
	if !ok {
		t.Fatalf("question 2 not extracted: %v", questions)
	}
	want := "During a regular checkup Dr. Stevens reviewed the chart. What modifier applies?"
	if q.stem != want {
		t.Fatalf("unexpected stem\nwant: %q\ngot:  %q", want, q.stem)
	}
}

func TestExtractQuestionsDropsIncompleteOptionBlock(t *testing.T) {
	text := "3. Which code is reported for a broken arm?\n" +
		"A. S42.001A\nB. S42.002A\nC. S42.009A\n" +
		"4. Which HCPCS code covers a standard wheelchair?\n" +
		"A. K0001\nB. K0002\nC. K0003\nD. K0004\n"

	questions := extractQuestions(text)
	if _, ok := questions[3]; ok {
		t.Fatal("expected question 3 (three options) to be dropped")
	}
	if _, ok := questions[4]; !ok {
		t.Fatal("expected question 4 to survive")
	}
}

func TestExtractQuestionsDropsBlockWithoutOptions(t *testing.T) {
	questions := extractQuestions("5. A stray note without any choices\n")
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %v", questions)
	}
}
