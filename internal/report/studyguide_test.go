package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestBuildStudyGuideMarkdown(t *testing.T) {
	dataset := sampleDataset(t)
	md := BuildStudyGuideMarkdown(dataset, "CPC Study Guide")

	if !strings.HasPrefix(md, "# CPC Study Guide\n") {
		t.Fatalf("expected title heading, got %q", md[:40])
	}
	if !strings.Contains(md, "2 questions, 1 with explanations.") {
		t.Fatal("expected statistics line in study guide")
	}
	if !strings.Contains(md, "## Question 1") || !strings.Contains(md, "## Question 2") {
		t.Fatal("expected one section per question")
	}
	if !strings.Contains(md, "- **B. 11401**") {
		t.Fatal("expected the correct option bolded")
	}
	if !strings.Contains(md, "- A. 11400\n") {
		t.Fatal("expected plain rendering for incorrect options")
	}
	if !strings.Contains(md, "Correct answer: **B. 11401**") {
		t.Fatal("expected correct-answer line")
	}
	if !strings.Contains(md, "> The lesion diameter selects the code.") {
		t.Fatal("expected explanation blockquote")
	}
	if strings.Count(md, "> ") != 1 {
		t.Fatal("expected exactly one explanation blockquote")
	}
}

func TestWriteStudyGuideMarkdown(t *testing.T) {
	dataset := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "guide.md")

	if err := WriteStudyGuideMarkdown(dataset, path, "CPC Study Guide"); err != nil {
		t.Fatalf("WriteStudyGuideMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading study guide: %v", err)
	}
	if string(data) != BuildStudyGuideMarkdown(dataset, "CPC Study Guide") {
		t.Fatal("file content does not match rendered markdown")
	}
}

func TestWriteStudyGuideHTML(t *testing.T) {
	dataset := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "guide.html")

	if err := WriteStudyGuideHTML(dataset, path, "CPC Study Guide"); err != nil {
		t.Fatalf("WriteStudyGuideHTML failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading study guide: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parsing study guide HTML: %v", err)
	}

	if got := doc.Find("title").Text(); got != "CPC Study Guide" {
		t.Fatalf("unexpected title: %q", got)
	}
	if got := doc.Find("h1").First().Text(); got != "CPC Study Guide" {
		t.Fatalf("unexpected h1: %q", got)
	}
	if doc.Find("h2").Length() != 2 {
		t.Fatalf("expected 2 question headings, got %d", doc.Find("h2").Length())
	}
	if doc.Find("blockquote").Length() != 1 {
		t.Fatalf("expected 1 explanation blockquote, got %d", doc.Find("blockquote").Length())
	}
	if !strings.Contains(doc.Find("body").Text(), "Correct answer: B. 11401") {
		t.Fatal("expected correct-answer line in rendered HTML")
	}
}
