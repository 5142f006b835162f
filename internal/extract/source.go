// Package extract parses a practice-test document into a validated question
// dataset. The pipeline runs three regex-driven passes over the document text
// (question blocks, answer key, explanations) and reconciles them by question
// number.
package extract

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// PageSource provides per-page plain text from a test document. The pipeline
// only ever reads pages sequentially; tests substitute an in-memory fake.
type PageSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the plain text of page n (zero-based).
	PageText(n int) (string, error)

	// Close releases the underlying document handle.
	Close() error
}

type pdfSource struct {
	doc *fitz.Document
}

// OpenPDF opens a PDF file as a PageSource. Failure to open is fatal for the
// whole parse and propagates immediately.
func OpenPDF(path string) (PageSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %q: %w", path, err)
	}
	return &pdfSource{doc: doc}, nil
}

func (s *pdfSource) PageCount() int {
	return s.doc.NumPage()
}

func (s *pdfSource) PageText(n int) (string, error) {
	text, err := s.doc.Text(n)
	if err != nil {
		return "", fmt.Errorf("extracting text from page %d: %w", n+1, err)
	}
	return text, nil
}

func (s *pdfSource) Close() error {
	return s.doc.Close()
}
