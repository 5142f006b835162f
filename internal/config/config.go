// Package config describes the layout of a practice-test document: where the
// front matter ends, which sentinel strings mark section transitions, and which
// header line repeats on every page.
package config

import (
	"fmt"
	"os"

	"cpc-extractor/internal/constants"

	"gopkg.in/yaml.v3"
)

// Layout holds the section-boundary heuristics for one document layout.
type Layout struct {
	// FrontMatterPages is the number of leading pages (cover, instructions)
	// skipped before question parsing starts.
	FrontMatterPages int `yaml:"front_matter_pages"`

	// ExplanationSearchStart is the page index from which the explanations
	// sentinel is searched. Starting well past the answer key avoids matching
	// the answer-key page's own mention of the word.
	ExplanationSearchStart int `yaml:"explanation_search_start"`

	AnswerKeySentinel    string `yaml:"answer_key_sentinel"`
	ExplanationsSentinel string `yaml:"explanations_sentinel"`

	// PageHeader is the repeating header line removed from every page.
	PageHeader string `yaml:"page_header"`

	// CheckboxMarker is the prefix of each answer-key entry line.
	CheckboxMarker string `yaml:"checkbox_marker"`
}

// DefaultLayout returns the layout of the known CPC practice-test document.
func DefaultLayout() Layout {
	return Layout{
		FrontMatterPages:       constants.FrontMatterPages,
		ExplanationSearchStart: constants.ExplanationSearchStart,
		AnswerKeySentinel:      constants.AnswerKeySentinel,
		ExplanationsSentinel:   constants.ExplanationsSentinel,
		PageHeader:             constants.PageHeader,
		CheckboxMarker:         constants.CheckboxMarker,
	}
}

// LoadLayout reads a layout YAML file. Keys absent from the file keep their
// default values.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()

	data, err := os.ReadFile(path)
	if err != nil {
		return layout, fmt.Errorf("reading layout file: %w", err)
	}

	if err := yaml.Unmarshal(data, &layout); err != nil {
		return layout, fmt.Errorf("parsing layout file %q: %w", path, err)
	}

	if err := layout.validate(); err != nil {
		return layout, fmt.Errorf("invalid layout in %q: %w", path, err)
	}

	return layout, nil
}

func (l Layout) validate() error {
	if l.FrontMatterPages < 0 {
		return fmt.Errorf("front_matter_pages must not be negative, got %d", l.FrontMatterPages)
	}
	if l.ExplanationSearchStart < 0 {
		return fmt.Errorf("explanation_search_start must not be negative, got %d", l.ExplanationSearchStart)
	}
	if l.AnswerKeySentinel == "" {
		return fmt.Errorf("answer_key_sentinel must not be empty")
	}
	if l.ExplanationsSentinel == "" {
		return fmt.Errorf("explanations_sentinel must not be empty")
	}
	if l.CheckboxMarker == "" {
		return fmt.Errorf("checkbox_marker must not be empty")
	}
	return nil
}
