package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
	periodSpacingPattern = regexp.MustCompile(`\.\s*`)
	invalidCharsPattern  = regexp.MustCompile(`[^a-z0-9._-]+`)
)

// CleanText collapses all whitespace runs (newlines, tabs, repeated spaces)
// into single spaces and trims the result.
func CleanText(raw string) string {
	cleaned := whitespaceRunPattern.ReplaceAllString(raw, " ")
	return strings.TrimSpace(cleaned)
}

// NormalizeSentenceSpacing rewrites every period so exactly one space follows
// it, then trims. Intended for explanation text that arrives with PDF line
// breaks mid-sentence.
func NormalizeSentenceSpacing(text string) string {
	return strings.TrimSpace(periodSpacingPattern.ReplaceAllString(text, ". "))
}

// SanitizeFilenameSegment lowercases a string and reduces it to characters
// safe in a file name.
func SanitizeFilenameSegment(input string) string {
	segment := strings.TrimSpace(strings.ToLower(input))
	if segment == "" {
		return ""
	}

	segment = strings.ReplaceAll(segment, " ", "-")
	segment = invalidCharsPattern.ReplaceAllString(segment, "-")
	segment = strings.Trim(segment, "-._")

	return segment
}

func StartTime() time.Time {
	return time.Now()
}

func TimeSince(startTime time.Time) string {
	duration := time.Since(startTime)

	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
