package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cpc-extractor/internal/config"
	"cpc-extractor/internal/constants"
	"cpc-extractor/internal/extract"
	"cpc-extractor/internal/models"
	"cpc-extractor/internal/report"
	"cpc-extractor/internal/utils"

	"github.com/cheggaaa/pb/v3"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiCyan   = "\x1b[36m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiGray   = "\x1b[90m"
)

var useANSI = detectANSI()

func main() {
	defer func() {
		if r := recover(); r != nil {
			printErrorf("Unexpected error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		printErrorf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	input := flag.String("input", "", "Path to the practice-test PDF (required)")
	output := flag.String("output", "questions.jsonl", "Path for the JSONL dataset")
	htmlOut := flag.String("html", "", "Optional path for the HTML exam simulator")
	guideOut := flag.String("guide", "", "Optional path for the study guide (.md, .html or .pdf)")
	guideTitle := flag.String("title", "CPC Practice Test Study Guide", "Title used for the study guide")
	layoutPath := flag.String("layout", "", "Optional YAML file overriding the document layout")
	showStats := flag.Bool("stats", false, "Print dataset statistics after extraction")
	debug := flag.Bool("debug", false, "Enable debug logs")
	flag.Parse()

	extract.SetDebug(*debug)

	if *input == "" {
		flag.Usage()
		return fmt.Errorf("missing required -input flag")
	}

	printBanner()

	layout := config.DefaultLayout()
	if *layoutPath != "" {
		loaded, err := config.LoadLayout(*layoutPath)
		if err != nil {
			return err
		}
		layout = loaded
		printInfof("Loaded layout overrides from %s\n", *layoutPath)
	}

	start := utils.StartTime()
	printInfof("Parsing %s...\n", *input)

	src, err := extract.OpenPDF(*input)
	if err != nil {
		return err
	}
	defer src.Close()

	// Three passes over the document, so the bar upper bound is three times
	// the page count. Each pass stops early at its section boundary.
	bar := pb.StartNew(3 * src.PageCount())
	dataset, stats, err := extract.Parse(src, layout, map[string]any{"source": *input}, func() {
		bar.Increment()
	})
	bar.Finish()
	if err != nil {
		return err
	}

	printSuccessf("Parsed %d questions, %d answers, %d explanations in %s.\n",
		stats.QuestionsFound, stats.AnswersFound, stats.ExplanationsFound, utils.TimeSince(start))

	if len(stats.DroppedQuestions) > 0 {
		printWarnf("Dropped %d question(s) during reconciliation: %v\n",
			len(stats.DroppedQuestions), stats.DroppedQuestions)
	}
	if stats.ExplanationsMissing {
		printWarnf("Explanations section not found. Records carry empty explanations.\n")
	}
	if stats.ValidRecords < constants.MaxQuestionID {
		printWarnf("Expected up to %d questions, extracted %d. The document layout may have shifted.\n",
			constants.MaxQuestionID, stats.ValidRecords)
	}

	if err := dataset.WriteJSONL(*output); err != nil {
		return err
	}
	printSuccessf("Wrote %d records to %s\n", stats.ValidRecords, *output)

	if *htmlOut != "" {
		if err := report.WriteExamSimulator(dataset, *htmlOut, report.DefaultExamMeta()); err != nil {
			return err
		}
		printSuccessf("Wrote exam simulator to %s\n", *htmlOut)
	}

	if *guideOut != "" {
		if err := writeStudyGuide(dataset, *guideOut, *guideTitle); err != nil {
			return err
		}
		printSuccessf("Wrote study guide to %s\n", *guideOut)
	}

	if *showStats {
		printStatistics(dataset)
	}

	return nil
}

func writeStudyGuide(dataset *models.Dataset, path, title string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return report.WriteStudyGuideMarkdown(dataset, path, title)
	case ".html":
		return report.WriteStudyGuideHTML(dataset, path, title)
	case ".pdf":
		return report.WriteStudyGuidePDF(dataset, path, title)
	default:
		return fmt.Errorf("unsupported study-guide format %q, use .md, .html or .pdf", filepath.Ext(path))
	}
}

func printStatistics(dataset *models.Dataset) {
	stats := dataset.GetStatistics()

	printSection("Dataset Statistics")
	fmt.Println(style(fmt.Sprintf(" Questions:          %d", stats.TotalQuestions), ansiCyan))
	fmt.Println(style(fmt.Sprintf(" With explanations:  %d", stats.QuestionsWithExplanations), ansiCyan))
	fmt.Println(style(fmt.Sprintf(" Avg stem length:    %.1f chars", stats.AvgStemLength), ansiCyan))
	fmt.Println(style(fmt.Sprintf(" Avg expl. length:   %.1f chars", stats.AvgExplanationLength), ansiCyan))

	letters := make([]string, 0, len(stats.AnswerDistribution))
	for letter := range stats.AnswerDistribution {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	fmt.Println(style(" Answer distribution:", ansiCyan))
	for _, letter := range letters {
		fmt.Println(style(fmt.Sprintf("   %s: %d", letter, stats.AnswerDistribution[letter]), ansiCyan))
	}
}

func printBanner() {
	fmt.Println(style(strings.Repeat("=", 64), ansiGray))
	fmt.Println(style(" CPC Extractor - Practice Test Dataset Builder", ansiBold+ansiCyan))
	fmt.Println(style(strings.Repeat("=", 64), ansiGray))
	fmt.Println()
}

func printSection(title string) {
	fmt.Println()
	fmt.Println(style(strings.Repeat("-", 64), ansiGray))
	fmt.Println(style(" "+title, ansiBold+ansiCyan))
	fmt.Println(style(strings.Repeat("-", 64), ansiGray))
}

func printInfof(format string, args ...any) {
	fmt.Printf(style("[INFO] ", ansiCyan)+format, args...)
}

func printSuccessf(format string, args ...any) {
	fmt.Printf(style("[OK] ", ansiGreen)+format, args...)
}

func printWarnf(format string, args ...any) {
	fmt.Printf(style("[WARN] ", ansiYellow)+format, args...)
}

func printErrorf(format string, args ...any) {
	fmt.Printf(style("[ERROR] ", ansiRed)+format, args...)
}

func style(text string, code string) string {
	if !useANSI || text == "" {
		return text
	}
	return code + text + ansiReset
}

func detectANSI() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("NO_COLOR")), "1") {
		return false
	}
	term := strings.TrimSpace(strings.ToLower(os.Getenv("TERM")))
	if term == "dumb" {
		return false
	}
	return true
}
