package constants

// Document layout defaults, tuned to the known CPC practice-test layout.
// A differently laid-out document is supported through a layout YAML file
// (see internal/config) rather than code changes.
const FrontMatterPages = 3
const ExplanationSearchStart = 35

// Section sentinels
const AnswerKeySentinel = "Answer Key"
const ExplanationsSentinel = "Explanations"
const ExplanationMarker = "Explanation:"

// Repeating page header stripped from every page before parsing
const PageHeader = "Medical Coding Ace"

// Checkbox prefix on answer-key lines
const CheckboxMarker = "[ ]"

// Question record limits
const MinQuestionID = 1
const MaxQuestionID = 100
const MinStemLength = 3
