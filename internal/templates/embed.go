package templates

import _ "embed"

// EmbeddedTemplate is the HTML shell the exam-simulator export injects
// question cards into.
//
//go:embed template.html
var EmbeddedTemplate string
