package translation

import (
	"regexp"

	"github.com/giygas/medicamentos-bot/textutil"
)

var (
	bracketRegex     = regexp.MustCompile(`\[.*?\]`)
	parenthesisRegex = regexp.MustCompile(`\(.*?\)`)
)

// cleanTranslation strips bracketed and parenthesized annotations that remote
// services leave in their output
func cleanTranslation(text string) string {
	if text == "" {
		return text
	}
	text = bracketRegex.ReplaceAllString(text, "")
	text = parenthesisRegex.ReplaceAllString(text, "")
	return textutil.CollapseSpaces(text)
}
