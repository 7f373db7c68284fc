// Package textutil provides the small rune-aware text helpers used across the pipeline.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ellipsis marks text cut by Truncate
const Ellipsis = "..."

var whitespaceRegex = regexp.MustCompile(`\s+`)

// markdownReplacer escapes the Telegram Markdown (v1) special characters: _ * ` [
var markdownReplacer = strings.NewReplacer(
	`_`, `\_`,
	`*`, `\*`,
	"`", "\\`",
	`[`, `\[`,
)

// EscapeMarkdown makes s safe to embed in a Telegram Markdown (v1) message
func EscapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

// Len returns the length of s in characters
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Head returns the first n characters of s
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Truncate cuts s to max characters and appends an ellipsis when it was longer
func Truncate(s string, max int) string {
	if Len(s) <= max {
		return s
	}
	return Head(s, max) + Ellipsis
}

// CollapseSpaces replaces whitespace runs with a single space and trims
func CollapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripHTML returns the text content of an HTML fragment. Plain text is returned unchanged.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return CollapseSpaces(doc.Text())
}

// Lower lower-cases s with Unicode-aware rules
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Title title-cases every word of s
func Title(s string) string {
	return cases.Title(language.Spanish).String(s)
}
