// Package formatter renders aggregated medication information as a
// length-bounded Telegram Markdown message.
package formatter

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/giygas/medicamentos-bot/aggregator"
	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/textutil"
)

const (
	MaxMessageLength   = 4000
	TruncatedLength    = 3900
	TruncatedSuffix    = "\n\n... (mensaje muy largo)"
	MaxFactLength      = 250
	MaxSourcesPerTopic = 2

	timestampLayout = "02/01/2006 15:04"
)

// Formatter builds the search result message
type Formatter struct {
	translator     interfaces.Translator
	targetLanguage string
	now            func() time.Time
}

// New creates a formatter. Facts that are not Spanish yet go through translator once more.
func New(translator interfaces.Translator, targetLanguage string) *Formatter {
	return &Formatter{
		translator:     translator,
		targetLanguage: targetLanguage,
		now:            time.Now,
	}
}

// WithClock replaces the clock used for the footer timestamp
func (f *Formatter) WithClock(now func() time.Time) *Formatter {
	f.now = now
	return f
}

// Format renders rs for query. An empty result set yields the no-results message.
func (f *Formatter) Format(ctx context.Context, rs *entities.ResultSet, query string) string {
	if rs.IsEmpty() {
		return NoResults(query)
	}

	var parts []string

	name := aggregator.ResolveName(rs, query)
	parts = append(parts, fmt.Sprintf("💊 *%s*", textutil.EscapeMarkdown(strings.ToUpper(name))), "")
	parts = append(parts, "📚 *Fuentes:* "+textutil.EscapeMarkdown(strings.Join(rs.Sources(), ", ")), "")

	translated := rs.AnyTranslated()
	if translated {
		parts = append(parts, "🌐 *Traducido automáticamente*", "")
	}

	facts := aggregator.Categorize(rs)
	for _, def := range entities.Categories {
		items := facts[def.Key]
		if len(items) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("*%s:*", def.Title))
		parts = append(parts, f.renderFacts(ctx, items)...)
		parts = append(parts, "")
	}

	if urls := aggregator.ExtractURLs(rs, aggregator.MaxURLs); len(urls) > 0 {
		parts = append(parts, "*🔗 Más información:*")
		for _, u := range urls {
			parts = append(parts, fmt.Sprintf("• [%s](%s)", textutil.EscapeMarkdown(u.Source), u.URL))
		}
		parts = append(parts, "")
	}

	parts = append(parts, strings.Repeat("═", 35), "📋 *IMPORTANTE:*")
	if translated {
		parts = append(parts, "• ✅ Traducido automáticamente")
	}
	parts = append(parts,
		"• ℹ️ APIs públicas oficiales",
		"• ⚠️ Consulte con un profesional",
		"• 📅 "+f.now().Format(timestampLayout),
	)

	return Cap(strings.Join(parts, "\n"))
}

// renderFacts shows facts from at most MaxSourcesPerTopic distinct sources
func (f *Formatter) renderFacts(ctx context.Context, items []entities.Fact) []string {
	var lines []string
	shown := make(map[string]struct{}, MaxSourcesPerTopic)

	for _, fact := range items {
		if _, ok := shown[fact.Source]; ok || fact.Text == "" {
			continue
		}

		text := fact.Text
		if f.translator != nil && !f.translator.IsSpanish(text) {
			text = f.translator.Translate(ctx, text, f.targetLanguage)
		}
		lines = append(lines, "• "+textutil.EscapeMarkdown(Truncate(text, MaxFactLength)))
		if fact.DisplaySource != "" {
			lines = append(lines, "  └─ "+textutil.EscapeMarkdown(fact.DisplaySource))
		}

		shown[fact.Source] = struct{}{}
		if len(shown) >= MaxSourcesPerTopic {
			break
		}
	}
	return lines
}

// Cap bounds a message to MaxMessageLength characters
func Cap(message string) string {
	if textutil.Len(message) <= MaxMessageLength {
		return message
	}
	return textutil.Head(message, TruncatedLength) + TruncatedSuffix
}

// Truncate collapses whitespace and shortens text to about limit characters. It prefers
// ending after the last period past the middle of the limit, then after the first period
// up to a quarter of the limit beyond it, then before a comma past the middle, then a hard cut.
func Truncate(text string, limit int) string {
	text = textutil.CollapseSpaces(text)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	if dot := lastIndex(runes[:limit], '.'); dot*2 > limit {
		return string(runes[:dot+1])
	}
	window := min(len(runes), limit+limit/4)
	if dot := slices.Index(runes[limit:window], '.'); dot >= 0 {
		return string(runes[:limit+dot+1])
	}
	if comma := lastIndex(runes[:limit], ','); comma*2 > limit {
		return string(runes[:comma]) + textutil.Ellipsis
	}
	return string(runes[:limit]) + textutil.Ellipsis
}

func lastIndex(runes []rune, target rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
