// Package aggregator merges per-source records: it translates untranslated fields,
// groups facts by category, and resolves the display name and reference links.
package aggregator

import (
	"context"
	"strings"

	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/textutil"
)

// Defaults for the aggregation heuristics
const (
	DefaultMinFieldLength = 30 // translatable fields and their translations must be longer than this
	MinFactLength         = 20 // shorter category values are not shown
	MaxURLs               = 3
)

// TranslatableFields are the record fields that may be machine translated
var TranslatableFields = []string{
	"descripcion", "description", "indicaciones", "dosis", "efectos_secundarios",
	"contraindicaciones", "precauciones", "interacciones", "abstract", "content",
}

// Aggregator holds the translator used on record fields
type Aggregator struct {
	translator     interfaces.Translator
	targetLanguage string
	minFieldLength int
}

// New creates an aggregator. minFieldLength <= 0 selects the default.
func New(translator interfaces.Translator, targetLanguage string, minFieldLength int) *Aggregator {
	if minFieldLength <= 0 {
		minFieldLength = DefaultMinFieldLength
	}
	return &Aggregator{
		translator:     translator,
		targetLanguage: targetLanguage,
		minFieldLength: minFieldLength,
	}
}

// TranslateResults returns a copy of rs where long, non-Spanish translatable fields are translated.
// Records with at least one changed field are flagged as translated.
func (a *Aggregator) TranslateResults(ctx context.Context, rs *entities.ResultSet) *entities.ResultSet {
	out := entities.NewResultSet()
	for _, entry := range rs.Entries() {
		record := entry.Record.Clone()
		changed := false

		for _, field := range TranslatableFields {
			value, ok := record.Text(field)
			if !ok || textutil.Len(value) <= a.minFieldLength || a.translator.IsSpanish(value) {
				continue
			}
			translated := a.translator.Translate(ctx, value, a.targetLanguage)
			if textutil.Len(translated) > a.minFieldLength && translated != value {
				record.Fields[field] = translated
				changed = true
			}
		}

		if changed {
			record.Translated = true
		}
		out.Add(entry.Source, record)
	}
	return out
}

// Categorize groups facts per category. For each record and category the first
// synonym holding a value wins, lists joined with ", "; it is kept only when long enough.
func Categorize(rs *entities.ResultSet) map[entities.Category][]entities.Fact {
	facts := make(map[entities.Category][]entities.Fact)
	for _, entry := range rs.Entries() {
		for _, def := range entities.Categories {
			for _, field := range def.Synonyms {
				if !entry.Record.Has(field) {
					continue
				}
				value, ok := entry.Record.Text(field)
				if !ok {
					value = strings.Join(entry.Record.Strings(field), ", ")
				}
				if value == "" {
					continue
				}
				if textutil.Len(value) > MinFactLength {
					facts[def.Key] = append(facts[def.Key], entities.Fact{
						Source:        entry.Source,
						DisplaySource: entry.DisplaySource(),
						Text:          value,
					})
				}
				break
			}
		}
	}
	return facts
}

// ResolveName returns the first record name in source order, or the title-cased query
func ResolveName(rs *entities.ResultSet, query string) string {
	for _, entry := range rs.Entries() {
		if name := entry.Record.Name(); name != "" {
			return name
		}
	}
	return textutil.Title(query)
}

// ExtractURLs returns up to limit reference links, in source order
func ExtractURLs(rs *entities.ResultSet, limit int) []entities.URLRef {
	var refs []entities.URLRef
	for _, entry := range rs.Entries() {
		if len(refs) >= limit {
			break
		}
		if u := entry.Record.URL(); u != "" {
			refs = append(refs, entities.URLRef{Source: entry.Source, URL: u})
		}
	}
	return refs
}
