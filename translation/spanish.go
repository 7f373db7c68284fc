package translation

import (
	"strings"

	"github.com/giygas/medicamentos-bot/textutil"
)

var spanishStopWords = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {}, "de": {}, "que": {}, "y": {}, "en": {}, "un": {},
	"una": {}, "con": {}, "por": {}, "para": {}, "es": {}, "son": {}, "del": {}, "se": {},
}

// IsSpanish reports whether the share of Spanish stop-words among the
// whitespace-delimited tokens of text exceeds threshold
func IsSpanish(text string, threshold float64) bool {
	words := strings.Fields(textutil.Lower(text))
	if len(words) == 0 {
		return false
	}

	count := 0
	for _, w := range words {
		if _, ok := spanishStopWords[w]; ok {
			count++
		}
	}
	return float64(count)/float64(len(words)) > threshold
}
