package translation

import (
	"context"
	"regexp"
)

type glossaryTerm struct {
	pattern *regexp.Regexp
	spanish string
}

// medicalTerms is applied in order
var medicalTerms = [][2]string{
	{"headache", "dolor de cabeza"},
	{"fever", "fiebre"},
	{"pain", "dolor"},
	{"infection", "infección"},
	{"inflammation", "inflamación"},
	{"swelling", "hinchazón"},
	{"nausea", "náuseas"},
	{"vomiting", "vómito"},
	{"diarrhea", "diarrea"},
	{"constipation", "estreñimiento"},
	{"take", "tomar"},
	{"use", "usar"},
	{"apply", "aplicar"},
	{"administer", "administrar"},
	{"dose", "dosis"},
	{"dosage", "posología"},
	{"daily", "diariamente"},
	{"weekly", "semanalmente"},
	{"monthly", "mensualmente"},
	{"tablet", "tableta"},
	{"capsule", "cápsula"},
	{"pill", "pastilla"},
	{"injection", "inyección"},
	{"cream", "crema"},
	{"ointment", "ungüento"},
	{"syrup", "jarabe"},
	{"drops", "gotas"},
	{"warning", "advertencia"},
	{"caution", "precaución"},
	{"danger", "peligro"},
	{"side effect", "efecto secundario"},
	{"contraindication", "contraindicación"},
	{"interaction", "interacción"},
	{"allergy", "alergia"},
	{"overdose", "sobredosis"},
	{"before meals", "antes de las comidas"},
	{"after meals", "después de las comidas"},
	{"with food", "con alimentos"},
	{"on empty stomach", "en ayunas"},
	{"morning", "mañana"},
	{"evening", "tarde"},
	{"night", "noche"},
	{"bedtime", "hora de acostarse"},
}

var glossaryTerms = compileGlossary(medicalTerms)

func compileGlossary(terms [][2]string) []glossaryTerm {
	compiled := make([]glossaryTerm, 0, len(terms))
	for _, t := range terms {
		compiled = append(compiled, glossaryTerm{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t[0]) + `\b`),
			spanish: t[1],
		})
	}
	return compiled
}

// Glossary substitutes common medical terms word by word. It works offline and never fails.
type Glossary struct {
	terms []glossaryTerm
}

// NewGlossary creates the static medical glossary backend
func NewGlossary() *Glossary {
	return &Glossary{terms: glossaryTerms}
}

func (g *Glossary) Name() string { return "glossary" }

// Translate replaces every whole-word, case-insensitive glossary term and leaves the rest untouched
func (g *Glossary) Translate(_ context.Context, text, _, _ string) (string, error) {
	return g.Replace(text), nil
}

// Replace applies the glossary to text
func (g *Glossary) Replace(text string) string {
	for _, t := range g.terms {
		text = t.pattern.ReplaceAllLiteralString(text, t.spanish)
	}
	return text
}
