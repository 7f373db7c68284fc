package sources

import (
	"strings"

	"github.com/giygas/medicamentos-bot/textutil"
)

// spanishToEnglish maps common Spanish medication names to the English names the APIs index
var spanishToEnglish = map[string]string{
	"aspirina":          "aspirin",
	"ibuprofeno":        "ibuprofen",
	"paracetamol":       "acetaminophen",
	"omeprazol":         "omeprazole",
	"amoxicilina":       "amoxicillin",
	"metformina":        "metformin",
	"atorvastatina":     "atorvastatin",
	"simvastatina":      "simvastatin",
	"losartan":          "losartan",
	"enalapril":         "enalapril",
	"diazepam":          "diazepam",
	"lorazepam":         "lorazepam",
	"warfarin":          "warfarin",
	"insulina":          "insulin",
	"prednisona":        "prednisone",
	"hidroclorotiazida": "hydrochlorothiazide",
}

// NormalizeName lower-cases and trims a medication name, then maps known Spanish names to English
func NormalizeName(name string) string {
	name = strings.TrimSpace(textutil.Lower(name))
	if english, ok := spanishToEnglish[name]; ok {
		return english
	}
	return name
}
