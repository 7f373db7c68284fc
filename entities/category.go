package entities

// Category is a canonical bucket heterogeneous source fields are mapped into
type Category string

const (
	CategoryDescription       Category = "descripcion"
	CategoryIndications       Category = "indicaciones"
	CategoryDosage            Category = "dosis"
	CategorySideEffects       Category = "efectos_secundarios"
	CategoryContraindications Category = "contraindicaciones"
	CategoryPrecautions       Category = "precauciones"
	CategoryInteractions      Category = "interacciones"
	CategoryRoute             Category = "via_administracion"
	CategoryActiveSubstance   Category = "sustancia_activa"
)

// CategoryDef describes how a category is displayed and which raw fields feed it
type CategoryDef struct {
	Key      Category
	Title    string
	Synonyms []string // priority order
}

// Categories lists every category in display order
var Categories = []CategoryDef{
	{CategoryDescription, "📄 Descripción", []string{"descripcion", "description", "abstract", "resumen"}},
	{CategoryIndications, "🎯 Indicaciones", []string{"indicaciones", "indications", "usos", "indications_and_usage"}},
	{CategoryDosage, "💊 Dosis", []string{"dosis", "dosage", "posologia", "dosage_and_administration"}},
	{CategorySideEffects, "⚠️ Efectos secundarios", []string{"efectos_secundarios", "side_effects", "adverse_reactions"}},
	{CategoryContraindications, "🚫 Contraindicaciones", []string{"contraindicaciones", "contraindications"}},
	{CategoryPrecautions, "📝 Precauciones", []string{"precauciones", "warnings", "precautions"}},
	{CategoryInteractions, "🔀 Interacciones", []string{"interacciones", "interactions", "drug_interactions"}},
	{CategoryRoute, "🔄 Vía de administración", []string{"via_administracion", "route"}},
	{CategoryActiveSubstance, "🧪 Sustancia activa", []string{"sustancia_activa", "substance_name", "generic_name"}},
}

// Fact is a piece of text attributed to the source that provided it
type Fact struct {
	Source        string // result set key, used for deduplication
	DisplaySource string
	Text          string
}

// URLRef is a "more information" link
type URLRef struct {
	Source string
	URL    string
}
