package formatter

import "fmt"

// Static bot messages, Telegram Markdown (v1)
const (
	WelcomeMessage = "🏥 *Bot de Medicamentos*\n\n" +
		"*✅ Funciona con APIs públicas:*\n" +
		"• Wikipedia API\n" +
		"• MedlinePlus API\n" +
		"• FDA API\n" +
		"• 🌐 Traducción automática\n\n" +
		"*💊 Escribe un medicamento:*\n\n" +
		"*En inglés (recomendado):*\n" +
		"`aspirin` `ibuprofen` `omeprazole`\n\n" +
		"*En español:*\n" +
		"`paracetamol` `diazepam` `warfarin`"

	HelpMessage = "🆘 *AYUDA*\n\n" +
		"*APIs usadas:*\n" +
		"✅ Wikipedia API\n" +
		"✅ MedlinePlus API\n" +
		"✅ FDA API\n" +
		"✅ DuckDuckGo API\n" +
		"✅ Traducción automática\n\n" +
		"*Ejemplos:*\n" +
		"• `aspirin`\n" +
		"• `ibuprofen`\n" +
		"• `omeprazole`\n" +
		"• `acetaminophen`\n\n" +
		"*Info que obtienes:*\n" +
		"• Descripción\n" +
		"• Indicaciones\n" +
		"• Dosis\n" +
		"• Efectos secundarios\n" +
		"• Contraindicaciones\n" +
		"• Precauciones\n\n" +
		"⚠️ *Solo para información.*"

	ExamplesMessage = "💊 *EJEMPLOS:*\n\n" +
		"*En inglés:*\n" +
		"• `aspirin` - Ácido acetilsalicílico\n" +
		"• `ibuprofen` - Ibuprofeno\n" +
		"• `omeprazole` - Omeprazol\n" +
		"• `amoxicillin` - Amoxicilina\n" +
		"• `metformin` - Metformina\n\n" +
		"*En español:*\n" +
		"• `paracetamol` - Paracetamol\n" +
		"• `diazepam` - Diazepam\n" +
		"• `warfarin` - Warfarina\n\n" +
		"💡 *Usa inglés para más información.*"

	SearchPromptMessage = "🔍 *Escribe un medicamento:*\n\n" +
		"*Ejemplos:*\n" +
		"`aspirin`\n" +
		"`ibuprofen`\n" +
		"`omeprazole`\n" +
		"`acetaminophen`"

	QuickExamplesMessage = "💊 *Ejemplos:*\n\n" +
		"*En inglés:*\n" +
		"• `aspirin`\n" +
		"• `ibuprofen`\n" +
		"• `omeprazole`\n\n" +
		"*En español:*\n" +
		"• `paracetamol`\n" +
		"• `diazepam`\n" +
		"• `warfarin`"

	QuickHelpMessage = "ℹ️ *Ayuda rápida:*\n\n" +
		"*Escribe en inglés:*\n" +
		"`aspirin` `ibuprofen` `omeprazole`\n\n" +
		"*Algunos en español:*\n" +
		"`paracetamol` `diazepam` `warfarin`\n\n" +
		"*Se traduce automáticamente*"

	BuscarUsageMessage = "🔍 *Uso:* /buscar [nombre]\n\n" +
		"*Ejemplos:*\n" +
		"`/buscar aspirin`\n" +
		"`/buscar ibuprofen`\n" +
		"`/buscar acetaminophen`"

	TooShortMessage = "❌ Escribe al menos 3 letras.\nEjemplo: `aspirin`"

	TooLongMessage = "❌ El nombre es demasiado largo.\nEjemplo: `aspirin`"

	InvalidQueryMessage = "❌ Usa solo letras, números y espacios.\nEjemplo: `aspirin`"
)

// NoResults is the message shown when no source answered
func NoResults(query string) string {
	return fmt.Sprintf("❌ *No se encontró información para:* `%s`\n\n"+
		"💡 *Prueba con:*\n"+
		"• `aspirin` (aspirina)\n"+
		"• `ibuprofen` (ibuprofeno)\n"+
		"• `acetaminophen` (paracetamol)\n"+
		"• `omeprazole` (omeprazol)\n\n"+
		"⚠️ *Nota:* Usa nombres en inglés para mejores resultados.", query)
}

// Searching is the placeholder posted while a query runs
func Searching(query string) string {
	return fmt.Sprintf("🔍 *Buscando:* `%s`\n🔄 Consultando APIs...", query)
}

// SearchError is shown when the pipeline failed unexpectedly
func SearchError(query string) string {
	return fmt.Sprintf("❌ *Error al buscar:* `%s`\n\n"+
		"💡 *Prueba con:*\n"+
		"• `aspirin`\n"+
		"• `ibuprofen`\n"+
		"• `acetaminophen`\n"+
		"• `omeprazole`", query)
}
