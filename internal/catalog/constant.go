package catalog

// Table file base names, resolved inside the catalog directory.
const (
	ExemplarsFile = "intents"
	ResponsesFile = "responses"
	VariantsFile  = "variants"
)

var tableExtensions = []string{".yaml", ".yml", ".json"}

const (
	exemplarsHeader = `Intent exemplar table.
Each key is an intent; its value is the ordered list of example phrases.
Declaration order matters: earlier intents win classification ties.
The phrases also feed the keyword heuristic used when no embedding model is available.`

	responsesHeader = `Response template table.
Each key is an intent; its value maps language codes to the literal reply.
The "unknown" intent must define an "en" reply: it is the final fallback.
Languages missing here are translated from "en" on demand.`

	variantsHeader = `Response variant table.
Each key is an intent; its value lists English paraphrases.
When the reply language is "en" one of them is chosen instead of the single template.`
)
