package intent

const (
	// DefaultThreshold is the minimum score to accept a classification.
	DefaultThreshold = 0.5

	// MaxConfidence caps every reported confidence.
	MaxConfidence = 0.95

	keywordBase        = 0.5
	keywordStep        = 0.1
	partialMatchWeight = 0.5

	// Inputs with at most this many whitespace tokens and no keyword hit
	// are taken as greetings.
	shortInputTokens     = 3
	shortInputIntent     = "greeting"
	shortInputConfidence = 0.6
)

// keywordLists is the fixed vocabulary of the heuristic, merged with the
// exemplar phrases of the same intent.
var keywordLists = map[string][]string{
	"greeting": {
		"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening",
		"hola", "bonjour", "ciao", "hallo", "howdy", "what's up", "sup",
	},
	"farewell": {
		"goodbye", "bye", "see you", "farewell", "adios", "au revoir", "cya", "take care",
		"have a nice day", "until next time", "talk to you later", "ttyl",
	},
	"help": {
		"help", "assist", "support", "guidance", "need help", "can you help", "how do i",
		"how to", "having trouble", "problem with", "issue with", "question about", "confused about",
	},
	"product_info": {
		"product", "service", "offer", "sell", "feature", "plan",
		"subscription", "package", "demo", "information about", "tell me about",
		"what is", "how does", "how do you", "what are your",
	},
	"pricing": {
		"price", "cost", "pricing", "fee", "subscription cost", "how much", "discount",
		"trial", "free trial", "payment", "pay", "affordable", "expensive", "cheap", "premium",
	},
	"contact": {
		"contact", "email", "phone", "call", "reach", "talk to", "speak with", "chat with",
		"customer service", "representative", "agent", "human", "person", "manager",
	},
	"technical_support": {
		"technical", "tech support", "bug", "error", "issue", "problem", "not working",
		"broken", "fix", "repair", "troubleshoot", "crash", "glitch", "malfunction",
	},
}
