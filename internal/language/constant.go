package language

import "github.com/pemistahl/lingua-go"

const (
	// DefaultLanguage is returned when there is nothing to detect or no model.
	DefaultLanguage = "en"

	// DegradedConfidence is reported by the fallback path.
	DegradedConfidence = 0.5
)

// DefaultSupported is the closed label set used when none is configured.
var DefaultSupported = []string{"en", "es", "fr", "de", "it", "pt"}

// linguaLanguages maps ISO 639-1 codes to lingua models.
var linguaLanguages = map[string]lingua.Language{
	"ar": lingua.Arabic,
	"cs": lingua.Czech,
	"da": lingua.Danish,
	"de": lingua.German,
	"el": lingua.Greek,
	"en": lingua.English,
	"es": lingua.Spanish,
	"fi": lingua.Finnish,
	"fr": lingua.French,
	"he": lingua.Hebrew,
	"hi": lingua.Hindi,
	"hu": lingua.Hungarian,
	"id": lingua.Indonesian,
	"it": lingua.Italian,
	"ja": lingua.Japanese,
	"ko": lingua.Korean,
	"nl": lingua.Dutch,
	"pl": lingua.Polish,
	"pt": lingua.Portuguese,
	"ro": lingua.Romanian,
	"ru": lingua.Russian,
	"sv": lingua.Swedish,
	"th": lingua.Thai,
	"tr": lingua.Turkish,
	"uk": lingua.Ukrainian,
	"vi": lingua.Vietnamese,
	"zh": lingua.Chinese,
}
