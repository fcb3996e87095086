package catalog

// UnknownIntent is the sentinel intent used when nothing else applies.
// It always exists conceptually, even if a table omits it.
const UnknownIntent = "unknown"

// CanonicalLanguage is the authoring language of every table.
const CanonicalLanguage = "en"

// ExemplarSet maps intents to their exemplar utterances.
// Intents keeps the declaration order, which is the classification tie-break order.
type ExemplarSet struct {
	Intents  []string
	Examples map[string][]string
}

// Has reports whether intent is declared.
func (s ExemplarSet) Has(intent string) bool {
	_, ok := s.Examples[intent]
	return ok
}

// Corpus returns every exemplar in declaration order.
func (s ExemplarSet) Corpus() []string {
	var out []string
	for _, intent := range s.Intents {
		out = append(out, s.Examples[intent]...)
	}
	return out
}

// Templates holds the localized texts of one intent.
// Languages keeps the declaration order.
type Templates struct {
	Languages []string
	Text      map[string]string
}

// Get returns the template for language.
func (t Templates) Get(language string) (string, bool) {
	text, ok := t.Text[language]
	return text, ok
}

// First returns the template of the first declared language.
func (t Templates) First() (string, bool) {
	if len(t.Languages) == 0 {
		return "", false
	}
	return t.Text[t.Languages[0]], true
}

// ResponseTable maps intents to their localized templates.
type ResponseTable struct {
	Intents   []string
	Templates map[string]Templates
}

// Lookup returns the templates of intent.
func (r ResponseTable) Lookup(intent string) (Templates, bool) {
	t, ok := r.Templates[intent]
	return t, ok
}

// Languages returns the ordered union of every language key in the table.
func (r ResponseTable) Languages() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, intent := range r.Intents {
		for _, lang := range r.Templates[intent].Languages {
			if _, ok := seen[lang]; ok {
				continue
			}
			seen[lang] = struct{}{}
			out = append(out, lang)
		}
	}
	return out
}

// VariantTable maps intents to paraphrase variants written in CanonicalLanguage.
type VariantTable map[string][]string

// Catalog bundles the three tables loaded at startup. It is read-only after Load.
type Catalog struct {
	Exemplars ExemplarSet
	Responses ResponseTable
	Variants  VariantTable
}
