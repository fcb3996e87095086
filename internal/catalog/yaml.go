package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// rootMapping decodes data and returns its top-level mapping node.
// An empty document yields an empty mapping.
func rootMapping(file string, data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedTable, file, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &yaml.Node{Kind: yaml.MappingNode}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s: top level must be a mapping", ErrMalformedTable, file)
	}
	return root, nil
}

// pairs walks a mapping node in declaration order and rejects empty or duplicated keys.
func pairs(file string, m *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	seen := make(map[string]struct{}, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: %s: line %d: key must be a string", ErrMalformedTable, file, k.Line)
		}
		key := strings.TrimSpace(k.Value)
		if key == "" {
			return fmt.Errorf("%w: %s: line %d: empty key", ErrMalformedTable, file, k.Line)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s: line %d: duplicate key %q", ErrMalformedTable, file, k.Line, key)
		}
		seen[key] = struct{}{}
		if err := fn(key, v); err != nil {
			return err
		}
	}
	return nil
}

func scalarText(file, where string, n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", fmt.Errorf("%w: %s: %s: line %d: expected a string", ErrMalformedTable, file, where, n.Line)
	}
	if strings.TrimSpace(n.Value) == "" {
		return "", fmt.Errorf("%w: %s: %s: line %d: empty string", ErrMalformedTable, file, where, n.Line)
	}
	return n.Value, nil
}

func stringList(file, key string, n *yaml.Node) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s: %s: line %d: expected a list", ErrMalformedTable, file, key, n.Line)
	}
	if len(n.Content) == 0 {
		return nil, fmt.Errorf("%w: %s: %s: list must not be empty", ErrMalformedTable, file, key)
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		text, err := scalarText(file, key, item)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}

func parseExemplars(file string, data []byte) (ExemplarSet, error) {
	root, err := rootMapping(file, data)
	if err != nil {
		return ExemplarSet{}, err
	}
	set := ExemplarSet{Examples: make(map[string][]string)}
	err = pairs(file, root, func(intent string, v *yaml.Node) error {
		examples, err := stringList(file, intent, v)
		if err != nil {
			return err
		}
		set.Intents = append(set.Intents, intent)
		set.Examples[intent] = examples
		return nil
	})
	if err != nil {
		return ExemplarSet{}, err
	}
	return set, nil
}

func parseResponses(file string, data []byte) (ResponseTable, error) {
	root, err := rootMapping(file, data)
	if err != nil {
		return ResponseTable{}, err
	}
	table := ResponseTable{Templates: make(map[string]Templates)}
	err = pairs(file, root, func(intent string, v *yaml.Node) error {
		if v.Kind != yaml.MappingNode {
			return fmt.Errorf("%w: %s: %s: line %d: expected a language mapping", ErrMalformedTable, file, intent, v.Line)
		}
		if len(v.Content) == 0 {
			return fmt.Errorf("%w: %s: %s: no templates", ErrMalformedTable, file, intent)
		}
		t := Templates{Text: make(map[string]string)}
		err := pairs(file, v, func(lang string, tv *yaml.Node) error {
			if lang != strings.ToLower(lang) {
				return fmt.Errorf("%w: %s: %s: language code %q must be lowercase", ErrMalformedTable, file, intent, lang)
			}
			text, err := scalarText(file, intent+"."+lang, tv)
			if err != nil {
				return err
			}
			t.Languages = append(t.Languages, lang)
			t.Text[lang] = text
			return nil
		})
		if err != nil {
			return err
		}
		table.Intents = append(table.Intents, intent)
		table.Templates[intent] = t
		return nil
	})
	if err != nil {
		return ResponseTable{}, err
	}

	unknown, ok := table.Templates[UnknownIntent]
	if !ok {
		return ResponseTable{}, fmt.Errorf("%w: %s: missing %q intent", ErrMalformedTable, file, UnknownIntent)
	}
	if _, ok := unknown.Get(CanonicalLanguage); !ok {
		return ResponseTable{}, fmt.Errorf("%w: %s: %q intent must define %q", ErrMalformedTable, file, UnknownIntent, CanonicalLanguage)
	}
	return table, nil
}

func parseVariants(file string, data []byte) (VariantTable, error) {
	root, err := rootMapping(file, data)
	if err != nil {
		return nil, err
	}
	table := make(VariantTable)
	err = pairs(file, root, func(intent string, v *yaml.Node) error {
		variants, err := stringList(file, intent, v)
		if err != nil {
			return err
		}
		table[intent] = variants
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func listNode(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, item := range items {
		n.Content = append(n.Content, stringNode(item))
	}
	return n
}

func encodeDocument(header string, root *yaml.Node) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.DocumentNode, HeadComment: commentBlock(header), Content: []*yaml.Node{root}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func commentBlock(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "# " + line
	}
	return strings.Join(lines, "\n")
}

func encodeExemplars(set ExemplarSet) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, intent := range set.Intents {
		root.Content = append(root.Content, stringNode(intent), listNode(set.Examples[intent]))
	}
	return encodeDocument(exemplarsHeader, root)
}

func encodeResponses(table ResponseTable) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, intent := range table.Intents {
		t := table.Templates[intent]
		langs := &yaml.Node{Kind: yaml.MappingNode}
		for _, lang := range t.Languages {
			langs.Content = append(langs.Content, stringNode(lang), stringNode(t.Text[lang]))
		}
		root.Content = append(root.Content, stringNode(intent), langs)
	}
	return encodeDocument(responsesHeader, root)
}

// encodeVariants writes intents in the order given, since VariantTable is unordered.
func encodeVariants(table VariantTable, order []string) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, intent := range order {
		variants, ok := table[intent]
		if !ok {
			continue
		}
		root.Content = append(root.Content, stringNode(intent), listNode(variants))
	}
	return encodeDocument(variantsHeader, root)
}
