package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"multilingual-support/internal/catalog"
	"multilingual-support/pkg/log"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Tables Are Created With Defaults", func(t *testing.T) {
		dir := t.TempDir()
		cat, err := catalog.Load(ctx, dir, log.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, name := range []string{"intents.yaml", "responses.yaml", "variants.yaml"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("expected %s to be written: %v", name, err)
			}
		}
		if !reflect.DeepEqual(cat.Exemplars.Intents, catalog.DefaultExemplars().Intents) {
			t.Errorf("unexpected intent order: %v", cat.Exemplars.Intents)
		}
		if text, ok := cat.Responses.Templates[catalog.UnknownIntent].Get("en"); !ok || text == "" {
			t.Errorf("expected unknown.en in default responses")
		}

		// Second load reads the files back unchanged.
		again, err := catalog.Load(ctx, dir, log.NewNop())
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if !reflect.DeepEqual(cat, again) {
			t.Errorf("reload differs from first load")
		}
	})

	t.Run("Declaration Order Is Preserved", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "intents.yaml", "zeta: [z]\nalpha: [a]\nmid: [m]\n")
		writeFile(t, dir, "responses.yaml", "unknown:\n  fr: Pardon?\n  en: Sorry?\nzeta:\n  de: Z\n")
		cat, err := catalog.Load(ctx, dir, log.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(cat.Exemplars.Intents, want) {
			t.Errorf("expected %v, got %v", want, cat.Exemplars.Intents)
		}
		if want := []string{"fr", "en"}; !reflect.DeepEqual(cat.Responses.Templates["unknown"].Languages, want) {
			t.Errorf("expected %v, got %v", want, cat.Responses.Templates["unknown"].Languages)
		}
		if want := []string{"fr", "en", "de"}; !reflect.DeepEqual(cat.Responses.Languages(), want) {
			t.Errorf("expected language union %v, got %v", want, cat.Responses.Languages())
		}
	})

	t.Run("JSON Tables Are Accepted", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "intents.json", `{"greeting": ["hello", "hi"]}`)
		writeFile(t, dir, "responses.json", `{"unknown": {"en": "Sorry?"}, "greeting": {"en": "Hi!", "es": "¡Hola!"}}`)
		writeFile(t, dir, "variants.json", `{"greeting": ["Hi!", "Hey!"]}`)
		cat, err := catalog.Load(ctx, dir, log.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cat.Exemplars.Examples["greeting"]; len(got) != 2 {
			t.Errorf("expected 2 exemplars, got %v", got)
		}
		if got := cat.Variants["greeting"]; len(got) != 2 {
			t.Errorf("expected 2 variants, got %v", got)
		}
		if _, err := os.Stat(filepath.Join(dir, "intents.yaml")); err == nil {
			t.Errorf("defaults must not be written when a JSON table exists")
		}
	})

	t.Run("Malformed Tables", func(t *testing.T) {
		cases := []struct {
			name      string
			intents   string
			responses string
			want      string
		}{
			{"Top Level List", "- a\n- b\n", "", "top level must be a mapping"},
			{"Empty Exemplar List", "greeting: []\n", "", "must not be empty"},
			{"Exemplar Not A List", "greeting: hello\n", "", "expected a list"},
			{"Duplicate Intent", "greeting: [hi]\ngreeting: [hello]\n", "", "duplicate key"},
			{"Null Exemplar", "greeting: [~]\n", "", "expected a string"},
			{"Unknown Missing", "greeting: [hi]\n", "greeting:\n  en: Hi\n", `missing "unknown"`},
			{"Unknown Without English", "greeting: [hi]\n", "unknown:\n  es: ¿Qué?\n", `must define "en"`},
			{"Uppercase Language", "greeting: [hi]\n", "unknown:\n  EN: Sorry\n", "must be lowercase"},
			{"Empty Template", "greeting: [hi]\n", "unknown:\n  en: \"\"\n", "empty string"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				dir := t.TempDir()
				writeFile(t, dir, "intents.yaml", tc.intents)
				if tc.responses != "" {
					writeFile(t, dir, "responses.yaml", tc.responses)
				}
				_, err := catalog.Load(ctx, dir, log.NewNop())
				if !errors.Is(err, catalog.ErrMalformedTable) {
					t.Fatalf("expected ErrMalformedTable, got %v", err)
				}
				if !strings.Contains(err.Error(), tc.want) {
					t.Errorf("expected error to mention %q, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestDefaults(t *testing.T) {
	exemplars := catalog.DefaultExemplars()
	responses := catalog.DefaultResponses()
	variants := catalog.DefaultVariants()

	for _, intent := range exemplars.Intents {
		if len(exemplars.Examples[intent]) == 0 {
			t.Errorf("intent %s has no exemplars", intent)
		}
		if _, ok := responses.Lookup(intent); !ok {
			t.Errorf("intent %s has no response templates", intent)
		}
	}

	for intent, pool := range variants {
		tmpl, ok := responses.Lookup(intent)
		if !ok {
			t.Errorf("variants for undeclared intent %s", intent)
			continue
		}
		en, _ := tmpl.Get(catalog.CanonicalLanguage)
		if pool[0] != en {
			t.Errorf("first %s variant should equal the en template", intent)
		}
	}
}
