package translation_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"multilingual-support/internal/translation"
	"multilingual-support/pkg/artifact"
)

func TestGlossary(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "en-nl.yaml"), []byte("\"Hello!  How are you?\": \"Hallo! Hoe gaat het?\"\nBye: Doei\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "en-sv.yaml"), []byte("- not\n- a mapping\n"), 0o644)

	g := translation.NewGlossary(artifact.NewLocal(dir, nil))

	t.Run("Exact Phrase", func(t *testing.T) {
		tr, err := g.Load(ctx, translation.Pair{Source: "en", Target: "nl"})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		out, err := tr.Translate(ctx, " Hello! How are you? ")
		if err != nil || out != "Hallo! Hoe gaat het?" {
			t.Errorf("unexpected translation %q, %v", out, err)
		}
		if _, err := tr.Translate(ctx, "Unlisted sentence"); !errors.Is(err, translation.ErrNoEntry) {
			t.Errorf("expected ErrNoEntry, got %v", err)
		}
	})

	t.Run("Missing Artifact", func(t *testing.T) {
		_, err := g.Load(ctx, translation.Pair{Source: "en", Target: "pl"})
		if !errors.Is(err, artifact.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Malformed Artifact", func(t *testing.T) {
		if _, err := g.Load(ctx, translation.Pair{Source: "en", Target: "sv"}); err == nil {
			t.Errorf("expected parse error")
		}
	})
}

func TestGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("Supported Pair", func(t *testing.T) {
		client := &fakeGoogle{langs: []string{"en", "ja", "ko"}}
		g := translation.NewGoogle(client)
		tr, err := g.Load(ctx, translation.Pair{Source: "en", Target: "ja"})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		out, err := tr.Translate(ctx, "Hello")
		if err != nil || out != "mt(en->ja): Hello" {
			t.Errorf("unexpected translation %q, %v", out, err)
		}
		if _, err := g.Load(ctx, translation.Pair{Source: "en", Target: "ko"}); err != nil {
			t.Fatalf("load: %v", err)
		}
		if client.langCalls.Load() != 1 {
			t.Errorf("expected language list fetched once, got %d", client.langCalls.Load())
		}
	})

	t.Run("Unsupported Pair", func(t *testing.T) {
		g := translation.NewGoogle(&fakeGoogle{langs: []string{"en", "ja"}})
		_, err := g.Load(ctx, translation.Pair{Source: "en", Target: "tlh"})
		if !errors.Is(err, translation.ErrUnsupportedPair) {
			t.Errorf("expected ErrUnsupportedPair, got %v", err)
		}
	})

	t.Run("Language List Failure Is Retried", func(t *testing.T) {
		client := &fakeGoogle{langErr: errors.New("quota exceeded")}
		g := translation.NewGoogle(client)
		if _, err := g.Load(ctx, translation.Pair{Source: "en", Target: "ja"}); err == nil {
			t.Fatalf("expected error")
		}
		client.langErr, client.langs = nil, []string{"en", "ja"}
		if _, err := g.Load(ctx, translation.Pair{Source: "en", Target: "ja"}); err != nil {
			t.Errorf("expected recovery after transient failure, got %v", err)
		}
	})
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	pair := translation.Pair{Source: "en", Target: "nl"}

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "en-nl.yaml"), []byte("Bye: Doei\n"), 0o644)
	glossary := translation.NewGlossary(artifact.NewLocal(dir, nil))

	t.Run("Glossary First Then Machine Translation", func(t *testing.T) {
		client := &fakeGoogle{langs: []string{"en", "nl"}}
		chain := translation.NewChain(nopLogger(), glossary, translation.NewGoogle(client))
		tr, err := chain.Load(ctx, pair)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if out, _ := tr.Translate(ctx, "Bye"); out != "Doei" {
			t.Errorf("expected glossary hit, got %q", out)
		}
		if client.calls.Load() != 0 {
			t.Errorf("glossary hit must not call the machine translator")
		}
		if out, _ := tr.Translate(ctx, "Thanks"); out != "mt(en->nl): Thanks" {
			t.Errorf("expected machine translation, got %q", out)
		}
	})

	t.Run("Falls Through Failed Loaders", func(t *testing.T) {
		first := &countingLoader{name: "first", fail: map[string]bool{"nl": true}}
		second := &countingLoader{name: "second"}
		tr, err := translation.NewChain(nopLogger(), first, second).Load(ctx, pair)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if out, _ := tr.Translate(ctx, "hi"); out != "[nl] hi" {
			t.Errorf("unexpected translation %q", out)
		}
	})

	t.Run("All Loaders Fail", func(t *testing.T) {
		first := &countingLoader{fail: map[string]bool{"nl": true}}
		_, err := translation.NewChain(nopLogger(), first, translation.NewGoogle(&fakeGoogle{langs: []string{"en"}})).Load(ctx, pair)
		if !errors.Is(err, translation.ErrUnresolvable) || !errors.Is(err, translation.ErrUnsupportedPair) {
			t.Errorf("expected joined unresolvable error, got %v", err)
		}
	})

	t.Run("Empty Chain", func(t *testing.T) {
		if _, err := translation.NewChain(nopLogger()).Load(ctx, pair); !errors.Is(err, translation.ErrNoLoaders) {
			t.Errorf("expected ErrNoLoaders, got %v", err)
		}
	})
}
