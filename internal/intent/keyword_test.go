package intent_test

import (
	"context"
	"testing"

	"multilingual-support/internal/catalog"
	"multilingual-support/internal/intent"
)

func TestKeyword(t *testing.T) {
	ctx := context.Background()
	k := intent.NewKeyword(catalog.DefaultExemplars())

	cases := []struct {
		name       string
		text       string
		wantIntent string
		wantConf   float64
	}{
		{"Single Token No Match", "xyz", "greeting", 0.6},
		{"Empty", "", "greeting", 0.6},
		{"Greeting", "Hello", "greeting", 0.65},
		{"Spanish Help Beats Greeting", "Hola, necesito ayuda", "help", 0.75},
		{"Pricing", "How much does the premium plan cost?", "pricing", 0.9},
		{"Contact", "I want to speak with a human representative please", "contact", 0.9},
		{"Capped", "bug error crash glitch broken", "technical_support", 0.95},
		{"Long Unmatched", "quantum flux capacitors are wonderful today", "unknown", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := k.Classify(ctx, tc.text, intent.DefaultThreshold)
			if res.Intent != tc.wantIntent {
				t.Errorf("expected %s, got %s", tc.wantIntent, res.Intent)
			}
			if diff := res.Confidence - tc.wantConf; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("expected confidence %v, got %v", tc.wantConf, res.Confidence)
			}
			if res.Degraded {
				t.Errorf("keyword path alone does not mark results degraded")
			}
		})
	}

	t.Run("Prefix Counts Half", func(t *testing.T) {
		set := catalog.ExemplarSet{
			Intents:  []string{"custom"},
			Examples: map[string][]string{"custom": {"refund"}},
		}
		scores := intent.NewKeyword(set).Score("refunds")
		if scores[0] != 0.5 {
			t.Errorf("expected 0.5 for a prefix match, got %v", scores[0])
		}
		scores = intent.NewKeyword(set).Score("refund")
		if scores[0] != 1.5 {
			t.Errorf("expected 1.5 for a full word match, got %v", scores[0])
		}
	})

	t.Run("Tie Goes To Earlier Intent", func(t *testing.T) {
		set := catalog.ExemplarSet{
			Intents:  []string{"alpha", "beta"},
			Examples: map[string][]string{"alpha": {"shared"}, "beta": {"shared"}},
		}
		for i := 0; i < 5; i++ {
			res := intent.NewKeyword(set).Classify(ctx, "shared words here and more", intent.DefaultThreshold)
			if res.Intent != "alpha" {
				t.Fatalf("expected alpha on tie, got %s", res.Intent)
			}
		}
		set.Intents = []string{"beta", "alpha"}
		res := intent.NewKeyword(set).Classify(ctx, "shared words here and more", intent.DefaultThreshold)
		if res.Intent != "beta" {
			t.Errorf("expected beta when declared first, got %s", res.Intent)
		}
	})

	t.Run("Below Threshold Is Unknown", func(t *testing.T) {
		res := k.Classify(ctx, "Hello", 0.9)
		if res.Intent != catalog.UnknownIntent || res.Confidence < 0.649 || res.Confidence > 0.651 {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("Undeclared Intents Are Not Scored", func(t *testing.T) {
		set := catalog.ExemplarSet{
			Intents:  []string{"pricing"},
			Examples: map[string][]string{"pricing": {"how much"}},
		}
		res := intent.NewKeyword(set).Classify(ctx, "hello there my good friend", intent.DefaultThreshold)
		if res.Intent != catalog.UnknownIntent {
			t.Errorf("expected unknown, got %s", res.Intent)
		}
	})

	t.Run("Confidence Range", func(t *testing.T) {
		texts := []string{
			"help help help help help support assist guidance need help can you help",
			"bug error crash glitch broken not working",
			"a", "hi", "   ",
		}
		for _, text := range texts {
			res := k.Classify(ctx, text, intent.DefaultThreshold)
			if res.Confidence < 0 || res.Confidence > intent.MaxConfidence {
				t.Errorf("%q: confidence out of range: %v", text, res.Confidence)
			}
		}
	})
}
