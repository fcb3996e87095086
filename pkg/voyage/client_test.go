package voyage_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"multilingual-support/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	var requests atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Provided API key is invalid."}`))
			return
		}
		if r.URL.Path != "/embeddings" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Model != "custom-model" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(req.Input) > 0 && req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Reply in reverse order; the client must reorder by index.
		var data []string
		for i := len(req.Input) - 1; i >= 0; i-- {
			data = append(data, fmt.Sprintf(`{"embedding": [%d, 0.5], "index": %d}`, len(req.Input[i]), i))
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"object": "list", "data": [%s]}`, strings.Join(data, ","))
	}))
	defer ts.Close()

	client, _ := voyage.New("test-voyage-key")
	client.WithBaseURL(ts.URL + "/").WithModel("custom-model")

	t.Run("Success Flow", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"a", "bbb"}, voyage.InputQuery)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 2 || len(emb[0]) != 2 {
			t.Fatalf("expected 2 embeddings with 2 dims, got %v", emb)
		}
		if emb[0][0] != 1 || emb[1][0] != 3 {
			t.Errorf("embeddings not in input order: %v", emb)
		}
	})

	t.Run("Batches Large Inputs", func(t *testing.T) {
		requests.Store(0)
		texts := make([]string, voyage.MaxBatch+5)
		for i := range texts {
			texts[i] = strings.Repeat("x", i%7+1)
		}
		emb, err := client.Embed(context.Background(), texts, voyage.InputDocument)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != len(texts) {
			t.Fatalf("expected %d embeddings, got %d", len(texts), len(emb))
		}
		if got := requests.Load(); got != 2 {
			t.Errorf("expected 2 requests, got %d", got)
		}
		if emb[len(texts)-1][0] != float32(len(texts[len(texts)-1])) {
			t.Errorf("last embedding out of order")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		_, err := client.Embed(context.Background(), nil, voyage.InputQuery)
		if !errors.Is(err, voyage.ErrNoInput) {
			t.Fatalf("expected ErrNoInput, got %v", err)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Embed(context.Background(), []string{"cause_500"}, voyage.InputQuery)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New("bad-key")
		badClient.WithBaseURL(ts.URL)
		_, err := badClient.Embed(context.Background(), []string{"Hello world"}, voyage.InputQuery)
		if err == nil || !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid") {
			t.Fatalf("expected 401 error with detail, got %v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := voyage.New(""); !errors.Is(err, voyage.ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})
}
