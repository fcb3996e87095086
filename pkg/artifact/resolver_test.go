package artifact_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"multilingual-support/pkg/artifact"
)

func TestLocal(t *testing.T) {
	ctx := context.Background()

	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/en-es.yaml":
			w.Write([]byte("hello: hola\n"))
		case "/broken.yaml":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	t.Run("Local Hit", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "en-fr.yaml"), []byte("hello: bonjour\n"), 0o644)
		hits.Store(0)

		r := artifact.NewLocal(dir, artifact.NewHTTPFetcher(ts.URL))
		data, err := r.Resolve(ctx, "en-fr.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "hello: bonjour\n" {
			t.Errorf("unexpected data: %q", data)
		}
		if hits.Load() != 0 {
			t.Errorf("local hit must not call the remote")
		}
	})

	t.Run("Remote Fetch Is Cached", func(t *testing.T) {
		dir := t.TempDir()
		hits.Store(0)

		r := artifact.NewLocal(dir, artifact.NewHTTPFetcher(ts.URL+"/"))
		for i := 0; i < 2; i++ {
			data, err := r.Resolve(ctx, "en-es.yaml")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != "hello: hola\n" {
				t.Errorf("unexpected data: %q", data)
			}
		}
		if hits.Load() != 1 {
			t.Errorf("expected one remote fetch, got %d", hits.Load())
		}
		if _, err := os.Stat(filepath.Join(dir, "en-es.yaml")); err != nil {
			t.Errorf("expected artifact cached on disk: %v", err)
		}
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := artifact.NewLocal(t.TempDir(), nil).Resolve(ctx, "en-de.yaml")
		if !errors.Is(err, artifact.ErrNotFound) {
			t.Errorf("expected ErrNotFound without fetcher, got %v", err)
		}
		_, err = artifact.NewLocal(t.TempDir(), artifact.NewHTTPFetcher(ts.URL)).Resolve(ctx, "en-de.yaml")
		if !errors.Is(err, artifact.ErrNotFound) {
			t.Errorf("expected ErrNotFound from remote 404, got %v", err)
		}
	})

	t.Run("Remote Failure", func(t *testing.T) {
		_, err := artifact.NewLocal(t.TempDir(), artifact.NewHTTPFetcher(ts.URL)).Resolve(ctx, "broken.yaml")
		if err == nil || errors.Is(err, artifact.ErrNotFound) {
			t.Errorf("expected a non-404 fetch error, got %v", err)
		}
	})

	t.Run("Invalid Names", func(t *testing.T) {
		r := artifact.NewLocal(t.TempDir(), nil)
		for _, name := range []string{"", "../secret", "a/b.yaml", ".hidden"} {
			if _, err := r.Resolve(ctx, name); !errors.Is(err, artifact.ErrInvalidName) {
				t.Errorf("%q: expected ErrInvalidName, got %v", name, err)
			}
		}
	})
}
