package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Local resolves artifacts from a cache directory and, on a miss, from an
// optional remote Fetcher. Fetched artifacts are written to the cache.
type Local struct {
	dir     string
	fetcher Fetcher
}

var _ Resolver = (*Local)(nil)

// NewLocal creates a resolver rooted at dir. fetcher may be nil.
func NewLocal(dir string, fetcher Fetcher) *Local {
	return &Local{dir: dir, fetcher: fetcher}
}

func (r *Local) Resolve(ctx context.Context, name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(r.dir, name)
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	if r.fetcher == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	data, err = r.fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := r.store(path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// store writes through a temp file so concurrent readers never see a partial artifact.
func (r *Local) store(path string, data []byte) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	tmp, err := os.CreateTemp(r.dir, ".fetch-*")
	if err != nil {
		return fmt.Errorf("cache artifact: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cache artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cache artifact: %w", err)
	}
	return nil
}

func validName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
