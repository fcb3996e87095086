package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"multilingual-support/pkg/log"
)

// Load reads the exemplar, response and variant tables from dir.
// A missing table is created with its documented default; a malformed one
// is an error wrapping ErrMalformedTable.
func Load(ctx context.Context, dir string, l log.Logger) (Catalog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Catalog{}, fmt.Errorf("create catalog dir: %w", err)
	}

	var cat Catalog

	exemplars, err := loadTable(ctx, l, dir, ExemplarsFile,
		func() ([]byte, error) { return encodeExemplars(DefaultExemplars()) })
	if err != nil {
		return Catalog{}, err
	}
	if cat.Exemplars, err = parseExemplars(exemplars.path, exemplars.data); err != nil {
		return Catalog{}, err
	}

	responses, err := loadTable(ctx, l, dir, ResponsesFile,
		func() ([]byte, error) { return encodeResponses(DefaultResponses()) })
	if err != nil {
		return Catalog{}, err
	}
	if cat.Responses, err = parseResponses(responses.path, responses.data); err != nil {
		return Catalog{}, err
	}

	variants, err := loadTable(ctx, l, dir, VariantsFile,
		func() ([]byte, error) {
			return encodeVariants(DefaultVariants(), DefaultResponses().Intents)
		})
	if err != nil {
		return Catalog{}, err
	}
	if cat.Variants, err = parseVariants(variants.path, variants.data); err != nil {
		return Catalog{}, err
	}

	l.Infof(ctx, "internal.catalog.Load: %d intents, %d response intents, %d languages",
		len(cat.Exemplars.Intents), len(cat.Responses.Intents), len(cat.Responses.Languages()))
	return cat, nil
}

type tableFile struct {
	path string
	data []byte
}

// loadTable finds base under dir with any accepted extension, or writes
// the default produced by def as base.yaml.
func loadTable(ctx context.Context, l log.Logger, dir, base string, def func() ([]byte, error)) (tableFile, error) {
	for _, ext := range tableExtensions {
		path := filepath.Join(dir, base+ext)
		data, err := os.ReadFile(path)
		if err == nil {
			return tableFile{path: path, data: data}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return tableFile{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	data, err := def()
	if err != nil {
		return tableFile{}, fmt.Errorf("encode default %s: %w", base, err)
	}
	path := filepath.Join(dir, base+tableExtensions[0])
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return tableFile{}, fmt.Errorf("write %s: %w", path, err)
	}
	l.Infof(ctx, "internal.catalog.Load: %s not found, wrote defaults to %s", base, path)
	return tableFile{path: path, data: data}, nil
}
