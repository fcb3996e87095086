package translation

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"multilingual-support/pkg/log"
)

// entry is either in flight (ready open), a handle, or a tombstone (err set).
type entry struct {
	ready chan struct{}
	tr    Translator
	err   error
}

// Cache lazily loads one Translator per Pair and keeps it for the process
// lifetime. Concurrent callers for the same missing pair share one load;
// failed loads are tombstoned and never retried.
type Cache struct {
	l       log.Logger
	loader  Loader
	timeout time.Duration

	mu      sync.RWMutex
	entries map[Pair]*entry
}

var _ Resolver = (*Cache)(nil)

// NewCache creates an empty cache backed by loader.
func NewCache(l log.Logger, loader Loader, timeout time.Duration) *Cache {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &Cache{
		l:       l,
		loader:  loader,
		timeout: timeout,
		entries: make(map[Pair]*entry),
	}
}

// Resolve returns the Translator of pair, loading it on first use.
// Errors from a tombstoned pair match ErrUnresolvable.
func (c *Cache) Resolve(ctx context.Context, pair Pair) (Translator, error) {
	c.mu.RLock()
	e, ok := c.entries[pair]
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		e, ok = c.entries[pair]
		if !ok {
			e = &entry{ready: make(chan struct{})}
			c.entries[pair] = e
		}
		c.mu.Unlock()

		if !ok {
			c.load(ctx, pair, e)
		}
	}

	select {
	case <-e.ready:
	default:
		select {
		case <-e.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if e.err != nil {
		return nil, e.err
	}
	return e.tr, nil
}

// Translate resolves pair and translates text with it.
func (c *Cache) Translate(ctx context.Context, pair Pair, text string) (string, error) {
	tr, err := c.Resolve(ctx, pair)
	if err != nil {
		return "", err
	}
	out, err := tr.Translate(ctx, text)
	if err != nil {
		return "", fmt.Errorf("translate %s: %w", pair, err)
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("translate %s: %w", pair, ErrEmptyResult)
	}
	return out, nil
}

// load runs outside the lock. The load is detached from the caller's
// cancellation since its result is shared by every later caller.
func (c *Cache) load(ctx context.Context, pair Pair, e *entry) {
	defer close(e.ready)
	defer func() {
		if r := recover(); r != nil {
			c.l.Errorf(ctx, "internal.translation.Cache.load: %s panic: %v\n%s", pair, r, debug.Stack())
			e.tr, e.err = nil, &LoadError{Pair: pair, Err: fmt.Errorf("loader panic: %v", r)}
		}
	}()

	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	var (
		tr  Translator
		err error
	)
	switch {
	case c.loader == nil:
		err = ErrNoLoaders
	case pair.Source == pair.Target:
		err = ErrSameLanguage
	default:
		tr, err = c.loader.Load(loadCtx, pair)
	}
	if err == nil && tr == nil {
		err = fmt.Errorf("%s returned no translator", c.loader.Name())
	}
	if err != nil {
		e.err = asLoadError(pair, err)
		c.l.Warnf(ctx, "internal.translation.Cache.load: %v", e.err)
		return
	}

	e.tr = tr
	c.l.Infof(ctx, "internal.translation.Cache.load: %s ready", pair)
}

// Prewarm resolves (source, target) for every target concurrently.
// Failures only tombstone their pair.
func (c *Cache) Prewarm(ctx context.Context, source string, targets []string) Stats {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prewarmConcurrency)
	for _, target := range targets {
		pair := Pair{Source: source, Target: target}
		g.Go(func() error {
			_, _ = c.Resolve(gctx, pair)
			return nil
		})
	}
	_ = g.Wait()

	stats := c.Stats()
	c.l.Infof(ctx, "internal.translation.Cache.Prewarm: %d loaded, %d tombstoned", stats.Loaded, stats.Tombstoned)
	return stats
}

// Stats counts entries by state.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var s Stats
	for _, e := range c.entries {
		select {
		case <-e.ready:
			if e.err != nil {
				s.Tombstoned++
			} else {
				s.Loaded++
			}
		default:
			s.InFlight++
		}
	}
	return s
}
