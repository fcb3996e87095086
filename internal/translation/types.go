package translation

import (
	"errors"
	"fmt"
)

// Pair is an ordered (source, target) language combination.
type Pair struct {
	Source string
	Target string
}

func (p Pair) String() string {
	return p.Source + "->" + p.Target
}

// LoadError records why a Pair could not be resolved.
// It matches ErrUnresolvable with errors.Is.
type LoadError struct {
	Pair Pair
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("translation %s unresolvable: %v", e.Pair, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrUnresolvable
}

// Stats summarizes the cache content.
type Stats struct {
	Loaded     int
	Tombstoned int
	InFlight   int
}

func asLoadError(pair Pair, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return le
	}
	return &LoadError{Pair: pair, Err: err}
}
