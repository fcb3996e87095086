package language_test

import (
	"context"

	"multilingual-support/pkg/log"
)

type countingLogger struct {
	log.Logger
	errors  int
	lastErr error
}

func (m *countingLogger) Infof(ctx context.Context, template string, arg ...any) {}

func (m *countingLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.errors++
	for _, a := range arg {
		if err, ok := a.(error); ok {
			m.lastErr = err
		}
	}
}
