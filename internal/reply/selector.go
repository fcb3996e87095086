package reply

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSelector picks uniformly at random. A fixed seed gives a
// reproducible sequence.
type RandomSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSelector seeds the selector; seed 0 uses the current time.
func NewRandomSelector(seed int64) *RandomSelector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSelector{rnd: rand.New(rand.NewSource(seed))}
}

func (s *RandomSelector) Select(variants []string) (string, bool) {
	if len(variants) == 0 {
		return "", false
	}
	s.mu.Lock()
	i := s.rnd.Intn(len(variants))
	s.mu.Unlock()
	return variants[i], true
}

// FirstSelector always picks the first variant.
type FirstSelector struct{}

func (FirstSelector) Select(variants []string) (string, bool) {
	if len(variants) == 0 {
		return "", false
	}
	return variants[0], true
}

// NoVariety disables the variant layer.
type NoVariety struct{}

func (NoVariety) Select([]string) (string, bool) { return "", false }

// NewSelector maps a configured variety mode to a Selector.
func NewSelector(mode string, seed int64) Selector {
	switch mode {
	case VarietyFirst:
		return FirstSelector{}
	case VarietyOff:
		return NoVariety{}
	default:
		return NewRandomSelector(seed)
	}
}
