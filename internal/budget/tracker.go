package budget

import (
	"sync"
	"time"

	"github.com/airisdev/airis-agent/internal/confidence"
)

// Tracker accumulates token allocations granted over a session.
// Thread-safe: all methods may be called concurrently.
type Tracker struct {
	mu            sync.RWMutex
	startedAt     time.Time
	checks        int
	tokensGranted int64
	byComplexity  map[confidence.Complexity]int
}

// Usage is a point-in-time snapshot of tracker state.
type Usage struct {
	StartedAt     time.Time                     `json:"started_at"`
	Checks        int                           `json:"checks"`
	TokensGranted int64                         `json:"tokens_granted"`
	ByComplexity  map[confidence.Complexity]int `json:"by_complexity"`
}

// NewTracker creates an empty session tracker starting now.
func NewTracker() *Tracker {
	return &Tracker{
		startedAt:    time.Now(),
		byComplexity: make(map[confidence.Complexity]int),
	}
}

// Record notes one confidence check at the given complexity and returns
// the tokens allocated for it.
func (t *Tracker) Record(c confidence.Complexity) (int, error) {
	tokens, err := ForComplexity(c)
	if err != nil {
		return 0, err
	}

	if c == "" {
		c = confidence.ComplexityMedium
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.checks++
	t.tokensGranted += int64(tokens)
	t.byComplexity[c]++

	return tokens, nil
}

// Snapshot returns a copy of the current usage. The returned maps are
// owned by the caller.
func (t *Tracker) Snapshot() Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	byComplexity := make(map[confidence.Complexity]int, len(t.byComplexity))
	for k, v := range t.byComplexity {
		byComplexity[k] = v
	}

	return Usage{
		StartedAt:     t.startedAt,
		Checks:        t.checks,
		TokensGranted: t.tokensGranted,
		ByComplexity:  byComplexity,
	}
}
