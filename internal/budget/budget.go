// Package budget provides token budget allocation for confidence checks.
//
// Budgets are a static lookup keyed by task complexity: a confidence check
// for a simple task is expected to spend far fewer tokens than one for a
// complex task. The package also tracks cumulative allocation across a
// session so callers can report spend.
package budget

import (
	"fmt"

	"github.com/airisdev/airis-agent/internal/confidence"
)

// Token allocations per complexity level.
const (
	TokensSimple  = 200
	TokensMedium  = 1000
	TokensComplex = 2500
)

// allocations is total over the three recognized complexity levels.
var allocations = map[confidence.Complexity]int{
	confidence.ComplexitySimple:  TokensSimple,
	confidence.ComplexityMedium:  TokensMedium,
	confidence.ComplexityComplex: TokensComplex,
}

// ForComplexity returns the token allocation for the given complexity.
// An empty complexity defaults to medium, matching request defaulting in
// the confidence package. Unrecognized values are an error.
func ForComplexity(c confidence.Complexity) (int, error) {
	if c == "" {
		c = confidence.ComplexityMedium
	}
	tokens, ok := allocations[c]
	if !ok {
		return 0, fmt.Errorf("no token budget for complexity %q", c)
	}
	return tokens, nil
}

// Table returns the full allocation table in ascending budget order.
func Table() []Allocation {
	return []Allocation{
		{Complexity: confidence.ComplexitySimple, Tokens: TokensSimple},
		{Complexity: confidence.ComplexityMedium, Tokens: TokensMedium},
		{Complexity: confidence.ComplexityComplex, Tokens: TokensComplex},
	}
}

// Allocation pairs a complexity level with its token allocation.
type Allocation struct {
	Complexity confidence.Complexity `json:"complexity"`
	Tokens     int                   `json:"tokens"`
}
