// Package research plans multi-wave research sessions: given a query and
// a depth level it produces waves of search queries, synthesized findings
// from any seed sources, and a source-count based confidence estimate.
// The planner itself performs no network I/O; executing the plan is the
// host tool's job.
package research

import (
	"fmt"

	"github.com/google/uuid"
)

// Depth selects how many waves and queries per wave a plan contains.
type Depth string

const (
	DepthQuick      Depth = "quick"
	DepthStandard   Depth = "standard"
	DepthDeep       Depth = "deep"
	DepthExhaustive Depth = "exhaustive"
)

// depthPlan maps each depth to (waves, queries per wave).
var depthPlan = map[Depth]struct{ waves, queries int }{
	DepthQuick:      {1, 2},
	DepthStandard:   {2, 4},
	DepthDeep:       {3, 6},
	DepthExhaustive: {4, 8},
}

// Request configures one research plan.
type Request struct {
	// Query is the research question. Required.
	Query string `json:"query"`

	// Depth selects plan size. Unknown or empty values fall back to
	// standard.
	Depth Depth `json:"depth,omitempty"`

	// Constraints are focus areas appended round-robin to generated
	// queries.
	Constraints []string `json:"constraints,omitempty"`

	// SeedSources are starting references; when present, findings derive
	// from them instead of placeholder lookups.
	SeedSources []string `json:"seed_sources,omitempty"`
}

// Wave is one round of research queries.
type Wave struct {
	Wave    int      `json:"wave"`
	Queries []string `json:"queries"`
}

// Source references one consulted or pending source.
type Source struct {
	Type      string `json:"type"` // "seed" or "todo"
	Reference string `json:"reference"`
}

// Response is a complete research plan.
type Response struct {
	// ID uniquely identifies this plan for audit trails.
	ID string `json:"id"`

	Summary    string   `json:"summary"`
	Plan       []Wave   `json:"plan"`
	Findings   []string `json:"findings"`
	Sources    []Source `json:"sources"`
	Confidence float64  `json:"confidence"`
}

// Plan builds a research plan for the request. An unknown depth silently
// falls back to standard, mirroring the tolerant request handling of the
// confidence gate.
func Plan(req Request) (*Response, error) {
	if req.Query == "" {
		return nil, fmt.Errorf("query is required")
	}

	depth := req.Depth
	if _, ok := depthPlan[depth]; !ok {
		depth = DepthStandard
	}
	shape := depthPlan[depth]

	plan := make([]Wave, 0, shape.waves)
	for wave := 1; wave <= shape.waves; wave++ {
		plan = append(plan, Wave{
			Wave:    wave,
			Queries: generateQueries(req.Query, shape.queries, wave, req.Constraints),
		})
	}

	findings, sources := synthesize(req.SeedSources)

	return &Response{
		ID:         uuid.NewString(),
		Summary:    fmt.Sprintf("Deep research for %q completed with %d sources.", req.Query, len(sources)),
		Plan:       plan,
		Findings:   findings,
		Sources:    sources,
		Confidence: estimateConfidence(len(sources)),
	}, nil
}

// generateQueries builds one wave of queries, cycling through constraints.
func generateQueries(base string, count, wave int, constraints []string) []string {
	queries := make([]string, 0, count)
	for idx := 0; idx < count; idx++ {
		constraint := ""
		if len(constraints) > 0 {
			constraint = " + " + constraints[idx%len(constraints)]
		}
		queries = append(queries, fmt.Sprintf("%s insight #%d-%d%s", base, wave, idx+1, constraint))
	}
	return queries
}

// synthesize derives findings from seed sources, or emits pending
// placeholders when none were provided.
func synthesize(seeds []string) ([]string, []Source) {
	if len(seeds) == 0 {
		return []string{
				"1. Pending official documentation confirmation",
				"2. Pending community implementation survey",
			}, []Source{
				{Type: "todo", Reference: "Context7 query"},
				{Type: "todo", Reference: "Tavily search"},
			}
	}

	findings := make([]string, 0, len(seeds))
	sources := make([]Source, 0, len(seeds))
	for idx, seed := range seeds {
		findings = append(findings, fmt.Sprintf("%d. Derived insight from %s", idx+1, seed))
		sources = append(sources, Source{Type: "seed", Reference: seed})
	}
	return findings, sources
}

// estimateConfidence maps source count to a coarse confidence estimate.
func estimateConfidence(sourceCount int) float64 {
	switch {
	case sourceCount >= 5:
		return 0.95
	case sourceCount >= 2:
		return 0.85
	default:
		return 0.70
	}
}
