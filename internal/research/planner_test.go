package research

import (
	"strings"
	"testing"
)

func TestPlanShapePerDepth(t *testing.T) {
	tests := []struct {
		depth       Depth
		wantWaves   int
		wantPerWave int
	}{
		{DepthQuick, 1, 2},
		{DepthStandard, 2, 4},
		{DepthDeep, 3, 6},
		{DepthExhaustive, 4, 8},
	}

	for _, tt := range tests {
		t.Run(string(tt.depth), func(t *testing.T) {
			resp, err := Plan(Request{Query: "goroutine leak detection", Depth: tt.depth})
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}

			if len(resp.Plan) != tt.wantWaves {
				t.Fatalf("waves = %d, want %d", len(resp.Plan), tt.wantWaves)
			}
			for i, wave := range resp.Plan {
				if wave.Wave != i+1 {
					t.Errorf("wave number = %d, want %d", wave.Wave, i+1)
				}
				if len(wave.Queries) != tt.wantPerWave {
					t.Errorf("wave %d queries = %d, want %d", wave.Wave, len(wave.Queries), tt.wantPerWave)
				}
			}
		})
	}
}

func TestPlanUnknownDepthFallsBack(t *testing.T) {
	resp, err := Plan(Request{Query: "q", Depth: "forensic"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(resp.Plan) != 2 || len(resp.Plan[0].Queries) != 4 {
		t.Errorf("fallback shape = %d waves × %d queries, want standard 2×4",
			len(resp.Plan), len(resp.Plan[0].Queries))
	}
}

func TestPlanEmptyQuery(t *testing.T) {
	if _, err := Plan(Request{}); err == nil {
		t.Error("Plan() = nil error, want query required failure")
	}
}

func TestPlanConstraintsCycle(t *testing.T) {
	resp, err := Plan(Request{
		Query:       "rate limiting",
		Depth:       DepthQuick,
		Constraints: []string{"stdlib only"},
	})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	for _, q := range resp.Plan[0].Queries {
		if !strings.Contains(q, "stdlib only") {
			t.Errorf("query %q missing constraint", q)
		}
	}
}

func TestPlanSeedSources(t *testing.T) {
	seeds := []string{"https://pkg.go.dev/context", "https://go.dev/blog/pipelines"}
	resp, err := Plan(Request{Query: "cancellation", SeedSources: seeds})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(resp.Findings) != len(seeds) {
		t.Errorf("findings = %d, want %d", len(resp.Findings), len(seeds))
	}
	if len(resp.Sources) != len(seeds) {
		t.Fatalf("sources = %d, want %d", len(resp.Sources), len(seeds))
	}
	for i, src := range resp.Sources {
		if src.Type != "seed" || src.Reference != seeds[i] {
			t.Errorf("source[%d] = %+v, want seed %q", i, src, seeds[i])
		}
	}
	if resp.Confidence != 0.85 {
		t.Errorf("Confidence = %v, want 0.85 for two sources", resp.Confidence)
	}
}

func TestPlanNoSeedsYieldsPending(t *testing.T) {
	resp, err := Plan(Request{Query: "no seeds"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(resp.Sources) != 2 {
		t.Fatalf("sources = %d, want 2 placeholders", len(resp.Sources))
	}
	for _, src := range resp.Sources {
		if src.Type != "todo" {
			t.Errorf("source type = %q, want todo", src.Type)
		}
	}
	if resp.Confidence != 0.85 {
		t.Errorf("Confidence = %v, want 0.85 for two placeholder sources", resp.Confidence)
	}
}

func TestEstimateConfidenceTiers(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 0.70},
		{1, 0.70},
		{2, 0.85},
		{4, 0.85},
		{5, 0.95},
		{12, 0.95},
	}
	for _, tt := range tests {
		if got := estimateConfidence(tt.count); got != tt.want {
			t.Errorf("estimateConfidence(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestPlanIDsUnique(t *testing.T) {
	first, err := Plan(Request{Query: "q"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	second, err := Plan(Request{Query: "q"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Errorf("plan IDs not unique: %q vs %q", first.ID, second.ID)
	}
}
