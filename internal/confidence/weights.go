package confidence

import (
	"fmt"
	"math"
)

// Recognized signal names. Declaration order here is the fixed checklist
// order in every response.
const (
	SignalDuplicateCheckComplete    = "duplicate_check_complete"
	SignalArchitectureCheckComplete = "architecture_check_complete"
	SignalOfficialDocsVerified      = "official_docs_verified"
	SignalOSSReferenceComplete      = "oss_reference_complete"
	SignalRootCauseIdentified       = "root_cause_identified"
	SignalHasOfficialDocs           = "has_official_docs"
	SignalHasSimilarExamples        = "has_similar_examples"
)

// SignalWeight pairs a recognized signal with the weight it contributes
// to the score when satisfied.
type SignalWeight struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// WeightTable is the ordered signal → weight configuration for a Scorer.
// Order is significant: responses echo the checklist in table order.
type WeightTable []SignalWeight

// weightSumTolerance absorbs binary float accumulation when validating
// that a table sums to 1.0.
const weightSumTolerance = 1e-9

// DefaultWeights returns the standard weight table. The five protocol
// checks sum to exactly 0.90 and carry most of the score; the two
// environmental hints contribute 0.05 each. Weights sum to 1.0.
func DefaultWeights() WeightTable {
	return WeightTable{
		{Name: SignalDuplicateCheckComplete, Weight: 0.20},
		{Name: SignalArchitectureCheckComplete, Weight: 0.20},
		{Name: SignalOfficialDocsVerified, Weight: 0.20},
		{Name: SignalOSSReferenceComplete, Weight: 0.15},
		{Name: SignalRootCauseIdentified, Weight: 0.15},
		{Name: SignalHasOfficialDocs, Weight: 0.05},
		{Name: SignalHasSimilarExamples, Weight: 0.05},
	}
}

// recognizedSignals is the set of valid signal names, derived from the
// default table so the two can never drift apart.
var recognizedSignals = func() map[string]bool {
	set := make(map[string]bool)
	for _, sw := range DefaultWeights() {
		set[sw.Name] = true
	}
	return set
}()

// Validate checks that the table is non-empty, names only recognized
// signals without duplicates, carries no negative weights, and sums to
// 1.0 within tolerance.
func (t WeightTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("weight table is empty")
	}

	seen := make(map[string]bool, len(t))
	sum := 0.0
	for _, sw := range t {
		if !recognizedSignals[sw.Name] {
			return fmt.Errorf("unrecognized signal %q in weight table", sw.Name)
		}
		if seen[sw.Name] {
			return fmt.Errorf("duplicate signal %q in weight table", sw.Name)
		}
		seen[sw.Name] = true

		if sw.Weight < 0 {
			return fmt.Errorf("signal %q has negative weight %v", sw.Name, sw.Weight)
		}
		sum += sw.Weight
	}

	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights sum to %v, want 1.0", sum)
	}

	return nil
}

// Override returns a copy of the table with the named weights replaced.
// Signals absent from overrides keep their existing weight; declaration
// order is preserved. The result is validated before being returned so a
// partial override cannot silently break the sum-to-one invariant.
func (t WeightTable) Override(overrides map[string]float64) (WeightTable, error) {
	out := make(WeightTable, len(t))
	copy(out, t)

	for name := range overrides {
		if !recognizedSignals[name] {
			return nil, fmt.Errorf("unrecognized signal %q in weight override", name)
		}
	}

	for i, sw := range out {
		if w, ok := overrides[sw.Name]; ok {
			out[i].Weight = w
		}
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weight override: %w", err)
	}

	return out, nil
}
