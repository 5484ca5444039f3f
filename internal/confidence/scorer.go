package confidence

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidRequest is returned when a request fails validation: an empty
// task description or an unrecognized complexity level. It indicates a
// caller bug, not a transient condition.
var ErrInvalidRequest = errors.New("invalid confidence request")

// Score tier thresholds. Each tier owns its lower bound: a score of
// exactly 0.90 proceeds and a score of exactly 0.70 presents alternatives.
const (
	ProceedThreshold      = 0.90
	AlternativesThreshold = 0.70
)

// clarificationQuestions maps each signal to the question to ask when the
// signal is missing and confidence is too low to act.
var clarificationQuestions = map[string]string{
	SignalDuplicateCheckComplete:    "Has similar work already been done in this codebase?",
	SignalArchitectureCheckComplete: "Which architectural constraints apply to this change?",
	SignalOfficialDocsVerified:      "Which official documentation covers the APIs involved?",
	SignalOSSReferenceComplete:      "Are there open source implementations to reference?",
	SignalRootCauseIdentified:       "What is the root cause of the problem being fixed?",
	SignalHasOfficialDocs:           "Does official documentation exist for this domain?",
	SignalHasSimilarExamples:        "Are there similar examples in the codebase to follow?",
}

// Scorer computes confidence assessments against an immutable weight
// table fixed at construction. A Scorer owns no mutable state and may be
// shared freely across goroutines.
type Scorer struct {
	weights WeightTable
}

// NewScorer creates a Scorer using the provided weight table. A nil table
// selects DefaultWeights(). The table is copied and validated; an invalid
// table is rejected rather than deferred to assessment time.
func NewScorer(table WeightTable) (*Scorer, error) {
	if table == nil {
		table = DefaultWeights()
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weight table: %w", err)
	}

	owned := make(WeightTable, len(table))
	copy(owned, table)

	return &Scorer{weights: owned}, nil
}

// Weights returns a copy of the scorer's weight table in checklist order.
func (s *Scorer) Weights() WeightTable {
	out := make(WeightTable, len(s.weights))
	copy(out, s.weights)
	return out
}

// Assess scores the request and maps the score to a recommended action.
//
// The score is the sum of weights for satisfied signals, clamped to
// [0.0, 1.0] and rounded to two decimals. Classification uses inclusive
// lower bounds: >= 0.90 proceed, >= 0.70 present alternatives, otherwise
// ask questions. The checklist covers every recognized signal in table
// order regardless of input.
//
// Assess fails with ErrInvalidRequest when the task description is empty
// or the complexity is not one of simple, medium, complex.
func (s *Scorer) Assess(req Request) (Response, error) {
	if strings.TrimSpace(req.Task) == "" {
		return Response{}, fmt.Errorf("%w: task description is empty", ErrInvalidRequest)
	}

	complexity := req.Complexity
	if complexity == "" {
		complexity = ComplexityMedium
	}
	if !complexity.Valid() {
		return Response{}, fmt.Errorf("%w: unknown complexity %q", ErrInvalidRequest, req.Complexity)
	}

	checklist := make([]ChecklistItem, 0, len(s.weights))
	score := 0.0
	for _, sw := range s.weights {
		satisfied := req.satisfied(sw.Name)
		if satisfied {
			score += sw.Weight
		}
		checklist = append(checklist, ChecklistItem{
			Name:      sw.Name,
			Satisfied: satisfied,
			Weight:    sw.Weight,
		})
	}

	score = math.Min(1.0, math.Max(0.0, score))
	// Two-decimal rounding also absorbs binary float accumulation error,
	// keeping the tier boundaries exact.
	score = math.Round(score*100) / 100

	resp := Response{
		Score:     score,
		Action:    classify(score),
		Checklist: checklist,
	}

	if resp.Action == ActionAskQuestions {
		resp.Questions = questionsFor(checklist)
	}

	return resp, nil
}

// classify maps a rounded score to its action tier.
func classify(score float64) Action {
	switch {
	case score >= ProceedThreshold:
		return ActionProceed
	case score >= AlternativesThreshold:
		return ActionPresentAlternatives
	default:
		return ActionAskQuestions
	}
}

// questionsFor builds clarification questions for unsatisfied signals,
// in checklist order.
func questionsFor(checklist []ChecklistItem) []string {
	var questions []string
	for _, item := range checklist {
		if item.Satisfied {
			continue
		}
		if q, ok := clarificationQuestions[item.Name]; ok {
			questions = append(questions, q)
		}
	}
	return questions
}
