// Package confidence implements the pre-implementation confidence gate.
//
// The gate turns a checklist of discrete evidence signals about a proposed
// task into a single calibrated score in [0.0, 1.0] and a recommended
// action: proceed with implementation, present alternatives, or stop and
// ask clarifying questions. Scoring is a pure function of the signals and
// their fixed weights; it performs no I/O and is safe for concurrent use.
//
// Unknown keys in serialized requests are ignored rather than rejected, so
// newer callers can send signals an older gate does not yet recognize.
package confidence

// Complexity classifies the size of a proposed task. It does not affect the
// confidence score; it drives the downstream token budget allocation.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Valid reports whether c is one of the three recognized complexity levels.
func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityMedium, ComplexityComplex:
		return true
	}
	return false
}

// Action is the discrete recommendation derived from the score tier.
type Action string

const (
	// ActionProceed means confidence is high enough to implement directly.
	ActionProceed Action = "proceed"

	// ActionPresentAlternatives means confidence is moderate: present viable
	// approaches and recommend the best one before implementing.
	ActionPresentAlternatives Action = "present_alternatives"

	// ActionAskQuestions means confidence is too low to act: stop and ask
	// the user specific clarifying questions first.
	ActionAskQuestions Action = "ask_questions"
)

// Request carries the evidence signals for one confidence assessment.
// Task must be non-empty; Complexity defaults to medium when empty. All
// boolean signals default to false, meaning absence of evidence rather
// than negative evidence.
type Request struct {
	// Task describes the work being assessed. It is carried for logging and
	// audit trails only; its content never influences the score.
	Task string `json:"task" yaml:"task"`

	// Complexity sizes the task for token budget allocation.
	Complexity Complexity `json:"complexity,omitempty" yaml:"complexity,omitempty"`

	// DuplicateCheckComplete indicates existing work has been searched for
	// duplicates of this task.
	DuplicateCheckComplete bool `json:"duplicate_check_complete,omitempty" yaml:"duplicate_check_complete,omitempty"`

	// ArchitectureCheckComplete indicates architecture compliance has been
	// verified.
	ArchitectureCheckComplete bool `json:"architecture_check_complete,omitempty" yaml:"architecture_check_complete,omitempty"`

	// OfficialDocsVerified indicates official documentation has been
	// reviewed for the APIs involved.
	OfficialDocsVerified bool `json:"official_docs_verified,omitempty" yaml:"official_docs_verified,omitempty"`

	// OSSReferenceComplete indicates comparable open source implementations
	// have been consulted.
	OSSReferenceComplete bool `json:"oss_reference_complete,omitempty" yaml:"oss_reference_complete,omitempty"`

	// RootCauseIdentified indicates the root cause is understood (for bug
	// fixes).
	RootCauseIdentified bool `json:"root_cause_identified,omitempty" yaml:"root_cause_identified,omitempty"`

	// HasOfficialDocs indicates official documentation exists for the task
	// domain.
	HasOfficialDocs bool `json:"has_official_docs,omitempty" yaml:"has_official_docs,omitempty"`

	// HasSimilarExamples indicates similar examples exist in the codebase.
	HasSimilarExamples bool `json:"has_similar_examples,omitempty" yaml:"has_similar_examples,omitempty"`
}

// satisfied reports whether the named signal is set on the request.
// Unrecognized names report false.
func (r Request) satisfied(name string) bool {
	switch name {
	case SignalDuplicateCheckComplete:
		return r.DuplicateCheckComplete
	case SignalArchitectureCheckComplete:
		return r.ArchitectureCheckComplete
	case SignalOfficialDocsVerified:
		return r.OfficialDocsVerified
	case SignalOSSReferenceComplete:
		return r.OSSReferenceComplete
	case SignalRootCauseIdentified:
		return r.RootCauseIdentified
	case SignalHasOfficialDocs:
		return r.HasOfficialDocs
	case SignalHasSimilarExamples:
		return r.HasSimilarExamples
	}
	return false
}

// ChecklistItem records one recognized signal, whether the request
// satisfied it, and the weight it contributes when satisfied.
type ChecklistItem struct {
	Name      string  `json:"name"`
	Satisfied bool    `json:"satisfied"`
	Weight    float64 `json:"weight"`
}

// Response is the result of one confidence assessment.
type Response struct {
	// Score is the weighted evidence score in [0.0, 1.0], rounded to two
	// decimals.
	Score float64 `json:"score"`

	// Action is the recommendation derived from the score tier.
	Action Action `json:"action"`

	// Checklist itemizes every recognized signal in fixed declaration
	// order, regardless of how many the request satisfied.
	Checklist []ChecklistItem `json:"checklist"`

	// Questions holds clarifying questions for the unsatisfied signals.
	// Populated only when Action is ActionAskQuestions.
	Questions []string `json:"questions,omitempty"`
}
