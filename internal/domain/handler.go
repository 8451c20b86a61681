// Package domain defines the handler contract for business-domain
// detection and requirement extraction, plus the rule-driven generic
// handler that interprets structured rule specifications.
//
// Handlers are pure: no I/O, no shared mutable state. Anything that
// talks to an external service belongs in internal/plugins.
package domain

// Requirement priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Requirement categories.
const (
	CategoryFunctional    = "functional"
	CategoryNonFunctional = "non-functional"
)

// Requirement is a labeled statement of functionality or constraint
// extracted from a document. Produced transiently; never persisted.
type Requirement struct {
	Title    string `json:"title" xml:"title"`
	Priority string `json:"priority" xml:"priority,attr"`
	Category string `json:"category" xml:"category,attr"`
}

// Handler encapsulates one domain's detection and extraction policy.
//
// Implementations must be pure functions over text: ExtractRequirements
// returns an empty slice (never an error) when nothing matches, and
// Stakeholders falls back to DefaultStakeholders.
type Handler interface {
	// Name is the stable identifier, non-empty, lowercase/underscore.
	Name() string

	// Keywords are the detection terms; must be non-empty.
	Keywords() []string

	// PriorityScore in [1,5]; higher wins confidence ties.
	PriorityScore() int

	// ExtractRequirements derives requirements from the document text.
	ExtractRequirements(text string) []Requirement

	// Stakeholders lists the parties relevant to the document.
	Stakeholders(text string) []string
}

// DefaultStakeholders is returned when a handler has no stakeholder
// rules or none of them match.
func DefaultStakeholders() []string {
	return []string{"End Users", "Development Team"}
}

// MinPriorityScore and MaxPriorityScore bound Handler.PriorityScore.
const (
	MinPriorityScore = 1
	MaxPriorityScore = 5
)

// ClampPriority forces a priority score into [MinPriorityScore, MaxPriorityScore].
func ClampPriority(p int) int {
	if p < MinPriorityScore {
		return MinPriorityScore
	}
	if p > MaxPriorityScore {
		return MaxPriorityScore
	}
	return p
}
