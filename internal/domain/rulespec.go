package domain

import (
	"strings"
)

// RuleSpec is the data form of a domain handler: everything needed for
// detection and extraction, with no executable code. Synthesized specs
// arrive from the generation service as YAML; built-in specs are
// declared in builtins.go. One generic interpreter (ruleHandler) runs
// them all.
type RuleSpec struct {
	// DomainName is the registry key, lowercase/underscore.
	DomainName string `yaml:"domain_name" json:"domain_name"`

	// Keywords identify the domain in free text.
	Keywords []string `yaml:"keywords" json:"keywords"`

	// PriorityScore breaks confidence ties, [1,5].
	PriorityScore int `yaml:"priority_score" json:"priority_score"`

	// Rules map trigger terms to requirement templates.
	Rules []Rule `yaml:"rules" json:"rules"`

	// StakeholderRules map trigger terms to stakeholder names.
	// BaseStakeholders are always included when any rule matches.
	BaseStakeholders []string          `yaml:"base_stakeholders,omitempty" json:"base_stakeholders,omitempty"`
	StakeholderRules []StakeholderRule `yaml:"stakeholder_rules,omitempty" json:"stakeholder_rules,omitempty"`

	// CrossCutting enables the shared security/performance/real-time
	// rules on top of the domain-specific ones.
	CrossCutting bool `yaml:"cross_cutting,omitempty" json:"cross_cutting,omitempty"`
}

// Rule emits one Requirement when any trigger appears in the
// lowercased document text.
type Rule struct {
	Triggers []string `yaml:"triggers" json:"triggers"`
	Title    string   `yaml:"title" json:"title"`
	Priority string   `yaml:"priority" json:"priority"`
	Category string   `yaml:"category" json:"category"`
}

// StakeholderRule adds stakeholders when any trigger appears.
type StakeholderRule struct {
	Triggers     []string `yaml:"triggers" json:"triggers"`
	Stakeholders []string `yaml:"stakeholders" json:"stakeholders"`
}

// ruleHandler interprets a RuleSpec. It is the only Handler
// implementation the system needs: generated handlers are data.
type ruleHandler struct {
	spec RuleSpec
}

// NewRuleHandler wraps a spec in the generic interpreter. The spec is
// copied; a handler is immutable once registered.
func NewRuleHandler(spec RuleSpec) Handler {
	spec.PriorityScore = ClampPriority(spec.PriorityScore)
	return &ruleHandler{spec: spec}
}

func (h *ruleHandler) Name() string { return h.spec.DomainName }

func (h *ruleHandler) Keywords() []string {
	out := make([]string, len(h.spec.Keywords))
	copy(out, h.spec.Keywords)
	return out
}

func (h *ruleHandler) PriorityScore() int { return h.spec.PriorityScore }

// ExtractRequirements walks the rule set against the lowercased text.
// Returns an empty slice when nothing matches; never fails.
func (h *ruleHandler) ExtractRequirements(text string) []Requirement {
	lower := strings.ToLower(text)
	reqs := []Requirement{}

	for _, rule := range h.spec.Rules {
		if anyTrigger(lower, rule.Triggers) {
			reqs = append(reqs, Requirement{
				Title:    rule.Title,
				Priority: normalizePriority(rule.Priority),
				Category: normalizeCategory(rule.Category),
			})
		}
	}

	if h.spec.CrossCutting {
		reqs = append(reqs, CrossCuttingRequirements(text)...)
	}
	return reqs
}

// Stakeholders returns the base list plus matched rule additions, or
// the generic default when the spec defines none.
func (h *ruleHandler) Stakeholders(text string) []string {
	if len(h.spec.BaseStakeholders) == 0 && len(h.spec.StakeholderRules) == 0 {
		return DefaultStakeholders()
	}

	lower := strings.ToLower(text)
	out := append([]string{}, h.spec.BaseStakeholders...)
	seen := make(map[string]bool, len(out))
	for _, s := range out {
		seen[s] = true
	}

	for _, rule := range h.spec.StakeholderRules {
		if !anyTrigger(lower, rule.Triggers) {
			continue
		}
		for _, s := range rule.Stakeholders {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}

	if len(out) == 0 {
		return DefaultStakeholders()
	}
	return out
}

// Spec returns a copy of the underlying rule specification, used when
// persisting a handler back to its manifest.
func Spec(h Handler) (RuleSpec, bool) {
	rh, ok := h.(*ruleHandler)
	if !ok {
		return RuleSpec{}, false
	}
	return rh.spec, true
}

func anyTrigger(lower string, triggers []string) bool {
	for _, t := range triggers {
		if t != "" && strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func normalizePriority(p string) string {
	switch strings.ToLower(p) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return strings.ToLower(p)
	default:
		return PriorityMedium
	}
}

func normalizeCategory(c string) string {
	switch strings.ToLower(c) {
	case CategoryFunctional:
		return CategoryFunctional
	case CategoryNonFunctional, "non_functional", "nonfunctional":
		return CategoryNonFunctional
	default:
		return CategoryFunctional
	}
}
