package plugins

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"reqsmith/internal/domain"
)

// MinKeywords is the smallest keyword set a handler may declare.
// Detection confidence is an overlap ratio, so a one-keyword handler
// would swing between 0.0 and 1.0 on a single word.
const MinKeywords = 3

var domainNamePattern = regexp.MustCompile(`^[a-z][a-z_]*$`)

// ParseSpec parses a YAML handler manifest and validates it. A spec
// that fails any check is rejected whole; no partially-valid spec ever
// reaches the registry.
func ParseSpec(text string) (domain.RuleSpec, error) {
	var spec domain.RuleSpec
	if err := yaml.Unmarshal([]byte(text), &spec); err != nil {
		return domain.RuleSpec{}, fmt.Errorf("%w: %v", ErrSpecUnparseable, err)
	}
	if err := ValidateSpec(spec); err != nil {
		return domain.RuleSpec{}, err
	}
	return spec, nil
}

// ValidateSpec checks the structural requirements every handler
// manifest must satisfy before registration.
func ValidateSpec(spec domain.RuleSpec) error {
	name := strings.TrimSpace(spec.DomainName)
	if name == "" {
		return ErrMissingDomainName
	}
	if !domainNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidDomainName, name)
	}

	keywords := 0
	for _, kw := range spec.Keywords {
		if strings.TrimSpace(kw) != "" {
			keywords++
		}
	}
	if keywords < MinKeywords {
		return fmt.Errorf("%w: got %d", ErrTooFewKeywords, keywords)
	}

	if len(spec.Rules) == 0 {
		return ErrNoRules
	}
	for i, rule := range spec.Rules {
		if strings.TrimSpace(rule.Title) == "" {
			return fmt.Errorf("rule %d has no title", i)
		}
		if len(rule.Triggers) == 0 {
			return fmt.Errorf("rule %d (%q) has no triggers", i, rule.Title)
		}
	}

	return nil
}
