package plugins

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"reqsmith/internal/domain"
	"reqsmith/internal/llm"
	"reqsmith/internal/logging"
	"reqsmith/internal/registry"
)

// Action records what EnsureHandler did for a document.
type Action string

const (
	// ActionReused means an existing handler matched with enough confidence.
	ActionReused Action = "reused"

	// ActionCreated means a new handler was generated, validated, and
	// registered.
	ActionCreated Action = "created"

	// ActionRejected means no handler matched and generation did not
	// produce a registrable one; the caller should fall back to
	// generic processing.
	ActionRejected Action = "rejected"
)

// Rejection reasons reported on a DecisionRecord.
const (
	ReasonGenerationFailed = "generation_failed"
	ReasonValidationFailed = "validation_failed"
	ReasonDuplicateDomain  = "duplicate_domain"
)

// DecisionRecord is the audit trail of one EnsureHandler call.
type DecisionRecord struct {
	Action     Action  `json:"action"`
	Domain     string  `json:"domain"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
}

// Options tunes creator behavior; zero values fall back to defaults.
type Options struct {
	// ConfidenceThreshold at or above which an existing handler is
	// reused instead of generating a new one.
	ConfidenceThreshold float64

	// SpecsDir is where accepted manifests are persisted. Empty
	// disables persistence.
	SpecsDir string

	// OnCollision is "reject" or "replace" for generated handlers
	// whose name is already registered.
	OnCollision string

	// SummaryCount caps how many existing handler summaries go into
	// the generation prompt.
	SummaryCount int
}

// Creator decides between reusing a registered handler and
// synthesizing a new one from the document.
type Creator struct {
	registry *registry.Registry
	client   llm.Client
	opts     Options
}

// NewCreator builds a Creator over a registry and an LLM client.
func NewCreator(r *registry.Registry, client llm.Client, opts Options) *Creator {
	if opts.ConfidenceThreshold <= 0 {
		opts.ConfidenceThreshold = 0.6
	}
	if opts.OnCollision == "" {
		opts.OnCollision = "reject"
	}
	if opts.SummaryCount <= 0 {
		opts.SummaryCount = 5
	}
	return &Creator{registry: r, client: client, opts: opts}
}

// EnsureHandler guarantees the caller a usable domain decision for the
// document. It reuses an existing handler when detection confidence
// clears the threshold, otherwise asks the model for a new handler
// manifest. Nothing is registered unless the manifest passes all
// validation, so a failed generation leaves the registry untouched.
func (c *Creator) EnsureHandler(ctx context.Context, document string) DecisionRecord {
	det := c.registry.Detect(document)
	if det.Domain != registry.NoDomain && det.Confidence >= c.opts.ConfidenceThreshold {
		logging.Plugins("reusing handler %s (confidence %.3f)", det.Domain, det.Confidence)
		return DecisionRecord{Action: ActionReused, Domain: det.Domain, Confidence: det.Confidence}
	}

	logging.Plugins("no handler above threshold %.2f (best %q at %.3f), generating",
		c.opts.ConfidenceThreshold, det.Domain, det.Confidence)

	spec, err := c.generate(ctx, document)
	if err != nil {
		reason := ReasonGenerationFailed
		if errors.Is(err, ErrSpecUnparseable) {
			// The model answered but the manifest does not parse.
			reason = ReasonValidationFailed
		}
		logging.PluginsError("generation failed: %v", err)
		return DecisionRecord{
			Action:     ActionRejected,
			Domain:     det.Domain,
			Confidence: det.Confidence,
			Reason:     reason,
		}
	}

	if err := ValidateSpec(spec); err != nil {
		logging.PluginsWarn("generated spec rejected: %v", err)
		return DecisionRecord{
			Action:     ActionRejected,
			Domain:     det.Domain,
			Confidence: det.Confidence,
			Reason:     ReasonValidationFailed,
		}
	}

	handler := domain.NewRuleHandler(spec)
	if c.registry.Has(spec.DomainName) {
		if c.opts.OnCollision != "replace" {
			logging.PluginsWarn("generated domain %q already registered, rejecting", spec.DomainName)
			return DecisionRecord{
				Action:     ActionRejected,
				Domain:     det.Domain,
				Confidence: det.Confidence,
				Reason:     ReasonDuplicateDomain,
			}
		}
		err = c.registry.Replace(handler)
	} else {
		err = c.registry.Register(handler)
	}
	if err != nil {
		logging.PluginsError("registration failed for %q: %v", spec.DomainName, err)
		return DecisionRecord{
			Action:     ActionRejected,
			Domain:     det.Domain,
			Confidence: det.Confidence,
			Reason:     ReasonValidationFailed,
		}
	}

	if c.opts.SpecsDir != "" {
		if _, err := SaveSpec(c.opts.SpecsDir, spec); err != nil {
			// The handler is live either way; persistence is best effort.
			logging.PluginsWarn("could not persist manifest for %q: %v", spec.DomainName, err)
		}
	}

	// Score the new handler itself; Detect could surface a different
	// domain when the fresh handler is not the overall best match.
	conf := c.registry.Confidence(spec.DomainName, document)
	logging.Plugins("created handler %s (confidence %.3f)", spec.DomainName, conf)
	return DecisionRecord{Action: ActionCreated, Domain: spec.DomainName, Confidence: conf}
}

const generationSystemPrompt = `You design domain handler manifests for a requirements extraction pipeline.
A manifest is YAML with this shape:

domain_name: lowercase_snake identifier for the domain
keywords: list of at least 3 lowercase terms that identify documents in this domain
priority_score: integer 1-5, how specialized the domain is
rules:
  - triggers: [terms that activate this rule]
    title: requirement title to emit
    priority: high|medium|low
    category: functional|non_functional
base_stakeholders: [optional stakeholder names]
stakeholder_rules:
  - triggers: [terms]
    stakeholders: [names added when a trigger appears]

Respond with exactly one fenced yaml block and nothing else.`

func (c *Creator) generate(ctx context.Context, document string) (domain.RuleSpec, error) {
	if c.client == nil {
		return domain.RuleSpec{}, fmt.Errorf("%w: no client configured", ErrGenerationFailed)
	}

	excerpt := document
	if len(excerpt) > 2000 {
		excerpt = excerpt[:2000]
	}

	var prompt strings.Builder
	prompt.WriteString("Existing domains (do not duplicate them):\n")
	for _, s := range c.registry.Summaries(c.opts.SummaryCount) {
		prompt.WriteString("  - ")
		prompt.WriteString(s)
		prompt.WriteString("\n")
	}
	prompt.WriteString("\nDesign a handler manifest for the domain of this document:\n\n")
	prompt.WriteString(excerpt)

	response, err := c.client.CompleteWithSystem(ctx, generationSystemPrompt, prompt.String())
	if err != nil {
		return domain.RuleSpec{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	var spec domain.RuleSpec
	if err := yaml.Unmarshal([]byte(llm.ExtractYAMLBlock(response)), &spec); err != nil {
		return domain.RuleSpec{}, fmt.Errorf("%w: %v", ErrSpecUnparseable, err)
	}
	return spec, nil
}
