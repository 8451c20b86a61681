package plugins

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reqsmith/internal/domain"
	"reqsmith/internal/registry"
)

// scriptedClient returns a canned response or error.
type scriptedClient struct {
	response string
	err      error
	calls    int
}

func (s *scriptedClient) Complete(ctx context.Context, prompt string) (string, error) {
	return s.CompleteWithSystem(ctx, "", prompt)
}

func (s *scriptedClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	return s.response, s.err
}

func registryWithHealthcare(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	err := r.Register(domain.NewRuleHandler(domain.RuleSpec{
		DomainName:    "healthcare",
		Keywords:      []string{"patient", "hipaa", "diagnosis"},
		PriorityScore: 3,
		Rules: []domain.Rule{
			{Triggers: []string{"hipaa"}, Title: "HIPAA Compliance", Priority: "high", Category: "non_functional"},
		},
	}))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

const apiaryManifest = "```yaml\n" + `domain_name: apiary
keywords: [hive, honey, queen_bee, pollination]
priority_score: 4
rules:
  - triggers: [hive]
    title: Hive Health Monitoring
    priority: high
    category: functional
` + "```"

func TestEnsureHandlerReuses(t *testing.T) {
	r := registryWithHealthcare(t)
	client := &scriptedClient{}
	c := NewCreator(r, client, Options{ConfidenceThreshold: 0.6})

	rec := c.EnsureHandler(context.Background(), "patient hipaa diagnosis records")
	if rec.Action != ActionReused {
		t.Fatalf("action = %s, want reused", rec.Action)
	}
	if rec.Domain != "healthcare" || rec.Confidence != 1.0 {
		t.Errorf("record = %+v", rec)
	}
	if client.calls != 0 {
		t.Errorf("model should not be consulted on reuse, got %d calls", client.calls)
	}
}

func TestEnsureHandlerCreates(t *testing.T) {
	r := registryWithHealthcare(t)
	client := &scriptedClient{response: apiaryManifest}
	dir := t.TempDir()
	c := NewCreator(r, client, Options{SpecsDir: dir})

	rec := c.EnsureHandler(context.Background(), "our hive and honey production needs software")
	if rec.Action != ActionCreated {
		t.Fatalf("action = %s (reason %q), want created", rec.Action, rec.Reason)
	}
	if rec.Domain != "apiary" {
		t.Errorf("domain = %q", rec.Domain)
	}
	if !r.Has("apiary") {
		t.Error("new handler not registered")
	}

	// Accepted manifests are persisted for the next startup.
	if _, err := os.Stat(filepath.Join(dir, "apiary_handler.yaml")); err != nil {
		t.Errorf("manifest not persisted: %v", err)
	}
}

func TestEnsureHandlerCreatedReportsOwnConfidence(t *testing.T) {
	// An existing broad handler out-scores the new one on this
	// document; the decision must still carry the new handler's score.
	r := registry.New()
	err := r.Register(domain.NewRuleHandler(domain.RuleSpec{
		DomainName:    "agriculture",
		Keywords:      []string{"hive", "honey", "field"},
		PriorityScore: 2,
		Rules: []domain.Rule{
			{Triggers: []string{"field"}, Title: "Field Mapping", Priority: "medium", Category: "functional"},
		},
	}))
	if err != nil {
		t.Fatal(err)
	}

	client := &scriptedClient{response: apiaryManifest}
	c := NewCreator(r, client, Options{ConfidenceThreshold: 0.7})

	rec := c.EnsureHandler(context.Background(), "our hive and honey production needs software")
	if rec.Action != ActionCreated {
		t.Fatalf("action = %s (reason %q), want created", rec.Action, rec.Reason)
	}
	if rec.Domain != "apiary" {
		t.Errorf("domain = %q", rec.Domain)
	}
	// apiary matches 2 of its 4 keywords; agriculture's 2/3 must not
	// leak into the record.
	if rec.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5 (apiary's own score)", rec.Confidence)
	}
}

func TestEnsureHandlerGenerationFailure(t *testing.T) {
	r := registryWithHealthcare(t)
	client := &scriptedClient{err: errors.New("boom")}
	c := NewCreator(r, client, Options{})

	rec := c.EnsureHandler(context.Background(), "our hive and honey production needs software")
	if rec.Action != ActionRejected {
		t.Fatalf("action = %s, want rejected", rec.Action)
	}
	if rec.Reason != ReasonGenerationFailed {
		t.Errorf("reason = %q", rec.Reason)
	}
	if r.Count() != 1 {
		t.Errorf("registry size = %d, want 1 (unchanged)", r.Count())
	}
}

func TestEnsureHandlerValidationFailure(t *testing.T) {
	// Manifest with too few keywords: nothing may be registered.
	bad := "```yaml\ndomain_name: apiary\nkeywords: [hive]\nrules:\n  - triggers: [hive]\n    title: X\n```"
	r := registryWithHealthcare(t)
	client := &scriptedClient{response: bad}
	c := NewCreator(r, client, Options{})

	rec := c.EnsureHandler(context.Background(), "our hive and honey production needs software")
	if rec.Action != ActionRejected {
		t.Fatalf("action = %s, want rejected", rec.Action)
	}
	if rec.Reason != ReasonValidationFailed {
		t.Errorf("reason = %q", rec.Reason)
	}
	if r.Count() != 1 || r.Has("apiary") {
		t.Errorf("registry must be unchanged, size = %d", r.Count())
	}
}

func TestEnsureHandlerUnparseableResponse(t *testing.T) {
	r := registryWithHealthcare(t)
	client := &scriptedClient{response: "Sorry, I cannot produce YAML today."}
	c := NewCreator(r, client, Options{})

	rec := c.EnsureHandler(context.Background(), "our hive and honey production needs software")
	if rec.Action != ActionRejected {
		t.Fatalf("action = %s, want rejected", rec.Action)
	}
	if r.Count() != 1 {
		t.Errorf("registry size = %d, want 1", r.Count())
	}
}

func TestEnsureHandlerCollisionReject(t *testing.T) {
	// Model proposes a domain that already exists.
	manifest := "```yaml\ndomain_name: healthcare\nkeywords: [care, ward, nurse]\nrules:\n  - triggers: [ward]\n    title: Ward Management\n```"
	r := registryWithHealthcare(t)
	client := &scriptedClient{response: manifest}
	c := NewCreator(r, client, Options{OnCollision: "reject"})

	rec := c.EnsureHandler(context.Background(), "nurse ward care rota")
	if rec.Action != ActionRejected || rec.Reason != ReasonDuplicateDomain {
		t.Fatalf("record = %+v, want duplicate rejection", rec)
	}

	// Original handler untouched.
	h, err := r.Get("healthcare")
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Keywords()) != 3 || h.Keywords()[0] != "patient" {
		t.Errorf("original handler replaced: keywords = %v", h.Keywords())
	}
}

func TestEnsureHandlerCollisionReplace(t *testing.T) {
	manifest := "```yaml\ndomain_name: healthcare\nkeywords: [care, ward, nurse]\nrules:\n  - triggers: [ward]\n    title: Ward Management\n```"
	r := registryWithHealthcare(t)
	client := &scriptedClient{response: manifest}
	c := NewCreator(r, client, Options{OnCollision: "replace"})

	rec := c.EnsureHandler(context.Background(), "nurse ward care rota")
	if rec.Action != ActionCreated {
		t.Fatalf("record = %+v, want created", rec)
	}

	h, err := r.Get("healthcare")
	if err != nil {
		t.Fatal(err)
	}
	if h.Keywords()[0] != "care" {
		t.Errorf("handler not replaced: keywords = %v", h.Keywords())
	}
	if r.Count() != 1 {
		t.Errorf("count = %d, want 1", r.Count())
	}
}

func TestEnsureHandlerNoPersistDir(t *testing.T) {
	r := registryWithHealthcare(t)
	client := &scriptedClient{response: apiaryManifest}
	c := NewCreator(r, client, Options{})

	rec := c.EnsureHandler(context.Background(), "our hive and honey production needs software")
	if rec.Action != ActionCreated {
		t.Fatalf("action = %s", rec.Action)
	}
}
