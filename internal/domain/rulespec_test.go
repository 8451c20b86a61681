package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testSpec() RuleSpec {
	return RuleSpec{
		DomainName:    "orchards",
		Keywords:      []string{"apple", "orchard", "harvest"},
		PriorityScore: 3,
		Rules: []Rule{
			{
				Triggers: []string{"harvest", "picking"},
				Title:    "Harvest Scheduling System",
				Priority: PriorityHigh,
				Category: CategoryFunctional,
			},
			{
				Triggers: []string{"irrigation"},
				Title:    "Irrigation Monitoring",
				Priority: PriorityMedium,
				Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Growers"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"export"}, Stakeholders: []string{"Distributors"}},
		},
	}
}

func TestRuleHandlerExtractRequirements(t *testing.T) {
	h := NewRuleHandler(testSpec())

	tests := []struct {
		name string
		text string
		want []Requirement
	}{
		{
			name: "matching trigger",
			text: "Plan the apple HARVEST for October.",
			want: []Requirement{
				{Title: "Harvest Scheduling System", Priority: PriorityHigh, Category: CategoryFunctional},
			},
		},
		{
			name: "multiple triggers",
			text: "harvest picking and irrigation upgrades",
			want: []Requirement{
				{Title: "Harvest Scheduling System", Priority: PriorityHigh, Category: CategoryFunctional},
				{Title: "Irrigation Monitoring", Priority: PriorityMedium, Category: CategoryFunctional},
			},
		},
		{
			name: "no match returns empty, not nil failure",
			text: "completely unrelated text",
			want: []Requirement{},
		},
		{
			name: "empty text",
			text: "",
			want: []Requirement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.ExtractRequirements(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractRequirements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRuleHandlerStakeholders(t *testing.T) {
	h := NewRuleHandler(testSpec())

	base := h.Stakeholders("apple orchard")
	if diff := cmp.Diff([]string{"Growers"}, base); diff != "" {
		t.Errorf("base stakeholders mismatch (-want +got):\n%s", diff)
	}

	withRule := h.Stakeholders("apple export business")
	if diff := cmp.Diff([]string{"Growers", "Distributors"}, withRule); diff != "" {
		t.Errorf("rule stakeholders mismatch (-want +got):\n%s", diff)
	}
}

func TestRuleHandlerStakeholdersDefault(t *testing.T) {
	spec := testSpec()
	spec.BaseStakeholders = nil
	spec.StakeholderRules = nil
	h := NewRuleHandler(spec)

	got := h.Stakeholders("anything")
	if diff := cmp.Diff(DefaultStakeholders(), got); diff != "" {
		t.Errorf("default stakeholders mismatch (-want +got):\n%s", diff)
	}
}

func TestRuleHandlerClampsPriority(t *testing.T) {
	spec := testSpec()
	spec.PriorityScore = 11
	if got := NewRuleHandler(spec).PriorityScore(); got != MaxPriorityScore {
		t.Errorf("priority %d, want clamped to %d", got, MaxPriorityScore)
	}

	spec.PriorityScore = 0
	if got := NewRuleHandler(spec).PriorityScore(); got != MinPriorityScore {
		t.Errorf("priority %d, want clamped to %d", got, MinPriorityScore)
	}
}

func TestNormalization(t *testing.T) {
	spec := RuleSpec{
		DomainName:    "x",
		Keywords:      []string{"x"},
		PriorityScore: 2,
		Rules: []Rule{
			{Triggers: []string{"x"}, Title: "T", Priority: "CRITICAL", Category: "misc"},
		},
	}
	got := NewRuleHandler(spec).ExtractRequirements("x")
	if len(got) != 1 {
		t.Fatalf("expected 1 requirement, got %d", len(got))
	}
	if got[0].Priority != PriorityMedium {
		t.Errorf("unknown priority should normalize to medium, got %q", got[0].Priority)
	}
	if got[0].Category != CategoryFunctional {
		t.Errorf("unknown category should normalize to functional, got %q", got[0].Category)
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	h := NewRuleHandler(testSpec())
	kws := h.Keywords()
	kws[0] = "mutated"
	if h.Keywords()[0] != "apple" {
		t.Error("Keywords must return a defensive copy")
	}
}

func TestCrossCuttingRequirements(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantTitles []string
	}{
		{
			name:       "security terms",
			text:       "needs encryption at rest",
			wantTitles: []string{"Comprehensive Cybersecurity Framework and Data Protection"},
		},
		{
			name:       "uptime target extracted",
			text:       "must guarantee 99.95% uptime",
			wantTitles: []string{"System Reliability and Performance (99.95% uptime requirement)"},
		},
		{
			name:       "real-time",
			text:       "live dashboards with real-time updates",
			wantTitles: []string{"Real-Time Data Processing and Event Handling System"},
		},
		{
			name:       "nothing",
			text:       "plain business text",
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CrossCuttingRequirements(tt.text)
			var titles []string
			for _, r := range got {
				titles = append(titles, r.Title)
			}
			if diff := cmp.Diff(tt.wantTitles, titles); diff != "" {
				t.Errorf("titles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	handlers := Builtins()
	if len(handlers) == 0 {
		t.Fatal("no builtin handlers")
	}

	seen := make(map[string]bool)
	for _, h := range handlers {
		if h.Name() == "" {
			t.Error("builtin with empty name")
		}
		if seen[h.Name()] {
			t.Errorf("duplicate builtin domain %q", h.Name())
		}
		seen[h.Name()] = true

		if len(h.Keywords()) == 0 {
			t.Errorf("builtin %q has no keywords", h.Name())
		}
		if p := h.PriorityScore(); p < MinPriorityScore || p > MaxPriorityScore {
			t.Errorf("builtin %q priority %d out of range", h.Name(), p)
		}
	}

	defaults := []string{
		"healthcare", "fintech", "ecommerce", "real_estate", "beekeeping",
		"customer_support", "fitness_app", "traffic_management", "mobile_app",
		"visual_workflow", "enterprise", "restaurant_management",
		"gaming_studio_management",
	}
	for _, want := range defaults {
		if !seen[want] {
			t.Errorf("missing builtin domain %q", want)
		}
	}
}

func TestHealthcareExtraction(t *testing.T) {
	var healthcare Handler
	for _, h := range Builtins() {
		if h.Name() == "healthcare" {
			healthcare = h
		}
	}
	if healthcare == nil {
		t.Fatal("healthcare builtin not found")
	}

	reqs := healthcare.ExtractRequirements("Patient records must comply with HIPAA.")
	if len(reqs) == 0 {
		t.Fatal("expected requirements for HIPAA text")
	}

	var foundCompliance bool
	for _, r := range reqs {
		if r.Title == "HIPAA Compliance and Data Security Framework" {
			foundCompliance = true
			if r.Category != CategoryNonFunctional {
				t.Errorf("compliance requirement category = %q", r.Category)
			}
		}
	}
	if !foundCompliance {
		t.Error("HIPAA compliance requirement not extracted")
	}
}

func TestGamingStudioExtraction(t *testing.T) {
	var gaming Handler
	for _, h := range Builtins() {
		if h.Name() == "gaming_studio_management" {
			gaming = h
		}
	}
	if gaming == nil {
		t.Fatal("gaming builtin not found")
	}

	reqs := gaming.ExtractRequirements("A multiplayer game built on Unreal with anti-cheat detection.")

	titles := make(map[string]bool)
	for _, r := range reqs {
		titles[r.Title] = true
	}
	for _, want := range []string{
		"Multiplayer Networking and Server Architecture",
		"Game Engine Integration and Development Framework",
		"Anti-Cheat and Game Security System",
	} {
		if !titles[want] {
			t.Errorf("missing requirement %q in %v", want, reqs)
		}
	}

	stakeholders := gaming.Stakeholders("esports tournament support tickets")
	found := make(map[string]bool)
	for _, s := range stakeholders {
		found[s] = true
	}
	if !found["Esports Coordinators"] || !found["Player Support Team"] {
		t.Errorf("stakeholders = %v", stakeholders)
	}
}
