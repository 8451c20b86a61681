// Package pipeline runs documents through the fixed four-stage chain:
// analyze, extract requirements, break into tasks, approve. Every
// stage is deterministic given the registry contents; the only
// network-bound step is handler generation inside stage one, and that
// degrades to the best existing match when it fails.
package pipeline

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reqsmith/internal/domain"
	"reqsmith/internal/logging"
	"reqsmith/internal/plugins"
	"reqsmith/internal/registry"
)

// Task is one unit of the stage-three breakdown.
type Task struct {
	Title       string `json:"title"`
	Requirement string `json:"requirement"`
	Kind        string `json:"kind"`
}

// Task kinds emitted per requirement.
const (
	TaskDesign    = "design"
	TaskImplement = "implement"
	TaskVerify    = "verify"
)

// StageMetrics records per-stage wall time in milliseconds.
type StageMetrics struct {
	AnalyzeMS      float64 `json:"analyze_ms"`
	RequirementsMS float64 `json:"requirements_ms"`
	TasksMS        float64 `json:"tasks_ms"`
	ApprovalMS     float64 `json:"approval_ms"`
	TotalMS        float64 `json:"total_ms"`
}

// Result is the full pipeline output for one document.
type Result struct {
	RunID        string                 `json:"run_id"`
	Domain       string                 `json:"domain"`
	Confidence   float64                `json:"confidence"`
	Decision     plugins.DecisionRecord `json:"decision"`
	Requirements []domain.Requirement   `json:"requirements"`
	Stakeholders []string               `json:"stakeholders"`
	Tasks        []Task                 `json:"tasks"`
	Approval     Approval               `json:"approval"`
	Metrics      StageMetrics           `json:"metrics"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Pipeline wires the registry and the plugin creator into the chain.
// Creator may be nil, in which case stage one only detects.
type Pipeline struct {
	registry *registry.Registry
	creator  *plugins.Creator
}

// New builds a pipeline over a populated registry.
func New(r *registry.Registry, creator *plugins.Creator) *Pipeline {
	return &Pipeline{registry: r, creator: creator}
}

// Run processes one document through all four stages.
func (p *Pipeline) Run(ctx context.Context, document string) (*Result, error) {
	if document == "" {
		logging.PipelineError("run rejected: empty document")
		return nil, fmt.Errorf("empty document")
	}

	start := time.Now()
	res := &Result{
		RunID:     uuid.NewString(),
		CreatedAt: start.UTC(),
	}

	// Stage 1: analyze. Make sure a handler covers the document,
	// falling back to the best available detection when generation is
	// unavailable or fails.
	stageStart := time.Now()
	if p.creator != nil {
		res.Decision = p.creator.EnsureHandler(ctx, document)
	} else {
		det := p.registry.Detect(document)
		res.Decision = plugins.DecisionRecord{
			Action:     plugins.ActionReused,
			Domain:     det.Domain,
			Confidence: det.Confidence,
		}
	}
	res.Domain = res.Decision.Domain
	res.Confidence = res.Decision.Confidence
	res.Metrics.AnalyzeMS = msSince(stageStart)
	logging.Pipeline("run %s: stage analyze domain=%q confidence=%.3f action=%s",
		res.RunID, res.Domain, res.Confidence, res.Decision.Action)

	// Stage 2: requirements. Domain-specific extraction plus the
	// cross-cutting scan, generic fallback when no domain matched.
	stageStart = time.Now()
	if res.Domain != registry.NoDomain {
		res.Requirements = p.registry.ExtractRequirements(res.Domain, document)
		res.Stakeholders = p.registry.Stakeholders(res.Domain, document)
	} else {
		res.Requirements = []domain.Requirement{}
		res.Stakeholders = domain.DefaultStakeholders()
	}
	res.Requirements = mergeRequirements(res.Requirements, domain.CrossCuttingRequirements(document))
	res.Metrics.RequirementsMS = msSince(stageStart)
	logging.PipelineDebug("run %s: stage requirements count=%d stakeholders=%d",
		res.RunID, len(res.Requirements), len(res.Stakeholders))

	// Stage 3: tasks. A fixed breakdown per requirement.
	stageStart = time.Now()
	res.Tasks = breakdown(res.Requirements)
	res.Metrics.TasksMS = msSince(stageStart)

	// Stage 4: approval.
	stageStart = time.Now()
	res.Approval = Assess(document, len(res.Requirements))
	res.Metrics.ApprovalMS = msSince(stageStart)

	res.Metrics.TotalMS = msSince(start)
	logging.Pipeline("run %s: done requirements=%d tasks=%d approved=%v in %.2fms",
		res.RunID, len(res.Requirements), len(res.Tasks), res.Approval.Approved, res.Metrics.TotalMS)
	return res, nil
}

// mergeRequirements appends extras whose title is not already present.
// Handlers with cross-cutting enabled emit these themselves; the
// pipeline-level scan covers the rest without duplicating.
func mergeRequirements(reqs, extras []domain.Requirement) []domain.Requirement {
	seen := make(map[string]bool, len(reqs))
	for _, r := range reqs {
		seen[r.Title] = true
	}
	for _, r := range extras {
		if !seen[r.Title] {
			seen[r.Title] = true
			reqs = append(reqs, r)
		}
	}
	return reqs
}

// breakdown emits design/implement/verify tasks per requirement.
// Non-functional requirements skip the design step.
func breakdown(reqs []domain.Requirement) []Task {
	tasks := make([]Task, 0, len(reqs)*3)
	for _, req := range reqs {
		if req.Category == domain.CategoryFunctional {
			tasks = append(tasks, Task{
				Title:       "Design: " + req.Title,
				Requirement: req.Title,
				Kind:        TaskDesign,
			})
		}
		tasks = append(tasks,
			Task{Title: "Implement: " + req.Title, Requirement: req.Title, Kind: TaskImplement},
			Task{Title: "Verify: " + req.Title, Requirement: req.Title, Kind: TaskVerify},
		)
	}
	return tasks
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}

// approvalXML mirrors the wire shape of the approval verdict.
type approvalXML struct {
	XMLName   xml.Name `xml:"approval"`
	Status    string   `xml:"status,attr"`
	Reasoning string   `xml:",chardata"`
}

// ApprovalXML renders the verdict as the approval document consumed by
// downstream tooling.
func (r *Result) ApprovalXML() (string, error) {
	status := "rejected"
	if r.Approval.Approved {
		status = "approved"
	}
	out, err := xml.MarshalIndent(approvalXML{
		Status:    status,
		Reasoning: "\n" + r.Approval.Reasoning + "\n",
	}, "", "")
	if err != nil {
		return "", fmt.Errorf("marshal approval: %w", err)
	}
	return xml.Header + string(out), nil
}
