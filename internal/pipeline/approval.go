package pipeline

import (
	"fmt"
	"strings"
)

// Risk levels assessed for a document.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

// approvalThreshold is the minimum score for approval.
const approvalThreshold = 0.7

var (
	positiveKeywords = []string{
		"requirements", "objectives", "features", "user", "functionality",
		"design", "implementation", "testing", "security", "performance",
	}
	negativeKeywords = []string{
		"unclear", "undefined", "missing", "incomplete", "risky",
	}
	riskIndicators = map[string][]string{
		RiskHigh:   {"complex", "advanced", "critical", "enterprise", "security", "integration"},
		RiskMedium: {"moderate", "standard", "typical", "normal"},
		RiskLow:    {"simple", "basic", "straightforward", "minimal"},
	}
)

// Approval is the verdict produced by the final pipeline stage.
type Approval struct {
	Approved        bool     `json:"approved"`
	Score           float64  `json:"score"`
	RiskLevel       string   `json:"risk_level"`
	Recommendations []string `json:"recommendations,omitempty"`
	Reasoning       string   `json:"reasoning"`
}

// Assess scores the document deterministically and decides approval.
// A document is approved when the score clears the threshold, no
// high-risk profile is detected, and at least one requirement was
// extracted.
func Assess(document string, requirementCount int) Approval {
	content := strings.ToLower(document)

	score := approvalScore(content)
	risk := riskLevel(content)
	approved := score >= approvalThreshold && risk != RiskHigh && requirementCount > 0

	return Approval{
		Approved:        approved,
		Score:           score,
		RiskLevel:       risk,
		Recommendations: recommendations(content),
		Reasoning:       reasoning(approved, score, risk),
	}
}

func approvalScore(content string) float64 {
	score := 0.5

	positive := 0
	for _, kw := range positiveKeywords {
		if strings.Contains(content, kw) {
			positive++
		}
	}
	score += min(float64(positive)*0.05, 0.3)

	negative := 0
	for _, kw := range negativeKeywords {
		if strings.Contains(content, kw) {
			negative++
		}
	}
	score -= min(float64(negative)*0.1, 0.2)

	// Longer documents carry more detail.
	if len(content) > 500 {
		score += 0.1
	}
	if len(content) > 1000 {
		score += 0.1
	}

	return min(max(score, 0.0), 1.0)
}

func riskLevel(content string) string {
	counts := make(map[string]int, len(riskIndicators))
	for level, keywords := range riskIndicators {
		for _, kw := range keywords {
			if strings.Contains(content, kw) {
				counts[level]++
			}
		}
	}

	switch {
	case counts[RiskHigh] >= 2:
		return RiskHigh
	case counts[RiskMedium] >= 2 || counts[RiskHigh] >= 1:
		return RiskMedium
	default:
		return RiskLow
	}
}

// recommendations lists up to three gaps worth addressing.
func recommendations(content string) []string {
	var recs []string
	if !strings.Contains(content, "test") {
		recs = append(recs, "Add comprehensive testing strategy")
	}
	if !strings.Contains(content, "security") {
		recs = append(recs, "Include security requirements and measures")
	}
	if !strings.Contains(content, "performance") {
		recs = append(recs, "Define performance criteria and benchmarks")
	}
	if len(content) < 300 {
		recs = append(recs, "Expand requirements with more detailed specifications")
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

func reasoning(approved bool, score float64, risk string) string {
	if approved {
		return fmt.Sprintf(`Project APPROVED for execution.

Quality Assessment:
- Overall score: %.2f/1.0 (meets minimum threshold of %.1f)
- Risk level: %s (acceptable)
- Content analysis shows well-defined requirements

Key Strengths:
- Clear project objectives identified
- Structured requirement specifications
- Feasible implementation scope

The project demonstrates good planning and realistic expectations. Requirements are sufficiently detailed for development team execution.`,
			score, approvalThreshold, strings.ToUpper(risk))
	}

	return fmt.Sprintf(`Project REQUIRES REVISION before approval.

Quality Assessment:
- Overall score: %.2f/1.0 (below minimum threshold of %.1f)
- Risk level: %s

Areas for Improvement:
- Requirements need more detailed specifications
- Risk factors require mitigation strategies
- Additional planning documentation needed

Please address the identified issues and resubmit for approval.`,
		score, approvalThreshold, strings.ToUpper(risk))
}
