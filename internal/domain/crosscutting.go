package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var uptimePattern = regexp.MustCompile(`(\d+\.?\d*)%\s*uptime`)

// CrossCuttingRequirements extracts concerns that apply to every
// domain: security, reliability targets, and real-time processing.
func CrossCuttingRequirements(text string) []Requirement {
	lower := strings.ToLower(text)
	var reqs []Requirement

	if containsAny(lower, "security", "cyber", "encryption", "auth", "secure") {
		reqs = append(reqs, Requirement{
			Title:    "Comprehensive Cybersecurity Framework and Data Protection",
			Priority: PriorityHigh,
			Category: CategoryNonFunctional,
		})
	}

	uptime := uptimePattern.FindStringSubmatch(lower)
	if uptime != nil || containsAny(lower, "performance", "scalability", "reliability") {
		target := "99.9"
		if uptime != nil {
			target = uptime[1]
		}
		reqs = append(reqs, Requirement{
			Title:    fmt.Sprintf("System Reliability and Performance (%s%% uptime requirement)", target),
			Priority: PriorityHigh,
			Category: CategoryNonFunctional,
		})
	}

	if containsAny(lower, "real-time", "realtime", "instant", "live") {
		reqs = append(reqs, Requirement{
			Title:    "Real-Time Data Processing and Event Handling System",
			Priority: PriorityHigh,
			Category: CategoryNonFunctional,
		})
	}

	return reqs
}

func containsAny(lower string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
