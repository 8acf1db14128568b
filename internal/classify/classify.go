// Package classify maps free-text task descriptions to type and priority tags
// using ordered keyword rules and positional heuristics.
package classify

import (
	"strings"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// typeRules is evaluated in order; the first group with a matching keyword
// wins. Ordering is the tie-break contract: descriptions often contain
// overlapping keywords ("Document methodology decisions" must classify as
// writing, not documentation), so groups must not be rearranged.
var typeRules = []struct {
	taskType domain.TaskType
	keywords []string
}{
	{domain.TaskDocumentation, []string{"irb", "consent", "compliance", "ethics", "submit"}},
	{domain.TaskConsultation, []string{"meet", "discuss", "adviser", "advisor", "feedback"}},
	{domain.TaskWriting, []string{"draft", "write", "document methodology", "outline"}},
	{domain.TaskReading, []string{"read", "skim", "article", "source", "literature"}},
	{domain.TaskResearch, []string{"research", "identify", "collect", "find", "search"}},
	{domain.TaskAnalysis, []string{"analyze", "synthesis", "organize", "compare", "evaluate"}},
	{domain.TaskDesign, []string{"design", "plan", "create", "develop", "method"}},
}

var highPriorityKeywords = []string{
	"deadline", "urgent", "critical", "important", "due", "submit",
	"approval", "irb", "ethics", "committee", "proposal", "defense",
}

var lowPriorityKeywords = []string{
	"optional", "extra", "additional", "supplementary", "bonus",
	"explore", "consider", "maybe", "if time",
}

// Type classifies a task description into a task type tag.
func Type(description string) domain.TaskType {
	lower := strings.ToLower(description)
	for _, rule := range typeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.taskType
			}
		}
	}
	return domain.TaskGeneral
}

// Priority classifies a task's priority from its description and its position
// in the ordered template sequence. Explicit keywords override position: any
// low keyword forces low, otherwise any high keyword forces high. Without an
// override, the first and last 20% of the sequence are high priority
// (foundational and final work) and the middle 60% medium.
func Priority(description string, index, total int) domain.Priority {
	lower := strings.ToLower(description)

	if containsAny(lower, lowPriorityKeywords) {
		return domain.PriorityLow
	}
	if containsAny(lower, highPriorityKeywords) {
		return domain.PriorityHigh
	}

	denominator := total - 1
	if denominator < 1 {
		denominator = 1
	}
	ratio := float64(index) / float64(denominator)
	if ratio <= 0.2 || ratio >= 0.8 {
		return domain.PriorityHigh
	}
	return domain.PriorityMedium
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
