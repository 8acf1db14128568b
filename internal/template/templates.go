// Package template holds the fixed phase template table: for each phase type
// a display name, icon, default duration, and an ordered list of task
// descriptions. The ordering of task templates is load-bearing: positional
// priority classification depends on it, so entries must never be reordered.
package template

import "github.com/mvestberg/phaseplan/internal/domain"

// PhaseTemplate describes the configuration for one phase type.
type PhaseTemplate struct {
	Type                 domain.PhaseType
	Name                 string
	Description          string
	Icon                 string
	DefaultDurationWeeks int
	TaskTemplates        []string
}

var phaseTemplates = map[domain.PhaseType]PhaseTemplate{
	domain.PhaseLiteratureReview: {
		Type:                 domain.PhaseLiteratureReview,
		Name:                 "Literature Review",
		Description:          "Systematic literature search, reading, and synthesis",
		Icon:                 "📚",
		DefaultDurationWeeks: 4,
		TaskTemplates: []string{
			"Create comprehensive list of initial sources from adviser recommendations",
			"Set up note-taking system with template for articles",
			"Begin wide reading to orient toward topic",
			"Start populating reading queue using citation strategies",
			"Begin thesis journal for daily progress and reflections",
			"Skim and take detailed notes on 2 articles per day",
			"Identify research questions and motivations in readings",
			"Begin identifying 2-3 major theoretical frameworks",
			"Organize sources by theme/topic (not chronologically)",
			"Meet with adviser to discuss promising directions",
			"Continue skimming 2 articles per day",
			"Create literature synopsis extracting key elements",
			"Identify commonalities and literature gaps",
			"Draft 2-3 potential research questions",
			"Practice 3-sentence elevator pitch for project",
		},
	},
	domain.PhaseResearchQuestion: {
		Type:                 domain.PhaseResearchQuestion,
		Name:                 "Research Question Development",
		Description:          "Problem formulation and question refinement",
		Icon:                 "❓",
		DefaultDurationWeeks: 2,
		TaskTemplates: []string{
			"Finalize specific research question with adviser feedback",
			"Clarify if question is empirical, theoretical, or both",
			"Identify key concepts and variables",
			"Determine sociological significance of question",
			"Draft one-paragraph research gap statement",
			"Refine research question based on literature gaps",
			"Develop theoretical framework outline",
			"Create research question justification document",
			"Meet with advisor to validate research direction",
			"Prepare research question presentation for peers",
		},
	},
	domain.PhaseMethodsPlanning: {
		Type:                 domain.PhaseMethodsPlanning,
		Name:                 "Methods Planning",
		Description:          "Research design and methodology development",
		Icon:                 "🔬",
		DefaultDurationWeeks: 3,
		TaskTemplates: []string{
			"Choose primary research method",
			"Identify validated instruments from literature",
			"Collect examples of similar studies and methods",
			"Draft Methods section outline (sampling, procedure, instruments)",
			"Review methodological blueprints",
			"Draft survey, interview guide, or observation plan",
			"Design backwards from hypothetical results",
			"Calculate sample size and feasibility constraints",
			"Create data collection strategy",
			"Meet with adviser for methods input",
			"Pilot instruments with 3-5 participants",
			"Refine based on clarity and usefulness",
			"Finalize sampling criteria and recruitment methods",
			"Create project timeline for data collection",
			"Document methodology decisions and rationale",
		},
	},
	domain.PhaseIRBProposal: {
		Type:                 domain.PhaseIRBProposal,
		Name:                 "IRB Proposal",
		Description:          "Ethics review and compliance documentation",
		Icon:                 "📋",
		DefaultDurationWeeks: 2,
		TaskTemplates: []string{
			"Complete CITI training or ethics certification",
			"Draft informed consent forms",
			"Prepare risk assessment documentation",
			"Compile IRB application materials",
			"Submit IRB application and respond to feedback",
			"Begin preparing IRB materials",
			"Draft consent forms and recruitment scripts",
			"Prepare and compile all IRB documents",
			"Get adviser feedback on IRB documents",
			"Submit IRB application",
			"Revise IRB materials based on feedback",
			"Finalize all compliance documentation",
		},
	},
}

// Get returns the template for a phase type, or false when the type is unknown.
func Get(t domain.PhaseType) (PhaseTemplate, bool) {
	tpl, ok := phaseTemplates[t]
	return tpl, ok
}

// AvailableTypes lists all phase types in canonical order.
func AvailableTypes() []domain.PhaseType {
	types := make([]domain.PhaseType, 0, len(phaseTemplates))
	for _, t := range domain.CanonicalPhaseOrder {
		if _, ok := phaseTemplates[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

// TaskTemplates returns the ordered task descriptions for a phase type, nil
// when the type is unknown.
func TaskTemplates(t domain.PhaseType) []string {
	tpl, ok := phaseTemplates[t]
	if !ok {
		return nil
	}
	out := make([]string, len(tpl.TaskTemplates))
	copy(out, tpl.TaskTemplates)
	return out
}
