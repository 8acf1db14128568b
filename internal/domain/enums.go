package domain

type PhaseType string

const (
	PhaseLiteratureReview PhaseType = "literature_review"
	PhaseResearchQuestion PhaseType = "research_question"
	PhaseMethodsPlanning  PhaseType = "methods_planning"
	PhaseIRBProposal      PhaseType = "irb_proposal"
)

// CanonicalPhaseOrder is the logical sequence phases follow in a research
// project. Deadline validation checks chronology against this order.
var CanonicalPhaseOrder = []PhaseType{
	PhaseLiteratureReview,
	PhaseResearchQuestion,
	PhaseMethodsPlanning,
	PhaseIRBProposal,
}

// ValidPhaseTypes is the canonical set of accepted phase type strings.
var ValidPhaseTypes = map[string]bool{
	"literature_review": true,
	"research_question": true,
	"methods_planning":  true,
	"irb_proposal":      true,
}

type Intensity string

const (
	IntensityNone  Intensity = "none"
	IntensityLight Intensity = "light"
	IntensityHeavy Intensity = "heavy"
)

// Capacity returns the number of tasks a day of this intensity can hold.
func (i Intensity) Capacity() int {
	switch i {
	case IntensityLight:
		return 1
	case IntensityHeavy:
		return 2
	default:
		return 0
	}
}

type TaskType string

const (
	TaskDocumentation TaskType = "documentation"
	TaskConsultation  TaskType = "consultation"
	TaskWriting       TaskType = "writing"
	TaskReading       TaskType = "reading"
	TaskResearch      TaskType = "research"
	TaskAnalysis      TaskType = "analysis"
	TaskDesign        TaskType = "design"
	TaskGeneral       TaskType = "general"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

// Rank returns a sort priority for a criticality level (higher = more urgent).
func (c Criticality) Rank() int {
	switch c {
	case CriticalityCritical:
		return 3
	case CriticalityHigh:
		return 2
	case CriticalityMedium:
		return 1
	default:
		return 0
	}
}

type MilestoneType string

const (
	MilestoneQuarterComplete      MilestoneType = "quarter_complete"
	MilestoneHalfComplete         MilestoneType = "half_complete"
	MilestoneThreeQuarterComplete MilestoneType = "three_quarter_complete"
	MilestonePhaseComplete        MilestoneType = "phase_complete"
)

type EventType string

const (
	EventDeadline    EventType = "deadline"
	EventTaskCluster EventType = "task_cluster"
)
