// Package importer loads onboarding plan files: a YAML description of the
// student, their weekly work-day intensities, and the phases to set up.
// Plans are validated in full before anything touches the database.
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is the top-level YAML structure for an onboarding plan file.
type Plan struct {
	Student  StudentPlan       `yaml:"student"`
	WorkDays map[string]string `yaml:"work_days"`
	Phases   []PhasePlan       `yaml:"phases"`
}

// StudentPlan defines the student-level fields in the plan file.
type StudentPlan struct {
	Name           string  `yaml:"name"`
	ThesisDeadline *string `yaml:"thesis_deadline,omitempty"`
}

// PhasePlan selects one phase type with its deadline.
type PhasePlan struct {
	Type     string `yaml:"type"`
	Deadline string `yaml:"deadline"`
}

// LoadPlan reads and parses an onboarding plan YAML file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &plan, nil
}
