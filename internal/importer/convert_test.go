package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsOnboardRequest(t *testing.T) {
	plan := validPlan()
	thesis := "2026-06-01"
	plan.Student.ThesisDeadline = &thesis

	req, err := Convert(plan)
	require.NoError(t, err)

	assert.Equal(t, "Maya", req.StudentName)
	assert.Equal(t, domain.IntensityLight, req.Preferences["monday"])
	assert.Equal(t, domain.IntensityHeavy, req.Preferences["wednesday"])
	require.NotNil(t, req.ThesisDeadline)
	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), *req.ThesisDeadline)

	require.Len(t, req.Phases, 2)
	assert.Equal(t, domain.PhaseLiteratureReview, req.Phases[0].Type)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), req.Phases[0].Deadline)
	assert.Equal(t, domain.PhaseResearchQuestion, req.Phases[1].Type)
}

func TestConvert_NoThesisDeadline(t *testing.T) {
	req, err := Convert(validPlan())
	require.NoError(t, err)
	assert.Nil(t, req.ThesisDeadline)
}

func TestLoadPlan_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := `student:
  name: Maya
  thesis_deadline: "2026-06-01"
work_days:
  monday: light
  wednesday: heavy
phases:
  - type: literature_review
    deadline: "2026-04-01"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Empty(t, ValidatePlan(plan))

	req, err := Convert(plan)
	require.NoError(t, err)
	assert.Equal(t, "Maya", req.StudentName)
	require.Len(t, req.Phases, 1)
}

func TestLoadPlan_Missing(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPlan_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("student: [not: a: mapping"), 0o644))

	_, err := LoadPlan(path)
	assert.ErrorContains(t, err, "parsing plan file")
}
