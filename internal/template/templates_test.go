package template

import (
	"testing"

	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCanonicalPhaseHasTemplate(t *testing.T) {
	for _, phaseType := range domain.CanonicalPhaseOrder {
		tpl, ok := Get(phaseType)
		require.True(t, ok, "missing template for %s", phaseType)
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Icon)
		assert.Positive(t, tpl.DefaultDurationWeeks)
		assert.NotEmpty(t, tpl.TaskTemplates)
	}
}

func TestAvailableTypesFollowCanonicalOrder(t *testing.T) {
	assert.Equal(t, domain.CanonicalPhaseOrder, AvailableTypes())
}

func TestTaskTemplateCounts(t *testing.T) {
	// Counts are part of the contract: positional priority classification
	// depends on the exact sequence length.
	counts := map[domain.PhaseType]int{
		domain.PhaseLiteratureReview: 15,
		domain.PhaseResearchQuestion: 10,
		domain.PhaseMethodsPlanning:  15,
		domain.PhaseIRBProposal:      12,
	}
	for phaseType, want := range counts {
		assert.Len(t, TaskTemplates(phaseType), want, "%s", phaseType)
	}
}

func TestTaskTemplatesReturnsCopy(t *testing.T) {
	first := TaskTemplates(domain.PhaseIRBProposal)
	first[0] = "mutated"
	assert.NotEqual(t, first[0], TaskTemplates(domain.PhaseIRBProposal)[0])
}

func TestUnknownTypeHasNoTemplate(t *testing.T) {
	_, ok := Get(domain.PhaseType("data_collection"))
	assert.False(t, ok)
	assert.Nil(t, TaskTemplates(domain.PhaseType("data_collection")))
}

func TestLiteratureReviewOrderingAnchors(t *testing.T) {
	templates := TaskTemplates(domain.PhaseLiteratureReview)
	require.Len(t, templates, 15)
	assert.Equal(t, "Create comprehensive list of initial sources from adviser recommendations", templates[0])
	assert.Equal(t, "Practice 3-sentence elevator pitch for project", templates[14])
}
