package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/loanpulse/internal/entity"
	"github.com/xavierca1/loanpulse/internal/infra/integration/ocrspace"
)

func TestAttachScanResultsCreatesScenarioAndRatePointPerPair(t *testing.T) {
	ctx := context.Background()
	sheetDate := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)

	lead := &entity.Lead{ID: "lead-1"}
	s1 := &entity.Scenario{ID: "scenario-1", LeadID: "lead-1"}
	s2 := &entity.Scenario{ID: "scenario-2", LeadID: "lead-1"}

	leadRepo := new(MockLeadRepository)
	scenarioRepo := new(MockScenarioRepository)
	leadRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)
	scenarioRepo.On("FindOrCreate", ctx, "lead-1", 3.125, 0.5, sheetDate).Return(s1, nil)
	scenarioRepo.On("FindOrCreate", ctx, "lead-1", 3.25, 0.25, sheetDate).Return(s2, nil)
	scenarioRepo.On("AddRatePoint", ctx, "scenario-1", 3.125, 0.5).Return(nil)
	scenarioRepo.On("AddRatePoint", ctx, "scenario-2", 3.25, 0.25).Return(nil)

	uc := NewAttachScanResultsUseCase(leadRepo, scenarioRepo)
	attached, err := uc.Execute(ctx, AttachScanResultsInput{
		LeadID:        "lead-1",
		RateSheetDate: sheetDate,
		Pairs: []ocrspace.RatePair{
			{Rate: 3.125, Points: 0.5},
			{Rate: 3.25, Points: 0.25},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, attached)
	scenarioRepo.AssertNumberOfCalls(t, "FindOrCreate", 2)
	scenarioRepo.AssertNumberOfCalls(t, "AddRatePoint", 2)
}

func TestAttachScanResultsRejectsEmptyExtraction(t *testing.T) {
	uc := NewAttachScanResultsUseCase(new(MockLeadRepository), new(MockScenarioRepository))

	_, err := uc.Execute(context.Background(), AttachScanResultsInput{LeadID: "lead-1"})

	assert.ErrorIs(t, err, ErrNoScanResults)
	assert.True(t, IsDomainError(err))
}

func TestAttachScanResultsFailsOnUnknownLead(t *testing.T) {
	ctx := context.Background()

	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", ctx, "ghost").Return(nil, entity.ErrLeadNotFound)

	uc := NewAttachScanResultsUseCase(leadRepo, new(MockScenarioRepository))
	_, err := uc.Execute(ctx, AttachScanResultsInput{
		LeadID: "ghost",
		Pairs:  []ocrspace.RatePair{{Rate: 3.125, Points: 0.5}},
	})

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}
