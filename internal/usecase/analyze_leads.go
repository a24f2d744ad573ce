package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/loanpulse/internal/matcher"
)

// AnalyzeLeadsUseCase loads one officer's leads plus a day's scenario pool and
// runs the matching engine over the snapshot. The matching itself is pure;
// this is the only place the pool query happens.
type AnalyzeLeadsUseCase struct {
	LeadRepo     LeadRepositoryInterface
	ScenarioRepo ScenarioRepositoryInterface
}

func NewAnalyzeLeadsUseCase(leadRepo LeadRepositoryInterface, scenarioRepo ScenarioRepositoryInterface) *AnalyzeLeadsUseCase {
	return &AnalyzeLeadsUseCase{
		LeadRepo:     leadRepo,
		ScenarioRepo: scenarioRepo,
	}
}

type AnalyzeLeadsInput struct {
	UserID        string
	RateSheetDate *time.Time // nil means today's sheet
}

func (uc *AnalyzeLeadsUseCase) Execute(ctx context.Context, input AnalyzeLeadsInput) ([]matcher.MatchResult, error) {
	date := time.Now()
	if input.RateSheetDate != nil {
		date = *input.RateSheetDate
	}

	leads, err := uc.LeadRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}

	scenarios, err := uc.ScenarioRepo.ListByRateSheetDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario pool: %w", err)
	}

	return matcher.MatchAll(leads, scenarios), nil
}
