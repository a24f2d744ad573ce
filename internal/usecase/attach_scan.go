package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/loanpulse/internal/infra/integration/ocrspace"
)

// AttachScanResultsUseCase turns the (rate, points) rows extracted from a
// rate-sheet scan into scenarios under a lead. Each distinct pair maps to one
// scenario; the raw pair is additionally recorded as a rate point so repeated
// scans stay auditable.
type AttachScanResultsUseCase struct {
	LeadRepo     LeadRepositoryInterface
	ScenarioRepo ScenarioRepositoryInterface
}

func NewAttachScanResultsUseCase(leadRepo LeadRepositoryInterface, scenarioRepo ScenarioRepositoryInterface) *AttachScanResultsUseCase {
	return &AttachScanResultsUseCase{
		LeadRepo:     leadRepo,
		ScenarioRepo: scenarioRepo,
	}
}

type AttachScanResultsInput struct {
	LeadID        string
	RateSheetDate time.Time
	Pairs         []ocrspace.RatePair
}

// Execute returns how many pairs were attached.
func (uc *AttachScanResultsUseCase) Execute(ctx context.Context, input AttachScanResultsInput) (int, error) {
	if len(input.Pairs) == 0 {
		return 0, ErrNoScanResults
	}

	if _, err := uc.LeadRepo.FindByID(ctx, input.LeadID); err != nil {
		return 0, fmt.Errorf("lead lookup failed: %w", err)
	}

	sheetDate := input.RateSheetDate
	if sheetDate.IsZero() {
		sheetDate = time.Now()
	}

	attached := 0
	for _, pair := range input.Pairs {
		scenario, err := uc.ScenarioRepo.FindOrCreate(ctx, input.LeadID, pair.Rate, pair.Points, sheetDate)
		if err != nil {
			return attached, fmt.Errorf("failed to store scenario %.3f/%.2f: %w", pair.Rate, pair.Points, err)
		}
		if err := uc.ScenarioRepo.AddRatePoint(ctx, scenario.ID, pair.Rate, pair.Points); err != nil {
			return attached, fmt.Errorf("failed to record rate point: %w", err)
		}
		attached++
	}

	return attached, nil
}
