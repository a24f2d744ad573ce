package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/xavierca1/loanpulse/internal/entity"
)

type SubmitFeedbackUseCase struct {
	FeedbackRepo FeedbackRepositoryInterface
	LeadRepo     LeadRepositoryInterface
}

func NewSubmitFeedbackUseCase(feedbackRepo FeedbackRepositoryInterface, leadRepo LeadRepositoryInterface) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		FeedbackRepo: feedbackRepo,
		LeadRepo:     leadRepo,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, input FeedbackInput) (*entity.Feedback, error) {
	if errs := ValidateFeedbackInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "INVALID_FEEDBACK", Message: errs[0].Error()}
	}

	if _, err := uc.LeadRepo.FindByID(ctx, input.LeadID); err != nil {
		return nil, fmt.Errorf("lead lookup failed: %w", err)
	}

	feedback := entity.NewFeedback(
		input.LeadID, input.UserID,
		*input.SatisfiedRate, *input.SatisfiedPoints,
		input.Comments,
	)
	if err := feedback.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_FEEDBACK", Message: err.Error()}
	}

	if err := uc.FeedbackRepo.Create(ctx, feedback); err != nil {
		if errors.Is(err, entity.ErrFeedbackExists) {
			return nil, ErrDuplicateFeedback
		}
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	return feedback, nil
}
