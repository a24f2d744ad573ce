package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/loanpulse/internal/entity"
)

func TestSubmitFeedbackSuccess(t *testing.T) {
	ctx := context.Background()

	leadRepo := new(MockLeadRepository)
	feedbackRepo := new(MockFeedbackRepository)
	leadRepo.On("FindByID", ctx, "lead-1").Return(&entity.Lead{ID: "lead-1"}, nil)
	feedbackRepo.On("Create", ctx, mock.MatchedBy(func(f *entity.Feedback) bool {
		return f.LeadID == "lead-1" && f.UserID == "officer-1" && f.SatisfiedRate && !f.SatisfiedPoints
	})).Return(nil)

	uc := NewSubmitFeedbackUseCase(feedbackRepo, leadRepo)
	feedback, err := uc.Execute(ctx, FeedbackInput{
		LeadID:          "lead-1",
		UserID:          "officer-1",
		SatisfiedRate:   boolPtr(true),
		SatisfiedPoints: boolPtr(false),
		Comments:        "rate was fine, points too steep",
	})

	assert.NoError(t, err)
	assert.False(t, feedback.FullySatisfied())
}

func TestSubmitFeedbackRequiresBothVerdicts(t *testing.T) {
	uc := NewSubmitFeedbackUseCase(new(MockFeedbackRepository), new(MockLeadRepository))

	_, err := uc.Execute(context.Background(), FeedbackInput{
		LeadID:        "lead-1",
		UserID:        "officer-1",
		SatisfiedRate: boolPtr(true),
		// satisfied_points missing
	})

	assert.True(t, IsDomainError(err))
	assert.ErrorContains(t, err, "satisfied_points")
}

func TestSubmitFeedbackRejectsOverlongComments(t *testing.T) {
	uc := NewSubmitFeedbackUseCase(new(MockFeedbackRepository), new(MockLeadRepository))

	_, err := uc.Execute(context.Background(), FeedbackInput{
		LeadID:          "lead-1",
		UserID:          "officer-1",
		SatisfiedRate:   boolPtr(true),
		SatisfiedPoints: boolPtr(true),
		Comments:        strings.Repeat("x", 1001),
	})

	assert.True(t, IsDomainError(err))
}

func TestSubmitFeedbackDuplicatePerLeadUserPair(t *testing.T) {
	ctx := context.Background()

	leadRepo := new(MockLeadRepository)
	feedbackRepo := new(MockFeedbackRepository)
	leadRepo.On("FindByID", ctx, "lead-1").Return(&entity.Lead{ID: "lead-1"}, nil)
	feedbackRepo.On("Create", ctx, mock.Anything).Return(entity.ErrFeedbackExists)

	uc := NewSubmitFeedbackUseCase(feedbackRepo, leadRepo)
	_, err := uc.Execute(ctx, FeedbackInput{
		LeadID:          "lead-1",
		UserID:          "officer-1",
		SatisfiedRate:   boolPtr(true),
		SatisfiedPoints: boolPtr(true),
	})

	assert.ErrorIs(t, err, ErrDuplicateFeedback)
}
