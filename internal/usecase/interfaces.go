package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/loanpulse/internal/entity"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Lead, error)
}

type ScenarioRepositoryInterface interface {
	FindOrCreate(ctx context.Context, leadID string, rate, points float64, sheetDate time.Time) (*entity.Scenario, error)
	ListByRateSheetDate(ctx context.Context, date time.Time) ([]*entity.Scenario, error)
	AddRatePoint(ctx context.Context, scenarioID string, rate, points float64) error
}

type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
}

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
