package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xavierca1/loanpulse/internal/entity"
)

type FeedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	query := `
		INSERT INTO feedbacks (id, lead_id, user_id, satisfied_rate, satisfied_points, comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		f.ID, f.LeadID, f.UserID,
		f.SatisfiedRate, f.SatisfiedPoints, f.Comments,
		f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		// Unique index on (lead_id, user_id) enforces one feedback per pair.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrFeedbackExists
		}
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.Feedback, error) {
	query := `
		SELECT id, lead_id, user_id, satisfied_rate, satisfied_points, comments, created_at, updated_at
		FROM feedbacks
		WHERE lead_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var feedbacks []*entity.Feedback
	for rows.Next() {
		var f entity.Feedback
		err := rows.Scan(
			&f.ID, &f.LeadID, &f.UserID,
			&f.SatisfiedRate, &f.SatisfiedPoints, &f.Comments,
			&f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, &f)
	}
	return feedbacks, rows.Err()
}
