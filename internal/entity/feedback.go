package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrFeedbackExists = errors.New("feedback already submitted for this lead")

// Feedback is one officer's satisfaction call on a lead's outcome.
// At most one record per (lead, user) pair.
type Feedback struct {
	ID              string    `json:"id"`
	LeadID          string    `json:"lead_id"`
	UserID          string    `json:"user_id"`
	SatisfiedRate   bool      `json:"satisfied_rate"`
	SatisfiedPoints bool      `json:"satisfied_points"`
	Comments        string    `json:"comments,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewFeedback(leadID, userID string, satisfiedRate, satisfiedPoints bool, comments string) *Feedback {
	now := time.Now()
	return &Feedback{
		ID:              uuid.New().String(),
		LeadID:          leadID,
		UserID:          userID,
		SatisfiedRate:   satisfiedRate,
		SatisfiedPoints: satisfiedPoints,
		Comments:        comments,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (f *Feedback) Validate() error {
	if f.LeadID == "" {
		return errors.New("lead_id is required")
	}
	if f.UserID == "" {
		return errors.New("user_id is required")
	}
	if len(f.Comments) > 1000 {
		return fmt.Errorf("comments must not exceed 1000 characters, got %d", len(f.Comments))
	}
	return nil
}

func (f *Feedback) FullySatisfied() bool {
	return f.SatisfiedRate && f.SatisfiedPoints
}
