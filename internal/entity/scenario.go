package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrScenarioNotFound = errors.New("scenario not found")

// Scenario is one priced offer pulled off a rate sheet. The group fields tag
// the bands/categories the offer applies to; an empty group means the sheet
// row asserted nothing for that attribute.
type Scenario struct {
	ID                 string    `json:"id"`
	LeadID             string    `json:"lead_id"`
	ActualInterestRate *float64  `json:"actual_interest_rate,omitempty"`
	Points             *float64  `json:"points,omitempty"`
	ActualCost         *float64  `json:"actual_cost,omitempty"`
	FicoScoreGroup     string    `json:"fico_score_group,omitempty"`
	LoanTypeGroup      string    `json:"loan_type_group,omitempty"`
	PropertyTypeGroup  string    `json:"property_type_group,omitempty"`
	PropertyValueGroup string    `json:"property_value_group,omitempty"`
	LoanValueGroup     string    `json:"loan_value_group,omitempty"`
	LoanPurposeGroup   string    `json:"loan_purpose_group,omitempty"`
	State              string    `json:"state,omitempty"`
	Occupancy          string    `json:"occupancy,omitempty"`
	RateSheetDate      time.Time `json:"rate_sheet_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewScenario(leadID string, rate, points float64, sheetDate time.Time) *Scenario {
	now := time.Now()
	return &Scenario{
		ID:                 uuid.New().String(),
		LeadID:             leadID,
		ActualInterestRate: &rate,
		Points:             &points,
		RateSheetDate:      sheetDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Matchable reports whether the scenario carries the numbers the matching
// gate needs. A scenario without them never matches anything.
func (s *Scenario) Matchable() bool {
	return s.ActualInterestRate != nil && s.Points != nil
}

// RatePoint is one raw (rate, points) pair extracted from a scan. Rows are
// append-only; a scan never rewrites what an earlier scan recorded.
type RatePoint struct {
	ID         string    `json:"id"`
	ScenarioID string    `json:"scenario_id"`
	Rate       float64   `json:"rate"`
	Points     float64   `json:"points"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewRatePoint(scenarioID string, rate, points float64) *RatePoint {
	return &RatePoint{
		ID:         uuid.New().String(),
		ScenarioID: scenarioID,
		Rate:       rate,
		Points:     points,
		CreatedAt:  time.Now(),
	}
}
