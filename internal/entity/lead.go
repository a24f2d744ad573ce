package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

// Dropdown options shared by validation, forms and the matching engine.
// Scenario group tags use these same literals.
var (
	LoanTypes      = []string{"Conventional", "FHA", "VA/IRRL", "USDA"}
	PropertyTypes  = []string{"SFR", "Condo", "MultiUnit", "PUD"}
	LoanPurposes   = []string{"Purchase", "No cash-out refinance", "Cash out refinance"}
	OccupancyTypes = []string{"Primary", "Secondary", "Investment"}
)

// Lead is a borrower profile owned by a loan officer. Everything beyond
// identity and contact is optional; nil means the officer never asked.
type Lead struct {
	ID                  string     `json:"id"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	PhoneNumber         string     `json:"phone_number,omitempty"`
	Email               string     `json:"email,omitempty"`
	CreationDate        *time.Time `json:"creation_date,omitempty"`
	LastContactedDate   *time.Time `json:"last_contacted_date,omitempty"`
	FicoScore           *int       `json:"fico_score,omitempty"`
	LoanType            *string    `json:"loan_type,omitempty"`
	PropertyType        *string    `json:"property_type,omitempty"`
	PropertyValue       *float64   `json:"property_value,omitempty"`
	LoanValue           *float64   `json:"loan_value,omitempty"`
	LoanPurpose         *string    `json:"loan_purpose,omitempty"`
	State               *string    `json:"state,omitempty"`
	Occupancy           *string    `json:"occupancy,omitempty"`
	InterestLevel       *int       `json:"interest_level,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	MinimumRateNeeded   *float64   `json:"minimum_rate_needed,omitempty"`
	MaximumPointsNeeded *float64   `json:"maximum_points_needed,omitempty"`
	UserID              string     `json:"user_id"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func NewLead(firstName, lastName, email, userID string) *Lead {
	now := time.Now()
	return &Lead{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (l *Lead) Validate() error {
	if l.UserID == "" {
		return errors.New("user_id is required")
	}
	if l.FicoScore != nil && (*l.FicoScore < 300 || *l.FicoScore > 850) {
		return fmt.Errorf("fico_score must be between 300 and 850, got %d", *l.FicoScore)
	}
	if err := validateMember("loan_type", l.LoanType, LoanTypes); err != nil {
		return err
	}
	if err := validateMember("property_type", l.PropertyType, PropertyTypes); err != nil {
		return err
	}
	if err := validateMember("loan_purpose", l.LoanPurpose, LoanPurposes); err != nil {
		return err
	}
	return validateMember("occupancy", l.Occupancy, OccupancyTypes)
}

func validateMember(field string, value *string, allowed []string) error {
	if value == nil || *value == "" {
		return nil
	}
	for _, v := range allowed {
		if *value == v {
			return nil
		}
	}
	return fmt.Errorf("%s %q is not a valid option", field, *value)
}
