package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateLeadInput(input LeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	}
	if strings.TrimSpace(input.UserID) == "" {
		errors = append(errors, ValidationError{"user_id", "is required"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if input.FicoScore != nil && (*input.FicoScore < 300 || *input.FicoScore > 850) {
		errors = append(errors, ValidationError{"fico_score", "must be between 300 and 850"})
	}
	if input.MinimumRateNeeded != nil && *input.MinimumRateNeeded < 0 {
		errors = append(errors, ValidationError{"minimum_rate_needed", "must not be negative"})
	}
	if input.MaximumPointsNeeded != nil && *input.MaximumPointsNeeded < 0 {
		errors = append(errors, ValidationError{"maximum_points_needed", "must not be negative"})
	}
	if input.PropertyValue != nil && *input.PropertyValue < 0 {
		errors = append(errors, ValidationError{"property_value", "must not be negative"})
	}
	if input.LoanValue != nil && *input.LoanValue < 0 {
		errors = append(errors, ValidationError{"loan_value", "must not be negative"})
	}

	if input.State != nil && *input.State != "" && len(*input.State) != 2 {
		errors = append(errors, ValidationError{"state", "must be a 2-letter state code"})
	}

	return errors
}

func ValidateFeedbackInput(input FeedbackInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}
	if strings.TrimSpace(input.UserID) == "" {
		errors = append(errors, ValidationError{"user_id", "is required"})
	}
	if input.SatisfiedRate == nil {
		errors = append(errors, ValidationError{"satisfied_rate", "is required"})
	}
	if input.SatisfiedPoints == nil {
		errors = append(errors, ValidationError{"satisfied_points", "is required"})
	}
	if len(input.Comments) > 1000 {
		errors = append(errors, ValidationError{"comments", "must not exceed 1000 characters"})
	}

	return errors
}
