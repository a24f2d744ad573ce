package usecase

// LeadInput is the write shape for lead create/update. Pointer fields stay
// nil when the officer leaves the attribute blank.
type LeadInput struct {
	FirstName           string   `json:"first_name"`
	LastName            string   `json:"last_name"`
	PhoneNumber         string   `json:"phone_number"`
	Email               string   `json:"email"`
	FicoScore           *int     `json:"fico_score"`
	LoanType            *string  `json:"loan_type"`
	PropertyType        *string  `json:"property_type"`
	PropertyValue       *float64 `json:"property_value"`
	LoanValue           *float64 `json:"loan_value"`
	LoanPurpose         *string  `json:"loan_purpose"`
	State               *string  `json:"state"`
	Occupancy           *string  `json:"occupancy"`
	InterestLevel       *int     `json:"interest_level"`
	Notes               string   `json:"notes"`
	MinimumRateNeeded   *float64 `json:"minimum_rate_needed"`
	MaximumPointsNeeded *float64 `json:"maximum_points_needed"`
	UserID              string   `json:"user_id"`
}

type FeedbackInput struct {
	LeadID          string `json:"lead_id"`
	UserID          string `json:"user_id"`
	SatisfiedRate   *bool  `json:"satisfied_rate"`
	SatisfiedPoints *bool  `json:"satisfied_points"`
	Comments        string `json:"comments"`
}
