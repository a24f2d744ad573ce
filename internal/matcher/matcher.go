// Package matcher decides which leads can be offered which rate-sheet
// scenarios. It is pure: no I/O, no shared state, safe to call from
// concurrent requests.
package matcher

import (
	"sort"

	"github.com/xavierca1/loanpulse/internal/entity"
)

// MatchResult carries the matched lead's identity and required terms. It is
// built fresh on every run and never persisted.
type MatchResult struct {
	FirstName           string   `json:"first_name"`
	LastName            string   `json:"last_name"`
	Email               string   `json:"email"`
	FicoScore           *int     `json:"fico_score"`
	LoanPurpose         *string  `json:"loan_purpose"`
	MinimumRateNeeded   *float64 `json:"minimum_rate_needed"`
	MaximumPointsNeeded *float64 `json:"maximum_points_needed"`
}

// Matches reports whether a scenario is compatible with a lead.
//
// The rate/points gate is mandatory and fails closed: both sides must carry
// their numbers, and the offered rate and points must sit at or below the
// lead's ceilings. Every other check is wildcarded when the lead left the
// attribute unset.
func Matches(lead *entity.Lead, s *entity.Scenario) bool {
	if !s.Matchable() {
		return false
	}
	if lead.MinimumRateNeeded == nil || lead.MaximumPointsNeeded == nil {
		return false
	}
	if *s.ActualInterestRate > *lead.MinimumRateNeeded || *s.Points > *lead.MaximumPointsNeeded {
		return false
	}

	ficoMatch := lead.FicoScore == nil || string(FicoBand(lead.FicoScore)) == s.FicoScoreGroup
	loanTypeMatch := lead.LoanType == nil || *lead.LoanType == s.LoanTypeGroup
	propertyTypeMatch := lead.PropertyType == nil || *lead.PropertyType == s.PropertyTypeGroup
	propertyValueMatch := lead.PropertyValue == nil || string(ValueBand(lead.PropertyValue)) == s.PropertyValueGroup
	loanValueMatch := lead.LoanValue == nil || string(ValueBand(lead.LoanValue)) == s.LoanValueGroup
	loanPurposeMatch := lead.LoanPurpose == nil || *lead.LoanPurpose == s.LoanPurposeGroup
	stateMatch := lead.State == nil || *lead.State == s.State
	occupancyMatch := lead.Occupancy == nil || *lead.Occupancy == s.Occupancy

	return ficoMatch && loanTypeMatch && propertyTypeMatch &&
		propertyValueMatch && loanValueMatch && loanPurposeMatch &&
		stateMatch && occupancyMatch
}

// Completeness counts how many of the eight optional profile fields are
// populated. Used only as a ranking signal, higher first.
func Completeness(lead *entity.Lead) int {
	score := 0
	if lead.FicoScore != nil {
		score++
	}
	if present(lead.LoanType) {
		score++
	}
	if present(lead.PropertyType) {
		score++
	}
	if lead.PropertyValue != nil {
		score++
	}
	if lead.LoanValue != nil {
		score++
	}
	if present(lead.LoanPurpose) {
		score++
	}
	if present(lead.State) {
		score++
	}
	if present(lead.Occupancy) {
		score++
	}
	return score
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// MatchAll scans scenarios in the given order for each lead and emits at most
// one result per lead, taking the first scenario that matches. Leads with no
// match are silently skipped. Results come back sorted by completeness
// descending; ties keep the input order.
func MatchAll(leads []*entity.Lead, scenarios []*entity.Scenario) []MatchResult {
	type scoredResult struct {
		result MatchResult
		score  int
	}

	var matched []scoredResult
	for _, lead := range leads {
		for _, s := range scenarios {
			if !Matches(lead, s) {
				continue
			}
			matched = append(matched, scoredResult{
				result: MatchResult{
					FirstName:           lead.FirstName,
					LastName:            lead.LastName,
					Email:               lead.Email,
					FicoScore:           lead.FicoScore,
					LoanPurpose:         lead.LoanPurpose,
					MinimumRateNeeded:   lead.MinimumRateNeeded,
					MaximumPointsNeeded: lead.MaximumPointsNeeded,
				},
				score: Completeness(lead),
			})
			break
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	results := make([]MatchResult, 0, len(matched))
	for _, m := range matched {
		results = append(results, m.result)
	}
	return results
}
