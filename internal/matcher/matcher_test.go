package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/loanpulse/internal/entity"
)

func termedLead(minRate, maxPoints float64) *entity.Lead {
	return &entity.Lead{
		MinimumRateNeeded:   floatPtr(minRate),
		MaximumPointsNeeded: floatPtr(maxPoints),
	}
}

func pricedScenario(rate, points float64) *entity.Scenario {
	return &entity.Scenario{
		ActualInterestRate: floatPtr(rate),
		Points:             floatPtr(points),
	}
}

func TestMatchesFailsClosedOnMissingNumbers(t *testing.T) {
	lead := termedLead(4.0, 2.0)
	scenario := pricedScenario(3.5, 1.0)

	noRate := pricedScenario(3.5, 1.0)
	noRate.ActualInterestRate = nil
	assert.False(t, Matches(lead, noRate))

	noPoints := pricedScenario(3.5, 1.0)
	noPoints.Points = nil
	assert.False(t, Matches(lead, noPoints))

	noMinRate := termedLead(4.0, 2.0)
	noMinRate.MinimumRateNeeded = nil
	assert.False(t, Matches(noMinRate, scenario))

	noMaxPoints := termedLead(4.0, 2.0)
	noMaxPoints.MaximumPointsNeeded = nil
	assert.False(t, Matches(noMaxPoints, scenario))
}

func TestMatchesRatePointsGate(t *testing.T) {
	lead := termedLead(4.0, 2.0)
	lead.LoanPurpose = strPtr("Purchase")

	// Offered rate above the lead's ceiling fails even when every optional
	// attribute lines up.
	tooExpensive := pricedScenario(4.25, 1.0)
	tooExpensive.LoanPurposeGroup = "Purchase"
	assert.False(t, Matches(lead, tooExpensive))

	tooManyPoints := pricedScenario(3.5, 2.5)
	tooManyPoints.LoanPurposeGroup = "Purchase"
	assert.False(t, Matches(lead, tooManyPoints))

	// Ceilings are inclusive.
	atCeiling := pricedScenario(4.0, 2.0)
	atCeiling.LoanPurposeGroup = "Purchase"
	assert.True(t, Matches(lead, atCeiling))
}

func TestMatchesFullWildcard(t *testing.T) {
	// A lead with only required terms matches any scenario passing the gate,
	// whatever the scenario's tags say.
	lead := termedLead(4.0, 2.0)
	scenario := pricedScenario(3.5, 1.0)
	scenario.FicoScoreGroup = "Low"
	scenario.LoanTypeGroup = "FHA"
	scenario.State = "TX"
	scenario.Occupancy = "Investment"

	assert.True(t, Matches(lead, scenario))
}

func TestMatchesBandedAndLiteralChecks(t *testing.T) {
	lead := termedLead(4.0, 2.0)
	lead.FicoScore = intPtr(720)
	lead.PropertyValue = floatPtr(450_000)
	lead.State = strPtr("CA")

	scenario := pricedScenario(3.5, 1.0)
	scenario.FicoScoreGroup = "High"
	scenario.PropertyValueGroup = "Medium"
	scenario.State = "CA"
	assert.True(t, Matches(lead, scenario))

	scenario.FicoScoreGroup = "Medium"
	assert.False(t, Matches(lead, scenario), "banded fico mismatch must fail")

	scenario.FicoScoreGroup = "High"
	scenario.State = "TX"
	assert.False(t, Matches(lead, scenario), "literal state mismatch must fail")
}

func TestMatchesUnbandedScoreActsAsWildcardAgainstUntaggedScenario(t *testing.T) {
	// A fico outside every range bands to nothing, which only matches a
	// scenario with no fico tag.
	lead := termedLead(4.0, 2.0)
	lead.FicoScore = intPtr(900)

	tagged := pricedScenario(3.5, 1.0)
	tagged.FicoScoreGroup = "High"
	assert.False(t, Matches(lead, tagged))

	untagged := pricedScenario(3.5, 1.0)
	assert.True(t, Matches(lead, untagged))
}

func TestCompleteness(t *testing.T) {
	empty := &entity.Lead{}
	assert.Equal(t, 0, Completeness(empty))

	full := &entity.Lead{
		FicoScore:     intPtr(700),
		LoanType:      strPtr("Conventional"),
		PropertyType:  strPtr("SFR"),
		PropertyValue: floatPtr(300_000),
		LoanValue:     floatPtr(240_000),
		LoanPurpose:   strPtr("Purchase"),
		State:         strPtr("TX"),
		Occupancy:     strPtr("Primary"),
	}
	assert.Equal(t, 8, Completeness(full))

	partial := &entity.Lead{
		FicoScore: intPtr(700),
		State:     strPtr("TX"),
	}
	assert.Equal(t, 2, Completeness(partial))

	// Blank strings do not count as populated.
	partial.LoanType = strPtr("")
	assert.Equal(t, 2, Completeness(partial))
}

func TestMatchAllFirstMatchWins(t *testing.T) {
	lead := termedLead(4.0, 2.0)
	lead.FirstName = "Dana"
	lead.Email = "dana@example.com"

	cheap := pricedScenario(3.0, 0.5)
	cheaper := pricedScenario(2.75, 0.25)

	results := MatchAll([]*entity.Lead{lead}, []*entity.Scenario{cheap, cheaper})

	// One result per lead even though both scenarios qualify, and it is the
	// first in scan order, not the best priced.
	assert.Len(t, results, 1)
	assert.Equal(t, "dana@example.com", results[0].Email)
}

func TestMatchAllSkipsUnmatchedLeads(t *testing.T) {
	matched := termedLead(4.0, 2.0)
	matched.Email = "yes@example.com"

	unmatched := termedLead(2.0, 0.1)
	unmatched.Email = "no@example.com"

	scenario := pricedScenario(3.5, 1.0)

	results := MatchAll([]*entity.Lead{unmatched, matched}, []*entity.Scenario{scenario})
	assert.Len(t, results, 1)
	assert.Equal(t, "yes@example.com", results[0].Email)
}

func TestMatchAllSortsByCompletenessDescending(t *testing.T) {
	sparse := termedLead(4.0, 2.0)
	sparse.Email = "sparse@example.com"

	rich := termedLead(4.0, 2.0)
	rich.Email = "rich@example.com"
	rich.FicoScore = intPtr(720)
	rich.LoanType = strPtr("Conventional")
	rich.PropertyType = strPtr("SFR")
	rich.PropertyValue = floatPtr(300_000)
	rich.LoanValue = floatPtr(240_000)
	rich.LoanPurpose = strPtr("Purchase")
	rich.State = strPtr("TX")
	rich.Occupancy = strPtr("Primary")

	scenario := pricedScenario(3.5, 1.0)
	scenario.FicoScoreGroup = "High"
	scenario.LoanTypeGroup = "Conventional"
	scenario.PropertyTypeGroup = "SFR"
	scenario.PropertyValueGroup = "Medium"
	scenario.LoanValueGroup = "Medium"
	scenario.LoanPurposeGroup = "Purchase"
	scenario.State = "TX"
	scenario.Occupancy = "Primary"

	results := MatchAll([]*entity.Lead{sparse, rich}, []*entity.Scenario{scenario})
	assert.Len(t, results, 2)
	assert.Equal(t, "rich@example.com", results[0].Email)
	assert.Equal(t, "sparse@example.com", results[1].Email)
}

func TestMatchAllTiesKeepInputOrder(t *testing.T) {
	first := termedLead(4.0, 2.0)
	first.Email = "first@example.com"
	first.State = strPtr("TX")

	second := termedLead(4.0, 2.0)
	second.Email = "second@example.com"
	second.State = strPtr("TX")

	scenario := pricedScenario(3.5, 1.0)
	scenario.State = "TX"

	results := MatchAll([]*entity.Lead{first, second}, []*entity.Scenario{scenario})
	assert.Len(t, results, 2)
	assert.Equal(t, "first@example.com", results[0].Email)
	assert.Equal(t, "second@example.com", results[1].Email)
}

func TestMatchAllEmptyInputs(t *testing.T) {
	assert.Empty(t, MatchAll(nil, nil))
	assert.Empty(t, MatchAll([]*entity.Lead{termedLead(4, 2)}, nil))
	assert.Empty(t, MatchAll(nil, []*entity.Scenario{pricedScenario(3.5, 1)}))
}

func TestMatchAllSkipsRateGateFailureThenMatches(t *testing.T) {
	lead := termedLead(3.75, 1.0)
	lead.FicoScore = intPtr(750)
	lead.LoanPurpose = strPtr("Purchase")
	lead.Email = "buyer@example.com"

	overpriced := pricedScenario(4.0, 0.5)
	overpriced.FicoScoreGroup = "High"

	fits := pricedScenario(3.5, 0.5)
	fits.FicoScoreGroup = "High"
	fits.LoanPurposeGroup = "Purchase"

	results := MatchAll([]*entity.Lead{lead}, []*entity.Scenario{overpriced, fits})
	assert.Len(t, results, 1)
	assert.Equal(t, "buyer@example.com", results[0].Email)
	assert.Equal(t, 750, *results[0].FicoScore)
	assert.Equal(t, "Purchase", *results[0].LoanPurpose)
}
