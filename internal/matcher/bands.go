package matcher

import "math"

// Band is a coarse discretization of a numeric lead attribute. Scenario group
// tags carry the same literals, so predicate checks are plain string equality.
type Band string

const (
	BandNone   Band = ""
	BandLow    Band = "Low"
	BandMedium Band = "Medium"
	BandHigh   Band = "High"
)

type ficoRange struct {
	band     Band
	min, max int
}

type valueRange struct {
	band     Band
	min, max float64
}

// Ranges are scanned in declaration order; the first containing range wins.
var ficoRanges = []ficoRange{
	{BandLow, 300, 600},
	{BandMedium, 601, 700},
	{BandHigh, 701, 850},
}

// Values strictly between 200000 and 201000 fall outside every range and
// stay unbanded. That hole is part of the published band tables; do not
// close it without changing the tables.
var valueRanges = []valueRange{
	{BandLow, 1, 200_000},
	{BandMedium, 201_000, 600_000},
	{BandHigh, 601_000, math.Inf(1)},
}

// FicoBand classifies a credit score. Nil and out-of-range scores get
// BandNone, which the predicate treats as a wildcard.
func FicoBand(score *int) Band {
	if score == nil {
		return BandNone
	}
	for _, r := range ficoRanges {
		if *score >= r.min && *score <= r.max {
			return r.band
		}
	}
	return BandNone
}

// ValueBand classifies a dollar amount (property or loan value).
func ValueBand(amount *float64) Band {
	if amount == nil {
		return BandNone
	}
	for _, r := range valueRanges {
		if *amount >= r.min && *amount <= r.max {
			return r.band
		}
	}
	return BandNone
}
