package ocrspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRatePointsFromSheetText(t *testing.T) {
	text := "Rate 15d 30d 45d Price\n" +
		"3.125 99.1 99.0 98.9 0.500\n" +
		"3.250 99.4 99.3 99.2 0.250\n" +
		"3.375 99.8 99.7 99.6 0.125\n"

	pairs := ExtractRatePoints(text)

	assert.Equal(t, []RatePair{
		{Rate: 3.125, Points: 0.5},
		{Rate: 3.25, Points: 0.25},
		{Rate: 3.375, Points: 0.125},
	}, pairs)
}

func TestExtractRatePointsSkipsNonRateRows(t *testing.T) {
	text := "CONFORMING 30YR FIXED\n" +
		"Rate 15d 30d 45d Price\n" +
		"3.12 99.1 99.0 98.9 0.500\n" +
		"LOCK DESK CLOSES 5PM\n"

	pairs := ExtractRatePoints(text)

	assert.Len(t, pairs, 1)
	assert.Equal(t, 3.12, pairs[0].Rate)
}

func TestExtractRatePointsSkipsShortRows(t *testing.T) {
	// A rate with no points column is dropped, not guessed.
	pairs := ExtractRatePoints("3.125 99.1\n3.250")
	assert.Empty(t, pairs)
}

func TestExtractRatePointsSkipsUnparsablePoints(t *testing.T) {
	pairs := ExtractRatePoints("3.125 99.1 99.0 98.9 n/a")
	assert.Empty(t, pairs)
}

func TestExtractRatePointsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractRatePoints(""))
}

func TestExtractRatePointsRejectsWholeNumbersAndLongFractions(t *testing.T) {
	// First column must look like a rate (two or three decimals).
	pairs := ExtractRatePoints("3 99.1 99.0 98.9 0.5\n3.1 99.1 99.0 98.9 0.5\n3.1255 99.1 99.0 98.9 0.5")
	assert.Empty(t, pairs)
}
