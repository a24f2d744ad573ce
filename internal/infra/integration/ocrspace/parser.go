package ocrspace

import (
	"regexp"
	"strconv"
	"strings"
)

// Rate sheets print rates as 3.125 or 3.12; anything else in the first
// column is a header or a label row.
var ratePattern = regexp.MustCompile(`^\d+\.\d{2,3}$`)

// pointsColumn is where the points value sits in a whitespace-split sheet
// row. Layout drift breaks this quietly; the result list simply gets shorter.
const pointsColumn = 4

// ExtractRatePoints scans OCR text line by line and pulls out (rate, points)
// pairs. Rows that don't fit the expected layout are skipped, never reported.
func ExtractRatePoints(parsedText string) []RatePair {
	if parsedText == "" {
		return nil
	}

	var pairs []RatePair
	for _, row := range strings.Split(parsedText, "\n") {
		parts := strings.Fields(strings.TrimSpace(row))
		if len(parts) <= pointsColumn {
			continue
		}
		if !ratePattern.MatchString(parts[0]) {
			continue
		}

		rate, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			continue
		}
		points, err := strconv.ParseFloat(parts[pointsColumn], 64)
		if err != nil {
			continue
		}

		pairs = append(pairs, RatePair{Rate: rate, Points: points})
	}

	return pairs
}
