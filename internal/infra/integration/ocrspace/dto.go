package ocrspace

// parseResponse mirrors the relevant slice of the OCR.space /parse/image
// payload. ErrorMessage arrives as either a string or an array of strings,
// so it is decoded loosely.
type parseResponse struct {
	ParsedResults         []parsedResult `json:"ParsedResults"`
	IsErroredOnProcessing bool           `json:"IsErroredOnProcessing"`
	ErrorMessage          any            `json:"ErrorMessage"`
	OCRExitCode           int            `json:"OCRExitCode"`
}

type parsedResult struct {
	ParsedText   string `json:"ParsedText"`
	ErrorMessage string `json:"ErrorMessage"`
}

// RatePair is one (rate, points) row lifted from a scanned rate sheet. The
// extraction is a heuristic; pairs come with no completeness guarantee.
type RatePair struct {
	Rate   float64 `json:"rate"`
	Points float64 `json:"points"`
}
