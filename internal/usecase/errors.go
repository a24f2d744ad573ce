package usecase

// DomainError is a business-rule rejection the caller can show to the user.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (database, broker, OCR API).
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

var (
	ErrNoScanResults = &DomainError{
		Code:    "NO_SCAN_RESULTS",
		Message: "the scan produced no rate/point rows to attach",
	}
	ErrDuplicateFeedback = &DomainError{
		Code:    "DUPLICATE_FEEDBACK",
		Message: "feedback already submitted for this lead",
	}
)
