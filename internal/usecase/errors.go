package usecase

// User-facing messages. Raw infrastructure errors never leave this package.
const (
	MsgMissingFields = "Please fill out all required fields."
	MsgSubmitFailed  = "Something went wrong. Please try again."
)

// DomainError is a user-correctable failure (bad input, business rule).
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

// TechnicalError is a transient/infrastructure failure. Callers surface a
// generic retry message and keep the user's input for another attempt.
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
