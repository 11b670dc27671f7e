package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrCarNotFound        = wrapKind(ErrNotFound, "car not found")
	ErrUserNotFound       = wrapKind(ErrNotFound, "user not found")
	ErrRentalNotFound     = wrapKind(ErrNotFound, "rental not found")
	ErrSalonNotFound      = wrapKind(ErrNotFound, "salon not found")
	ErrSessionNotFound    = wrapKind(ErrNotFound, "session not found")
	ErrCacheMiss          = errors.New("cache miss")
	ErrValidation         = errors.New("validation failed")
	ErrCarUnavailable     = wrapKind(ErrValidation, "car is not available")
	ErrCarAlreadyReturned = wrapKind(ErrValidation, "car is not rented")
	ErrCarLocked          = wrapKind(ErrValidation, "car is owned or rented")
	ErrUsernameTaken      = wrapKind(ErrValidation, "username already taken")
	ErrVINTaken           = wrapKind(ErrValidation, "vin already exists")
	ErrRentalOverlap      = wrapKind(ErrValidation, "car is already booked for this period")
	ErrInvalidCredentials = wrapKind(ErrValidation, "invalid username or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access denied")
	ErrNotRenter          = wrapKind(ErrForbidden, "car is rented by another user")
	ErrDealerOnly         = wrapKind(ErrForbidden, "dealer role required")
)

// kindError is a public error message that also matches a broader kind.
type kindError struct {
	kind error
	msg  string
}

func wrapKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// ValidationError carries a client-facing message for a rejected input.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// PublicMessage returns the outermost client-facing message in err's chain,
// or "" when err carries none.
func PublicMessage(err error) string {
	for err != nil {
		switch e := err.(type) {
		case *kindError:
			return e.msg
		case *ValidationError:
			return e.Message
		}
		err = errors.Unwrap(err)
	}
	return ""
}
