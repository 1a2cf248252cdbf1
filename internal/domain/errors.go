// internal/domain/errors.go
package domain

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid phone number or password")
	ErrPhoneRegistered     = errors.New("phone number already registered")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrNoAgentsAvailable   = errors.New("no agents available")
	ErrSessionCheckTimeout = errors.New("session check timed out")
	ErrNotFound            = errors.New("not found")
	ErrCacheMiss           = errors.New("cache miss")
	ErrNoSession           = errors.New("no active session")
	ErrMissingDetails      = errors.New("please select a service type and delivery address")
	ErrInvalidStep         = errors.New("invalid workflow step")
	ErrLegacyLoginDisabled = errors.New("legacy login disabled")
)

// PublicError carries a short message that is safe to show to the customer
// while Err keeps the original cause for the logs.
type PublicError struct {
	Err     error
	Message string
}

func (e *PublicError) Error() string {
	return e.Message
}

func (e *PublicError) Unwrap() error {
	return e.Err
}

func NewPublicError(err error, message string) *PublicError {
	return &PublicError{Err: err, Message: message}
}

// UserMessage returns the text a customer should see for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var pub *PublicError
	if errors.As(err, &pub) {
		return pub.Message
	}
	for _, known := range []error{
		ErrInvalidCredentials, ErrPhoneRegistered, ErrNotAuthenticated, ErrNoAgentsAvailable,
		ErrSessionCheckTimeout, ErrNotFound, ErrMissingDetails,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "something went wrong, please try again"
}
