package flight

import "fmt"

// ValidationError signals missing or malformed search parameters.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// AuthError signals that the credential exchange with the flight provider
// failed. Nothing is cached; the next call retries the exchange.
type AuthError struct {
	Err error
}

func (e AuthError) Error() string {
	return fmt.Sprintf("failed to authenticate with flight provider: %v", e.Err)
}

func (e AuthError) Unwrap() error {
	return e.Err
}
