package user

// ValidationError signals a malformed or conflicting registration payload.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// AuthenticationError signals a failed login. The message never reveals
// whether the email or the password was wrong.
type AuthenticationError struct{}

func (e AuthenticationError) Error() string {
	return "invalid email or password"
}

// NotFoundError signals that the requested user does not exist.
type NotFoundError struct{}

func (e NotFoundError) Error() string {
	return "user not found"
}
