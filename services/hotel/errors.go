package hotel

// ValidationError signals a listing payload that fails the catalog rules.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals that no active hotel matches the request.
type NotFoundError struct{}

func (e NotFoundError) Error() string {
	return "hotel not found"
}
