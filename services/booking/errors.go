package booking

// ValidationError signals a request that fails the creation or update rules.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals that the target record is absent or not owned by the
// requester. Ownership failures deliberately look identical to absence.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return e.Resource + " not found"
}
