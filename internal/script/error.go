package script

// ValidationError reports an input rejected by a strict composer before
// any interpolation happened. The message is written for end users; the
// HTTP boundary maps it to a client error status.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the user-facing message.
func (e *ValidationError) Error() string {
	return e.Message
}
