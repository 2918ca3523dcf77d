package binding

// Error is the binding failure produced when the default-binding strategy
// declines a request with a non-200 status. The surrounding framework
// recognizes it with errors.As and renders an HTTP response using exactly
// this status code; it is never retried by the binding layer.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// failure creates the binding failure for a declined default-binding outcome.
func failure(status int) Error {
	return Error{
		Status:  status,
		Code:    "BINDING_FAILED",
		Message: "failed to bind request parameter",
	}
}
