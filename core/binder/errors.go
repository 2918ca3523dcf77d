package binder

import "errors"

// Error variables describe why a default binder declined a request. They are
// surfaced through debug traces; the binding layer itself only sees the
// resulting status code.
var (
	// ErrUnsupportedMediaType indicates the Content-Type header specifies a
	// media type the binder does not handle.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrMissingContentType indicates the request lacks a Content-Type header
	// when one is required for body parsing.
	ErrMissingContentType = errors.New("missing content type")

	// ErrFailedToParseJSON indicates the request body contains invalid JSON
	// or does not match the target type.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseForm indicates form data parsing failed due to malformed
	// boundaries or invalid URL-encoded data.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrFailedToParseQuery indicates query parameter conversion failed.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrFailedToParsePath indicates path parameter extraction or conversion
	// failed.
	ErrFailedToParsePath = errors.New("failed to parse path parameters")

	// ErrMissingParameter indicates a required parameter was absent from the
	// request.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrBodyTooLarge indicates the request body exceeded the configured
	// size limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
