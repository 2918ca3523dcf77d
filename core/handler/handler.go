package handler

import (
	"net/http"

	"github.com/forgeworks/bindkit/core/binding"
)

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are handled by the framework's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a typed request handler. The framework binds T from the
// request and hands it over as an envelope; an empty envelope means an
// optional parameter was legitimately absent.
type HandlerFunc[T any] func(ctx *Context, in binding.Envelope[T]) Response

// ErrorHandler handles errors during request processing, including binding
// failures and errors returned by custom binders.
type ErrorHandler func(ctx *Context, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware[T any] func(next HandlerFunc[T]) HandlerFunc[T]
