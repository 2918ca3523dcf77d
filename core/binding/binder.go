package binding

import (
	"context"
	"net/http"

	"github.com/forgeworks/bindkit/core/registry"
)

// RequestContext is the request-scoped view the binding layer needs from the
// surrounding framework: cancellation, the raw request, and the service
// registry used to resolve per-type collaborators.
type RequestContext interface {
	context.Context
	Request() *http.Request
	Services() registry.Registry
}

// RequestBinder is the custom binding capability for values of type T.
// At most one instance is registered per concrete T, keyed in the service
// registry by the parameterized interface type RequestBinder[T] itself:
//
//	registry.Register[binding.RequestBinder[Session]](services, sessionBinder)
//
// A binder's failure semantics are its own; errors it returns pass through the
// binding layer unmodified.
type RequestBinder[T any] interface {
	Bind(ctx RequestContext, p Parameter) (T, error)
}

// BinderFunc adapts a function to the RequestBinder interface.
type BinderFunc[T any] func(ctx RequestContext, p Parameter) (T, error)

// Bind implements RequestBinder.
func (f BinderFunc[T]) Bind(ctx RequestContext, p Parameter) (T, error) {
	return f(ctx, p)
}

// MetadataContributor is the optional secondary capability of a RequestBinder:
// a binder that can describe the parameter shape it produces without an active
// request. It is probed with a type assertion during route setup.
type MetadataContributor interface {
	Describe(p Parameter, sink Sink, services registry.Registry)
}

// Outcome is the result of the default-binding strategy: an optional value and
// an HTTP status code. Status 200 means success regardless of value presence;
// any other status is surfaced as a binding failure with that code.
type Outcome[T any] struct {
	Value   T
	Present bool
	Status  int
}

// Found creates a success outcome carrying v.
func Found[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v, Present: true, Status: http.StatusOK}
}

// NotPresent creates a success outcome without a value, for optional
// parameters legitimately absent from the request.
func NotPresent[T any]() Outcome[T] {
	return Outcome[T]{Status: http.StatusOK}
}

// Declined creates a failure outcome with the given non-200 status.
func Declined[T any](status int) Outcome[T] {
	return Outcome[T]{Status: status}
}

// DefaultBinder is the default-binding strategy contract: an external,
// per-type algorithm reading the body, query string, or route values. The
// binding layer treats it as opaque except for the Outcome status convention.
type DefaultBinder[T any] func(ctx RequestContext, p Parameter) Outcome[T]
