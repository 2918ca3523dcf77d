package binding

import "net/http"

// Bind resolves and executes the binding strategy for a parameter of type T.
//
// A custom binder registered for T takes precedence: its value is wrapped in
// an Envelope and its errors pass through unmodified, the default strategy is
// never invoked. Without one, def runs exactly once and its outcome is
// translated by the status convention: 200 is success (a missing optional
// value yields an empty envelope), any other status produces an Error
// carrying that code.
//
// Bind adds no retry, coercion, or timeout of its own; cancellation of ctx is
// observed by the delegate strategies. Many Bind calls may run concurrently,
// one per parameter per request.
//
// A nil ctx or def is a caller bug and panics.
func Bind[T any](ctx RequestContext, p Parameter, def DefaultBinder[T]) (Envelope[T], error) {
	if ctx == nil {
		panic("binding: request context is required")
	}
	if def == nil {
		panic("binding: default binder is required")
	}

	services := ctx.Services()
	log := loggerFrom(services)

	if b, ok := resolveBinder[T](services, log); ok {
		v, err := b.Bind(ctx, p)
		if err != nil {
			return Empty[T](), err
		}
		return Value(v), nil
	}

	out := def(ctx, p)
	if out.Status != http.StatusOK {
		return Empty[T](), failure(out.Status)
	}
	if !out.Present {
		return Empty[T](), nil
	}
	return Value(out.Value), nil
}
