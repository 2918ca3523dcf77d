// Package binding implements the strategy-resolution protocol at the heart of
// request parameter binding: given a request and a target type T, decide
// whether a custom binder is registered for T, invoke it if so, and otherwise
// fall back to a default-binding strategy, normalizing either result into an
// immutable Envelope.
//
// # Resolution
//
// Custom binders are resolved from the service registry, keyed by the
// parameterized interface type RequestBinder[T]. Registration happens once at
// setup; resolution happens per bind call and treats "not registered" as a
// normal state:
//
//	services := registry.New()
//	registry.Register[binding.RequestBinder[Session]](services, sessionBinder)
//
// # Binding
//
// Bind is invoked by the framework's parameter machinery, once per handler
// parameter per request:
//
//	env, err := binding.Bind(ctx, binding.Param[Session]("session"), defaultBinder)
//	if err != nil {
//		// *binding.Error carries the HTTP status to surface;
//		// custom binder errors arrive untranslated.
//	}
//	if session, ok := env.Value(); ok {
//		// bound value present
//	}
//
// The default strategy contract is opaque to this package except for its
// status convention: an Outcome with status 200 is a success even when the
// value is absent (an optional parameter legitimately missing), and any other
// status is surfaced as an Error with exactly that code.
//
// # Metadata
//
// Describe supports schema and OpenAPI tooling without executing a request.
// A custom binder that implements MetadataContributor describes itself;
// otherwise the parameter is described by a generic AcceptsBody fact:
//
//	var facts binding.Facts
//	binding.Describe[CreateUserRequest](param, &facts, services)
//
// # Concurrency
//
// The package holds no mutable state. Concurrent Bind calls share only the
// registry, which is read-only at request time; delegates observe request
// cancellation themselves and no additional timeout is imposed here.
package binding
