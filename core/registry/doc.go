// Package registry provides a minimal type-keyed service registry used by the
// binding layer to resolve optional, per-type collaborators such as custom
// request binders and loggers.
//
// The registry intentionally implements only an optional-lookup contract:
// Get never fails for unregistered types, there are no scopes or lifecycles,
// and registration is expected to happen once during application setup.
//
// # Usage
//
//	services := registry.New()
//	registry.Register[*slog.Logger](services, log)
//	registry.Register[binding.RequestBinder[Session]](services, sessionBinder)
//
//	if log, ok := registry.Lookup[*slog.Logger](services); ok {
//		log.Info("resolved")
//	}
//
// Generic registration keys entries by the type parameter, so an instance can
// be registered under an interface type it implements. This is what lets the
// binding layer key custom binders by the fully parameterized interface type
// RequestBinder[T].
package registry
