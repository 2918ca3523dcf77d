// Package binder provides the built-in default-binding strategies used when no
// custom binder is registered for a parameter type: JSON bodies, query
// strings, form data, and router path values.
//
// Every strategy satisfies the binding.DefaultBinder contract, reporting its
// result as an outcome with an HTTP status code instead of an error: 200 means
// success (including "optional parameter legitimately absent"), any other
// status is surfaced by the binding layer as a failure with that exact code.
// The underlying cause of a declined outcome is traced at debug level when a
// logger is registered.
//
// # Usage
//
//	// Dispatch on the request shape (the strategy bindkit.Wrap installs):
//	def := binder.Default[CreateUserRequest](binder.DefaultConfig())
//
//	// Or pin a source explicitly:
//	byQuery := binder.Query[int]()
//	byBody := binder.JSON[CreateUserRequest](cfg)
//	byPath := binder.Path[uuid.UUID](chiURLParam)
//
// Scalar targets (string, numbers, bool, uuid.UUID, time.Time, and slices or
// pointers of those) bind from the single request value named by the
// parameter descriptor. Struct targets bind field by field through `query`,
// `form`, and `path` struct tags.
//
// Limits are configurable through Config, which carries env tags for loading
// with the config package:
//
//	cfg, err := config.Load[binder.Config]()
package binder
