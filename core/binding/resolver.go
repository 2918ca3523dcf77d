package binding

import (
	"log/slog"
	"reflect"

	"github.com/forgeworks/bindkit/core/logger"
	"github.com/forgeworks/bindkit/core/registry"
)

// resolveBinder performs the single registry lookup for a custom binder of T,
// keyed by the parameterized interface type RequestBinder[T]. Absence is a
// normal outcome, never an error; both branches emit a debug trace so the
// chosen strategy is visible in diagnostics.
func resolveBinder[T any](services registry.Registry, log *slog.Logger) (RequestBinder[T], bool) {
	t := reflect.TypeFor[T]()
	if b, ok := registry.Lookup[RequestBinder[T]](services); ok {
		log.Debug("custom request binder resolved",
			logger.Component("binding"),
			logger.Type(t),
		)
		return b, true
	}
	log.Debug("no custom request binder registered, using default binding",
		logger.Component("binding"),
		logger.Type(t),
	)
	return nil, false
}

// loggerFrom resolves the registered logger, falling back to a discard logger
// so resolution traces are safe to emit unconditionally.
func loggerFrom(services registry.Registry) *slog.Logger {
	if log, ok := registry.Lookup[*slog.Logger](services); ok && log != nil {
		return log
	}
	return slog.New(slog.DiscardHandler)
}
