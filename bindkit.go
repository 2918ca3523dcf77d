// Package bindkit wires the binding protocol into plain net/http: it adapts
// typed handlers into http.HandlerFunc values, binding their request
// parameter through a registered custom binder or the built-in default
// strategies, and translating binding failures into HTTP error responses.
package bindkit

import (
	"log/slog"
	"net/http"

	"github.com/forgeworks/bindkit/core/binder"
	"github.com/forgeworks/bindkit/core/binding"
	"github.com/forgeworks/bindkit/core/handler"
	"github.com/forgeworks/bindkit/core/logger"
	"github.com/forgeworks/bindkit/core/registry"
)

// wrapper holds the per-route configuration assembled from options.
type wrapper[T any] struct {
	services     registry.Registry
	def          binding.DefaultBinder[T]
	param        binding.Parameter
	errorHandler handler.ErrorHandler
	cfg          binder.Config
}

// Option configures a wrapped route.
type Option[T any] func(*wrapper[T])

// WithServices sets the registry custom binders and loggers are resolved
// from. Routes without one get an empty registry, so every bind takes the
// default path.
func WithServices[T any](services registry.Registry) Option[T] {
	return func(w *wrapper[T]) {
		w.services = services
	}
}

// WithDefaultBinder replaces the built-in default-binding strategy.
func WithDefaultBinder[T any](def binding.DefaultBinder[T]) Option[T] {
	return func(w *wrapper[T]) {
		w.def = def
	}
}

// WithParameter sets the parameter descriptor the route binds; it controls
// the parameter name and attributes such as optionality and pinned source.
func WithParameter[T any](p binding.Parameter) Option[T] {
	return func(w *wrapper[T]) {
		w.param = p
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler[T any](eh handler.ErrorHandler) Option[T] {
	return func(w *wrapper[T]) {
		w.errorHandler = eh
	}
}

// WithBinderConfig sets the limits for the built-in default binders. Ignored
// when WithDefaultBinder is used.
func WithBinderConfig[T any](cfg binder.Config) Option[T] {
	return func(w *wrapper[T]) {
		w.cfg = cfg
	}
}

func newWrapper[T any](opts []Option[T]) *wrapper[T] {
	w := &wrapper[T]{
		param:        binding.Param[T]("request"),
		errorHandler: DefaultErrorHandler,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.services == nil {
		w.services = registry.New()
	}
	if w.def == nil {
		w.def = binder.Default[T](w.cfg)
	}
	return w
}

// Wrap adapts a typed handler into an http.HandlerFunc. Per request it
// creates a handler.Context, binds T through binding.Bind, and invokes fn
// with the resulting envelope. Binding failures and handler errors go to the
// route's error handler; errors from custom binders arrive there unmodified.
func Wrap[T any](fn handler.HandlerFunc[T], opts ...Option[T]) http.HandlerFunc {
	w := newWrapper(opts)

	return func(rw http.ResponseWriter, r *http.Request) {
		ctx := handler.NewContext(rw, r, handler.WithServices(w.services))

		env, err := binding.Bind(ctx, w.param, w.def)
		if err != nil {
			w.errorHandler(ctx, err)
			return
		}

		resp := fn(ctx, env)
		if resp == nil {
			w.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp(rw, r); err != nil {
			w.errorHandler(ctx, err)
		}
	}
}

// DescribeRoute populates schema metadata for the parameter a wrapped route
// would bind. It needs no request and is meant to run during route or schema
// setup, with the same options the route itself uses.
func DescribeRoute[T any](sink binding.Sink, opts ...Option[T]) {
	w := newWrapper(opts)
	binding.Describe[T](w.param, sink, w.services)
}

// routeLogger resolves the registered logger for request-level glue logging.
func routeLogger(services registry.Registry) (*slog.Logger, bool) {
	log, ok := registry.Lookup[*slog.Logger](services)
	return log, ok && log != nil
}

// logHandlerError traces errors that reached the error handler.
func logHandlerError(ctx *handler.Context, err error) {
	log, ok := routeLogger(ctx.Services())
	if !ok {
		return
	}
	r := ctx.Request()
	log.DebugContext(ctx, "request handling failed",
		logger.Component("bindkit"),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.RequestID(ctx.RequestID()),
		logger.Error(err),
	)
}
