package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/forgeworks/bindkit/core/registry"
)

// Context is the default request context implementation. It carries the raw
// request/response pair, router path parameters, and the service registry the
// binding layer resolves collaborators from. The context.Context methods
// delegate to the request's context, so cancellation follows the request.
type Context struct {
	w         http.ResponseWriter
	r         *http.Request
	params    map[string]string
	services  registry.Registry
	requestID string
}

// Option configures a Context during construction.
type Option func(*Context)

// WithServices sets the registry custom binders and loggers are resolved from.
func WithServices(services registry.Registry) Option {
	return func(c *Context) {
		c.services = services
	}
}

// WithParams seeds router path parameters.
func WithParams(params map[string]string) Option {
	return func(c *Context) {
		c.params = params
	}
}

// NewContext creates a request context. Each context gets a fresh request id;
// an empty registry is used when none is supplied so lookups degrade to the
// default-binding path instead of failing.
func NewContext(w http.ResponseWriter, r *http.Request, opts ...Option) *Context {
	c := &Context{
		w:         w,
		r:         r,
		requestID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.services == nil {
		c.services = registry.New()
	}
	return c
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value delegates to the request's context.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Services returns the service registry for this request.
func (c *Context) Services() registry.Registry {
	return c.services
}

// RequestID returns the identifier assigned to this request.
func (c *Context) RequestID() string {
	return c.requestID
}

// Param returns the value of the URL parameter by key.
func (c *Context) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}
