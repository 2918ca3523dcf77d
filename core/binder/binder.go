package binder

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/forgeworks/bindkit/core/binding"
	"github.com/forgeworks/bindkit/core/logger"
	"github.com/forgeworks/bindkit/core/registry"
)

// Default creates the built-in default-binding strategy for T. It picks the
// request location from the parameter's pinned source attribute when set, and
// from the request shape otherwise: body-carrying content types bind via JSON
// or Form, everything else via Query.
//
// Path binding is not part of Default because it needs a router-specific
// extractor; install Path explicitly where route values are bound.
func Default[T any](cfg Config) binding.DefaultBinder[T] {
	jsonBind := JSON[T](cfg)
	formBind := Form[T](cfg)
	queryBind := Query[T]()

	return func(ctx binding.RequestContext, p binding.Parameter) binding.Outcome[T] {
		switch p.Source() {
		case "body":
			return jsonBind(ctx, p)
		case "form":
			return formBind(ctx, p)
		case "query":
			return queryBind(ctx, p)
		}

		switch mediaType(ctx.Request()) {
		case "application/json":
			return jsonBind(ctx, p)
		case "application/x-www-form-urlencoded", "multipart/form-data":
			return formBind(ctx, p)
		default:
			return queryBind(ctx, p)
		}
	}
}

// mediaType returns the request media type with parameters stripped,
// e.g. "application/json" for "application/json; charset=utf-8".
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = ct[:idx]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// debugBindFailure traces the underlying cause of a declined outcome. The
// outcome itself carries only a status code, so the detail is preserved here
// at debug level.
func debugBindFailure(ctx binding.RequestContext, p binding.Parameter, source string, err error) {
	log, ok := registry.Lookup[*slog.Logger](ctx.Services())
	if !ok || log == nil {
		return
	}
	log.DebugContext(ctx, "default binding declined request",
		logger.Component("binder"),
		logger.Key("source", source),
		logger.Param(p.Name),
		logger.Error(err),
	)
}
