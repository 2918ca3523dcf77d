package binder

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/forgeworks/bindkit/core/binding"
)

// Query creates a default binder reading from the URL query string.
//
// Scalar target types (string, numbers, bool, uuid.UUID, time.Time, slices
// and pointers of those) bind from the single query parameter named by the
// descriptor. Struct targets bind field by field using `query` struct tags:
//
//	type SearchRequest struct {
//		Query    string   `query:"q"`
//		Page     int      `query:"page"`
//		Tags     []string `query:"tags"`   // ?tags=go&tags=web or ?tags=go,web
//		Active   *bool    `query:"active"` // Optional
//		Internal string   `query:"-"`      // Skipped
//	}
//
// A missing scalar parameter declines with 400 unless the descriptor marks it
// optional, in which case the outcome is success without a value. Conversion
// failures decline with 400.
func Query[T any]() binding.DefaultBinder[T] {
	return func(ctx binding.RequestContext, p binding.Parameter) binding.Outcome[T] {
		values := ctx.Request().URL.Query()

		var v T
		rv := reflect.ValueOf(&v).Elem()

		if isScalarType(rv.Type()) {
			raw, ok := values[p.Name]
			if !ok || len(raw) == 0 {
				if p.Optional() {
					return binding.NotPresent[T]()
				}
				debugBindFailure(ctx, p, "query",
					fmt.Errorf("%w: %q", ErrMissingParameter, p.Name))
				return binding.Declined[T](http.StatusBadRequest)
			}
			if err := setFieldValue(rv, rv.Type(), raw); err != nil {
				debugBindFailure(ctx, p, "query",
					fmt.Errorf("%w: %v", ErrFailedToParseQuery, err))
				return binding.Declined[T](http.StatusBadRequest)
			}
			return binding.Found(v)
		}

		if err := bindToStruct(&v, "query", values, ErrFailedToParseQuery); err != nil {
			debugBindFailure(ctx, p, "query", err)
			return binding.Declined[T](http.StatusBadRequest)
		}
		return binding.Found(v)
	}
}
