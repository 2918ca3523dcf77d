package binder

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/forgeworks/bindkit/core/binding"
)

// Extractor returns the route value for a path parameter name. Routers supply
// their own implementation, e.g. chi.URLParam or a wrapper over mux.Vars.
type Extractor func(r *http.Request, name string) string

// Path creates a default binder reading router path values via the given
// extractor. Scalar targets bind from the single path value named by the
// descriptor; struct targets bind field by field using `path` struct tags.
//
// A missing scalar value declines with 400 unless the descriptor marks the
// parameter optional. Struct fields without a value are left at their zero
// value, matching the tag-based binders.
func Path[T any](extractor Extractor) binding.DefaultBinder[T] {
	return func(ctx binding.RequestContext, p binding.Parameter) binding.Outcome[T] {
		if extractor == nil {
			debugBindFailure(ctx, p, "path",
				fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath))
			return binding.Declined[T](http.StatusInternalServerError)
		}

		r := ctx.Request()

		var v T
		rv := reflect.ValueOf(&v).Elem()

		if isScalarType(rv.Type()) {
			raw := extractor(r, p.Name)
			if raw == "" {
				if p.Optional() {
					return binding.NotPresent[T]()
				}
				debugBindFailure(ctx, p, "path",
					fmt.Errorf("%w: %q", ErrMissingParameter, p.Name))
				return binding.Declined[T](http.StatusBadRequest)
			}
			if err := setFieldValue(rv, rv.Type(), []string{raw}); err != nil {
				debugBindFailure(ctx, p, "path",
					fmt.Errorf("%w: %v", ErrFailedToParsePath, err))
				return binding.Declined[T](http.StatusBadRequest)
			}
			return binding.Found(v)
		}

		rt := rv.Type()
		if rt.Kind() != reflect.Struct {
			debugBindFailure(ctx, p, "path",
				fmt.Errorf("%w: unsupported target type %s", ErrFailedToParsePath, rt))
			return binding.Declined[T](http.StatusBadRequest)
		}

		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() {
				continue
			}

			paramName, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			raw := extractor(r, paramName)
			if raw == "" {
				continue
			}

			if err := setFieldValue(field, fieldType.Type, []string{raw}); err != nil {
				debugBindFailure(ctx, p, "path",
					fmt.Errorf("%w: field %s: %v", ErrFailedToParsePath, fieldType.Name, err))
				return binding.Declined[T](http.StatusBadRequest)
			}
		}

		return binding.Found(v)
	}
}
