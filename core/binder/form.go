package binder

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/forgeworks/bindkit/core/binding"
)

// Form creates a default binder reading application/x-www-form-urlencoded and
// multipart/form-data bodies into a struct T using `form` struct tags:
//
//	type UpdateProfileRequest struct {
//		Name     string   `form:"name"`
//		Tags     []string `form:"tags"` // Multi-value field
//		Public   bool     `form:"public"`
//		Internal string   `form:"-"`    // Skipped
//	}
//
// Outcome statuses: 415 for a missing or non-form Content-Type, 400 for
// malformed bodies, invalid multipart boundaries, and conversion failures.
func Form[T any](cfg Config) binding.DefaultBinder[T] {
	cfg = cfg.withDefaults()

	return func(ctx binding.RequestContext, p binding.Parameter) binding.Outcome[T] {
		r := ctx.Request()

		ct := r.Header.Get("Content-Type")
		if ct == "" {
			debugBindFailure(ctx, p, "form", ErrMissingContentType)
			return binding.Declined[T](http.StatusUnsupportedMediaType)
		}

		mt, params, err := mime.ParseMediaType(ct)
		if err != nil {
			debugBindFailure(ctx, p, "form",
				fmt.Errorf("%w: %v", ErrFailedToParseForm, err))
			return binding.Declined[T](http.StatusBadRequest)
		}

		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				debugBindFailure(ctx, p, "form",
					fmt.Errorf("%w: %v", ErrFailedToParseForm, err))
				return binding.Declined[T](http.StatusBadRequest)
			}

		case "multipart/form-data":
			if !validateBoundary(params["boundary"]) {
				debugBindFailure(ctx, p, "form",
					fmt.Errorf("%w: invalid multipart boundary", ErrFailedToParseForm))
				return binding.Declined[T](http.StatusBadRequest)
			}
			if err := r.ParseMultipartForm(cfg.MaxMemory); err != nil {
				debugBindFailure(ctx, p, "form",
					fmt.Errorf("%w: %v", ErrFailedToParseForm, err))
				return binding.Declined[T](http.StatusBadRequest)
			}

		default:
			debugBindFailure(ctx, p, "form",
				fmt.Errorf("%w: got %s, expected form data", ErrUnsupportedMediaType, mt))
			return binding.Declined[T](http.StatusUnsupportedMediaType)
		}

		var v T
		if err := bindToStruct(&v, "form", r.Form, ErrFailedToParseForm); err != nil {
			debugBindFailure(ctx, p, "form", err)
			return binding.Declined[T](http.StatusBadRequest)
		}
		return binding.Found(v)
	}
}
