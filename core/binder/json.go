package binder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/forgeworks/bindkit/core/binding"
)

// JSON creates a default binder decoding the request body as JSON into T.
//
// The body is size-limited by cfg.MaxJSONSize, decoded strictly (unknown
// fields and trailing data are rejected), and string fields are sanitized
// after decoding. Outcome statuses:
//
//   - 415 for a missing or non-JSON Content-Type
//   - 413 when the body exceeds the size limit
//   - 400 for malformed JSON, and for an empty body unless the descriptor
//     marks the parameter optional (then success without a value)
func JSON[T any](cfg Config) binding.DefaultBinder[T] {
	cfg = cfg.withDefaults()

	return func(ctx binding.RequestContext, p binding.Parameter) binding.Outcome[T] {
		// Fail fast on requests whose context is already cancelled
		select {
		case <-ctx.Done():
			debugBindFailure(ctx, p, "body",
				fmt.Errorf("%w: %v", ErrFailedToParseJSON, ctx.Err()))
			return binding.Declined[T](http.StatusBadRequest)
		default:
		}

		r := ctx.Request()

		switch mt := mediaType(r); mt {
		case "application/json":
		case "":
			debugBindFailure(ctx, p, "body", ErrMissingContentType)
			return binding.Declined[T](http.StatusUnsupportedMediaType)
		default:
			debugBindFailure(ctx, p, "body",
				fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt))
			return binding.Declined[T](http.StatusUnsupportedMediaType)
		}

		// Read one byte past the limit to detect oversized bodies
		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.MaxJSONSize+1))
		if err != nil {
			debugBindFailure(ctx, p, "body",
				fmt.Errorf("%w: %v", ErrFailedToParseJSON, err))
			return binding.Declined[T](http.StatusBadRequest)
		}
		if int64(len(body)) > cfg.MaxJSONSize {
			debugBindFailure(ctx, p, "body",
				fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, cfg.MaxJSONSize))
			return binding.Declined[T](http.StatusRequestEntityTooLarge)
		}

		if len(bytes.TrimSpace(body)) == 0 {
			if p.Optional() {
				return binding.NotPresent[T]()
			}
			debugBindFailure(ctx, p, "body",
				fmt.Errorf("%w: empty body", ErrFailedToParseJSON))
			return binding.Declined[T](http.StatusBadRequest)
		}

		var v T
		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&v); err != nil {
			debugBindFailure(ctx, p, "body",
				fmt.Errorf("%w: %v", ErrFailedToParseJSON, err))
			return binding.Declined[T](http.StatusBadRequest)
		}

		// Reject trailing data after the JSON value
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			debugBindFailure(ctx, p, "body",
				fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON))
			return binding.Declined[T](http.StatusBadRequest)
		}

		sanitizeDecoded(&v)
		return binding.Found(v)
	}
}

// sanitizeDecoded recursively sanitizes string fields of a decoded value.
func sanitizeDecoded(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	sanitizeReflectValue(rv.Elem())
}
