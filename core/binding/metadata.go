package binding

import (
	"reflect"

	"github.com/forgeworks/bindkit/core/registry"
)

// Sink is an append-only, ordered collection of opaque metadata facts, owned
// by the caller. The binding layer only appends; it never reads or removes
// entries it did not add.
type Sink interface {
	Append(fact any)
}

// Facts is the slice-backed Sink implementation.
type Facts []any

// Append implements Sink.
func (f *Facts) Append(fact any) {
	*f = append(*f, fact)
}

// AcceptsBody is the generic metadata fact appended for parameters without a
// describable custom binder: the endpoint accepts a request body of the given
// type.
type AcceptsBody struct {
	Parameter string
	Type      reflect.Type
}

// Describe populates metadata for a parameter of type T. It runs during route
// and schema setup, strictly before any request is dispatched, and never
// needs an active request.
//
// A custom binder registered for T that also implements MetadataContributor
// describes itself, with all arguments passed through unchanged. Otherwise a
// single AcceptsBody fact is appended. Given an unchanged registry, repeated
// calls with fresh sinks yield the same facts.
//
// A nil sink or services is a caller bug and panics.
func Describe[T any](p Parameter, sink Sink, services registry.Registry) {
	if sink == nil {
		panic("binding: metadata sink is required")
	}
	if services == nil {
		panic("binding: service registry is required")
	}

	log := loggerFrom(services)
	if b, ok := resolveBinder[T](services, log); ok {
		if c, ok := b.(MetadataContributor); ok {
			c.Describe(p, sink, services)
			return
		}
	}
	sink.Append(AcceptsBody{Parameter: p.Name, Type: reflect.TypeFor[T]()})
}
