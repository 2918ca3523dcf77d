package binding

import "reflect"

// Parameter describes the handler parameter being bound: its name, declared
// type, and optional attributes supplied by the route builder. The binding
// layer reads it but never mutates it.
type Parameter struct {
	Name       string
	Type       reflect.Type
	Attributes map[string]string
}

// Attribute keys understood by the built-in default binders.
const (
	// AttrOptional marks a parameter that may legitimately be absent from the
	// request; a missing optional parameter binds to an empty envelope instead
	// of failing.
	AttrOptional = "optional"

	// AttrSource pins the request location a default binder reads from
	// ("query", "body", "form", "path"). Unset means source is chosen from
	// the request shape.
	AttrSource = "source"
)

// Param creates a descriptor for a parameter of type T.
// Attributes are given as alternating key/value pairs.
func Param[T any](name string, attrs ...string) Parameter {
	p := Parameter{Name: name, Type: reflect.TypeFor[T]()}
	if len(attrs) > 0 {
		p.Attributes = make(map[string]string, len(attrs)/2)
		for i := 0; i+1 < len(attrs); i += 2 {
			p.Attributes[attrs[i]] = attrs[i+1]
		}
	}
	return p
}

// Attribute returns the attribute value for key, if set.
func (p Parameter) Attribute(key string) (string, bool) {
	v, ok := p.Attributes[key]
	return v, ok
}

// Optional reports whether the parameter is marked optional.
func (p Parameter) Optional() bool {
	v, ok := p.Attributes[AttrOptional]
	return ok && v != "false"
}

// Source returns the pinned binding source, or "" when none is set.
func (p Parameter) Source() string {
	return p.Attributes[AttrSource]
}
