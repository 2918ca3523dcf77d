package binding

// Envelope is an immutable carrier for an optionally bound value of type T.
// It is produced exactly once per bind attempt and consumed immediately by the
// handler invocation machinery; an absent value is a legitimate success state
// for optional parameters.
type Envelope[T any] struct {
	value   T
	present bool
}

// Value creates an envelope carrying v.
func Value[T any](v T) Envelope[T] {
	return Envelope[T]{value: v, present: true}
}

// Empty creates an envelope with no bound value.
func Empty[T any]() Envelope[T] {
	return Envelope[T]{}
}

// Value returns the bound value and whether one is present.
func (e Envelope[T]) Value() (T, bool) {
	return e.value, e.present
}

// Present reports whether the envelope carries a value.
func (e Envelope[T]) Present() bool {
	return e.present
}

// ValueOr returns the bound value, or def when the envelope is empty.
func (e Envelope[T]) ValueOr(def T) T {
	if !e.present {
		return def
	}
	return e.value
}
