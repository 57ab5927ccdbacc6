package option

import (
	"errors"
	"fmt"
)

// ErrCannotMatchUnsetValue is returned by MustMatch for an unset option
// without a None case.
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")

// MaybeOption labels the two states of an optional value.
type MaybeOption int

const (
	None MaybeOption = iota
	Some
)

func (m MaybeOption) String() string {
	if m == Some {
		return "Some"
	}
	return "None"
}

// T is an optional value of type V. The zero value is unset.
type T[V any] struct {
	value V
	set   bool
}

// Something creates an option holding x.
func Something[V any](x V) T[V] {
	return T[V]{value: x, set: true}
}

// Nothing creates an unset option.
func Nothing[V any]() T[V] {
	return T[V]{}
}

// IsNone returns true if o is unset.
func (o T[V]) IsNone() bool {
	return !o.set
}

// State returns Some or None.
func (o T[V]) State() MaybeOption {
	if o.set {
		return Some
	}
	return None
}

// Unwrap returns the value of o, or the zero value of V if o is unset.
func (o T[V]) Unwrap() V {
	return o.value
}

// Get returns the value and whether it is set.
func (o T[V]) Get() (V, bool) {
	return o.value, o.set
}

// OrElse returns the value of o or x if o is unset.
func (o T[V]) OrElse(x V) V {
	if o.set {
		return o.value
	}
	return x
}

func (o T[V]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Match calls some with the value of o, if set, or none otherwise.
func Match[V, R any](o T[V], some func(V) R, none func() R) R {
	if o.set {
		return some(o.value)
	}
	return none()
}

// MustMatch is like Match without a None case. Matching an unset value
// returns ErrCannotMatchUnsetValue.
func MustMatch[V, R any](o T[V], some func(V) (R, error)) (R, error) {
	if !o.set {
		var r R
		return r, ErrCannotMatchUnsetValue
	}
	return some(o.value)
}

// Map transforms a set value and keeps an unset one unset.
func Map[V, W any](o T[V], f func(V) W) T[W] {
	if !o.set {
		return Nothing[W]()
	}
	return Something(f(o.value))
}
