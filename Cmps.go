package Go_Structs

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Cmp is a total order over T: negative if a<b, 0 if a==b, positive if a>b.
// Every ordered container in this module takes one at construction; two
// structures only agree on ordering if they were given the same Cmp.
type Cmp[T any] func(a, b T) int

// Order returns the natural ascending order of T.
func Order[T constraints.Ordered]() Cmp[T] {
	return func(a, b T) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}
}

// Reverse returns c with its arguments flipped, turning an ascending order
// into a descending one.
func Reverse[T any](c Cmp[T]) Cmp[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// IsNil reports whether v is a nil pointer, interface, map, slice, func or
// channel value. For value kinds it is always false. Containers use this to
// reject absent keys/items before mutating anything.
func IsNil[T any](v T) bool {
	switch r := reflect.ValueOf(&v).Elem(); r.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return r.IsNil()
	}
	return false
}
