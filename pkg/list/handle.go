// This module defines the shared content cell stored inside list nodes. A *Handle is held by the
// list and by any caller that received it through Add, Get, or iteration; every holder observes
// in-place mutations of Value, so an element can be updated without re-inserting it. Identity-based
// operations (Contains, Remove) compare handle pointers, never the stored values: two handles
// wrapping equal values are still distinct elements.

package list

// Handle is a shared, mutable cell holding one element of type T.
type Handle[T any] struct {
	Value T
}

// NewHandle wraps a bare value into a fresh handle.
func NewHandle[T any](value T) *Handle[T] {
	return &Handle[T]{Value: value}
}
