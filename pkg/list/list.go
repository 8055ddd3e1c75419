// Package list provides an ordered, index-addressable sequence container with two interchangeable
// backing implementations: SinglyLinkedList and DoublyLinkedList. Both expose the same capability
// set through the List interface, so callers can swap one for the other without code changes.
// Elements are stored as shared handles (see handle.go); membership and removal-by-element compare
// handle identity, not element values.
//
// The container is single-owner and single-threaded. Callers sharing a list or its handles across
// goroutines must supply their own synchronization; this package provides none.

package list

import (
	"errors"
	"fmt"
	"iter"

	"github.com/nobletooth/chain/pkg/utils"
)

var (
	// ErrIndexOutOfBounds is returned when an index is negative or >= the current size.
	// Indexes are never clamped.
	ErrIndexOutOfBounds = errors.New("index is out of bounds")
	// ErrEmptyList is returned when Shift, Pop, or Remove is invoked on an empty list.
	ErrEmptyList = errors.New("operation on an empty list")
	// ErrElementNotFound is returned when Remove is given a handle no node holds.
	ErrElementNotFound = errors.New("element was not found")
	// ErrUnexpected signals a violated structural invariant, i.e. a bug in the linking code.
	// Callers should propagate it, never treat it as routine control flow.
	ErrUnexpected = errors.New("unexpected internal state")
)

// unexpected reports a violated structural invariant through the monitoring counter and returns
// the error the caller propagates.
func unexpected(module, invariantType, msg string, args ...any) error {
	utils.RaiseInvariant(module, invariantType, msg, args...)
	return fmt.Errorf("%w: %s", ErrUnexpected, invariantType)
}

// List is the capability set shared by both linked list implementations.
// All indexes are zero-based; index size-1 always denotes the tail.
type List[T any] interface {
	// Add appends the given handle at the tail. O(1).
	Add(item *Handle[T])
	// AddValue wraps the bare value into a fresh handle, then appends it. O(1).
	AddValue(value T)
	// InsertAt inserts the handle so that it becomes the element at `index`; inserting at the
	// tail index appends after the current tail. O(n) to locate the position.
	// Returns ErrIndexOutOfBounds when index < 0 or index >= Len().
	InsertAt(item *Handle[T], index int) error
	// InsertValueAt wraps the bare value into a fresh handle, then inserts it like InsertAt.
	InsertValueAt(value T, index int) error
	// Get returns the handle at `index`, or ErrIndexOutOfBounds. O(n).
	Get(index int) (*Handle[T], error)
	// Remove unlinks the node whose content is identity-equal to `item`. O(n).
	// Returns ErrEmptyList on an empty list and ErrElementNotFound when no node holds `item`.
	Remove(item *Handle[T]) error
	// RemoveAt unlinks and returns the handle at `index`, or ErrIndexOutOfBounds.
	// O(1) for the head and (on the doubly linked variant) the tail, O(n) otherwise.
	RemoveAt(index int) (*Handle[T], error)
	// Contains reports whether some node's content is identity-equal to `item`. O(n).
	Contains(item *Handle[T]) bool
	// IsEmpty reports whether the list holds no elements.
	IsEmpty() bool
	// Len returns the number of elements in the list.
	Len() int
	// Shift unlinks and returns the head handle, or ErrEmptyList.
	Shift() (*Handle[T], error)
	// Pop unlinks and returns the tail handle, or ErrEmptyList.
	Pop() (*Handle[T], error)
	// All returns a lazy forward sequence of the stored handles. Each call restarts from the
	// list's current head, so a sequence obtained after a mutation observes the mutated list.
	All() iter.Seq[*Handle[T]]
	// Clone returns a structural copy: fresh nodes linked in the same order, sharing the same
	// content handles with the receiver.
	Clone() List[T]
}
