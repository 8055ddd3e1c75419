// This module implements the singly linked List variant. Each node holds a single forward link,
// so insertion and removal at the head are O(1) while tail and interior mutations must first
// locate the predecessor by a forward scan from the head; Pop in particular re-walks the list to
// re-establish the tail. Interior splices rewire exactly one forward link on the predecessor.

package list

import (
	"fmt"
	"iter"
)

// singlyModule labels invariant violations raised by this implementation.
const singlyModule = "singly_list"

// singlyNode is a node of SinglyLinkedList, reachable only by walking forward links from the head.
type singlyNode[T any] struct {
	content *Handle[T]
	next    *singlyNode[T]
}

// SinglyLinkedList is the one-directional List implementation.
// The zero value is an empty list ready to use.
type SinglyLinkedList[T any] struct { // Implements List.
	head *singlyNode[T]
	tail *singlyNode[T]
	size int
}

var _ List[int] = (*SinglyLinkedList[int])(nil)

// NewSinglyLinkedList constructs an empty singly linked list.
func NewSinglyLinkedList[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// indexCheck validates `index` against the current size before any link is touched.
func (l *SinglyLinkedList[T]) indexCheck(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, l.size)
	}
	return nil
}

// nodeAt walks forward from the head and returns the node at `index`.
func (l *SinglyLinkedList[T]) nodeAt(index int) (*singlyNode[T], error) {
	if err := l.indexCheck(index); err != nil {
		return nil, err
	}
	node := l.head
	if node == nil {
		return nil, unexpected(singlyModule, "nil_head",
			"Head is nil while size reports a non-empty list.", "size", l.size)
	}
	for i := 0; i < index; i++ {
		if node.next == nil {
			return nil, unexpected(singlyModule, "forward_link_missing",
				"An in-bounds walk ran out of forward links.", "reached", i, "index", index, "size", l.size)
		}
		node = node.next
	}
	return node, nil
}

// Add appends the handle at the tail.
func (l *SinglyLinkedList[T]) Add(item *Handle[T]) {
	node := &singlyNode[T]{content: item}
	if l.tail == nil { // Empty list: the same node serves as both head and tail.
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.size++
}

// AddValue wraps the bare value into a fresh handle and appends it.
func (l *SinglyLinkedList[T]) AddValue(value T) {
	l.Add(NewHandle(value))
}

// InsertAt inserts the handle at `index`. The head and tail positions are handled as O(1)
// special cases; an interior insert splices a new node after the predecessor found by scanning.
func (l *SinglyLinkedList[T]) InsertAt(item *Handle[T], index int) error {
	if err := l.indexCheck(index); err != nil {
		return err
	}
	switch {
	case index == 0: // The new node becomes the head; the old head is its forward neighbor.
		l.head = &singlyNode[T]{content: item, next: l.head}
		l.size++
	case index == l.size-1: // Tail index denotes the tail: append after the current tail.
		l.Add(item)
	default:
		prev, err := l.nodeAt(index - 1)
		if err != nil {
			return err
		}
		if prev.next == nil {
			return unexpected(singlyModule, "interior_successor_missing",
				"An interior predecessor has no forward link.", "index", index, "size", l.size)
		}
		prev.next = &singlyNode[T]{content: item, next: prev.next}
		l.size++
	}
	return nil
}

// InsertValueAt wraps the bare value into a fresh handle and inserts it at `index`.
func (l *SinglyLinkedList[T]) InsertValueAt(value T, index int) error {
	return l.InsertAt(NewHandle(value), index)
}

// Get returns the handle at `index`.
func (l *SinglyLinkedList[T]) Get(index int) (*Handle[T], error) {
	node, err := l.nodeAt(index)
	if err != nil {
		return nil, err
	}
	return node.content, nil
}

// Remove unlinks the node whose content is identity-equal to `item` by rewiring its
// predecessor's forward link.
func (l *SinglyLinkedList[T]) Remove(item *Handle[T]) error {
	if l.head == nil {
		return fmt.Errorf("%w: remove", ErrEmptyList)
	}
	if l.head.content == item {
		_, err := l.Shift()
		return err
	}
	// Scan for the predecessor of the node holding `item`.
	for prev := l.head; prev.next != nil; prev = prev.next {
		if prev.next.content != item {
			continue
		}
		if prev.next == l.tail {
			l.tail = prev
			prev.next = nil
		} else {
			prev.next = prev.next.next
		}
		l.size--
		return nil
	}
	return fmt.Errorf("%w: no node holds the given handle", ErrElementNotFound)
}

// RemoveAt unlinks and returns the handle at `index`. The head and tail fall through to
// Shift and Pop; an interior removal rewires one forward link on the predecessor.
func (l *SinglyLinkedList[T]) RemoveAt(index int) (*Handle[T], error) {
	if err := l.indexCheck(index); err != nil {
		return nil, err
	}
	switch {
	case index == 0:
		return l.Shift()
	case index == l.size-1:
		return l.Pop()
	}
	prev, err := l.nodeAt(index - 1)
	if err != nil {
		return nil, err
	}
	target := prev.next
	if target == nil {
		return nil, unexpected(singlyModule, "interior_target_missing",
			"An interior predecessor has no forward link.", "index", index, "size", l.size)
	}
	prev.next = target.next
	target.next = nil
	l.size--
	return target.content, nil
}

// Contains reports whether some node holds `item`, compared by handle identity.
func (l *SinglyLinkedList[T]) Contains(item *Handle[T]) bool {
	for handle := range l.All() {
		if handle == item {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the list holds no elements.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Len returns the number of elements in the list.
func (l *SinglyLinkedList[T]) Len() int {
	return l.size
}

// Shift unlinks and returns the head handle. O(1).
func (l *SinglyLinkedList[T]) Shift() (*Handle[T], error) {
	if l.head == nil {
		return nil, fmt.Errorf("%w: shift", ErrEmptyList)
	}
	content := l.head.content
	if l.head.next == nil { // Sole element: back to the empty state.
		l.head = nil
		l.tail = nil
	} else {
		l.head = l.head.next
	}
	l.size--
	return content, nil
}

// Pop unlinks and returns the tail handle. Without backward links the new tail can only be
// found by re-walking from the head, so this is O(n).
func (l *SinglyLinkedList[T]) Pop() (*Handle[T], error) {
	switch {
	case l.size == 0:
		return nil, fmt.Errorf("%w: pop", ErrEmptyList)
	case l.size == 1:
		return l.Shift()
	}
	prev, err := l.nodeAt(l.size - 2)
	if err != nil {
		return nil, err
	}
	if prev.next == nil {
		return nil, unexpected(singlyModule, "tail_predecessor_unlinked",
			"The tail's predecessor has no forward link while size >= 2.", "size", l.size)
	}
	content := prev.next.content
	prev.next = nil
	l.tail = prev
	l.size--
	return content, nil
}

// All returns a lazy forward sequence of the stored handles, restarting from the current head
// on every call.
func (l *SinglyLinkedList[T]) All() iter.Seq[*Handle[T]] {
	return func(yield func(*Handle[T]) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.content) {
				return
			}
		}
	}
}

// Clone returns a structural copy sharing the same content handles.
func (l *SinglyLinkedList[T]) Clone() List[T] {
	clone := NewSinglyLinkedList[T]()
	for handle := range l.All() {
		clone.Add(handle)
	}
	return clone
}
