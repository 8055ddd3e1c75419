// This module implements the doubly linked List variant. Each node holds a forward and a backward
// link, which makes a located node's neighbors reachable in O(1) at the cost of twice the link
// bookkeeping on every mutation. Every link change must keep both directions in agreement, so all
// mutations go through three primitives: linkNodes joins two nodes symmetrically, breakNext and
// breakPrev detach a neighbor while clearing the mirrored link on the other side. No operation
// writes a next/prev field outside these primitives; that is what rules out one-directional links
// surviving a mutation.

package list

import (
	"fmt"
	"iter"
)

// doublyModule labels invariant violations raised by this implementation.
const doublyModule = "doubly_list"

// doublyNode is a node of DoublyLinkedList. When its backward link is present it must point at
// the node whose forward link points back at it.
type doublyNode[T any] struct {
	content *Handle[T]
	prev    *doublyNode[T]
	next    *doublyNode[T]
}

// breakNext detaches the node from its forward neighbor, clearing the neighbor's backward link
// as well, and returns the detached neighbor (nil if there was none).
func (n *doublyNode[T]) breakNext() *doublyNode[T] {
	next := n.next
	n.next = nil
	if next != nil {
		next.prev = nil
	}
	return next
}

// breakPrev detaches the node from its backward neighbor, clearing the neighbor's forward link
// as well, and returns the detached neighbor (nil if there was none).
func (n *doublyNode[T]) breakPrev() *doublyNode[T] {
	prev := n.prev
	n.prev = nil
	if prev != nil {
		prev.next = nil
	}
	return prev
}

// linkNodes links `a` to `b` so that `b` directly follows `a`, keeping both directions in
// agreement. Whatever either node was joined to on that side is detached first and returned,
// so no stale one-directional link can survive the call.
func linkNodes[T any](a, b *doublyNode[T]) (aOldNext, bOldPrev *doublyNode[T]) {
	aOldNext = a.breakNext()
	bOldPrev = b.breakPrev()
	a.next = b
	b.prev = a
	return aOldNext, bOldPrev
}

// DoublyLinkedList is the bidirectional List implementation.
// The zero value is an empty list ready to use.
type DoublyLinkedList[T any] struct { // Implements List.
	head *doublyNode[T]
	tail *doublyNode[T]
	size int
}

var _ List[int] = (*DoublyLinkedList[int])(nil)

// NewDoublyLinkedList constructs an empty doubly linked list.
func NewDoublyLinkedList[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// indexCheck validates `index` against the current size before any link is touched.
func (l *DoublyLinkedList[T]) indexCheck(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, l.size)
	}
	return nil
}

// nodeAt walks forward from the head and returns the node at `index`.
func (l *DoublyLinkedList[T]) nodeAt(index int) (*doublyNode[T], error) {
	if err := l.indexCheck(index); err != nil {
		return nil, err
	}
	node := l.head
	if node == nil {
		return nil, unexpected(doublyModule, "nil_head",
			"Head is nil while size reports a non-empty list.", "size", l.size)
	}
	for i := 0; i < index; i++ {
		if node.next == nil {
			return nil, unexpected(doublyModule, "forward_link_missing",
				"An in-bounds walk ran out of forward links.", "reached", i, "index", index, "size", l.size)
		}
		node = node.next
	}
	return node, nil
}

// unlink removes an interior node (neither head nor tail) by detaching both of its links and
// re-joining its former neighbors.
func (l *DoublyLinkedList[T]) unlink(node *doublyNode[T]) error {
	prev := node.breakPrev()
	next := node.breakNext()
	if prev == nil || next == nil {
		return unexpected(doublyModule, "interior_neighbor_missing",
			"An interior node is missing a neighbor link.", "hasPrev", prev != nil, "hasNext", next != nil)
	}
	linkNodes(prev, next)
	l.size--
	return nil
}

// Add appends the handle at the tail.
func (l *DoublyLinkedList[T]) Add(item *Handle[T]) {
	node := &doublyNode[T]{content: item}
	if l.tail == nil { // Empty list: the same node serves as both head and tail.
		l.head = node
	} else {
		linkNodes(l.tail, node)
	}
	l.tail = node
	l.size++
}

// AddValue wraps the bare value into a fresh handle and appends it.
func (l *DoublyLinkedList[T]) AddValue(value T) {
	l.Add(NewHandle(value))
}

// InsertAt inserts the handle at `index`. Head and tail are O(1) special cases; an interior
// insert joins the new node to the located node and its former predecessor.
func (l *DoublyLinkedList[T]) InsertAt(item *Handle[T], index int) error {
	if err := l.indexCheck(index); err != nil {
		return err
	}
	switch {
	case index == 0: // The new node becomes the head, symmetrically linked to the old head.
		node := &doublyNode[T]{content: item}
		linkNodes(node, l.head)
		l.head = node
		l.size++
	case index == l.size-1: // Tail index denotes the tail: append after the current tail.
		l.Add(item)
	default:
		orig, err := l.nodeAt(index)
		if err != nil {
			return err
		}
		prev := orig.breakPrev()
		if prev == nil {
			return unexpected(doublyModule, "interior_predecessor_missing",
				"An interior node has no backward link.", "index", index, "size", l.size)
		}
		node := &doublyNode[T]{content: item}
		linkNodes(prev, node)
		linkNodes(node, orig)
		l.size++
	}
	return nil
}

// InsertValueAt wraps the bare value into a fresh handle and inserts it at `index`.
func (l *DoublyLinkedList[T]) InsertValueAt(value T, index int) error {
	return l.InsertAt(NewHandle(value), index)
}

// Get returns the handle at `index`.
func (l *DoublyLinkedList[T]) Get(index int) (*Handle[T], error) {
	node, err := l.nodeAt(index)
	if err != nil {
		return nil, err
	}
	return node.content, nil
}

// Remove unlinks the node whose content is identity-equal to `item`. Once the node is located,
// its neighbors are reachable through its own links, so no second walk is needed.
func (l *DoublyLinkedList[T]) Remove(item *Handle[T]) error {
	if l.head == nil {
		return fmt.Errorf("%w: remove", ErrEmptyList)
	}
	var target *doublyNode[T]
	for node := l.head; node != nil; node = node.next {
		if node.content == item {
			target = node
			break
		}
	}
	switch {
	case target == nil:
		return fmt.Errorf("%w: no node holds the given handle", ErrElementNotFound)
	case target == l.head:
		_, err := l.Shift()
		return err
	case target == l.tail:
		_, err := l.Pop()
		return err
	default:
		return l.unlink(target)
	}
}

// RemoveAt unlinks and returns the handle at `index`. The head and tail fall through to Shift
// and Pop; an interior removal re-joins the located node's neighbors.
func (l *DoublyLinkedList[T]) RemoveAt(index int) (*Handle[T], error) {
	if err := l.indexCheck(index); err != nil {
		return nil, err
	}
	switch {
	case index == 0:
		return l.Shift()
	case index == l.size-1:
		return l.Pop()
	}
	node, err := l.nodeAt(index)
	if err != nil {
		return nil, err
	}
	content := node.content
	if err := l.unlink(node); err != nil {
		return nil, err
	}
	return content, nil
}

// Contains reports whether some node holds `item`, compared by handle identity.
func (l *DoublyLinkedList[T]) Contains(item *Handle[T]) bool {
	for handle := range l.All() {
		if handle == item {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the list holds no elements.
func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Len returns the number of elements in the list.
func (l *DoublyLinkedList[T]) Len() int {
	return l.size
}

// Shift unlinks and returns the head handle. O(1).
func (l *DoublyLinkedList[T]) Shift() (*Handle[T], error) {
	if l.head == nil {
		return nil, fmt.Errorf("%w: shift", ErrEmptyList)
	}
	content := l.head.content
	next := l.head.breakNext()
	if next == nil {
		if l.size > 1 {
			return nil, unexpected(doublyModule, "head_successor_missing",
				"The head has no forward link while size >= 2.", "size", l.size)
		}
		l.tail = nil // Sole element: back to the empty state.
	}
	l.head = next
	l.size--
	return content, nil
}

// Pop unlinks and returns the tail handle. The backward link makes the new tail reachable
// without re-walking from the head, so this is O(1), unlike the singly linked variant.
func (l *DoublyLinkedList[T]) Pop() (*Handle[T], error) {
	if l.tail == nil {
		return nil, fmt.Errorf("%w: pop", ErrEmptyList)
	}
	content := l.tail.content
	prev := l.tail.breakPrev()
	if prev == nil {
		if l.size > 1 {
			return nil, unexpected(doublyModule, "tail_predecessor_missing",
				"The tail has no backward link while size >= 2.", "size", l.size)
		}
		l.head = nil // Sole element: back to the empty state.
	}
	l.tail = prev
	l.size--
	return content, nil
}

// All returns a lazy forward sequence of the stored handles, restarting from the current head
// on every call.
func (l *DoublyLinkedList[T]) All() iter.Seq[*Handle[T]] {
	return func(yield func(*Handle[T]) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.content) {
				return
			}
		}
	}
}

// Clone returns a structural copy sharing the same content handles.
func (l *DoublyLinkedList[T]) Clone() List[T] {
	clone := NewDoublyLinkedList[T]()
	for handle := range l.All() {
		clone.Add(handle)
	}
	return clone
}
