package chain

import "iter"

// List is a singly linked sequence with O(1) append and forward
// traversal through Position handles. The zero value is an empty list
// ready to use.
//
// A List is not safe for concurrent mutation: Append must not race
// with another Append or with a traversal of the same list without
// external synchronisation.
type List[E any] struct {
	head   *node[E]
	tail   *node[E] // last node, kept only so Append is O(1); head owns the chain
	length int
}

// New returns an empty list.
func New[E any]() *List[E] {
	return &List[E]{}
}

// NewList returns a list containing elems in order.
func NewList[E any](elems ...E) *List[E] {
	l := New[E]()
	for _, e := range elems {
		l.Append(e)
	}
	return l
}

// Collect drains seq into a new list, preserving its order. seq must
// be finite.
func Collect[E any](seq iter.Seq[E]) *List[E] {
	l := New[E]()
	for e := range seq {
		l.Append(e)
	}
	return l
}

// Append adds v after the current last element. It is the only
// mutating operation, always succeeds, and leaves every previously
// obtained element position valid. A previously obtained End position
// still means "end", which is now one element further along.
func (l *List[E]) Append(v E) {
	n := &node[E]{element: v}
	if l.tail != nil {
		n.pos = l.tail.pos + 1
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	return l.length
}

// Front returns the position of the first element, or End when the
// list is empty.
func (l *List[E]) Front() Position[E] {
	if l.head == nil {
		return l.End()
	}
	return Position[E]{n: l.head}
}

// End returns the end sentinel, the position one past the last
// element. It is never dereferenceable.
func (l *List[E]) End() Position[E] {
	return Position[E]{end: true}
}

// Advance returns the position after p: the next element, or End when
// p is the last element. Advancing past the end of a list is a
// contract violation and panics.
func (l *List[E]) Advance(p Position[E]) Position[E] {
	if p.n == nil {
		panic("chain: Advance past the end of a list")
	}
	if p.n.next == nil {
		return l.End()
	}
	return Position[E]{n: p.n.next}
}

// Value returns the element at p. Dereferencing the end sentinel is a
// contract violation and panics.
func (l *List[E]) Value(p Position[E]) E {
	if p.n == nil {
		panic("chain: Value of the end position")
	}
	return p.n.element
}

// All returns a lazy traversal of the list in insertion order. Each
// call starts an independent traversal from the front; traversals must
// not be interleaved with Append on the same list.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for p := l.Front(); !p.IsEnd(); p = l.Advance(p) {
			if !yield(l.Value(p)) {
				return
			}
		}
	}
}
