// Package chain implements a generic singly linked sequence container
// with O(1) append and forward traversal through comparable position
// handles instead of raw node references.
//
// A List owns its nodes in a single forward chain rooted at the head;
// the tail is tracked separately, purely as a shortcut for append. The
// only mutating operation is Append, so element positions are assigned
// once at insertion time and never change: every Position taken from a
// list stays valid across any number of later appends.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(1) append, the container's sole mutator
//   - Opaque Position handles with identity-based equality and
//     insertion-order Less
//   - Iterator-based traversal using Go's iter.Seq
//
// Basic usage:
//
//	l := chain.NewList("foo", "bar")
//	l.Append("baz")
//
//	for p := l.Front(); !p.IsEnd(); p = l.Advance(p) {
//	    fmt.Println(l.Value(p))
//	}
//
//	// Or traverse with an iterator
//	for v := range l.All() {
//	    fmt.Println(v)
//	}
//
// Positions:
// A Position refers either to a live element or to the end sentinel,
// one past the last element. Two element positions are equal only when
// they refer to the same node, and positions order by insertion order,
// with the end sentinel greater than everything. Advancing or
// dereferencing the end sentinel is a programming error and panics;
// it never silently returns a default value.
//
// A List is not safe for concurrent mutation. Concurrent traversals of
// an unchanging list are fine.
package chain
