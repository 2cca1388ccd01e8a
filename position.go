package chain

// Position is an opaque handle to a location in a List: either a live
// element or the end sentinel, "one past the last element". Positions
// are small copyable values and can be compared with Equal and Less.
//
// A Position is only meaningful to the List that produced it. A
// Position held across the destruction of its List, or passed to a
// different List, is stale; using a stale Position is a caller bug and
// is not detected at runtime.
type Position[E any] struct {
	n   *node[E]
	end bool
}

// Equal reports whether p and q denote the same location. Two element
// positions are equal only when they refer to the same underlying
// node; two distinct elements that happen to hold equal values are
// still distinct positions. End positions always compare equal, and an
// element position never equals the end sentinel.
func (p Position[E]) Equal(q Position[E]) bool {
	if p.end || q.end {
		return p.end && q.end
	}
	return p.n == q.n
}

// Less orders positions by insertion order: a position is less than
// every position appended after it, and every element position is less
// than the end sentinel. The end sentinel is never less than anything,
// including another end sentinel.
func (p Position[E]) Less(q Position[E]) bool {
	if p.end {
		return false
	}
	if q.end {
		return true
	}
	return p.n.pos < q.n.pos
}

// IsEnd reports whether p is the end sentinel.
func (p Position[E]) IsEnd() bool {
	return p.end
}
