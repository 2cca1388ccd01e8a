package chain

// node is a single cell of the chain. Each node owns the remainder of
// the chain through next. pos is assigned once, when the node is
// appended, and never changes afterwards: the head is 0 and every
// successor is its predecessor plus one, so pos ordering is insertion
// ordering.
type node[E any] struct {
	element E
	next    *node[E]
	pos     int64
}
