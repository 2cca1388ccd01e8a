package chain_test

import (
	"fmt"

	"github.com/davidvella/chain"
)

// ExampleList demonstrates building a list and walking it with
// positions.
func ExampleList() {
	l := chain.New[string]()
	l.Append("foo")
	l.Append("bar")

	for p := l.Front(); !p.IsEnd(); p = l.Advance(p) {
		fmt.Println(l.Value(p))
	}

	// Output:
	// foo
	// bar
}

// ExampleNewList demonstrates variadic construction and iteration.
func ExampleNewList() {
	l := chain.NewList(2, 3, 4)

	for v := range l.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 2 3 4
}

// ExamplePosition_Less demonstrates that positions order by insertion
// order, with the end sentinel greater than everything.
func ExamplePosition_Less() {
	l := chain.NewList("a", "b")

	first := l.Front()
	second := l.Advance(first)

	fmt.Println(first.Less(second))
	fmt.Println(second.Less(l.End()))
	fmt.Println(l.End().Less(first))

	// Output:
	// true
	// true
	// false
}
