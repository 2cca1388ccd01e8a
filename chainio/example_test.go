package chainio_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/davidvella/chain"
	"github.com/davidvella/chain/chainio"
	"github.com/davidvella/chain/codec"
)

// ExampleWrite demonstrates writing a list to a stream and reading it
// back lazily.
func ExampleWrite() {
	l := chain.NewList("foo", "bar")

	var buf bytes.Buffer
	if _, err := chainio.Write(&buf, codec.StringSerializer{}, l); err != nil {
		log.Fatal(err)
	}

	for v := range chainio.Seq(&buf, codec.StringSerializer{}) {
		fmt.Println(v)
	}

	// Output:
	// foo
	// bar
}

// ExampleRead demonstrates rebuilding a list from a stream.
func ExampleRead() {
	l := chain.NewList(int64(2), int64(3), int64(4))

	var buf bytes.Buffer
	if _, err := chainio.Write(&buf, codec.Int64Serializer{}, l); err != nil {
		log.Fatal(err)
	}

	restored, err := chainio.Read(&buf, codec.Int64Serializer{})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(restored.Len())

	// Output: 3
}
