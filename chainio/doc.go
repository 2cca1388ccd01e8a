// Package chainio implements a binary stream format for storing and
// retrieving the elements of a chain.List. Each element is written as
// magic bytes followed by a length-prefixed payload produced by a
// codec.Serializer, so streams can be validated and parsed reliably.
//
// Basic usage:
//
//	l := chain.NewList("foo", "bar")
//
//	var buf bytes.Buffer
//	n, err := chainio.Write(&buf, codec.StringSerializer{}, l)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reading elements lazily
//	for v := range chainio.Seq(&buf, codec.StringSerializer{}) {
//	    fmt.Println(v)
//	}
//
//	// Or rebuild the whole list
//	restored, err := chainio.Read(&buf, codec.StringSerializer{})
package chainio
