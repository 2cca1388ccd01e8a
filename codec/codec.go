// Package codec defines how individual chain elements are converted to
// and from bytes for the chainio stream format and the pebble-backed
// store.
package codec

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
)

// Serializer defines how to serialize/deserialize a specific element type.
type Serializer[T any] interface {
	SerializeValue(value T) ([]byte, error)
	DeserializeValue(data []byte) (T, error)
}

// GobSerializer implements Serializer using gob encoding. It works for
// any gob-encodable element type at the cost of a per-value header.
type GobSerializer[T any] struct{}

func NewGobSerializer[T any]() *GobSerializer[T] {
	return &GobSerializer[T]{}
}

func (s *GobSerializer[T]) SerializeValue(value T) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *GobSerializer[T]) DeserializeValue(data []byte) (T, error) {
	var value T
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(&value); err != nil {
		return value, err
	}
	return value, nil
}

// StringSerializer implements Serializer for string elements with no
// per-value overhead.
type StringSerializer struct{}

func (StringSerializer) SerializeValue(value string) ([]byte, error) {
	return []byte(value), nil
}

func (StringSerializer) DeserializeValue(data []byte) (string, error) {
	return string(data), nil
}

// BytesSerializer implements Serializer for raw byte slice elements.
// Values are copied so callers and storage never alias each other's
// buffers.
type BytesSerializer struct{}

func (BytesSerializer) SerializeValue(value []byte) ([]byte, error) {
	return append([]byte(nil), value...), nil
}

func (BytesSerializer) DeserializeValue(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// Int64Serializer implements Serializer for int64 elements using a
// fixed-width big-endian encoding.
type Int64Serializer struct{}

func (Int64Serializer) SerializeValue(value int64) ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(value))
	return buf, nil
}

func (Int64Serializer) DeserializeValue(data []byte) (int64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("codec: invalid int64 length %d", len(data))
	}
	return int64(binary.BigEndian.Uint64(data)), nil
}
