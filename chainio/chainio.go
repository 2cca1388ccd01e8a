package chainio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/davidvella/chain"
	"github.com/davidvella/chain/codec"
)

var (
	Uint64Size = int64(binary.Size(uint64(0)))
	Int64Size  = int64(binary.Size(int64(0)))
	// MagicBytes Magic bytes to identify valid chainio streams (CHN).
	MagicBytes           = []byte{0x43, 0x48, 0x4E}
	ErrInvalidMagicBytes = errors.New("invalid magic bytes - not a valid chainio stream")
)

// BinaryWriter handles writing binary data with error handling.
type BinaryWriter struct {
	w io.Writer
}

func NewBinaryWriter(w io.Writer) BinaryWriter {
	return BinaryWriter{w: w}
}

func (bw BinaryWriter) WriteInt64(i int64) (int64, error) {
	err := binary.Write(bw.w, binary.LittleEndian, i)
	if err != nil {
		return 0, err
	}
	return Int64Size, nil
}

func (bw BinaryWriter) WriteBytes(b []byte) (int64, error) {
	// Write bytes length (uint64)
	if err := binary.Write(bw.w, binary.LittleEndian, uint64(len(b))); err != nil {
		return 0, fmt.Errorf("error writing bytes length: %w", err)
	}

	// Write bytes content
	n, err := bw.w.Write(b)
	if err != nil {
		return Uint64Size, fmt.Errorf("error writing bytes content: %w", err)
	}

	// Return total bytes written (length field + bytes content)
	return Uint64Size + int64(n), nil
}

// BinaryReader handles reading binary data with error handling.
type BinaryReader struct {
	r io.Reader
}

func NewBinaryReader(r io.Reader) BinaryReader {
	return BinaryReader{r: r}
}

func (br BinaryReader) ReadInt64() (int64, error) {
	var value int64
	err := binary.Read(br.r, binary.LittleEndian, &value)
	return value, err
}

func (br BinaryReader) ReadBytes() ([]byte, error) {
	var length uint64
	if err := binary.Read(br.r, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("error reading bytes length: %w", err)
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(br.r, b); err != nil {
		return nil, fmt.Errorf("error reading bytes content: %w", err)
	}
	return b, nil
}

// WriteElement writes a single element to the writer.
func WriteElement[E any](w io.Writer, s codec.Serializer[E], v E) (int64, error) {
	var totalBytes int64

	mn, err := w.Write(MagicBytes)
	if err != nil {
		return int64(mn), fmt.Errorf("failed to write magic bytes: %w", err)
	}
	totalBytes += int64(mn)

	data, err := s.SerializeValue(v)
	if err != nil {
		return totalBytes, fmt.Errorf("error serializing element: %w", err)
	}

	bw := NewBinaryWriter(w)
	n, err := bw.WriteBytes(data)
	if err != nil {
		return totalBytes, fmt.Errorf("error writing element: %w", err)
	}
	totalBytes += n

	return totalBytes, nil
}

// ReadElement reads a single element from the reader. io.EOF at the
// first byte marks a clean end of stream.
func ReadElement[E any](r io.Reader, s codec.Serializer[E]) (E, error) {
	var zero E

	magicBytes := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magicBytes); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, io.EOF
		}
		return zero, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if !bytes.Equal(magicBytes, MagicBytes) {
		return zero, ErrInvalidMagicBytes
	}

	br := NewBinaryReader(r)
	data, err := br.ReadBytes()
	if err != nil {
		// EOF after the magic bytes means a truncated element, not a
		// clean end of stream.
		if errors.Is(err, io.EOF) {
			return zero, fmt.Errorf("error reading element: %w", io.ErrUnexpectedEOF)
		}
		return zero, fmt.Errorf("error reading element: %w", err)
	}

	v, err := s.DeserializeValue(data)
	if err != nil {
		return zero, fmt.Errorf("error deserializing element: %w", err)
	}
	return v, nil
}

// Write writes every element of l to w in insertion order. Returns the
// total number of bytes written.
func Write[E any](w io.Writer, s codec.Serializer[E], l *chain.List[E]) (int64, error) {
	var totalBytes int64
	for v := range l.All() {
		n, err := WriteElement(w, s, v)
		totalBytes += n
		if err != nil {
			return totalBytes, err
		}
	}
	return totalBytes, nil
}

// Seq creates an iterator over the elements of a stream. The iterator
// ends at io.EOF; any other error also ends the iteration.
func Seq[E any](r io.Reader, s codec.Serializer[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, err := ReadElement(r, s)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Read decodes a whole stream into a new list, preserving element
// order. A stream that ends cleanly at an element boundary is valid;
// a stream that ends mid-element is an error.
func Read[E any](r io.Reader, s codec.Serializer[E]) (*chain.List[E], error) {
	l := chain.New[E]()
	for {
		v, err := ReadElement(r, s)
		if errors.Is(err, io.EOF) {
			return l, nil
		}
		if err != nil {
			return nil, err
		}
		l.Append(v)
	}
}

// Size calculates the total size in bytes that the list will occupy
// when written. This includes magic bytes and length prefixes.
func Size[E any](s codec.Serializer[E], l *chain.List[E]) (int64, error) {
	var totalSize int64
	for v := range l.All() {
		data, err := s.SerializeValue(v)
		if err != nil {
			return 0, fmt.Errorf("error serializing element: %w", err)
		}
		totalSize += int64(len(MagicBytes)) + Uint64Size + int64(len(data))
	}
	return totalSize, nil
}
