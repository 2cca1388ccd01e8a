package pebble

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/pebble"
	"github.com/davidvella/chain"
	"github.com/davidvella/chain/codec"
	"github.com/google/btree"
)

var ErrChainNotFound = errors.New("pebble: chain not found")

const (
	metaNamespace = "meta"
	elemNamespace = "elem"

	defaultBatchSize = 1000
)

// StorageOptions configures the store.
type StorageOptions struct {
	Path         string
	BatchSize    int
	CacheSize    int64
	MaxOpenFiles int
}

// Store persists named chains in a Pebble database. Elements are keyed
// by their chain position in big-endian form, so Pebble's key order is
// the chain's insertion order and a load is a single ordered scan.
type Store[E any] struct {
	db         *pebble.DB
	serializer codec.Serializer[E]
	names      *btree.BTreeG[string]
	batchSize  int
}

// Open opens (or creates) a store at opts.Path using serializer for
// element payloads.
func Open[E any](opts StorageOptions, serializer codec.Serializer[E]) (*Store[E], error) {
	pebbleOpts := &pebble.Options{
		MaxOpenFiles: opts.MaxOpenFiles,
	}
	if opts.CacheSize > 0 {
		pebbleOpts.Cache = pebble.NewCache(opts.CacheSize)
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, err
	}

	db, err := pebble.Open(opts.Path, pebbleOpts)
	if err != nil {
		return nil, err
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	s := &Store[E]{
		db:         db,
		serializer: serializer,
		names: btree.NewG[string](2, func(a, b string) bool {
			return a < b
		}),
		batchSize: batchSize,
	}

	if err := s.loadNames(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store[E]) Close() error {
	return s.db.Close()
}

// Save persists l under name, replacing any chain previously stored
// under the same name.
func (s *Store[E]) Save(_ context.Context, name string, l *chain.List[E]) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	// Drop any previous elements so a shorter chain leaves no tail
	// behind.
	prefix := elemPrefix(name)
	if err := batch.DeleteRange(prefix, prefixEndKey(prefix), nil); err != nil {
		return err
	}

	var pos uint64
	for v := range l.All() {
		data, err := s.serializer.SerializeValue(v)
		if err != nil {
			return fmt.Errorf("failed to serialize element %d: %w", pos, err)
		}

		if err := batch.Set(elemKey(name, pos), data, nil); err != nil {
			return err
		}
		pos++

		// Commit batch if it gets too large
		if batch.Count() >= uint32(s.batchSize) {
			if err := batch.Commit(pebble.Sync); err != nil {
				return err
			}
			batch = s.db.NewBatch()
		}
	}

	count := make([]byte, 8)
	binary.BigEndian.PutUint64(count, pos)
	if err := batch.Set(metaKey(name), count, nil); err != nil {
		return err
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return err
	}

	s.names.ReplaceOrInsert(name)
	return nil
}

// Load rebuilds the chain stored under name. The returned list yields
// elements in the order they were appended when saved. Returns
// ErrChainNotFound when no chain is stored under name.
func (s *Store[E]) Load(_ context.Context, name string) (*chain.List[E], error) {
	if _, err := s.count(name); err != nil {
		return nil, err
	}

	prefix := elemPrefix(name)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixEndKey(prefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	l := chain.New[E]()
	for iter.First(); iter.Valid(); iter.Next() {
		// iter.Value is only valid until the next step, so the
		// serializer must not retain it.
		v, err := s.serializer.DeserializeValue(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("failed to deserialize element: %w", err)
		}
		l.Append(v)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	return l, nil
}

// Count returns the number of elements in the chain stored under name
// without loading it. Returns ErrChainNotFound when no chain is stored
// under name.
func (s *Store[E]) Count(_ context.Context, name string) (int64, error) {
	return s.count(name)
}

// Delete removes the chain stored under name. Deleting a name that is
// not stored is a no-op.
func (s *Store[E]) Delete(_ context.Context, name string) error {
	prefix := elemPrefix(name)
	if err := s.db.DeleteRange(prefix, prefixEndKey(prefix), pebble.Sync); err != nil {
		return err
	}
	if err := s.db.Delete(metaKey(name), pebble.Sync); err != nil {
		return err
	}

	s.names.Delete(name)
	return nil
}

// Names returns the names of all stored chains in lexical order.
func (s *Store[E]) Names() []string {
	names := make([]string, 0, s.names.Len())
	s.names.Ascend(func(name string) bool {
		names = append(names, name)
		return true
	})
	return names
}

func (s *Store[E]) count(name string) (int64, error) {
	data, closer, err := s.db.Get(metaKey(name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return 0, fmt.Errorf("%w: %s", ErrChainNotFound, name)
		}
		return 0, fmt.Errorf("failed to load chain metadata: %w", err)
	}
	defer closer.Close()

	if len(data) != 8 {
		return 0, fmt.Errorf("invalid chain metadata for %s", name)
	}
	return int64(binary.BigEndian.Uint64(data)), nil
}

func (s *Store[E]) loadNames() error {
	prefix := namespacePrefix(metaNamespace)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixEndKey(prefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		s.names.ReplaceOrInsert(string(iter.Key()[len(prefix):]))
	}
	return iter.Error()
}

func namespacePrefix(namespace string) []byte {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(namespace)
	buf.WriteByte(0) // namespace separator
	return buf.Bytes()
}

func metaKey(name string) []byte {
	buf := bytes.NewBuffer(namespacePrefix(metaNamespace))
	buf.WriteString(name)
	return buf.Bytes()
}

func elemPrefix(name string) []byte {
	buf := bytes.NewBuffer(namespacePrefix(elemNamespace))
	buf.WriteString(name)
	buf.WriteByte(0) // name separator
	return buf.Bytes()
}

func elemKey(name string, pos uint64) []byte {
	buf := bytes.NewBuffer(elemPrefix(name))
	binary.Write(buf, binary.BigEndian, pos)
	return buf.Bytes()
}

// prefixEndKey returns the smallest key greater than every key that
// starts with prefix.
func prefixEndKey(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil // prefix is all 0xFF; no upper bound
}
