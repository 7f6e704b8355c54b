// Package hash provides a domain-separated hash function based on BLAKE3.
//
// It is used to derive session identifiers binding the parameters of a
// tallying batch, and as an extendable source of digest bytes.
package hash

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/veilvote/veilvote/internal/params"
	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of the output of Sum.
const DigestLengthBytes = params.SecBytes * 2

// Hash wraps a blake3.Hasher. Any hash function with an easily extendable
// output would work as well.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash with an empty state.
func New() *Hash {
	return &Hash{h: blake3.New()}
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what is
// essentially a stream of pseudorandom bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current
// hash state. If a different length is required, use
// io.ReadFull(hash.Digest(), out) instead.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes data of various types to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - uint64
//   - hash.WriterToWithDomain
//
// The first two types receive their own domain separation.
func (hash *Hash) WriteAny(data ...interface{}) error {
	var err error
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "[]byte",
				Bytes:     t,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write []byte: %w", err)
			}
		case uint64:
			buf := make([]byte, 8)
			binary.BigEndian.PutUint64(buf, t)
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "uint64",
				Bytes:     buf,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write uint64: %w", err)
			}
		case WriterToWithDomain:
			if err = writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash.Hash: write %q: %w", t.Domain(), err)
			}
		default:
			panic("hash.Hash: unsupported type")
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
