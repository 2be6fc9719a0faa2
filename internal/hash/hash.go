package hash

import (
	"fmt"
	"io"

	"github.com/taurusgroup/modexp/internal/params"
	"github.com/zeebo/blake3"
)

const DigestLengthBytes = params.DigestLengthBytes

// WriterToWithDomain represents a type writing itself, and knowing its domain.
//
// Providing a domain string lets us distinguish the output of different types
// implementing this same interface.
type WriterToWithDomain interface {
	io.WriterTo

	// Domain returns a context string, which should be unique for each implementor
	Domain() string
}

// Hash wraps a blake3 hasher, separating every value written to it by its domain.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash with an empty state.
func New() *Hash {
	return &Hash{h: blake3.New()}
}

// Sum returns the DigestLengthBytes digest of the current state.
func (hash *Hash) Sum() [DigestLengthBytes]byte {
	var out [DigestLengthBytes]byte
	if _, err := io.ReadFull(hash.h.Digest(), out[:]); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes each value to the hash state, as `(<domain><data>)`.
//
// Supported types are []byte, string and WriterToWithDomain.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		var err error
		switch t := d.(type) {
		case []byte:
			err = writeWithDomain(hash.h, "[]byte", bytesWriter(t))
		case string:
			err = writeWithDomain(hash.h, "string", bytesWriter(t))
		case WriterToWithDomain:
			err = writeWithDomain(hash.h, t.Domain(), t)
		default:
			return fmt.Errorf("hash.WriteAny: unsupported type %T", d)
		}
		if err != nil {
			return fmt.Errorf("hash.WriteAny: %w", err)
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}

type bytesWriter []byte

func (b bytesWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b)
	return int64(n), err
}

func writeWithDomain(w io.Writer, domain string, object io.WriterTo) error {
	if _, err := w.Write([]byte("(" + domain)); err != nil {
		return err
	}
	if _, err := object.WriteTo(w); err != nil {
		return err
	}
	_, err := w.Write([]byte(")"))
	return err
}
