package nmc

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Coordinate identifies a single input of a sum-of-products computation:
// factor Factor of term Term.
type Coordinate struct {
	Term   int
	Factor int
}

// Signature describes the shape of a computation: entry t is the number of
// factors multiplied together in term t. All nodes taking part in the same
// computation must agree on an identical signature, established during
// preprocessing.
type Signature []int

// Valid returns an error unless every term has a non-negative factor count.
func (s Signature) Valid() error {
	for t, count := range s {
		if count < 0 {
			return fmt.Errorf("nmc: term %d has a negative factor count %d", t, count)
		}
	}
	return nil
}

// Coordinates lists every coordinate of the computation, in term-major order.
func (s Signature) Coordinates() []Coordinate {
	out := make([]Coordinate, 0, s.size())
	for t, count := range s {
		for j := 0; j < count; j++ {
			out = append(out, Coordinate{Term: t, Factor: j})
		}
	}
	return out
}

// size is the total number of coordinates.
func (s Signature) size() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// WriteTo implements io.WriterTo: the factor counts as 8-byte big-endian words.
func (s Signature) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 8)
	var total int64
	for _, count := range s {
		binary.BigEndian.PutUint64(buf, uint64(count))
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Domain implements hash.WriterToWithDomain.
func (Signature) Domain() string {
	return "Signature"
}
