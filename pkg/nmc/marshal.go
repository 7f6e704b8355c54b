package nmc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
)

// coordinateEntry is the wire form of a single (coordinate, value) pair.
type coordinateEntry struct {
	Term   int
	Factor int
	Value  *saferith.Nat
}

func marshalCoordinateMap(m map[Coordinate]*saferith.Nat) ([]byte, error) {
	entries := make([]coordinateEntry, 0, len(m))
	for c, v := range m {
		entries = append(entries, coordinateEntry{Term: c.Term, Factor: c.Factor, Value: v})
	}
	// map iteration order is random; fix the wire order
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Term != entries[j].Term {
			return entries[i].Term < entries[j].Term
		}
		return entries[i].Factor < entries[j].Factor
	})
	return cbor.Marshal(entries)
}

func unmarshalCoordinateMap(data []byte) (map[Coordinate]*saferith.Nat, error) {
	var entries []coordinateEntry
	if err := cbor.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	m := make(map[Coordinate]*saferith.Nat, len(entries))
	for _, e := range entries {
		if e.Value == nil {
			return nil, errors.New("nmc: entry without a value")
		}
		c := Coordinate{Term: e.Term, Factor: e.Factor}
		if _, ok := m[c]; ok {
			return nil, fmt.Errorf("nmc: duplicate coordinate (%d, %d)", c.Term, c.Factor)
		}
		m[c] = e.Value
	}
	return m, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f MaskedFactors) MarshalBinary() ([]byte, error) {
	return marshalCoordinateMap(f)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *MaskedFactors) UnmarshalBinary(data []byte) error {
	m, err := unmarshalCoordinateMap(data)
	if err != nil {
		return fmt.Errorf("nmc: unmarshal masked factors: %w", err)
	}
	*f = m
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m Masks) MarshalBinary() ([]byte, error) {
	return marshalCoordinateMap(m)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Masks) UnmarshalBinary(data []byte) error {
	decoded, err := unmarshalCoordinateMap(data)
	if err != nil {
		return fmt.Errorf("nmc: unmarshal masks: %w", err)
	}
	*m = decoded
	return nil
}
