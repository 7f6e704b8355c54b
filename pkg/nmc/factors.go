package nmc

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
)

// Masks maps a coordinate to the masking material one node issued for it.
type Masks map[Coordinate]*saferith.Nat

// Factors maps a coordinate to a cleartext factor to be contributed at that
// position of the computation.
type Factors map[Coordinate]*saferith.Nat

// MaskedFactors is the broadcast-safe combination of cleartext factors with
// the masking material of every node.
type MaskedFactors map[Coordinate]*saferith.Nat

// NewMaskedFactors blinds the given cleartext factors with the masks
// collected from every node. Every Masks entry must cover every coordinate
// present in values.
func NewMaskedFactors(values Factors, masks []Masks) (MaskedFactors, error) {
	if len(masks) == 0 {
		return nil, errors.New("nmc: masks from at least one node are required")
	}
	out := make(MaskedFactors, len(values))
	for c, v := range values {
		if v == nil {
			return nil, fmt.Errorf("nmc: no value for coordinate (%d, %d)", c.Term, c.Factor)
		}
		acc := new(saferith.Nat).Mod(v, fieldOrder)
		for _, m := range masks {
			mask, ok := m[c]
			if !ok {
				return nil, fmt.Errorf("nmc: node masks are missing coordinate (%d, %d)", c.Term, c.Factor)
			}
			acc.ModMul(acc, mask, fieldOrder)
		}
		out[c] = acc
	}
	return out, nil
}
