// Package nmc implements a minimal non-interactive multi-party computation of
// sums of products over a prime field.
//
// A computation is described by a Signature: one factor count per term. Each
// input occupies a Coordinate (term index, factor index). During an offline
// preprocessing phase, every node receives a multiplicative mask for each
// coordinate, together with an additive share of the inverse of each term's
// combined mask product. A contributor blinds its cleartext factors with the
// masks collected from every node, after which the masked factors can be
// broadcast safely. Each node then computes a share of the result locally;
// summing all nodes' shares in the field reconstructs the sum of products.
//
// No node learns a cleartext factor, and no proper subset of shares carries
// information about the result.
package nmc

import (
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/veilvote/veilvote/internal/params"
)

// fieldOrder is the prime 2²⁵⁵ - 19.
var fieldOrder = func() *saferith.Modulus {
	p := new(big.Int).Lsh(big.NewInt(1), params.FieldBits)
	p.Sub(p, big.NewInt(19))
	return saferith.ModulusFromBytes(p.Bytes())
}()

// Modulus returns the order of the prime field all computations are
// performed in.
func Modulus() *saferith.Modulus {
	return fieldOrder
}
