package nmc

import (
	"errors"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/veilvote/veilvote/pkg/math/sample"
)

// Preprocess establishes correlated randomness across the given nodes for a
// computation with the given signature, playing the role of the trusted
// dealer of the offline phase. Every node receives a fresh multiplicative
// mask per coordinate, and the inverse of each term's combined mask product
// is additively shared among the nodes. Prior state of the nodes is
// discarded.
//
// Masks are sampled from rand in a fixed order, so a deterministic reader
// produces reproducible state. A failed run leaves the nodes in an unusable
// state; callers must restart with fresh nodes.
func Preprocess(rand io.Reader, signature Signature, nodes []*Node) error {
	if err := signature.Valid(); err != nil {
		return err
	}
	if len(nodes) == 0 {
		return errors.New("nmc: at least one node is required")
	}

	for _, node := range nodes {
		node.masks = make(map[Coordinate]*saferith.Nat, signature.size())
		node.shares = make([]*saferith.Nat, len(signature))
	}

	for _, c := range signature.Coordinates() {
		for _, node := range nodes {
			node.masks[c] = sample.UnitModN(rand, fieldOrder)
		}
	}

	for t, count := range signature {
		combined := new(saferith.Nat).SetUint64(1)
		for _, node := range nodes {
			for j := 0; j < count; j++ {
				combined.ModMul(combined, node.masks[Coordinate{Term: t, Factor: j}], fieldOrder)
			}
		}
		inv := new(saferith.Nat).ModInverse(combined, fieldOrder)

		total := new(saferith.Nat).SetUint64(0)
		for _, node := range nodes[1:] {
			s := sample.ModN(rand, fieldOrder)
			node.shares[t] = s
			total.ModAdd(total, s, fieldOrder)
		}
		nodes[0].shares[t] = new(saferith.Nat).ModSub(inv, total, fieldOrder)
	}
	return nil
}
