package nmc

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
)

// Node holds one party's correlated randomness for a single computation: a
// multiplicative mask for every coordinate, and an additive share of the
// inverse of each term's combined mask product.
//
// A node is unusable until it has taken part in a Preprocess call. Nodes
// never share mutable state; correlation between them exists only through
// the values Preprocess distributed.
type Node struct {
	masks  map[Coordinate]*saferith.Nat
	shares []*saferith.Nat
}

// NewNode allocates a node with fresh, unshared state.
func NewNode() *Node {
	return &Node{}
}

// Masks returns this node's masking material for the given coordinates.
//
// The result is fully determined by the preprocessing state: repeated calls
// with the same coordinates return the same masks.
func (n *Node) Masks(coordinates []Coordinate) (Masks, error) {
	if n.masks == nil {
		return nil, errors.New("nmc: node has not been preprocessed")
	}
	out := make(Masks, len(coordinates))
	for _, c := range coordinates {
		m, ok := n.masks[c]
		if !ok {
			return nil, fmt.Errorf("nmc: no mask for coordinate (%d, %d)", c.Term, c.Factor)
		}
		out[c] = m
	}
	return out, nil
}

// Compute returns this node's share of the sum of products described by
// signature, given the masked factors collected from every contributor.
// The batch must cover each coordinate of the signature exactly once.
//
// The share is a uniformly random-looking field element; only the sum of all
// nodes' shares reconstructs the result.
func (n *Node) Compute(signature Signature, batch []MaskedFactors) (*saferith.Nat, error) {
	if n.shares == nil {
		return nil, errors.New("nmc: node has not been preprocessed")
	}
	if len(n.shares) != len(signature) {
		return nil, fmt.Errorf("nmc: node was preprocessed for %d terms, signature has %d", len(n.shares), len(signature))
	}

	merged := make(map[Coordinate]*saferith.Nat)
	for _, factors := range batch {
		for c, v := range factors {
			if _, ok := merged[c]; ok {
				return nil, fmt.Errorf("nmc: duplicate masked factor for coordinate (%d, %d)", c.Term, c.Factor)
			}
			merged[c] = v
		}
	}
	if len(merged) != signature.size() {
		return nil, fmt.Errorf("nmc: batch has %d masked factors, signature expects %d", len(merged), signature.size())
	}

	share := new(saferith.Nat).SetUint64(0)
	for t, count := range signature {
		prod := new(saferith.Nat).SetUint64(1)
		for j := 0; j < count; j++ {
			v, ok := merged[Coordinate{Term: t, Factor: j}]
			if !ok {
				return nil, fmt.Errorf("nmc: missing masked factor for coordinate (%d, %d)", t, j)
			}
			prod.ModMul(prod, v, fieldOrder)
		}
		prod.ModMul(prod, n.shares[t], fieldOrder)
		share.ModAdd(share, prod, fieldOrder)
	}
	return share, nil
}
