package voting

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/veilvote/veilvote/pkg/nmc"
	"github.com/veilvote/veilvote/pkg/pool"
)

// Node is a single tally party. It holds an independent nmc sub-instance per
// possible choice, all sharing the same batch signature, and computes its
// share of the outcome without learning any individual ballot.
type Node struct {
	sid       []byte
	signature nmc.Signature
	choices   int
	slots     []*nmc.Node
}

// NewNode allocates a tally node with no batch state. The node must take
// part in a Preprocess run before it can issue masks or compute an outcome.
func NewNode() *Node {
	return &Node{}
}

// Initialize equips the node for a batch described by signature with the
// given number of choices. It is not idempotent: any previous per-choice
// state is discarded. The per-choice sub-instances still require the joint
// preprocessing step before the node is usable; Preprocess performs the full
// setup.
func (n *Node) Initialize(signature nmc.Signature, choices int) error {
	if err := signature.Valid(); err != nil {
		return err
	}
	if choices < 1 {
		return fmt.Errorf("voting: number of choices %d is invalid", choices)
	}
	n.sid = nil
	n.signature = append(nmc.Signature{}, signature...)
	n.choices = choices
	n.slots = make([]*nmc.Node, choices)
	for i := range n.slots {
		n.slots[i] = nmc.NewNode()
	}
	return nil
}

// SID returns the session identifier established during preprocessing, or
// nil if the node has not been preprocessed. All nodes preprocessed together
// report the same value, which gives callers a cheap consistency check
// before accepting votes.
func (n *Node) SID() []byte {
	return n.sid
}

// Masks returns this node's masks for the given request, one set per choice
// slot, in slot order.
func (n *Node) Masks(req Request) ([]nmc.Masks, error) {
	if n.slots == nil {
		return nil, ErrNotInitialized
	}
	coordinates := req.Coordinates()
	out := make([]nmc.Masks, n.choices)
	for i, slot := range n.slots {
		masks, err := slot.Masks(coordinates)
		if err != nil {
			return nil, fmt.Errorf("voting: slot %d: %w", i, err)
		}
		out[i] = masks
	}
	return out, nil
}

// Outcome computes this node's share of the tally over a full batch of
// votes: for each choice slot, the slot's masked contributions are gathered
// from every vote and handed to the corresponding sub-instance. The batch
// must contain exactly the number of votes the node was preprocessed for,
// each vote built from a distinct identifier.
//
// The pool may be nil, in which case slots are processed sequentially.
//
// The result is blinded: it carries no information about the tally until
// combined with every other node's share by Reveal.
func (n *Node) Outcome(pl *pool.Pool, votes []Vote) (Share, error) {
	if n.slots == nil {
		return nil, ErrNotInitialized
	}
	for v, vote := range votes {
		if len(vote) != n.choices {
			return nil, fmt.Errorf("voting: vote %d has %d entries, want %d", v, len(vote), n.choices)
		}
	}

	type slotResult struct {
		share *saferith.Nat
		err   error
	}
	results := pl.Parallelize(n.choices, func(i int) interface{} {
		batch := make([]nmc.MaskedFactors, len(votes))
		for v, vote := range votes {
			batch[v] = vote[i]
		}
		share, err := n.slots[i].Compute(n.signature, batch)
		if err != nil {
			err = fmt.Errorf("voting: slot %d: %w", i, err)
		}
		return slotResult{share: share, err: err}
	})

	share := make(Share, n.choices)
	for i, r := range results {
		res := r.(slotResult)
		if res.err != nil {
			return nil, res.err
		}
		share[i] = res.share
	}
	return share, nil
}
