package voting

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/veilvote/veilvote/internal/params"
	"github.com/veilvote/veilvote/pkg/hash"
	"github.com/veilvote/veilvote/pkg/nmc"
)

const protocolTag = "veilvote/tally"

// Preprocess runs the one-time setup phase for a batch of votes with the
// given number of choices across all nodes, playing the role of a trusted
// dealer. Every node is initialized with the signature [votes], and for each
// choice slot the aligned sub-instances of all nodes take part in a single
// joint nmc preprocessing step.
//
// Preprocess must complete before any mask request or vote is issued against
// any node; mixing nodes from different runs is undefined behavior, and a
// failed run leaves the nodes unusable. All nodes of a successful run report
// the same SID.
//
// The batch size is bounded by the field: a slot selected by every vote
// reconstructs to 2^votes, which must stay below the field order.
func Preprocess(rand io.Reader, nodes []*Node, votes, choices int) error {
	if len(nodes) == 0 {
		return errors.New("voting: at least one node is required")
	}
	if votes < 0 {
		return fmt.Errorf("voting: number of votes %d is invalid", votes)
	}
	if votes > params.MaxBatch {
		return fmt.Errorf("voting: batch of %d votes exceeds the field capacity of %d", votes, params.MaxBatch)
	}

	signature := nmc.Signature{votes}

	id, err := uuid.NewRandomFromReader(rand)
	if err != nil {
		return fmt.Errorf("voting: generate session id: %w", err)
	}
	h := hash.New()
	if err := h.WriteAny(
		hash.BytesWithDomain{TheDomain: "Protocol", Bytes: []byte(protocolTag)},
		hash.BytesWithDomain{TheDomain: "Session UUID", Bytes: id[:]},
		signature,
		uint64(choices),
	); err != nil {
		return fmt.Errorf("voting: bind session: %w", err)
	}
	sid := h.Sum()

	for _, node := range nodes {
		if err := node.Initialize(signature, choices); err != nil {
			return err
		}
		node.sid = sid
	}

	for i := 0; i < choices; i++ {
		slots := make([]*nmc.Node, len(nodes))
		for k, node := range nodes {
			slots[k] = node.slots[i]
		}
		if err := nmc.Preprocess(rand, signature, slots); err != nil {
			return fmt.Errorf("voting: preprocess slot %d: %w", i, err)
		}
	}
	return nil
}
