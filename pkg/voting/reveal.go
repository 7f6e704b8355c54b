package voting

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/veilvote/veilvote/pkg/nmc"
)

// Share is one node's blinded per-choice contribution to the tally, one
// entry per choice slot.
type Share []*saferith.Nat

// Tally is the final per-choice vote count.
type Tally []int

// Reveal reconstructs the tally from the shares obtained from every node.
// The share of every participating node must be present; any proper subset
// reconstructs only uniformly random field elements.
//
// A slot's reconstruction is 2^count, since every vote contributes a factor
// of 2 when it selected the slot and a factor of 1 otherwise. The count is
// therefore the bit length of the reconstructed value minus one. An empty
// batch reconstructs every slot to 1 (the empty product) and so yields the
// all-zero tally; a zero reconstruction cannot occur in a well-formed batch
// and also decodes to 0.
func Reveal(shares []Share) (Tally, error) {
	if len(shares) == 0 {
		return nil, errors.New("voting: shares from at least one node are required")
	}
	choices := len(shares[0])
	for k, share := range shares {
		if len(share) != choices {
			return nil, fmt.Errorf("voting: share %d has %d entries, want %d", k, len(share), choices)
		}
	}

	modulus := nmc.Modulus()
	tally := make(Tally, choices)
	for i := 0; i < choices; i++ {
		sum := new(saferith.Nat).SetUint64(0)
		for k, share := range shares {
			if share[i] == nil {
				return nil, fmt.Errorf("voting: share %d is missing an entry for slot %d", k, i)
			}
			sum.ModAdd(sum, share[i], modulus)
		}
		if count := sum.Big().BitLen() - 1; count > 0 {
			tally[i] = count
		}
	}
	return tally, nil
}
