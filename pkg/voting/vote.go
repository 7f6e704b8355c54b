package voting

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/veilvote/veilvote/pkg/nmc"
)

// Vote is a masked ballot ready to be broadcast to every node: one masked
// contribution per choice slot. The selected slot carries a factor of 2, all
// other slots a factor of 1, so that a slot's reconstruction over a full
// batch is 2 raised to the number of votes that selected it.
type Vote []nmc.MaskedFactors

// NewVote masks choice using the masks collected from every node, where
// masks[k] is the per-slot sequence returned by node k for req.
//
// The choice must lie in [0, choices); anything else is rejected rather than
// silently producing a ballot that selects nothing.
func NewVote(req Request, masks [][]nmc.Masks, choice int) (Vote, error) {
	if len(masks) == 0 {
		return nil, errors.New("voting: masks from at least one node are required")
	}
	choices := len(masks[0])
	for k, nodeMasks := range masks {
		if len(nodeMasks) != choices {
			return nil, fmt.Errorf("voting: node %d returned masks for %d slots, want %d", k, len(nodeMasks), choices)
		}
	}
	if choice < 0 || choice >= choices {
		return nil, fmt.Errorf("voting: choice %d is out of range [0, %d)", choice, choices)
	}

	coordinate := req.Coordinates()[0]
	vote := make(Vote, choices)
	for i := 0; i < choices; i++ {
		slotMasks := make([]nmc.Masks, len(masks))
		for k := range masks {
			slotMasks[k] = masks[k][i]
		}
		factor := uint64(1)
		if i == choice {
			factor = 2
		}
		values := nmc.Factors{coordinate: new(saferith.Nat).SetUint64(factor)}
		masked, err := nmc.NewMaskedFactors(values, slotMasks)
		if err != nil {
			return nil, fmt.Errorf("voting: slot %d: %w", i, err)
		}
		vote[i] = masked
	}
	return vote, nil
}
