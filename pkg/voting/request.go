package voting

import "github.com/veilvote/veilvote/pkg/nmc"

// Request identifies a voter's contribution within a batch. The identifier
// must be unique per vote and lie in [0, votes) for the batch the nodes were
// preprocessed for; a node rejects mask requests for any other identifier.
type Request struct {
	Identifier int
}

// NewRequest creates a request for the voter with the given identifier.
func NewRequest(identifier int) Request {
	return Request{Identifier: identifier}
}

// Coordinates returns the computation coordinate this request claims: factor
// Identifier of the batch's single term. The coordinate is known structurally,
// so vote construction never needs to recover it from the masks themselves.
func (r Request) Coordinates() []nmc.Coordinate {
	return []nmc.Coordinate{{Term: 0, Factor: r.Identifier}}
}
