package voting

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
	"github.com/veilvote/veilvote/pkg/nmc"
)

// MarshalBinary implements encoding.BinaryMarshaler, producing the wire form
// a voter broadcasts to the nodes.
func (v Vote) MarshalBinary() ([]byte, error) {
	return cbor.Marshal([]nmc.MaskedFactors(v))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vote) UnmarshalBinary(data []byte) error {
	var slots []nmc.MaskedFactors
	if err := cbor.Unmarshal(data, &slots); err != nil {
		return fmt.Errorf("voting: unmarshal vote: %w", err)
	}
	*v = slots
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, producing the wire form
// a node returns to whoever performs the reveal.
func (s Share) MarshalBinary() ([]byte, error) {
	return cbor.Marshal([]*saferith.Nat(s))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Share) UnmarshalBinary(data []byte) error {
	var entries []*saferith.Nat
	if err := cbor.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("voting: unmarshal share: %w", err)
	}
	*s = entries
	return nil
}
