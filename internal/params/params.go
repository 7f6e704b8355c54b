package params

const (
	// FieldBits is the bit length of the prime field the tally computation
	// runs in. The field order is 2²⁵⁵ - 19.
	FieldBits  = 255
	FieldBytes = (FieldBits + 7) / 8

	SecParam = 256
	SecBytes = SecParam / 8

	// MaxBatch bounds the number of votes in a single batch. A slot selected
	// by every vote reconstructs to 2^votes, which must stay below the field
	// order.
	MaxBatch = FieldBits - 1
)
