package nmc

import (
	mrand "math/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nat(x uint64) *saferith.Nat {
	return new(saferith.Nat).SetUint64(x)
}

func preprocessed(t *testing.T, signature Signature, parties int) []*Node {
	t.Helper()
	source := mrand.New(mrand.NewSource(42))
	nodes := make([]*Node, parties)
	for i := range nodes {
		nodes[i] = NewNode()
	}
	require.NoError(t, Preprocess(source, signature, nodes))
	return nodes
}

func contribute(t *testing.T, nodes []*Node, values Factors) MaskedFactors {
	t.Helper()
	coordinates := make([]Coordinate, 0, len(values))
	for c := range values {
		coordinates = append(coordinates, c)
	}
	masks := make([]Masks, len(nodes))
	for k, node := range nodes {
		m, err := node.Masks(coordinates)
		require.NoError(t, err)
		masks[k] = m
	}
	masked, err := NewMaskedFactors(values, masks)
	require.NoError(t, err)
	return masked
}

func reconstruct(shares []*saferith.Nat) uint64 {
	sum := new(saferith.Nat).SetUint64(0)
	for _, s := range shares {
		sum.ModAdd(sum, s, Modulus())
	}
	return sum.Big().Uint64()
}

func TestSumOfProducts(t *testing.T) {
	signature := Signature{2, 3}
	nodes := preprocessed(t, signature, 3)

	a := contribute(t, nodes, Factors{
		{Term: 0, Factor: 0}: nat(3),
		{Term: 1, Factor: 0}: nat(2),
	})
	b := contribute(t, nodes, Factors{
		{Term: 0, Factor: 1}: nat(5),
		{Term: 1, Factor: 1}: nat(4),
		{Term: 1, Factor: 2}: nat(6),
	})

	shares := make([]*saferith.Nat, len(nodes))
	for k, node := range nodes {
		share, err := node.Compute(signature, []MaskedFactors{a, b})
		require.NoError(t, err)
		shares[k] = share
	}

	// 3⋅5 + 2⋅4⋅6 = 63
	assert.EqualValues(t, 63, reconstruct(shares))

	// a single share reveals nothing; only the full sum reconstructs
	assert.NotEqualValues(t, 63, shares[0].Big().Uint64())
}

func TestSingleNode(t *testing.T) {
	signature := Signature{1}
	nodes := preprocessed(t, signature, 1)

	masked := contribute(t, nodes, Factors{{Term: 0, Factor: 0}: nat(7)})
	share, err := nodes[0].Compute(signature, []MaskedFactors{masked})
	require.NoError(t, err)
	assert.EqualValues(t, 7, reconstruct([]*saferith.Nat{share}))
}

func TestEmptyTerm(t *testing.T) {
	// a term with no factors reconstructs to the empty product
	signature := Signature{0}
	nodes := preprocessed(t, signature, 3)

	shares := make([]*saferith.Nat, len(nodes))
	for k, node := range nodes {
		share, err := node.Compute(signature, nil)
		require.NoError(t, err)
		shares[k] = share
	}
	assert.EqualValues(t, 1, reconstruct(shares))
}

func TestMasksDeterministic(t *testing.T) {
	signature := Signature{2}
	nodes := preprocessed(t, signature, 2)

	coordinates := []Coordinate{{Term: 0, Factor: 1}}
	first, err := nodes[0].Masks(coordinates)
	require.NoError(t, err)
	second, err := nodes[0].Masks(coordinates)
	require.NoError(t, err)
	for c := range first {
		assert.True(t, first[c].Eq(second[c]) == 1, "mask for %v changed between calls", c)
	}
}

func TestNotPreprocessed(t *testing.T) {
	node := NewNode()
	_, err := node.Masks([]Coordinate{{Term: 0, Factor: 0}})
	assert.Error(t, err)
	_, err = node.Compute(Signature{1}, nil)
	assert.Error(t, err)
}

func TestMasksUnknownCoordinate(t *testing.T) {
	nodes := preprocessed(t, Signature{2}, 2)
	_, err := nodes[0].Masks([]Coordinate{{Term: 0, Factor: 5}})
	assert.ErrorContains(t, err, "no mask for coordinate")
	_, err = nodes[0].Masks([]Coordinate{{Term: 1, Factor: 0}})
	assert.ErrorContains(t, err, "no mask for coordinate")
}

func TestComputeBatchErrors(t *testing.T) {
	signature := Signature{2}
	nodes := preprocessed(t, signature, 2)

	a := contribute(t, nodes, Factors{{Term: 0, Factor: 0}: nat(3)})
	b := contribute(t, nodes, Factors{{Term: 0, Factor: 1}: nat(5)})

	_, err := nodes[0].Compute(signature, []MaskedFactors{a})
	assert.ErrorContains(t, err, "batch has 1 masked factors, signature expects 2")

	_, err = nodes[0].Compute(signature, []MaskedFactors{a, a})
	assert.ErrorContains(t, err, "duplicate masked factor")

	_, err = nodes[0].Compute(Signature{1, 1}, []MaskedFactors{a, b})
	assert.ErrorContains(t, err, "preprocessed for 1 terms")
}

func TestMaskedFactorsErrors(t *testing.T) {
	nodes := preprocessed(t, Signature{2}, 2)

	_, err := NewMaskedFactors(Factors{{Term: 0, Factor: 0}: nat(1)}, nil)
	assert.ErrorContains(t, err, "at least one node")

	masks, err := nodes[0].Masks([]Coordinate{{Term: 0, Factor: 0}})
	require.NoError(t, err)
	_, err = NewMaskedFactors(Factors{{Term: 0, Factor: 1}: nat(1)}, []Masks{masks})
	assert.ErrorContains(t, err, "missing coordinate")
}

func TestMaskedFactorsMarshal(t *testing.T) {
	signature := Signature{2}
	nodes := preprocessed(t, signature, 3)

	masked := contribute(t, nodes, Factors{
		{Term: 0, Factor: 0}: nat(2),
		{Term: 0, Factor: 1}: nat(1),
	})

	data, err := masked.MarshalBinary()
	require.NoError(t, err)

	var decoded MaskedFactors
	require.NoError(t, decoded.UnmarshalBinary(data))
	require.Len(t, decoded, len(masked))
	for c, v := range masked {
		require.Contains(t, decoded, c)
		assert.True(t, v.Eq(decoded[c]) == 1)
	}
}
