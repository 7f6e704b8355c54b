package sample

import (
	mrand "math/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
)

func TestModNBelowModulus(t *testing.T) {
	source := mrand.New(mrand.NewSource(0))
	n := saferith.ModulusFromBytes([]byte{0x0b}) // 11

	for i := 0; i < 64; i++ {
		x := ModN(source, n)
		_, _, lt := x.CmpMod(n)
		assert.EqualValues(t, 1, lt)
	}
}

func TestUnitModNIsInvertible(t *testing.T) {
	source := mrand.New(mrand.NewSource(0))
	n := saferith.ModulusFromBytes([]byte{0x0f}) // 15, a composite with non-units

	for i := 0; i < 64; i++ {
		u := UnitModN(source, n)
		assert.EqualValues(t, 1, u.IsUnit(n))
	}
}
