package pool

import (
	"io"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestParallelize(t *testing.T) {
	pl := NewPool(3)
	defer pl.TearDown()

	results := pl.Parallelize(10, func(i int) interface{} { return i * i })
	require.Len(t, results, 10)
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func TestParallelizeNilPool(t *testing.T) {
	var pl *Pool
	results := pl.Parallelize(4, func(i int) interface{} { return i })
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, i, r)
	}
}

func TestLockedReader(t *testing.T) {
	// math/rand sources are not safe for concurrent use; the wrapper must be.
	r := NewLockedReader(mrand.New(mrand.NewSource(0)))

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			buf := make([]byte, 64)
			_, err := io.ReadFull(r, buf)
			return err
		})
	}
	require.NoError(t, g.Wait())
}
