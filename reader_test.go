package validity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_AgreesWithGet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{0, 1, 7, 8, 9, 64, 200} {
		values := make([]bool, n)
		for i := range values {
			values[i] = rng.Intn(2) == 1
		}
		b := FromBools(values)

		r := NewReader(b)
		require.Equal(t, n, r.Len())

		for i := 0; i < n; i++ {
			assert.Equal(t, i, r.Pos())
			assert.Equal(t, values[i], r.IsSet(), "bit %d of length %d", i, n)
			assert.Equal(t, !values[i], r.IsNotSet(), "bit %d of length %d", i, n)
			r.Next()
		}
		assert.Equal(t, n, r.Pos())
	}
}

func TestReader_CrossesByteBoundaries(t *testing.T) {
	b := New(16)
	b.UnsafeSet(7, true)
	b.UnsafeSet(8, true)

	r := NewReader(b)
	for i := 0; i < 16; i++ {
		want := i == 7 || i == 8
		assert.Equal(t, want, r.IsSet(), "bit %d", i)
		r.Next()
	}
}

func TestReader_EmptyBitmap(t *testing.T) {
	r := NewReader(New(0))
	assert.Zero(t, r.Len())
	assert.Zero(t, r.Pos())
}
