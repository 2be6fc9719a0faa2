package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taurusgroup/modexp/pkg/math/bigint"
)

func TestHash_WriteAny(t *testing.T) {
	testFunc := func(vs ...interface{}) error {
		return New().WriteAny(vs...)
	}

	assert.NoError(t, testFunc(bigint.FromUint64(35)))
	assert.NoError(t, testFunc([]byte{1, 4, 6}))
	assert.NoError(t, testFunc("modulus"))
	assert.NoError(t, testFunc(bigint.FromUint64(35), []byte{1, 4, 6}))

	assert.Error(t, testFunc(35))
}

func TestHash_DomainSeparation(t *testing.T) {
	sum := func(vs ...interface{}) [DigestLengthBytes]byte {
		h := New()
		assert.NoError(t, h.WriteAny(vs...))
		return h.Sum()
	}

	// Same bytes under different domains must not collide.
	assert.NotEqual(t, sum([]byte("ab")), sum("ab"))
	assert.NotEqual(t, sum(bigint.FromUint64(35)), sum([]byte{35}))
	assert.NotEqual(t, sum([]byte("a"), []byte("b")), sum([]byte("ab")))

	assert.Equal(t, sum(bigint.FromUint64(143)), sum(bigint.MustFromString("8f", 16)))
	assert.NotEqual(t, sum(bigint.FromUint64(143)), sum(bigint.FromUint64(35)))
}

func TestHash_Clone(t *testing.T) {
	h := New()
	assert.NoError(t, h.WriteAny("prefix"))
	c := h.Clone()
	assert.Equal(t, h.Sum(), c.Sum())

	assert.NoError(t, c.WriteAny("suffix"))
	assert.NotEqual(t, h.Sum(), c.Sum())
}
