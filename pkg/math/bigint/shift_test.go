package bigint

import (
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/modexp/internal/params"
)

func TestRsh(t *testing.T) {
	r := mrand.New(mrand.NewSource(3))
	for i := 0; i < 300; i++ {
		a := randInt(r, 8)
		n := r.Intn(300)
		got, err := a.Rsh(n)
		require.NoError(t, err)
		want := new(big.Int).Rsh(toBig(a), uint(n))
		require.Equal(t, 0, toBig(got).Cmp(want), "%v >> %d", a, n)
	}
}

func TestRshBeyondBitLen(t *testing.T) {
	a := MustFromString("deadbeefdeadbeefdeadbeef", 16)
	for _, n := range []int{a.BitLen(), a.BitLen() + 1, 96, 1 << 20} {
		got, err := a.Rsh(n)
		require.NoError(t, err)
		assert.True(t, got.IsZero(), "shift by %d", n)
	}
	got, err := a.Rsh(0)
	require.NoError(t, err)
	assert.True(t, got.Eq(a))
}

func TestLsh(t *testing.T) {
	r := mrand.New(mrand.NewSource(4))
	for i := 0; i < 300; i++ {
		a := randInt(r, 8)
		n := r.Intn(params.MaxShift + 1)
		got, err := a.Lsh(n)
		require.NoError(t, err)
		want := new(big.Int).Lsh(toBig(a), uint(n))
		require.Equal(t, 0, toBig(got).Cmp(want), "%v << %d", a, n)
	}
}

func TestShiftInvalidArgument(t *testing.T) {
	a := FromUint64(12345)

	_, err := a.Rsh(-1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = a.Lsh(-1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = a.Lsh(params.MaxShift + 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = a.Lsh(params.MaxShift)
	assert.NoError(t, err)

	_, err = a.LshBounded(65, 64)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	got, err := a.LshBounded(10_000, 16_384)
	require.NoError(t, err)
	assert.Equal(t, a.BitLen()+10_000, got.BitLen())
}

func TestShiftRoundTrip(t *testing.T) {
	r := mrand.New(mrand.NewSource(5))
	for i := 0; i < 300; i++ {
		a := randInt(r, 10)
		n := r.Intn(400)
		down, err := a.Rsh(n)
		require.NoError(t, err)
		back, err := down.Lsh(n)
		require.NoError(t, err)

		assert.True(t, back.Le(a))
		// a with its low n bits cleared
		cleared := a.Sub(a.LowBits(n))
		assert.True(t, back.Eq(cleared), "(%v >> %d) << %d", a, n, n)
	}
}

func TestAnd(t *testing.T) {
	r := mrand.New(mrand.NewSource(6))
	for i := 0; i < 300; i++ {
		a, b := randInt(r, 6), randInt(r, 6)
		want := new(big.Int).And(toBig(a), toBig(b))
		require.Equal(t, 0, toBig(a.And(b)).Cmp(want))
	}
	assert.True(t, FromUint64(0b1010).And(FromUint64(0b0101)).IsZero())
}

func TestLowBits(t *testing.T) {
	r := mrand.New(mrand.NewSource(7))
	for i := 0; i < 300; i++ {
		a := randInt(r, 6)
		n := r.Intn(250)
		mask := PowerOfTwo(n).Sub(One())
		require.True(t, a.LowBits(n).Eq(a.And(mask)), "%v mod 2^%d", a, n)
	}
	assert.True(t, FromUint64(0xff).LowBits(0).IsZero())
	assert.Panics(t, func() { One().LowBits(-1) })
}
