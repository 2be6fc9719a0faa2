package bigint

import (
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddMatchesBig(a, b []byte) bool {
	x, y := FromBytes(a), FromBytes(b)
	want := new(big.Int).Add(toBig(x), toBig(y))
	return toBig(x.Add(y)).Cmp(want) == 0
}

func TestAdd(t *testing.T) {
	if err := quick.Check(testAddMatchesBig, &quick.Config{}); err != nil {
		t.Error(err)
	}
	// carry into a new limb
	x := FromUint64(0xffffffff).Add(One())
	assert.Equal(t, []uint32{0, 1}, x.Limbs())
}

func testSubMatchesBig(a, b []byte) bool {
	x, y := FromBytes(a), FromBytes(b)
	want := new(big.Int).Sub(toBig(x), toBig(y))
	if want.Sign() < 0 {
		want.SetInt64(0)
	}
	return toBig(x.Sub(y)).Cmp(want) == 0
}

func TestSub(t *testing.T) {
	if err := quick.Check(testSubMatchesBig, &quick.Config{}); err != nil {
		t.Error(err)
	}
	x := PowerOfTwo(64).Sub(One())
	assert.Equal(t, []uint32{0xffffffff, 0xffffffff}, x.Limbs())
}

func TestSubClampsAtZero(t *testing.T) {
	assert.True(t, FromUint64(3).Sub(FromUint64(5)).IsZero())
	assert.True(t, Zero().Sub(PowerOfTwo(200)).IsZero())
	assert.True(t, FromUint64(5).Sub(FromUint64(5)).IsZero())
	assert.Equal(t, uint64(2), mustUint64(t, FromUint64(5).Sub(FromUint64(3))))
}

func testMulMatchesBig(a, b []byte) bool {
	x, y := FromBytes(a), FromBytes(b)
	want := new(big.Int).Mul(toBig(x), toBig(y))
	return toBig(x.Mul(y)).Cmp(want) == 0
}

func TestMul(t *testing.T) {
	if err := quick.Check(testMulMatchesBig, &quick.Config{}); err != nil {
		t.Error(err)
	}
	allOnes := PowerOfTwo(128).Sub(One())
	want := new(big.Int).Mul(toBig(allOnes), toBig(allOnes))
	assert.Equal(t, 0, toBig(allOnes.Mul(allOnes)).Cmp(want))
	assert.True(t, allOnes.Mul(Zero()).IsZero())
}

func checkDivMod(t *testing.T, a, b Int) {
	t.Helper()
	q, r, err := a.DivMod(b)
	require.NoError(t, err)
	// q⋅b + r = a and 0 ≤ r < b
	require.True(t, q.Mul(b).Add(r).Eq(a), "q*b+r != a for a=%v b=%v (q=%v r=%v)", a, b, q, r)
	require.True(t, r.Lt(b), "r >= b for a=%v b=%v", a, b)

	wantQ, wantR := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
	require.Equal(t, 0, toBig(q).Cmp(wantQ))
	require.Equal(t, 0, toBig(r).Cmp(wantR))
}

func TestDivModInvariant(t *testing.T) {
	r := mrand.New(mrand.NewSource(2))
	// Sizes straddle the single-limb fast path and multi-limb long division.
	for _, sizes := range [][2]int{{1, 1}, {2, 1}, {3, 2}, {8, 2}, {8, 7}, {17, 9}, {70, 33}, {140, 64}} {
		for i := 0; i < 100; i++ {
			a := randInt(r, sizes[0])
			b := randNonZero(r, sizes[1])
			checkDivMod(t, a, b)
		}
	}
}

func testDivModQuick(a, b []byte) bool {
	x, y := FromBytes(a), FromBytes(b)
	if y.IsZero() {
		y = One()
	}
	q, r, err := x.DivMod(y)
	return err == nil && q.Mul(y).Add(r).Eq(x) && r.Lt(y)
}

func TestDivModQuick(t *testing.T) {
	if err := quick.Check(testDivModQuick, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}

func TestDivModEdgeCases(t *testing.T) {
	a := MustFromString("340282366920938463463374607431768211457", 10)

	q, r, err := a.DivMod(a.Add(One()))
	require.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.True(t, r.Eq(a), "a < b yields (0, a)")

	q, r, err = a.DivMod(One())
	require.NoError(t, err)
	assert.True(t, q.Eq(a))
	assert.True(t, r.IsZero(), "b = 1 yields (a, 0)")

	q, r, err = Zero().DivMod(a)
	require.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.True(t, r.IsZero(), "a = 0 yields (0, 0)")

	q, r, err = a.DivMod(a)
	require.NoError(t, err)
	assert.True(t, q.IsOne())
	assert.True(t, r.IsZero())
}

func TestDivModAddBack(t *testing.T) {
	// Quotient estimates for these inputs overshoot and need correcting.
	cases := [][2]Int{
		{
			fromLimbs([]uint32{0, 0, 0x80000000, 0x7fffffff}),
			fromLimbs([]uint32{1, 0, 0x80000000}),
		},
		{
			fromLimbs([]uint32{0, 0xfffffffe, 0, 0x80000000}),
			fromLimbs([]uint32{0xffffffff, 0x80000000}),
		},
		{
			fromLimbs([]uint32{3, 0, 0x80000000}),
			fromLimbs([]uint32{1, 0, 0x20000000}),
		},
		{
			fromLimbs([]uint32{0, 0, 0x8000, 0x7fff}),
			fromLimbs([]uint32{1, 0, 0x8000}),
		},
	}
	for _, c := range cases {
		checkDivMod(t, c[0], c[1])
	}
}

func TestDivideByZero(t *testing.T) {
	_, _, err := FromUint64(10).DivMod(Zero())
	assert.True(t, errors.Is(err, ErrDivideByZero))
	_, err = FromUint64(10).Mod(Int{})
	assert.True(t, errors.Is(err, ErrDivideByZero))
	_, err = Zero().Div(Zero())
	assert.True(t, errors.Is(err, ErrDivideByZero))
}

func mustUint64(t *testing.T, x Int) uint64 {
	t.Helper()
	v, ok := x.Uint64()
	require.True(t, ok)
	return v
}

var resultInt Int

func BenchmarkMul(b *testing.B) {
	r := mrand.New(mrand.NewSource(0))
	x, y := randNonZero(r, 128), randNonZero(r, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resultInt = x.Mul(y)
	}
}

func BenchmarkDivMod(b *testing.B) {
	r := mrand.New(mrand.NewSource(0))
	x, y := randNonZero(r, 256), randNonZero(r, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, resultInt, _ = x.DivMod(y)
	}
}
