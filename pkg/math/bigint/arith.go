package bigint

import (
	"fmt"
	"math/bits"
)

// Add returns x + y.
func (x Int) Add(y Int) Int {
	a, b := x.digits(), y.digits()
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]uint32, len(a)+1)
	var carry uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		z[i], carry = bits.Add32(a[i], bi, carry)
	}
	z[len(a)] = carry
	return fromLimbs(z)
}

// Sub returns x - y if x ≥ y, and 0 otherwise.
//
// Int only models non-negative magnitudes, and the arithmetic built on top of it
// never needs a negative intermediate. Rather than introducing a sign, a
// difference that would be negative saturates at zero. Callers that need to
// distinguish both cases must compare the operands first.
func (x Int) Sub(y Int) Int {
	a, b := x.digits(), y.digits()
	if cmpLimbs(a, b) <= 0 {
		return Zero()
	}
	z := make([]uint32, len(a))
	var borrow uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		z[i], borrow = bits.Sub32(a[i], bi, borrow)
	}
	return fromLimbs(z)
}

// Mul returns x ⋅ y, using schoolbook multiplication.
func (x Int) Mul(y Int) Int {
	a, b := x.digits(), y.digits()
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	z := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint64
		for j, bj := range b {
			// (2³²-1)² + 2⋅(2³²-1) = 2⁶⁴-1, so t cannot overflow.
			t := uint64(ai)*uint64(bj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> _W
		}
		z[i+len(b)] = uint32(carry)
	}
	return fromLimbs(z)
}

// DivMod returns q, r such that q⋅y + r = x and 0 ≤ r < y.
// It returns ErrDivideByZero if y = 0.
func (x Int) DivMod(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("bigint.DivMod: %w", ErrDivideByZero)
	}
	a, b := x.digits(), y.digits()
	switch {
	case cmpLimbs(a, b) < 0:
		return Zero(), x, nil
	case len(b) == 1:
		qz, rw := divWord(a, b[0])
		return fromLimbs(qz), FromUint64(uint64(rw)), nil
	}
	qz, rz := divLimbs(a, b)
	return fromLimbs(qz), fromLimbs(rz), nil
}

// Div returns ⌊x / y⌋.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns x mod y.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// divWord divides a by the single limb d ≠ 0.
func divWord(a []uint32, d uint32) ([]uint32, uint32) {
	q := make([]uint32, len(a))
	var r uint64
	for i := len(a) - 1; i >= 0; i-- {
		t := r<<_W | uint64(a[i])
		q[i] = uint32(t / uint64(d))
		r = t % uint64(d)
	}
	return q, uint32(r)
}

// shlLimbs sets dst = src << s for 0 ≤ s < 32, returning the bits shifted out.
// len(dst) must be at least len(src).
func shlLimbs(dst, src []uint32, s uint) uint32 {
	if s == 0 {
		copy(dst, src)
		return 0
	}
	var carry uint32
	for i, w := range src {
		dst[i] = w<<s | carry
		carry = w >> (_W - s)
	}
	return carry
}

// divLimbs implements Knuth's Algorithm D (TAOCP vol. 2, §4.3.1) for
// len(v) ≥ 2 and u ≥ v, with both inputs normalized.
func divLimbs(u, v []uint32) (q, r []uint32) {
	n := len(v)
	m := len(u) - n

	// D1. Normalize so that the top limb of the divisor has its high bit set.
	s := uint(bits.LeadingZeros32(v[n-1]))
	vn := make([]uint32, n)
	shlLimbs(vn, v, s)
	un := make([]uint32, len(u)+1)
	un[len(u)] = shlLimbs(un, u, s)

	q = make([]uint32, m+1)
	vTop, vNext := uint64(vn[n-1]), uint64(vn[n-2])
	for j := m; j >= 0; j-- {
		// D3. Estimate the quotient limb; it is at most two too large.
		num := uint64(un[j+n])<<_W | uint64(un[j+n-1])
		qhat := num / vTop
		rhat := num % vTop
		for qhat >= _B || qhat*vNext > rhat<<_W|uint64(un[j+n-2]) {
			qhat--
			rhat += vTop
			if rhat >= _B {
				break
			}
		}

		// D4. Multiply and subtract.
		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&_MASK)
			un[i+j] = uint32(t)
			k = int64(p>>_W) - t>>_W
		}
		t := int64(un[j+n]) - k
		un[j+n] = uint32(t)

		// D5, D6. The estimate was one too large: add the divisor back.
		q[j] = uint32(qhat)
		if t < 0 {
			q[j]--
			var c uint32
			for i := 0; i < n; i++ {
				un[i+j], c = bits.Add32(un[i+j], vn[i], c)
			}
			un[j+n] += c
		}
	}

	// D8. Unnormalize the remainder.
	r = make([]uint32, n)
	if s == 0 {
		copy(r, un[:n])
		return q, r
	}
	for i := 0; i < n; i++ {
		r[i] = un[i]>>s | un[i+1]<<(_W-s)
	}
	return q, r
}
