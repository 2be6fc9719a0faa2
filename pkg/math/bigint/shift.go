package bigint

import (
	"fmt"

	"github.com/taurusgroup/modexp/internal/params"
)

// Rsh returns ⌊x / 2ⁿ⌋. It returns 0 whenever n ≥ x.BitLen().
// A negative n yields ErrInvalidArgument.
func (x Int) Rsh(n int) (Int, error) {
	if n < 0 {
		return Int{}, fmt.Errorf("bigint.Rsh: negative shift count %d: %w", n, ErrInvalidArgument)
	}
	return x.rsh(uint(n)), nil
}

func (x Int) rsh(n uint) Int {
	d := x.digits()
	words, s := int(n/_W), n%_W
	if words >= len(d) {
		return Zero()
	}
	src := d[words:]
	z := make([]uint32, len(src))
	if s == 0 {
		copy(z, src)
		return fromLimbs(z)
	}
	for i := range src {
		z[i] = src[i] >> s
		if i+1 < len(src) {
			z[i] |= src[i+1] << (_W - s)
		}
	}
	return fromLimbs(z)
}

// Lsh returns x ⋅ 2ⁿ, for 0 ≤ n ≤ params.MaxShift.
//
// Shift counts outside that range yield ErrInvalidArgument rather than an
// attempt to allocate an arbitrarily large result.
func (x Int) Lsh(n int) (Int, error) {
	return x.LshBounded(n, params.MaxShift)
}

// LshBounded is Lsh with a caller supplied upper bound on n.
func (x Int) LshBounded(n, limit int) (Int, error) {
	if n < 0 {
		return Int{}, fmt.Errorf("bigint.Lsh: negative shift count %d: %w", n, ErrInvalidArgument)
	}
	if n > limit {
		return Int{}, fmt.Errorf("bigint.Lsh: shift count %d exceeds %d: %w", n, limit, ErrInvalidArgument)
	}
	return x.lsh(uint(n)), nil
}

func (x Int) lsh(n uint) Int {
	if x.IsZero() {
		return Zero()
	}
	d := x.digits()
	words, s := int(n/_W), n%_W
	z := make([]uint32, len(d)+words+1)
	z[len(d)+words] = shlLimbs(z[words:], d, s)
	return fromLimbs(z)
}

// And returns x & y.
func (x Int) And(y Int) Int {
	a, b := x.digits(), y.digits()
	if len(a) > len(b) {
		a, b = b, a
	}
	z := make([]uint32, len(a))
	for i := range a {
		z[i] = a[i] & b[i]
	}
	return fromLimbs(z)
}

// LowBits returns x mod 2ⁿ, that is x with every bit at position ≥ n cleared.
// It panics if n is negative.
func (x Int) LowBits(n int) Int {
	if n < 0 {
		panic("bigint.LowBits: negative bit count")
	}
	d := x.digits()
	words, s := n/_W, uint(n)%_W
	if words >= len(d) {
		return x
	}
	z := make([]uint32, words+1)
	copy(z, d[:words])
	z[words] = d[words] & (1<<s - 1)
	return fromLimbs(z)
}
