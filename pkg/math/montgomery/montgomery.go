package montgomery

import (
	"errors"
	"fmt"

	"github.com/taurusgroup/modexp/internal/params"
	"github.com/taurusgroup/modexp/pkg/math/bigint"
)

// ErrReductionInfeasible signals that a modulus accepted for Montgomery
// reduction turned out not to be coprime to the radix.
// It is only ever raised through a panic, since it means the enablement rule is wrong.
var ErrReductionInfeasible = errors.New("montgomery: reduction infeasible")

// reduction holds the constants that only exist for an odd modulus.
type reduction struct {
	// nPrime = -N⁻¹ (mod R)
	nPrime bigint.Int
	// rInv = R⁻¹ (mod N). REDC does not need it, it is kept for callers
	// converting between representations by hand.
	rInv bigint.Int
	// mask = R - 1
	mask bigint.Int
}

// Context performs modular multiplication for a fixed modulus N, using
// Montgomery's REDC when N is odd and N ≥ 3.
//
// For any other modulus the context is disabled: conversions are the identity,
// and multiplication falls back to (x⋅y) mod N.
//
// A Context is immutable once created, and may be shared between goroutines.
type Context struct {
	modulus bigint.Int
	// rBits is the bit length of N rounded up to a multiple of params.DigitBits.
	rBits int
	// r = 2^rBits
	r bigint.Int
	// red is nil when the context is disabled.
	red *reduction
}

// NewContext precomputes the Montgomery constants for modulus.
//
// It panics with ErrReductionInfeasible if an odd modulus ≥ 3 has no inverse
// modulo R, which cannot happen for a correct ModInverse.
func NewContext(modulus bigint.Int) *Context {
	rBits := (modulus.BitLen() + params.DigitBits - 1) / params.DigitBits * params.DigitBits
	c := &Context{
		modulus: modulus,
		rBits:   rBits,
		r:       bigint.PowerOfTwo(rBits),
	}
	if !modulus.IsOdd() || modulus.Lt(bigint.FromUint64(params.MinMontgomeryModulus)) {
		return c
	}

	nInv, ok := modulus.ModInverse(c.r)
	if !ok {
		panic(fmt.Errorf("montgomery.NewContext: %v has no inverse mod 2^%d: %w", modulus, rBits, ErrReductionInfeasible))
	}
	rInv, ok := c.r.ModInverse(modulus)
	if !ok {
		panic(fmt.Errorf("montgomery.NewContext: 2^%d has no inverse mod %v: %w", rBits, modulus, ErrReductionInfeasible))
	}
	c.red = &reduction{
		// nInv is odd, so 0 < nInv < R and R - nInv is already reduced.
		nPrime: c.r.Sub(nInv),
		rInv:   rInv,
		mask:   c.r.Sub(bigint.One()),
	}
	return c
}

// Enabled reports whether Montgomery reduction is used for this modulus.
func (c *Context) Enabled() bool {
	return c.red != nil
}

// Modulus returns N.
func (c *Context) Modulus() bigint.Int {
	return c.modulus
}

// RBits returns log₂(R).
func (c *Context) RBits() int {
	return c.rBits
}

// R returns the Montgomery radix.
func (c *Context) R() bigint.Int {
	return c.r
}

// NPrime returns N' = -N⁻¹ (mod R), and false if the context is disabled.
func (c *Context) NPrime() (bigint.Int, bool) {
	if c.red == nil {
		return bigint.Int{}, false
	}
	return c.red.nPrime, true
}

// RInverse returns R⁻¹ (mod N), and false if the context is disabled.
func (c *Context) RInverse() (bigint.Int, bool) {
	if c.red == nil {
		return bigint.Int{}, false
	}
	return c.red.rInv, true
}

// ToMontgomery returns x⋅R (mod N), or x if the context is disabled.
func (c *Context) ToMontgomery(x bigint.Int) bigint.Int {
	if c.red == nil {
		return x
	}
	// N ≥ 3, the division cannot fail.
	xR, _ := x.Mul(c.r).Mod(c.modulus)
	return xR
}

// FromMontgomery returns x⋅R⁻¹ (mod N), or x if the context is disabled.
// x must satisfy x < N⋅R.
func (c *Context) FromMontgomery(x bigint.Int) bigint.Int {
	if c.red == nil {
		return x
	}
	return c.redc(x)
}

// REDC returns x⋅R⁻¹ (mod N) for x < N⋅R.
//
// When the context is disabled, it returns x mod N instead, which fails with
// bigint.ErrDivideByZero for N = 0.
func (c *Context) REDC(x bigint.Int) (bigint.Int, error) {
	if c.red == nil {
		r, err := x.Mod(c.modulus)
		if err != nil {
			return bigint.Int{}, fmt.Errorf("montgomery.REDC: %w", err)
		}
		return r, nil
	}
	return c.redc(x), nil
}

func (c *Context) redc(x bigint.Int) bigint.Int {
	// m = (x mod R)⋅N' mod R
	m := x.And(c.red.mask).Mul(c.red.nPrime).And(c.red.mask)
	// x + m⋅N ≡ x - x⋅N⁻¹⋅N ≡ 0 (mod R), so the shift is exact.
	// rBits ≥ 0, the shift cannot fail.
	t, _ := x.Add(m.Mul(c.modulus)).Rsh(c.rBits)
	// x < N⋅R and m < R give t < 2N.
	if !t.Lt(c.modulus) {
		t = t.Sub(c.modulus)
	}
	return t
}

// Multiply returns REDC(x⋅y), or (x⋅y) mod N when the context is disabled.
// For x, y in Montgomery form this is the Montgomery form of their product.
func (c *Context) Multiply(x, y bigint.Int) (bigint.Int, error) {
	if c.red == nil {
		r, err := x.Mul(y).Mod(c.modulus)
		if err != nil {
			return bigint.Int{}, fmt.Errorf("montgomery.Multiply: %w", err)
		}
		return r, nil
	}
	return c.redc(x.Mul(y)), nil
}
