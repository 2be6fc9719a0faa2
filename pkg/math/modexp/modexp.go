// Package modexp computes modular exponentiations on bigint.Int values,
// using Montgomery multiplication whenever the modulus allows it.
package modexp

import (
	"fmt"

	"github.com/taurusgroup/modexp/pkg/math/bigint"
	"github.com/taurusgroup/modexp/pkg/math/montgomery"
)

// Exp returns baseᵉˣᵖᵒⁿᵉⁿᵗ (mod modulus).
//
// By convention, the result is 0 whenever modulus ≤ 1, and 1 whenever
// exponent = 0 and modulus > 1, including for base = 0.
func Exp(base, exponent, modulus bigint.Int) (bigint.Int, error) {
	if modulus.Le(bigint.One()) {
		return bigint.Zero(), nil
	}
	return ExpContext(montgomery.NewContext(modulus), base, exponent)
}

// ExpContext is Exp with a precomputed context for the modulus, which lets
// callers reuse a montgomery.Cache across exponentiations.
//
// The exponent is scanned from its least significant bit: the running
// power base^(2ⁱ) is folded into the result whenever bit i is set, and
// squared while higher bits remain.
func ExpContext(ctx *montgomery.Context, base, exponent bigint.Int) (bigint.Int, error) {
	modulus := ctx.Modulus()
	if modulus.Le(bigint.One()) {
		return bigint.Zero(), nil
	}
	if exponent.IsZero() {
		return bigint.One(), nil
	}

	b, err := base.Mod(modulus)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("modexp.Exp: reduce base: %w", err)
	}
	result := bigint.One()
	if ctx.Enabled() {
		result = ctx.ToMontgomery(result)
		b = ctx.ToMontgomery(b)
	}

	e := exponent
	for !e.IsZero() {
		if e.IsOdd() {
			if result, err = ctx.Multiply(result, b); err != nil {
				return bigint.Int{}, fmt.Errorf("modexp.Exp: multiply: %w", err)
			}
		}
		if e, err = e.Rsh(1); err != nil {
			return bigint.Int{}, fmt.Errorf("modexp.Exp: %w", err)
		}
		if e.IsZero() {
			// last bit, the next square would be discarded
			break
		}
		if b, err = ctx.Multiply(b, b); err != nil {
			return bigint.Int{}, fmt.Errorf("modexp.Exp: square: %w", err)
		}
	}

	if ctx.Enabled() {
		result = ctx.FromMontgomery(result)
	}
	return result, nil
}

// ExpBytes performs Exp on big-endian encoded operands, returning the minimal
// big-endian encoding of the result.
// A zero (or empty) modulus yields an empty result.
func ExpBytes(base, exponent, modulus []byte) ([]byte, error) {
	m := bigint.FromBytes(modulus)
	if m.IsZero() {
		return []byte{}, nil
	}
	r, err := Exp(bigint.FromBytes(base), bigint.FromBytes(exponent), m)
	if err != nil {
		return nil, err
	}
	return r.Bytes(), nil
}
