// Package rsa implements the raw RSA transform m ↦ mᵉ (mod N) on top of
// Montgomery exponentiation.
//
// Key generation, padding and message encoding are out of scope: keys are
// built from integers produced elsewhere, and messages are integers already
// smaller than the modulus.
package rsa

import (
	"fmt"

	"github.com/taurusgroup/modexp/pkg/math/bigint"
	"github.com/taurusgroup/modexp/pkg/math/modexp"
)

// Transform returns messageᵉˣᵖᵒⁿᵉⁿᵗ (mod modulus).
//
// It is the same operation for encryption under a public exponent and for
// decryption under a private one. Inputs are not validated, see PublicKey
// and PrivateKey for checked variants.
func Transform(message, exponentOrKey, modulus bigint.Int) (bigint.Int, error) {
	c, err := modexp.Exp(message, exponentOrKey, modulus)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("rsa.Transform: %w", err)
	}
	return c, nil
}
