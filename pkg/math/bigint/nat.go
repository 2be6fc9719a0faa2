package bigint

import "github.com/cronokirby/saferith"

// FromNat converts a saferith.Nat to an Int.
func FromNat(n *saferith.Nat) Int {
	return FromBytes(n.Bytes())
}

// Nat returns x as a new saferith.Nat, for interoperating with constant-time code.
func (x Int) Nat() *saferith.Nat {
	return new(saferith.Nat).SetBytes(x.Bytes())
}

// Modulus returns x as a saferith.Modulus. It panics if x is zero.
func (x Int) Modulus() *saferith.Modulus {
	if x.IsZero() {
		panic("bigint.Modulus: zero modulus")
	}
	return saferith.ModulusFromBytes(x.Bytes())
}
