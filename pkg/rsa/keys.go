package rsa

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/modexp/pkg/math/bigint"
	"github.com/taurusgroup/modexp/pkg/math/modexp"
	"github.com/taurusgroup/modexp/pkg/math/montgomery"
)

// PublicKey is an RSA public key (N, e).
//
// The Montgomery context for N is computed once, when the key is created.
type PublicKey struct {
	n, e bigint.Int
	ctx  *montgomery.Context
}

// NewPublicKey returns the public key (n, e), checking that n ≥ 2 and e > 0.
func NewPublicKey(n, e bigint.Int) (*PublicKey, error) {
	if err := validate(n, e); err != nil {
		return nil, err
	}
	return &PublicKey{
		n:   n,
		e:   e,
		ctx: montgomery.NewContext(n),
	}, nil
}

func validate(n, exponent bigint.Int) error {
	if n.Lt(bigint.FromUint64(2)) {
		return ErrInvalidModulus
	}
	if exponent.IsZero() {
		return ErrInvalidExponent
	}
	return nil
}

// N returns the modulus.
func (pk *PublicKey) N() bigint.Int { return pk.n }

// E returns the public exponent.
func (pk *PublicKey) E() bigint.Int { return pk.e }

// Equal returns true if pk and other have the same modulus and exponent.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.n.Eq(other.n) && pk.e.Eq(other.e)
}

// Encrypt returns mᵉ (mod N). The message must be smaller than N.
func (pk *PublicKey) Encrypt(m bigint.Int) (bigint.Int, error) {
	return pk.transform(m, pk.e)
}

func (pk *PublicKey) transform(x, exponent bigint.Int) (bigint.Int, error) {
	if !x.Lt(pk.n) {
		return bigint.Int{}, ErrMessageTooLarge
	}
	y, err := modexp.ExpContext(pk.ctx, x, exponent)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("rsa: %w", err)
	}
	return y, nil
}

// PrivateKey is an RSA private key, the public key together with the private exponent d.
type PrivateKey struct {
	PublicKey
	d bigint.Int
}

// NewPrivateKey returns the private key (n, e, d).
//
// The relation e⋅d ≡ 1 (mod λ(n)) cannot be checked without the factorization
// of n; it is the responsibility of the key generator.
func NewPrivateKey(n, e, d bigint.Int) (*PrivateKey, error) {
	pk, err := NewPublicKey(n, e)
	if err != nil {
		return nil, err
	}
	if d.IsZero() {
		return nil, ErrInvalidExponent
	}
	return &PrivateKey{PublicKey: *pk, d: d}, nil
}

// D returns the private exponent.
func (sk *PrivateKey) D() bigint.Int { return sk.d }

// Public returns the public part of sk.
func (sk *PrivateKey) Public() *PublicKey {
	pk := sk.PublicKey
	return &pk
}

// Decrypt returns cᵈ (mod N). The ciphertext must be smaller than N.
func (sk *PrivateKey) Decrypt(c bigint.Int) (bigint.Int, error) {
	return sk.transform(c, sk.d)
}

type keyMarshal struct {
	N, E bigint.Int
	D    *bigint.Int `cbor:",omitempty"`
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&keyMarshal{N: pk.n, E: pk.e})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	var km keyMarshal
	if err := cbor.Unmarshal(data, &km); err != nil {
		return fmt.Errorf("rsa.PublicKey: %w", err)
	}
	if km.D != nil {
		return fmt.Errorf("rsa.PublicKey: data contains a private exponent")
	}
	key, err := NewPublicKey(km.N, km.E)
	if err != nil {
		return fmt.Errorf("rsa.PublicKey: %w", err)
	}
	*pk = *key
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	d := sk.d
	return cbor.Marshal(&keyMarshal{N: sk.n, E: sk.e, D: &d})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sk *PrivateKey) UnmarshalBinary(data []byte) error {
	var km keyMarshal
	if err := cbor.Unmarshal(data, &km); err != nil {
		return fmt.Errorf("rsa.PrivateKey: %w", err)
	}
	if km.D == nil {
		return fmt.Errorf("rsa.PrivateKey: missing private exponent: %w", ErrInvalidExponent)
	}
	key, err := NewPrivateKey(km.N, km.E, *km.D)
	if err != nil {
		return fmt.Errorf("rsa.PrivateKey: %w", err)
	}
	*sk = *key
	return nil
}
