package sample

import (
	"fmt"
	"io"

	"github.com/taurusgroup/modexp/pkg/math/bigint"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Bits samples an integer with at most bits bits.
func Bits(rand io.Reader, bits int) bigint.Int {
	if bits <= 0 {
		return bigint.Zero()
	}
	buf := make([]byte, (bits+7)/8)
	mustReadBits(rand, buf)
	if extra := uint(len(buf)*8 - bits); extra > 0 {
		buf[0] &= 0xff >> extra
	}
	return bigint.FromBytes(buf)
}

// ModN samples an element of ℤₙ, i.e. an integer in [0, n).
//
// It panics if n is zero.
func ModN(rand io.Reader, n bigint.Int) bigint.Int {
	if n.IsZero() {
		panic("sample.ModN: zero modulus")
	}
	bits := n.BitLen()
	for {
		out := Bits(rand, bits)
		if out.Lt(n) {
			return out
		}
	}
}

// OddModulus samples an odd integer of exactly bits bits, with bits ≥ 2.
func OddModulus(rand io.Reader, bits int) bigint.Int {
	if bits < 2 {
		panic("sample.OddModulus: modulus size must be at least 2 bits")
	}
	out := Bits(rand, bits-1).Add(bigint.PowerOfTwo(bits - 1))
	if !out.IsOdd() {
		out = out.Add(bigint.One())
	}
	return out
}
