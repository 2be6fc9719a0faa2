package bigint

import (
	"errors"
	"math/bits"

	"github.com/taurusgroup/modexp/internal/params"
)

var (
	// ErrDivideByZero is returned when the divisor of a division is zero.
	ErrDivideByZero = errors.New("bigint: division by zero")
	// ErrInvalidArgument is returned for negative shift counts, shift counts
	// above the configured bound, and malformed textual input.
	ErrInvalidArgument = errors.New("bigint: invalid argument")
)

const (
	_W    = params.DigitBits
	_B    = uint64(1) << _W
	_MASK = _B - 1
)

// zeroLimbs is the canonical representation of 0. It is shared and must never be written to.
var zeroLimbs = []uint32{0}

// Int is an arbitrary-precision non-negative integer.
//
// The magnitude is stored as little-endian 32-bit limbs, without trailing zero
// limbs, except for 0 which is the single limb 0.
// An Int is immutable: every operation returns a new value and leaves its
// receiver and arguments untouched, so values can be shared freely between goroutines.
// The zero value is a valid representation of 0.
//
// Int has no sign. Subtraction clamps at zero, see Sub.
type Int struct {
	limbs []uint32
}

// norm strips trailing zero limbs, keeping at least one limb.
func norm(z []uint32) []uint32 {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 || (i == 1 && z[0] == 0) {
		return zeroLimbs
	}
	return z[:i]
}

func fromLimbs(z []uint32) Int {
	return Int{limbs: norm(z)}
}

// digits returns the normalized limbs of x, read-only.
func (x Int) digits() []uint32 {
	if len(x.limbs) == 0 {
		return zeroLimbs
	}
	return x.limbs
}

// Zero returns 0.
func Zero() Int { return Int{limbs: zeroLimbs} }

// One returns 1.
func One() Int { return Int{limbs: []uint32{1}} }

// FromUint64 returns x as an Int.
func FromUint64(x uint64) Int {
	return fromLimbs([]uint32{uint32(x), uint32(x >> _W)})
}

// PowerOfTwo returns 2ⁿ.
//
// Unlike Lsh, it is not subject to params.MaxShift; it is meant for radices
// derived from trusted sizes such as a modulus bit length.
// It panics if n is negative.
func PowerOfTwo(n int) Int {
	if n < 0 {
		panic("bigint.PowerOfTwo: negative exponent")
	}
	z := make([]uint32, n/_W+1)
	z[n/_W] = 1 << (uint(n) % _W)
	return Int{limbs: z}
}

// Limbs returns a copy of the little-endian limbs of x.
func (x Int) Limbs() []uint32 {
	d := x.digits()
	out := make([]uint32, len(d))
	copy(out, d)
	return out
}

// IsZero reports whether x = 0.
func (x Int) IsZero() bool {
	d := x.digits()
	return len(d) == 1 && d[0] == 0
}

// IsOdd reports whether x is odd.
func (x Int) IsOdd() bool {
	return x.digits()[0]&1 == 1
}

// IsOne reports whether x = 1.
func (x Int) IsOne() bool {
	d := x.digits()
	return len(d) == 1 && d[0] == 1
}

// BitLen returns the number of significant bits of x. BitLen of 0 is 0.
func (x Int) BitLen() int {
	d := x.digits()
	top := d[len(d)-1]
	return (len(d)-1)*_W + bits.Len32(top)
}

// Bit returns the i-th bit of x, counting from the least significant.
// It returns 0 for any i ≥ x.BitLen() and panics for i < 0.
func (x Int) Bit(i int) uint {
	if i < 0 {
		panic("bigint.Bit: negative bit index")
	}
	d := x.digits()
	j := i / _W
	if j >= len(d) {
		return 0
	}
	return uint(d[j]>>(uint(i)%_W)) & 1
}

// Uint64 returns the value of x and true if x fits in a uint64.
func (x Int) Uint64() (uint64, bool) {
	d := x.digits()
	switch len(d) {
	case 1:
		return uint64(d[0]), true
	case 2:
		return uint64(d[0]) | uint64(d[1])<<_W, true
	default:
		return 0, false
	}
}

func cmpLimbs(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Cmp returns -1, 0 or +1 depending on whether x < y, x = y or x > y.
func (x Int) Cmp(y Int) int {
	return cmpLimbs(x.digits(), y.digits())
}

// Eq reports whether x = y.
func (x Int) Eq(y Int) bool { return x.Cmp(y) == 0 }

// Lt reports whether x < y.
func (x Int) Lt(y Int) bool { return x.Cmp(y) < 0 }

// Le reports whether x ≤ y.
func (x Int) Le(y Int) bool { return x.Cmp(y) <= 0 }
