package bigint

import (
	"fmt"
	"strings"
)

// FromBytes interprets b as a big-endian unsigned integer.
func FromBytes(b []byte) Int {
	z := make([]uint32, (len(b)+3)/4)
	for i := 0; i < len(b); i++ {
		// byte i counted from the least significant end
		z[i/4] |= uint32(b[len(b)-1-i]) << (8 * (i % 4))
	}
	return fromLimbs(z)
}

// Bytes returns the minimal big-endian encoding of x. Bytes of 0 is empty.
func (x Int) Bytes() []byte {
	return x.FillBytes(make([]byte, (x.BitLen()+7)/8))
}

// FillBytes writes x to buf as a zero-extended big-endian integer, and returns buf.
// It panics if x does not fit in buf.
func (x Int) FillBytes(buf []byte) []byte {
	if (x.BitLen()+7)/8 > len(buf) {
		panic("bigint.FillBytes: buffer too small")
	}
	for i := range buf {
		buf[i] = 0
	}
	d := x.digits()
	for i := 0; i < len(buf) && i/4 < len(d); i++ {
		buf[len(buf)-1-i] = byte(d[i/4] >> (8 * (i % 4)))
	}
	return buf
}

const (
	// decimalChunk is the largest power of ten fitting in a limb.
	decimalChunk       = 1_000_000_000
	decimalChunkDigits = 9
)

// FromString parses s in the given base, which must be 10 or 16.
// A "0x" prefix is accepted in base 16. Underscores and signs are not.
func FromString(s string, base int) (Int, error) {
	switch base {
	case 10:
	case 16:
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	default:
		return Int{}, fmt.Errorf("bigint.FromString: unsupported base %d: %w", base, ErrInvalidArgument)
	}
	if s == "" {
		return Int{}, fmt.Errorf("bigint.FromString: empty string: %w", ErrInvalidArgument)
	}
	if base == 16 {
		return parseHex(s)
	}
	return parseDecimal(s)
}

// MustFromString is like FromString but panics on malformed input.
// It is meant for constants.
func MustFromString(s string, base int) Int {
	x, err := FromString(s, base)
	if err != nil {
		panic(err)
	}
	return x
}

func parseHex(s string) (Int, error) {
	z := make([]uint32, (len(s)+7)/8)
	for i := 0; i < len(s); i++ {
		c := s[len(s)-1-i]
		var v byte
		switch {
		case '0' <= c && c <= '9':
			v = c - '0'
		case 'a' <= c && c <= 'f':
			v = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v = c - 'A' + 10
		default:
			return Int{}, fmt.Errorf("bigint.FromString: invalid hex digit %q: %w", c, ErrInvalidArgument)
		}
		z[i/8] |= uint32(v) << (4 * (i % 8))
	}
	return fromLimbs(z), nil
}

func parseDecimal(s string) (Int, error) {
	z := make([]uint32, 1, len(s)/decimalChunkDigits+2)
	// The leading chunk takes the excess digits, every following one is full.
	n := len(s) % decimalChunkDigits
	if n == 0 {
		n = decimalChunkDigits
	}
	for len(s) > 0 {
		var chunk, scale uint32 = 0, 1
		for _, c := range []byte(s[:n]) {
			if c < '0' || c > '9' {
				return Int{}, fmt.Errorf("bigint.FromString: invalid decimal digit %q: %w", c, ErrInvalidArgument)
			}
			chunk = chunk*10 + uint32(c-'0')
			scale *= 10
		}
		z = mulAddWord(z, scale, chunk)
		s = s[n:]
		n = decimalChunkDigits
	}
	return fromLimbs(z), nil
}

// mulAddWord returns z⋅m + a, reusing z's storage when possible.
func mulAddWord(z []uint32, m, a uint32) []uint32 {
	carry := uint64(a)
	for i := range z {
		t := uint64(z[i])*uint64(m) + carry
		z[i] = uint32(t)
		carry = t >> _W
	}
	if carry != 0 {
		z = append(z, uint32(carry))
	}
	return z
}

// Text returns the representation of x in base 10 or 16 (lowercase, no prefix).
// It panics for any other base.
func (x Int) Text(base int) string {
	switch base {
	case 16:
		return x.hex()
	case 10:
		return x.decimal()
	default:
		panic(fmt.Sprintf("bigint.Text: unsupported base %d", base))
	}
}

// String returns the decimal representation of x.
func (x Int) String() string {
	return x.decimal()
}

func (x Int) hex() string {
	const digits = "0123456789abcdef"
	d := x.digits()
	buf := make([]byte, 0, 8*len(d))
	for i := len(d) - 1; i >= 0; i-- {
		for shift := _W - 4; shift >= 0; shift -= 4 {
			buf = append(buf, digits[(d[i]>>uint(shift))&0xf])
		}
	}
	s := strings.TrimLeft(string(buf), "0")
	if s == "" {
		return "0"
	}
	return s
}

func (x Int) decimal() string {
	if x.IsZero() {
		return "0"
	}
	// Peel off base 10⁹ chunks, least significant first.
	var chunks []uint32
	rest := x.digits()
	for !(len(rest) == 1 && rest[0] == 0) {
		q, r := divWord(rest, decimalChunk)
		chunks = append(chunks, r)
		rest = norm(q)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprint(chunks[len(chunks)-1]))
	for i := len(chunks) - 2; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%09d", chunks[i]))
	}
	return sb.String()
}
