package params

const (
	// DigitBits is the width of a single limb of a bigint.Int.
	DigitBits  = 32
	DigitBytes = DigitBits / 8

	// BitsRSA is the largest key size the default bounds are tuned for.
	BitsRSA  = 4096
	BytesRSA = BitsRSA / 8 // = 512

	// MaxShift bounds the shift count accepted by bigint.Int.Lsh.
	// An operand of BitsRSA bits shifted by MaxShift still fits in 2⋅BitsRSA bits,
	// which covers every intermediate product of a 4096-bit exponentiation.
	MaxShift = BitsRSA

	// MinMontgomeryModulus is the smallest odd modulus for which a
	// Montgomery context is enabled.
	MinMontgomeryModulus = 3

	// DigestLengthBytes is the size of the hash used to key cached contexts.
	DigestLengthBytes = 32
)
