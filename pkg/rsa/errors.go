package rsa

import "errors"

var (
	ErrInvalidModulus  = errors.New("rsa: modulus must be at least 2")
	ErrInvalidExponent = errors.New("rsa: exponent must be positive")
	ErrMessageTooLarge = errors.New("rsa: message must be smaller than the modulus")
)
