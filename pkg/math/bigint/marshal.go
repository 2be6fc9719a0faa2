package bigint

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// MarshalBinary implements encoding.BinaryMarshaler, using the minimal big-endian encoding.
func (x Int) MarshalBinary() ([]byte, error) {
	return x.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) error {
	*x = FromBytes(data)
	return nil
}

// MarshalCBOR implements cbor.Marshaler, encoding x as a byte string.
func (x Int) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(x.Bytes())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (x *Int) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("bigint.Int: failed to unmarshal cbor: %w", err)
	}
	*x = FromBytes(b)
	return nil
}

// MarshalJSON implements json.Marshaler, encoding x as a decimal string.
func (x Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Int) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("bigint.Int: failed to unmarshal json: %w", err)
	}
	y, err := FromString(s, 10)
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// WriteTo implements io.WriterTo, writing the minimal big-endian encoding
// prefixed by its length in bytes.
func (x Int) WriteTo(w io.Writer) (int64, error) {
	b := x.Bytes()
	size := []byte{byte(len(b) >> 24), byte(len(b) >> 16), byte(len(b) >> 8), byte(len(b))}
	n, err := w.Write(size)
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(b)
	return int64(n + m), err
}

// Domain implements hash.WriterToWithDomain.
func (Int) Domain() string {
	return "bigint.Int"
}
