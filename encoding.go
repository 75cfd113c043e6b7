package vsl

import (
	"encoding"
	"fmt"

	"github.com/rawbytedev/vsl/internal/common"
)

// Vectors encode as their lanes in order, each little-endian, with no
// header: 16 bytes for every vector type.

// ErrShortBuffer is returned when decoding from fewer bytes than a vector
// occupies.
var ErrShortBuffer = common.ErrShortBuffer

// EncodedSize is the byte length of every encoded vector.
const EncodedSize = 16

var (
	_ encoding.BinaryAppender    = Float4{}
	_ encoding.BinaryMarshaler   = Double2{}
	_ encoding.BinaryUnmarshaler = (*Ulong2)(nil)
)

func checkLen(b []byte) error {
	switch {
	case len(b) < EncodedSize:
		return fmt.Errorf("vsl: decode %d bytes: %w", len(b), ErrShortBuffer)
	case len(b) > EncodedSize:
		return fmt.Errorf("vsl: decode: %d trailing bytes", len(b)-EncodedSize)
	}
	return nil
}

func (v Float4) AppendBinary(b []byte) ([]byte, error) {
	u := v.AsUint4()
	return common.AppendUint32s(b, u[:]...), nil
}

func (v Float4) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, EncodedSize))
}

func (v *Float4) UnmarshalBinary(b []byte) error {
	if err := checkLen(b); err != nil {
		return err
	}
	var u Uint4
	if err := common.ReadUint32s(u[:], b); err != nil {
		return err
	}
	*v = u.AsFloat4()
	return nil
}

func (v Double2) AppendBinary(b []byte) ([]byte, error) {
	u := v.AsUlong2()
	return common.AppendUint64s(b, u[:]...), nil
}

func (v Double2) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, EncodedSize))
}

func (v *Double2) UnmarshalBinary(b []byte) error {
	if err := checkLen(b); err != nil {
		return err
	}
	var u Ulong2
	if err := common.ReadUint64s(u[:], b); err != nil {
		return err
	}
	*v = u.AsDouble2()
	return nil
}

func (v Int4) AppendBinary(b []byte) ([]byte, error) {
	u := v.ToUint4()
	return common.AppendUint32s(b, u[:]...), nil
}

func (v Int4) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, EncodedSize))
}

func (v *Int4) UnmarshalBinary(b []byte) error {
	if err := checkLen(b); err != nil {
		return err
	}
	var u Uint4
	if err := common.ReadUint32s(u[:], b); err != nil {
		return err
	}
	*v = u.ToInt4()
	return nil
}

func (v Long2) AppendBinary(b []byte) ([]byte, error) {
	u := v.ToUlong2()
	return common.AppendUint64s(b, u[:]...), nil
}

func (v Long2) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, EncodedSize))
}

func (v *Long2) UnmarshalBinary(b []byte) error {
	if err := checkLen(b); err != nil {
		return err
	}
	var u Ulong2
	if err := common.ReadUint64s(u[:], b); err != nil {
		return err
	}
	*v = u.ToLong2()
	return nil
}

func (v Uint4) AppendBinary(b []byte) ([]byte, error) {
	return common.AppendUint32s(b, v[:]...), nil
}

func (v Uint4) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, EncodedSize))
}

func (v *Uint4) UnmarshalBinary(b []byte) error {
	if err := checkLen(b); err != nil {
		return err
	}
	return common.ReadUint32s(v[:], b)
}

func (v Ulong2) AppendBinary(b []byte) ([]byte, error) {
	return common.AppendUint64s(b, v[:]...), nil
}

func (v Ulong2) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, EncodedSize))
}

func (v *Ulong2) UnmarshalBinary(b []byte) error {
	if err := checkLen(b); err != nil {
		return err
	}
	return common.ReadUint64s(v[:], b)
}
