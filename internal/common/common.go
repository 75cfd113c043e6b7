package common

import (
	"encoding/binary"
	"errors"
)

var ErrShortBuffer = errors.New("buffer too short")

// WriteVarUintTo appends varint-encoded x to dst using a small stack scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// A truncated or overlong varint reports zero bytes consumed.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == binary.MaxVarintLen64 {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}

// AppendString writes a varint length followed by the bytes of s.
func AppendString(dst []byte, s string) []byte {
	dst = WriteVarUintTo(dst, uint64(len(s)))
	return append(dst, s...)
}

// ReadString is the inverse of AppendString.
func ReadString(b []byte) (string, int, error) {
	l, n := ReadVarUint(b)
	if n == 0 || uint64(len(b)-n) < l {
		return "", 0, ErrShortBuffer
	}
	end := n + int(l)
	return string(b[n:end]), end, nil
}

// AppendStrings writes a varint count followed by each string.
func AppendStrings(dst []byte, ss []string) []byte {
	dst = WriteVarUintTo(dst, uint64(len(ss)))
	for _, s := range ss {
		dst = AppendString(dst, s)
	}
	return dst
}

// ReadStrings is the inverse of AppendStrings. An empty list decodes as nil.
func ReadStrings(b []byte) ([]string, int, error) {
	cnt, pos := ReadVarUint(b)
	if pos == 0 || cnt > uint64(len(b)) {
		return nil, 0, ErrShortBuffer
	}
	if cnt == 0 {
		return nil, pos, nil
	}
	out := make([]string, 0, cnt)
	for i := uint64(0); i < cnt; i++ {
		s, n, err := ReadString(b[pos:])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
		pos += n
	}
	return out, pos, nil
}

// AppendUint32s appends each value little-endian.
func AppendUint32s(dst []byte, vs ...uint32) []byte {
	for _, v := range vs {
		dst = binary.LittleEndian.AppendUint32(dst, v)
	}
	return dst
}

// AppendUint64s appends each value little-endian.
func AppendUint64s(dst []byte, vs ...uint64) []byte {
	for _, v := range vs {
		dst = binary.LittleEndian.AppendUint64(dst, v)
	}
	return dst
}

// ReadUint32s fills dst from little-endian b.
func ReadUint32s(dst []uint32, b []byte) error {
	if len(b) < 4*len(dst) {
		return ErrShortBuffer
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return nil
}

// ReadUint64s fills dst from little-endian b.
func ReadUint64s(dst []uint64, b []byte) error {
	if len(b) < 8*len(dst) {
		return ErrShortBuffer
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return nil
}
