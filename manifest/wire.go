package manifest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/rawbytedev/vsl/internal/common"
)

// Binary frame layout:
//
//	magic[2] version[1] length[4] body... crc[4]
//
// length counts the whole frame including the CRC. The CRC32 (IEEE) covers
// everything after the magic up to the CRC itself. The body is a sequence
// of varint-prefixed strings and string lists.
var wireMagic = [2]byte{'V', 'D'}

const (
	wireVersion = 1
	headerSize  = 2 + 1 + 4
	trailerSize = 4
)

// IsBinary reports whether data starts like a binary descriptor.
func IsBinary(data []byte) bool {
	return len(data) >= 2 && data[0] == wireMagic[0] && data[1] == wireMagic[1]
}

// MarshalBinary encodes p in the compact binary form.
func (p *Package) MarshalBinary() ([]byte, error) {
	out := make([]byte, headerSize, 128)
	copy(out, wireMagic[:])
	out[2] = wireVersion

	out = common.AppendString(out, p.Name)
	out = common.AppendString(out, string(p.CXXLanguageStandard))
	out = common.WriteVarUintTo(out, uint64(len(p.Products)))
	for _, pr := range p.Products {
		out = common.AppendString(out, pr.Name)
		out = common.AppendString(out, string(pr.Kind))
		out = common.AppendStrings(out, pr.Targets)
	}
	out = common.WriteVarUintTo(out, uint64(len(p.Targets)))
	for _, t := range p.Targets {
		out = common.AppendString(out, t.Name)
		out = common.AppendStrings(out, t.Dependencies)
		out = common.AppendString(out, t.Path)
		out = common.AppendStrings(out, t.Exclude)
		out = common.AppendStrings(out, t.Files)
	}

	total := uint32(len(out) + trailerSize)
	binary.LittleEndian.PutUint32(out[3:], total)
	crc := crc32.ChecksumIEEE(out[2:])
	return binary.LittleEndian.AppendUint32(out, crc), nil
}

// UnmarshalBinary decodes the form written by MarshalBinary. Any damage to
// the frame is reported as ErrCorrupt.
func (p *Package) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize+trailerSize || !IsBinary(data) {
		return fmt.Errorf("%w: not a binary descriptor", ErrCorrupt)
	}
	if data[2] != wireVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorrupt, data[2])
	}
	if length := binary.LittleEndian.Uint32(data[3:]); int(length) != len(data) {
		return fmt.Errorf("%w: length mismatch", ErrCorrupt)
	}
	end := len(data) - trailerSize
	want := binary.LittleEndian.Uint32(data[end:])
	if crc32.ChecksumIEEE(data[2:end]) != want {
		return fmt.Errorf("%w: crc mismatch", ErrCorrupt)
	}

	r := wireReader{b: data[headerSize:end]}
	var out Package
	out.Name = r.str()
	out.CXXLanguageStandard = Standard(r.str())
	if n := r.count(); n > 0 {
		out.Products = make([]Product, n)
		for i := range out.Products {
			pr := &out.Products[i]
			pr.Name = r.str()
			pr.Kind = Kind(r.str())
			pr.Targets = r.strs()
		}
	}
	if n := r.count(); n > 0 {
		out.Targets = make([]Target, n)
		for i := range out.Targets {
			t := &out.Targets[i]
			t.Name = r.str()
			t.Dependencies = r.strs()
			t.Path = r.str()
			t.Exclude = r.strs()
			t.Files = r.strs()
		}
	}
	if r.err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, r.err)
	}
	if len(r.b) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(r.b))
	}
	out.normalize()
	*p = out
	return nil
}

// wireReader consumes a body, latching the first error.
type wireReader struct {
	b   []byte
	err error
}

func (r *wireReader) str() string {
	if r.err != nil {
		return ""
	}
	s, n, err := common.ReadString(r.b)
	if err != nil {
		r.err = err
		return ""
	}
	r.b = r.b[n:]
	return s
}

func (r *wireReader) strs() []string {
	if r.err != nil {
		return nil
	}
	ss, n, err := common.ReadStrings(r.b)
	if err != nil {
		r.err = err
		return nil
	}
	r.b = r.b[n:]
	return ss
}

// count reads a list length, bounded by the bytes left so a corrupt count
// cannot force a huge allocation.
func (r *wireReader) count() int {
	if r.err != nil {
		return 0
	}
	v, n := common.ReadVarUint(r.b)
	if n == 0 || v > uint64(len(r.b)) {
		r.err = common.ErrShortBuffer
		return 0
	}
	r.b = r.b[n:]
	return int(v)
}

// Equal reports whether two descriptors encode identically.
func Equal(a, b *Package) bool {
	x, _ := a.MarshalBinary()
	y, _ := b.MarshalBinary()
	return bytes.Equal(x, y)
}
