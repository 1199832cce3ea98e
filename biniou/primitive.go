// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package biniou

import (
	"encoding/binary"
	"math"

	"github.com/hhugo/biniou/buf"
	"github.com/hhugo/biniou/vint"
)

// Primitive readers and writers. Every reader checks bounds before
// consuming and advances *pos by exactly the bytes it read. Every
// writer here emits only a node's body, with no tag byte: a caller
// that wants a self-describing encoding prepends the tag itself (as
// WriteTree does) or calls WriteTree directly. These are exported so
// consumers that want to build custom encodings on top of the wire
// format (without materialising a Tree) can reuse them directly.

// WriteUntaggedInt8 writes the 1-byte body of an Int8 node. v is a
// uint8, so its type already bounds it to a single byte.
func WriteUntaggedInt8(b *buf.Buffer, v uint8) {
	b.AddByte(v)
}

func ReadUntaggedInt8(src []byte, pos *int) (uint8, error) {
	if *pos >= len(src) {
		return 0, corrupted("int8")
	}
	v := src[*pos]
	*pos++
	return v, nil
}

func WriteUntaggedInt16(b *buf.Buffer, v uint16) {
	start := b.Alloc(2)
	binary.BigEndian.PutUint16(b.Bytes()[start:], v)
}

func ReadUntaggedInt16(src []byte, pos *int) (uint16, error) {
	if len(src)-*pos < 2 {
		return 0, corrupted("int16")
	}
	v := binary.BigEndian.Uint16(src[*pos:])
	*pos += 2
	return v, nil
}

func WriteUntaggedInt32(b *buf.Buffer, v int32) {
	start := b.Alloc(4)
	binary.BigEndian.PutUint32(b.Bytes()[start:], uint32(v))
}

func ReadUntaggedInt32(src []byte, pos *int) (int32, error) {
	if len(src)-*pos < 4 {
		return 0, corrupted("int32")
	}
	v := int32(binary.BigEndian.Uint32(src[*pos:]))
	*pos += 4
	return v, nil
}

func WriteUntaggedInt64(b *buf.Buffer, v int64) {
	start := b.Alloc(8)
	binary.BigEndian.PutUint64(b.Bytes()[start:], uint64(v))
}

func ReadUntaggedInt64(src []byte, pos *int) (int64, error) {
	if len(src)-*pos < 8 {
		return 0, corrupted("int64")
	}
	v := int64(binary.BigEndian.Uint64(src[*pos:]))
	*pos += 8
	return v, nil
}

func WriteUntaggedInt128(b *buf.Buffer, v [16]byte) {
	start := b.Alloc(16)
	copy(b.Bytes()[start:], v[:])
}

func ReadUntaggedInt128(src []byte, pos *int) ([16]byte, error) {
	var out [16]byte
	if len(src)-*pos < 16 {
		return out, corrupted("int128")
	}
	copy(out[:], src[*pos:*pos+16])
	*pos += 16
	return out, nil
}

// WriteUntaggedFloat64 writes the IEEE-754 bit pattern of f, bit-cast
// through an Int64 big-endian write. NaN payloads are preserved
// exactly: no canonicalisation is performed.
func WriteUntaggedFloat64(b *buf.Buffer, f float64) {
	WriteUntaggedInt64(b, int64(math.Float64bits(f)))
}

func ReadUntaggedFloat64(src []byte, pos *int) (float64, error) {
	bits, err := ReadUntaggedInt64(src, pos)
	if err != nil {
		return 0, corrupted("float64")
	}
	return math.Float64frombits(uint64(bits)), nil
}

// WriteUntaggedString writes a uvint length prefix followed by the
// raw bytes of s.
func WriteUntaggedString(b *buf.Buffer, s []byte) {
	vint.WriteUvint(b, uint64(len(s)))
	b.AddBytes(s)
}

// ReadUntaggedString reads a uvint-length-prefixed byte string. The
// declared length is validated against the remaining input before
// the copy is made, so a hostile length cannot force an unbounded
// allocation.
func ReadUntaggedString(src []byte, pos *int) ([]byte, error) {
	n, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("string")
	}
	if n > uint64(len(src)-*pos) {
		return nil, corrupted("string")
	}
	out := make([]byte, n)
	copy(out, src[*pos:*pos+int(n)])
	*pos += int(n)
	return out, nil
}
