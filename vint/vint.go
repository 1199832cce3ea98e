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

// Package vint implements the variable-length integer codec used to
// frame lengths and small integers on the wire: an unsigned LEB128
// encoding (7 payload bits per byte, continuation bit in the high
// bit of every byte but the last) and a zigzag-mapped signed variant
// built on top of it.
package vint

import "github.com/hhugo/biniou/buf"

// ErrTruncated is returned by the Read* functions when the input
// ends before a terminating byte (one with the continuation bit
// clear) is found.
type ErrTruncated struct{}

func (ErrTruncated) Error() string { return "vint: truncated varint" }

// WriteUvint appends u to dst as an unsigned varint.
func WriteUvint(dst *buf.Buffer, u uint64) {
	for u >= 0x80 {
		dst.AddByte(byte(u) | 0x80)
		u >>= 7
	}
	dst.AddByte(byte(u))
}

// ReadUvint decodes an unsigned varint from src starting at *pos,
// advancing *pos past the bytes consumed.
func ReadUvint(src []byte, pos *int) (uint64, error) {
	var out uint64
	shift := uint(0)
	i := *pos
	for {
		if i >= len(src) {
			return 0, ErrTruncated{}
		}
		c := src[i]
		i++
		out |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			*pos = i
			return out, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, ErrTruncated{}
		}
	}
}

// WriteSvint appends i to dst as a zigzag-mapped unsigned varint, so
// that small-magnitude negative numbers encode as compactly as
// small-magnitude positive ones.
func WriteSvint(dst *buf.Buffer, i int64) {
	u := (uint64(i) << 1) ^ uint64(i>>63)
	WriteUvint(dst, u)
}

// ReadSvint decodes a zigzag-mapped signed varint.
func ReadSvint(src []byte, pos *int) (int64, error) {
	u, err := ReadUvint(src, pos)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}

// Size returns the number of bytes WriteUvint would emit for u.
func Size(u uint64) int {
	n := 1
	for u >= 0x80 {
		n++
		u >>= 7
	}
	return n
}
