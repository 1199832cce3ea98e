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

	"github.com/hhugo/biniou/buf"
)

// NumTag is the 1-byte small-integer constructor: a 7-bit index in
// [0,127] plus a has-argument flag packed into the high bit.

// WriteHashtag writes the 4-byte big-endian framing of h, OR-ing the
// has-argument flag into the top bit of the first byte.
func WriteHashtag(b *buf.Buffer, h Hash, hasArg bool) {
	start := b.Alloc(4)
	binary.BigEndian.PutUint32(b.Bytes()[start:], h.wire())
	if hasArg {
		b.Bytes()[start] |= 0x80
	}
}

// ReadHashtag reads a 4-byte hashtag from src at *pos, returning the
// sign-extended hash and the has-argument flag.
func ReadHashtag(src []byte, pos *int) (Hash, bool, error) {
	if len(src)-*pos < 4 {
		return 0, false, corrupted("hashtag")
	}
	b0, b1, b2, b3 := src[*pos], src[*pos+1], src[*pos+2], src[*pos+3]
	hasArg := b0&0x80 != 0
	w := uint32(b0&0x7f)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
	*pos += 4
	return wireToHash(w), hasArg, nil
}

// ReadFieldHashtag is ReadHashtag with the additional requirement
// that the has-argument (high) bit be set, as it always is for
// record and record-table field names. It does not return the flag:
// for a field it is an invariant, not data.
func ReadFieldHashtag(src []byte, pos *int) (Hash, error) {
	if len(src)-*pos < 4 {
		return 0, corrupted("invalid field hashtag")
	}
	if src[*pos]&0x80 == 0 {
		return 0, corrupted("invalid field hashtag")
	}
	h, _, err := ReadHashtag(src, pos)
	return h, err
}

// wireToHash recovers the sign-extended in-memory Hash from the
// unsigned 31-bit wire value w (bits 31..0, top bit always clear).
func wireToHash(w uint32) Hash {
	if w&0x40000000 != 0 {
		w |= 0x80000000
	}
	return Hash(int32(w))
}

// WriteNumtag writes a single byte holding i in its low 7 bits and
// hasArg in the high bit. i must be in [0,127]; that range is also
// the range NumVariant indices are required to stay within, so a
// violation here is reported the same way the encoder reports any
// other out-of-range numeric primitive.
func WriteNumtag(b *buf.Buffer, i int, hasArg bool) error {
	if i < 0 || i > 127 {
		return malformed("numtag %d out of range [0,127]", i)
	}
	v := byte(i)
	if hasArg {
		v |= 0x80
	}
	b.AddByte(v)
	return nil
}

// ReadNumtag reads a single numtag byte from src at *pos.
func ReadNumtag(src []byte, pos *int) (i int, hasArg bool, err error) {
	if *pos >= len(src) {
		return 0, false, corrupted("numtag")
	}
	v := src[*pos]
	*pos++
	return int(v & 0x7f), v&0x80 != 0, nil
}
