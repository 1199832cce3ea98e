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

// Package buf implements the grow-on-demand byte sink that the
// tree codec writes into. It does not know anything about tags,
// hashes, or tree shapes; it only ever appends bytes.
package buf

// Buffer is a grow-on-demand byte sink.
//
// The zero value is an empty Buffer ready to use; New additionally
// pre-sizes its storage. Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte
}

// New returns a Buffer pre-sized to hold at least initialCapacity
// bytes before its first reallocation.
func New(initialCapacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, initialCapacity)}
}

// Reset empties the buffer while keeping its backing storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Alloc grows the buffer by n bytes and returns the start offset of
// the newly-allocated span. The caller may write directly into
// b.Bytes()[start:start+n]; the bytes are zeroed on allocation.
func (b *Buffer) Alloc(n int) (start int) {
	start = len(b.buf)
	if cap(b.buf)-start >= n {
		b.buf = b.buf[:start+n]
		clear(b.buf[start:])
		return start
	}
	nb := make([]byte, start+n, n+2*start+64)
	copy(nb, b.buf)
	b.buf = nb
	return start
}

// AddByte appends a single byte.
func (b *Buffer) AddByte(c byte) {
	b.buf = append(b.buf, c)
}

// AddBytes appends a raw byte slice.
func (b *Buffer) AddBytes(s []byte) {
	b.buf = append(b.buf, s...)
}

// Contents returns the bytes written so far. The returned slice
// aliases the buffer's storage and is only valid until the next
// call to a mutating method.
func (b *Buffer) Contents() []byte { return b.buf }

// Bytes is an alias for Contents, matching the common Go buffer
// idiom of exposing the backing slice via Bytes().
func (b *Buffer) Bytes() []byte { return b.buf }
