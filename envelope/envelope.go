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

// Package envelope wraps an encoded tree in an optional zstd-
// compressed container for callers that want to spill large trees
// to disk or across a network. It sits entirely outside the core
// wire format: a tree's own encoding never changes, and a decoder
// that does not know about envelopes can still be handed the raw
// bytes that Open returns.
package envelope

import (
	"fmt"
	"runtime"

	"github.com/klauspost/compress/zstd"
)

// magic begins every compressed envelope. It intentionally does not
// collide with any valid top-level tag byte from the core registry
// (tags top out at 26), so a reader that tries to treat an envelope
// as a bare tree will fail fast on an unrecognized tag rather than
// silently misparsing compressed bytes.
var magic = [4]byte{0xb1, 'n', 'o', 'u'}

var (
	enc *zstd.Encoder
	dec *zstd.Decoder
)

func init() {
	enc, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	dec, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
}

// IsEnvelope reports whether b begins with the envelope magic.
func IsEnvelope(b []byte) bool {
	return len(b) >= len(magic) &&
		b[0] == magic[0] && b[1] == magic[1] && b[2] == magic[2] && b[3] == magic[3]
}

// Seal compresses the encoded tree bytes produced by
// biniou.StringOfTree and prefixes them with the envelope magic.
func Seal(encodedTree []byte) []byte {
	dst := append([]byte{}, magic[:]...)
	return enc.EncodeAll(encodedTree, dst)
}

// Open reverses Seal. If b is not an envelope, it is returned
// unchanged so callers can transparently accept either plain or
// sealed input.
func Open(b []byte) ([]byte, error) {
	if !IsEnvelope(b) {
		return b, nil
	}
	out, err := dec.DecodeAll(b[len(magic):], nil)
	if err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}
	return out, nil
}
