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

// Package fingerprint computes content digests of encoded trees.
// It has nothing to do with wire correctness (the format carries no
// checksums of its own) but is handy for cmd/biniou-dump and for
// tests that want to assert two encodings are byte-identical without
// printing the whole buffer.
package fingerprint

import (
	"encoding/base32"

	"golang.org/x/crypto/blake2b"
)

// Of returns a "b2sum:"-prefixed, base32-encoded BLAKE2b-256 digest
// of b.
func Of(b []byte) string {
	sum := blake2b.Sum256(b)
	return "b2sum:" + base32.StdEncoding.EncodeToString(sum[:])
}
