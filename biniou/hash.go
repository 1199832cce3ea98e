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
	"fmt"

	"github.com/dchest/siphash"
)

// Hash is the 31-bit field/variant name hash. On the wire it is
// always 4 bytes with the top bit reserved for the has-argument
// flag; in memory we sign-extend bit 30 into bit 31 so Hash behaves
// like the 31-bit signed integer the reference implementation
// carries it as.
type Hash int32

// HashName computes the deterministic 31-bit hash of s. The formula
// and the sign-extension rule are part of the wire format contract
// and must never change: acc = 223*acc + byte(s[i]), masked to 31
// bits, with bit 30 sign-extended into bit 31.
func HashName(s string) Hash {
	var acc uint32
	for i := 0; i < len(s); i++ {
		acc = 223*acc + uint32(s[i])
	}
	acc &= 0x7fffffff
	if acc&0x40000000 != 0 {
		acc |= 0x80000000
	}
	return Hash(int32(acc))
}

// wire returns the unsigned 31-bit on-wire representation of h.
func (h Hash) wire() uint32 {
	return uint32(h) & 0x7fffffff
}

// Unhash resolves a Hash back to the name it was registered under,
// falling back to a "#hhhhhhhh" placeholder for unknown hashes. The
// resolved name is informational only: decoded data never depends
// on it, but MakeUnhash guarantees round-tripping the hash is exact.
type Unhash func(h Hash) string

// unhashPlaceholder formats an unresolved hash the way the
// reference implementation does: "#" followed by 8 lowercase hex
// digits of the hash interpreted as a 32-bit quantity.
func unhashPlaceholder(h Hash) string {
	return fmt.Sprintf("#%08x", uint32(h))
}

// MakeUnhash builds an Unhash function from a list of candidate
// names, registering each one's HashName. Two distinct names that
// hash to the same value is a registration-time failure; the same
// name registered twice (directly or via a duplicate in names) is
// not.
func MakeUnhash(names []string) (Unhash, error) {
	m := make(map[Hash]string, len(names))
	for _, name := range names {
		h := HashName(name)
		if existing, ok := m[h]; ok {
			if existing != name {
				return nil, registrationFailure(existing, name, h)
			}
			continue
		}
		m[h] = name
	}
	return func(h Hash) string {
		if name, ok := m[h]; ok {
			return name
		}
		return unhashPlaceholder(h)
	}, nil
}

// defaultUnhash is used whenever a decode call does not supply its
// own Unhash; it is equivalent to MakeUnhash(nil) and always
// produces the hex placeholder form.
var defaultUnhash Unhash = unhashPlaceholder

// NameBucket partitions a hash into one of n shards using a seeded
// SipHash over the wire (unsigned, 4-byte big-endian) form of h.
// It exists for callers that manage name registries too large to
// keep in a single MakeUnhash table and want to split registration
// and lookup across shards without disturbing the 31-bit wire hash
// itself; config.Schema.Shard uses it to fan a name list out across
// several Unhash tables.
func NameBucket(seed uint64, h Hash, n int) int {
	if n <= 0 {
		return 0
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], h.wire())
	return int(siphash.Hash(0, seed, buf[:]) % uint64(n))
}
