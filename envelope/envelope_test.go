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

package envelope

import (
	"bytes"
	"testing"

	"github.com/hhugo/biniou"
)

func TestSealOpenRoundTrip(t *testing.T) {
	tree := biniou.String("hello, envelope")
	encoded, err := biniou.StringOfTree(tree)
	if err != nil {
		t.Fatal(err)
	}
	sealed := Seal(encoded)
	if !IsEnvelope(sealed) {
		t.Fatal("sealed output does not carry the envelope magic")
	}
	if bytes.Equal(sealed, encoded) {
		t.Fatal("sealed output is identical to the raw encoding")
	}
	opened, err := Open(sealed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(opened, encoded) {
		t.Fatalf("got % x want % x", opened, encoded)
	}
}

func TestOpenPassesThroughPlainInput(t *testing.T) {
	encoded, err := biniou.StringOfTree(biniou.Int8(7))
	if err != nil {
		t.Fatal(err)
	}
	opened, err := Open(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(opened, encoded) {
		t.Fatalf("plain input was modified: got % x want % x", opened, encoded)
	}
}

func TestIsEnvelopeRejectsShortInput(t *testing.T) {
	if IsEnvelope([]byte{0xb1, 'n'}) {
		t.Fatal("short input should never be recognized as an envelope")
	}
	if IsEnvelope(nil) {
		t.Fatal("nil input should never be recognized as an envelope")
	}
}

func TestMagicDoesNotCollideWithATopLevelTag(t *testing.T) {
	if magic[0] <= 26 {
		t.Fatalf("envelope magic's first byte 0x%02x collides with the tag byte range", magic[0])
	}
}
