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

package vint

import (
	"bytes"
	"testing"

	"github.com/hhugo/biniou/buf"
)

func TestWriteUvintLiterals(t *testing.T) {
	cases := []struct {
		u    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
	}
	for _, c := range cases {
		b := buf.New(0)
		WriteUvint(b, c.u)
		if !bytes.Equal(b.Contents(), c.want) {
			t.Errorf("WriteUvint(%d): got % x want % x", c.u, b.Contents(), c.want)
		}
	}
}

func TestUvintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 32, ^uint64(0)}
	for _, v := range values {
		b := buf.New(0)
		WriteUvint(b, v)
		pos := 0
		got, err := ReadUvint(b.Contents(), &pos)
		if err != nil {
			t.Fatalf("ReadUvint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
		if pos != len(b.Contents()) {
			t.Errorf("round trip %d: pos %d, want %d", v, pos, len(b.Contents()))
		}
	}
}

func TestSvintRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, -64, 1000000, -1000000, 1<<62 - 1, -(1 << 62)}
	for _, v := range values {
		b := buf.New(0)
		WriteSvint(b, v)
		pos := 0
		got, err := ReadSvint(b.Contents(), &pos)
		if err != nil {
			t.Fatalf("ReadSvint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}

func TestReadUvintTruncated(t *testing.T) {
	pos := 0
	_, err := ReadUvint([]byte{0x80, 0x80}, &pos)
	if err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestSizeMatchesWriteLength(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 1 << 20, ^uint64(0)} {
		b := buf.New(0)
		WriteUvint(b, v)
		if got := Size(v); got != len(b.Contents()) {
			t.Errorf("Size(%d) = %d, want %d", v, got, len(b.Contents()))
		}
	}
}
