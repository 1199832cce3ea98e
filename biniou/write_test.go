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
	"bytes"
	"testing"
)

// TestLiteralScenarios pins down concrete encoded byte sequences for
// representative trees. The Variant case uses HashName("abc")
// (4845666, 0x49f062) rather than the 0x4a2343 some worked examples
// quote: see the comment on TestHashNameABC in hash_test.go for why
// that figure does not satisfy the hashing formula.
func TestLiteralScenarios(t *testing.T) {
	cases := []struct {
		name string
		tree Tree
		want []byte
	}{
		{"uvint zero", Uvint(0), []byte{0x10, 0x00}},
		{"int16", Int16(0x0102), []byte{0x02, 0x01, 0x02}},
		{"string ab", String("ab"), []byte{0x12, 0x02, 0x61, 0x62}},
		{
			"variant no arg",
			Variant{Name: "abc", Hash: HashName("abc")},
			[]byte{0x17, 0x00, 0x49, 0xf0, 0x62},
		},
		{
			"variant with arg",
			Variant{Name: "abc", Hash: HashName("abc"), Value: Int8(5)},
			[]byte{0x17, 0x80, 0x49, 0xf0, 0x62, 0x01, 0x05},
		},
		{
			"array of int8",
			Array{ElemTag: TagInt8, Elems: []Tree{Int8(1), Int8(2), Int8(3)}},
			[]byte{0x13, 0x03, 0x01, 0x01, 0x02, 0x03},
		},
		{"num_variant no arg", NumVariant{Index: 3}, []byte{0x16, 0x03}},
		{
			"num_variant with arg",
			NumVariant{Index: 3, Value: Int8(0)},
			[]byte{0x16, 0x83, 0x01, 0x00},
		},
	}
	for _, c := range cases {
		got, err := StringOfTree(c.tree)
		if err != nil {
			t.Fatalf("%s: StringOfTree: %v", c.name, err)
		}
		if !bytes.Equal(got, c.want) {
			t.Errorf("%s: got % x want % x", c.name, got, c.want)
		}
	}
}

func TestTagAgreement(t *testing.T) {
	trees := []Tree{
		Int8(1), Int16(2), Int32(3), Int64(4), Int128{},
		Float64(1.5), Uvint(7), Svint(-7), String("x"),
		Array{ElemTag: TagInt8, Elems: []Tree{Int8(1)}},
		Tuple{Elems: []Tree{Int8(1), String("y")}},
		Record{Fields: []Field{{Name: "a", Hash: HashName("a"), Value: Int8(1)}}},
		NumVariant{Index: 1},
		Variant{Name: "a", Hash: HashName("a")},
		TupleTable{ColTags: []Tag{TagInt8}, Rows: [][]Tree{{Int8(1)}}},
		RecordTable{Header: []Column{{Name: "a", Hash: HashName("a"), ColTag: TagInt8}}, Rows: [][]Tree{{Int8(1)}}},
		Matrix{ElemTag: TagInt8, Cols: 1, Rows: [][]Tree{{Int8(1)}}},
	}
	for _, tr := range trees {
		encoded, err := StringOfTree(tr)
		if err != nil {
			t.Fatalf("%T: %v", tr, err)
		}
		if len(encoded) == 0 {
			t.Fatalf("%T: empty encoding", tr)
		}
		if Tag(encoded[0]) != tr.Tag() {
			t.Errorf("%T: first byte 0x%02x does not match Tag() %v", tr, encoded[0], tr.Tag())
		}
	}
}

func TestWriteNonRectangularTupleTableFails(t *testing.T) {
	tt := TupleTable{
		ColTags: []Tag{TagInt8, TagInt8},
		Rows:    [][]Tree{{Int8(1), Int8(2)}, {Int8(3)}},
	}
	_, err := StringOfTree(tt)
	if err == nil {
		t.Fatal("expected malformed input error for ragged tuple_table")
	}
	berr, ok := err.(*Error)
	if !ok || berr.Kind != MalformedInput {
		t.Fatalf("expected MalformedInput, got %v", err)
	}
}

func TestWriteNonRectangularMatrixFails(t *testing.T) {
	m := Matrix{
		ElemTag: TagInt8,
		Cols:    3,
		Rows:    [][]Tree{{Int8(1), Int8(2), Int8(3)}, {Int8(4), Int8(5)}},
	}
	_, err := StringOfTree(m)
	if err == nil {
		t.Fatal("expected malformed input error for ragged matrix")
	}
}

func TestWriteNonRectangularRecordTableFails(t *testing.T) {
	rt := RecordTable{
		Header: []Column{{Name: "a", Hash: HashName("a"), ColTag: TagInt8}, {Name: "b", Hash: HashName("b"), ColTag: TagInt8}},
		Rows:   [][]Tree{{Int8(1), Int8(2)}, {Int8(3)}},
	}
	_, err := StringOfTree(rt)
	if err == nil {
		t.Fatal("expected malformed input error for ragged record_table")
	}
}

func TestZeroRowTablesStillEmitHeader(t *testing.T) {
	tt := TupleTable{ColTags: []Tag{TagInt8, TagString}, Rows: nil}
	encoded, err := StringOfTree(tt)
	if err != nil {
		t.Fatal(err)
	}
	// tag, row count (0), col count (2), 2 column tag bytes.
	want := []byte{byte(TagTupleTable), 0x00, 0x02, byte(TagInt8), byte(TagString)}
	if !bytes.Equal(encoded, want) {
		t.Fatalf("got % x want % x", encoded, want)
	}
}
