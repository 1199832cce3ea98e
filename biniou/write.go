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
	"github.com/hhugo/biniou/buf"
	"github.com/hhugo/biniou/vint"
)

// StringOfTree encodes t into its top-level tagged form and returns
// the resulting bytes. It is the encoder half of the public surface.
func StringOfTree(t Tree) ([]byte, error) {
	b := buf.New(64)
	if err := WriteTree(b, true, t); err != nil {
		return nil, err
	}
	return b.Contents(), nil
}

// WriteTree emits the encoded body of node into b. If tagged is
// true, node's 1-byte tag precedes the body; pass tagged=false only
// inside a shared-tag context (Array elements, or table/matrix
// cells) where the tag is already implied by the surrounding header.
func WriteTree(b *buf.Buffer, tagged bool, node Tree) error {
	if node == nil {
		return malformed("nil tree node")
	}
	if tagged {
		b.AddByte(byte(node.Tag()))
	}
	switch n := node.(type) {
	case Int8:
		WriteUntaggedInt8(b, uint8(n))
	case Int16:
		WriteUntaggedInt16(b, uint16(n))
	case Int32:
		WriteUntaggedInt32(b, int32(n))
	case Int64:
		WriteUntaggedInt64(b, int64(n))
	case Int128:
		WriteUntaggedInt128(b, [16]byte(n))
	case Float64:
		WriteUntaggedFloat64(b, float64(n))
	case Uvint:
		vint.WriteUvint(b, uint64(n))
	case Svint:
		vint.WriteSvint(b, int64(n))
	case String:
		WriteUntaggedString(b, []byte(n))
	case Array:
		return writeArray(b, n)
	case Tuple:
		return writeTuple(b, n)
	case Record:
		return writeRecord(b, n)
	case NumVariant:
		return writeNumVariant(b, n)
	case Variant:
		return writeVariant(b, n)
	case TupleTable:
		return writeTupleTable(b, n)
	case RecordTable:
		return writeRecordTable(b, n)
	case Matrix:
		return writeMatrix(b, n)
	default:
		return malformed("unrecognized tree node type %T", node)
	}
	return nil
}

func writeArray(b *buf.Buffer, a Array) error {
	vint.WriteUvint(b, uint64(len(a.Elems)))
	b.AddByte(byte(a.ElemTag))
	for _, e := range a.Elems {
		if err := WriteTree(b, false, e); err != nil {
			return err
		}
	}
	return nil
}

func writeTuple(b *buf.Buffer, t Tuple) error {
	vint.WriteUvint(b, uint64(len(t.Elems)))
	for _, e := range t.Elems {
		if err := WriteTree(b, true, e); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(b *buf.Buffer, r Record) error {
	vint.WriteUvint(b, uint64(len(r.Fields)))
	for _, f := range r.Fields {
		WriteHashtag(b, f.Hash, true)
		if err := WriteTree(b, true, f.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeNumVariant(b *buf.Buffer, v NumVariant) error {
	if err := WriteNumtag(b, v.Index, v.Value != nil); err != nil {
		return err
	}
	if v.Value != nil {
		return WriteTree(b, true, v.Value)
	}
	return nil
}

func writeVariant(b *buf.Buffer, v Variant) error {
	WriteHashtag(b, v.Hash, v.Value != nil)
	if v.Value != nil {
		return WriteTree(b, true, v.Value)
	}
	return nil
}

func writeTupleTable(b *buf.Buffer, t TupleTable) error {
	vint.WriteUvint(b, uint64(len(t.Rows)))
	vint.WriteUvint(b, uint64(len(t.ColTags)))
	for _, tag := range t.ColTags {
		b.AddByte(byte(tag))
	}
	for _, row := range t.Rows {
		if len(row) != len(t.ColTags) {
			return malformed("tuple_table row has %d cells, want %d", len(row), len(t.ColTags))
		}
		for _, cell := range row {
			if err := WriteTree(b, false, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRecordTable(b *buf.Buffer, t RecordTable) error {
	vint.WriteUvint(b, uint64(len(t.Rows)))
	vint.WriteUvint(b, uint64(len(t.Header)))
	for _, col := range t.Header {
		WriteHashtag(b, col.Hash, true)
		b.AddByte(byte(col.ColTag))
	}
	for _, row := range t.Rows {
		if len(row) != len(t.Header) {
			return malformed("record_table row has %d cells, want %d", len(row), len(t.Header))
		}
		for _, cell := range row {
			if err := WriteTree(b, false, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMatrix(b *buf.Buffer, m Matrix) error {
	vint.WriteUvint(b, uint64(len(m.Rows)))
	vint.WriteUvint(b, uint64(m.Cols))
	b.AddByte(byte(m.ElemTag))
	for _, row := range m.Rows {
		if len(row) != m.Cols {
			return malformed("matrix row has %d cells, want %d", len(row), m.Cols)
		}
		for _, cell := range row {
			if err := WriteTree(b, false, cell); err != nil {
				return err
			}
		}
	}
	return nil
}
