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

import "github.com/hhugo/biniou/vint"

// TreeOfString decodes one top-level node from position 0 of src.
// Trailing bytes after the node are not consumed; their presence is
// the caller's concern. unhash resolves field/variant name hashes
// back to names for informational purposes; pass nil to always get
// the hex placeholder form.
func TreeOfString(src []byte, unhash Unhash) (Tree, error) {
	if unhash == nil {
		unhash = defaultUnhash
	}
	pos := 0
	t, err := ReadTree(src, &pos, unhash)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ReadTree reads one tag byte from src at *pos and dispatches to
// the matching body reader, advancing *pos past everything it
// consumed.
func ReadTree(src []byte, pos *int, unhash Unhash) (Tree, error) {
	if *pos >= len(src) {
		return nil, corrupted("missing tag byte")
	}
	tag := Tag(src[*pos])
	*pos++
	return readBody(src, pos, tag, unhash)
}

// readBody reads the untagged body of a node whose kind is already
// known to be tag, either because a tag byte was just consumed
// (ReadTree) or because tag came from a shared-tag context (an
// Array element tag, or a table/matrix column tag).
func readBody(src []byte, pos *int, tag Tag, unhash Unhash) (Tree, error) {
	switch tag {
	case TagInt8:
		v, err := ReadUntaggedInt8(src, pos)
		return Int8(v), err
	case TagInt16:
		v, err := ReadUntaggedInt16(src, pos)
		return Int16(v), err
	case TagInt32:
		v, err := ReadUntaggedInt32(src, pos)
		return Int32(v), err
	case TagInt64:
		v, err := ReadUntaggedInt64(src, pos)
		return Int64(v), err
	case TagInt128:
		v, err := ReadUntaggedInt128(src, pos)
		return Int128(v), err
	case TagFloat64:
		v, err := ReadUntaggedFloat64(src, pos)
		return Float64(v), err
	case TagUvint:
		v, err := vint.ReadUvint(src, pos)
		if err != nil {
			return nil, corrupted("uvint")
		}
		return Uvint(v), nil
	case TagSvint:
		v, err := vint.ReadSvint(src, pos)
		if err != nil {
			return nil, corrupted("svint")
		}
		return Svint(v), nil
	case TagString:
		v, err := ReadUntaggedString(src, pos)
		return String(v), err
	case TagArray:
		return readArray(src, pos, unhash)
	case TagTuple:
		return readTuple(src, pos, unhash)
	case TagRecord:
		return readRecord(src, pos, unhash)
	case TagNumVariant:
		return readNumVariant(src, pos, unhash)
	case TagVariant:
		return readVariant(src, pos, unhash)
	case TagTupleTable:
		return readTupleTable(src, pos, unhash)
	case TagRecordTable:
		return readRecordTable(src, pos, unhash)
	case TagMatrix:
		return readMatrix(src, pos, unhash)
	default:
		return nil, corrupted("invalid tag 0x%02x", byte(tag))
	}
}

// checkLen fails fast when a wire-declared count cannot possibly be
// satisfied by the remaining input, so a hostile length prefix
// cannot drive an unbounded allocation.
func checkLen(src []byte, pos int, count uint64, minPerElem int) error {
	if minPerElem <= 0 {
		minPerElem = 1
	}
	if count > uint64(len(src)-pos)/uint64(minPerElem) {
		return corrupted("declared length %d exceeds remaining input", count)
	}
	return nil
}

// checkRect validates a row/column pair declared by a table or
// matrix header before any row slice is allocated. It checks
// rowCount on its own (a huge row count with zero columns would
// otherwise still allocate one slice header per row) and then the
// rowCount*colCount cell total, guarding the multiplication itself
// against overflow.
func checkRect(src []byte, pos int, rowCount, colCount uint64, minPerCell int) error {
	if err := checkLen(src, pos, rowCount, 0); err != nil {
		return err
	}
	if colCount == 0 || rowCount == 0 {
		return nil
	}
	remaining := uint64(len(src) - pos)
	if minPerCell <= 0 {
		minPerCell = 1
	}
	maxCells := remaining / uint64(minPerCell)
	if colCount > maxCells/rowCount {
		return corrupted("declared %d x %d cells exceeds remaining input", rowCount, colCount)
	}
	return nil
}

func readArray(src []byte, pos *int, unhash Unhash) (Tree, error) {
	n, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("array length")
	}
	if err := checkLen(src, *pos, n, 1); err != nil {
		return nil, err
	}
	if *pos >= len(src) {
		return nil, corrupted("array element tag")
	}
	elemTag := Tag(src[*pos])
	*pos++
	if !elemTag.valid() {
		return nil, corrupted("invalid array element tag 0x%02x", byte(elemTag))
	}
	elems := make([]Tree, n)
	for i := range elems {
		e, err := readBody(src, pos, elemTag, unhash)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return Array{ElemTag: elemTag, Elems: elems}, nil
}

func readTuple(src []byte, pos *int, unhash Unhash) (Tree, error) {
	n, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("tuple length")
	}
	if err := checkLen(src, *pos, n, 1); err != nil {
		return nil, err
	}
	elems := make([]Tree, n)
	for i := range elems {
		e, err := ReadTree(src, pos, unhash)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return Tuple{Elems: elems}, nil
}

func readRecord(src []byte, pos *int, unhash Unhash) (Tree, error) {
	n, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("record length")
	}
	if err := checkLen(src, *pos, n, 5); err != nil {
		return nil, err
	}
	fields := make([]Field, n)
	for i := range fields {
		h, err := ReadFieldHashtag(src, pos)
		if err != nil {
			return nil, err
		}
		v, err := ReadTree(src, pos, unhash)
		if err != nil {
			return nil, err
		}
		fields[i] = Field{Name: unhash(h), Hash: h, Value: v}
	}
	return Record{Fields: fields}, nil
}

func readNumVariant(src []byte, pos *int, unhash Unhash) (Tree, error) {
	i, hasArg, err := ReadNumtag(src, pos)
	if err != nil {
		return nil, err
	}
	var val Tree
	if hasArg {
		val, err = ReadTree(src, pos, unhash)
		if err != nil {
			return nil, err
		}
	}
	return NumVariant{Index: i, Value: val}, nil
}

func readVariant(src []byte, pos *int, unhash Unhash) (Tree, error) {
	h, hasArg, err := ReadHashtag(src, pos)
	if err != nil {
		return nil, err
	}
	var val Tree
	if hasArg {
		val, err = ReadTree(src, pos, unhash)
		if err != nil {
			return nil, err
		}
	}
	return Variant{Name: unhash(h), Hash: h, Value: val}, nil
}

func readTupleTable(src []byte, pos *int, unhash Unhash) (Tree, error) {
	rowCount, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("tuple_table row count")
	}
	colCount, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("tuple_table column count")
	}
	if err := checkLen(src, *pos, colCount, 1); err != nil {
		return nil, err
	}
	colTags := make([]Tag, colCount)
	for i := range colTags {
		if *pos >= len(src) {
			return nil, corrupted("tuple_table column tag")
		}
		colTags[i] = Tag(src[*pos])
		*pos++
		if !colTags[i].valid() {
			return nil, corrupted("invalid tuple_table column tag 0x%02x", byte(colTags[i]))
		}
	}
	if err := checkRect(src, *pos, rowCount, colCount, 1); err != nil {
		return nil, err
	}
	rows := make([][]Tree, rowCount)
	for r := range rows {
		row := make([]Tree, colCount)
		for c := range row {
			cell, err := readBody(src, pos, colTags[c], unhash)
			if err != nil {
				return nil, err
			}
			row[c] = cell
		}
		rows[r] = row
	}
	return TupleTable{ColTags: colTags, Rows: rows}, nil
}

func readRecordTable(src []byte, pos *int, unhash Unhash) (Tree, error) {
	rowCount, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("record_table row count")
	}
	colCount, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("record_table column count")
	}
	if err := checkLen(src, *pos, colCount, 5); err != nil {
		return nil, err
	}
	header := make([]Column, colCount)
	for i := range header {
		h, err := ReadFieldHashtag(src, pos)
		if err != nil {
			return nil, err
		}
		if *pos >= len(src) {
			return nil, corrupted("record_table column tag")
		}
		colTag := Tag(src[*pos])
		*pos++
		if !colTag.valid() {
			return nil, corrupted("invalid record_table column tag 0x%02x", byte(colTag))
		}
		header[i] = Column{Name: unhash(h), Hash: h, ColTag: colTag}
	}
	if err := checkRect(src, *pos, rowCount, colCount, 1); err != nil {
		return nil, err
	}
	rows := make([][]Tree, rowCount)
	for r := range rows {
		row := make([]Tree, colCount)
		for c := range row {
			cell, err := readBody(src, pos, header[c].ColTag, unhash)
			if err != nil {
				return nil, err
			}
			row[c] = cell
		}
		rows[r] = row
	}
	return RecordTable{Header: header, Rows: rows}, nil
}

func readMatrix(src []byte, pos *int, unhash Unhash) (Tree, error) {
	rowCount, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("matrix row count")
	}
	colNum, err := vint.ReadUvint(src, pos)
	if err != nil {
		return nil, corrupted("matrix column count")
	}
	if *pos >= len(src) {
		return nil, corrupted("matrix element tag")
	}
	elemTag := Tag(src[*pos])
	*pos++
	if !elemTag.valid() {
		return nil, corrupted("invalid matrix element tag 0x%02x", byte(elemTag))
	}
	if err := checkRect(src, *pos, rowCount, colNum, 1); err != nil {
		return nil, err
	}
	rows := make([][]Tree, rowCount)
	for r := range rows {
		row := make([]Tree, colNum)
		for c := range row {
			cell, err := readBody(src, pos, elemTag, unhash)
			if err != nil {
				return nil, err
			}
			row[c] = cell
		}
		rows[r] = row
	}
	return Matrix{ElemTag: elemTag, Cols: int(colNum), Rows: rows}, nil
}
