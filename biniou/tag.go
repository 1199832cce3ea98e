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

// Tag is the single byte identifying a tree node's kind on the wire.
// The mapping below is part of the wire contract: encoder and
// decoder must agree on these exact values, so the set is closed.
type Tag byte

const (
	TagInt8         Tag = 1
	TagInt16        Tag = 2
	TagInt32        Tag = 3
	TagInt64        Tag = 4
	TagInt128       Tag = 5
	TagFloat64      Tag = 12
	TagUvint        Tag = 16
	TagSvint        Tag = 17
	TagString       Tag = 18
	TagArray        Tag = 19
	TagTuple        Tag = 20
	TagRecord       Tag = 21
	TagNumVariant   Tag = 22
	TagVariant      Tag = 23
	TagTupleTable   Tag = 24
	TagRecordTable  Tag = 25
	TagMatrix       Tag = 26
)

var tagNames = map[Tag]string{
	TagInt8:        "int8",
	TagInt16:       "int16",
	TagInt32:       "int32",
	TagInt64:       "int64",
	TagInt128:      "int128",
	TagFloat64:     "float64",
	TagUvint:       "uvint",
	TagSvint:       "svint",
	TagString:      "string",
	TagArray:       "array",
	TagTuple:       "tuple",
	TagRecord:      "record",
	TagNumVariant:  "num_variant",
	TagVariant:     "variant",
	TagTupleTable:  "tuple_table",
	TagRecordTable: "record_table",
	TagMatrix:      "matrix",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "invalid"
}

// valid reports whether t is a registered member of the tag
// registry. Any byte not in tagNames is not a recognized node kind.
func (t Tag) valid() bool {
	_, ok := tagNames[t]
	return ok
}
