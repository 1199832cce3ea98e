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

// Package biniou implements a self-describing tagged binary tree
// format: every node carries its own type tag, so a decoder can walk
// an encoded value without an external schema. Field and constructor
// names are not stored as strings on the wire; they are folded into
// a 31-bit hash (HashName) and resolved back to a name only when the
// caller supplies an Unhash table built with MakeUnhash.
//
// StringOfTree and TreeOfString are the two entry points most
// callers need. The buf and vint subpackages are lower-level
// collaborators: buf is an append-only growable byte sink and vint
// implements the variable-length integer encodings used for lengths
// and unsigned/signed scalars.
package biniou
