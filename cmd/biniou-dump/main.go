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

// Command biniou-dump decodes a tree from a file (or stdin) and
// prints a cosmetic textual rendering of it, optionally unwrapping a
// zstd envelope first and/or reporting a content fingerprint. None
// of this is part of the wire format itself; it is a thin consumer
// built on top of the public decode surface, in the spirit of
// ion/cmd/dump.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hhugo/biniou"
	"github.com/hhugo/biniou/config"
	"github.com/hhugo/biniou/envelope"
	"github.com/hhugo/biniou/fingerprint"
)

func main() {
	schemaPath := flag.String("schema", "", "YAML file of field/variant names to resolve hashes against")
	showFingerprint := flag.Bool("fingerprint", false, "print a content fingerprint of the decoded bytes")
	flag.Parse()

	unhash := biniou.Unhash(nil)
	if *schemaPath != "" {
		s, err := config.Load(*schemaPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		unhash, err = s.Unhash()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, arg := range args {
		if err := dumpOne(out, arg, unhash, *showFingerprint); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", arg, err)
			os.Exit(1)
		}
	}
}

func dumpOne(out *bufio.Writer, arg string, unhash biniou.Unhash, showFingerprint bool) error {
	var raw []byte
	var err error
	if arg == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(arg)
	}
	if err != nil {
		return err
	}
	raw, err = envelope.Open(raw)
	if err != nil {
		return err
	}
	if showFingerprint {
		fmt.Fprintf(out, "# %s\n", fingerprint.Of(raw))
	}
	t, err := biniou.TreeOfString(raw, unhash)
	if err != nil {
		return err
	}
	printTree(out, t, 0)
	fmt.Fprintln(out)
	return nil
}

func indent(out *bufio.Writer, depth int) {
	for i := 0; i < depth; i++ {
		out.WriteString("  ")
	}
}

// printTree is a cosmetic, recursive pretty-printer. It exists only
// for this command; the core package never formats trees for
// humans.
func printTree(out *bufio.Writer, t biniou.Tree, depth int) {
	switch n := t.(type) {
	case biniou.Int8:
		fmt.Fprintf(out, "int8(%d)", uint8(n))
	case biniou.Int16:
		fmt.Fprintf(out, "int16(%d)", uint16(n))
	case biniou.Int32:
		fmt.Fprintf(out, "int32(%d)", int32(n))
	case biniou.Int64:
		fmt.Fprintf(out, "int64(%d)", int64(n))
	case biniou.Int128:
		fmt.Fprintf(out, "int128(% x)", [16]byte(n))
	case biniou.Float64:
		fmt.Fprintf(out, "float64(%v)", float64(n))
	case biniou.Uvint:
		fmt.Fprintf(out, "uvint(%d)", uint64(n))
	case biniou.Svint:
		fmt.Fprintf(out, "svint(%d)", int64(n))
	case biniou.String:
		fmt.Fprintf(out, "%q", string(n))
	case biniou.Array:
		fmt.Fprintf(out, "[%s;\n", n.ElemTag)
		for _, e := range n.Elems {
			indent(out, depth+1)
			printTree(out, e, depth+1)
			fmt.Fprintln(out, ";")
		}
		indent(out, depth)
		out.WriteString("]")
	case biniou.Tuple:
		out.WriteString("(\n")
		for _, e := range n.Elems {
			indent(out, depth+1)
			printTree(out, e, depth+1)
			fmt.Fprintln(out, ",")
		}
		indent(out, depth)
		out.WriteString(")")
	case biniou.Record:
		out.WriteString("{\n")
		for _, f := range n.Fields {
			indent(out, depth+1)
			fmt.Fprintf(out, "%s: ", f.Name)
			printTree(out, f.Value, depth+1)
			fmt.Fprintln(out, ";")
		}
		indent(out, depth)
		out.WriteString("}")
	case biniou.NumVariant:
		fmt.Fprintf(out, "`%d", n.Index)
		if n.Value != nil {
			out.WriteString(" ")
			printTree(out, n.Value, depth)
		}
	case biniou.Variant:
		fmt.Fprintf(out, "<%s>", n.Name)
		if n.Value != nil {
			out.WriteString(" ")
			printTree(out, n.Value, depth)
		}
	case biniou.TupleTable:
		fmt.Fprintf(out, "tuple_table[%d rows]", len(n.Rows))
	case biniou.RecordTable:
		fmt.Fprintf(out, "record_table[%d rows]", len(n.Rows))
	case biniou.Matrix:
		fmt.Fprintf(out, "matrix[%d x %d]", len(n.Rows), n.Cols)
	default:
		fmt.Fprintf(out, "<unknown %T>", t)
	}
}
