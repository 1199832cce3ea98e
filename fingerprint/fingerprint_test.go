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

package fingerprint

import (
	"strings"
	"testing"
)

func TestOfIsDeterministic(t *testing.T) {
	a := Of([]byte("same bytes"))
	b := Of([]byte("same bytes"))
	if a != b {
		t.Fatalf("Of is not deterministic: %q vs %q", a, b)
	}
}

func TestOfDistinguishesInputs(t *testing.T) {
	a := Of([]byte("input one"))
	b := Of([]byte("input two"))
	if a == b {
		t.Fatal("distinct inputs produced the same fingerprint")
	}
}

func TestOfHasPrefix(t *testing.T) {
	got := Of(nil)
	if !strings.HasPrefix(got, "b2sum:") {
		t.Fatalf("fingerprint %q missing b2sum: prefix", got)
	}
}
