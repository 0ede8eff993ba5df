// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package astutil_test

import (
	"go/ast"
	"go/types"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/flagguard/internal/astutil"
	"fillmore-labs.com/flagguard/internal/testsource"
)

func TestAllConstNames(t *testing.T) {
	t.Parallel()

	const src = `
const (
	A, B = 1 << iota, 2 << iota
	C, D
	_, E
	F = 7
	G
	H int = 0
)

var V = 1
`

	_, f, _ := testsource.Parse(t, src)

	type name struct {
		Name, Expr string
		Explicit   bool
	}

	var got []name

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		for id, expr := range AllConstNames(gen) {
			got = append(got, name{id.Name, types.ExprString(expr.Expr), expr.Explicit})
		}
	}

	want := []name{
		{"A", "1 << iota", true},
		{"B", "2 << iota", true},
		{"C", "1 << iota", false},
		{"D", "2 << iota", false},
		{"E", "2 << iota", false},
		{"F", "7", true},
		{"G", "7", false},
		{"H", "0", true},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllConstNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllConstNamesStop(t *testing.T) {
	t.Parallel()

	_, f, _ := testsource.Parse(t, "const (\n\tA = iota\n\tB\n\tC\n)\n")

	gen := f.Decls[0].(*ast.GenDecl)

	var n int
	for range AllConstNames(gen) {
		n++
		if n == 2 {
			break
		}
	}

	if n != 2 {
		t.Errorf("Got %d names, want 2", n)
	}
}
