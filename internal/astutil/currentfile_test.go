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
	"testing"

	. "fillmore-labs.com/flagguard/internal/astutil"
	"fillmore-labs.com/flagguard/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:flagguard", true},
		{"// nolint:flagguard", true},
		{"//nolint:gosec,FlagGuard", true},
		{"//nolint:all", true},
		{"//nolint:gosec", false},
		{"// flagguard", false},
		{"/* nolint:flagguard */", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
				t.Errorf("Got CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasFlagsDirective(t *testing.T) {
	t.Parallel()

	directive := &ast.CommentGroup{List: []*ast.Comment{{Text: "// Mode is a flag set."}, {Text: "//flagguard:flags"}}}
	plain := &ast.CommentGroup{List: []*ast.Comment{{Text: "// flagguard:flags"}}}

	if !HasFlagsDirective(nil, directive) {
		t.Error("Directive not found")
	}

	if HasFlagsDirective(plain, nil) {
		t.Error("Got directive in a regular comment")
	}

	if HasFlagsDirective() {
		t.Error("Got directive without comments")
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `
const (
	A = 1 //nolint:flagguard
	B = 2 // regular comment
	C = 3
) //nolint:flagguard
`

	fset, f, _ := testsource.Parse(t, src)

	cf := NewCurrentFile(fset, f)
	if !cf.Valid() {
		t.Fatal("Invalid current file")
	}

	if cf.Generated() || cf.NoLint() {
		t.Errorf("Got generated %t, nolint %t, want false", cf.Generated(), cf.NoLint())
	}

	decl := f.Decls[0].(*ast.GenDecl)

	for i, want := range []bool{true, false, false} {
		name := decl.Specs[i].(*ast.ValueSpec).Names[0]
		if got := cf.NoLintComment(name.Pos()); got != want {
			t.Errorf("Got NoLintComment(%s) = %t, want %t", name.Name, got, want)
		}
	}

	if NewCurrentFile(fset, nil).Valid() {
		t.Error("Got valid current file for nil")
	}
}

func TestCurrentFileNoLint(t *testing.T) {
	t.Parallel()

	fset, f, _ := testsource.Parse(t, "")

	f.Doc = &ast.CommentGroup{List: []*ast.Comment{{Text: "// Package test."}, {Text: "//nolint:flagguard"}}}

	if !NewCurrentFile(fset, f).NoLint() {
		t.Error("File is not excluded")
	}
}
