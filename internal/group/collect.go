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

package group

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/flagguard/internal/astutil"
)

// Collect gathers the flag sets declared in the files below root.
//
// Flag sets are returned in the order their first constant appears.
func Collect(ctx context.Context, p *analysis.Pass, root inspector.Cursor) []*Set {
	defer trace.StartRegion(ctx, "Collect").End()

	c := collector{
		pass:       p,
		sets:       make(map[*types.TypeName]*Set),
		directives: make(map[*types.TypeName]bool),
	}

	for f := range root.Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		for d := range f.Children() {
			decl, ok := d.Node().(*ast.GenDecl)
			if !ok {
				continue
			}

			switch decl.Tok {
			case token.TYPE:
				c.typeDecl(decl)

			case token.CONST:
				c.constDecl(decl, currentFile)
			}
		}
	}

	return c.flagSets()
}

type collector struct {
	pass       *analysis.Pass
	order      []*Set
	sets       map[*types.TypeName]*Set
	directives map[*types.TypeName]bool
}

// typeDecl records types marked with a flags directive.
func (c *collector) typeDecl(decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		tspec, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		var doc *ast.CommentGroup
		if len(decl.Specs) == 1 {
			doc = decl.Doc
		}

		if !astutil.HasFlagsDirective(tspec.Doc, doc) {
			continue
		}

		if tn, ok := c.pass.TypesInfo.Defs[tspec.Name].(*types.TypeName); ok {
			c.directives[tn] = true
		}
	}
}

// constDecl adds the constants of a declaration to their flag sets.
func (c *collector) constDecl(decl *ast.GenDecl, currentFile astutil.CurrentFile) {
	for id, expr := range astutil.AllConstNames(decl) {
		obj, ok := c.pass.TypesInfo.Defs[id].(*types.Const)
		if !ok {
			continue
		}

		set := c.set(obj.Type())
		if set == nil {
			continue
		}

		if isShiftOfOne(expr.Expr) {
			set.shifted = true
		}

		set.Members = append(set.Members, Member{
			Ident:     id,
			Const:     obj,
			Value:     obj.Val(),
			ConstExpr: expr,
			File:      currentFile,
		})
	}
}

// set returns the [Set] of a named integer type declared in this package, or nil.
func (c *collector) set(t types.Type) *Set {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}

	tn := named.Obj()
	if tn.Pkg() != c.pass.Pkg {
		return nil
	}

	if set, ok := c.sets[tn]; ok {
		return set
	}

	width, ok := WidthOf(c.pass.TypesSizes, named)
	if !ok {
		c.sets[tn] = nil // not an integer type

		return nil
	}

	set := &Set{Type: tn, Width: width}
	c.sets[tn] = set
	c.order = append(c.order, set)

	return set
}

func (c *collector) flagSets() []*Set {
	var sets []*Set

	for _, set := range c.order {
		set.directive = c.directives[set.Type]

		if set.IsFlagSet() {
			sets = append(sets, set)
		}
	}

	return sets
}

// isShiftOfOne reports whether expr is "1 << n" or "T(1) << n".
func isShiftOfOne(expr ast.Expr) bool {
	shift, ok := ast.Unparen(expr).(*ast.BinaryExpr)
	if !ok || shift.Op != token.SHL {
		return false
	}

	x := ast.Unparen(shift.X)
	if call, ok := x.(*ast.CallExpr); ok && len(call.Args) == 1 {
		x = ast.Unparen(call.Args[0])
	}

	lit, ok := x.(*ast.BasicLit)

	return ok && lit.Kind == token.INT && lit.Value == "1"
}
