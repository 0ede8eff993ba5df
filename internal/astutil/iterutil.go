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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// ConstExpr is the value expression of a declared constant.
type ConstExpr struct {
	// Expr is the value expression, nil when the declaration has none.
	Expr ast.Expr

	// Explicit is false when Expr is repeated implicitly from a previous spec of the const block.
	Explicit bool
}

// AllConstNames yields all declared constant names of a const declaration with their value expressions.
func AllConstNames(decl *ast.GenDecl) iter.Seq2[*ast.Ident, ConstExpr] {
	if decl.Tok != token.CONST {
		return func(func(*ast.Ident, ConstExpr) bool) {}
	}

	return func(yield func(*ast.Ident, ConstExpr) bool) {
		var previous []ast.Expr

		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			values, explicit := vspec.Values, true
			if len(values) == 0 && vspec.Type == nil {
				values, explicit = previous, false
			} else {
				previous = values
			}

			for i, id := range vspec.Names {
				if id.Name == "_" {
					continue // blank identifier
				}

				var expr ast.Expr
				if i < len(values) {
					expr = values[i]
				}

				if !yield(id, ConstExpr{Expr: expr, Explicit: explicit}) {
					return
				}
			}
		}
	}
}
