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
	"go/ast"
	"go/constant"
	"go/types"

	"fillmore-labs.com/flagguard/bitflag"
	"fillmore-labs.com/flagguard/internal/astutil"
)

// Member is a constant of a flag set.
type Member struct {
	// Ident is the defining identifier.
	Ident *ast.Ident

	// Const is the type checker object.
	Const *types.Const

	// Value is the exact constant value.
	Value constant.Value

	// Expr is the value expression, see [astutil.ConstExpr].
	astutil.ConstExpr

	// File is the file the constant is declared in.
	File astutil.CurrentFile
}

// Name returns the constant name.
func (m Member) Name() string { return m.Ident.Name }

// Set is a named integer type used as a set of flags, with all its package-level constants.
type Set struct {
	// Type is the named type.
	Type *types.TypeName

	// Width is the integer kind of the underlying type.
	Width bitflag.Width

	// Members are the constants of this type in source order.
	Members []Member

	// shifted is true when a member is declared by shifting 1.
	shifted bool

	// directive is true when the type is marked with //flagguard:flags.
	directive bool
}

// IsFlagSet reports whether the type looks like a flag set.
func (s *Set) IsFlagSet() bool {
	return (s.shifted || s.directive) && len(s.Members) > 0
}

// Index returns the member index of a constant, or -1.
func (s *Set) Index(c *types.Const) int {
	for i, m := range s.Members {
		if m.Const == c {
			return i
		}
	}

	return -1
}
