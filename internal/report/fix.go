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

package report

import (
	"go/ast"
	"go/token"
	"go/types"
	"math/bits"
	"strconv"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/flagguard/internal/check"
	"fillmore-labs.com/flagguard/internal/group"
)

// duplicateFix replaces the value of a duplicate flag with the proposed next free flag.
func duplicateFix(m group.Member, finding check.Finding) []analysis.SuggestedFix {
	if !finding.HasNext {
		return nil
	}

	literal, ok := FlagLiteral(m.Expr, finding.Next)
	if !ok {
		return nil
	}

	return replaceFix(m, "Use next free flag "+literal, literal)
}

// replaceFix replaces the explicit value expression of a member.
func replaceFix(m group.Member, message, text string) []analysis.SuggestedFix {
	if !m.Explicit || m.Expr == nil {
		return nil
	}

	return []analysis.SuggestedFix{{
		Message: message,
		TextEdits: []analysis.TextEdit{{
			Pos:     m.Expr.Pos(),
			End:     m.Expr.End(),
			NewText: []byte(text),
		}},
	}}
}

// FlagLiteral formats a flag value in the style of the expression it replaces.
//
// Shifts keep their left operand, integer literals keep their base.
// Other expressions are not replaced.
func FlagLiteral(orig ast.Expr, flag uint64) (string, bool) {
	if flag&(flag-1) != 0 {
		return "", false // not a single flag
	}

	switch e := ast.Unparen(orig).(type) {
	case *ast.BinaryExpr:
		if e.Op != token.SHL || flag == 0 {
			return "", false
		}

		return types.ExprString(e.X) + " << " + strconv.Itoa(bits.TrailingZeros64(flag)), true

	case *ast.BasicLit:
		if e.Kind != token.INT {
			return "", false
		}

		return formatInt(e.Value, flag), true

	default:
		return "", false
	}
}

// formatInt formats v with the base prefix of the literal lit.
func formatInt(lit string, v uint64) string {
	if len(lit) < 2 || lit[0] != '0' {
		return strconv.FormatUint(v, 10)
	}

	switch prefix := lit[:2]; prefix {
	case "0x", "0X":
		return prefix + strconv.FormatUint(v, 16) // single flags have no letter digits

	case "0b", "0B":
		return prefix + strconv.FormatUint(v, 2)

	case "0o", "0O":
		return prefix + strconv.FormatUint(v, 8)

	default:
		if lit[1] >= '0' && lit[1] <= '7' {
			return "0" + strconv.FormatUint(v, 8) // legacy octal
		}

		return strconv.FormatUint(v, 10)
	}
}
