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

package check

import (
	"go/ast"

	"fillmore-labs.com/flagguard/internal/config"
)

// Finding is an issue found in a flag set.
type Finding struct {
	// Check is the check that produced this finding.
	Check config.Checks

	// Member is the index of the offending constant in the flag set.
	Member int

	// Related is the index of the constant first declaring the same flag ([config.DuplicateCheck]).
	Related int

	// Operands are the overlapping operands of a union ([config.OverlapCheck]).
	Operands [2]ast.Expr

	// Flags are the undeclared flags ([config.UndefinedCheck])
	// or the flags of a composite value ([config.CombinationCheck]), in ascending order.
	Flags []uint64

	// Names are the constant names declaring Flags ([config.CombinationCheck]).
	Names []string

	// Next is a proposed replacement value ([config.DuplicateCheck]), valid when HasNext is true.
	Next    uint64
	HasNext bool
}
