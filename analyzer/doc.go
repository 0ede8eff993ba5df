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

// Package analyzer implements the flagguard static analysis pass.
//
// # Overview
//
// FlagGuard checks Go flag sets: named integer types whose constants are
// single bits combined with "|". A type is treated as a flag set when one of
// its constants is declared by shifting 1 (usually "1 << iota"), or when the
// type declaration is marked with a //flagguard:flags directive.
//
// # Example
//
//	type Perm uint8
//
//	const (
//	    Read Perm = 1 << iota
//	    Write
//	    Exec
//	)
//
//	const (
//	    ReadWrite Perm = 3      // can be written as Read | Write
//	    Delete    Perm = 1 << 1 // duplicates Write, fix proposes 1 << 3
//	    Broken         = Read | ReadWrite // operands overlap
//	)
//
// # Checks
//
//   - negative: constants with negative values, which are never valid flags
//   - duplicate: single flags declared twice; the fix proposes the next free flag
//   - undefined: composite values containing flags no constant declares
//   - overlap: operands of a "|" union sharing bits
//   - combination: composite values written as numbers; the fix rewrites them as a union of names
//
// Checks are toggled individually (-overlap=false) or as a list
// (-checks=negative,duplicate).
//
// Diagnostics are suppressed by a //nolint:flagguard comment on the
// constant's line, or on the package clause for a whole file.
package analyzer
