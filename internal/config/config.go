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

package config

//go:generate go tool stringer -type Checks -linecomment

// Checks represents specific flag set checks.
type Checks uint8

const (
	// NegativeCheck reports flag constants with negative values.
	NegativeCheck Checks = 1 << iota // negative

	// DuplicateCheck reports single flags declared twice.
	DuplicateCheck // duplicate

	// UndefinedCheck reports composite values containing undeclared flags.
	UndefinedCheck // undefined

	// OverlapCheck reports overlapping operands of a flag union.
	OverlapCheck // overlap

	// CombinationCheck reports composite literals that can be written as a union of named flags.
	CombinationCheck // combination

	// AllChecks enables every check.
	AllChecks = NegativeCheck | DuplicateCheck | UndefinedCheck | OverlapCheck | CombinationCheck // all
)

// Usage returns the command line help text for a check.
func (c Checks) Usage() string {
	switch c {
	case NegativeCheck:
		return "report flag constants with negative values"
	case DuplicateCheck:
		return "report flags declared twice"
	case UndefinedCheck:
		return "report composite flags containing undeclared flags"
	case OverlapCheck:
		return "report overlapping operands in flag unions"
	case CombinationCheck:
		return "report composite flags not written as a union of names"
	default:
		return "enable " + c.String() + " checks"
	}
}

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// AppendFlags proposes new flags after the highest existing flag instead of filling gaps.
	AppendFlags
)

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() BitMask[Checks] {
	return NewBitMask(AllChecks)
}

// DefaultBehavior returns the default behavior.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask[Behavior]()
}
