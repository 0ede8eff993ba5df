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

// Package bitflag reasons about integers used as sets of flags.
//
// # Overview
//
// A flag is a value with at most one bit set: zero means "no flags", a power
// of two means exactly one flag. A composite value has two or more bits set
// and is the union of several flags. Negative values are outside the flag
// domain; they are neither flags nor composites.
//
// The algebra is available for every Go integer kind through [For]:
//
//	f := bitflag.For[uint16]()
//
//	f.IsPowerOfTwo(8)              // true
//	f.IsComposite(6)               // true
//	slices.Collect(f.Flags(13))    // [1 4 8]
//	f.Combine(1, 2, 4)             // 7, true
//	f.Combine(1, 3)                // 0, false: bit 1 is shared
//
// # Allocation
//
// [Algebra.Next] proposes the value for a new member of a flag set, given
// the values already in use:
//
//	f.Next(slices.Values([]uint16{0, 1, 4}), bitflag.LowestFree)     // 2, true
//	f.Next(slices.Values([]uint16{0, 1, 4}), bitflag.HighestPlusOne) // 8, true
//
// Composite values in the reserved set are ignored, so a constant like
// All = A | B never blocks a new single flag.
//
// # Widths
//
// Each integer kind maps to one of eight [Width] values. Signed kinds have
// one usable flag less than their bit width, since the sign bit can never be
// a flag. The platform-sized kinds int, uint and uintptr map to the 32- or
// 64-bit width of the running platform.
//
// All functions are pure and safe for concurrent use.
package bitflag
