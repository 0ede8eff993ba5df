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

package bitflag

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
)

// ErrNilReserved is the panic value (wrapped) of [Algebra.Next] when called without a reserved sequence.
var ErrNilReserved = errors.New("nil reserved values")

// Strategy selects how [Algebra.Next] picks a new flag.
type Strategy uint8

const (
	// LowestFree picks the lowest power of two not in use, filling gaps.
	LowestFree Strategy = iota

	// HighestPlusOne picks the power of two following the highest flag in use.
	HighestPlusOne
)

// Next proposes a new flag not contained in reserved.
//
// Only zero and single flags in reserved are considered; composite and
// negative values are ignored. Reserved values are treated as a set, so
// repeated values count once: {0, 0} is the same as {0}. When nothing is
// reserved the proposal is zero, when only zero is reserved it is one. It returns false when T has no
// unused flag left for the chosen [Strategy].
//
// Next panics when reserved is nil.
func (a Algebra[T]) Next(reserved iter.Seq[T], s Strategy) (T, bool) {
	if reserved == nil {
		panic(fmt.Errorf("bitflag: %w", ErrNilReserved))
	}

	var (
		used uint64 // bit i is set when flag 1<<i is reserved
		seen bool   // a zero or single flag is reserved
	)

	for v := range reserved {
		if v < 0 || !a.IsZeroOrPowerOfTwo(v) {
			continue
		}

		seen = true

		if v != 0 {
			used |= 1 << bits.TrailingZeros64(uint64(v))
		}
	}

	switch {
	case !seen:
		return 0, true

	case used == 0:
		return 1, true
	}

	var next int

	switch s {
	case HighestPlusOne:
		next = bits.Len64(used) // double the highest flag
	default:
		next = bits.TrailingZeros64(^used)
	}

	if next >= a.FlagCount() {
		return 0, false
	}

	return T(1) << next, true
}
