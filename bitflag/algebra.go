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

import "iter"

// Integer is the set of Go integer kinds the algebra is defined for.
type Integer interface { // constraints.Integer would be fine, but it lives in golang.org/x/exp
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// policy holds the derived properties of a [Width].
type policy struct {
	width     Width
	flagCount int
}

// policies is indexed by [Width] and shared by all [Algebra] values.
var policies = func() (p [numWidths]policy) {
	for i := range p {
		w := Width(i)
		p[i] = policy{width: w, flagCount: w.FlagCount()}
	}

	return p
}()

// Algebra is the flag algebra over the integer type T.
//
// The zero value is ready to use, but callers that invoke many operations
// should keep the result of [For].
type Algebra[T Integer] struct {
	p *policy
}

// For returns the [Algebra] for the integer type T.
func For[T Integer]() Algebra[T] {
	return Algebra[T]{p: &policies[WidthOf[T]()]}
}

func (a Algebra[T]) resolve() *policy {
	if a.p == nil {
		return &policies[WidthOf[T]()]
	}

	return a.p
}

// Width returns the [Width] of T.
func (a Algebra[T]) Width() Width { return a.resolve().width }

// FlagCount returns the number of bit positions of T usable as flags.
func (a Algebra[T]) FlagCount() int { return a.resolve().flagCount }

// MaxValue returns the largest value representable by T.
func (a Algebra[T]) MaxValue() T {
	if p := a.resolve(); p.width.Signed() {
		return ^(T(1) << p.flagCount)
	}

	return ^T(0)
}

// IsZeroOrPowerOfTwo reports whether v has at most one bit set.
//
// Note that this is true for the minimum value of signed kinds.
func (Algebra[T]) IsZeroOrPowerOfTwo(v T) bool {
	return v&(v-1) == 0
}

// IsPowerOfTwo reports whether v is a single flag.
func (Algebra[T]) IsPowerOfTwo(v T) bool {
	return v > 0 && v&(v-1) == 0
}

// IsComposite reports whether v is a union of two or more flags.
//
// Negative values are neither composite nor flags.
func (Algebra[T]) IsComposite(v T) bool {
	return v > 0 && v&(v-1) != 0
}

// Flags returns the single flags set in v in ascending order.
//
// The sequence is empty for zero and negative values.
func (a Algebra[T]) Flags(v T) iter.Seq[T] {
	n := a.FlagCount()

	return func(yield func(T) bool) {
		for i := range n {
			x := T(1) << i
			if x > v {
				return // no higher bit can be set
			}

			if v&x != 0 && !yield(x) {
				return
			}
		}
	}
}

// Overlap returns the indices of the first pair of values sharing a bit.
func (Algebra[T]) Overlap(values ...T) (i, j int, ok bool) {
	for i, x := range values {
		for j := i + 1; j < len(values); j++ {
			if x&values[j] != 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// Combine returns the union of values when no two of them share a bit.
//
// Combining no values results in zero.
func (a Algebra[T]) Combine(values ...T) (T, bool) {
	if _, _, overlap := a.Overlap(values...); overlap {
		return 0, false
	}

	var union T
	for _, v := range values {
		union |= v
	}

	return union, true
}
