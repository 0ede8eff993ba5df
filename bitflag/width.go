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
	"fmt"
	"math"
)

//go:generate go tool stringer -type Width -linecomment

// Width identifies one of the eight supported (bit width, signedness) pairs.
//
// Even values are unsigned, the following odd value is the signed kind of
// the same width.
type Width uint8

const (
	Uint8  Width = iota // uint8
	Int8                // int8
	Uint16              // uint16
	Int16               // int16
	Uint32              // uint32
	Int32               // int32
	Uint64              // uint64
	Int64               // int64

	numWidths = int(Int64) + 1
)

// Valid reports whether w is one of the eight supported widths.
func (w Width) Valid() bool { return int(w) < numWidths }

// Bits returns the number of bits of the integer kind.
func (w Width) Bits() int { return 8 << (w >> 1) }

// Signed reports whether the integer kind is signed.
func (w Width) Signed() bool { return w&1 != 0 }

// FlagCount returns the number of bit positions usable as flags.
//
// The sign bit of signed kinds is excluded.
func (w Width) FlagCount() int {
	if w.Signed() {
		return w.Bits() - 1
	}

	return w.Bits()
}

// MaxValue returns the largest value representable by the integer kind.
func (w Width) MaxValue() uint64 {
	return math.MaxUint64 >> (64 - w.FlagCount())
}

// WidthFor returns the [Width] for the given bit size and signedness.
func WidthFor(bits int, signed bool) (Width, bool) {
	var w Width

	switch bits {
	case 8:
		w = Uint8
	case 16:
		w = Uint16
	case 32:
		w = Uint32
	case 64:
		w = Uint64
	default:
		return 0, false
	}

	if signed {
		w++
	}

	return w, true
}

// WidthOf returns the [Width] of the integer type T.
func WidthOf[T Integer]() Width {
	ones := ^T(0)
	signed := ones < 0

	bits := 0
	for v := ones; v != 0; v <<= 1 {
		bits++
	}

	w, ok := WidthFor(bits, signed)
	if !ok {
		panic(fmt.Sprintf("bitflag: unsupported integer width %d", bits))
	}

	return w
}
