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
	"go/types"

	"fillmore-labs.com/flagguard/bitflag"
)

// WidthOf returns the [bitflag.Width] of an integer type.
//
// Platform-sized kinds are resolved with the given sizes.
func WidthOf(sizes types.Sizes, t types.Type) (bitflag.Width, bool) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 || basic.Info()&types.IsUntyped != 0 {
		return 0, false
	}

	signed := basic.Info()&types.IsUnsigned == 0

	switch basic.Kind() {
	case types.Int8, types.Uint8:
		return bitflag.WidthFor(8, signed)

	case types.Int16, types.Uint16:
		return bitflag.WidthFor(16, signed)

	case types.Int32, types.Uint32:
		return bitflag.WidthFor(32, signed)

	case types.Int64, types.Uint64:
		return bitflag.WidthFor(64, signed)

	case types.Int, types.Uint, types.Uintptr:
		if sizes == nil {
			return 0, false
		}

		return bitflag.WidthFor(int(sizes.Sizeof(basic))*8, signed)

	default:
		return 0, false
	}
}
