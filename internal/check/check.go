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
	"context"
	"fmt"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/flagguard/bitflag"
	"fillmore-labs.com/flagguard/internal/config"
	"fillmore-labs.com/flagguard/internal/group"
)

// Checker runs the enabled checks on flag sets.
type Checker struct {
	// Info is the type information of the analyzed package.
	Info *types.Info

	// Checks are the enabled checks.
	Checks config.BitMask[config.Checks]

	// Strategy selects how replacement flags are proposed.
	Strategy bitflag.Strategy
}

// New creates a [Checker].
func New(info *types.Info, checks config.BitMask[config.Checks], behavior config.BitMask[config.Behavior]) Checker {
	strategy := bitflag.LowestFree
	if behavior.Enabled(config.AppendFlags) {
		strategy = bitflag.HighestPlusOne
	}

	return Checker{Info: info, Checks: checks, Strategy: strategy}
}

// Check returns the findings for a flag set, ordered by member.
func (c Checker) Check(ctx context.Context, set *group.Set) []Finding {
	defer trace.StartRegion(ctx, "Check").End()

	switch set.Width {
	case bitflag.Uint8:
		return run[uint8](c, set)
	case bitflag.Int8:
		return run[int8](c, set)
	case bitflag.Uint16:
		return run[uint16](c, set)
	case bitflag.Int16:
		return run[int16](c, set)
	case bitflag.Uint32:
		return run[uint32](c, set)
	case bitflag.Int32:
		return run[int32](c, set)
	case bitflag.Uint64:
		return run[uint64](c, set)
	case bitflag.Int64:
		return run[int64](c, set)
	default:
		panic(fmt.Sprintf("check: unsupported width %v of %s", set.Width, set.Type.Name()))
	}
}
