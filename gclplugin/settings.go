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

package gclplugin

import "fillmore-labs.com/flagguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Negative enables reporting of negative flag constants.
	Negative *bool `json:"negative,omitzero"`
	// Duplicate enables reporting of flags sharing a value.
	Duplicate *bool `json:"duplicate,omitzero"`
	// Undefined enables reporting of composite values containing undeclared flags.
	Undefined *bool `json:"undefined,omitzero"`
	// Overlap enables reporting of overlapping operands in flag unions.
	Overlap *bool `json:"overlap,omitzero"`
	// Combination enables reporting of numeric composites expressible as a union of names.
	Combination *bool `json:"combination,omitzero"`
	// Append proposes new flags after the highest flag in use instead of filling gaps.
	Append *bool `json:"append,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the flagguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Negative, analyzer.WithNegative)
	opts = appendOption(opts, s.Duplicate, analyzer.WithDuplicate)
	opts = appendOption(opts, s.Undefined, analyzer.WithUndefined)
	opts = appendOption(opts, s.Overlap, analyzer.WithOverlap)
	opts = appendOption(opts, s.Combination, analyzer.WithCombination)
	opts = appendOption(opts, s.Append, analyzer.WithAppend)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
