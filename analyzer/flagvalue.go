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

package analyzer

import (
	"strconv"

	"fillmore-labs.com/flagguard/internal/config"
)

// maskValue is a boolean [flag.Value] toggling a single flag of a [config.BitMask].
type maskValue[T config.Unsigned] struct {
	mask *config.BitMask[T]
	flag T
}

func newMaskValue[T config.Unsigned](mask *config.BitMask[T], flag T) maskValue[T] {
	return maskValue[T]{mask: mask, flag: flag}
}

// Set implements [flag.Value].
func (v maskValue[_]) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	v.mask.Set(v.flag, b)

	return nil
}

// String implements [flag.Value].
func (v maskValue[_]) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v maskValue[_]) Get() any { return v.enabled() }

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (maskValue[_]) IsBoolFlag() bool { return true }

func (v maskValue[_]) enabled() bool {
	return v.mask != nil && v.mask.Enabled(v.flag)
}

// checksValue is a [flag.Value] replacing the enabled checks with a comma separated list.
type checksValue struct {
	checks *config.BitMask[config.Checks]
}

// Set implements [flag.Value].
func (v checksValue) Set(s string) error {
	checks, err := config.ParseChecks(s)
	if err != nil {
		return err
	}

	*v.checks = config.NewBitMask(checks)

	return nil
}

// String implements [flag.Value].
func (v checksValue) String() string {
	if v.checks == nil {
		return ""
	}

	return config.FormatChecks(*v.checks)
}

// Get implements [flag.Getter].
func (v checksValue) Get() any {
	if v.checks == nil {
		return config.Checks(0)
	}

	var checks config.Checks
	for c := range v.checks.All() {
		checks |= c
	}

	return checks
}
