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

import (
	"errors"
	"fmt"
	"strings"

	"fillmore-labs.com/flagguard/bitflag"
)

// ErrUnknownCheck is returned by [ParseChecks] for names that are not a check.
var ErrUnknownCheck = errors.New("unknown check")

// none disables every check in a check list.
const none = "none"

// ParseChecks parses a comma separated list of check names.
//
// "all" selects every check, "none" and empty elements are ignored.
func ParseChecks(list string) (Checks, error) {
	var checks Checks

	for name := range strings.SplitSeq(list, ",") {
		switch name = strings.ToLower(strings.TrimSpace(name)); name {
		case "", none:
			continue

		case AllChecks.String():
			checks |= AllChecks

			continue
		}

		c, ok := checkNamed(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
		}

		checks |= c
	}

	return checks, nil
}

func checkNamed(name string) (Checks, bool) {
	for c := range bitflag.For[Checks]().Flags(AllChecks) {
		if c.String() == name {
			return c, true
		}
	}

	return 0, false
}

// FormatChecks returns the enabled checks as a list accepted by [ParseChecks].
func FormatChecks(b BitMask[Checks]) string {
	names := make([]string, 0, bitflag.For[Checks]().FlagCount())
	for c := range b.All() {
		names = append(names, c.String())
	}

	if len(names) == 0 {
		return none
	}

	return strings.Join(names, ",")
}
