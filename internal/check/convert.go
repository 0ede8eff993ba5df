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
	"go/constant"

	"fortio.org/safecast"
)

// convert returns the constant value as T, or false when it is not an integer representable by T.
func convert[T sized](v constant.Value) (T, bool) {
	if v == nil {
		return 0, false
	}

	v = constant.ToInt(v)
	if v.Kind() != constant.Int {
		return 0, false
	}

	if i, exact := constant.Int64Val(v); exact {
		t, err := safecast.Conv[T](i)

		return t, err == nil
	}

	if u, exact := constant.Uint64Val(v); exact {
		t, err := safecast.Conv[T](u)

		return t, err == nil
	}

	return 0, false
}
