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

package highest

type Perm uint32

const (
	Read Perm = 1 << 0
	Exec Perm = 1 << 2
)

const Other Perm = 1 << 0 // want "Flag constant 'Other' duplicates the value of 'Read' \\(fg:dup\\)"

type Tiny int8

const (
	T0 Tiny = 1
	T6 Tiny = 1 << 6
)

// The highest flag is in use, no fix.
const T1 Tiny = 1 // want "Flag constant 'T1' duplicates the value of 'T0' \\(fg:dup\\)"
