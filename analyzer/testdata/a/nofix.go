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

package a

const Everything = Read | Write | Exec

const Alias = Write

const (
	First Perm = Read
	Again
)

const Broken = Read | ReadWrite // want "Operands 'Read' and 'ReadWrite' of flag constant 'Broken' overlap \\(fg:ovl\\)"

const Unknown Perm = 0x30 // want "Flag constant 'Unknown' contains undefined flags 16 and 32 \\(fg:und\\)"

const Extra = Read | 64 // want "Flag constant 'Extra' contains undefined flag 64 \\(fg:und\\)"

const Twice Perm = Perm(4) // want "Flag constant 'Twice' duplicates the value of 'Exec' \\(fg:dup\\)"

const Quiet Perm = 5 //nolint:flagguard

type Level int8

const (
	Debug Level = 1 << iota
	Info
	Warn
)

const Invalid Level = -1 // want "Flag constant 'Invalid' has negative value -1 \\(fg:neg\\)"

type Small uint8

const (
	S0 Small = 1 << iota
	S1
	S2
	S3
	S4
	S5
	S6
	S7
)

// No free flag left, no fix.
const S8 Small = 1 << 7 // want "Flag constant 'S8' duplicates the value of 'S7' \\(fg:dup\\)"

type Color int

const (
	Red Color = iota
	Green
	Blue
)

const Purple Color = 3

func local() {
	const inner Perm = 3

	_ = inner
}
