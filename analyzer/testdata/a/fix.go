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

type Perm uint8

const (
	Read Perm = 1 << iota
	Write
	Exec
)

// Not rewritable, the next free flag stays available for Delete.
const Copy Perm = Perm(2) // want "Flag constant 'Copy' duplicates the value of 'Write' \\(fg:dup\\)"

const Delete Perm = 1 << 1 // want "Flag constant 'Delete' duplicates the value of 'Write' \\(fg:dup\\)"

const ReadWrite Perm = 3 // want "Flag constant 'ReadWrite' can be written as Read \\| Write \\(fg:cmb\\)"

//flagguard:flags
type Option uint16

const (
	OptA Option = 1
	OptB Option = 2
)

const OptC Option = 2 // want "Flag constant 'OptC' duplicates the value of 'OptB' \\(fg:dup\\)"

const OptD Option = 0x1 // want "Flag constant 'OptD' duplicates the value of 'OptA' \\(fg:dup\\)"

type Feature uint

const (
	FeatA Feature = 1 << iota
	FeatB
)

const FeatAB Feature = 3 // want "Flag constant 'FeatAB' can be written as FeatA \\| FeatB \\(fg:cmb\\)"
