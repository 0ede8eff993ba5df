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

package group_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/flagguard/bitflag"
	. "fillmore-labs.com/flagguard/internal/group"
	"fillmore-labs.com/flagguard/internal/testsource"
)

const src = `
type Color int

const (
	Red Color = iota
	Green
)

type Perm uint8

const (
	Read Perm = 1 << iota
	Write
	_
	Exec
)

const All = Read | Write | Exec

//flagguard:flags
type Mode int32

const (
	ModeA Mode = 1
	ModeB Mode = 2
)

type (
	// Bits is a set of flags.
	//
	//flagguard:flags
	Bits uint

	Plain uint64
)

const (
	BitA Bits = 1
	PlainA Plain = 1
)

type Empty uint16 // shifted constants, but no members

const Loose = 1 << 3

type Typed uint16

const T0 = Typed(1) << 0

func local() {
	type Inner uint8

	const I0 Inner = 1 << 0
}
`

type member struct {
	Name     string
	Explicit bool
	Value    string
}

func TestCollect(t *testing.T) {
	t.Parallel()

	p, root := testsource.Pass(t, src)

	sets := Collect(t.Context(), p, root)

	type set struct {
		Name    string
		Width   bitflag.Width
		Members []member
	}

	got := make([]set, 0, len(sets))
	for _, s := range sets {
		ms := make([]member, 0, len(s.Members))
		for _, m := range s.Members {
			ms = append(ms, member{m.Name(), m.Explicit, m.Value.ExactString()})
		}

		got = append(got, set{s.Type.Name(), s.Width, ms})
	}

	want := []set{
		{"Perm", bitflag.Uint8, []member{
			{"Read", true, "1"},
			{"Write", false, "2"},
			{"Exec", false, "8"},
			{"All", true, "11"},
		}},
		{"Mode", bitflag.Int32, []member{
			{"ModeA", true, "1"},
			{"ModeB", true, "2"},
		}},
		{"Bits", bitflag.Uint64, []member{
			{"BitA", true, "1"},
		}},
		{"Typed", bitflag.Uint16, []member{
			{"T0", true, "1"},
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectIndex(t *testing.T) {
	t.Parallel()

	p, root := testsource.Pass(t, src)

	sets := Collect(t.Context(), p, root)
	if len(sets) == 0 {
		t.Fatal("No flag sets found")
	}

	perm := sets[0]

	for i, m := range perm.Members {
		if got := perm.Index(m.Const); got != i {
			t.Errorf("Got Index(%s) = %d, want %d", m.Name(), got, i)
		}
	}

	if got := perm.Index(nil); got != -1 {
		t.Errorf("Got Index(nil) = %d, want -1", got)
	}

	if !perm.IsFlagSet() {
		t.Error("Perm is not a flag set")
	}
}
