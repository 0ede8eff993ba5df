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
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"fillmore-labs.com/flagguard/bitflag"
	"fillmore-labs.com/flagguard/internal/config"
	"fillmore-labs.com/flagguard/internal/group"
)

// sized are the integer types with a fixed width.
type sized interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// flagSet holds the member values of a [group.Set] as T.
type flagSet[T sized] struct {
	Checker
	set    *group.Set
	f      bitflag.Algebra[T]
	values []T
	valid  []bool    // values[i] fits T
	first  map[T]int // single flag -> first member declaring it
	taken  []T       // proposed replacements
}

func run[T sized](c Checker, set *group.Set) []Finding {
	s := flagSet[T]{
		Checker: c,
		set:     set,
		f:       bitflag.For[T](),
		values:  make([]T, len(set.Members)),
		valid:   make([]bool, len(set.Members)),
		first:   make(map[T]int),
	}

	for i, m := range set.Members {
		v, ok := convert[T](m.Value)
		if !ok {
			continue
		}

		s.values[i], s.valid[i] = v, true

		if _, ok := s.first[v]; !ok && s.f.IsPowerOfTwo(v) {
			s.first[v] = i
		}
	}

	var findings []Finding

	for i := range set.Members {
		if !s.valid[i] {
			continue
		}

		findings = s.member(findings, i)
	}

	return findings
}

// member appends the findings for member i.
func (s *flagSet[T]) member(findings []Finding, i int) []Finding {
	v := s.values[i]

	if v < 0 {
		if s.Checks.Enabled(config.NegativeCheck) {
			findings = append(findings, Finding{Check: config.NegativeCheck, Member: i})
		}

		return findings // outside the flag domain
	}

	if s.Checks.Enabled(config.DuplicateCheck) && s.f.IsPowerOfTwo(v) {
		if finding, ok := s.duplicate(i); ok {
			findings = append(findings, finding)
		}
	}

	if s.f.IsComposite(v) {
		undefined := s.undefined(v)

		switch {
		case len(undefined) > 0:
			if s.Checks.Enabled(config.UndefinedCheck) {
				findings = append(findings, Finding{Check: config.UndefinedCheck, Member: i, Flags: undefined})
			}

		case s.Checks.Enabled(config.CombinationCheck):
			if finding, ok := s.combination(i); ok {
				findings = append(findings, finding)
			}
		}
	}

	if s.Checks.Enabled(config.OverlapCheck) {
		if finding, ok := s.overlap(i); ok {
			findings = append(findings, finding)
		}
	}

	return findings
}

// duplicate checks whether single flag member i repeats the value of an earlier member without referring to it.
func (s *flagSet[T]) duplicate(i int) (Finding, bool) {
	m := s.set.Members[i]

	first := s.first[s.values[i]]
	if first == i || s.refersToMember(m.Expr) {
		return Finding{}, false
	}

	finding := Finding{Check: config.DuplicateCheck, Member: i, Related: first}

	if !m.Explicit || !replaceable(m.Expr) {
		return finding, true // no place for a replacement
	}

	if next, ok := s.f.Next(s.reserved(i), s.Strategy); ok {
		s.taken = append(s.taken, next)
		finding.Next, finding.HasNext = uint64(next), true
	}

	return finding, true
}

// replaceable reports whether expr is a shift or an integer literal that a fix can rewrite as a new flag.
func replaceable(expr ast.Expr) bool {
	switch e := ast.Unparen(expr).(type) {
	case *ast.BinaryExpr:
		return e.Op == token.SHL

	case *ast.BasicLit:
		return e.Kind == token.INT

	default:
		return false
	}
}

// reserved yields the values of all members except skip, including already proposed replacements.
func (s *flagSet[T]) reserved(skip int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for j, v := range s.values {
			if j == skip || !s.valid[j] {
				continue
			}

			if !yield(v) {
				return
			}
		}

		for _, v := range s.taken {
			if !yield(v) {
				return
			}
		}
	}
}

// undefined returns the flags of v not declared by any member.
func (s *flagSet[T]) undefined(v T) []uint64 {
	var undefined []uint64

	for x := range s.f.Flags(v) {
		if _, ok := s.first[x]; !ok {
			undefined = append(undefined, uint64(x))
		}
	}

	return undefined
}

// combination checks whether composite member i, written as a number, can be expressed by names.
func (s *flagSet[T]) combination(i int) (Finding, bool) {
	m := s.set.Members[i]
	if !m.Explicit {
		return Finding{}, false
	}

	if lit, ok := ast.Unparen(m.Expr).(*ast.BasicLit); !ok || lit.Kind != token.INT {
		return Finding{}, false
	}

	finding := Finding{Check: config.CombinationCheck, Member: i}

	// every flag is declared, see undefined
	for x := range s.f.Flags(s.values[i]) {
		finding.Flags = append(finding.Flags, uint64(x))
		finding.Names = append(finding.Names, s.set.Members[s.first[x]].Name())
	}

	return finding, true
}

// overlap checks whether the operands of a union declaring member i share bits.
func (s *flagSet[T]) overlap(i int) (Finding, bool) {
	m := s.set.Members[i]
	if !m.Explicit {
		return Finding{}, false
	}

	operands := unionOperands(nil, m.Expr)
	if len(operands) < 2 {
		return Finding{}, false
	}

	values := make([]T, 0, len(operands))

	for _, op := range operands {
		tv, ok := s.Info.Types[op]
		if !ok || tv.Value == nil {
			return Finding{}, false
		}

		v, ok := convert[T](tv.Value)
		if !ok {
			return Finding{}, false
		}

		values = append(values, v)
	}

	if _, ok := s.f.Combine(values...); ok {
		return Finding{}, false
	}

	j, k, _ := s.f.Overlap(values...)

	return Finding{Check: config.OverlapCheck, Member: i, Operands: [2]ast.Expr{operands[j], operands[k]}}, true
}

// refersToMember reports whether expr uses a constant of the flag set.
func (s *flagSet[T]) refersToMember(expr ast.Expr) bool {
	if expr == nil {
		return false
	}

	found := false

	ast.Inspect(expr, func(n ast.Node) bool {
		if found {
			return false
		}

		if id, ok := n.(*ast.Ident); ok {
			if c, ok := s.Info.Uses[id].(*types.Const); ok && s.set.Index(c) >= 0 {
				found = true
			}
		}

		return true
	})

	return found
}

// unionOperands appends the operands of a chain of "|" expressions.
func unionOperands(operands []ast.Expr, e ast.Expr) []ast.Expr {
	e = ast.Unparen(e)

	if b, ok := e.(*ast.BinaryExpr); ok && b.Op == token.OR {
		operands = unionOperands(operands, b.X)

		return unionOperands(operands, b.Y)
	}

	return append(operands, e)
}
