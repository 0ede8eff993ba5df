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

package report

import (
	"context"
	"fmt"
	"go/types"
	"runtime/trace"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/flagguard/internal/check"
	"fillmore-labs.com/flagguard/internal/config"
	"fillmore-labs.com/flagguard/internal/group"
)

// Findings emits diagnostics for the findings of a flag set.
//
// This is the final phase of the analyzer pipeline. For each finding
// this function constructs a diagnostic message, generates a suggested fix
// with text edits where the check supports one, and reports the diagnostic
// to the analysis framework.
func Findings(ctx context.Context, p *analysis.Pass, set *group.Set, findings []check.Finding, behavior config.BitMask[config.Behavior]) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	includeGenerated := behavior.Enabled(config.IncludeGenerated)

	for _, finding := range findings {
		m := set.Members[finding.Member]
		if suppressed(m, includeGenerated) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      m.Ident.Pos(),
			End:      m.Ident.End(),
			Category: finding.Check.String(),
		}

		// no fixes in generated code
		fix := !m.File.Generated()

		switch finding.Check {
		case config.NegativeCheck:
			diagnostic.Message = fmt.Sprintf("Flag constant '%s' has negative value %s (fg:neg)", m.Name(), m.Value)

		case config.DuplicateCheck:
			diagnostic.Message, diagnostic.Related = duplicateMessage(set, finding)
			if fix {
				diagnostic.SuggestedFixes = duplicateFix(m, finding)
			}

		case config.UndefinedCheck:
			format := "Flag constant '%s' contains undefined flag %s (fg:und)"
			if len(finding.Flags) > 1 {
				format = "Flag constant '%s' contains undefined flags %s (fg:und)"
			}

			diagnostic.Message = fmt.Sprintf(format, m.Name(), concatValues(finding.Flags))

		case config.OverlapCheck:
			x, y := types.ExprString(finding.Operands[0]), types.ExprString(finding.Operands[1])
			diagnostic.Message = fmt.Sprintf("Operands '%s' and '%s' of flag constant '%s' overlap (fg:ovl)", x, y, m.Name())

		case config.CombinationCheck:
			union := strings.Join(finding.Names, " | ")
			diagnostic.Message = fmt.Sprintf("Flag constant '%s' can be written as %s (fg:cmb)", m.Name(), union)
			if fix {
				diagnostic.SuggestedFixes = replaceFix(m, "Replace with "+union, union)
			}

		default:
			diagnostic.Message = fmt.Sprintf("Internal Error: Unknown check %s (fg:int)", finding.Check)
		}

		p.Report(diagnostic)
	}
}

// suppressed reports whether diagnostics for a member are disabled.
func suppressed(m group.Member, includeGenerated bool) bool {
	switch {
	case m.File.NoLint():
		return true

	case m.File.Generated() && !includeGenerated:
		return true

	default:
		return m.File.NoLintComment(m.Ident.Pos())
	}
}

// duplicateMessage constructs the diagnostic message and related information for a duplicate flag.
func duplicateMessage(set *group.Set, finding check.Finding) (message string, related []analysis.RelatedInformation) {
	m, first := set.Members[finding.Member], set.Members[finding.Related]

	message = fmt.Sprintf("Flag constant '%s' duplicates the value of '%s' (fg:dup)", m.Name(), first.Name())
	related = []analysis.RelatedInformation{{
		Pos:     first.Ident.Pos(),
		End:     first.Ident.End(),
		Message: fmt.Sprintf("Flag '%s' declared here", first.Name()),
	}}

	return message, related
}

// concatValues formats a list of values into a human-readable string (e.g., "1, 2 and 4").
func concatValues(values []uint64) string {
	var all strings.Builder

	for i, v := range values {
		if i > 0 {
			var separator string
			if i == len(values)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			all.WriteString(separator) // ignore error
		}

		all.WriteString(strconv.FormatUint(v, 10)) // ignore error
	}

	return all.String()
}
