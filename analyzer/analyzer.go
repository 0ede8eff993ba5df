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
	"fmt"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/flagguard/internal/config"
	"fillmore-labs.com/flagguard/internal/run"
)

// Public API constants for the flagguard analyzer.
const (
	name = "flagguard"
	doc  = `flagguard checks constants of flag set types for consistent bit patterns`
	url  = "https://pkg.go.dev/fillmore-labs.com/flagguard"
)

// New creates a new instance of the flagguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      checksDoc(),
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// checksDoc appends the available checks to the analyzer documentation.
func checksDoc() string {
	var b strings.Builder

	b.WriteString(doc + "\n\nChecks, each reported with its (fg:...) code:\n")

	for c := range config.NewBitMask(config.AllChecks).All() {
		fmt.Fprintf(&b, "\n  %-12s %s", c, c.Usage())
	}

	return b.String()
}

// Analyzer is a pre-configured *[analysis.Analyzer] for checking flag sets.
var Analyzer = New()
