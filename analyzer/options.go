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
	"log/slog"

	"fillmore-labs.com/flagguard/internal/config"
	"fillmore-labs.com/flagguard/internal/run"
)

// Option configures specific behavior of a [New] flagguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return behaviorOption{config.IncludeGenerated, "generated", generated} }

// WithAppend is an [Option] to propose new flags after the highest existing flag instead of filling gaps.
func WithAppend(appendFlags bool) Option {
	return behaviorOption{config.AppendFlags, "append", appendFlags}
}

type behaviorOption struct {
	behavior config.Behavior
	name     string
	enabled  bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.behavior, o.enabled)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithNegative is an [Option] to configure whether negative flag constants are reported.
func WithNegative(negative bool) Option { return checkOption{config.NegativeCheck, negative} }

// WithDuplicate is an [Option] to configure whether duplicate flags are reported.
func WithDuplicate(duplicate bool) Option { return checkOption{config.DuplicateCheck, duplicate} }

// WithUndefined is an [Option] to configure whether composite values with undeclared flags are reported.
func WithUndefined(undefined bool) Option { return checkOption{config.UndefinedCheck, undefined} }

// WithOverlap is an [Option] to configure whether overlapping union operands are reported.
func WithOverlap(overlap bool) Option { return checkOption{config.OverlapCheck, overlap} }

// WithCombination is an [Option] to configure whether composite literals expressible by names are reported.
func WithCombination(combination bool) Option {
	return checkOption{config.CombinationCheck, combination}
}

type checkOption struct {
	check   config.Checks
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.check.String(), o.enabled)
}
