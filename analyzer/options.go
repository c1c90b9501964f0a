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

	"fillmore-labs.com/funcargs/internal/config"
	"fillmore-labs.com/funcargs/internal/run"
)

// Option configures specific behavior of the funcargs [analysis.Analyzer].
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that also implements [Option].
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

// WithMaxSingleLineArgs sets the maximum number of arguments of a single line signature.
func WithMaxSingleLineArgs(maxArgs int) Option { return maxArgsOption{maxArgs: maxArgs} }

type maxArgsOption struct{ maxArgs int }

func (o maxArgsOption) apply(r *run.Options) {
	r.Rules.MaxSingleLineArgs = o.maxArgs
}

func (o maxArgsOption) LogAttr() slog.Attr {
	return slog.Int("max-single-line-args", o.maxArgs)
}

// WithGenerated configures whether generated files are checked.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSingleLineArgs enables or disables FNA001.
func WithSingleLineArgs(enabled bool) Option {
	return ruleOption{rule: config.SingleLineArgs, name: "fna001", enabled: enabled}
}

// WithOneArgPerLine enables or disables FNA002.
func WithOneArgPerLine(enabled bool) Option {
	return ruleOption{rule: config.OneArgPerLine, name: "fna002", enabled: enabled}
}

type ruleOption struct {
	rule    config.Rules
	name    string
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Rules.Rules.Set(o.rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}
