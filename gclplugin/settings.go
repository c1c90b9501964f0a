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

package gclplugin

import funcargs "fillmore-labs.com/funcargs/analyzer"

// Settings holds the funcargs settings from .golangci.yaml.
type Settings struct {
	// MaxSingleLineArgs sets the maximum number of arguments of a single line signature.
	MaxSingleLineArgs *int `json:"max-single-line-args,omitzero"`
	// FNA001 enables the single line argument count check.
	FNA001 *bool `json:"fna001,omitzero"`
	// FNA002 enables the one argument per line check.
	FNA002 *bool `json:"fna002,omitzero"`
}

// Options converts the settings into analyzer options.
func (s Settings) Options() []funcargs.Option {
	var opts []funcargs.Option

	opts = appendOption(opts, s.MaxSingleLineArgs, funcargs.WithMaxSingleLineArgs)
	opts = appendOption(opts, s.FNA001, funcargs.WithSingleLineArgs)
	opts = appendOption(opts, s.FNA002, funcargs.WithOneArgPerLine)

	return opts
}

func appendOption[T any](opts []funcargs.Option, value *T, constructor func(T) funcargs.Option) []funcargs.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
