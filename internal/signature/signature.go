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

package signature

import "iter"

// Signature is the ordered list of author-visible arguments of one declaration.
type Signature struct {
	// Line is the line of the declaration keyword.
	Line int

	// Args in evaluation order: positional, variadic-positional, keyword-only, variadic-keyword.
	Args []Argument
}

// Extract flattens the declaration's parameters in the fixed evaluation order,
// dropping implicit receiver arguments.
func Extract(d Declaration) Signature {
	args := make([]Argument, 0, d.Params.Len())

	for arg := range d.Params.all() {
		if IsReceiverName(arg.Name) {
			continue
		}

		args = append(args, arg)
	}

	return Signature{Line: d.Line, Args: args}
}

// all yields every parameter in evaluation order, with kinds normalized to their field.
func (p Parameters) all() iter.Seq[Argument] {
	return func(yield func(Argument) bool) {
		for _, arg := range p.Positional {
			if !yield(withKind(arg, Positional)) {
				return
			}
		}

		if p.VarPositional != nil && !yield(withKind(*p.VarPositional, VarPositional)) {
			return
		}

		for _, arg := range p.KeywordOnly {
			if !yield(withKind(arg, KeywordOnly)) {
				return
			}
		}

		if p.VarKeyword != nil {
			yield(withKind(*p.VarKeyword, VarKeyword))
		}
	}
}

func withKind(arg Argument, kind Kind) Argument {
	arg.Kind = kind

	return arg
}

// AllOnLine reports whether every argument sits on the declaration line.
// This is vacuously true for an empty signature.
func (s Signature) AllOnLine() bool {
	for _, arg := range s.Args {
		if arg.Line != s.Line {
			return false
		}
	}

	return true
}

// MultiLine reports whether at least one argument sits on a different line than the declaration.
func (s Signature) MultiLine() bool {
	return !s.AllOnLine()
}

// Lines returns the number of distinct lines hosting arguments.
func (s Signature) Lines() int {
	seen := make(map[int]struct{}, len(s.Args))
	for _, arg := range s.Args {
		seen[arg.Line] = struct{}{}
	}

	return len(seen)
}
