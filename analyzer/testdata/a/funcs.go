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

import "fmt"

func none() {}

func three(a, b, c int) {}

func four(a, b, c, d int) {} // want "FNA001 Function should not have more than 3 single line arguments\\."

func unnamed(int, string, bool, error) {} // want "FNA001 Function should not have more than 3 single line arguments\\."

func variadic(format string, a, b int, args ...any) { // want "FNA001 Function should not have more than 3 single line arguments\\."
	fmt.Printf(format, append([]any{a, b}, args...)...)
}

func shared(a, b int, // want "FNA002 Function should have only one argument per line in multiline definition\\."
	c, d int,
) {
}

func sharedContinuation( // want "FNA002 Function should have only one argument per line in multiline definition\\."
	a, b int,
	c, d int,
) {
}

func onePerLine(
	a int,
	b int,
	c int,
	d int,
) {
}

func wrapped(a int,
	b int) {
}

func grouped( // want "FNA002 Function should have only one argument per line in multiline definition\\."
	a, b, c, d int,
) {
}

func generic[A, B, C, D any](a A, b B) {}

var literal = func(a, b, c, d int) {}

type T struct{}

func (t T) method(a, b, c int) {}

func (T) self(self T, a, b, c int) {}

func (T) cls(cls, a T,
	b T) {
}

func (T) tooMany(a, b, c, d int) {} // want "FNA001 Function should not have more than 3 single line arguments\\."

type I interface {
	Method(a, b, c, d int)
}

func nolint(a, b, c, d int) {} //nolint:funcargs

// documented has a doc comment.
//
//nolint:funcargs
func documented(a, b, c, d int) {}
