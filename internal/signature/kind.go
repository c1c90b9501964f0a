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

// Kind classifies a declared argument.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Positional is a regular positional (or positional-or-keyword) argument.
	Positional Kind = iota // positional

	// VarPositional collects surplus positional arguments (*args, ...T).
	VarPositional // vararg

	// KeywordOnly can only be passed by keyword.
	KeywordOnly // kwonly

	// VarKeyword collects surplus keyword arguments (**kwargs).
	VarKeyword // kwarg
)

// Argument is a single declared parameter together with its source line.
type Argument struct {
	Name string
	Line int
	Kind Kind
}

// receiverNames are the implicit receiver names excluded from all checks.
var receiverNames = [...]string{"self", "cls"}

// IsReceiverName reports whether name is an implicit receiver name.
//
// This is a literal name match, it does not verify the argument is actually bound.
func IsReceiverName(name string) bool {
	for _, r := range receiverNames {
		if name == r {
			return true
		}
	}

	return false
}
