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

import (
	"errors"
	"fmt"
)

// ErrInvalidDeclaration is returned when a host supplies a declaration without valid line positions.
var ErrInvalidDeclaration = errors.New("invalid declaration")

// Parameters mirrors the argument sub-fields of a parsed declaration node.
type Parameters struct {
	Positional    []Argument
	VarPositional *Argument
	KeywordOnly   []Argument
	VarKeyword    *Argument
}

// Declaration is a parsed function or method declaration as handed over by a host parser.
type Declaration struct {
	// Name of the declared function, used for logging only.
	Name string

	// Line is the line of the declaration keyword (def, func).
	Line int

	Params Parameters
}

// Len returns the number of declared parameters, receivers included.
func (p Parameters) Len() int {
	n := len(p.Positional) + len(p.KeywordOnly)
	if p.VarPositional != nil {
		n++
	}

	if p.VarKeyword != nil {
		n++
	}

	return n
}

// Validate checks that the declaration and all its arguments carry positive line numbers.
func (d Declaration) Validate() error {
	if d.Line <= 0 {
		return fmt.Errorf("%w %q: declaration line %d", ErrInvalidDeclaration, d.Name, d.Line)
	}

	for arg := range d.Params.all() {
		if arg.Line <= 0 {
			return fmt.Errorf("%w %q: argument %q line %d", ErrInvalidDeclaration, d.Name, arg.Name, arg.Line)
		}
	}

	return nil
}
