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

package rules

import (
	"fmt"

	"fillmore-labs.com/funcargs/internal/signature"
)

const oneArgPerLineMessage = "Function should have only one argument per line in multiline definition."

// CheckDeclaration extracts the signature of a declaration and evaluates it.
//
// Malformed declarations are a host defect and are returned as an error, never as a finding.
func CheckDeclaration(d signature.Declaration, c Config) ([]Diagnostic, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return Evaluate(signature.Extract(d), c), nil
}

// Evaluate applies the enabled rules to a signature and returns zero, one or two diagnostics.
func Evaluate(s signature.Signature, c Config) []Diagnostic {
	var diagnostics []Diagnostic

	if c.Enabled(SingleLineArgs) && tooManySingleLineArgs(s, c.MaxSingleLineArgs) {
		diagnostics = append(diagnostics, Diagnostic{
			Line:    s.Line,
			Rule:    SingleLineArgs,
			Message: fmt.Sprintf("Function should not have more than %d single line arguments.", c.MaxSingleLineArgs),
		})
	}

	if c.Enabled(OneArgPerLine) && sharedContinuationLine(s) {
		diagnostics = append(diagnostics, Diagnostic{
			Line:    s.Line,
			Rule:    OneArgPerLine,
			Message: oneArgPerLineMessage,
		})
	}

	return diagnostics
}

// tooManySingleLineArgs implements FNA001.
func tooManySingleLineArgs(s signature.Signature, maxArgs int) bool {
	return s.AllOnLine() && len(s.Args) > maxArgs
}

// sharedContinuationLine implements FNA002. The declaration line is treated like any other line.
func sharedContinuationLine(s signature.Signature) bool {
	return s.MultiLine() && len(s.Args) > s.Lines()
}
