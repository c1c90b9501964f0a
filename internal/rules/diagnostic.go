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
	"strings"

	"fillmore-labs.com/funcargs/internal/config"
)

// ID identifies a rule.
type ID string

const (
	// SingleLineArgs limits the number of arguments on a single-line signature.
	SingleLineArgs ID = "FNA001"

	// OneArgPerLine requires one argument per line in a multi-line signature.
	OneArgPerLine ID = "FNA002"
)

// All lists every rule in evaluation order.
var All = [...]ID{SingleLineArgs, OneArgPerLine}

// ParseID parses a rule ID, ignoring case.
func ParseID(s string) (ID, error) {
	id := ID(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := id.flag(); !ok {
		return "", fmt.Errorf("%w: unknown rule %q", ErrInvalidConfig, s)
	}

	return id, nil
}

func (id ID) flag() (config.Rules, bool) {
	switch id {
	case SingleLineArgs:
		return config.SingleLineArgs, true

	case OneArgPerLine:
		return config.OneArgPerLine, true

	default:
		return 0, false
	}
}

// Diagnostic is a single finding. Column is always 0, the rules work on declarations.
type Diagnostic struct {
	Line    int
	Column  int
	Rule    ID
	Message string
}

// Text returns the rule ID followed by the message.
func (d Diagnostic) Text() string {
	return string(d.Rule) + " " + d.Message
}

// String renders the diagnostic as "{line}:{column} {rule} {message}".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d %s", d.Line, d.Column, d.Text())
}
