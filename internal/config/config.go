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

package config

// Rules selects the enabled layout rules.
type Rules uint8

const (
	// SingleLineArgs enables FNA001, the single-line argument count check.
	SingleLineArgs Rules = 1 << iota

	// OneArgPerLine enables FNA002, the one-argument-per-line check for multi-line signatures.
	OneArgPerLine
)

// DefaultRules returns the rules enabled by default.
func DefaultRules() BitMask[Rules] {
	return NewBitMask(SingleLineArgs, OneArgPerLine)
}

// Behavior holds behavioral options of the Go analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)

// DefaultBehavior returns the default behavior.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask[Behavior]()
}
