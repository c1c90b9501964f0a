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

// Package rules evaluates the function argument layout rules on an extracted signature.
//
// # Rules
//
//   - FNA001: a single-line signature must not have more than the configured
//     number of arguments.
//   - FNA002: a multi-line signature must have only one argument per line.
//
// Both rules report at the declaration line, column 0. Implicit receivers
// (self, cls) never count. The rules are mutually exclusive: FNA001 requires
// every argument on the declaration line, FNA002 at least one elsewhere.
//
// # Example
//
//	def f(a, b, c, d): pass   # FNA001
//
//	def f(a, b,
//	      c, d): pass         # FNA002
//
//	def f(
//	    a,
//	    b,
//	    c,
//	    d,
//	): pass                   # ok
package rules
