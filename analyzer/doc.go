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

// Package analyzer provides the funcargs static analysis pass for Go sources.
//
// # Overview
//
// funcargs checks the layout of function and method signatures:
//
//   - FNA001: a signature written on one line must not have more than
//     -max-single-line-args arguments (default 3).
//   - FNA002: a signature spread over several lines must have only one
//     argument per line.
//
// # Example
//
//	func open(name string, flag int, perm os.FileMode, log *slog.Logger) // FNA001
//
//	func open(name string, flag int, // FNA002
//	    perm os.FileMode, log *slog.Logger)
//
//	func open(
//	    name string,
//	    flag int,
//	    perm os.FileMode,
//	    log *slog.Logger,
//	)
//
// Method receivers are not arguments. Parameters named self or cls are not
// counted either.
//
// Diagnostics can be suppressed with a //nolint:funcargs comment on the
// declaration or in the package comment.
package analyzer
