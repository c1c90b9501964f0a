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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// funcargs is the name of the linter.
const funcargs = "funcargs"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Line returns the line number of pos, ignoring //line directives.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// LineStart returns the position of the first character of line, column 0 in diagnostic terms.
func (c CurrentFile) LineStart(line int) token.Pos {
	return c.handle.LineStart(line)
}

// NoLint checks whether the file has a //nolint:funcargs directive in its package comment.
func (c CurrentFile) NoLint() bool {
	return c.file != nil && c.file.Doc != nil && CommentHasNoLint(c.file.Doc.List[len(c.file.Doc.List)-1])
}

// NoLintDecl checks whether a declaration is suppressed, either by the last line of its doc comment
// or by a //nolint:funcargs comment on the line of the func keyword.
func (c CurrentFile) NoLintDecl(fun *ast.FuncDecl) bool {
	if fun.Doc != nil && CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
		return true
	}

	return c.NoLintComment(fun.Type.Func)
}

// NoLintComment checks if a line is followed by a //nolint:funcargs comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the declaration
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.Line(comment.Pos()) != c.Line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:funcargs` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == funcargs || l == "all" {
			return true
		}
	}

	return false
}
