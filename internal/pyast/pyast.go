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

// Package pyast parses Python sources with tree-sitter and enumerates their function declarations.
package pyast

import (
	"context"
	"errors"
	"fmt"
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"fillmore-labs.com/funcargs/internal/signature"
)

// ErrSyntax is returned for sources that don't parse as Python.
var ErrSyntax = errors.New("syntax error")

// File is a parsed Python source file.
type File struct {
	tree *sitter.Tree
	src  []byte
}

// Parse parses src as Python source.
func Parse(ctx context.Context, src []byte) (*File, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("can't parse source: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		defer tree.Close()

		line, column := errorPosition(root)

		return nil, fmt.Errorf("%w at %d:%d", ErrSyntax, line, column)
	}

	return &File{tree: tree, src: src}, nil
}

// Close releases the syntax tree.
func (f *File) Close() {
	f.tree.Close()
}

// Declarations yields every function declaration in source order, including
// methods and nested functions. Coroutines (async def) are not yielded,
// functions nested inside them are. A declaration with a parameter that can't
// be translated is yielded with an error wrapping [signature.ErrInvalidDeclaration].
func (f *File) Declarations() iter.Seq2[signature.Declaration, error] {
	return func(yield func(signature.Declaration, error) bool) {
		walk(f.tree.RootNode(), func(n *sitter.Node) bool {
			if n.Type() != "function_definition" || isAsync(n) {
				return true
			}

			return yield(f.declaration(n))
		})
	}
}

// walk visits n and its named descendants in preorder until visit returns false.
func walk(n *sitter.Node, visit func(*sitter.Node) bool) bool {
	if !visit(n) {
		return false
	}

	for i := range int(n.NamedChildCount()) {
		if !walk(n.NamedChild(i), visit) {
			return false
		}
	}

	return true
}

func isAsync(n *sitter.Node) bool {
	return n.ChildCount() > 0 && n.Child(0).Type() == "async"
}

// line converts a zero based tree-sitter row into a line number.
func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

func errorPosition(root *sitter.Node) (line, column int) {
	line, column = int(root.StartPoint().Row)+1, int(root.StartPoint().Column)

	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "ERROR" && !n.IsMissing() {
			return true
		}

		line, column = int(n.StartPoint().Row)+1, int(n.StartPoint().Column)

		return false
	})

	return line, column
}
