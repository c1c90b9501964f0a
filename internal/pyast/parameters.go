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

package pyast

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/funcargs/internal/signature"
)

// declaration translates a function_definition node.
func (f *File) declaration(n *sitter.Node) (signature.Declaration, error) {
	d := signature.Declaration{Line: line(n)}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c.Type() == "def" {
			d.Line = line(c)

			break
		}
	}

	if name := n.ChildByFieldName("name"); name != nil {
		d.Name = name.Content(f.src)
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		p, err := f.parameters(params)
		if err != nil {
			return signature.Declaration{}, fmt.Errorf("%w %q: %w", signature.ErrInvalidDeclaration, d.Name, err)
		}

		d.Params = p
	}

	return d, nil
}

// parameters sorts the children of a parameters node into their kinds.
// Arguments before a bare / are positional-only and dropped, everything
// after a bare * or *args is keyword-only.
func (f *File) parameters(params *sitter.Node) (signature.Parameters, error) {
	var (
		p           signature.Parameters
		keywordOnly bool
	)

	for i := range int(params.NamedChildCount()) {
		param := params.NamedChild(i)

		switch param.Type() {
		case "keyword_separator":
			keywordOnly = true

		case "positional_separator":
			p.Positional = nil

		case "comment", "line_continuation":
			// no argument

		default:
			arg, kind, ok := f.argument(param)
			if !ok {
				return signature.Parameters{}, fmt.Errorf("unsupported parameter %s at line %d", param.Type(), line(param))
			}

			switch {
			case kind == signature.VarPositional:
				arg.Kind = kind
				p.VarPositional = &arg
				keywordOnly = true

			case kind == signature.VarKeyword:
				arg.Kind = kind
				p.VarKeyword = &arg

			case keywordOnly:
				arg.Kind = signature.KeywordOnly
				p.KeywordOnly = append(p.KeywordOnly, arg)

			default:
				p.Positional = append(p.Positional, arg)
			}
		}
	}

	return p, nil
}

// argument extracts the name and line of a single parameter node.
func (f *File) argument(param *sitter.Node) (signature.Argument, signature.Kind, bool) {
	switch param.Type() {
	case "identifier":
		return signature.Argument{Name: param.Content(f.src), Line: line(param)}, signature.Positional, true

	case "default_parameter", "typed_default_parameter":
		name := param.ChildByFieldName("name")
		if name == nil {
			return signature.Argument{}, 0, false
		}

		return f.argument(name)

	case "typed_parameter":
		if param.NamedChildCount() == 0 {
			return signature.Argument{}, 0, false
		}

		return f.argument(param.NamedChild(0))

	case "list_splat_pattern":
		arg, ok := f.splatName(param)

		return arg, signature.VarPositional, ok

	case "dictionary_splat_pattern":
		arg, ok := f.splatName(param)

		return arg, signature.VarKeyword, ok

	default:
		return signature.Argument{}, 0, false
	}
}

// splatName extracts the name of *args or **kwargs.
func (f *File) splatName(splat *sitter.Node) (signature.Argument, bool) {
	if splat.NamedChildCount() == 0 {
		return signature.Argument{}, false
	}

	arg, _, ok := f.argument(splat.NamedChild(0))

	return arg, ok
}
