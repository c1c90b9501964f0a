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
	"iter"

	"fillmore-labs.com/funcargs/internal/signature"
)

// Declaration translates a function declaration into its language-neutral form.
//
// The declaration line is the line of the func keyword. Every parameter name is an argument
// at its own line, unnamed parameters count once at the line of their type. A trailing
// variadic parameter is variadic-positional. Receivers and type parameters are not arguments.
func (c CurrentFile) Declaration(fun *ast.FuncDecl) signature.Declaration {
	d := signature.Declaration{
		Name: fun.Name.Name,
		Line: c.Line(fun.Type.Func),
	}

	if fun.Type.Params == nil {
		return d
	}

	for _, field := range fun.Type.Params.List {
		_, variadic := field.Type.(*ast.Ellipsis)

		for arg := range c.fieldArguments(field) {
			if variadic {
				arg.Kind = signature.VarPositional
				d.Params.VarPositional = &arg

				continue
			}

			d.Params.Positional = append(d.Params.Positional, arg)
		}
	}

	return d
}

// fieldArguments yields the arguments declared by one parameter field.
func (c CurrentFile) fieldArguments(field *ast.Field) iter.Seq[signature.Argument] {
	return func(yield func(signature.Argument) bool) {
		if len(field.Names) == 0 {
			yield(signature.Argument{Line: c.Line(field.Type.Pos())})

			return
		}

		for _, id := range field.Names {
			if !yield(signature.Argument{Name: id.Name, Line: c.Line(id.Pos())}) {
				return
			}
		}
	}
}
