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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/funcargs/internal/astutil"
	"fillmore-labs.com/funcargs/internal/config"
	"fillmore-labs.com/funcargs/internal/rules"
)

// ErrResultMissing is returned when a required analyzer result is missing.
var ErrResultMissing = errors.New("analyzer result missing")

// Run checks every function and method declaration of the package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("funcargs: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if err := r.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("funcargs: %w", err)
	}

	if r.Rules.Rules.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "FuncArgs")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if currentFile.NoLintDecl(fun) {
				continue
			}

			r.checkDeclaration(p, currentFile, fun)
		}
	}

	return nil, nil
}

func (r *Options) checkDeclaration(p *analysis.Pass, currentFile astutil.CurrentFile, fun *ast.FuncDecl) {
	diagnostics, err := rules.CheckDeclaration(currentFile.Declaration(fun), r.Rules)
	if err != nil {
		astutil.InternalError(p, fun.Type, "%v", err)

		return
	}

	for _, d := range diagnostics {
		pos := currentFile.LineStart(d.Line)

		p.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: string(d.Rule),
			Message:  d.Text(),
		})
	}
}
