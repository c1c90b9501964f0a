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

// Package pycheck runs the function argument rules over Python source files.
package pycheck

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/funcargs/internal/pyast"
	"fillmore-labs.com/funcargs/internal/rules"
)

// Finding is a diagnostic in a specific file.
type Finding struct {
	Path string
	rules.Diagnostic
}

// String renders the finding as "{path}:{line}:{column}: {rule} {message}".
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", f.Path, f.Line, f.Column, f.Text())
}

// Checker checks Python sources. The zero value is not usable, set at least Config.
type Checker struct {
	// Config is the rule configuration, shared read-only by all workers.
	Config rules.Config

	// Jobs limits the number of files checked concurrently, defaults to GOMAXPROCS.
	Jobs int

	// Logger receives debug output, nil discards it.
	Logger *slog.Logger
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return c.Logger
}

// CheckSource checks a single Python source. Declarations that can't be
// translated are reported in the returned error, the others are still checked.
func (c *Checker) CheckSource(ctx context.Context, src []byte) ([]rules.Diagnostic, error) {
	f, err := pyast.Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		diagnostics []rules.Diagnostic
		errs        []error
	)

	for decl, err := range f.Declarations() {
		if err != nil {
			errs = append(errs, err)

			continue
		}

		ds, err := rules.CheckDeclaration(decl, c.Config)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		if len(ds) > 0 {
			c.logger().DebugContext(ctx, "Declaration has findings", "function", decl.Name, "line", decl.Line, "count", len(ds))
		}

		diagnostics = append(diagnostics, ds...)
	}

	return diagnostics, errors.Join(errs...)
}

// CheckFile reads and checks a single Python file. Findings are returned even
// when some declarations of the file could not be checked.
func (c *Checker) CheckFile(ctx context.Context, path string) ([]Finding, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	diagnostics, err := c.CheckSource(ctx, src)
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}

	findings := make([]Finding, 0, len(diagnostics))
	for _, d := range diagnostics {
		findings = append(findings, Finding{Path: path, Diagnostic: d})
	}

	return findings, err
}

// CheckPaths checks files and directories, the latter recursively for *.py files.
// Files are checked concurrently, findings are returned sorted by path, line and rule.
// A file that can't be read or parsed does not stop the others: its error is
// joined into the returned error, in path order, next to the findings of the rest.
func (c *Checker) CheckPaths(ctx context.Context, paths ...string) ([]Finding, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}

	files, err := Expand(paths...)
	if err != nil {
		return nil, err
	}

	c.logger().DebugContext(ctx, "Checking files", "count", len(files), "config", c.Config)

	var (
		mu       sync.Mutex
		findings []Finding
		errs     = make([]error, len(files))
		g        errgroup.Group
	)

	g.SetLimit(cmp.Or(c.Jobs, runtime.GOMAXPROCS(0)))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			found, err := c.CheckFile(ctx, path)
			if err != nil {
				c.logger().DebugContext(ctx, "File check failed", "path", path, "error", err)
				errs[i] = err
			}

			mu.Lock()
			findings = append(findings, found...)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(findings, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Rule, b.Rule),
		)
	})

	return findings, errors.Join(errs...)
}

// Expand resolves paths into the list of Python files to check.
// Explicitly named files are always included, directories contribute their *.py files.
func Expand(paths ...string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir():
				if p != path && isHidden(d.Name()) {
					return filepath.SkipDir
				}

			case filepath.Ext(p) == ".py":
				files = append(files, p)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
