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

package pycheck_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fillmore-labs.com/funcargs/internal/pyast"
	. "fillmore-labs.com/funcargs/internal/pycheck"
	"fillmore-labs.com/funcargs/internal/rules"
	"fillmore-labs.com/funcargs/internal/signature"
)

func results(t *testing.T, src string) []string {
	t.Helper()

	c := Checker{Config: rules.DefaultConfig()}

	diagnostics, err := c.CheckSource(t.Context(), []byte(src))
	if err != nil {
		t.Fatalf("CheckSource failed: %v", err)
	}

	var s []string
	for _, d := range diagnostics {
		s = append(s, d.String())
	}

	return s
}

func TestCheckSource(t *testing.T) {
	t.Parallel()

	const (
		fna001 = "1:0 FNA001 Function should not have more than 3 single line arguments."
		fna002 = "1:0 FNA002 Function should have only one argument per line in multiline definition."
	)

	tests := [...]struct {
		name string
		src  string
		want []string
	}{
		{"empty_file", "", nil},
		{"three_args", "def f(a, b, c): pass", nil},
		{"four_args", "def f(a, b, c, d): pass", []string{fna001}},
		{"no_args", "def f(): pass", nil},
		{"multiline_1", "def f(a, b, \n    c, d,\n):\n    pass\n    ", []string{fna002}},
		{"multiline_2", "def f(\n    a, b, \n    c, d,\n):\n    pass\n    ", []string{fna002}},
		{"multiline_3", "def f(\n    a, \n    b, \n    c, \n    d,\n):\n    pass\n    ", nil},
		{"kinds_multiline", "def func(\n        arg1,\n        arg2,\n        *args,\n        kwarg1='',\n        kwarg2='',\n        **kwargs,\n):\n    pass\n    ", nil},
		{"kinds_pass_1", "def func(arg1, *args, kwarg1=None): pass", nil},
		{"kinds_pass_2", "def func(*args, kwarg1=None, **kwargs):  pass", nil},
		{"kinds_pass_3", "def func(arg1, kwarg1=None, **kwargs):  pass", nil},
		{"kinds_fail", "def func(arg1, *args, kwarg1=None, **kwargs): pass", []string{fna001}},
		{"method_self", "class C:\n    def m(self, a, b, c): pass\n", nil},
		{"method_four", "class C:\n    def m(self, a, b, c, d): pass\n", []string{"2:0 FNA001 Function should not have more than 3 single line arguments."}},
		{"classmethod_cls", "class C:\n    @classmethod\n    def m(cls, a,\n          b): pass\n", nil},
		{"positional_only", "def f(a, b, /, c, d): pass", nil},
		{"positional_only_fail", "def f(a, /, b, c, d, e): pass", []string{fna001}},
		{"nested", "def outer():\n    def inner(a, b, c, d): pass\n", []string{"2:0 FNA001 Function should not have more than 3 single line arguments."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := results(t, tt.src)
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("CheckSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Can't create directory: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Can't write %s: %v", path, err)
	}
}

func TestCheckPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.py"), "def f(a, b, c, d): pass\n")
	writeFile(t, filepath.Join(dir, "pkg", "a.py"), "def f(a, b,\n      c): pass\n\ndef g(a, b, c, d, e): pass\n")
	writeFile(t, filepath.Join(dir, "pkg", "notes.txt"), "def f(a, b, c, d): pass\n")
	writeFile(t, filepath.Join(dir, ".venv", "lib.py"), "def f(a, b, c, d): pass\n")

	c := Checker{Config: rules.DefaultConfig(), Jobs: 2}

	findings, err := c.CheckPaths(t.Context(), dir)
	if err != nil {
		t.Fatalf("CheckPaths failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "b.py") + ":1:0: FNA001 Function should not have more than 3 single line arguments.",
		filepath.Join(dir, "pkg", "a.py") + ":1:0: FNA002 Function should have only one argument per line in multiline definition.",
		filepath.Join(dir, "pkg", "a.py") + ":4:0: FNA001 Function should not have more than 3 single line arguments.",
	}

	if len(findings) != len(want) {
		t.Fatalf("CheckPaths() = %v, want %d findings", findings, len(want))
	}

	for i, f := range findings {
		if got := f.String(); got != want[i] {
			t.Errorf("Finding %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestCheckPathsErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.py")
	writeFile(t, broken, "def f(a, b:\n    pass\n")

	c := Checker{Config: rules.DefaultConfig()}

	if _, err := c.CheckPaths(t.Context(), broken); !errors.Is(err, pyast.ErrSyntax) {
		t.Errorf("CheckPaths() error = %v, want %v", err, pyast.ErrSyntax)
	}

	if _, err := c.CheckPaths(t.Context(), filepath.Join(dir, "missing.py")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("CheckPaths() error = %v, want %v", err, os.ErrNotExist)
	}

	c.Config.MaxSingleLineArgs = -1
	if _, err := c.CheckPaths(t.Context(), dir); !errors.Is(err, rules.ErrInvalidConfig) {
		t.Errorf("CheckPaths() error = %v, want %v", err, rules.ErrInvalidConfig)
	}
}

func TestCheckSourceUnsupportedParameter(t *testing.T) {
	t.Parallel()

	c := Checker{Config: rules.DefaultConfig()}

	diagnostics, err := c.CheckSource(t.Context(), []byte("def f(a, (b, c)): pass\n\ndef g(a, b, c, d): pass\n"))
	if !errors.Is(err, signature.ErrInvalidDeclaration) {
		t.Errorf("CheckSource() error = %v, want %v", err, signature.ErrInvalidDeclaration)
	}

	if len(diagnostics) != 1 || diagnostics[0].Line != 3 || diagnostics[0].Rule != rules.SingleLineArgs {
		t.Errorf("CheckSource() = %v, want FNA001 on line 3", diagnostics)
	}
}

func TestCheckPathsPartialFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.py")
	writeFile(t, good, "def f(a, b, c, d): pass\n")
	writeFile(t, filepath.Join(dir, "broken.py"), "def g(:\n")

	c := Checker{Config: rules.DefaultConfig(), Jobs: 1}

	findings, err := c.CheckPaths(t.Context(), dir)
	if !errors.Is(err, pyast.ErrSyntax) {
		t.Errorf("CheckPaths() error = %v, want %v", err, pyast.ErrSyntax)
	}

	if err != nil && !strings.Contains(err.Error(), "broken.py") {
		t.Errorf("CheckPaths() error = %q, want the broken file named", err)
	}

	want := good + ":1:0: FNA001 Function should not have more than 3 single line arguments."
	if len(findings) != 1 || findings[0].String() != want {
		t.Errorf("CheckPaths() = %v, want [%s]", findings, want)
	}
}
