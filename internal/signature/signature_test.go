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

package signature_test

import (
	"errors"
	"reflect"
	"testing"

	. "fillmore-labs.com/funcargs/internal/signature"
)

func arg(name string, line int) Argument { return Argument{Name: name, Line: line} }

func ptr(a Argument) *Argument { return &a }

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		decl Declaration
		want []Argument
	}{
		{
			name: "empty",
			decl: Declaration{Line: 1},
			want: []Argument{},
		},
		{
			name: "fixed_order",
			decl: Declaration{Line: 1, Params: Parameters{
				Positional:    []Argument{arg("arg1", 1)},
				VarPositional: ptr(arg("args", 2)),
				KeywordOnly:   []Argument{arg("kwarg1", 3), arg("kwarg2", 4)},
				VarKeyword:    ptr(arg("kwargs", 5)),
			}},
			want: []Argument{
				{Name: "arg1", Line: 1, Kind: Positional},
				{Name: "args", Line: 2, Kind: VarPositional},
				{Name: "kwarg1", Line: 3, Kind: KeywordOnly},
				{Name: "kwarg2", Line: 4, Kind: KeywordOnly},
				{Name: "kwargs", Line: 5, Kind: VarKeyword},
			},
		},
		{
			name: "self",
			decl: Declaration{Line: 1, Params: Parameters{
				Positional: []Argument{arg("self", 1), arg("a", 1)},
			}},
			want: []Argument{{Name: "a", Line: 1, Kind: Positional}},
		},
		{
			name: "cls_anywhere",
			decl: Declaration{Line: 1, Params: Parameters{
				Positional:  []Argument{arg("a", 2)},
				KeywordOnly: []Argument{arg("cls", 3)},
				VarKeyword:  ptr(arg("self", 4)),
			}},
			want: []Argument{{Name: "a", Line: 2, Kind: Positional}},
		},
		{
			name: "receiver_like",
			decl: Declaration{Line: 1, Params: Parameters{
				Positional: []Argument{arg("this", 1), arg("klass", 1), arg("Self", 1)},
			}},
			want: []Argument{
				{Name: "this", Line: 1, Kind: Positional},
				{Name: "klass", Line: 1, Kind: Positional},
				{Name: "Self", Line: 1, Kind: Positional},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Extract(tt.decl)

			if got.Line != tt.decl.Line {
				t.Errorf("Extract() line = %d, want %d", got.Line, tt.decl.Line)
			}

			if !reflect.DeepEqual(got.Args, tt.want) {
				t.Errorf("Extract() args = %v, want %v", got.Args, tt.want)
			}
		})
	}
}

func TestSignatureLines(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name      string
		sig       Signature
		allOnLine bool
		lines     int
	}{
		{"empty", Signature{Line: 3}, true, 0},
		{"single_line", Signature{Line: 3, Args: []Argument{arg("a", 3), arg("b", 3)}}, true, 1},
		{"continuation", Signature{Line: 3, Args: []Argument{arg("a", 3), arg("b", 4)}}, false, 2},
		{"shared", Signature{Line: 3, Args: []Argument{arg("a", 4), arg("b", 4)}}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.sig.AllOnLine(); got != tt.allOnLine {
				t.Errorf("AllOnLine() = %t, want %t", got, tt.allOnLine)
			}

			if got := tt.sig.MultiLine(); got == tt.allOnLine {
				t.Errorf("MultiLine() = %t, want %t", got, !tt.allOnLine)
			}

			if got := tt.sig.Lines(); got != tt.lines {
				t.Errorf("Lines() = %d, want %d", got, tt.lines)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		decl    Declaration
		wantErr bool
	}{
		{"valid", Declaration{Line: 1, Params: Parameters{Positional: []Argument{arg("a", 1)}}}, false},
		{"empty", Declaration{Line: 1}, false},
		{"no_line", Declaration{Name: "f"}, true},
		{"arg_without_line", Declaration{Line: 1, Params: Parameters{VarKeyword: ptr(arg("kw", 0))}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.decl.Validate()
			if got := errors.Is(err, ErrInvalidDeclaration); got != tt.wantErr {
				t.Errorf("Validate() = %v, want error %t", err, tt.wantErr)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{
		Positional:    "positional",
		VarPositional: "vararg",
		KeywordOnly:   "kwonly",
		VarKeyword:    "kwarg",
		Kind(9):       "Kind(9)",
	} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
