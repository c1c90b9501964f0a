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

// Command pyfuncargs checks the argument layout of Python function signatures.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fillmore-labs.com/funcargs/internal/cli"
)

func main() {
	err := cli.NewRootCmd().ExecuteContext(context.Background())

	switch {
	case err == nil:

	case errors.Is(err, cli.ErrFindings):
		os.Exit(1)

	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
