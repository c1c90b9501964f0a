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

package max

func five(a, b, c, d, e int) {}

func six(a, b, c, d, e, f int) {} // want "FNA001 Function should not have more than 5 single line arguments\\."

func shared(a, b int, // want "FNA002 Function should have only one argument per line in multiline definition\\."
	c, d int,
) {
}
