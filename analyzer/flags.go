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

package analyzer

import (
	"flag"

	"fillmore-labs.com/funcargs/internal/config"
	"fillmore-labs.com/funcargs/internal/rules"
	"fillmore-labs.com/funcargs/internal/run"
)

func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.IntVar(&r.Rules.MaxSingleLineArgs, "max-single-line-args", r.Rules.MaxSingleLineArgs,
		"maximum number of arguments in a single line function signature")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newRuleValue(&r.Rules.Rules, config.SingleLineArgs), "fna001",
		"enable "+string(rules.SingleLineArgs)+": too many arguments in a single line signature")
	flags.Var(newRuleValue(&r.Rules.Rules, config.OneArgPerLine), "fna002",
		"enable "+string(rules.OneArgPerLine)+": more than one argument per line in a multiline signature")
}
