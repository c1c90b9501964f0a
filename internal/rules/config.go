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

package rules

import (
	"errors"
	"fmt"
	"log/slog"

	"fillmore-labs.com/funcargs/internal/config"
)

// DefaultMaxSingleLineArgs is the default maximum number of arguments on a single-line signature.
const DefaultMaxSingleLineArgs = 3

// ErrInvalidConfig is returned for configurations that can't be evaluated.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings for one analysis run. It is read-only during evaluation.
type Config struct {
	// MaxSingleLineArgs is the FNA001 threshold.
	MaxSingleLineArgs int

	// Rules holds the enabled rules.
	Rules config.BitMask[config.Rules]
}

// DefaultConfig returns a configuration with all rules enabled and the default threshold.
func DefaultConfig() Config {
	return Config{
		MaxSingleLineArgs: DefaultMaxSingleLineArgs,
		Rules:             config.DefaultRules(),
	}
}

// Validate checks that the threshold is usable.
func (c Config) Validate() error {
	if c.MaxSingleLineArgs < 0 {
		return fmt.Errorf("%w: max-single-line-args must not be negative, got %d", ErrInvalidConfig, c.MaxSingleLineArgs)
	}

	return nil
}

// Enabled reports whether the rule with the given ID is enabled.
func (c Config) Enabled(id ID) bool {
	flag, ok := id.flag()

	return ok && c.Rules.Enabled(flag)
}

// Enable switches the rule with the given ID on or off.
func (c *Config) Enable(id ID, enabled bool) error {
	flag, ok := id.flag()
	if !ok {
		return fmt.Errorf("%w: unknown rule %q", ErrInvalidConfig, id)
	}

	c.Rules.Set(flag, enabled)

	return nil
}

// LogValue implements [slog.LogValuer].
func (c Config) LogValue() slog.Value {
	as := make([]slog.Attr, 0, 1+len(All))
	as = append(as, slog.Int("max-single-line-args", c.MaxSingleLineArgs))

	for _, id := range All {
		as = append(as, slog.Bool(string(id), c.Enabled(id)))
	}

	return slog.GroupValue(as...)
}
