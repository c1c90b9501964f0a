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

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"fillmore-labs.com/funcargs/internal/rules"
)

const (
	// DefaultConfigFile is read from the working directory when no --config is given.
	DefaultConfigFile = ".funcargs.yaml"

	envPrefix = "FUNCARGS_"
)

// Config holds the command line configuration.
type Config struct {
	MaxSingleLineArgs int      `koanf:"max_single_line_args"`
	Disable           []string `koanf:"disable"`
	Jobs              int      `koanf:"jobs"`
	Verbose           bool     `koanf:"verbose"`

	// File is the configuration file used, if any.
	File string `koanf:"-"`
}

// LoadConfig loads configuration from defaults, file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"max_single_line_args": rules.DefaultMaxSingleLineArgs,
		"disable":              []string{},
		"jobs":                 0,
		"verbose":              false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load config file, an explicit one must exist
	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}

	if used != "" {
		if err := loadFile(k, used); err != nil {
			return nil, err
		}
	}

	// 3. Load environment variables, FUNCARGS_MAX_SINGLE_LINE_ARGS -> max_single_line_args
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Jobs < 0 {
		return nil, fmt.Errorf("%w: jobs must not be negative, got %d", rules.ErrInvalidConfig, cfg.Jobs)
	}

	cfg.File = used

	return &cfg, nil
}

// loadFile merges a YAML config file into k. Keys may be written like the
// flags (max-single-line-args) or snake case (max_single_line_args).
func loadFile(k *koanf.Koanf, path string) error {
	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}

	values := make(map[string]any, len(fk.Keys()))
	for key, value := range fk.All() {
		values[strings.ReplaceAll(key, "-", "_")] = value
	}

	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return nil
}

// Rules converts the configuration into a rule configuration.
// Disabled rules may be given as a list or comma separated.
func (c *Config) Rules() (rules.Config, error) {
	rc := rules.DefaultConfig()
	rc.MaxSingleLineArgs = c.MaxSingleLineArgs

	for _, entry := range c.Disable {
		for s := range strings.SplitSeq(entry, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}

			id, err := rules.ParseID(s)
			if err != nil {
				return rules.Config{}, err
			}

			if err := rc.Enable(id, false); err != nil {
				return rules.Config{}, err
			}
		}
	}

	if err := rc.Validate(); err != nil {
		return rules.Config{}, err
	}

	return rc, nil
}
