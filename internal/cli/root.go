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

// Package cli provides the pyfuncargs command line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/funcargs/internal/pycheck"
	"fillmore-labs.com/funcargs/internal/rules"
)

// ErrFindings is returned when the checked files have findings.
var ErrFindings = errors.New("findings reported")

// Version information (set at build time).
var Version = "devel"

// NewRootCmd creates the pyfuncargs root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "pyfuncargs [paths...]",
		Short: "Check the argument layout of Python function signatures",
		Long: `pyfuncargs checks Python function definitions:

  FNA001  a single line signature has more than --max-single-line-args arguments
  FNA002  a multiline signature has more than one argument on a line

Directories are searched recursively for *.py files. Arguments named self
and cls are not counted.`,
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			return run(cmd, cfg, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./"+DefaultConfigFile+")")
	cmd.Flags().Int("max-single-line-args", rules.DefaultMaxSingleLineArgs, "maximum number of arguments in a single line signature")
	cmd.Flags().StringSlice("disable", nil, "rules to disable (FNA001, FNA002)")
	cmd.Flags().IntP("jobs", "j", 0, "number of files checked concurrently (default: GOMAXPROCS)")
	cmd.Flags().BoolP("verbose", "v", false, "verbose output")

	_ = cmd.RegisterFlagCompletionFunc("disable", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		ids := make([]string, 0, len(rules.All))
		for _, id := range rules.All {
			ids = append(ids, string(id))
		}

		return ids, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func run(cmd *cobra.Command, cfg *Config, paths []string) error {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if cfg.File != "" {
		logger.Debug("Using config file", "file", cfg.File)
	}

	rc, err := cfg.Rules()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	c := pycheck.Checker{Config: rc, Jobs: cfg.Jobs, Logger: logger}

	findings, err := c.CheckPaths(cmd.Context(), paths...)

	out := cmd.OutOrStdout()
	for _, f := range findings {
		fmt.Fprintln(out, f)
	}

	if err != nil {
		return err
	}

	if len(findings) > 0 {
		return fmt.Errorf("%d %w", len(findings), ErrFindings)
	}

	return nil
}
