// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

// Command aftertest injects cleanup calls into Go test functions.
//
// Test files name their cleanup with a directive comment:
//
//	//aftertest:cleanup resetFixtures(t)
//
// and "aftertest rewrite" appends the call to every test function of the file.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errFindings signals diagnostics that were already reported.
var errFindings = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:   "aftertest",
	Short: "Inject cleanup calls into Go test functions",
	Long: `aftertest rewrites Go test files so that every test function ends with the
cleanup call named by the file's //aftertest:cleanup directive.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var globals struct {
	color   string
	verbose bool
	config  string
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().BoolVarP(&globals.verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&globals.config, "config", "", "project configuration file (default: nearest .aftertest.toml)")

	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	rootCmd.Version = version()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "aftertest:", err)
		}

		os.Exit(1)
	}
}

// setup configures logging for all commands.
func setup(*cobra.Command, []string) error {
	level := slog.LevelWarn
	if globals.verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch globals.color {
	case "auto", "on", "off":
		return nil

	default:
		return fmt.Errorf("invalid --color value %q, want auto, on or off", globals.color)
	}
}

// useColor reports whether output to f should be colorized.
func useColor(f *os.File) bool {
	switch globals.color {
	case "on":
		return true

	case "off":
		return false

	default:
		_, noColor := os.LookupEnv("NO_COLOR")

		return !noColor && term.IsTerminal(int(f.Fd()))
	}
}

// stdoutFile returns the output file of cmd, or nil when it is not a file.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)

	return f
}

// stderrFile returns the error output file of cmd, or nil when it is not a file.
func stderrFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.ErrOrStderr().(*os.File)

	return f
}
