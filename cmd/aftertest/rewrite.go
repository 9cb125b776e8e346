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

package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/aftertest/internal/diagfmt"
	"fillmore-labs.com/aftertest/internal/project"
	"fillmore-labs.com/aftertest/transform"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] [path...]",
	Short: "Inject cleanup calls into test functions",
	Long: `rewrite processes the named Go files, or all Go files below the named directories,
and prints the rewritten sources. Directories named testdata or vendor and directories
starting with "." or "_" are skipped.`,
	RunE: runRewrite,
}

var rewriteFlags struct {
	write      bool
	list       bool
	cleanup    string
	deferred   bool
	benchmarks bool
	fuzz       bool
	generated  bool
	noFormat   bool
	jobs       int
}

func init() {
	f := rewriteCmd.Flags()
	f.BoolVarP(&rewriteFlags.write, "write", "w", false, "write result to the source file instead of stdout")
	f.BoolVarP(&rewriteFlags.list, "list", "l", false, "list files whose content would change")
	f.StringVar(&rewriteFlags.cleanup, "cleanup", "", "cleanup directive for test files without an //aftertest:cleanup comment")
	f.BoolVar(&rewriteFlags.deferred, "defer", false, "inject a deferred cleanup call as the first statement")
	f.BoolVar(&rewriteFlags.benchmarks, "benchmarks", false, "also rewrite benchmark functions")
	f.BoolVar(&rewriteFlags.fuzz, "fuzz", false, "also rewrite fuzz targets")
	f.BoolVar(&rewriteFlags.generated, "generated", false, "also rewrite generated files")
	f.BoolVar(&rewriteFlags.noFormat, "no-format", false, "don't gofmt the rewritten files")
	f.IntVarP(&rewriteFlags.jobs, "jobs", "j", 0, "number of files processed in parallel (default: GOMAXPROCS)")
}

// rewriteOptions configures a rewrite run.
type rewriteOptions struct {
	cfg   transform.Config
	write bool
	list  bool
	jobs  int
	print diagfmt.Options
}

func runRewrite(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	slog.Debug("Rewriting", slog.Any("config", opts.cfg), slog.Int("jobs", opts.jobs))

	found, err := rewritePaths(cmd.Context(), args, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if found {
		return errFindings
	}

	return nil
}

// resolveOptions merges defaults, the project configuration and explicitly set flags, in that order.
func resolveOptions(cmd *cobra.Command) (rewriteOptions, error) {
	opts := rewriteOptions{
		cfg:   transform.DefaultConfig(),
		write: rewriteFlags.write,
		list:  rewriteFlags.list,
		jobs:  runtime.GOMAXPROCS(0),
		print: diagfmt.Options{Color: useColor(stderrFile(cmd)), Context: true},
	}

	p, err := loadProject()
	if err != nil {
		return opts, err
	}

	if p != nil {
		slog.Debug("Using project configuration", slog.String("path", p.Path))
		p.Config.Apply(&opts.cfg)
		opts.jobs = p.Config.JobsOr(opts.jobs)
	}

	flags := cmd.Flags()

	if flags.Changed("cleanup") {
		opts.cfg.Cleanup = rewriteFlags.cleanup
	}

	if flags.Changed("defer") {
		opts.cfg.Defer = rewriteFlags.deferred
	}

	if flags.Changed("benchmarks") {
		opts.cfg.Benchmarks = rewriteFlags.benchmarks
	}

	if flags.Changed("fuzz") {
		opts.cfg.Fuzz = rewriteFlags.fuzz
	}

	if flags.Changed("generated") {
		opts.cfg.Generated = rewriteFlags.generated
	}

	if flags.Changed("no-format") {
		opts.cfg.Format = !rewriteFlags.noFormat
	}

	if flags.Changed("jobs") && rewriteFlags.jobs > 0 {
		opts.jobs = rewriteFlags.jobs
	}

	return opts, nil
}

// loadProject returns the configuration named by --config, or the nearest one. It returns nil without one.
func loadProject() (*project.Project, error) {
	if globals.config != "" {
		return project.Load(globals.config)
	}

	p, _, err := project.Discover(".")

	return p, err
}

// fileResult is the outcome of processing one file.
type fileResult struct {
	path   string
	src    []byte
	result transform.Result
	err    error
}

// rewritePaths processes all Go files named by paths. Results are reported in file order.
// It reports whether any diagnostics were found.
func rewritePaths(ctx context.Context, paths []string, opts rewriteOptions, stdout, stderr io.Writer) (bool, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return false, err
	}

	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(opts.jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = processFile(gctx, path, opts.cfg)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return false, err
	}

	printer := diagfmt.NewPrinter(stderr, opts.print)

	found := false

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", r.path, r.err)

			found = true

			continue
		}

		if len(r.result.Diagnostics) > 0 {
			found = true

			if err := printer.Print(r.result.Container.Fset, r.path, r.src, r.result.Diagnostics); err != nil {
				return found, err
			}
		}

		if err := emit(r, opts, stdout); err != nil {
			return found, err
		}
	}

	return found, nil
}

// processFile reads and transforms a single file.
func processFile(ctx context.Context, path string, cfg transform.Config) fileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	result, err := transform.Source(ctx, path, src, cfg)
	if err != nil {
		return fileResult{path: path, src: src, err: err}
	}

	slog.Debug("Processed", slog.String("file", path), slog.Bool("applied", result.Applied),
		slog.Bool("changed", result.Changed()), slog.Int("diagnostics", len(result.Diagnostics)))

	return fileResult{path: path, src: src, result: result}
}

// emit writes the outcome of one file according to the output mode.
func emit(r fileResult, opts rewriteOptions, stdout io.Writer) error {
	if !r.result.Applied {
		return nil
	}

	changed := r.result.Changed()

	if opts.list && changed {
		if _, err := fmt.Fprintln(stdout, r.path); err != nil {
			return err
		}
	}

	if opts.write {
		if !changed {
			return nil
		}

		info, err := os.Stat(r.path)
		if err != nil {
			return err
		}

		return os.WriteFile(r.path, r.result.Output, info.Mode().Perm())
	}

	if opts.list {
		return nil
	}

	_, err := stdout.Write(r.result.Output)

	return err
}

// collectFiles expands directories to the Go files they contain.
func collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, root)

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if strings.HasSuffix(d.Name(), ".go") && !strings.HasPrefix(d.Name(), ".") {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// skipDir reports whether a directory is excluded from the walk, like the go tool does.
func skipDir(name string) bool {
	return name == "testdata" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
