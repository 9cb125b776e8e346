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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/aftertest/transform"
)

const testFile = `//aftertest:cleanup cleanup

package a

import "testing"

func TestA(t *testing.T) {
	t.Log("a")
}
`

const rewritten = `//aftertest:cleanup cleanup

package a

import "testing"

func TestA(t *testing.T) {
	t.Log("a")
	cleanup()
}
`

func writeFiles(tb testing.TB, files map[string]string) string {
	tb.Helper()

	root := tb.TempDir()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			tb.Fatalf("Can't create directory: %v", err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			tb.Fatalf("Can't write %s: %v", name, err)
		}
	}

	return root
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{
		"a.go":              "package a\n",
		"a_test.go":         "package a\n",
		"README.md":         "",
		"sub/b_test.go":     "package sub\n",
		"testdata/c.go":     "package c\n",
		"vendor/d/d.go":     "package d\n",
		".hidden/e.go":      "package e\n",
		"_skipped/f.go":     "package f\n",
		"sub/.editor.go":    "",
		"sub/deeper/g.go":   "package deeper\n",
		"sub/deeper/h.txt":  "",
		"sub/deeper/i_test": "",
	})

	files, err := collectFiles([]string{root})
	if err != nil {
		t.Fatalf("collectFiles failed: %v", err)
	}

	got := make([]string, 0, len(files))
	for _, f := range files {
		rel, _ := filepath.Rel(root, f)
		got = append(got, filepath.ToSlash(rel))
	}

	want := []string{"a.go", "a_test.go", "sub/b_test.go", "sub/deeper/g.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("collectFiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewritePaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      bool
		list       bool
		wantStdout string
		wantFile   string
	}{
		{"Print", false, false, rewritten, testFile},
		{"List", false, true, "a_test.go\n", testFile},
		{"Write", true, false, "", rewritten},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writeFiles(t, map[string]string{
				"a_test.go": testFile,
				"a.go":      "package a\n\nfunc cleanup() {}\n",
			})

			opts := rewriteOptions{cfg: transform.DefaultConfig(), write: tt.write, list: tt.list, jobs: 2}

			var stdout, stderr strings.Builder

			found, err := rewritePaths(context.Background(), []string{root}, opts, &stdout, &stderr)
			if err != nil {
				t.Fatalf("rewritePaths failed: %v", err)
			}

			if found {
				t.Errorf("Unexpected diagnostics: %s", stderr.String())
			}

			got := strings.ReplaceAll(stdout.String(), filepath.Join(root, ""), "")
			got = strings.TrimPrefix(got, string(filepath.Separator))
			if got != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", got, tt.wantStdout)
			}

			content, err := os.ReadFile(filepath.Join(root, "a_test.go"))
			if err != nil {
				t.Fatalf("Can't read result: %v", err)
			}

			if string(content) != tt.wantFile {
				t.Errorf("File content = %q, want %q", content, tt.wantFile)
			}
		})
	}
}

func TestRewritePathsDiagnostics(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{
		"helper.go": "//aftertest:cleanup cleanup now\n\npackage a\n",
	})

	opts := rewriteOptions{cfg: transform.DefaultConfig(), list: true, jobs: 1}

	var stdout, stderr strings.Builder

	found, err := rewritePaths(context.Background(), []string{filepath.Join(root, "helper.go")}, opts, &stdout, &stderr)
	if err != nil {
		t.Fatalf("rewritePaths failed: %v", err)
	}

	if !found {
		t.Error("Expected diagnostics")
	}

	out := stderr.String()
	for _, want := range []string{"(at:spc)", "(at:mrk)", "helper.go:1:21: error:"} {
		if !strings.Contains(out, want) {
			t.Errorf("stderr = %q, want %q", out, want)
		}
	}

	if stdout.Len() != 0 {
		t.Errorf("Unexpected output %q", stdout.String())
	}
}

func TestSkipDir(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"testdata": true,
		"vendor":   true,
		".git":     true,
		"_build":   true,
		"internal": false,
	} {
		if got := skipDir(name); got != want {
			t.Errorf("skipDir(%q) = %t, want %t", name, got, want)
		}
	}
}
