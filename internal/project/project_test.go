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

package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/aftertest/internal/project"
	"fillmore-labs.com/aftertest/transform"
)

func writeConfig(tb testing.TB, dir, content string) string {
	tb.Helper()

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("Can't write configuration: %v", err)
	}

	return path
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := writeConfig(t, root, `
cleanup = "reset(t)"
defer = true
jobs = 4
`)

	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o700); err != nil {
		t.Fatalf("Can't create directory: %v", err)
	}

	p, ok, err := Discover(sub)
	if err != nil || !ok {
		t.Fatalf("Discover() = %t, %v", ok, err)
	}

	if p.Path != path || p.Root != root {
		t.Errorf("Found %s in %s, want %s", p.Path, p.Root, path)
	}

	cfg := transform.DefaultConfig()
	p.Config.Apply(&cfg)

	want := transform.Config{Cleanup: "reset(t)", Defer: true, Format: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}

	if got, want := p.Config.JobsOr(1), 4; got != want {
		t.Errorf("JobsOr() = %d, want %d", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"Unknown", "cleanup = \"reset\"\nverbose = true\n", ErrUnknownKeys},
		{"Syntax", "cleanup = \n", nil},
		{"Type", "defer = \"yes\"\n", nil},
		{"NegativeJobs", "jobs = -1\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded")
			}

			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("Load() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestJobsOr(t *testing.T) {
	t.Parallel()

	zero := 0

	if got := (Config{Jobs: &zero}).JobsOr(8); got != 8 {
		t.Errorf("JobsOr() = %d, want 8", got)
	}

	if got := (Config{}).JobsOr(2); got != 2 {
		t.Errorf("JobsOr() = %d, want 2", got)
	}
}
