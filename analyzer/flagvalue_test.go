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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/aftertest/analyzer"
	"fillmore-labs.com/aftertest/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Config
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.Benchmarks,
			args:    []string{"-defer"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.Deferred,
			args:    []string{"-defer=false"},
			want:    false,
		},
		{
			name:    "Unset",
			initial: config.Deferred,
			args:    nil,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Behavior
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.Deferred
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "defer", "inject deferred cleanup calls")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("Deferred enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&flags, config.Fuzz), "fuzz", "also check fuzz targets")

	if err := fs.Parse([]string{"-fuzz=maybe"}); err == nil {
		t.Error("Parse succeeded, want error")
	}

	if flags.Enabled(config.Fuzz) {
		t.Error("Fuzz enabled after invalid value")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.Fuzz)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.Fuzz)
	fs.Var(fv, "fuzz", "also check fuzz targets")

	const expectedUsage = `
  -fuzz
    	also check fuzz targets (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New(WithCleanup("teardown"))

	f := a.Flags.Lookup("cleanup")
	if f == nil {
		t.Fatal("Flag cleanup not registered")
	}

	if got, want := f.DefValue, "teardown"; got != want {
		t.Errorf("cleanup default = %q, want %q", got, want)
	}

	for _, name := range []string{"defer", "benchmarks", "fuzz", "generated"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Flag %s not registered", name)
		}
	}
}
