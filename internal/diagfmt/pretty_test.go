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

package diagfmt_test

import (
	"context"
	"strings"
	"testing"

	. "fillmore-labs.com/aftertest/internal/diagfmt"
	"fillmore-labs.com/aftertest/transform"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	const src = "//aftertest:cleanup cleanup now\n\npackage a\n"

	result, err := transform.Source(context.Background(), "a_test.go", []byte(src), transform.DefaultConfig())
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "Plain",
			want: `a_test.go:1:21: error: Expected cleanup function name, call expression or function literal, got "cleanup now" (at:spc)
  help: use a function name (reset), a call (reset(t)) or a function literal (func() { reset() })
`,
		},
		{
			name: "Context",
			opts: Options{Context: true},
			want: `a_test.go:1:21: error: Expected cleanup function name, call expression or function literal, got "cleanup now" (at:spc)
 1 | //aftertest:cleanup cleanup now
   |                     ^~~~~~~~~~
  help: use a function name (reset), a call (reset(t)) or a function literal (func() { reset() })
`,
		},
		{
			name: "Truncated",
			opts: Options{Context: true, Width: 15},
			want: `a_test.go:1:21: error: Expected cleanup function name, call expression or function literal, got "cleanup now" (at:spc)
 1 | //aftertest:...
   |                     ^~~~~~~~~~
  help: use a function name (reset), a call (reset(t)) or a function literal (func() { reset() })
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder

			p := NewPrinter(&out, tt.opts)
			if err := p.Print(result.Container.Fset, "a_test.go", []byte(src), result.Diagnostics); err != nil {
				t.Fatalf("Print failed: %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintColor(t *testing.T) {
	t.Parallel()

	const src = "//aftertest:cleanup\n\npackage a\n"

	result, err := transform.Source(context.Background(), "a_test.go", []byte(src), transform.DefaultConfig())
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	var out strings.Builder

	p := NewPrinter(&out, Options{Color: true})
	if err := p.Print(result.Container.Fset, "a_test.go", []byte(src), result.Diagnostics); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "\x1b[") || !strings.Contains(got, "Missing cleanup function (at:spc)") {
		t.Errorf("Print() = %q, want colored missing cleanup diagnostic", got)
	}
}
