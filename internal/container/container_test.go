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

package container_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/aftertest/internal/config"
	. "fillmore-labs.com/aftertest/internal/container"
	"fillmore-labs.com/aftertest/internal/diag"
	"fillmore-labs.com/aftertest/internal/testsource"
)

const source = `// Package a is a test.
package a

import (
	"strings"
	"testing"
	tst "testing"
)

var x = 1

// TestA is a test.
func TestA(t *testing.T) {
	t.Log(x)
}

func TestRenamed(t *tst.T) {}

func Test(t *testing.T) {}

func Testable(t *testing.T) {}

func TestMain(m *testing.M) {}

func TestResult(t *testing.T) error { return nil }

func TestGeneric[T any](t *testing.T) {}

func BenchmarkA(b *testing.B) {}

func FuzzA(f *testing.F) {}

type suite struct{}

func (suite) TestMethod(t *testing.T) {}

// TestOptOut is not checked.
//
//nolint:aftertest
func TestOptOut(t *testing.T) {}

// trailing comment
`

func testFunctions(c *Container) []string {
	var names []string
	for fn := range c.TestFunctions() {
		names = append(names, fn.Kind.String()+":"+fn.Name())
	}

	return names
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		behavior config.Behavior
		want     []string
	}{
		{
			name: "Default",
			want: []string{"Test:TestA", "Test:TestRenamed", "Test:Test"},
		},
		{
			name:     "Benchmarks",
			behavior: config.NewBitMask(config.Benchmarks),
			want:     []string{"Test:TestA", "Test:TestRenamed", "Test:Test", "Benchmark:BenchmarkA"},
		},
		{
			name:     "All",
			behavior: config.NewBitMask(config.Benchmarks, config.Fuzz),
			want:     []string{"Test:TestA", "Test:TestRenamed", "Test:Test", "Benchmark:BenchmarkA", "Fuzz:FuzzA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.Parse(t, "a_test.go", source)

			c, err := New(fset, f, []byte(source), tt.behavior)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, testFunctions(c)); diff != "" {
				t.Errorf("TestFunctions() mismatch (-want +got):\n%s", diff)
			}

			if got, want := len(c.Items), len(f.Decls); got != want {
				t.Errorf("Got %d items, want %d", got, want)
			}

			if got := string(c.Bytes()); got != source {
				t.Errorf("Bytes() does not reproduce the source:\n%s", got)
			}
		})
	}
}

func TestNewItems(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, "a_test.go", source)

	c, err := New(fset, f, []byte(source), config.Behavior{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got, want := string(c.Prologue), "// Package a is a test.\npackage a"; got != want {
		t.Errorf("Prologue = %q, want %q", got, want)
	}

	if got, want := string(c.Epilogue), "\n\n// trailing comment\n"; got != want {
		t.Errorf("Epilogue = %q, want %q", got, want)
	}

	fn, ok := c.Items[2].(TestFunction)
	if !ok {
		t.Fatalf("Item 2 is %T, want TestFunction", c.Items[2])
	}

	src := fn.Source()
	if got, want := string(src.Lead), "\n\n"; got != want {
		t.Errorf("Lead = %q, want %q", got, want)
	}

	if got, want := string(src.Text), "// TestA is a test.\nfunc TestA(t *testing.T) {\n\tt.Log(x)\n}"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestNewDotImport(t *testing.T) {
	t.Parallel()

	const src = `package a

import . "testing"

func TestDot(t *T) {}

func TestQualified(t *testing.T) {}
`

	fset, f := testsource.Parse(t, "a_test.go", src)

	c, err := New(fset, f, []byte(src), config.Behavior{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Test:TestDot"}, testFunctions(c)); diff != "" {
		t.Errorf("TestFunctions() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWithoutTesting(t *testing.T) {
	t.Parallel()

	const src = `package a

import _ "testing"

type testing struct{ T int }

func TestA(t *testing.T) {}
`

	fset, f := testsource.Parse(t, "a_test.go", src)

	c, err := New(fset, f, []byte(src), config.Behavior{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if names := testFunctions(c); len(names) != 0 {
		t.Errorf("Got test functions %v, want none", names)
	}
}

func TestNewBrokenDeclaration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"MissingOperand", "{ x := }"},
		{"DanglingOperator", "{\n\tx := 1 +\n}"},
		{"UnclosedBlock", "{\n\tif x {\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := `package a

import "testing"

func TestBroken(t *testing.T) ` + tt.body + `

// helper helps.
func helper() {}

var y = 1

func TestOK(t *testing.T) {}
`

			fset, f := testsource.ParsePartial(t, "a_test.go", src)

			c, err := New(fset, f, []byte(src), config.Behavior{})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			var texts []string
			for _, item := range c.Items {
				texts = append(texts, string(item.Source().Text))
			}

			want := []string{
				`import "testing"`,
				"func TestBroken(t *testing.T) " + tt.body,
				"// helper helps.\nfunc helper() {}",
				"var y = 1",
				"func TestOK(t *testing.T) {}",
			}

			if diff := cmp.Diff(want, texts); diff != "" {
				t.Errorf("Items mismatch (-want +got):\n%s", diff)
			}

			if got := string(c.Bytes()); got != src {
				t.Errorf("Bytes() = %q, want %q", got, src)
			}

			if diff := cmp.Diff([]string{"Test:TestBroken", "Test:TestOK"}, testFunctions(c)); diff != "" {
				t.Errorf("TestFunctions() mismatch (-want +got):\n%s", diff)
			}

			ok, isTest := c.Items[len(c.Items)-1].(TestFunction)
			if !isTest {
				t.Fatalf("Last item is %T, want TestFunction", c.Items[len(c.Items)-1])
			}

			if got, want := c.Offset(ok.Decl.Name.Pos()), strings.Index(src, "TestOK"); got != want {
				t.Errorf("TestOK at offset %d, want %d", got, want)
			}

			if got, want := fset.Position(ok.Src.Pos).Offset, strings.Index(src, "func TestOK"); got != want {
				t.Errorf("Source of TestOK at offset %d, want %d", got, want)
			}
		})
	}
}

func TestNewKeywordInBody(t *testing.T) {
	t.Parallel()

	const src = `package a

import "testing"

func TestA(t *testing.T) {
var x = 1
	_ = x
}
`

	fset, f := testsource.Parse(t, "a_test.go", src)

	c, err := New(fset, f, []byte(src), config.Behavior{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got, want := len(c.Items), 2; got != want {
		t.Fatalf("Got %d items, want %d", got, want)
	}

	if got, want := string(c.Items[1].Source().Text), "func TestA(t *testing.T) {\nvar x = 1\n\t_ = x\n}"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestNewSourceMismatch(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, "a_test.go", source)

	if _, err := New(fset, f, []byte(source[1:]), config.Behavior{}); err == nil {
		t.Error("New succeeded on mismatched source")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"TestFile", "dir/a_test.go", true},
		{"PlainFile", "dir/a.go", false},
		{"SuffixInDir", "a_test.go/b.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const src = "package a\n"

			fset, f := testsource.Parse(t, tt.filename, src)

			c, err := New(fset, f, []byte(src), config.Behavior{})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			var col diag.Collector

			if got := Validate(c, &col); got != tt.want {
				t.Errorf("Validate() = %t, want %t", got, tt.want)
			}

			if tt.want {
				if n := col.Len(); n != 0 {
					t.Errorf("Got %d diagnostics, want none", n)
				}

				return
			}

			ds := col.Diagnostics()
			if len(ds) != 1 || ds[0].Kind != diag.MissingMarker {
				t.Fatalf("Got diagnostics %v, want one missing marker", ds)
			}

			if got, want := ds[0].Pos, f.Package; got != want {
				t.Errorf("Diagnostic at %v, want package clause %v", got, want)
			}
		})
	}
}
