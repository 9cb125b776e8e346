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

package container

import (
	"path/filepath"
	"strings"

	"fillmore-labs.com/aftertest/internal/diag"
)

// TestFileSuffix marks a file as test-scoped.
const TestFileSuffix = "_test.go"

// Marked reports whether the container is a test file.
func (c *Container) Marked() bool {
	return IsTestFile(c.Filename)
}

// IsTestFile reports whether filename names a test file.
func IsTestFile(filename string) bool {
	return strings.HasSuffix(filepath.Base(filename), TestFileSuffix)
}

// Validate reports a [diag.MissingMarker] when the container is not a test file.
// Processing continues either way, test functions of unmarked files are still rewritten.
func Validate(c *Container, col *diag.Collector) bool {
	if c.Marked() {
		return true
	}

	col.Reportf(diag.MissingMarker, c.File.Package, c.File.Name.End(),
		"move the tests to a file whose name ends in "+TestFileSuffix,
		"Cleanup directive in %s, which is not a test file", filepath.Base(c.Filename))

	return false
}
