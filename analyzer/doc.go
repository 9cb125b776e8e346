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

// Package analyzer implements the aftertest static analysis pass.
//
// # Overview
//
// AfterTest makes sure every test function of a file calls the same cleanup function
// when it is done. The cleanup is named by a directive comment in the test file:
//
//	//aftertest:cleanup resetFixtures
//
// The directive accepts a function name, a call expression like resetFixtures(t) or
// a function literal.
//
// # Example
//
// Before:
//
//	//aftertest:cleanup resetFixtures
//
//	func TestLoad(t *testing.T) {
//	    loadFixtures(t)
//	}
//
// After applying aftertest's suggested fix:
//
//	func TestLoad(t *testing.T) {
//	    loadFixtures(t)
//	    resetFixtures()
//	}
//
// # Flags
//
//   - -cleanup: directive for test files without a directive comment
//   - -defer: inject "defer <call>" as the first statement instead
//   - -benchmarks, -fuzz: also check benchmarks and fuzz targets
//   - -generated: also check generated files
//
// Test functions with a //nolint:aftertest doc comment are skipped.
package analyzer
