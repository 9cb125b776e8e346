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

package config

// Config is a behavioral option of the cleanup transform.
type Config uint8

const (
	// IncludeGenerated rewrites generated files, too.
	IncludeGenerated Config = 1 << iota

	// Benchmarks treats BenchmarkXxx(*testing.B) functions as tests.
	Benchmarks

	// Fuzz treats FuzzXxx(*testing.F) functions as tests.
	Fuzz

	// Deferred injects "defer cleanup()" as the first statement instead of appending "cleanup()".
	// The deferred call also runs when a test ends early.
	Deferred

	// Format runs gofmt on the rewritten source.
	Format
)

// Behavior is the set of enabled [Config] options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the options enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask(Format)
}
