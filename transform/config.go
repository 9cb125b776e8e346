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

package transform

import (
	"log/slog"

	"fillmore-labs.com/aftertest/internal/config"
)

// Config configures a transform.
type Config struct {
	// Cleanup is the directive used for test files without a directive comment.
	// Empty leaves such files alone.
	Cleanup string

	// Defer injects "defer <call>" as the first statement instead of appending the call.
	Defer bool

	// Benchmarks also rewrites BenchmarkXxx(*testing.B) functions.
	Benchmarks bool

	// Fuzz also rewrites FuzzXxx(*testing.F) functions.
	Fuzz bool

	// Generated also rewrites generated files.
	Generated bool

	// Format runs gofmt on the output.
	Format bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Format: true}
}

func (c Config) behavior() config.Behavior {
	var b config.Behavior

	b.Set(config.Deferred, c.Defer)
	b.Set(config.Benchmarks, c.Benchmarks)
	b.Set(config.Fuzz, c.Fuzz)
	b.Set(config.IncludeGenerated, c.Generated)
	b.Set(config.Format, c.Format)

	return b
}

// LogValue implements [slog.LogValuer].
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("cleanup", c.Cleanup),
		slog.Bool("defer", c.Defer),
		slog.Bool("benchmarks", c.Benchmarks),
		slog.Bool("fuzz", c.Fuzz),
		slog.Bool("generated", c.Generated),
		slog.Bool("format", c.Format),
	)
}
