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

package gclplugin

import "fillmore-labs.com/aftertest/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Cleanup is the directive for test files without an //aftertest:cleanup comment.
	Cleanup *string `json:"cleanup,omitzero"`
	// Defer injects a deferred cleanup call as the first statement.
	Defer *bool `json:"defer,omitzero"`
	// Benchmarks also checks benchmark functions.
	Benchmarks *bool `json:"benchmarks,omitzero"`
	// Fuzz also checks fuzz targets.
	Fuzz *bool `json:"fuzz,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the aftertest analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Cleanup, analyzer.WithCleanup)
	opts = appendOption(opts, s.Defer, analyzer.WithDefer)
	opts = appendOption(opts, s.Benchmarks, analyzer.WithBenchmarks)
	opts = appendOption(opts, s.Fuzz, analyzer.WithFuzz)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
