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

package run

import (
	"fillmore-labs.com/aftertest/internal/config"
	"fillmore-labs.com/aftertest/transform"
)

// Options represent configuration options for the aftertest analyzer.
type Options struct {
	// Cleanup is the directive applied to test files without a directive comment.
	Cleanup string

	// Behavior holds behavioral options.
	Behavior config.Behavior
}

// DefaultOptions initializes and returns a new [Options] instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

// Config returns the transform configuration. Suggested fixes are edits of the original source,
// so the output is never formatted.
func (o *Options) Config() transform.Config {
	return transform.Config{
		Cleanup:    o.Cleanup,
		Defer:      o.Behavior.Enabled(config.Deferred),
		Benchmarks: o.Behavior.Enabled(config.Benchmarks),
		Fuzz:       o.Behavior.Enabled(config.Fuzz),
		Generated:  o.Behavior.Enabled(config.IncludeGenerated),
	}
}
