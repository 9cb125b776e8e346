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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/aftertest/internal/config"
	"fillmore-labs.com/aftertest/internal/run"
)

// Option configures specific behavior of a [New] aftertest analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithCleanup is an [Option] to configure the directive for test files without a directive comment.
func WithCleanup(cleanup string) Option { return cleanupOption{cleanup: cleanup} }

type cleanupOption struct{ cleanup string }

func (o cleanupOption) apply(r *run.Options) {
	r.Cleanup = o.cleanup
}

func (o cleanupOption) LogAttr() slog.Attr {
	return slog.String("cleanup", o.cleanup)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option {
	return behaviorOption{name: "generated", option: config.IncludeGenerated, value: generated}
}

// WithDefer is an [Option] to inject a deferred cleanup call as the first statement.
func WithDefer(deferred bool) Option {
	return behaviorOption{name: "defer", option: config.Deferred, value: deferred}
}

// WithBenchmarks is an [Option] to configure whether benchmark functions are checked.
func WithBenchmarks(benchmarks bool) Option {
	return behaviorOption{name: "benchmarks", option: config.Benchmarks, value: benchmarks}
}

// WithFuzz is an [Option] to configure whether fuzz targets are checked.
func WithFuzz(fuzz bool) Option {
	return behaviorOption{name: "fuzz", option: config.Fuzz, value: fuzz}
}

type behaviorOption struct {
	name   string
	option config.Config
	value  bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.option, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.value)
}
