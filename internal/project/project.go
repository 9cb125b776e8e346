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

// Package project reads the .aftertest.toml project configuration.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/aftertest/transform"
)

// FileName is the name of the project configuration file.
const FileName = ".aftertest.toml"

// ErrUnknownKeys is returned for configuration files with unsupported settings.
var ErrUnknownKeys = errors.New("unknown configuration keys")

// Project is a loaded project configuration.
type Project struct {
	Path   string // path of the configuration file
	Root   string // directory containing the configuration file
	Config Config
}

// Config is the content of a project configuration file. Unset fields keep their defaults.
type Config struct {
	Cleanup    *string `toml:"cleanup"`
	Defer      *bool   `toml:"defer"`
	Benchmarks *bool   `toml:"benchmarks"`
	Fuzz       *bool   `toml:"fuzz"`
	Generated  *bool   `toml:"generated"`
	Format     *bool   `toml:"format"`
	Jobs       *int    `toml:"jobs"`
}

// Find returns the path of the nearest configuration file in startDir or one of its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// Discover finds and loads the nearest configuration file. It reports false when there is none.
func Discover(startDir string) (*Project, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	p, err := Load(path)
	if err != nil {
		return nil, true, err
	}

	return p, true, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Project, error) {
	var cfg Config

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		slices.Sort(keys)

		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if cfg.Jobs != nil && *cfg.Jobs < 0 {
		return nil, fmt.Errorf("%s: jobs must not be negative, got %d", path, *cfg.Jobs)
	}

	return &Project{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Apply overrides the fields of cfg that are set in the configuration file.
func (c Config) Apply(cfg *transform.Config) {
	set(&cfg.Cleanup, c.Cleanup)
	set(&cfg.Defer, c.Defer)
	set(&cfg.Benchmarks, c.Benchmarks)
	set(&cfg.Fuzz, c.Fuzz)
	set(&cfg.Generated, c.Generated)
	set(&cfg.Format, c.Format)
}

// JobsOr returns the configured number of parallel jobs, or def when unset or zero.
func (c Config) JobsOr(def int) int {
	if c.Jobs == nil || *c.Jobs == 0 {
		return def
	}

	return *c.Jobs
}

func set[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}
