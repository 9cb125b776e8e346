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

package diag

import (
	"fmt"
	"go/token"
	"slices"
)

// Diagnostic is a single problem tied to a source range, with an optional remediation hint.
type Diagnostic struct {
	Kind    Kind
	Pos     token.Pos
	End     token.Pos
	Message string
	Help    string
}

// String returns the message followed by the diagnostic code, like "message (at:spc)".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (at:%s)", d.Message, d.Kind)
}

// Collector accumulates diagnostics over one transform invocation.
//
// The zero value is ready to use.
type Collector struct {
	list []Diagnostic
}

// Report records a diagnostic.
func (c *Collector) Report(d Diagnostic) {
	c.list = append(c.list, d)
}

// Reportf records a diagnostic of the given kind covering [pos, end).
func (c *Collector) Reportf(kind Kind, pos, end token.Pos, help, format string, args ...any) {
	c.Report(Diagnostic{
		Kind:    kind,
		Pos:     pos,
		End:     end,
		Message: fmt.Sprintf(format, args...),
		Help:    help,
	})
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int { return len(c.list) }

// Diagnostics returns the recorded diagnostics, ordered by position. Diagnostics at the same
// position keep the order they were reported in.
func (c *Collector) Diagnostics() []Diagnostic {
	ds := slices.Clone(c.list)
	slices.SortStableFunc(ds, func(a, b Diagnostic) int { return int(a.Pos - b.Pos) })

	return ds
}

// Count returns the number of recorded diagnostics of the given kind.
func (c *Collector) Count(kind Kind) int {
	n := 0

	for _, d := range c.list {
		if d.Kind == kind {
			n++
		}
	}

	return n
}
