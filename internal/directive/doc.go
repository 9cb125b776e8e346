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

// Package directive resolves cleanup directives.
//
// A directive names the cleanup to run after every test of a file. It is written as a line comment
//
//	//aftertest:cleanup reset
//
// or supplied by the host as a default. Three forms are accepted, tried in this order:
//
//   - a call expression: reset(t, "db"), db.Reset(ctx)
//   - a function name: reset, testutil.Reset
//   - a function literal: func() { os.RemoveAll(dir) }
//
// The call expression is tried first, since a function name is a prefix of it. Every form
// must consume the complete directive, so "reset now" is rejected instead of being read as "reset".
package directive
