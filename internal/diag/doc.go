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

// Package diag holds the diagnostics produced while rewriting a test file.
//
// Every problem found by the directive parser, the container validator or the rewriter
// is recorded as a [Diagnostic] in a [Collector]. None of them stops the pipeline:
// the transform always produces as complete an output as possible and surfaces all
// diagnostics together at the end.
package diag
