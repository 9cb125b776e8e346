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

// Package container models a Go test file as an ordered list of items.
//
// Each top-level declaration becomes an [Item]: a [TestFunction] for functions the go test
// runner executes as test cases, an [OtherItem] for everything else. Items keep their
// verbatim source text, together with the text separating them from the previous item,
// so that [Container.Bytes] reproduces the file byte for byte.
//
// A declaration with syntax errors ends before the next declaration keyword in the first
// column. The declarations following it are parsed again from a copy of the source blanked
// up to that point, keeping their byte offsets.
package container
