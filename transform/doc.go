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

// Package transform rewrites Go test files so that every test function calls a cleanup function.
//
// # Overview
//
// A test file selects its cleanup with a directive comment:
//
//	//aftertest:cleanup resetDatabase
//
//	package store_test
//
//	func TestInsert(t *testing.T) {
//		insert(t, record)
//	}
//
// After the transform each test function ends with the cleanup invocation:
//
//	func TestInsert(t *testing.T) {
//		insert(t, record)
//		resetDatabase()
//	}
//
// The directive accepts a function name, a call expression like reset(t, "users") or a function
// literal, which is invoked immediately. With [Config.Defer] the cleanup is deferred as the first
// statement instead, so that it also runs when a test ends early.
//
// # Diagnostics
//
// Problems are collected as [Diagnostic] values instead of aborting: an unparseable directive,
// a directive in a file that is not a test file and test functions that can't be rewritten are
// all reported together, while the transform still produces as complete an output as possible.
//
// The transform is not idempotent: applying it twice injects the cleanup call twice.
package transform
