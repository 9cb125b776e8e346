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

package config

// flags is the set of unsigned types usable as [BitMask] flags.
type flags interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask holds a set of boolean options of type T.
type BitMask[T flags] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given options enabled.
func NewBitMask[T flags](options ...T) BitMask[T] {
	var b BitMask[T]
	for _, option := range options {
		b.Enable(option)
	}

	return b
}

// Set enables or disables option.
func (b *BitMask[T]) Set(option T, value bool) {
	if value {
		b.Enable(option)
	} else {
		b.Disable(option)
	}
}

// Enable turns option on.
func (b *BitMask[T]) Enable(option T) { b.value |= option }

// Disable turns option off.
func (b *BitMask[T]) Disable(option T) { b.value &^= option }

// Enabled reports whether option is on.
func (b BitMask[T]) Enabled(option T) bool { return b.value&option != 0 }
