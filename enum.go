/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package smartenum

import (
	"cmp"
	"reflect"
	"slices"
)

// Enum is the contract every member of a concrete set satisfies. The integer
// value is the stable identity used for equality, ordering, and persistence;
// the display name is a secondary, human-facing label.
type Enum interface {
	Value() int
	DisplayName() string
	String() string
}

// Member is the base of every concrete set. Concrete sets embed it and build
// their declared members with New; a Member is immutable after construction.
type Member struct {
	value       int
	displayName string
}

// New constructs a declared member carrying the given value and display name.
func New(value int, displayName string) Member {
	return Member{value: value, displayName: displayName}
}

// Value returns the stable integer identity of the member.
func (m Member) Value() int { return m.value }

// DisplayName returns the human-readable label of the member.
func (m Member) DisplayName() string { return m.displayName }

// String returns the display name.
func (m Member) String() string { return m.displayName }

// Equal reports whether a and b are the same member: both non-nil, of the
// exact same concrete set, and carrying the same value. Display names do not
// participate.
func Equal(a, b Enum) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.Value() == b.Value()
}

// EqualOf is the statically typed form of Equal: the type system already
// guarantees a and b belong to the same set, so only the values are compared.
func EqualOf[T Set[T]](a, b T) bool {
	return a.Value() == b.Value()
}

// Compare orders two members by value ascending. It intentionally accepts
// members of different sets; callers sorting a single set get a total order
// consistent with Equal.
func Compare(a, b Enum) int {
	return cmp.Compare(a.Value(), b.Value())
}

// Hash derives a hash solely from the member's value, so equal members hash
// identically.
func Hash(e Enum) uint64 {
	return uint64(e.Value())
}

// AbsoluteDifference returns |a.Value() - b.Value()|. The two members need
// not belong to the same set.
func AbsoluteDifference(a, b Enum) int {
	d := a.Value() - b.Value()
	if d < 0 {
		return -d
	}
	return d
}

// Sorted returns the declared members of T ordered by value ascending.
func Sorted[T Set[T]]() []T {
	members := Members[T]()
	slices.SortFunc(members, func(a, b T) int {
		return cmp.Compare(a.Value(), b.Value())
	})
	return members
}
