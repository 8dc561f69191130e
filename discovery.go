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
	"fmt"
	"iter"
	"reflect"
	"strconv"
)

// Set is implemented by every concrete enumeration set: a value receiver
// method returning the declared members in declaration order. The zero value
// of a set must be safe to call Enumerate on, which makes all discovery
// operations below work without a pre-built instance.
type Set[T any] interface {
	Enum
	Enumerate() []T
}

// All returns a lazy, restartable sequence over the declared members of T in
// declaration order. Each ranging of the sequence re-reads the declarations;
// nothing is cached. This is the single primitive every lookup builds on.
func All[T Set[T]]() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for _, member := range zero.Enumerate() {
			if !yield(member) {
				return
			}
		}
	}
}

// Members returns the declared members of T as a fresh slice in declaration
// order.
func Members[T Set[T]]() []T {
	var zero T
	declared := zero.Enumerate()
	members := make([]T, len(declared))
	copy(members, declared)
	return members
}

// SetName returns the Go type name of the concrete set, used in diagnostics
// and as the set's name in the catalog.
func SetName[T Set[T]]() string {
	return reflect.TypeFor[T]().Name()
}

// FromValue returns the first declared member of T whose value equals the
// argument. Values are unique within a well-formed set, so first match and
// unique match coincide; if a set declares duplicates the earliest declaration
// wins (see Validate). A miss yields a *NotFoundError.
func FromValue[T Set[T]](value int) (T, error) {
	for member := range All[T]() {
		if member.Value() == value {
			return member, nil
		}
	}
	var zero T
	return zero, &NotFoundError{
		Key:  strconv.Itoa(value),
		Kind: LookupByValue,
		Set:  SetName[T](),
	}
}

// FromDisplayName returns the first declared member of T whose display name
// exactly equals name. No case folding or whitespace normalization is applied.
// A miss yields a *NotFoundError.
func FromDisplayName[T Set[T]](name string) (T, error) {
	for member := range All[T]() {
		if member.DisplayName() == name {
			return member, nil
		}
	}
	var zero T
	return zero, &NotFoundError{
		Key:  name,
		Kind: LookupByDisplayName,
		Set:  SetName[T](),
	}
}

// FromStoredValue reconciles a raw persisted value to its canonical declared
// member. When no declared member carries the raw value the result is a shell
// member retaining the raw value with an empty display name, never an error:
// values persisted before a member was removed or renamed stay readable. This
// is the one deliberately permissive path; all other lookups are strict.
func FromStoredValue[T Set[T]](raw int) T {
	if member, err := FromValue[T](raw); err == nil {
		return member
	}
	return shell[T](raw)
}

// IsDeclared reports whether the member's value belongs to the declared set,
// distinguishing canonical members from shells produced by FromStoredValue.
func IsDeclared[T Set[T]](member T) bool {
	_, err := FromValue[T](member.Value())
	return err == nil
}

// Validate checks the set's uniqueness invariant: no two declared members may
// share a value. Lookups do not require a validated set; they resolve
// duplicates by declaration order.
func Validate[T Set[T]]() error {
	seen := make(map[int]string)
	for member := range All[T]() {
		if prev, ok := seen[member.Value()]; ok {
			return fmt.Errorf("enum set %s declares value %d twice (%q and %q)",
				SetName[T](), member.Value(), prev, member.DisplayName())
		}
		seen[member.Value()] = member.DisplayName()
	}
	return nil
}

var memberType = reflect.TypeOf(Member{})

// shell builds a zero set value carrying raw as its value. The embedded
// Member field is located by type, so the field name the consumer chose does
// not matter as long as the embedding is exported.
func shell[T Set[T]](raw int) T {
	var s T
	rv := reflect.ValueOf(&s).Elem()
	if rv.Kind() == reflect.Struct {
		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			if field.Type() == memberType && field.CanSet() {
				field.Set(reflect.ValueOf(Member{value: raw}))
				break
			}
		}
	}
	return s
}
