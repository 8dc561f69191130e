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

package smartenum_test

import (
	"errors"
	"testing"

	"github.com/tomoncle/smartenum"
)

type Status struct{ smartenum.Member }

var (
	StatusActive   = Status{smartenum.New(1, "Active")}
	StatusInactive = Status{smartenum.New(2, "Inactive")}
	StatusArchived = Status{smartenum.New(5, "Archived")}
)

func (Status) Enumerate() []Status {
	return []Status{StatusActive, StatusInactive, StatusArchived}
}

type Grade struct{ smartenum.Member }

var (
	GradeA = Grade{smartenum.New(1, "A")}
	GradeB = Grade{smartenum.New(2, "B")}
)

func (Grade) Enumerate() []Grade {
	return []Grade{GradeA, GradeB}
}

// shade declares the value 1 twice to exercise the duplicate-value paths.
type shade struct{ smartenum.Member }

func (shade) Enumerate() []shade {
	return []shade{
		{smartenum.New(1, "Red")},
		{smartenum.New(1, "Crimson")},
		{smartenum.New(2, "Blue")},
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, want := range smartenum.Members[Status]() {
		got, err := smartenum.FromValue[Status](want.Value())
		if err != nil {
			t.Fatalf("FromValue(%d) error: %v", want.Value(), err)
		}
		if got != want {
			t.Fatalf("FromValue(%d) = %v, want %v", want.Value(), got, want)
		}

		got, err = smartenum.FromDisplayName[Status](want.DisplayName())
		if err != nil {
			t.Fatalf("FromDisplayName(%q) error: %v", want.DisplayName(), err)
		}
		if got != want {
			t.Fatalf("FromDisplayName(%q) = %v, want %v", want.DisplayName(), got, want)
		}
	}
}

func TestFromValueNotFound(t *testing.T) {
	_, err := smartenum.FromValue[Status](999)
	if err == nil {
		t.Fatal("expected error for undeclared value")
	}
	if !errors.Is(err, smartenum.ErrNotFound) {
		t.Fatalf("error does not match ErrNotFound: %v", err)
	}
	var nf *smartenum.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error is not *NotFoundError: %v", err)
	}
	if nf.Key != "999" || nf.Kind != smartenum.LookupByValue || nf.Set != "Status" {
		t.Fatalf("unexpected error detail: %+v", nf)
	}
}

func TestFromDisplayNameNotFound(t *testing.T) {
	_, err := smartenum.FromDisplayName[Status]("active") // exact match, no folding
	var nf *smartenum.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nf.Key != "active" || nf.Kind != smartenum.LookupByDisplayName || nf.Set != "Status" {
		t.Fatalf("unexpected error detail: %+v", nf)
	}
}

func TestAllIsRestartable(t *testing.T) {
	declared := (Status{}).Enumerate()

	for round := 0; round < 2; round++ {
		i := 0
		for member := range smartenum.All[Status]() {
			if member != declared[i] {
				t.Fatalf("round %d: member %d = %v, want %v", round, i, member, declared[i])
			}
			i++
		}
		if i != len(declared) {
			t.Fatalf("round %d: yielded %d members, want %d", round, i, len(declared))
		}
	}

	// Early break must not affect a later restart.
	for range smartenum.All[Status]() {
		break
	}
	count := 0
	for range smartenum.All[Status]() {
		count++
	}
	if count != len(declared) {
		t.Fatalf("after break: yielded %d members, want %d", count, len(declared))
	}
}

func TestEquality(t *testing.T) {
	if !smartenum.Equal(StatusActive, StatusActive) {
		t.Fatal("member not equal to itself")
	}
	if smartenum.Equal(StatusActive, StatusInactive) {
		t.Fatal("members with different values compare equal")
	}
	if smartenum.Equal(StatusActive, GradeA) {
		t.Fatal("members of different sets compare equal on shared value")
	}
	if smartenum.Equal(nil, nil) || smartenum.Equal(StatusActive, nil) {
		t.Fatal("nil must never compare equal")
	}
	if !smartenum.EqualOf(StatusActive, StatusActive) || smartenum.EqualOf(StatusActive, StatusInactive) {
		t.Fatal("EqualOf disagrees with value equality")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := StatusActive
	b, err := smartenum.FromValue[Status](1)
	if err != nil {
		t.Fatalf("FromValue(1) error: %v", err)
	}
	if !smartenum.Equal(a, b) {
		t.Fatal("expected equal members")
	}
	if smartenum.Hash(a) != smartenum.Hash(b) {
		t.Fatal("equal members hash differently")
	}
}

func TestCompareAndSorted(t *testing.T) {
	if smartenum.Compare(StatusActive, StatusInactive) >= 0 {
		t.Fatal("Compare(1, 2) should be negative")
	}
	if smartenum.Compare(StatusArchived, StatusActive) <= 0 {
		t.Fatal("Compare(5, 1) should be positive")
	}
	if smartenum.Compare(StatusActive, StatusActive) != 0 {
		t.Fatal("Compare of equal values should be zero")
	}

	sorted := smartenum.Sorted[Status]()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Value() >= sorted[i].Value() {
			t.Fatalf("Sorted out of order at %d: %v", i, sorted)
		}
	}
}

func TestAbsoluteDifference(t *testing.T) {
	if d := smartenum.AbsoluteDifference(StatusActive, StatusInactive); d != 1 {
		t.Fatalf("AbsoluteDifference(1, 2) = %d, want 1", d)
	}
	if smartenum.AbsoluteDifference(StatusActive, StatusArchived) !=
		smartenum.AbsoluteDifference(StatusArchived, StatusActive) {
		t.Fatal("AbsoluteDifference is not symmetric")
	}
	// Cross-set distance is allowed.
	if d := smartenum.AbsoluteDifference(StatusArchived, GradeB); d != 3 {
		t.Fatalf("cross-set AbsoluteDifference = %d, want 3", d)
	}
}

func TestString(t *testing.T) {
	if StatusActive.String() != "Active" {
		t.Fatalf("String() = %q, want %q", StatusActive.String(), "Active")
	}
}

func TestFromStoredValue(t *testing.T) {
	if got := smartenum.FromStoredValue[Status](2); got != StatusInactive {
		t.Fatalf("FromStoredValue(2) = %v, want %v", got, StatusInactive)
	}

	unknown := smartenum.FromStoredValue[Status](42)
	if unknown.Value() != 42 {
		t.Fatalf("FromStoredValue(42).Value() = %d, want 42", unknown.Value())
	}
	if unknown.DisplayName() != "" {
		t.Fatalf("unknown value carries display name %q", unknown.DisplayName())
	}
	if smartenum.IsDeclared(unknown) {
		t.Fatal("unknown value reported as declared")
	}
	if !smartenum.IsDeclared(StatusActive) {
		t.Fatal("declared member reported as undeclared")
	}
}

func TestValidate(t *testing.T) {
	if err := smartenum.Validate[Status](); err != nil {
		t.Fatalf("Validate[Status] error: %v", err)
	}
	if err := smartenum.Validate[shade](); err == nil {
		t.Fatal("Validate missed the duplicate value")
	}

	// Without validation, lookups resolve duplicates by declaration order.
	first, err := smartenum.FromValue[shade](1)
	if err != nil {
		t.Fatalf("FromValue[shade](1) error: %v", err)
	}
	if first.DisplayName() != "Red" {
		t.Fatalf("duplicate resolved to %q, want first declaration %q", first.DisplayName(), "Red")
	}
}
