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
	"errors"
	"fmt"
)

// LookupKind names the key a failed lookup searched by.
type LookupKind string

const (
	LookupByValue       LookupKind = "value"
	LookupByDisplayName LookupKind = "display name"
)

// ErrNotFound is the sentinel matched by errors.Is for any failed strict
// lookup, regardless of set or key kind.
var ErrNotFound = errors.New("enum member not found")

// NotFoundError reports a strict lookup miss: the searched key, the kind of
// key, and the concrete set that was searched.
type NotFoundError struct {
	Key  string
	Kind LookupKind
	Set  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("enum set %s has no member with %s %q", e.Set, e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
