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

package database

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomoncle/smartenum"
)

// Column adapts a concrete set member to an integer database column. On write
// it stores the member's value; on read it reconciles the stored value to the
// canonical declared member, retaining unknown values as-is so stale rows
// remain readable. Legacy string columns that stored the display name instead
// of the value are also accepted.
type Column[T smartenum.Set[T]] struct {
	member T
}

// NewColumn wraps a member for use as a model field.
func NewColumn[T smartenum.Set[T]](member T) Column[T] {
	return Column[T]{member: member}
}

// Get returns the wrapped member.
func (c Column[T]) Get() T { return c.member }

// Set replaces the wrapped member.
func (c *Column[T]) Set(member T) { c.member = member }

// Value implements driver.Valuer; the stable numeric identity is persisted,
// never the display name.
func (c Column[T]) Value() (driver.Value, error) {
	return int64(c.member.Value()), nil
}

// Scan implements sql.Scanner.
func (c *Column[T]) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		var zero T
		c.member = zero
		return nil
	case int64:
		c.member = smartenum.FromStoredValue[T](int(v))
		return nil
	case int:
		c.member = smartenum.FromStoredValue[T](v)
		return nil
	case []byte:
		return c.scanText(string(v))
	case string:
		return c.scanText(v)
	default:
		return fmt.Errorf("cannot scan %T into enum column %s", src, smartenum.SetName[T]())
	}
}

func (c *Column[T]) scanText(s string) error {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		c.member = smartenum.FromStoredValue[T](n)
		return nil
	}
	member, err := smartenum.FromDisplayName[T](s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into enum column %s: %w", s, smartenum.SetName[T](), err)
	}
	c.member = member
	return nil
}
