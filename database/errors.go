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
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Violation classifies the SQL failures an enum-constrained column can raise.
type Violation int

const (
	UnknownViolation Violation = iota
	CheckViolation
	NotNullViolation
	TruncationViolation
)

func (v Violation) String() string {
	switch v {
	case CheckViolation:
		return "check constraint violation"
	case NotNullViolation:
		return "not-null violation"
	case TruncationViolation:
		return "data truncated"
	default:
		return "unknown"
	}
}

// IsEnumViolation reports whether err is a constraint failure on an
// enum-typed column, covering MySQL driver errors and postgres/sqlite message
// text.
func IsEnumViolation(err error) (bool, Violation) {
	if err == nil {
		return false, UnknownViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 3819:
			return true, CheckViolation
		case 1048:
			return true, NotNullViolation
		case 1265:
			return true, TruncationViolation
		default:
			return false, UnknownViolation
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "check constraint") ||
		strings.Contains(s, "sqlstate 23514") {
		return true, CheckViolation
	}
	if strings.Contains(s, "not-null constraint") ||
		strings.Contains(s, "not null constraint failed") ||
		strings.Contains(s, "sqlstate 23502") {
		return true, NotNullViolation
	}
	if strings.Contains(s, "string data right truncation") ||
		strings.Contains(s, "data truncated") ||
		strings.Contains(s, "sqlstate 22001") {
		return true, TruncationViolation
	}
	return false, UnknownViolation
}
