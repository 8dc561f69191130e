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
	"fmt"
	"strconv"
	"strings"

	"github.com/tomoncle/smartenum"
)

// CheckConstraint renders a CHECK clause confining column to the declared
// values of the set, in declaration order. Intended for table DDL:
//
//	status INTEGER NOT NULL CHECK (status IN (1, 2))
func CheckConstraint(column string, desc smartenum.SetDescriptor) string {
	values := make([]string, len(desc.Members))
	for i, m := range desc.Members {
		values[i] = strconv.Itoa(m.Value)
	}
	return fmt.Sprintf("CHECK (%s IN (%s))", column, strings.Join(values, ", "))
}

// ColumnDefinition renders a full column definition for an enum-typed column,
// including the CHECK constraint.
func ColumnDefinition(column string, desc smartenum.SetDescriptor) string {
	return fmt.Sprintf("%s INTEGER NOT NULL %s", column, CheckConstraint(column, desc))
}
