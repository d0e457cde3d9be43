/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mocks

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var sqlNamedParamRe = regexp.MustCompile(`(@[^ ,)"'\n]+)`)

// replaces named parameters with the indexed format $1, $2, ... so expectations can be written
// with the same named-arg sql the repositories use
var queryMatcher = sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
	// gorm's NamedExpr emits a new positional placeholder for every occurrence of a named
	// parameter, so number occurrences sequentially instead of per unique name
	index := 1
	expectedSQL = sqlNamedParamRe.ReplaceAllStringFunc(expectedSQL, func(string) string {
		indexStr := fmt.Sprintf("$%d", index)
		index++
		return indexStr
	})

	return sqlmock.QueryMatcherRegexp.Match(regexp.QuoteMeta(expectedSQL), actualSQL)
})

// DatabaseMock returns a mocked gorm.DB connection and Sqlmock for mocking actual queries
func DatabaseMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(queryMatcher))
	if err != nil {
		t.Errorf("Error: '%s'", err)
	}

	dialector := postgres.New(postgres.Config{
		Conn:                 db,
		DriverName:           "postgres",
		DSN:                  "sqlmock_db_0",
		PreferSimpleProtocol: true,
	})
	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Errorf("Error: '%s'", err)
	}
	return gdb, mock
}
