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

package test

import (
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/db"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	testdb "github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/test/db"
)

// IntegrationTest manages one throwaway postgres container for a test suite. Embed it in a testify
// suite and call Setup/TearDown from the suite hooks.
type IntegrationTest struct {
	DbClient   interfaces.DbClient
	DbResource testdb.DbResource
}

func (it *IntegrationTest) CleanupDb() {
	testdb.CleanupDb(it.DbResource.GetDb())
}

func (it *IntegrationTest) Setup() {
	it.DbResource = testdb.SetupDb()
	it.DbClient = db.NewDbClient(it.DbResource.GetGormDb(), 0)
}

func (it IntegrationTest) TearDown() {
	testdb.TearDownDb(it.DbResource)
}
