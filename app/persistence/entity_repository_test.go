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

package persistence

import (
	"context"
	"testing"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/interfaces"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/test"
	"github.com/stretchr/testify/suite"
)

func TestEntityRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(entityRepositorySuite))
}

type entityRepositorySuite struct {
	test.IntegrationTest
	suite.Suite
	repository interfaces.EntityRepository
}

func (suite *entityRepositorySuite) SetupSuite() {
	suite.Setup()
	suite.repository = NewEntityRepository(suite.DbClient)
}

func (suite *entityRepositorySuite) TearDownSuite() {
	suite.TearDown()
}

func (suite *entityRepositorySuite) SetupTest() {
	suite.CleanupDb()
}

func (suite *entityRepositorySuite) TestFind() {
	expected := accountEntity(2002, 100)
	suite.Require().NoError(suite.DbClient.GetDb().Create(&expected).Error)

	actual, found, err := suite.repository.Find(context.Background(), 2002)
	suite.NoError(err)
	suite.True(found)
	suite.Equal(expected.Id, actual.Id)
	suite.Equal(expected.Balance, actual.Balance)
}

func (suite *entityRepositorySuite) TestFindNotFound() {
	_, found, err := suite.repository.Find(context.Background(), 2002)
	suite.NoError(err)
	suite.False(found)
}
