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
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/test"
	"github.com/stretchr/testify/suite"
)

func TestAliasRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(aliasRepositorySuite))
}

type aliasRepositorySuite struct {
	test.IntegrationTest
	suite.Suite
	repository interfaces.AliasRepository
}

func (suite *aliasRepositorySuite) SetupSuite() {
	suite.Setup()
	suite.repository = NewAliasRepository(suite.DbClient)
}

func (suite *aliasRepositorySuite) TearDownSuite() {
	suite.TearDown()
}

func (suite *aliasRepositorySuite) SetupTest() {
	suite.CleanupDb()
}

func (suite *aliasRepositorySuite) TestFindByAlias() {
	alias := []byte{1, 2, 3}
	entity := accountEntity(2002, 100)
	entity.Alias = alias
	suite.Require().NoError(suite.DbClient.GetDb().Create(&entity).Error)

	entityId, found, err := suite.repository.FindByAlias(context.Background(), alias)
	suite.NoError(err)
	suite.True(found)
	suite.Equal(domain.MustDecodeEntityId(2002), entityId)
}

func (suite *aliasRepositorySuite) TestFindByAliasNotFound() {
	_, found, err := suite.repository.FindByAlias(context.Background(), []byte{1, 2, 3})
	suite.NoError(err)
	suite.False(found)
}

func (suite *aliasRepositorySuite) TestFindByAliasLatestBindingWins() {
	alias := []byte{1, 2, 3}

	// the alias bound to a deleted account stays visible through history
	previous := accountEntity(3003, 100)
	previous.Alias = alias
	previous.TimestampRange = domain.NewClosedTimestampRange(100, 200)
	suite.Require().NoError(
		suite.DbClient.GetDb().Table("entity_history").Create(&previous).Error)

	current := accountEntity(2002, 200)
	current.Alias = alias
	suite.Require().NoError(suite.DbClient.GetDb().Create(&current).Error)

	entityId, found, err := suite.repository.FindByAlias(context.Background(), alias)
	suite.NoError(err)
	suite.True(found)
	suite.Equal(domain.MustDecodeEntityId(2002), entityId)
}

func (suite *aliasRepositorySuite) TestFindByAliasHistoryOnly() {
	alias := []byte{1, 2, 3}
	previous := accountEntity(3003, 100)
	previous.Alias = alias
	previous.TimestampRange = domain.NewClosedTimestampRange(100, 200)
	suite.Require().NoError(
		suite.DbClient.GetDb().Table("entity_history").Create(&previous).Error)

	entityId, found, err := suite.repository.FindByAlias(context.Background(), alias)
	suite.NoError(err)
	suite.True(found)
	suite.Equal(domain.MustDecodeEntityId(3003), entityId)
}

func (suite *aliasRepositorySuite) TestFindByEvmAddress() {
	evmAddress := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
		0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14,
	}
	entity := accountEntity(2002, 100)
	entity.EvmAddress = evmAddress
	suite.Require().NoError(suite.DbClient.GetDb().Create(&entity).Error)

	entityId, found, err := suite.repository.FindByEvmAddress(context.Background(), evmAddress)
	suite.NoError(err)
	suite.True(found)
	suite.Equal(domain.MustDecodeEntityId(2002), entityId)
}

func (suite *aliasRepositorySuite) TestFindByEvmAddressNotFound() {
	_, found, err := suite.repository.FindByEvmAddress(context.Background(), []byte{0xab})
	suite.NoError(err)
	suite.False(found)
}
