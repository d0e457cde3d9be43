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

package parser

import (
	"context"
	"testing"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/test/mocks"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var defaultContext = context.Background()

func int64Ptr(value int64) *int64 {
	return &value
}

func newTestLedger(entityRepository *mocks.MockEntityRepository) *TemporalLedger {
	return NewTemporalLedger(entityRepository)
}

func TestLedgerCreateThenFlush(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(domain.Entity{}, false, nil)
	ledger := newTestLedger(entityRepository)

	err := ledger.Upsert(defaultContext, accountId, 100, EntityDelta{
		Balance: int64Ptr(500),
		Memo:    wrapperspb.String("genesis"),
		Type:    domain.EntityTypeAccount,
	})
	assert.NoError(t, err)

	listener := &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))

	assert.Len(t, listener.Entities, 1)
	entity := listener.Entities[0]
	assert.Equal(t, accountId, entity.Id)
	assert.Equal(t, int64Ptr(100), entity.CreatedTimestamp)
	assert.Equal(t, int64Ptr(500), entity.Balance)
	assert.Equal(t, "genesis", entity.Memo)
	assert.Equal(t, domain.NewTimestampRange(100), entity.TimestampRange)
}

func TestLedgerArchivesPriorVersion(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(domain.Entity{}, false, nil)
	ledger := newTestLedger(entityRepository)

	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 100, EntityDelta{
		Memo: wrapperspb.String("first"),
		Type: domain.EntityTypeAccount,
	}))
	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 200, EntityDelta{
		Memo: wrapperspb.String("second"),
	}))

	listener := &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))

	assert.Len(t, listener.Entities, 2)
	archived, current := listener.Entities[0], listener.Entities[1]

	// archived version closed exactly where the successor opens
	assert.Equal(t, "first", archived.Memo)
	assert.Equal(t, domain.NewClosedTimestampRange(100, 200), archived.TimestampRange)
	assert.Equal(t, "second", current.Memo)
	assert.Equal(t, domain.NewTimestampRange(200), current.TimestampRange)
	assert.Equal(t, archived.CreatedTimestamp, current.CreatedTimestamp)
}

func TestLedgerCoalescesSameTimestamp(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(domain.Entity{}, false, nil)
	ledger := newTestLedger(entityRepository)

	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 100, EntityDelta{
		Balance: int64Ptr(500),
		Memo:    wrapperspb.String("first"),
	}))
	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 100, EntityDelta{
		Balance: int64Ptr(-200),
		Memo:    wrapperspb.String("second"),
	}))

	listener := &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))

	assert.Len(t, listener.Entities, 1)
	entity := listener.Entities[0]
	assert.Equal(t, int64Ptr(300), entity.Balance)
	assert.Equal(t, "second", entity.Memo)
}

func TestLedgerRejectsEarlierTimestamp(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(domain.Entity{}, false, nil)
	ledger := newTestLedger(entityRepository)

	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 200, EntityDelta{}))
	err := ledger.Upsert(defaultContext, accountId, 100, EntityDelta{})
	assert.Error(t, err)
}

func TestLedgerReadsThroughCommittedState(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	committed := domain.Entity{
		Balance:          int64Ptr(1000),
		CreatedTimestamp: int64Ptr(50),
		Id:               accountId,
		Memo:             "committed",
		Num:              accountId.EntityNum,
		TimestampRange:   domain.NewTimestampRange(50),
		Type:             domain.EntityTypeAccount,
	}
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(committed, true, nil).Once()
	ledger := newTestLedger(entityRepository)

	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 100, EntityDelta{
		Balance: int64Ptr(-400),
	}))

	listener := &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))

	assert.Len(t, listener.Entities, 2)
	archived, current := listener.Entities[0], listener.Entities[1]
	assert.Equal(t, domain.NewClosedTimestampRange(50, 100), archived.TimestampRange)
	assert.Equal(t, int64Ptr(1000), archived.Balance)
	assert.Equal(t, int64Ptr(600), current.Balance)
	assert.Equal(t, "committed", current.Memo)
	entityRepository.AssertExpectations(t)
}

func TestLedgerStakingTargetsMutuallyExclusive(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(domain.Entity{}, false, nil)
	ledger := newTestLedger(entityRepository)

	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 100, EntityDelta{
		StakedNodeId: wrapperspb.Int64(3),
	}))
	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 200, EntityDelta{
		StakedAccountId: wrapperspb.Int64(2002),
	}))

	listener := &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))

	current := listener.Entities[len(listener.Entities)-1]
	assert.Nil(t, current.StakedNodeId)
	stakedAccountId := domain.MustDecodeEntityId(2002)
	assert.Equal(t, &stakedAccountId, current.StakedAccountId)
}

func TestLedgerClearsSentinels(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	proxyAccountId := domain.MustDecodeEntityId(3003)
	committed := domain.Entity{
		Id:             accountId,
		Key:            []byte{1, 2, 3},
		Num:            accountId.EntityNum,
		ProxyAccountId: &proxyAccountId,
		PublicKey:      "abc",
		StakedNodeId:   int64Ptr(4),
		TimestampRange: domain.NewTimestampRange(50),
		Type:           domain.EntityTypeAccount,
	}
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(committed, true, nil)
	ledger := newTestLedger(entityRepository)

	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 100, EntityDelta{
		Key:            wrapperspb.Bytes(nil),
		ProxyAccountId: &domain.EntityId{},
		StakedNodeId:   wrapperspb.Int64(stakedNodeIdClear),
	}))

	listener := &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))

	current := listener.Entities[len(listener.Entities)-1]
	assert.Nil(t, current.Key)
	assert.Empty(t, current.PublicKey)
	assert.Nil(t, current.ProxyAccountId)
	assert.Nil(t, current.StakedNodeId)
}

func TestLedgerFlushResetsState(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(domain.Entity{}, false, nil)
	ledger := newTestLedger(entityRepository)

	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 100, EntityDelta{}))

	listener := &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))
	assert.Len(t, listener.Entities, 1)

	listener = &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))
	assert.Empty(t, listener.Entities)
}

func TestLedgerResetDiscardsBatchState(t *testing.T) {
	entityRepository := &mocks.MockEntityRepository{}
	accountId := domain.MustDecodeEntityId(1001)
	entityRepository.On("Find", defaultContext, accountId.EncodedId).
		Return(domain.Entity{}, false, nil)
	ledger := newTestLedger(entityRepository)

	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 100, EntityDelta{
		Memo: wrapperspb.String("abandoned"),
		Type: domain.EntityTypeAccount,
	}))
	assert.NoError(t, ledger.Upsert(defaultContext, accountId, 200, EntityDelta{
		Memo: wrapperspb.String("archived too"),
	}))

	ledger.Reset()

	listener := &mocks.EntityListenerCapture{}
	assert.NoError(t, ledger.Flush(listener))
	assert.Empty(t, listener.Entities)
}
