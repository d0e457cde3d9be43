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
	"testing"

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/config"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestHandleCryptoUpdateTriState(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	accountId := domain.MustDecodeEntityId(5005)

	create := newRecordItem(CryptoCreate{Memo: "before", Key: []byte{1, 2, 3}}, 100)
	create.Receipt.EntityId = accountId
	assert.NoError(t, fixture.handler.Handle(defaultContext, create, &domain.RecordFile{}))

	// memo set, key kept, staked node cleared by sentinel
	update := newRecordItem(CryptoUpdate{
		AccountId:    NewNumericRef(0, 0, 5005),
		Memo:         wrapperspb.String("after"),
		StakedNodeId: wrapperspb.Int64(stakedNodeIdClear),
	}, 200)
	assert.NoError(t, fixture.handler.Handle(defaultContext, update, &domain.RecordFile{}))

	assert.NoError(t, fixture.ledger.Flush(fixture.listener))
	current := fixture.listener.Entities[len(fixture.listener.Entities)-1]
	assert.Equal(t, "after", current.Memo)
	assert.Equal(t, []byte{1, 2, 3}, current.Key)
	assert.Nil(t, current.StakedNodeId)
}

func TestHandleCryptoUpdateExpirationClamps(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	accountId := domain.MustDecodeEntityId(5005)

	create := newRecordItem(CryptoCreate{}, 100)
	create.Receipt.EntityId = accountId
	assert.NoError(t, fixture.handler.Handle(defaultContext, create, &domain.RecordFile{}))

	update := newRecordItem(CryptoUpdate{
		AccountId:      NewNumericRef(0, 0, 5005),
		ExpirationTime: &Timestamp{Seconds: 9223372036854775807},
	}, 200)
	assert.NoError(t, fixture.handler.Handle(defaultContext, update, &domain.RecordFile{}))

	assert.NoError(t, fixture.ledger.Flush(fixture.listener))
	current := fixture.listener.Entities[len(fixture.listener.Entities)-1]
	assert.Equal(t, int64Ptr(9223372036854775807), current.ExpirationTimestamp)
}

func TestHandleCryptoDelete(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(CryptoDelete{
		AccountId:         NewNumericRef(0, 0, 5005),
		TransferAccountId: NewNumericRef(0, 0, 4004),
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.NoError(t, fixture.ledger.Flush(fixture.listener))
	current := fixture.listener.Entities[len(fixture.listener.Entities)-1]
	assert.Equal(t, domain.MustDecodeEntityId(5005), current.Id)
	assert.NotNil(t, current.Deleted)
	assert.True(t, *current.Deleted)
}

func TestHandleCryptoApproveAllowanceOwnerDefaultsToPayer(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(CryptoApproveAllowance{
		CryptoAllowances: []CryptoAllowanceGrant{
			{Amount: 1000, Spender: NewNumericRef(0, 0, 4004)},
		},
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.CryptoAllowances, 1)
	allowance := fixture.listener.CryptoAllowances[0]
	assert.Equal(t, payerAccountId.EncodedId, allowance.Owner)
	assert.Equal(t, domain.MustDecodeEntityId(4004).EncodedId, allowance.Spender)
	assert.Equal(t, int64(1000), allowance.Amount)
	assert.Equal(t, int64(1000), allowance.AmountGranted)
}

func TestHandleNftAllowanceSerialLastWins(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(CryptoApproveAllowance{
		NftAllowances: []NftAllowanceGrant{
			{
				SerialNumbers: []int64{1, 2},
				Spender:       NewNumericRef(0, 0, 4004),
				TokenId:       NewNumericRef(0, 0, 7007),
			},
			{
				SerialNumbers: []int64{2},
				Spender:       NewNumericRef(0, 0, 4005),
				TokenId:       NewNumericRef(0, 0, 7007),
			},
		},
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.Nfts, 2)
	spender4004 := domain.MustDecodeEntityId(4004)
	spender4005 := domain.MustDecodeEntityId(4005)
	assert.Equal(t, int64(1), fixture.listener.Nfts[0].SerialNumber)
	assert.Equal(t, &spender4004, fixture.listener.Nfts[0].Spender)
	assert.Equal(t, int64(2), fixture.listener.Nfts[1].SerialNumber)
	assert.Equal(t, &spender4005, fixture.listener.Nfts[1].Spender)
}

func TestHandleNftAllowanceApprovedForAll(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(CryptoApproveAllowance{
		NftAllowances: []NftAllowanceGrant{
			{
				ApprovedForAll: wrapperspb.Bool(true),
				Spender:        NewNumericRef(0, 0, 4004),
				TokenId:        NewNumericRef(0, 0, 7007),
			},
		},
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.NftAllowances, 1)
	allowance := fixture.listener.NftAllowances[0]
	assert.True(t, allowance.ApprovedForAll)
	assert.Equal(t, payerAccountId.EncodedId, allowance.Owner)
	assert.Empty(t, fixture.listener.Nfts)
}

func TestHandleNftTransferReassignsSerial(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(CryptoTransfer{}, 100)
	recordItem.TokenTransfers = []TokenTransferList{
		{
			TokenId: NewNumericRef(0, 0, 7007),
			NftTransfers: []NftTransfer{
				{
					ReceiverAccountId: NewNumericRef(0, 0, 5005),
					SenderAccountId:   NewNumericRef(0, 0, 4004),
					SerialNumber:      12,
				},
			},
		},
	}

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.Nfts, 1)
	receiverId := domain.MustDecodeEntityId(5005)
	nft := fixture.listener.Nfts[0]
	assert.Equal(t, &receiverId, nft.AccountId)
	assert.Equal(t, int64(12), nft.SerialNumber)
	assert.Equal(t, domain.MustDecodeEntityId(7007), nft.TokenId)
	assert.Equal(t, domain.NewTimestampRange(100), nft.TimestampRange)
	// reassignment clears the serial scoped allowance on merge
	assert.Nil(t, nft.Spender)
	assert.Nil(t, nft.DelegatingSpender)
	assert.Nil(t, nft.Deleted)
	assert.Nil(t, nft.CreatedTimestamp)
}

func TestHandleNftTransferToZeroAccountMarksDeleted(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(CryptoTransfer{}, 100)
	recordItem.TokenTransfers = []TokenTransferList{
		{
			TokenId: NewNumericRef(0, 0, 7007),
			NftTransfers: []NftTransfer{
				{
					SenderAccountId: NewNumericRef(0, 0, 4004),
					SerialNumber:    12,
				},
			},
		},
	}

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.Nfts, 1)
	nft := fixture.listener.Nfts[0]
	assert.Nil(t, nft.AccountId)
	assert.NotNil(t, nft.Deleted)
	assert.True(t, *nft.Deleted)
}
