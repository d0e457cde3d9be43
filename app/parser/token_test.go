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

func TestHandleTokenAssociate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(TokenAssociate{
		AccountId: NewNumericRef(0, 0, 4004),
		TokenIds:  []EntityRef{NewNumericRef(0, 0, 7007), NewNumericRef(0, 0, 7008)},
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.TokenAccounts, 2)
	for i, tokenNum := range []int64{7007, 7008} {
		tokenAccount := fixture.listener.TokenAccounts[i]
		assert.Equal(t, domain.MustDecodeEntityId(4004), tokenAccount.AccountId)
		assert.Equal(t, domain.MustDecodeEntityId(tokenNum), tokenAccount.TokenId)
		assert.True(t, tokenAccount.Associated)
		assert.Equal(t, int64(100), tokenAccount.CreatedTimestamp)
	}
}

func TestHandleTokenDissociate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(TokenDissociate{
		AccountId: NewNumericRef(0, 0, 4004),
		TokenIds:  []EntityRef{NewNumericRef(0, 0, 7007)},
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.TokenAccounts, 1)
	tokenAccount := fixture.listener.TokenAccounts[0]
	assert.False(t, tokenAccount.Associated)
	assert.Zero(t, tokenAccount.CreatedTimestamp)
}

func TestHandleTokenUpdate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordFile := &domain.RecordFile{HapiVersionMinor: 50}
	recordItem := newRecordItem(TokenUpdate{
		Metadata: wrapperspb.Bytes([]byte{0xca, 0xfe}),
		Name:     wrapperspb.String("Renamed"),
		Symbol:   wrapperspb.String("RNM"),
		TokenId:  NewNumericRef(0, 0, 7007),
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, recordFile))

	assert.Len(t, fixture.listener.Tokens, 1)
	token := fixture.listener.Tokens[0]
	assert.Equal(t, domain.MustDecodeEntityId(7007), token.TokenId)
	assert.Equal(t, "Renamed", token.Name)
	assert.Equal(t, "RNM", token.Symbol)
	assert.Equal(t, []byte{0xca, 0xfe}, token.Metadata)
}

func TestHandleTokenUpdateIgnoresMetadataOnOldHapi(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordFile := &domain.RecordFile{HapiVersionMinor: 40}
	recordItem := newRecordItem(TokenUpdate{
		Metadata:    wrapperspb.Bytes([]byte{0xca, 0xfe}),
		MetadataKey: wrapperspb.Bytes([]byte{1}),
		TokenId:     NewNumericRef(0, 0, 7007),
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, recordFile))

	token := fixture.listener.Tokens[0]
	assert.Nil(t, token.Metadata)
	assert.Nil(t, token.MetadataKey)
}

func TestHandleTokenUpdateTreasury(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	treasuryRef := NewNumericRef(0, 0, 4004)
	recordItem := newRecordItem(TokenUpdate{
		TokenId:           NewNumericRef(0, 0, 7007),
		TreasuryAccountId: &treasuryRef,
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{HapiVersionMinor: 50}))

	token := fixture.listener.Tokens[0]
	assert.Equal(t, domain.MustDecodeEntityId(4004), token.TreasuryAccountId)
}

func TestHandleTokenMintCreatesSerials(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	treasuryRef := NewNumericRef(0, 0, 2002)
	recordItem := newRecordItem(TokenMint{
		Metadata: [][]byte{{0x01}, {0x02}},
		TokenId:  NewNumericRef(0, 0, 7007),
	}, 100)
	recordItem.Receipt.SerialNumbers = []int64{1, 2}
	recordItem.TokenTransfers = []TokenTransferList{
		{
			TokenId: NewNumericRef(0, 0, 7007),
			NftTransfers: []NftTransfer{
				{ReceiverAccountId: treasuryRef, SerialNumber: 1},
				{ReceiverAccountId: treasuryRef, SerialNumber: 2},
			},
		},
	}

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	// two mint rows carrying metadata, then two ownership rows from the transfer list
	assert.Len(t, fixture.listener.Nfts, 4)
	treasuryId := domain.MustDecodeEntityId(2002)
	for i, serialNumber := range []int64{1, 2} {
		minted := fixture.listener.Nfts[i]
		assert.Equal(t, serialNumber, minted.SerialNumber)
		assert.Equal(t, int64Ptr(100), minted.CreatedTimestamp)
		assert.Equal(t, []byte{byte(i + 1)}, minted.Metadata)
		assert.NotNil(t, minted.Deleted)
		assert.False(t, *minted.Deleted)

		owned := fixture.listener.Nfts[i+2]
		assert.Equal(t, serialNumber, owned.SerialNumber)
		assert.Equal(t, &treasuryId, owned.AccountId)
	}

	assert.Equal(t, domain.MustDecodeEntityId(7007), *fixture.listener.Transactions[0].EntityId)
	assert.Equal(t, domain.TransactionTypeTokenMint, fixture.listener.Transactions[0].Type)
}

func TestHandleTokenMintFungibleLeavesNoSerials(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(TokenMint{Amount: 5000, TokenId: NewNumericRef(0, 0, 7007)}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))
	assert.Empty(t, fixture.listener.Nfts)
}

func TestHandleTokenFeeScheduleUpdate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	maximum := int64(900)
	recordItem := newRecordItem(TokenFeeScheduleUpdate{
		FixedFees: []FixedFeeSchedule{
			{
				Amount:              10,
				CollectorAccountId:  NewNumericRef(0, 0, 4004),
				DenominatingTokenId: NewNumericRef(0, 0, 7008),
			},
		},
		FractionalFees: []FractionalFeeSchedule{
			{
				CollectorAccountId: NewNumericRef(0, 0, 4005),
				Denominator:        100,
				Maximum:            &maximum,
				Minimum:            1,
				Numerator:          3,
			},
		},
		TokenId: NewNumericRef(0, 0, 7007),
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.CustomFees, 1)
	customFee := fixture.listener.CustomFees[0]
	assert.Equal(t, int64(100), customFee.ConsensusTimestamp)
	assert.Equal(t, domain.MustDecodeEntityId(7007), customFee.TokenId)

	assert.Len(t, customFee.FixedFees, 1)
	denominatingTokenId := domain.MustDecodeEntityId(7008)
	assert.Equal(t, int64(10), customFee.FixedFees[0].Amount)
	assert.Equal(t, domain.MustDecodeEntityId(4004), customFee.FixedFees[0].CollectorAccountId)
	assert.Equal(t, &denominatingTokenId, customFee.FixedFees[0].DenominatingTokenId)

	assert.Len(t, customFee.FractionalFees, 1)
	fractional := customFee.FractionalFees[0]
	assert.Equal(t, domain.MustDecodeEntityId(4005), fractional.CollectorAccountId)
	assert.Equal(t, int64(3), fractional.Numerator)
	assert.Equal(t, int64(100), fractional.Denominator)
	assert.Equal(t, &maximum, fractional.Maximum)
}

func TestHandleTokenFeeScheduleUpdateHbarFixedFee(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(TokenFeeScheduleUpdate{
		FixedFees: []FixedFeeSchedule{
			{Amount: 10, CollectorAccountId: NewNumericRef(0, 0, 4004)},
		},
		TokenId: NewNumericRef(0, 0, 7007),
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	customFee := fixture.listener.CustomFees[0]
	assert.Nil(t, customFee.FixedFees[0].DenominatingTokenId)
}

func TestHandleTokenFeeScheduleUpdateClearsSchedule(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(TokenFeeScheduleUpdate{TokenId: NewNumericRef(0, 0, 7007)}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	// the empty schedule still writes a row, clearing the prior fees
	assert.Len(t, fixture.listener.CustomFees, 1)
	customFee := fixture.listener.CustomFees[0]
	assert.Empty(t, customFee.FixedFees)
	assert.Empty(t, customFee.FractionalFees)
}
