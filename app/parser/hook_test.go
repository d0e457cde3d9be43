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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/config"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestHandleHookCreate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(HookCreate{
		AdminKey:       []byte{1},
		ContractId:     NewNumericRef(0, 0, 8008),
		ExtensionPoint: domain.HookExtensionPointAccountAllowance,
		HookId:         1,
		OwnerId:        NewNumericRef(0, 0, 4004),
		Type:           domain.HookTypeLambda,
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.Hooks, 1)
	hook := fixture.listener.Hooks[0]
	assert.Equal(t, int64(1), hook.HookId)
	assert.Equal(t, domain.MustDecodeEntityId(4004).EncodedId, hook.OwnerId)
	assert.Equal(t, domain.MustDecodeEntityId(8008), hook.ContractId)
	assert.Equal(t, domain.HookTypeLambda, hook.Type)
	assert.Equal(t, int64Ptr(100), hook.CreatedTimestamp)
	assert.Nil(t, hook.Deleted)
}

func TestHandleHookDeleteTombstone(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(HookDelete{HookId: 1, OwnerId: NewNumericRef(0, 0, 4004)}, 200)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	hook := fixture.listener.Hooks[0]
	assert.NotNil(t, hook.Deleted)
	assert.True(t, *hook.Deleted)
	assert.Nil(t, hook.AdminKey)
	assert.Empty(t, hook.Type)
	assert.Nil(t, hook.CreatedTimestamp)
}

func TestDeriveStorageSlot(t *testing.T) {
	key := []byte{0x01}
	mappingSlot := []byte{0x02}
	expected := crypto.Keccak256(
		common.BytesToHash(key).Bytes(),
		common.BytesToHash(mappingSlot).Bytes(),
	)

	tests := []struct {
		name     string
		update   StorageUpdate
		expected []byte
	}{
		{
			name:     "explicitSlot",
			update:   StorageUpdate{Slot: []byte{0xaa}, Key: key, MappingSlot: mappingSlot},
			expected: []byte{0xaa},
		},
		{
			name:     "mappingKey",
			update:   StorageUpdate{Key: key, MappingSlot: mappingSlot},
			expected: expected,
		},
		{
			name:   "preimageKey",
			update: StorageUpdate{Preimage: []byte("owner"), MappingSlot: mappingSlot},
			expected: crypto.Keccak256(
				common.BytesToHash(crypto.Keccak256([]byte("owner"))).Bytes(),
				common.BytesToHash(mappingSlot).Bytes(),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveStorageSlot(tt.update))
		})
	}
}

func TestHandleLambdaSStore(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	recordItem := newRecordItem(LambdaSStore{
		HookId:  1,
		OwnerId: NewNumericRef(0, 0, 4004),
		StorageUpdates: []StorageUpdate{
			{Slot: []byte{0x01}, Value: []byte{0xff}},
			{Slot: []byte{0x02}},
		},
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.HookStorageChanges, 2)
	first := fixture.listener.HookStorageChanges[0]
	assert.Equal(t, []byte{0x01}, first.Key)
	assert.Equal(t, []byte{0xff}, first.ValueWritten)
	assert.Equal(t, domain.MustDecodeEntityId(4004).EncodedId, first.OwnerId)
}

func TestHandleHookExecutionStorageChanges(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	ownerId := domain.MustDecodeEntityId(4004)
	recordItem := newRecordItem(CryptoTransfer{}, 100)
	recordItem.PreTransactionHooks = []HookContext{{HookId: 1, OwnerId: ownerId}}
	recordItem.StorageChanges = []StorageChange{
		{
			HookId:       1,
			OwnerId:      NewNumericRef(0, 0, 4004),
			Slot:         []byte{0x01},
			ValueRead:    []byte{0x02},
			ValueWritten: wrapperspb.Bytes([]byte{0x03}),
		},
		{
			HookId:  1,
			OwnerId: NewNumericRef(0, 0, 4004),
			Slot:    []byte{0x04},
		},
	}

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.HookStorageChanges, 2)
	written := fixture.listener.HookStorageChanges[0]
	assert.Equal(t, []byte{0x02}, written.ValueRead)
	assert.Equal(t, []byte{0x03}, written.ValueWritten)

	// a read-only access keeps the written side nil and defaults the read side to empty
	readOnly := fixture.listener.HookStorageChanges[1]
	assert.Equal(t, []byte{}, readOnly.ValueRead)
	assert.Nil(t, readOnly.ValueWritten)
}
