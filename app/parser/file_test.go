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
	"github.com/stretchr/testify/mock"
)

func TestHandleFileCreatePersistsContentAndEntity(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{Files: true})
	fileId := domain.MustDecodeEntityId(1111)
	fixture.addressBookService.On("IsAddressBook", fileId).Return(false)

	recordItem := newRecordItem(FileCreate{Contents: []byte("contents"), Memo: "a file"}, 100)
	recordItem.Receipt.EntityId = fileId

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.FileData, 1)
	fileData := fixture.listener.FileData[0]
	assert.Equal(t, fileId, fileData.EntityId)
	assert.Equal(t, []byte("contents"), fileData.FileData)
	assert.Equal(t, domain.TransactionTypeFileCreate, fileData.TransactionType)

	assert.NoError(t, fixture.ledger.Flush(fixture.listener))
	entity := fixture.listener.Entities[0]
	assert.Equal(t, domain.EntityTypeFile, entity.Type)
	assert.Equal(t, "a file", entity.Memo)
}

func TestHandleFileDataDisabled(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	fileId := domain.MustDecodeEntityId(1111)
	fixture.addressBookService.On("IsAddressBook", fileId).Return(false)

	recordItem := newRecordItem(FileCreate{Contents: []byte("contents")}, 100)
	recordItem.Receipt.EntityId = fileId

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))
	assert.Empty(t, fixture.listener.FileData)
}

func TestHandleSystemFileGate(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{SystemFiles: true})
	fixture.addressBookService.On("IsAddressBook", mock.Anything).Return(false)

	system := newRecordItem(FileCreate{Contents: []byte("x")}, 100)
	system.Receipt.EntityId = domain.MustDecodeEntityId(111)
	assert.NoError(t, fixture.handler.Handle(defaultContext, system, &domain.RecordFile{}))

	user := newRecordItem(FileCreate{Contents: []byte("y")}, 200)
	user.Receipt.EntityId = domain.MustDecodeEntityId(5111)
	assert.NoError(t, fixture.handler.Handle(defaultContext, user, &domain.RecordFile{}))

	// only the file below the system range persisted
	assert.Len(t, fixture.listener.FileData, 1)
	assert.Equal(t, domain.MustDecodeEntityId(111), fixture.listener.FileData[0].EntityId)
}

func TestHandleAddressBookFileBypassesToggles(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{})
	fileId := domain.MustDecodeEntityId(102)
	fixture.addressBookService.On("IsAddressBook", fileId).Return(true)
	fixture.addressBookService.On("Update", mock.Anything, mock.Anything).Return(nil)

	recordItem := newRecordItem(FileUpdate{
		Contents: []byte("book"),
		FileId:   NewNumericRef(0, 0, 102),
	}, 100)

	assert.NoError(t, fixture.handler.Handle(defaultContext, recordItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.FileData, 1)
	fixture.addressBookService.AssertCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHandleFileAppendAndDelete(t *testing.T) {
	fixture := newHandlerFixture(config.Persist{Files: true})
	fileId := domain.MustDecodeEntityId(1111)
	fixture.addressBookService.On("IsAddressBook", fileId).Return(false)

	appendItem := newRecordItem(FileAppend{
		Contents: []byte("more"),
		FileId:   NewNumericRef(0, 0, 1111),
	}, 100)
	assert.NoError(t, fixture.handler.Handle(defaultContext, appendItem, &domain.RecordFile{}))

	deleteItem := newRecordItem(FileDelete{FileId: NewNumericRef(0, 0, 1111)}, 200)
	assert.NoError(t, fixture.handler.Handle(defaultContext, deleteItem, &domain.RecordFile{}))

	assert.Len(t, fixture.listener.FileData, 2)
	assert.Equal(t, domain.TransactionTypeFileAppend, fixture.listener.FileData[0].TransactionType)
	assert.Equal(t, domain.TransactionTypeFileDelete, fixture.listener.FileData[1].TransactionType)
	assert.Empty(t, fixture.listener.FileData[1].FileData)

	assert.NoError(t, fixture.ledger.Flush(fixture.listener))
	current := fixture.listener.Entities[len(fixture.listener.Entities)-1]
	assert.NotNil(t, current.Deleted)
	assert.True(t, *current.Deleted)
}
