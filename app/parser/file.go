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

	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/tools"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// systemFileMaxNum is the highest entity num of the reserved system file range
const systemFileMaxNum int64 = 1000

func (h *TransactionHandler) handleFileCreate(
	ctx context.Context,
	recordItem *RecordItem,
	body FileCreate,
) error {
	fileId := recordItem.Receipt.EntityId
	if fileId.IsZero() {
		return nil
	}

	recordItem.EntityId = fileId
	recordItem.AddEntityId(fileId)

	delta := EntityDelta{
		Memo: wrapperspb.String(body.Memo),
		Type: domain.EntityTypeFile,
	}
	if len(body.Key) != 0 {
		delta.Key = wrapperspb.Bytes(body.Key)
	}
	if body.ExpirationTime != nil {
		delta.ExpirationTimestamp = wrapperspb.Int64(
			tools.ToNanosClamped(body.ExpirationTime.Seconds, body.ExpirationTime.Nanos))
	}

	if err := h.ledger.Upsert(ctx, fileId, recordItem.ConsensusTimestamp, delta); err != nil {
		return err
	}

	return h.handleFileData(ctx, recordItem, fileId, body.Contents)
}

func (h *TransactionHandler) handleFileAppend(
	ctx context.Context,
	recordItem *RecordItem,
	body FileAppend,
) error {
	fileId, found, err := h.entityIdService.Lookup(ctx, body.FileId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = fileId
	recordItem.AddEntityId(fileId)

	return h.handleFileData(ctx, recordItem, fileId, body.Contents)
}

func (h *TransactionHandler) handleFileUpdate(
	ctx context.Context,
	recordItem *RecordItem,
	body FileUpdate,
) error {
	fileId, found, err := h.entityIdService.Lookup(ctx, body.FileId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = fileId
	recordItem.AddEntityId(fileId)

	delta := EntityDelta{
		Key:  body.Key,
		Memo: body.Memo,
	}
	if body.ExpirationTime != nil {
		delta.ExpirationTimestamp = wrapperspb.Int64(
			tools.ToNanosClamped(body.ExpirationTime.Seconds, body.ExpirationTime.Nanos))
	}

	if err = h.ledger.Upsert(ctx, fileId, recordItem.ConsensusTimestamp, delta); err != nil {
		return err
	}

	return h.handleFileData(ctx, recordItem, fileId, body.Contents)
}

func (h *TransactionHandler) handleFileDelete(
	ctx context.Context,
	recordItem *RecordItem,
	body FileDelete,
) error {
	fileId, found, err := h.entityIdService.Lookup(ctx, body.FileId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = fileId
	recordItem.AddEntityId(fileId)

	deleted := true
	if err = h.ledger.Upsert(ctx, fileId, recordItem.ConsensusTimestamp, EntityDelta{Deleted: &deleted}); err != nil {
		return err
	}

	return h.handleFileData(ctx, recordItem, fileId, nil)
}

// handleFileData persists the content chunk and feeds the address book assembler. Address book
// files bypass the persistence toggles, a partial address book must never go missing.
func (h *TransactionHandler) handleFileData(
	ctx context.Context,
	recordItem *RecordItem,
	fileId domain.EntityId,
	contents []byte,
) error {
	fileData := domain.FileData{
		ConsensusTimestamp: recordItem.ConsensusTimestamp,
		EntityId:           fileId,
		FileData:           contents,
		TransactionType:    recordItem.Body.TransactionType(),
	}

	if h.addressBookService.IsAddressBook(fileId) {
		if err := h.addressBookService.Update(ctx, fileData); err != nil {
			return err
		}
		return h.listener.OnFileData(fileData)
	}

	if !h.shouldPersistFileData(fileId) {
		return nil
	}

	return h.listener.OnFileData(fileData)
}

func (h *TransactionHandler) shouldPersistFileData(fileId domain.EntityId) bool {
	if h.persist.Files {
		return true
	}

	return h.persist.SystemFiles && fileId.EntityNum < systemFileMaxNum
}
