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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"
)

func (h *TransactionHandler) handleHookCreate(
	ctx context.Context,
	recordItem *RecordItem,
	body HookCreate,
) error {
	ownerId, found, err := h.entityIdService.Lookup(ctx, body.OwnerId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = ownerId
	recordItem.AddEntityId(ownerId)

	hook := domain.Hook{
		AdminKey:       body.AdminKey,
		ExtensionPoint: body.ExtensionPoint,
		HookId:         body.HookId,
		OwnerId:        ownerId.EncodedId,
		TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
		Type:           body.Type,
	}
	created := recordItem.ConsensusTimestamp
	hook.CreatedTimestamp = &created

	if !body.ContractId.IsZero() {
		contractId, contractFound, err := h.entityIdService.Lookup(ctx, body.ContractId)
		if err != nil {
			return err
		}
		if contractFound {
			recordItem.AddEntityId(contractId)
			hook.ContractId = contractId
		}
	}

	return h.listener.OnHook(hook)
}

// handleHookDelete emits a sparse tombstone, only identity and the deleted flag; the prior
// version's attributes survive in history
func (h *TransactionHandler) handleHookDelete(
	ctx context.Context,
	recordItem *RecordItem,
	body HookDelete,
) error {
	ownerId, found, err := h.entityIdService.Lookup(ctx, body.OwnerId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = ownerId
	recordItem.AddEntityId(ownerId)

	deleted := true
	return h.listener.OnHook(domain.Hook{
		Deleted:        &deleted,
		HookId:         body.HookId,
		OwnerId:        ownerId.EncodedId,
		TimestampRange: domain.NewTimestampRange(recordItem.ConsensusTimestamp),
	})
}

// handleLambdaSStore applies explicit slot writes to a lambda hook's storage. A mapping-addressed
// update hashes its way to the concrete slot the same way the EVM lays out mapping entries.
func (h *TransactionHandler) handleLambdaSStore(
	ctx context.Context,
	recordItem *RecordItem,
	body LambdaSStore,
) error {
	ownerId, found, err := h.entityIdService.Lookup(ctx, body.OwnerId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = ownerId
	recordItem.AddEntityId(ownerId)

	for _, update := range body.StorageUpdates {
		storageChange := domain.HookStorageChange{
			ConsensusTimestamp: recordItem.ConsensusTimestamp,
			HookId:             body.HookId,
			Key:                deriveStorageSlot(update),
			OwnerId:            ownerId.EncodedId,
			ValueWritten:       update.Value,
		}
		if err = h.listener.OnHookStorageChange(storageChange); err != nil {
			return err
		}
	}

	return nil
}

// deriveStorageSlot resolves the concrete storage slot of one update. An explicit slot wins; a
// mapping entry's slot is keccak256(pad32(key) || pad32(mappingSlot)), where a preimage-addressed
// key is first reduced to keccak256(preimage).
func deriveStorageSlot(update StorageUpdate) []byte {
	if len(update.Slot) != 0 {
		return update.Slot
	}

	key := update.Key
	if len(update.Preimage) != 0 {
		key = crypto.Keccak256(update.Preimage)
	}

	return crypto.Keccak256(
		common.BytesToHash(key).Bytes(),
		common.BytesToHash(update.MappingSlot).Bytes(),
	)
}

// handleHookExecutions drains the record's hook queue and persists the storage accesses its
// side-effect payload reported. The queue entries reference the owners so the entity index covers
// hook activity even when no slot was touched.
func (h *TransactionHandler) handleHookExecutions(ctx context.Context, recordItem *RecordItem) error {
	queue := recordItem.GetHookQueue()
	for {
		hookContext, ok := queue.Poll()
		if !ok {
			break
		}
		recordItem.AddEntityId(hookContext.OwnerId)
	}

	for _, storageChange := range recordItem.StorageChanges {
		ownerId, found, err := h.entityIdService.Lookup(ctx, storageChange.OwnerId)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		recordItem.AddEntityId(ownerId)

		valueRead := storageChange.ValueRead
		if valueRead == nil {
			valueRead = []byte{}
		}

		change := domain.HookStorageChange{
			ConsensusTimestamp: recordItem.ConsensusTimestamp,
			HookId:             storageChange.HookId,
			Key:                storageChange.Slot,
			OwnerId:            ownerId.EncodedId,
			ValueRead:          valueRead,
		}
		if storageChange.ValueWritten != nil {
			change.ValueWritten = storageChange.ValueWritten.Value
		}

		if err = h.listener.OnHookStorageChange(change); err != nil {
			return err
		}
	}

	return nil
}
