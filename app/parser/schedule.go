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

func (h *TransactionHandler) handleScheduleCreate(
	ctx context.Context,
	recordItem *RecordItem,
	body ScheduleCreate,
) error {
	scheduleId := recordItem.Receipt.EntityId
	if scheduleId.IsZero() {
		return nil
	}

	recordItem.EntityId = scheduleId
	recordItem.AddEntityId(scheduleId)

	delta := EntityDelta{
		Memo: wrapperspb.String(body.Memo),
		Type: domain.EntityTypeSchedule,
	}
	if len(body.AdminKey) != 0 {
		delta.Key = wrapperspb.Bytes(body.AdminKey)
	}
	if err := h.ledger.Upsert(ctx, scheduleId, recordItem.ConsensusTimestamp, delta); err != nil {
		return err
	}

	payerAccountId := recordItem.PayerAccountId
	if !body.PayerAccountId.IsZero() {
		resolved, found, err := h.entityIdService.Lookup(ctx, body.PayerAccountId)
		if err != nil {
			return err
		}
		if found {
			payerAccountId = resolved
			recordItem.AddEntityId(payerAccountId)
		}
	}

	schedule := domain.Schedule{
		ConsensusTimestamp: recordItem.ConsensusTimestamp,
		CreatorAccountId:   recordItem.PayerAccountId,
		PayerAccountId:     payerAccountId,
		ScheduleId:         scheduleId,
		TransactionBody:    body.ScheduledTransactionBody,
		WaitForExpiry:      body.WaitForExpiry,
	}
	if body.ExpirationTime != nil {
		expiration := tools.ToNanosClamped(body.ExpirationTime.Seconds, body.ExpirationTime.Nanos)
		schedule.ExpirationTime = &expiration
	}

	if err := h.listener.OnSchedule(schedule); err != nil {
		return err
	}

	return h.handleTransactionSignatures(recordItem, scheduleId)
}

func (h *TransactionHandler) handleScheduleSign(
	ctx context.Context,
	recordItem *RecordItem,
	body ScheduleSign,
) error {
	scheduleId, found, err := h.entityIdService.Lookup(ctx, body.ScheduleId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = scheduleId
	recordItem.AddEntityId(scheduleId)

	return h.handleTransactionSignatures(recordItem, scheduleId)
}

func (h *TransactionHandler) handleScheduleDelete(
	ctx context.Context,
	recordItem *RecordItem,
	body ScheduleDelete,
) error {
	scheduleId, found, err := h.entityIdService.Lookup(ctx, body.ScheduleId)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	recordItem.EntityId = scheduleId
	recordItem.AddEntityId(scheduleId)

	deleted := true
	return h.ledger.Upsert(ctx, scheduleId, recordItem.ConsensusTimestamp, EntityDelta{Deleted: &deleted})
}

// handleScheduleExecution marks the schedule executed when its inner transaction reaches
// consensus. The executed transaction record carries the schedule reference, not a schedule body.
func (h *TransactionHandler) handleScheduleExecution(recordItem *RecordItem) error {
	recordItem.AddEntityId(recordItem.ScheduleRef)

	executed := recordItem.ConsensusTimestamp
	return h.listener.OnSchedule(domain.Schedule{
		ExecutedTimestamp: &executed,
		ScheduleId:        recordItem.ScheduleRef,
	})
}

// handleTransactionSignatures stores the record's signature map for the schedule, deduplicated by
// signature type and public key prefix, first occurrence wins
func (h *TransactionHandler) handleTransactionSignatures(
	recordItem *RecordItem,
	entityId domain.EntityId,
) error {
	if !h.persist.TransactionSignatures {
		return nil
	}

	type signatureKey struct {
		signatureType int32
		prefix        string
	}
	seen := make(map[signatureKey]struct{})

	for _, signature := range recordItem.Signatures {
		key := signatureKey{signatureType: signature.Type, prefix: string(signature.PublicKeyPrefix)}
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}

		transactionSignature := domain.TransactionSignature{
			ConsensusTimestamp: recordItem.ConsensusTimestamp,
			EntityId:           entityId,
			PublicKeyPrefix:    signature.PublicKeyPrefix,
			Signature:          signature.Signature,
			Type:               signature.Type,
		}
		if err := h.listener.OnTransactionSignature(transactionSignature); err != nil {
			return err
		}
	}

	return nil
}
